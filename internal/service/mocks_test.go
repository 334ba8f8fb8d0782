package service

import (
	"context"
	"time"

	"wealthflow/config"
	"wealthflow/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockInsightRepo struct {
	mock.Mock
}

func (m *mockInsightRepo) GenerateInsight(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

type mockConversationRepo struct {
	mock.Mock
}

func (m *mockConversationRepo) StartConversation(ctx context.Context) (repository.Conversation, error) {
	args := m.Called(ctx)
	conv, _ := args.Get(0).(repository.Conversation)
	return conv, args.Error(1)
}

type mockConversation struct {
	mock.Mock
}

func (m *mockConversation) Send(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Market: config.Market{
			TickInterval: time.Second,
			Volatility:   0.002,
			ChangeDrift:  0.1,
		},
		Session: config.Session{
			CookieName:       "wf_session",
			TTL:              time.Hour,
			DefaultTheme:     "dark",
			MaxChatPerMinute: 100,
		},
	}
}
