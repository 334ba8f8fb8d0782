package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"wealthflow/config"
	"wealthflow/internal/model"
	"wealthflow/internal/repository"
	"wealthflow/pkg/cache"
	"wealthflow/pkg/common"
	"wealthflow/pkg/logger"
	"wealthflow/pkg/ratelimit"
	"wealthflow/pkg/utils"

	"golang.org/x/sync/singleflight"
)

const (
	ChatGreeting           = "Greetings. I am your personal WealthFlow concierge. How may I assist you with your portfolio today?"
	ChatEmptyReplyFallback = "I apologize, I didn't catch that."
	ChatFailureFallback    = "I am unable to connect to the network at this time. Please try again later."
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSendInFlight    = errors.New("a message is already being answered")
	ErrChatRateLimited = errors.New("too many chat messages, slow down")
)

// ChatSession mirrors one widget's conversation for display. The real history
// lives behind the hosted conversation handle.
type ChatSession struct {
	id   string
	repo repository.ConversationRepository
	log  *logger.Logger

	mu       sync.Mutex
	messages []model.ChatMessage
	conv     repository.Conversation

	sending atomic.Bool
}

func NewChatSession(id string, repo repository.ConversationRepository, log *logger.Logger) *ChatSession {
	return &ChatSession{
		id:       id,
		repo:     repo,
		log:      log,
		messages: []model.ChatMessage{model.NewChatMessage(model.ChatRoleAssistant, ChatGreeting)},
	}
}

func (s *ChatSession) ID() string {
	return s.id
}

// Messages returns the log in append order.
func (s *ChatSession) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage(nil), s.messages...)
}

// Busy reports whether a reply is pending.
func (s *ChatSession) Busy() bool {
	return s.sending.Load()
}

// Conversation returns the hosted handle, creating it on first use.
func (s *ChatSession) Conversation(ctx context.Context) (repository.Conversation, error) {
	s.mu.Lock()
	conv := s.conv
	s.mu.Unlock()
	if conv != nil {
		return conv, nil
	}

	created, err := s.repo.StartConversation(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conv == nil {
		s.conv = created
	}
	return s.conv, nil
}

// Send appends text as a pending user turn, waits for one reply and appends
// it. Upstream failures become an assistant fallback message, never an error,
// and leave the handle usable for the next send.
func (s *ChatSession) Send(ctx context.Context, text string) (model.ChatMessage, error) {
	text = utils.SafeText(text)
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}
	if !s.sending.CompareAndSwap(false, true) {
		return model.ChatMessage{}, ErrSendInFlight
	}
	defer s.sending.Store(false)

	userMsg := model.NewChatMessage(model.ChatRoleUser, text)
	userMsg.Pending = true
	s.mu.Lock()
	s.messages = append(s.messages, userMsg)
	s.mu.Unlock()

	reply := model.NewChatMessage(model.ChatRoleAssistant, s.exchange(ctx, text))

	s.mu.Lock()
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].ID == userMsg.ID {
			s.messages[i].Pending = false
			break
		}
	}
	s.messages = append(s.messages, reply)
	s.mu.Unlock()

	return reply, nil
}

func (s *ChatSession) exchange(ctx context.Context, text string) string {
	conv, err := s.Conversation(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Chat error", logger.ErrorField(err), logger.StringField("session_id", s.id))
		return ChatFailureFallback
	}

	reply, err := conv.Send(ctx, text)
	if err != nil {
		s.log.ErrorContext(ctx, "Chat error", logger.ErrorField(err), logger.StringField("session_id", s.id))
		return ChatFailureFallback
	}

	if strings.TrimSpace(reply) == "" {
		return ChatEmptyReplyFallback
	}
	return reply
}

type ChatService interface {
	// Open returns the visitor's session and starts its hosted conversation.
	Open(ctx context.Context, sessionID string) (*ChatSession, error)
	Session(ctx context.Context, sessionID string) (*ChatSession, error)
	Send(ctx context.Context, sessionID string, text string) (model.ChatMessage, error)
	CleanupLimiters(maxIdle time.Duration) int
}

type chatService struct {
	log      *logger.Logger
	repo     repository.ConversationRepository
	cache    cache.Cache
	ttl      time.Duration
	limiters *ratelimit.LimiterStore
	group    singleflight.Group
}

func NewChatService(cfg *config.Config, log *logger.Logger, repo repository.ConversationRepository, inmemoryCache cache.Cache) ChatService {
	return &chatService{
		log:      log,
		repo:     repo,
		cache:    inmemoryCache,
		ttl:      cfg.Session.TTL,
		limiters: ratelimit.PerMinute(cfg.Session.MaxChatPerMinute),
	}
}

func (s *chatService) Session(ctx context.Context, sessionID string) (*ChatSession, error) {
	key := fmt.Sprintf(common.KEY_CHAT_SESSION, sessionID)
	if session, ok := cache.GetFromCache[*ChatSession](s.cache, key); ok {
		s.cache.Touch(key, s.ttl)
		return session, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		if session, ok := cache.GetFromCache[*ChatSession](s.cache, key); ok {
			return session, nil
		}
		session := NewChatSession(sessionID, s.repo, s.log)
		s.cache.Set(key, session, s.ttl)
		s.log.InfoContext(ctx, "chat session created", logger.StringField("session_id", sessionID))
		return session, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ChatSession), nil
}

func (s *chatService) Open(ctx context.Context, sessionID string) (*ChatSession, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := session.Conversation(ctx); err != nil {
		// Send retries the handle lazily, so the widget still opens.
		s.log.WarnContext(ctx, "failed to start chat conversation", logger.ErrorField(err), logger.StringField("session_id", sessionID))
	}
	return session, nil
}

func (s *chatService) Send(ctx context.Context, sessionID string, text string) (model.ChatMessage, error) {
	if utils.IsBlank(text) {
		return model.ChatMessage{}, ErrEmptyMessage
	}
	if !s.limiters.Allow(sessionID) {
		return model.ChatMessage{}, ErrChatRateLimited
	}

	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return model.ChatMessage{}, err
	}
	return session.Send(ctx, text)
}

func (s *chatService) CleanupLimiters(maxIdle time.Duration) int {
	return s.limiters.Cleanup(maxIdle)
}
