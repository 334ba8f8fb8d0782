package service

import (
	"context"
	"errors"
	"strings"

	"wealthflow/internal/model"
	"wealthflow/internal/repository"
	"wealthflow/pkg/logger"
	"wealthflow/pkg/utils"
)

const (
	InsightEmptyFallback      = "I apologize, but I am unable to provide an insight at this moment."
	InsightUnavailableMessage = "Unable to connect to the wealth intelligence network."
)

var (
	ErrEmptyQuery         = errors.New("query is empty")
	ErrInsightUnavailable = errors.New("unable to connect to the wealth intelligence network")
)

type InsightService interface {
	// GetInsight answers one free-text question. Any upstream failure is
	// reported as ErrInsightUnavailable; there is no retry.
	GetInsight(ctx context.Context, query string) (string, error)
	// Ask runs a full submission and returns the settled hero state.
	Ask(ctx context.Context, query string) (model.InsightState, error)
}

type insightService struct {
	log  *logger.Logger
	repo repository.InsightRepository
}

func NewInsightService(log *logger.Logger, repo repository.InsightRepository) InsightService {
	return &insightService{
		log:  log,
		repo: repo,
	}
}

func (s *insightService) GetInsight(ctx context.Context, query string) (string, error) {
	query = utils.SafeText(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	text, err := s.repo.GenerateInsight(ctx, query)
	if err != nil {
		s.log.ErrorContext(ctx, "Gemini API error", logger.ErrorField(err))
		return "", ErrInsightUnavailable
	}

	if strings.TrimSpace(text) == "" {
		s.log.WarnContext(ctx, "Gemini returned no insight text")
		return InsightEmptyFallback, nil
	}

	return text, nil
}

func (s *insightService) Ask(ctx context.Context, query string) (model.InsightState, error) {
	var state model.InsightState
	if utils.IsBlank(query) {
		return state, ErrEmptyQuery
	}

	state.Begin(query)
	text, err := s.GetInsight(ctx, query)
	if err != nil {
		state.Fail()
		return state, nil
	}
	state.Resolve(text)
	return state, nil
}
