package service

import (
	"context"
	"errors"
	"time"

	"wealthflow/internal/dto"
	"wealthflow/internal/model"
	"wealthflow/pkg/logger"
	"wealthflow/pkg/utils"

	"github.com/google/uuid"
)

var ErrIncompleteContact = errors.New("name, email and message are required")

type ContactService interface {
	Submit(ctx context.Context, req dto.ContactRequest) (model.ContactLead, error)
}

type contactService struct {
	log *logger.Logger
	now func() time.Time
}

func NewContactService(log *logger.Logger) ContactService {
	return &contactService{log: log, now: time.Now}
}

// Submit acknowledges a sales inquiry. Leads are only logged.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (model.ContactLead, error) {
	lead := model.ContactLead{
		Reference:  uuid.NewString(),
		Name:       utils.SafeText(req.Name),
		Email:      utils.SafeText(req.Email),
		Company:    utils.SafeText(req.Company),
		Message:    utils.SafeText(req.Message),
		ReceivedAt: s.now(),
	}
	if lead.Name == "" || lead.Email == "" || lead.Message == "" {
		return model.ContactLead{}, ErrIncompleteContact
	}

	s.log.InfoContext(ctx, "Contact sales inquiry received",
		logger.StringField("reference", lead.Reference),
		logger.StringField("email", lead.Email),
		logger.StringField("company", lead.Company),
		logger.StringField("plan_id", req.PlanID),
	)

	return lead, nil
}
