package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"estatecrm/internal/models"
	"estatecrm/internal/repositories"
)

// ActionService manages scheduled follow-up actions. It implements
// pipeline.ActionScheduler, so the stage state machine schedules its
// follow-ups through here.
type ActionService struct {
	repo  repositories.ActionRepository
	leads *repositories.LeadRepository
	users repositories.UserRepository
	tg    *TelegramService
}

func NewActionService(repo repositories.ActionRepository, leads *repositories.LeadRepository, users repositories.UserRepository, tg *TelegramService) *ActionService {
	return &ActionService{repo: repo, leads: leads, users: users, tg: tg}
}

// CreateAction schedules an action against a lead, assigned to the
// lead's current owner. dueIn of zero means no due time. The Telegram
// push is best-effort: a delivery failure never fails the scheduling.
func (s *ActionService) CreateAction(ctx context.Context, leadID int64, t models.ActionType, payload map[string]string, dueIn time.Duration) error {
	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return fmt.Errorf("lead not found")
	}

	now := time.Now()
	action := &models.Action{
		LeadID:     leadID,
		AssigneeID: lead.OwnerID,
		Type:       t,
		Payload:    payload,
		Status:     models.ActionPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if dueIn > 0 {
		due := now.Add(dueIn)
		action.DueAt = &due
	}

	if err := s.repo.Store(ctx, action); err != nil {
		return err
	}

	s.notifyAssignee(ctx, lead, action)
	return nil
}

func (s *ActionService) GetAll(ctx context.Context, filter models.ActionFilter) ([]models.Action, error) {
	return s.repo.FindAll(ctx, filter)
}

// ListDue returns pending actions whose due time has passed.
func (s *ActionService) ListDue(ctx context.Context, limit int) ([]models.Action, error) {
	return s.repo.ListDue(ctx, limit)
}

func (s *ActionService) GetByID(ctx context.Context, id int64) (*models.Action, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ActionService) UpdateStatus(ctx context.Context, id int64, to models.ActionStatus) (*models.Action, error) {
	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ActionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *ActionService) notifyAssignee(ctx context.Context, lead *models.Lead, action *models.Action) {
	user, err := s.users.GetByID(ctx, action.AssigneeID)
	if err != nil || user == nil || user.TelegramChatID == 0 {
		return
	}

	text := fmt.Sprintf("<b>%s</b> scheduled for lead <b>%s</b>", action.Type, lead.Name)
	if action.DueAt != nil {
		text += fmt.Sprintf("\nDue: %s", action.DueAt.Format("02 Jan 15:04"))
	}
	if reason, ok := action.Payload["reason"]; ok {
		text += "\n" + reason
	}

	if err := s.tg.SendMessage(user.TelegramChatID, text); err != nil {
		log.Printf("[actions] telegram notify failed for user=%d action=%d: %v", user.ID, action.ID, err)
	}
}
