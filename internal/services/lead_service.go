package services

import (
	"context"
	"errors"
	"log"
	"time"

	"estatecrm/internal/models"
	"estatecrm/internal/pipeline"
	"estatecrm/internal/repositories"
)

const meetingReminderLead = 60 * time.Minute

type LeadService struct {
	Repo    *repositories.LeadRepository
	Users   repositories.UserRepository
	Orch    *pipeline.Orchestrator
	Actions pipeline.ActionScheduler
	Email   EmailService
}

func NewLeadService(repo *repositories.LeadRepository, users repositories.UserRepository, orch *pipeline.Orchestrator, actions pipeline.ActionScheduler, email EmailService) *LeadService {
	return &LeadService{Repo: repo, Users: users, Orch: orch, Actions: actions, Email: email}
}

func (s *LeadService) Create(ctx context.Context, lead *models.Lead) error {
	if lead.Stage == "" {
		lead.Stage = models.StageNewLead
	}
	if _, err := pipeline.ConfigFor(lead.Stage); err != nil {
		return err
	}
	now := time.Now()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now
	return s.Repo.Create(ctx, lead)
}

func (s *LeadService) Update(ctx context.Context, lead *models.Lead) error {
	return s.Repo.Update(ctx, lead)
}

func (s *LeadService) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *LeadService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s *LeadService) ListPaginated(ctx context.Context, limit, offset int) ([]*models.Lead, error) {
	return s.Repo.ListPaginated(ctx, limit, offset)
}

func (s *LeadService) ListMy(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Lead, error) {
	return s.Repo.ListByOwner(ctx, ownerID, limit, offset)
}

// Filter narrows the listing by stage and/or owner. Zero values mean
// "no constraint" for that dimension.
func (s *LeadService) Filter(ctx context.Context, stage models.Stage, ownerID int64, limit, offset int) ([]*models.Lead, error) {
	return s.Repo.FilterLeads(ctx, stage, ownerID, limit, offset)
}

func (s *LeadService) StageHistory(ctx context.Context, leadID int64) ([]models.StageHistory, error) {
	return s.Repo.StageHistory(ctx, leadID)
}

// ChangeStage moves one lead to the target stage through the pipeline
// orchestrator. When a meeting date rides along on a successful change,
// a REMIND_MEETING action and a reminder email are produced as well.
func (s *LeadService) ChangeStage(ctx context.Context, leadID int64, target models.Stage, data models.StageData, actorID int64) (pipeline.TransitionResult, error) {
	lead, err := s.Repo.GetByID(ctx, leadID)
	if err != nil {
		return pipeline.TransitionResult{}, err
	}
	if lead == nil {
		return pipeline.TransitionResult{}, errors.New("lead not found")
	}

	res := s.Orch.ChangeStage(ctx, pipeline.TransitionRequest{
		LeadID:       leadID,
		CurrentStage: lead.Stage,
		TargetStage:  target,
		Data:         data,
		ActorID:      actorID,
	})

	if res.Success && data.MeetingDate != nil {
		s.scheduleMeetingReminder(ctx, lead, *data.MeetingDate)
	}

	return res, nil
}

// ChangeStageBulk applies one transition to every listed lead
// independently. Missing leads are reported per lead; the rest proceed.
func (s *LeadService) ChangeStageBulk(ctx context.Context, leadIDs []int64, target models.Stage, data models.StageData, actorID int64) pipeline.BulkResult {
	var (
		reqs    []pipeline.TransitionRequest
		missing []pipeline.BulkError
	)
	for _, id := range leadIDs {
		lead, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			missing = append(missing, pipeline.BulkError{LeadID: id, Error: err.Error()})
			continue
		}
		if lead == nil {
			missing = append(missing, pipeline.BulkError{LeadID: id, Error: "lead not found"})
			continue
		}
		reqs = append(reqs, pipeline.TransitionRequest{
			LeadID:       id,
			CurrentStage: lead.Stage,
			TargetStage:  target,
			Data:         data,
			ActorID:      actorID,
		})
	}

	res := s.Orch.ChangeStageBulk(ctx, reqs)
	res.FailedCount += len(missing)
	res.Errors = append(res.Errors, missing...)
	return res
}

// AssignOwner moves a lead to a new agent and tells that agent about it.
func (s *LeadService) AssignOwner(ctx context.Context, id, assigneeID int64, reason string) error {
	lead, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return errors.New("lead not found")
	}

	assignee, err := s.Users.GetByID(ctx, assigneeID)
	if err != nil {
		return err
	}
	if assignee == nil {
		return errors.New("assignee not found")
	}

	if err := s.Repo.UpdateOwner(ctx, id, assigneeID); err != nil {
		return err
	}

	if reason == "" {
		reason = "lead reassigned to you"
	}
	if err := s.Email.SendReassignmentNotice(assignee.Email, lead.Name, reason); err != nil {
		log.Printf("[leads] reassignment notice to %s failed for lead=%d: %v", assignee.Email, id, err)
	}
	return nil
}

func (s *LeadService) scheduleMeetingReminder(ctx context.Context, lead *models.Lead, meetingAt time.Time) {
	dueIn := time.Until(meetingAt) - meetingReminderLead
	if dueIn < 0 {
		dueIn = 0
	}
	payload := map[string]string{"meeting_at": meetingAt.Format(time.RFC3339)}
	if err := s.Actions.CreateAction(ctx, lead.ID, models.ActionRemindMeeting, payload, dueIn); err != nil {
		log.Printf("[leads] meeting reminder action failed for lead=%d: %v", lead.ID, err)
	}

	owner, err := s.Users.GetByID(ctx, lead.OwnerID)
	if err != nil || owner == nil {
		return
	}
	if err := s.Email.SendMeetingReminder(owner.Email, owner.FullName, lead.Name, meetingAt); err != nil {
		log.Printf("[leads] meeting reminder email to %s failed for lead=%d: %v", owner.Email, lead.ID, err)
	}
}

// Compile-time check that the repository satisfies the pipeline's store.
var _ pipeline.LeadStore = (*repositories.LeadRepository)(nil)
