package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"estatecrm/internal/models"
)

// ActionScheduler schedules a follow-up action against a lead.
// dueIn of zero means the action has no due time.
type ActionScheduler interface {
	CreateAction(ctx context.Context, leadID int64, t models.ActionType, payload map[string]string, dueIn time.Duration) error
}

// CoachingProvider requests AI coaching recommendations for a transition.
// Where the recommendations end up is the provider's business; the
// scheduler only fires the request.
type CoachingProvider interface {
	RequestCoaching(ctx context.Context, req TransitionRequest) (string, error)
}

// BudgetCriteria are the financial constraints an inventory match runs
// against, taken verbatim from the transition data.
type BudgetCriteria struct {
	Budget             float64
	DownPayment        float64
	MonthlyInstallment float64
}

// MatchSummary is the outcome of an inventory match. Zero matches is a
// first-class, explicitly reported result, not an error.
type MatchSummary struct {
	MatchCount     int      `json:"match_count"`
	TopItems       []string `json:"top_items,omitempty"`
	Recommendation string   `json:"recommendation"`
}

// InventoryMatcher searches available inventory for units fitting the
// given budget criteria.
type InventoryMatcher interface {
	RunMatch(ctx context.Context, leadID int64, criteria BudgetCriteria) (*MatchSummary, error)
}

// ReassignmentAdvisor flags a lead for a possible owner change.
type ReassignmentAdvisor interface {
	SuggestReassignment(ctx context.Context, leadID int64, reason string) error
}

// Scheduler executes the on-enter effects of a stage against the
// injected capabilities. It never touches storage directly.
type Scheduler struct {
	actions   ActionScheduler
	coaching  CoachingProvider
	inventory InventoryMatcher
	advisor   ReassignmentAdvisor
}

func NewScheduler(actions ActionScheduler, coaching CoachingProvider, inventory InventoryMatcher, advisor ReassignmentAdvisor) *Scheduler {
	return &Scheduler{actions: actions, coaching: coaching, inventory: inventory, advisor: advisor}
}

// OnEnter runs the target stage's effects sequentially in catalog order.
// By the time effects fire the stage change is already committed, so a
// failed effect cannot roll anything back: each failure is logged and
// reported as a warning, and the remaining effects still run.
func (s *Scheduler) OnEnter(ctx context.Context, req TransitionRequest) (*MatchSummary, []string) {
	cfg, err := ConfigFor(req.TargetStage)
	if err != nil {
		// unreachable after validation, but never schedule for an unknown stage
		return nil, []string{err.Error()}
	}

	var summary *MatchSummary
	var warnings []string

	for _, ef := range cfg.OnEnter {
		switch ef.Kind {
		case EffectScheduleTask:
			if err := s.actions.CreateAction(ctx, req.LeadID, ef.ActionType, ef.Payload, ef.DueIn); err != nil {
				log.Printf("[pipeline][effects] lead=%d stage=%q: create %s action failed: %v", req.LeadID, req.TargetStage, ef.ActionType, err)
				warnings = append(warnings, fmt.Sprintf("%s action was not scheduled: %v", ef.ActionType, err))
			}
		case EffectRequestCoaching:
			if _, err := s.coaching.RequestCoaching(ctx, req); err != nil {
				log.Printf("[pipeline][effects] lead=%d stage=%q: coaching request failed: %v", req.LeadID, req.TargetStage, err)
				warnings = append(warnings, fmt.Sprintf("coaching request failed: %v", err))
			}
		case EffectRunInventoryMatch:
			m, err := s.inventory.RunMatch(ctx, req.LeadID, BudgetCriteria{
				Budget:             req.Data.Budget,
				DownPayment:        req.Data.DownPayment,
				MonthlyInstallment: req.Data.MonthlyInstallment,
			})
			if err != nil {
				log.Printf("[pipeline][effects] lead=%d stage=%q: inventory match failed: %v", req.LeadID, req.TargetStage, err)
				warnings = append(warnings, fmt.Sprintf("inventory match failed: %v", err))
				continue
			}
			summary = m
		case EffectSuggestReassignment:
			if err := s.advisor.SuggestReassignment(ctx, req.LeadID, ef.Reason); err != nil {
				log.Printf("[pipeline][effects] lead=%d stage=%q: reassignment suggestion failed: %v", req.LeadID, req.TargetStage, err)
				warnings = append(warnings, fmt.Sprintf("reassignment suggestion failed: %v", err))
			}
		}
	}

	return summary, warnings
}
