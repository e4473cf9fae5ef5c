package pipeline

import (
	"context"
	"fmt"

	"estatecrm/internal/models"
)

// LeadStore persists the stage mutation together with the supplied data
// as an audit record. It is the only storage call the orchestrator makes.
type LeadStore interface {
	UpdateLeadStage(ctx context.Context, leadID int64, stage models.Stage, actorID int64, data models.StageData) error
}

// TransitionRequest is the ephemeral command consumed by ChangeStage.
// It is created per user action and never persisted as its own entity.
type TransitionRequest struct {
	LeadID       int64
	CurrentStage models.Stage
	TargetStage  models.Stage
	Data         models.StageData
	ActorID      int64
}

// TransitionResult is returned once per request. A committed stage
// change reports Success even when a secondary effect failed afterwards;
// those failures surface in Warnings. There is no multi-step transaction
// to roll back — partial failure after the commit is by design.
type TransitionResult struct {
	Success     bool          `json:"success"`
	ErrorReason string        `json:"error_reason,omitempty"`
	Warnings    []string      `json:"warnings,omitempty"`
	Inventory   *MatchSummary `json:"inventory,omitempty"`
}

// BulkResult aggregates an independent per-lead bulk run.
type BulkResult struct {
	SuccessCount int         `json:"success_count"`
	FailedCount  int         `json:"failed_count"`
	Errors       []BulkError `json:"errors,omitempty"`
}

type BulkError struct {
	LeadID int64  `json:"lead_id"`
	Error  string `json:"error"`
}

// Orchestrator is the entry point for stage changes: validate, persist
// via the store, run the on-enter effects, report the outcome.
type Orchestrator struct {
	store     LeadStore
	scheduler *Scheduler
}

func NewOrchestrator(store LeadStore, scheduler *Scheduler) *Orchestrator {
	return &Orchestrator{store: store, scheduler: scheduler}
}

// ChangeStage applies a single transition. Validation failures return
// before persistence; persistence failures return before any effect runs.
func (o *Orchestrator) ChangeStage(ctx context.Context, req TransitionRequest) TransitionResult {
	if err := Validate(req.CurrentStage, req.TargetStage, req.Data); err != nil {
		return TransitionResult{ErrorReason: err.Error()}
	}

	if err := o.store.UpdateLeadStage(ctx, req.LeadID, req.TargetStage, req.ActorID, req.Data); err != nil {
		return TransitionResult{ErrorReason: fmt.Sprintf("failed to persist stage change: %v", err)}
	}

	summary, warnings := o.scheduler.OnEnter(ctx, req)
	return TransitionResult{Success: true, Warnings: warnings, Inventory: summary}
}

// ChangeStageBulk applies one transition per request independently.
// A per-lead failure never cancels or rolls back its siblings; the
// aggregate reports every failure alongside the successes.
func (o *Orchestrator) ChangeStageBulk(ctx context.Context, reqs []TransitionRequest) BulkResult {
	var out BulkResult
	for _, req := range reqs {
		res := o.ChangeStage(ctx, req)
		if res.Success {
			out.SuccessCount++
			continue
		}
		out.FailedCount++
		out.Errors = append(out.Errors, BulkError{LeadID: req.LeadID, Error: res.ErrorReason})
	}
	return out
}
