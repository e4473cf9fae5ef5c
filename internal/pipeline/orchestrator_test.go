package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatecrm/internal/models"
)

type storeCall struct {
	leadID  int64
	stage   models.Stage
	actorID int64
	data    models.StageData
}

type fakeStore struct {
	calls  []storeCall
	err    error
	failID int64 // if set, only this lead fails
}

func (f *fakeStore) UpdateLeadStage(_ context.Context, leadID int64, stage models.Stage, actorID int64, data models.StageData) error {
	if f.failID != 0 && leadID == f.failID {
		return errors.New("write conflict")
	}
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, storeCall{leadID: leadID, stage: stage, actorID: actorID, data: data})
	return nil
}

func newTestOrchestrator() (*Orchestrator, *fakeStore, *fakeActions, *fakeInventory) {
	store := &fakeStore{}
	actions := &fakeActions{}
	inventory := &fakeInventory{summary: &MatchSummary{}}
	sched := NewScheduler(actions, &fakeCoaching{}, inventory, &fakeAdvisor{})
	return NewOrchestrator(store, sched), store, actions, inventory
}

func TestChangeStageValidationFailureTouchesNothing(t *testing.T) {
	o, store, actions, _ := newTestOrchestrator()

	res := o.ChangeStage(context.Background(), TransitionRequest{
		LeadID:       1,
		CurrentStage: models.StageNewLead,
		TargetStage:  models.StagePotential,
	})

	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorReason, "feedback")
	assert.Empty(t, store.calls, "validation failure must not reach persistence")
	assert.Empty(t, actions.calls, "validation failure must not schedule effects")
}

func TestChangeStageUnknownStageRejected(t *testing.T) {
	o, store, _, _ := newTestOrchestrator()

	res := o.ChangeStage(context.Background(), TransitionRequest{LeadID: 1, TargetStage: "NotAStage"})

	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorReason, "Unknown stage")
	assert.Empty(t, store.calls)
}

func TestChangeStagePersistenceFailureSkipsEffects(t *testing.T) {
	o, store, actions, _ := newTestOrchestrator()
	store.err = errors.New("connection refused")

	res := o.ChangeStage(context.Background(), TransitionRequest{LeadID: 1, TargetStage: models.StageNewLead})

	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorReason, "failed to persist")
	assert.Empty(t, actions.calls, "effects must not run when the write failed")
}

func TestChangeStagePersistsSuppliedDataAsAudit(t *testing.T) {
	o, store, _, _ := newTestOrchestrator()

	data := models.StageData{Feedback: "wants a 3BR in phase 2"}
	res := o.ChangeStage(context.Background(), TransitionRequest{
		LeadID:      9,
		TargetStage: models.StagePotential,
		Data:        data,
		ActorID:     3,
	})

	require.True(t, res.Success)
	require.Len(t, store.calls, 1)
	assert.Equal(t, models.StagePotential, store.calls[0].stage)
	assert.Equal(t, int64(3), store.calls[0].actorID)
	assert.Equal(t, data, store.calls[0].data)
}

func TestChangeStageLowBudgetSurfacesInventorySummary(t *testing.T) {
	o, _, _, inventory := newTestOrchestrator()
	inventory.summary = &MatchSummary{MatchCount: 3, TopItems: []string{"B-12"}, Recommendation: "offer phase 1 resale"}

	res := o.ChangeStage(context.Background(), TransitionRequest{
		LeadID:      5,
		TargetStage: models.StageLowBudget,
		Data:        models.StageData{Budget: 800_000},
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Inventory)
	assert.Equal(t, 3, res.Inventory.MatchCount)
}

// Zero matches is reported as a normal outcome, never an error.
func TestChangeStageLowBudgetZeroMatchesIsSuccess(t *testing.T) {
	o, _, _, inventory := newTestOrchestrator()
	inventory.summary = &MatchSummary{MatchCount: 0, Recommendation: "no units fit this budget"}

	res := o.ChangeStage(context.Background(), TransitionRequest{
		LeadID:      5,
		TargetStage: models.StageLowBudget,
		Data:        models.StageData{Budget: 100},
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Inventory)
	assert.Zero(t, res.Inventory.MatchCount)
	assert.NotEmpty(t, res.Inventory.Recommendation)
}

func TestChangeStageEffectFailureIsDegradedSuccess(t *testing.T) {
	o, store, actions, _ := newTestOrchestrator()
	actions.err = errors.New("scheduler down")

	res := o.ChangeStage(context.Background(), TransitionRequest{LeadID: 2, TargetStage: models.StageNewLead})

	// the stage mutation already committed, so this is still a success
	assert.True(t, res.Success)
	require.Len(t, store.calls, 1)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "CALL_NOW")
}

func TestChangeStageBulkContinuesPastFailures(t *testing.T) {
	o, _, _, _ := newTestOrchestrator()

	reqs := []TransitionRequest{
		{LeadID: 1, TargetStage: models.StagePotential, Data: models.StageData{Feedback: "ok"}},
		{LeadID: 2, TargetStage: models.StagePotential}, // missing feedback
		{LeadID: 3, TargetStage: models.StagePotential, Data: models.StageData{Feedback: "ok"}},
	}
	res := o.ChangeStageBulk(context.Background(), reqs)

	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.FailedCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, int64(2), res.Errors[0].LeadID)
	assert.Contains(t, res.Errors[0].Error, "feedback")
}

func TestChangeStageBulkPersistenceFailureDoesNotAbortSiblings(t *testing.T) {
	o, store, _, _ := newTestOrchestrator()
	store.failID = 2

	reqs := []TransitionRequest{
		{LeadID: 1, TargetStage: models.StageHotCase},
		{LeadID: 2, TargetStage: models.StageHotCase},
		{LeadID: 3, TargetStage: models.StageHotCase},
	}
	res := o.ChangeStageBulk(context.Background(), reqs)

	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.Len(t, store.calls, 2)
}
