package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatecrm/internal/models"
)

type actionCall struct {
	leadID  int64
	typ     models.ActionType
	payload map[string]string
	dueIn   time.Duration
}

type fakeActions struct {
	calls []actionCall
	err   error
}

func (f *fakeActions) CreateAction(_ context.Context, leadID int64, t models.ActionType, payload map[string]string, dueIn time.Duration) error {
	f.calls = append(f.calls, actionCall{leadID: leadID, typ: t, payload: payload, dueIn: dueIn})
	return f.err
}

type fakeCoaching struct {
	calls int
	err   error
}

func (f *fakeCoaching) RequestCoaching(_ context.Context, _ TransitionRequest) (string, error) {
	f.calls++
	return "push for a meeting this week", f.err
}

type fakeInventory struct {
	calls   []BudgetCriteria
	summary *MatchSummary
	err     error
}

func (f *fakeInventory) RunMatch(_ context.Context, _ int64, criteria BudgetCriteria) (*MatchSummary, error) {
	f.calls = append(f.calls, criteria)
	return f.summary, f.err
}

type fakeAdvisor struct {
	reasons []string
	err     error
}

func (f *fakeAdvisor) SuggestReassignment(_ context.Context, _ int64, reason string) error {
	f.reasons = append(f.reasons, reason)
	return f.err
}

func newTestScheduler() (*Scheduler, *fakeActions, *fakeCoaching, *fakeInventory, *fakeAdvisor) {
	actions := &fakeActions{}
	coaching := &fakeCoaching{}
	inventory := &fakeInventory{summary: &MatchSummary{}}
	advisor := &fakeAdvisor{}
	return NewScheduler(actions, coaching, inventory, advisor), actions, coaching, inventory, advisor
}

func enter(stage models.Stage, data models.StageData) TransitionRequest {
	return TransitionRequest{LeadID: 42, TargetStage: stage, Data: data, ActorID: 7}
}

func TestOnEnterNewLead(t *testing.T) {
	s, actions, coaching, inventory, _ := newTestScheduler()

	summary, warnings := s.OnEnter(context.Background(), enter(models.StageNewLead, models.StageData{}))

	require.Len(t, actions.calls, 1)
	call := actions.calls[0]
	assert.Equal(t, int64(42), call.leadID)
	assert.Equal(t, models.ActionCallNow, call.typ)
	assert.Equal(t, 15*time.Minute, call.dueIn)
	assert.Equal(t, map[string]string{"sla": "15m"}, call.payload)

	assert.Zero(t, coaching.calls)
	assert.Empty(t, inventory.calls)
	assert.Nil(t, summary)
	assert.Empty(t, warnings)
}

func TestOnEnterPotentialRequestsCoachingThenMeeting(t *testing.T) {
	s, actions, coaching, _, _ := newTestScheduler()

	_, warnings := s.OnEnter(context.Background(), enter(models.StagePotential, models.StageData{Feedback: "keen"}))

	assert.Equal(t, 1, coaching.calls)
	require.Len(t, actions.calls, 1)
	assert.Equal(t, models.ActionPushMeeting, actions.calls[0].typ)
	assert.Zero(t, actions.calls[0].dueIn)
	assert.Empty(t, warnings)
}

func TestOnEnterClosedDealSchedulesTwoReferralAsks(t *testing.T) {
	s, actions, _, _, _ := newTestScheduler()

	_, warnings := s.OnEnter(context.Background(), enter(models.StageClosedDeal, models.StageData{}))

	require.Len(t, actions.calls, 2)
	assert.Equal(t, models.ActionAskForReferrals, actions.calls[0].typ)
	assert.Zero(t, actions.calls[0].dueIn)
	assert.Equal(t, models.ActionAskForReferrals, actions.calls[1].typ)
	assert.Equal(t, 30*24*60*time.Minute, actions.calls[1].dueIn)
	assert.Equal(t, map[string]string{"followup": "30d"}, actions.calls[1].payload)
	assert.Empty(t, warnings)
}

func TestOnEnterChangeFaceStagesAlsoSuggestReassignment(t *testing.T) {
	cases := []struct {
		stage  models.Stage
		data   models.StageData
		reason string
	}{
		{models.StageEOI, models.StageData{}, "Pre-launch reinforcement - second opinion"},
		{models.StageNonPotential, models.StageData{Feedback: "not interested"}, "Verify non potential classification"},
	}
	for _, tc := range cases {
		s, actions, _, _, advisor := newTestScheduler()
		_, warnings := s.OnEnter(context.Background(), enter(tc.stage, tc.data))

		require.Len(t, actions.calls, 1, "stage %q", tc.stage)
		assert.Equal(t, models.ActionChangeFace, actions.calls[0].typ)
		assert.Equal(t, map[string]string{"reason": tc.reason}, actions.calls[0].payload)
		require.Len(t, advisor.reasons, 1, "stage %q", tc.stage)
		assert.Equal(t, tc.reason, advisor.reasons[0])
		assert.Empty(t, warnings)
	}
}

func TestOnEnterLowBudgetRunsInventoryMatchOnly(t *testing.T) {
	s, actions, coaching, inventory, _ := newTestScheduler()
	inventory.summary = &MatchSummary{MatchCount: 2, TopItems: []string{"AZ-101", "AZ-214"}}

	data := models.StageData{DownPayment: 200_000, MonthlyInstallment: 18_000}
	summary, warnings := s.OnEnter(context.Background(), enter(models.StageLowBudget, data))

	require.Len(t, inventory.calls, 1)
	assert.Equal(t, BudgetCriteria{DownPayment: 200_000, MonthlyInstallment: 18_000}, inventory.calls[0])
	assert.Empty(t, actions.calls)
	assert.Zero(t, coaching.calls)
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.MatchCount)
	assert.Empty(t, warnings)
}

func TestOnEnterRetryStages(t *testing.T) {
	cases := []struct {
		stage   models.Stage
		dueIn   time.Duration
		payload map[string]string
	}{
		{models.StageNoAnswer, 120 * time.Minute, map[string]string{"attempt": "retry"}},
		{models.StageCallBack, 60 * time.Minute, map[string]string{"type": "callback"}},
		{models.StageSwitchedOff, 240 * time.Minute, map[string]string{"attempt": "retry_switched_off"}},
	}
	for _, tc := range cases {
		s, actions, _, _, _ := newTestScheduler()
		_, _ = s.OnEnter(context.Background(), enter(tc.stage, models.StageData{}))

		require.Len(t, actions.calls, 1, "stage %q", tc.stage)
		assert.Equal(t, models.ActionCallNow, actions.calls[0].typ)
		assert.Equal(t, tc.dueIn, actions.calls[0].dueIn)
		assert.Equal(t, tc.payload, actions.calls[0].payload)
	}
}

func TestOnEnterQuietStages(t *testing.T) {
	for _, stage := range []models.Stage{
		models.StageHotCase,
		models.StageMeetingDone,
		models.StageWrongNumber,
		models.StageWhatsapp,
	} {
		s, actions, coaching, inventory, advisor := newTestScheduler()
		summary, warnings := s.OnEnter(context.Background(), enter(stage, models.StageData{}))

		assert.Empty(t, actions.calls, "stage %q", stage)
		assert.Zero(t, coaching.calls, "stage %q", stage)
		assert.Empty(t, inventory.calls, "stage %q", stage)
		assert.Empty(t, advisor.reasons, "stage %q", stage)
		assert.Nil(t, summary)
		assert.Empty(t, warnings)
	}
}

// A coaching failure must not block the rest of the stage's effects.
func TestOnEnterCoachingFailureContinues(t *testing.T) {
	s, actions, coaching, _, _ := newTestScheduler()
	coaching.err = errors.New("model overloaded")

	_, warnings := s.OnEnter(context.Background(), enter(models.StagePotential, models.StageData{Feedback: "keen"}))

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "coaching request failed")
	require.Len(t, actions.calls, 1)
	assert.Equal(t, models.ActionPushMeeting, actions.calls[0].typ)
}

func TestOnEnterInventoryFailureBecomesWarning(t *testing.T) {
	s, _, _, inventory, _ := newTestScheduler()
	inventory.err = errors.New("db connection lost")

	summary, warnings := s.OnEnter(context.Background(), enter(models.StageLowBudget, models.StageData{Budget: 900_000}))

	assert.Nil(t, summary)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "inventory match failed")
}

// Calling OnEnter twice schedules duplicates: the scheduler deliberately
// provides no deduplication.
func TestOnEnterDoesNotDeduplicate(t *testing.T) {
	s, actions, _, _, _ := newTestScheduler()
	req := enter(models.StageNewLead, models.StageData{})

	_, _ = s.OnEnter(context.Background(), req)
	_, _ = s.OnEnter(context.Background(), req)

	assert.Len(t, actions.calls, 2)
}
