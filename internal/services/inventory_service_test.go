package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatecrm/internal/models"
	"estatecrm/internal/pipeline"
)

type fakeUnitFinder struct {
	byBudget []models.Unit
	byPlan   []models.Unit
	err      error

	budgetCalls int
	planCalls   int
}

func (f *fakeUnitFinder) FindByBudget(_ context.Context, budget float64, limit int) ([]models.Unit, error) {
	f.budgetCalls++
	return f.byBudget, f.err
}

func (f *fakeUnitFinder) FindByInstallmentPlan(_ context.Context, downPayment, monthlyInstallment float64, limit int) ([]models.Unit, error) {
	f.planCalls++
	return f.byPlan, f.err
}

type recordedAction struct {
	leadID  int64
	typ     models.ActionType
	payload map[string]string
	dueIn   time.Duration
}

type fakeActionScheduler struct {
	calls []recordedAction
	err   error
}

func (f *fakeActionScheduler) CreateAction(_ context.Context, leadID int64, t models.ActionType, payload map[string]string, dueIn time.Duration) error {
	f.calls = append(f.calls, recordedAction{leadID: leadID, typ: t, payload: payload, dueIn: dueIn})
	return f.err
}

func TestRunMatchUsesBudgetWhenPresent(t *testing.T) {
	finder := &fakeUnitFinder{byBudget: []models.Unit{
		{Project: "Marina Heights", UnitCode: "MH-101", Price: 900000},
		{Project: "Marina Heights", UnitCode: "MH-204", Price: 950000},
	}}
	actions := &fakeActionScheduler{}
	svc := NewInventoryService(finder, actions)

	summary, err := svc.RunMatch(context.Background(), 7, pipeline.BudgetCriteria{Budget: 1000000})
	require.NoError(t, err)

	assert.Equal(t, 1, finder.budgetCalls)
	assert.Equal(t, 0, finder.planCalls)
	assert.Equal(t, 2, summary.MatchCount)
	assert.Equal(t, []string{"Marina Heights MH-101", "Marina Heights MH-204"}, summary.TopItems)
	assert.Contains(t, summary.Recommendation, "MH-101")
	assert.Empty(t, actions.calls)
}

func TestRunMatchFallsBackToInstallmentPlan(t *testing.T) {
	finder := &fakeUnitFinder{byPlan: []models.Unit{
		{Project: "Palm Gardens", UnitCode: "PG-12", Price: 600000},
	}}
	svc := NewInventoryService(finder, &fakeActionScheduler{})

	summary, err := svc.RunMatch(context.Background(), 7, pipeline.BudgetCriteria{
		DownPayment:        50000,
		MonthlyInstallment: 4000,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, finder.budgetCalls)
	assert.Equal(t, 1, finder.planCalls)
	assert.Equal(t, 1, summary.MatchCount)
}

func TestRunMatchZeroMatchesFilesRecheckAction(t *testing.T) {
	finder := &fakeUnitFinder{}
	actions := &fakeActionScheduler{}
	svc := NewInventoryService(finder, actions)

	summary, err := svc.RunMatch(context.Background(), 42, pipeline.BudgetCriteria{Budget: 100})
	require.NoError(t, err)

	// zero matches is a reported outcome, not an error
	assert.Equal(t, 0, summary.MatchCount)
	assert.Empty(t, summary.TopItems)
	assert.Contains(t, summary.Recommendation, "No available units")

	require.Len(t, actions.calls, 1)
	assert.Equal(t, int64(42), actions.calls[0].leadID)
	assert.Equal(t, models.ActionCheckInventory, actions.calls[0].typ)
	assert.Equal(t, 7*24*time.Hour, actions.calls[0].dueIn)
}

func TestRunMatchZeroMatchesSurvivesActionFailure(t *testing.T) {
	finder := &fakeUnitFinder{}
	actions := &fakeActionScheduler{err: errors.New("db down")}
	svc := NewInventoryService(finder, actions)

	summary, err := svc.RunMatch(context.Background(), 42, pipeline.BudgetCriteria{Budget: 100})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.MatchCount)
}

func TestRunMatchPropagatesFinderError(t *testing.T) {
	finder := &fakeUnitFinder{err: errors.New("query failed")}
	svc := NewInventoryService(finder, &fakeActionScheduler{})

	_, err := svc.RunMatch(context.Background(), 1, pipeline.BudgetCriteria{Budget: 500})
	require.Error(t, err)
}
