package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatecrm/internal/models"
)

func TestValidatePotentialNeedsFeedback(t *testing.T) {
	err := Validate(models.StageNewLead, models.StagePotential, models.StageData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feedback")

	err = Validate(models.StageNewLead, models.StagePotential, models.StageData{Feedback: "asked for payment plans"})
	assert.NoError(t, err)

	// whitespace is not feedback
	err = Validate(models.StageNewLead, models.StagePotential, models.StageData{Feedback: "   "})
	assert.Error(t, err)
}

func TestValidateNonPotentialNeedsFeedback(t *testing.T) {
	err := Validate(models.StageHotCase, models.StageNonPotential, models.StageData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feedback")

	err = Validate(models.StageHotCase, models.StageNonPotential, models.StageData{Feedback: "not interested, relocating"})
	assert.NoError(t, err)
}

func TestValidateLowBudgetOrRule(t *testing.T) {
	target := models.StageLowBudget

	err := Validate(models.StageNewLead, target, models.StageData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget")
	assert.Contains(t, err.Error(), "down payment")
	assert.Contains(t, err.Error(), "monthly installment")

	assert.NoError(t, Validate(models.StageNewLead, target, models.StageData{Budget: 1_000_000}))

	// a down payment alone is not enough
	assert.Error(t, Validate(models.StageNewLead, target, models.StageData{DownPayment: 1}))
	assert.Error(t, Validate(models.StageNewLead, target, models.StageData{MonthlyInstallment: 1}))

	assert.NoError(t, Validate(models.StageNewLead, target, models.StageData{DownPayment: 1, MonthlyInstallment: 1}))
}

func TestValidateNoRequirementStages(t *testing.T) {
	for _, stage := range []models.Stage{
		models.StageNewLead,
		models.StageHotCase,
		models.StageMeetingDone,
		models.StageEOI,
		models.StageClosedDeal,
		models.StageWrongNumber,
		models.StageNoAnswer,
		models.StageCallBack,
		models.StageWhatsapp,
		models.StageSwitchedOff,
	} {
		assert.NoError(t, Validate(models.StagePotential, stage, models.StageData{}), "stage %q", stage)
	}
}

func TestValidateUnknownTargetStage(t *testing.T) {
	err := Validate(models.StageNewLead, "NotAStage", models.StageData{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown stage")
}

// Validation never inspects the current stage: a target is reachable
// from every stage, including itself and an unknown current value.
func TestValidateIgnoresCurrentStage(t *testing.T) {
	data := models.StageData{Feedback: "x"}
	for _, current := range []models.Stage{models.StageClosedDeal, models.StageWrongNumber, "garbage", ""} {
		assert.NoError(t, Validate(current, models.StagePotential, data), "current %q", current)
	}
}

func TestValidateIsPure(t *testing.T) {
	data := models.StageData{DownPayment: 50_000}
	first := Validate(models.StageNewLead, models.StageLowBudget, data)
	second := Validate(models.StageNewLead, models.StageLowBudget, data)
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}
