package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatecrm/internal/models"
)

func TestConfigForCoversEveryStage(t *testing.T) {
	require.Len(t, stageCatalog, len(models.AllStages))
	for _, stage := range models.AllStages {
		_, err := ConfigFor(stage)
		require.NoError(t, err, "stage %q must have a config", stage)
	}
}

func TestConfigForRejectsUnknownStage(t *testing.T) {
	_, err := ConfigFor("Archived")
	require.Error(t, err)

	var unknown *UnknownStageError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, models.Stage("Archived"), unknown.Stage)
	assert.Contains(t, err.Error(), "Unknown stage")
}

func TestCatalogRequirements(t *testing.T) {
	cases := map[models.Stage]Requirement{
		models.StagePotential:    RequireFeedback,
		models.StageNonPotential: RequireFeedback,
		models.StageLowBudget:    RequireBudgetOrInstallmentPlan,
	}
	for _, stage := range models.AllStages {
		cfg, err := ConfigFor(stage)
		require.NoError(t, err)

		want, ok := cases[stage]
		if !ok {
			want = RequireNothing
		}
		assert.Equal(t, want, cfg.Required, "stage %q", stage)
	}
}

func TestCatalogQuietStagesScheduleNothing(t *testing.T) {
	for _, stage := range []models.Stage{
		models.StageHotCase,
		models.StageMeetingDone,
		models.StageWrongNumber,
		models.StageWhatsapp,
	} {
		cfg, err := ConfigFor(stage)
		require.NoError(t, err)
		assert.Empty(t, cfg.OnEnter, "stage %q", stage)
	}
}
