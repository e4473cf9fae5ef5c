package pipeline

import (
	"time"

	"estatecrm/internal/models"
)

// Requirement describes the inputs a stage demands before a lead may
// enter it. The rules are keyed solely by the target stage — there are
// no per-edge rules, so any stage is reachable from any other as long
// as the target's own requirements are met.
type Requirement int

const (
	RequireNothing Requirement = iota
	// RequireFeedback: non-empty feedback text.
	RequireFeedback
	// RequireBudgetOrInstallmentPlan: a total budget, OR both a down
	// payment and a monthly installment.
	RequireBudgetOrInstallmentPlan
)

// StageConfig holds the per-stage rules: the required inputs and the
// ordered list of effects to schedule on entry. Pure data, defined once
// at process start, never mutated.
type StageConfig struct {
	Required Requirement
	OnEnter  []Effect
}

var stageCatalog = map[models.Stage]StageConfig{
	models.StageNewLead: {
		OnEnter: []Effect{
			ScheduleTask(models.ActionCallNow, map[string]string{"sla": "15m"}, 15*time.Minute),
		},
	},
	models.StagePotential: {
		Required: RequireFeedback,
		OnEnter: []Effect{
			RequestCoaching(),
			ScheduleTask(models.ActionPushMeeting, nil, 0),
		},
	},
	models.StageHotCase:     {},
	models.StageMeetingDone: {},
	models.StageEOI: {
		OnEnter: []Effect{
			ScheduleTask(models.ActionChangeFace, map[string]string{"reason": "Pre-launch reinforcement - second opinion"}, 0),
			SuggestReassignment("Pre-launch reinforcement - second opinion"),
		},
	},
	models.StageClosedDeal: {
		OnEnter: []Effect{
			ScheduleTask(models.ActionAskForReferrals, nil, 0),
			ScheduleTask(models.ActionAskForReferrals, map[string]string{"followup": "30d"}, 30*24*time.Hour),
		},
	},
	models.StageNonPotential: {
		Required: RequireFeedback,
		OnEnter: []Effect{
			ScheduleTask(models.ActionChangeFace, map[string]string{"reason": "Verify non potential classification"}, 0),
			SuggestReassignment("Verify non potential classification"),
		},
	},
	models.StageLowBudget: {
		Required: RequireBudgetOrInstallmentPlan,
		OnEnter: []Effect{
			RunInventoryMatch(),
		},
	},
	models.StageWrongNumber: {},
	models.StageNoAnswer: {
		OnEnter: []Effect{
			ScheduleTask(models.ActionCallNow, map[string]string{"attempt": "retry"}, 120*time.Minute),
		},
	},
	models.StageCallBack: {
		OnEnter: []Effect{
			ScheduleTask(models.ActionCallNow, map[string]string{"type": "callback"}, 60*time.Minute),
		},
	},
	models.StageWhatsapp: {},
	models.StageSwitchedOff: {
		OnEnter: []Effect{
			ScheduleTask(models.ActionCallNow, map[string]string{"attempt": "retry_switched_off"}, 240*time.Minute),
		},
	},
}

// ConfigFor looks up the config for a stage. Stages outside the closed
// set fail with UnknownStageError, never a zero-value config.
func ConfigFor(stage models.Stage) (StageConfig, error) {
	cfg, ok := stageCatalog[stage]
	if !ok {
		return StageConfig{}, &UnknownStageError{Stage: stage}
	}
	return cfg, nil
}
