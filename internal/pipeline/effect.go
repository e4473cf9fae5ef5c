package pipeline

import (
	"time"

	"estatecrm/internal/models"
)

// EffectKind tags the variant of an Effect.
type EffectKind int

const (
	EffectScheduleTask EffectKind = iota
	EffectRequestCoaching
	EffectRunInventoryMatch
	EffectSuggestReassignment
)

// Effect is a declarative follow-up instruction attached to a stage entry.
// Effects are executed exactly once per committed transition, in catalog
// order; the scheduler provides no deduplication.
type Effect struct {
	Kind       EffectKind
	ActionType models.ActionType // EffectScheduleTask only
	Payload    map[string]string // EffectScheduleTask only
	DueIn      time.Duration     // zero means no due time
	Reason     string            // EffectSuggestReassignment only
}

// ScheduleTask creates an instruction to schedule a follow-up action.
func ScheduleTask(t models.ActionType, payload map[string]string, dueIn time.Duration) Effect {
	return Effect{Kind: EffectScheduleTask, ActionType: t, Payload: payload, DueIn: dueIn}
}

// RequestCoaching creates an instruction to request AI coaching.
func RequestCoaching() Effect {
	return Effect{Kind: EffectRequestCoaching}
}

// RunInventoryMatch creates an instruction to run an inventory match
// against the budget criteria supplied with the transition.
func RunInventoryMatch() Effect {
	return Effect{Kind: EffectRunInventoryMatch}
}

// SuggestReassignment creates an instruction to flag the lead for a
// possible owner change.
func SuggestReassignment(reason string) Effect {
	return Effect{Kind: EffectSuggestReassignment, Reason: reason}
}
