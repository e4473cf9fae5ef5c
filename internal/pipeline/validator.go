package pipeline

import (
	"fmt"
	"strings"

	"estatecrm/internal/models"
)

// Validate checks whether a lead may enter target with the supplied data.
// A nil result means the transition is allowed.
//
// The current stage is accepted for interface symmetry but never
// inspected: the pipeline is a complete graph with per-target-node
// preconditions, not per-edge rules. Pure function, safe to call
// repeatedly and concurrently.
func Validate(current, target models.Stage, data models.StageData) error {
	cfg, err := ConfigFor(target)
	if err != nil {
		return err
	}

	switch cfg.Required {
	case RequireNothing:
		return nil
	case RequireFeedback:
		if strings.TrimSpace(data.Feedback) != "" {
			return nil
		}
		return &ValidationError{
			Stage:  target,
			Reason: fmt.Sprintf("Stage '%s' requires feedback", target),
		}
	case RequireBudgetOrInstallmentPlan:
		if data.Budget > 0 {
			return nil
		}
		if data.DownPayment > 0 && data.MonthlyInstallment > 0 {
			return nil
		}
		return &ValidationError{
			Stage:  target,
			Reason: fmt.Sprintf("Stage '%s' requires a budget, or both a down payment and a monthly installment", target),
		}
	}

	return &ValidationError{
		Stage:  target,
		Reason: fmt.Sprintf("Stage '%s' requires additional data", target),
	}
}
