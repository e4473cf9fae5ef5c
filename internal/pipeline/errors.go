package pipeline

import (
	"fmt"

	"estatecrm/internal/models"
)

// UnknownStageError is returned for any stage outside the closed set.
// It is always raised before any side effect runs.
type UnknownStageError struct {
	Stage models.Stage
}

func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("Unknown stage: %s", e.Stage)
}

// ValidationError means a required input for the target stage is missing.
// It is raised before persistence, so nothing has changed when it fires.
type ValidationError struct {
	Stage  models.Stage
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
