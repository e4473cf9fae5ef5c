package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatecrm/internal/models"
	"estatecrm/internal/pipeline"
)

func TestCoachingDryRunFilesNurtureAction(t *testing.T) {
	actions := &fakeActionScheduler{}
	svc, err := NewCoachingService(context.Background(), "", "gemini-2.0-flash", false, actions)
	require.NoError(t, err)

	req := pipeline.TransitionRequest{
		LeadID:      9,
		TargetStage: models.StagePotential,
		Data:        models.StageData{Feedback: "wants a 2BR near the marina"},
	}
	out, err := svc.RequestCoaching(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, out, "wants a 2BR near the marina")

	require.Len(t, actions.calls, 1)
	assert.Equal(t, int64(9), actions.calls[0].leadID)
	assert.Equal(t, models.ActionNurture, actions.calls[0].typ)
	assert.Equal(t, out, actions.calls[0].payload["note"])
}

func TestCoachingEmptyKeyForcesDryRun(t *testing.T) {
	svc, err := NewCoachingService(context.Background(), "   ", "gemini-2.0-flash", false, &fakeActionScheduler{})
	require.NoError(t, err)
	assert.True(t, svc.dryRun)
}
