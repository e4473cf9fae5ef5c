package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"estatecrm/internal/models"
	"estatecrm/internal/pipeline"
)

// CoachingService asks Gemini for next-step coaching when a lead turns
// potential. The generated recommendations are filed as a NURTURE action
// so the agent sees them in the normal task list.
type CoachingService struct {
	client  *genai.Client
	model   string
	dryRun  bool
	actions pipeline.ActionScheduler
}

func NewCoachingService(ctx context.Context, apiKey, model string, dryRun bool, actions pipeline.ActionScheduler) (*CoachingService, error) {
	svc := &CoachingService{
		model:   model,
		dryRun:  dryRun || strings.TrimSpace(apiKey) == "",
		actions: actions,
	}
	if svc.dryRun {
		log.Printf("[coaching] running in dry-run mode, no Gemini calls will be made")
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  strings.TrimSpace(apiKey),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// RequestCoaching implements pipeline.CoachingProvider.
func (s *CoachingService) RequestCoaching(ctx context.Context, req pipeline.TransitionRequest) (string, error) {
	var recommendations string

	if s.dryRun {
		recommendations = fmt.Sprintf(
			"Follow up on the buyer's feedback (%q), anchor on budget early, and push for a site visit this week.",
			strings.TrimSpace(req.Data.Feedback))
	} else {
		resp, err := s.client.Models.GenerateContent(
			ctx,
			s.model,
			genai.Text(buildCoachingPrompt(req)),
			&genai.GenerateContentConfig{CandidateCount: 1},
		)
		if err != nil {
			return "", fmt.Errorf("gemini: %w", err)
		}
		recommendations = strings.TrimSpace(resp.Text())
		if recommendations == "" {
			return "", fmt.Errorf("gemini: empty response")
		}
	}

	// best-effort: coaching is still delivered in the return value even
	// when the nurture action could not be filed
	if err := s.actions.CreateAction(ctx, req.LeadID, models.ActionNurture, map[string]string{"note": recommendations}, 0); err != nil {
		log.Printf("[coaching] failed to file nurture action for lead=%d: %v", req.LeadID, err)
	}

	return recommendations, nil
}

func buildCoachingPrompt(req pipeline.TransitionRequest) string {
	var b strings.Builder
	b.WriteString("You are a sales coach for real-estate agents.\n")
	b.WriteString("A lead just moved to the stage ")
	fmt.Fprintf(&b, "%q.\n", req.TargetStage)
	if f := strings.TrimSpace(req.Data.Feedback); f != "" {
		fmt.Fprintf(&b, "Latest call feedback from the agent: %q.\n", f)
	}
	if req.Data.Budget > 0 {
		fmt.Fprintf(&b, "Stated budget: %.0f.\n", req.Data.Budget)
	}
	b.WriteString("Give the agent 3 short, concrete recommendations for the next contact. Plain text, no markdown.")
	return b.String()
}
