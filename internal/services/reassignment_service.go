package services

import (
	"context"
	"fmt"
	"log"

	"estatecrm/internal/authz"
	"estatecrm/internal/repositories"
)

// ReassignmentService notifies management when a lead is flagged for a
// possible owner change. It implements pipeline.ReassignmentAdvisor.
type ReassignmentService struct {
	leads *repositories.LeadRepository
	users repositories.UserRepository
	email EmailService
}

func NewReassignmentService(leads *repositories.LeadRepository, users repositories.UserRepository, email EmailService) *ReassignmentService {
	return &ReassignmentService{leads: leads, users: users, email: email}
}

// SuggestReassignment emails every management user about the suggestion.
// Delivery is best-effort per recipient; the suggestion is considered
// recorded once at least the lookup succeeded.
func (s *ReassignmentService) SuggestReassignment(ctx context.Context, leadID int64, reason string) error {
	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return fmt.Errorf("lead not found")
	}

	managers, err := s.users.ListByRole(ctx, authz.RoleManagement)
	if err != nil {
		return err
	}
	if len(managers) == 0 {
		log.Printf("[reassign] no management users to notify for lead=%d", leadID)
		return nil
	}

	for _, m := range managers {
		if err := s.email.SendReassignmentNotice(m.Email, lead.Name, reason); err != nil {
			log.Printf("[reassign] notice to %s failed for lead=%d: %v", m.Email, leadID, err)
		}
	}
	return nil
}
