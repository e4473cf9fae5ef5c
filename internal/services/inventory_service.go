package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"estatecrm/internal/models"
	"estatecrm/internal/pipeline"
)

const (
	matchTopN           = 5
	inventoryRecheckDue = 7 * 24 * time.Hour
)

// UnitFinder is the slice of the inventory repository the matcher needs.
type UnitFinder interface {
	FindByBudget(ctx context.Context, budget float64, limit int) ([]models.Unit, error)
	FindByInstallmentPlan(ctx context.Context, downPayment, monthlyInstallment float64, limit int) ([]models.Unit, error)
}

// InventoryService matches available units against a buyer's budget
// criteria. It implements pipeline.InventoryMatcher.
type InventoryService struct {
	units   UnitFinder
	actions pipeline.ActionScheduler
}

func NewInventoryService(units UnitFinder, actions pipeline.ActionScheduler) *InventoryService {
	return &InventoryService{units: units, actions: actions}
}

// RunMatch searches inventory against the criteria. Zero matches is a
// normal, fully reported outcome; in that case a CHECK_INVENTORY action
// is filed so the agent re-checks once new stock lands.
func (s *InventoryService) RunMatch(ctx context.Context, leadID int64, criteria pipeline.BudgetCriteria) (*pipeline.MatchSummary, error) {
	var (
		units []models.Unit
		err   error
	)
	if criteria.Budget > 0 {
		units, err = s.units.FindByBudget(ctx, criteria.Budget, matchTopN)
	} else {
		units, err = s.units.FindByInstallmentPlan(ctx, criteria.DownPayment, criteria.MonthlyInstallment, matchTopN)
	}
	if err != nil {
		return nil, err
	}

	summary := &pipeline.MatchSummary{
		MatchCount:     len(units),
		Recommendation: buildRecommendation(criteria, units),
	}
	for _, u := range units {
		summary.TopItems = append(summary.TopItems, fmt.Sprintf("%s %s", u.Project, u.UnitCode))
	}

	if len(units) == 0 {
		if err := s.actions.CreateAction(ctx, leadID, models.ActionCheckInventory,
			map[string]string{"reason": "no units matched the stated budget"}, inventoryRecheckDue); err != nil {
			log.Printf("[inventory] failed to file recheck action for lead=%d: %v", leadID, err)
		}
	}

	return summary, nil
}

func buildRecommendation(criteria pipeline.BudgetCriteria, units []models.Unit) string {
	budget := describeCriteria(criteria)
	if len(units) == 0 {
		return fmt.Sprintf("No available units fit %s. Keep the lead warm and re-check when new inventory lands.", budget)
	}

	projects := map[string]bool{}
	var order []string
	for _, u := range units {
		if !projects[u.Project] {
			projects[u.Project] = true
			order = append(order, u.Project)
		}
	}
	return fmt.Sprintf("%d unit(s) fit %s. Start with %s (%s) and offer the cheapest option first.",
		len(units), budget, units[0].UnitCode, strings.Join(order, ", "))
}

func describeCriteria(criteria pipeline.BudgetCriteria) string {
	if criteria.Budget > 0 {
		return fmt.Sprintf("a budget of %.0f", criteria.Budget)
	}
	return fmt.Sprintf("a %.0f down payment with %.0f monthly", criteria.DownPayment, criteria.MonthlyInstallment)
}
