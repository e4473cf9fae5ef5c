package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"estatecrm/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	const query = `
		INSERT INTO leads (name, phone, source, project, stage, owner_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		lead.Name, lead.Phone, lead.Source, lead.Project, lead.Stage, lead.OwnerID,
		lead.CreatedAt, lead.UpdatedAt,
	).Scan(&lead.ID)
}

func (r *LeadRepository) Update(ctx context.Context, lead *models.Lead) error {
	const query = `
		UPDATE leads
		SET name=$1, phone=$2, source=$3, project=$4, owner_id=$5, updated_at=NOW()
		WHERE id=$6
	`
	_, err := r.db.ExecContext(ctx, query,
		lead.Name, lead.Phone, lead.Source, lead.Project, lead.OwnerID, lead.ID)
	return err
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	const query = `
		SELECT id, name, phone, source, project, stage, owner_id, created_at, updated_at
		FROM leads
		WHERE id=$1
	`
	lead := &models.Lead{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lead.ID, &lead.Name, &lead.Phone, &lead.Source, &lead.Project,
		&lead.Stage, &lead.OwnerID, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id=$1`, id)
	return err
}

// UpdateLeadStage commits a stage change and writes the audit row in one
// transaction. Everything supplied with the request lands in
// lead_stage_history, even fields the target stage did not require.
func (r *LeadRepository) UpdateLeadStage(ctx context.Context, leadID int64, stage models.Stage, actorID int64, data models.StageData) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var fromStage models.Stage
	if err := tx.QueryRowContext(ctx,
		`SELECT stage FROM leads WHERE id=$1 FOR UPDATE`, leadID,
	).Scan(&fromStage); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("lead not found")
		}
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE leads SET stage=$1, updated_at=NOW() WHERE id=$2`, stage, leadID,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO lead_stage_history
			(lead_id, from_stage, to_stage, actor_id, feedback, budget, down_payment, monthly_installment, meeting_date, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())`,
		leadID, fromStage, stage, actorID,
		data.Feedback, data.Budget, data.DownPayment, data.MonthlyInstallment, data.MeetingDate,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *LeadRepository) UpdateOwner(ctx context.Context, id, ownerID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE leads SET owner_id=$1, updated_at=NOW() WHERE id=$2`, ownerID, id)
	return err
}

func (r *LeadRepository) ListPaginated(ctx context.Context, limit, offset int) ([]*models.Lead, error) {
	const query = `
		SELECT id, name, phone, source, project, stage, owner_id, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryLeads(ctx, query, limit, offset)
}

func (r *LeadRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Lead, error) {
	const query = `
		SELECT id, name, phone, source, project, stage, owner_id, created_at, updated_at
		FROM leads
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryLeads(ctx, query, ownerID, limit, offset)
}

func (r *LeadRepository) FilterLeads(ctx context.Context, stage models.Stage, ownerID int64, limit, offset int) ([]*models.Lead, error) {
	query := `SELECT id, name, phone, source, project, stage, owner_id, created_at, updated_at FROM leads WHERE 1=1`
	args := []interface{}{}
	i := 1

	if stage != "" {
		query += fmt.Sprintf(" AND stage = $%d", i)
		args = append(args, stage)
		i++
	}
	if ownerID > 0 {
		query += fmt.Sprintf(" AND owner_id = $%d", i)
		args = append(args, ownerID)
		i++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, limit, offset)

	return r.queryLeads(ctx, query, args...)
}

// CountByStage returns the number of leads currently sitting in each stage.
func (r *LeadRepository) CountByStage(ctx context.Context) (map[models.Stage]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT stage, COUNT(*) FROM leads GROUP BY stage`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[models.Stage]int{}
	for rows.Next() {
		var stage models.Stage
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, err
		}
		out[stage] = count
	}
	return out, rows.Err()
}

func (r *LeadRepository) StageHistory(ctx context.Context, leadID int64) ([]models.StageHistory, error) {
	const query = `
		SELECT id, lead_id, from_stage, to_stage, actor_id, feedback, budget, down_payment, monthly_installment, meeting_date, created_at
		FROM lead_stage_history
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.StageHistory
	for rows.Next() {
		var h models.StageHistory
		if err := rows.Scan(
			&h.ID, &h.LeadID, &h.FromStage, &h.ToStage, &h.ActorID,
			&h.Feedback, &h.Budget, &h.DownPayment, &h.MonthlyInstallment,
			&h.MeetingDate, &h.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...interface{}) ([]*models.Lead, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Phone, &l.Source, &l.Project,
			&l.Stage, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
