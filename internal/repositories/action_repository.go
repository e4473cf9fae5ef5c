package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"estatecrm/internal/models"
)

type ActionRepository interface {
	Store(ctx context.Context, action *models.Action) error
	FindByID(ctx context.Context, id int64) (*models.Action, error)
	FindAll(ctx context.Context, filter models.ActionFilter) ([]models.Action, error)
	UpdateStatus(ctx context.Context, id int64, to models.ActionStatus) error
	ListDue(ctx context.Context, limit int) ([]models.Action, error)
	Delete(ctx context.Context, id int64) error
}

type actionRepository struct {
	db *sql.DB
}

func NewActionRepository(db *sql.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Store(ctx context.Context, action *models.Action) error {
	payload, err := marshalPayload(action.Payload)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO actions (lead_id, assignee_id, type, payload, status, due_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		action.LeadID, action.AssigneeID, action.Type, payload, action.Status,
		action.DueAt, action.CreatedAt, action.UpdatedAt,
	).Scan(&action.ID, &action.CreatedAt, &action.UpdatedAt)
}

func (r *actionRepository) FindByID(ctx context.Context, id int64) (*models.Action, error) {
	const query = `
		SELECT id, lead_id, assignee_id, type, payload, status, due_at, created_at, updated_at
		FROM actions WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	action, err := scanAction(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("action not found")
		}
		return nil, err
	}
	return action, nil
}

func (r *actionRepository) FindAll(ctx context.Context, filter models.ActionFilter) ([]models.Action, error) {
	baseQuery := `SELECT id, lead_id, assignee_id, type, payload, status, due_at, created_at, updated_at FROM actions`

	conditions := []string{}
	args := []interface{}{}
	argID := 1

	if filter.AssigneeID != nil {
		conditions = append(conditions, fmt.Sprintf("assignee_id = $%d", argID))
		args = append(args, *filter.AssigneeID)
		argID++
	}
	if filter.LeadID != nil {
		conditions = append(conditions, fmt.Sprintf("lead_id = $%d", argID))
		args = append(args, *filter.LeadID)
		argID++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argID))
		args = append(args, *filter.Status)
		argID++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argID))
		args = append(args, *filter.Type)
		argID++
	}

	if len(conditions) > 0 {
		baseQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY due_at ASC NULLS LAST, created_at DESC"

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Action
	for rows.Next() {
		action, err := scanAction(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *action)
	}
	return out, rows.Err()
}

func (r *actionRepository) UpdateStatus(ctx context.Context, id int64, to models.ActionStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE actions SET status=$1, updated_at=NOW() WHERE id=$2`, to, id)
	return err
}

// ListDue returns pending actions whose due time has passed.
func (r *actionRepository) ListDue(ctx context.Context, limit int) ([]models.Action, error) {
	const query = `
		SELECT id, lead_id, assignee_id, type, payload, status, due_at, created_at, updated_at
		FROM actions
		WHERE status = 'pending'
		  AND due_at IS NOT NULL
		  AND due_at <= NOW()
		ORDER BY due_at ASC
		LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Action
	for rows.Next() {
		action, err := scanAction(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *action)
	}
	return out, rows.Err()
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM actions WHERE id = $1`, id)
	return err
}

func marshalPayload(payload map[string]string) ([]byte, error) {
	if len(payload) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(payload)
}

func scanAction(scan func(dest ...interface{}) error) (*models.Action, error) {
	var a models.Action
	var payload []byte
	if err := scan(
		&a.ID, &a.LeadID, &a.AssigneeID, &a.Type, &payload, &a.Status,
		&a.DueAt, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &a.Payload); err != nil {
			return nil, fmt.Errorf("decode action payload: %w", err)
		}
	}
	return &a, nil
}
