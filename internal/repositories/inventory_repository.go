package repositories

import (
	"context"
	"database/sql"

	"estatecrm/internal/models"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(ctx context.Context, unit *models.Unit) error {
	const query = `
		INSERT INTO units (project, unit_code, bedrooms, area_sqm, price, down_payment, monthly_installment, available, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		unit.Project, unit.UnitCode, unit.Bedrooms, unit.AreaSqm, unit.Price,
		unit.DownPayment, unit.MonthlyInstallment, unit.Available, unit.CreatedAt,
	).Scan(&unit.ID)
}

// FindByBudget returns available units a buyer with the given total
// budget can afford, cheapest first.
func (r *InventoryRepository) FindByBudget(ctx context.Context, budget float64, limit int) ([]models.Unit, error) {
	const query = `
		SELECT id, project, unit_code, bedrooms, area_sqm, price, down_payment, monthly_installment, available, created_at
		FROM units
		WHERE available AND price <= $1
		ORDER BY price ASC
		LIMIT $2
	`
	return r.queryUnits(ctx, query, budget, limit)
}

// FindByInstallmentPlan returns available units whose payment plan fits
// the given down payment and monthly installment.
func (r *InventoryRepository) FindByInstallmentPlan(ctx context.Context, downPayment, monthlyInstallment float64, limit int) ([]models.Unit, error) {
	const query = `
		SELECT id, project, unit_code, bedrooms, area_sqm, price, down_payment, monthly_installment, available, created_at
		FROM units
		WHERE available AND down_payment <= $1 AND monthly_installment <= $2
		ORDER BY price ASC
		LIMIT $3
	`
	return r.queryUnits(ctx, query, downPayment, monthlyInstallment, limit)
}

func (r *InventoryRepository) ListPaginated(ctx context.Context, limit, offset int) ([]models.Unit, error) {
	const query = `
		SELECT id, project, unit_code, bedrooms, area_sqm, price, down_payment, monthly_installment, available, created_at
		FROM units
		ORDER BY project, unit_code
		LIMIT $1 OFFSET $2
	`
	return r.queryUnits(ctx, query, limit, offset)
}

func (r *InventoryRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE units SET available=$1 WHERE id=$2`, available, id)
	return err
}

func (r *InventoryRepository) queryUnits(ctx context.Context, query string, args ...interface{}) ([]models.Unit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Unit
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(
			&u.ID, &u.Project, &u.UnitCode, &u.Bedrooms, &u.AreaSqm, &u.Price,
			&u.DownPayment, &u.MonthlyInstallment, &u.Available, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
