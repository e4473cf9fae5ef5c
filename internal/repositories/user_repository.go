package repositories

import (
	"context"
	"database/sql"
	"time"

	"estatecrm/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
	ListByRole(ctx context.Context, roleID int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	SaveRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByRefreshToken(ctx context.Context, token string) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, full_name, email, phone, password_hash, role_id, telegram_chat_id, refresh_token, refresh_expires_at, refresh_revoked`

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (full_name, email, phone, password_hash, role_id, telegram_chat_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		user.FullName, user.Email, user.Phone, user.PasswordHash, user.RoleID, user.TelegramChatID,
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
}

func (r *userRepository) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx,
		`SELECT `+userColumns+` FROM users WHERE refresh_token=$1 AND NOT refresh_revoked`, token)
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *userRepository) ListByRole(ctx context.Context, roleID int) ([]*models.User, error) {
	return r.queryUsers(ctx,
		`SELECT `+userColumns+` FROM users WHERE role_id=$1 ORDER BY id`, roleID)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	const query = `
		UPDATE users
		SET full_name=$1, email=$2, phone=$3, role_id=$4, telegram_chat_id=$5
		WHERE id=$6
	`
	_, err := r.db.ExecContext(ctx, query,
		user.FullName, user.Email, user.Phone, user.RoleID, user.TelegramChatID, user.ID)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id)
	return err
}

func (r *userRepository) SaveRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE WHERE id=$3`,
		token, expiresAt, userID)
	return err
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.RoleID,
		&u.TelegramChatID, &u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(
			&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.RoleID,
			&u.TelegramChatID, &u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
