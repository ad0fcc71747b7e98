package repositories

import (
	"context"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/jmoiron/sqlx"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ScanUsers streams users matching the filter in user_id order.
func (r *UserReadRepository) ScanUsers(ctx context.Context, f models.Filter, fn func(models.User) error) error {
	const query = `
		SELECT user_id, signup_date, emirate, user_type
		FROM users
		WHERE ($1::DATE IS NULL OR signup_date >= $1)
		  AND ($2::DATE IS NULL OR signup_date < $2)
		  AND ($3::VARCHAR IS NULL OR emirate = $3)
		  AND ($4::VARCHAR IS NULL OR user_type = $4)
		ORDER BY user_id
	`
	args := []any{f.From, f.To, nullString(f.Emirate), nullString(string(f.UserType))}

	return scanRows(ctx, r.db, "scan users", query, args, fn)
}

// GetUserByID returns a user or a NotFoundError.
func (r *UserReadRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT user_id, signup_date, emirate, user_type
		FROM users
		WHERE user_id = $1
	`
	return getByID[models.User](ctx, r.db, models.EntityUsers, query, id)
}
