package repositories

import (
	"context"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/jmoiron/sqlx"
)

// ListingReadRepository reads listings and their sale dates.
type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

// ScanListings streams listings matching the filter. Each listing reports
// whether its owner is missing from users.
func (r *ListingReadRepository) ScanListings(ctx context.Context, f models.Filter, fn func(models.Listing) error) error {
	const query = `
		SELECT l.listing_id, l.user_id, l.category, l.emirate, l.price::FLOAT8 AS price,
		       l.created_date, l.status, (u.user_id IS NULL) AS user_missing
		FROM listings l
		LEFT JOIN users u ON u.user_id = l.user_id
		WHERE ($1::DATE IS NULL OR l.created_date >= $1)
		  AND ($2::DATE IS NULL OR l.created_date < $2)
		  AND ($3::VARCHAR IS NULL OR l.emirate = $3)
		  AND ($4::VARCHAR IS NULL OR l.status = $4)
		  AND ($5::VARCHAR IS NULL OR l.category = $5)
		ORDER BY l.listing_id
	`
	args := []any{
		f.From, f.To,
		nullString(f.Emirate),
		nullString(string(f.Status)),
		nullString(f.Category),
	}

	return scanRows(ctx, r.db, "scan listings", query, args, fn)
}

// GetListingByID returns a listing or a NotFoundError.
func (r *ListingReadRepository) GetListingByID(ctx context.Context, id int64) (*models.Listing, error) {
	const query = `
		SELECT l.listing_id, l.user_id, l.category, l.emirate, l.price::FLOAT8 AS price,
		       l.created_date, l.status, (u.user_id IS NULL) AS user_missing
		FROM listings l
		LEFT JOIN users u ON u.user_id = l.user_id
		WHERE l.listing_id = $1
	`
	return getByID[models.Listing](ctx, r.db, models.EntityListings, query, id)
}

// ScanSales streams the first "sold" status change of every listing that
// has one, read from the external status-change feed.
func (r *ListingReadRepository) ScanSales(ctx context.Context, fn func(models.ListingSale) error) error {
	const query = `
		SELECT listing_id, MIN(changed_at)::DATE AS sold_date
		FROM listing_status_history
		WHERE status = 'sold'
		GROUP BY listing_id
		ORDER BY listing_id
	`
	return scanRows(ctx, r.db, "scan sales", query, nil, fn)
}
