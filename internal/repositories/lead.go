package repositories

import (
	"context"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/jmoiron/sqlx"
)

type LeadReadRepository struct {
	db *sqlx.DB
}

func NewLeadReadRepository(db *sqlx.DB) *LeadReadRepository {
	return &LeadReadRepository{db: db}
}

// ScanLeads streams leads matching the filter. The emirate filter applies to
// the referenced listing.
func (r *LeadReadRepository) ScanLeads(ctx context.Context, f models.Filter, fn func(models.Lead) error) error {
	const query = `
		SELECT ld.lead_id, ld.listing_id, ld.user_id, ld.lead_date,
		       COALESCE(l.emirate, '') AS listing_emirate,
		       (l.listing_id IS NULL) AS listing_missing,
		       (u.user_id IS NULL) AS user_missing
		FROM leads ld
		LEFT JOIN listings l ON l.listing_id = ld.listing_id
		LEFT JOIN users u ON u.user_id = ld.user_id
		WHERE ($1::DATE IS NULL OR ld.lead_date >= $1)
		  AND ($2::DATE IS NULL OR ld.lead_date < $2)
		  AND ($3::VARCHAR IS NULL OR l.emirate = $3)
		ORDER BY ld.lead_id
	`
	args := []any{f.From, f.To, nullString(f.Emirate)}

	return scanRows(ctx, r.db, "scan leads", query, args, fn)
}

// GetLeadByID returns a lead or a NotFoundError.
func (r *LeadReadRepository) GetLeadByID(ctx context.Context, id int64) (*models.Lead, error) {
	const query = `
		SELECT ld.lead_id, ld.listing_id, ld.user_id, ld.lead_date,
		       COALESCE(l.emirate, '') AS listing_emirate,
		       (l.listing_id IS NULL) AS listing_missing,
		       (u.user_id IS NULL) AS user_missing
		FROM leads ld
		LEFT JOIN listings l ON l.listing_id = ld.listing_id
		LEFT JOIN users u ON u.user_id = ld.user_id
		WHERE ld.lead_id = $1
	`
	return getByID[models.Lead](ctx, r.db, models.EntityLeads, query, id)
}
