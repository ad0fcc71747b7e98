package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=entity.go -destination=entity_mock.go -package=handlers

// EntityGetter looks up entity records by identifier.
type EntityGetter interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
	GetLead(ctx context.Context, id int64) (*models.Lead, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
}

// NewGetUserHandler returns an HTTP handler fetching a user.
// @Summary Get user
// @Tags entities
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User "User"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 503 {object} handlers.ErrorResponse "Entity store unavailable"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc EntityGetter) http.HandlerFunc {
	return newGetEntityHandler(svc.GetUser)
}

// NewGetListingHandler returns an HTTP handler fetching a listing.
// @Summary Get listing
// @Tags entities
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.Listing "Listing"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 503 {object} handlers.ErrorResponse "Entity store unavailable"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /listings/{id} [get]
func NewGetListingHandler(svc EntityGetter) http.HandlerFunc {
	return newGetEntityHandler(svc.GetListing)
}

// NewGetLeadHandler returns an HTTP handler fetching a lead.
// @Summary Get lead
// @Tags entities
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} models.Lead "Lead"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 503 {object} handlers.ErrorResponse "Entity store unavailable"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /leads/{id} [get]
func NewGetLeadHandler(svc EntityGetter) http.HandlerFunc {
	return newGetEntityHandler(svc.GetLead)
}

// NewGetTransactionHandler returns an HTTP handler fetching a transaction.
// @Summary Get transaction
// @Tags entities
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 400 {object} handlers.ErrorResponse "Invalid ID"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 503 {object} handlers.ErrorResponse "Entity store unavailable"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions/{id} [get]
func NewGetTransactionHandler(svc EntityGetter) http.HandlerFunc {
	return newGetEntityHandler(svc.GetTransaction)
}

func newGetEntityHandler[T any](get func(ctx context.Context, id int64) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid ID")
			return
		}

		rec, err := get(r.Context(), id)
		if err != nil {
			var nf *models.NotFoundError
			switch {
			case errors.As(err, &nf):
				writeError(w, http.StatusNotFound, nf.Error())
			case errors.Is(err, models.ErrStoreUnavailable):
				writeError(w, http.StatusServiceUnavailable, "Entity store unavailable")
			default:
				logger.Log.Errorw("failed to get entity", "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}
