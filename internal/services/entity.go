package services

import (
	"context"
	"errors"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
)

//go:generate mockgen -source=entity.go -destination=entity_mock.go -package=services

// EntityReader looks up single entity records by identifier.
type EntityReader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetListingByID(ctx context.Context, id int64) (*models.Listing, error)
	GetLeadByID(ctx context.Context, id int64) (*models.Lead, error)
	GetTransactionByID(ctx context.Context, id int64) (*models.Transaction, error)
}

// EntityService exposes identifier lookups over the entity store.
type EntityService struct {
	reader EntityReader
}

// NewEntityService creates a new EntityService.
func NewEntityService(reader EntityReader) *EntityService {
	return &EntityService{reader: reader}
}

// GetUser returns the user with the given ID.
func (s *EntityService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.reader.GetUserByID(ctx, id)
	if err != nil {
		logLookupError(models.EntityUsers, id, err)
		return nil, err
	}
	return u, nil
}

// GetListing returns the listing with the given ID.
func (s *EntityService) GetListing(ctx context.Context, id int64) (*models.Listing, error) {
	l, err := s.reader.GetListingByID(ctx, id)
	if err != nil {
		logLookupError(models.EntityListings, id, err)
		return nil, err
	}
	return l, nil
}

// GetLead returns the lead with the given ID.
func (s *EntityService) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	l, err := s.reader.GetLeadByID(ctx, id)
	if err != nil {
		logLookupError(models.EntityLeads, id, err)
		return nil, err
	}
	return l, nil
}

// GetTransaction returns the transaction with the given ID.
func (s *EntityService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	t, err := s.reader.GetTransactionByID(ctx, id)
	if err != nil {
		logLookupError(models.EntityTransactions, id, err)
		return nil, err
	}
	return t, nil
}

func logLookupError(entity models.Entity, id int64, err error) {
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		logger.Log.Infow("entity not found", "entity", entity, "id", id)
		return
	}
	logger.Log.Errorw("failed to get entity", "entity", entity, "id", id, "error", err)
}
