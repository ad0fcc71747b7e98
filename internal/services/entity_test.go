package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestEntityService(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockEntityReader(ctrl)
	svc := NewEntityService(reader)

	user := &models.User{UserID: 1, SignupDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Emirate: models.EmirateDubai, UserType: models.UserTypeBuyer}
	reader.EXPECT().GetUserByID(ctx, int64(1)).Return(user, nil)

	got, err := svc.GetUser(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	notFound := &models.NotFoundError{Entity: models.EntityListings, ID: 5}
	reader.EXPECT().GetListingByID(ctx, int64(5)).Return(nil, notFound)

	listing, err := svc.GetListing(ctx, 5)
	assert.Nil(t, listing)
	var nf *models.NotFoundError
	assert.ErrorAs(t, err, &nf)

	reader.EXPECT().GetLeadByID(ctx, int64(7)).Return(&models.Lead{LeadID: 7}, nil)
	lead, err := svc.GetLead(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), lead.LeadID)

	reader.EXPECT().GetTransactionByID(ctx, int64(9)).Return(nil, errors.New("conn reset"))
	txn, err := svc.GetTransaction(ctx, 9)
	assert.Nil(t, txn)
	assert.EqualError(t, err, "conn reset")
}
