package usecase

import (
	"context"
	"errors"
	"testing"

	"laundry-booking/internal/booking"
	"laundry-booking/internal/data/entity"
	"laundry-booking/internal/data/repository"
	"laundry-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCatalogService(t *testing.T) CatalogService {
	t.Helper()
	repo, err := repository.NewRepository(4, zap.NewNop())
	require.NoError(t, err)
	return NewCatalogService(repo, zap.NewNop())
}

func TestPointsToNextReward(t *testing.T) {
	assert.Equal(t, 25, PointsToNextReward(125))
	assert.Equal(t, 50, PointsToNextReward(0))
	assert.Equal(t, 50, PointsToNextReward(100))
	assert.Equal(t, 1, PointsToNextReward(149))
	assert.Equal(t, 50, PointsToNextReward(-10))
}

func TestCatalogService_Machines(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)

	all, err := svc.GetMachines(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.True(t, all[0].Bookable)
	assert.False(t, all[1].Bookable)

	dryer := entity.MachineTypeDryer
	dryers, err := svc.GetMachines(ctx, &dryer)
	require.NoError(t, err)
	assert.Len(t, dryers, 2)

	bad := entity.MachineType("iron")
	_, err = svc.GetMachines(ctx, &bad)
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestCatalogService_DatesSlotsPayments(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)

	dates, err := svc.GetDates(ctx)
	require.NoError(t, err)
	require.Len(t, dates, 4)
	assert.Equal(t, "Today", dates[0].Marker)

	slots, err := svc.GetTimeSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM"}, slots)

	methods, err := svc.GetPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 3)
}

func TestCatalogService_AlertsPaginated(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)

	page, err := svc.GetAlerts(ctx, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, entity.AlertKindBookingReminder, page.Data[0].Kind)
	assert.True(t, page.Pagination.HasMore)

	last, err := svc.GetAlerts(ctx, &request.PaginatedRequest{Page: 3, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, last.Data, 1)
	assert.False(t, last.Pagination.HasMore)

	empty, err := svc.GetAlerts(ctx, &request.PaginatedRequest{Page: 9, PerPage: 2})
	require.NoError(t, err)
	assert.NotNil(t, empty.Data)
	assert.Empty(t, empty.Data)
}

func TestCatalogService_ProfileAndRewards(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(t)

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 125, profile.Points)
	assert.Equal(t, 25, profile.PointsToNextReward)
	assert.Equal(t, 24, profile.Stats.TotalWashes)

	rewards, err := svc.GetRewards(ctx)
	require.NoError(t, err)
	require.Len(t, rewards.Rewards, 2)
	assert.True(t, rewards.Rewards[0].Redeemable)
	assert.False(t, rewards.Rewards[1].Redeemable)
	assert.Len(t, rewards.Earning, 4)
}

type stubProfileRepo struct {
	repository.ProfileRepository
	profile *entity.Profile
	err     error
}

func (r stubProfileRepo) FindProfile(ctx context.Context) (*entity.Profile, error) {
	return r.profile, r.err
}

func newCatalogServiceWithProfile(t *testing.T, profiles repository.ProfileRepository) CatalogService {
	t.Helper()
	repo, err := repository.NewRepository(4, zap.NewNop())
	require.NoError(t, err)
	repo.Profile = profiles
	return NewCatalogService(repo, zap.NewNop())
}

func TestCatalogService_ProfileStoreFailureIsNotNotFound(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("profile store unavailable")
	svc := newCatalogServiceWithProfile(t, stubProfileRepo{err: storeErr})

	_, err := svc.GetProfile(ctx)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, booking.ErrNotFound)

	_, err = svc.GetRewards(ctx)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, booking.ErrNotFound)
}

func TestCatalogService_MissingProfile(t *testing.T) {
	svc := newCatalogServiceWithProfile(t, stubProfileRepo{})

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, booking.ErrNotFound)
}
