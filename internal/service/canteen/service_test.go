package canteen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kantine-klima/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ListCanteens(ctx context.Context) ([]storage.CanteenSummary, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]storage.CanteenSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetCanteenByID(ctx context.Context, id int64) (*storage.Canteen, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.Canteen), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetCanteenWaste(ctx context.Context, id int64) (*storage.CanteenWaste, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*storage.CanteenWaste), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) UpdateCanteen(ctx context.Context, id int64, upd storage.CanteenUpdate) (*storage.Canteen, error) {
	args := m.Called(ctx, id, upd)
	if v := args.Get(0); v != nil {
		return v.(*storage.Canteen), args.Error(1)
	}
	return nil, args.Error(1)
}

var bravida = &storage.Canteen{
	ID:                  215,
	Name:                "Bravida",
	Location:            "København",
	Address:             "København",
	Co2PerKg:            3.444,
	GreenPercent:        21.8,
	MeatPercent:         19.0,
	OrganicPercent:      44.3,
	FoodWastePercent:    7.6,
	LocalSourcedPercent: 43.3,
	Employees:           150,
	MealsPerDay:         120,
	OperatingDays:       240,
}

var bravidaWaste = &storage.CanteenWaste{CanteenID: 215, FoodWastePercent: 7.6, MealsPerDay: 120}

func newTestService(st Storage, attempts uint) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(log, st, NewProfileCache(10, time.Minute), Options{Attempts: attempts, Delay: time.Millisecond})
}

func TestProfile_Success(t *testing.T) {
	st := new(MockStorage)
	st.On("GetCanteenByID", mock.Anything, int64(215)).Return(bravida, nil).Once()
	st.On("GetCanteenWaste", mock.Anything, int64(215)).Return(bravidaWaste, nil).Once()

	svc := newTestService(st, 3)

	p, err := svc.Profile(context.Background(), 215)
	require.NoError(t, err)

	assert.Equal(t, "Bravida", p.Details.Name)
	assert.Equal(t, 3.444, p.Details.CurrentCo2PerKg)
	assert.Equal(t, 7.6, p.Waste.TotalWastePercent)
	assert.Equal(t, 150, p.Input.Employees)

	// второй вызов из кэша, Once() упадёт при повторном обращении к хранилищу
	cached, err := svc.Profile(context.Background(), 215)
	require.NoError(t, err)
	assert.Same(t, p, cached)

	st.AssertExpectations(t)
}

func TestProfile_NotFoundIsNotRetried(t *testing.T) {
	st := new(MockStorage)
	st.On("GetCanteenByID", mock.Anything, int64(1)).Return(nil, storage.ErrCanteenNotFound).Once()
	st.On("GetCanteenWaste", mock.Anything, int64(1)).Return(nil, storage.ErrCanteenNotFound).Once()

	svc := newTestService(st, 5)

	_, err := svc.Profile(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrCanteenNotFound)
	assert.NotErrorIs(t, err, ErrUpstreamUnavailable)

	st.AssertNumberOfCalls(t, "GetCanteenByID", 1)
}

func TestProfile_UpstreamUnavailable(t *testing.T) {
	st := new(MockStorage)
	boom := errors.New("connection refused")
	st.On("GetCanteenByID", mock.Anything, int64(215)).Return(nil, boom)
	st.On("GetCanteenWaste", mock.Anything, int64(215)).Return(bravidaWaste, nil)

	svc := newTestService(st, 3)

	_, err := svc.Profile(context.Background(), 215)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, boom)

	st.AssertNumberOfCalls(t, "GetCanteenByID", 3)
}

func TestProfile_RecoversAfterTransientFailure(t *testing.T) {
	st := new(MockStorage)
	st.On("GetCanteenByID", mock.Anything, int64(215)).Return(nil, errors.New("timeout")).Once()
	st.On("GetCanteenByID", mock.Anything, int64(215)).Return(bravida, nil)
	st.On("GetCanteenWaste", mock.Anything, int64(215)).Return(bravidaWaste, nil)

	svc := newTestService(st, 3)

	p, err := svc.Profile(context.Background(), 215)
	require.NoError(t, err)
	assert.Equal(t, int64(215), p.Details.ID)
}

func TestList(t *testing.T) {
	st := new(MockStorage)
	want := []storage.CanteenSummary{{ID: 215, Name: "Bravida", Location: "København"}}
	st.On("ListCanteens", mock.Anything).Return(want, nil)

	got, err := newTestService(st, 1).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	st := new(MockStorage)
	st.On("GetCanteenByID", mock.Anything, int64(215)).Return(bravida, nil)
	st.On("GetCanteenWaste", mock.Anything, int64(215)).Return(bravidaWaste, nil)

	updated := *bravida
	updated.FoodWastePercent = 4
	waste := 4.0
	upd := storage.CanteenUpdate{FoodWastePercent: &waste}
	st.On("UpdateCanteen", mock.Anything, int64(215), upd).Return(&updated, nil)

	svc := newTestService(st, 1)
	ctx := context.Background()

	_, err := svc.Profile(ctx, 215)
	require.NoError(t, err)

	p, err := svc.Update(ctx, 215, upd)
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.Waste.TotalWastePercent)

	_, ok := svc.cache.Get(215)
	assert.False(t, ok)
}

func TestUpdate_Invalid(t *testing.T) {
	st := new(MockStorage)
	bad := 120.0

	_, err := newTestService(st, 1).Update(context.Background(), 215, storage.CanteenUpdate{MeatPercent: &bad})
	assert.ErrorIs(t, err, storage.ErrInvalidUpdate)
	st.AssertNotCalled(t, "UpdateCanteen", mock.Anything, mock.Anything, mock.Anything)
}
