package creative

import (
	"context"
	"testing"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/models/store"
	"github.com/ad-tools/ad-pulse/pkg/services/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInsights struct {
	mock.Mock
}

func (m *mockInsights) ListCreativeMetrics(ctx context.Context, account domain.AdAccount) ([]domain.CreativeMetrics, error) {
	args := m.Called(ctx, account)
	return args.Get(0).([]domain.CreativeMetrics), args.Error(1)
}

func (m *mockInsights) ListIssueCodes(ctx context.Context, account domain.AdAccount) (map[domain.DimensionName][]string, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(map[domain.DimensionName][]string), args.Error(1)
}

type mockStatusStore struct {
	mock.Mock
}

func (m *mockStatusStore) Get(ctx context.Context, account, creativeID string) (*store.CreativeStatus, error) {
	args := m.Called(ctx, account, creativeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.CreativeStatus), args.Error(1)
}

func (m *mockStatusStore) Upsert(ctx context.Context, status store.CreativeStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) FatigueAlert(ctx context.Context, account string, creative domain.CreativeMetrics, result domain.FatigueResult) error {
	args := m.Called(ctx, account, creative, result)
	return args.Error(0)
}

var (
	freshCreative = domain.CreativeMetrics{
		CreativeID: "cr-1", Name: "spring launch",
		CTRChange: 3, Frequency: 1.5, DaysActive: 4, ConversionRateChange: 1,
	}
	tiredCreative = domain.CreativeMetrics{
		CreativeID: "cr-2", Name: "evergreen banner",
		CTRChange: -25, Frequency: 4.2, DaysActive: 28, ConversionRateChange: -15,
	}
)

func TestService_ListFatigue(t *testing.T) {
	ctx := context.Background()
	account := domain.AdAccount{Name: "acme"}
	calc := scoring.NewFatigueCalculator(scoring.DefaultFatigueSettings())

	t.Run("annotates creatives with fatigue", func(t *testing.T) {
		insightsMock := new(mockInsights)
		statusMock := new(mockStatusStore)
		notifierMock := new(mockNotifier)

		insightsMock.On("ListCreativeMetrics", ctx, account).
			Return([]domain.CreativeMetrics{freshCreative, tiredCreative}, nil)
		statusMock.On("Get", ctx, "acme", mock.Anything).Return(nil, nil)
		statusMock.On("Upsert", ctx, mock.AnythingOfType("store.CreativeStatus")).Return(nil)
		notifierMock.On("FatigueAlert", ctx, "acme", tiredCreative, mock.AnythingOfType("domain.FatigueResult")).
			Return(nil)

		svc := NewService(insightsMock, calc, statusMock, notifierMock)
		results, err := svc.ListFatigue(ctx, account)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, domain.FatigueHealthy, results[0].Fatigue.Status)
		assert.Equal(t, domain.FatigueFatigued, results[1].Fatigue.Status)

		// Only the creative that flipped to fatigued triggers an alert.
		notifierMock.AssertNumberOfCalls(t, "FatigueAlert", 1)
		insightsMock.AssertExpectations(t)
	})

	t.Run("no alert when already fatigued", func(t *testing.T) {
		insightsMock := new(mockInsights)
		statusMock := new(mockStatusStore)
		notifierMock := new(mockNotifier)

		insightsMock.On("ListCreativeMetrics", ctx, account).
			Return([]domain.CreativeMetrics{tiredCreative}, nil)
		statusMock.On("Get", ctx, "acme", "cr-2").Return(&store.CreativeStatus{
			Account: "acme", CreativeID: "cr-2", Status: string(domain.FatigueFatigued), Score: 82,
		}, nil)
		statusMock.On("Upsert", ctx, mock.AnythingOfType("store.CreativeStatus")).Return(nil)

		svc := NewService(insightsMock, calc, statusMock, notifierMock)
		_, err := svc.ListFatigue(ctx, account)

		require.NoError(t, err)
		notifierMock.AssertNotCalled(t, "FatigueAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("status tracking failure keeps the listing available", func(t *testing.T) {
		insightsMock := new(mockInsights)
		statusMock := new(mockStatusStore)
		notifierMock := new(mockNotifier)

		insightsMock.On("ListCreativeMetrics", ctx, account).
			Return([]domain.CreativeMetrics{freshCreative}, nil)
		statusMock.On("Get", ctx, "acme", "cr-1").Return(nil, assert.AnError)

		svc := NewService(insightsMock, calc, statusMock, notifierMock)
		results, err := svc.ListFatigue(ctx, account)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})
}
