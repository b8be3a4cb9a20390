package item

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Item), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, name string, price float64) (Item, error) {
	args := m.Called(ctx, name, price)
	return args.Get(0).(Item), args.Error(1)
}

func (m *MockRepository) BulkUpdate(ctx context.Context, ids []int, patch Patch) ([]int, error) {
	args := m.Called(ctx, ids, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, "pen", 1.5).
		Return(Item{ID: 1, Name: "pen", Price: 1.5}, nil)

	created, err := service.Create(context.Background(), "pen", 1.5)
	require.NoError(t, err)
	assert.Equal(t, Item{ID: 1, Name: "pen", Price: 1.5}, created)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		price    float64
	}{
		{name: "empty name", itemName: "", price: 1},
		{name: "blank name", itemName: "   ", price: 1},
		{name: "negative price", itemName: "pen", price: -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			_, err := service.Create(context.Background(), tt.itemName, tt.price)
			assert.ErrorIs(t, err, ErrInvalidInput)

			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestService_Create_PropagatesPersistenceError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, "pen", 1.5).
		Return(Item{}, ErrPersistence)

	_, err := service.Create(context.Background(), "pen", 1.5)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestService_BulkUpdate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	price := 2.5
	patch := Patch{Price: &price}
	mockRepo.On("BulkUpdate", mock.Anything, []int{1, 2, 99}, patch).
		Return([]int{1, 2}, nil)

	updated, err := service.BulkUpdate(context.Background(), []int{1, 2, 99}, patch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, updated)

	mockRepo.AssertExpectations(t)
}

func TestService_BulkUpdate_InvalidPatch(t *testing.T) {
	empty := ""
	negative := -1.0

	tests := []struct {
		name  string
		patch Patch
	}{
		{name: "empty name", patch: Patch{Name: &empty}},
		{name: "negative price", patch: Patch{Price: &negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			_, err := service.BulkUpdate(context.Background(), []int{1}, tt.patch)
			assert.ErrorIs(t, err, ErrInvalidInput)

			mockRepo.AssertNotCalled(t, "BulkUpdate")
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 99).Return(Item{}, ErrNotFound)

	_, err := service.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	expected := []Item{{ID: 1, Name: "pen", Price: 1.5}}
	mockRepo.On("List", mock.Anything).Return(expected, nil)

	items, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestService_BulkUpdate_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("BulkUpdate", mock.Anything, []int{1}, Patch{}).
		Return(nil, errors.New("snapshot write failed"))

	_, err := service.BulkUpdate(context.Background(), []int{1}, Patch{})
	assert.Error(t, err)
}
