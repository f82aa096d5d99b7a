package food

import (
	"context"
	"testing"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	items   map[uint]*entities.FoodItem
	added   []*entities.FoodItem
	updated []*entities.FoodItem
	deleted []uint
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{items: map[uint]*entities.FoodItem{}}
}

func (f *fakeFoodRepository) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	item.ID = uint(len(f.added) + 1)
	f.added = append(f.added, item)
	return nil
}

func (f *fakeFoodRepository) GetFoodItems(_ context.Context, businessID uint) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	for _, item := range f.items {
		if item.BusinessID == businessID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeFoodRepository) GetFoodItemByID(_ context.Context, id, businessID uint) (*entities.FoodItem, error) {
	if item, ok := f.items[id]; ok && item.BusinessID == businessID {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFoodRepository) UpdateFoodItem(_ context.Context, item *entities.FoodItem) error {
	f.updated = append(f.updated, item)
	return nil
}

func (f *fakeFoodRepository) DeleteFoodItem(_ context.Context, id, _ uint) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestAddFoodItemRejectsNegativeValues(t *testing.T) {
	service := NewFoodService(newFakeFoodRepository())

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{Name: "Chapati", Price: -1}, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{Name: "Chapati", Price: 150, Stock: -4}, 3)
	assert.ErrorIs(t, err, domain.ErrInvalidStock)
}

func TestAddFoodItemStampsBusiness(t *testing.T) {
	repo := newFakeFoodRepository()
	service := NewFoodService(repo)

	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:  "Chapati",
		Price: 150,
		Stock: 20,
	}, 3)

	require.NoError(t, err)
	require.Len(t, repo.added, 1)
	assert.Equal(t, uint(3), repo.added[0].BusinessID)
	assert.Equal(t, "Chapati", res.Name)
}

func TestUpdateFoodItemRejectsForeignBusiness(t *testing.T) {
	repo := newFakeFoodRepository()
	repo.items[5] = &entities.FoodItem{ID: 5, BusinessID: 3, Name: "Chapati", Price: 150, Stock: 20}
	service := NewFoodService(repo)

	err := service.UpdateFoodItem(context.Background(), 5, domain.UpdateFoodItemRequest{Price: 160, Stock: 25}, 99)

	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	assert.Empty(t, repo.updated)
}

func TestUpdateFoodItemAppliesChanges(t *testing.T) {
	repo := newFakeFoodRepository()
	repo.items[5] = &entities.FoodItem{ID: 5, BusinessID: 3, Name: "Chapati", Price: 150, Stock: 20}
	service := NewFoodService(repo)

	err := service.UpdateFoodItem(context.Background(), 5, domain.UpdateFoodItemRequest{Price: 160, Stock: 25}, 3)

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, 160.0, repo.updated[0].Price)
	assert.Equal(t, 25, repo.updated[0].Stock)
}

func TestDeleteFoodItemRejectsForeignBusiness(t *testing.T) {
	repo := newFakeFoodRepository()
	repo.items[5] = &entities.FoodItem{ID: 5, BusinessID: 3}
	service := NewFoodService(repo)

	err := service.DeleteFoodItem(context.Background(), 5, 99)

	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	assert.Empty(t, repo.deleted)
}
