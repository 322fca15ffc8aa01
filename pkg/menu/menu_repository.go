package menu

import (
	"context"

	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		CreateMenuItem(ctx context.Context, item *entities.MenuItem) error
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id string) error
		GetMenuItems(ctx context.Context, restaurantID string, typeID string) ([]*entities.MenuItem, error)
		GetMenuItemsByIDs(ctx context.Context, ids []string) ([]*entities.MenuItem, error)

		CreateMenuItemType(ctx context.Context, itemType *entities.MenuItemType) error
		GetMenuItemTypes(ctx context.Context) ([]*entities.MenuItemType, error)
		GetMenuItemTypesForRestaurant(ctx context.Context, restaurantID string) ([]*entities.MenuItemType, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("MenuItemType").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.MenuItem{}, "id = ?", id).Error
}

func (r *menuRepository) GetMenuItems(ctx context.Context, restaurantID string, typeID string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem

	query := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if typeID != "" {
		query = query.Where("menu_item_type_id = ?", typeID)
	}

	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetMenuItemsByIDs(ctx context.Context, ids []string) ([]*entities.MenuItem, error) {
	var items []*entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) CreateMenuItemType(ctx context.Context, itemType *entities.MenuItemType) error {
	return r.db.WithContext(ctx).Create(itemType).Error
}

func (r *menuRepository) GetMenuItemTypes(ctx context.Context) ([]*entities.MenuItemType, error) {
	var types []*entities.MenuItemType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *menuRepository) GetMenuItemTypesForRestaurant(ctx context.Context, restaurantID string) ([]*entities.MenuItemType, error) {
	var types []*entities.MenuItemType
	if err := r.db.WithContext(ctx).
		Distinct("menu_item_types.*").
		Joins("JOIN menu_items ON menu_items.menu_item_type_id = menu_item_types.id").
		Where("menu_items.restaurant_id = ?", restaurantID).
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
