package restaurant

import (
	"context"

	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		UpdateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		DeleteRestaurant(ctx context.Context, id string) error
		GetRestaurants(ctx context.Context, onlyOrderingAvailable bool) ([]*entities.Restaurant, error)
		GetTopRestaurants(ctx context.Context, limit int) ([]*entities.Restaurant, error)

		CreateFoodType(ctx context.Context, foodType *entities.FoodType) error
		GetFoodTypeByID(ctx context.Context, id string) (*entities.FoodType, error)
		GetFoodTypes(ctx context.Context) ([]*entities.FoodType, error)
		DeleteFoodType(ctx context.Context, id string) error
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("FoodType").
		Where("id = ?", id).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) DeleteRestaurant(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Restaurant{}, "id = ?", id).Error
}

func (r *restaurantRepository) GetRestaurants(ctx context.Context, onlyOrderingAvailable bool) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant

	query := r.db.WithContext(ctx).Preload("FoodType")
	if onlyOrderingAvailable {
		query = query.Where("ordering_available = ?", true)
	}

	if err := query.Order("votes DESC").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) GetTopRestaurants(ctx context.Context, limit int) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	if err := r.db.WithContext(ctx).
		Where("ordering_available = ?", true).
		Order("votes DESC").
		Limit(limit).
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) CreateFoodType(ctx context.Context, foodType *entities.FoodType) error {
	return r.db.WithContext(ctx).Create(foodType).Error
}

func (r *restaurantRepository) GetFoodTypeByID(ctx context.Context, id string) (*entities.FoodType, error) {
	var foodType entities.FoodType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodType).Error; err != nil {
		return nil, err
	}
	return &foodType, nil
}

func (r *restaurantRepository) GetFoodTypes(ctx context.Context) ([]*entities.FoodType, error) {
	var foodTypes []*entities.FoodType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&foodTypes).Error; err != nil {
		return nil, err
	}
	return foodTypes, nil
}

func (r *restaurantRepository) DeleteFoodType(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.FoodType{}, "id = ?", id).Error
}
