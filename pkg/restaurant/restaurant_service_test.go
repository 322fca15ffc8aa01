package restaurant

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const fakeBucketPrefix = "https://bucket.s3.test/"

type fakeS3 struct {
	uploads []string
	updates []string
	deletes []string
}

func (s *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	key := dir + "/" + fileName + ".png"
	s.uploads = append(s.uploads, key)
	return key, nil
}

func (s *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	s.updates = append(s.updates, objectKey)
	return objectKey, nil
}

func (s *fakeS3) DeleteFile(objectKey string) error {
	s.deletes = append(s.deletes, objectKey)
	return nil
}

func (s *fakeS3) GetPublicLinkKey(objectKey string) string {
	return fakeBucketPrefix + objectKey
}

func (s *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, fakeBucketPrefix) {
		return ""
	}
	return strings.TrimPrefix(link, fakeBucketPrefix)
}

type memoryRestaurantRepository struct {
	restaurants map[string]*entities.Restaurant
	foodTypes   map[string]*entities.FoodType
}

func newMemoryRestaurantRepository() *memoryRestaurantRepository {
	return &memoryRestaurantRepository{
		restaurants: make(map[string]*entities.Restaurant),
		foodTypes:   make(map[string]*entities.FoodType),
	}
}

func (r *memoryRestaurantRepository) CreateRestaurant(_ context.Context, restaurant *entities.Restaurant) error {
	r.restaurants[restaurant.ID.String()] = restaurant
	return nil
}

func (r *memoryRestaurantRepository) GetRestaurantByID(_ context.Context, id string) (*entities.Restaurant, error) {
	if restaurant, ok := r.restaurants[id]; ok {
		return restaurant, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRestaurantRepository) UpdateRestaurant(_ context.Context, restaurant *entities.Restaurant) error {
	r.restaurants[restaurant.ID.String()] = restaurant
	return nil
}

func (r *memoryRestaurantRepository) DeleteRestaurant(_ context.Context, id string) error {
	delete(r.restaurants, id)
	return nil
}

func (r *memoryRestaurantRepository) GetRestaurants(_ context.Context, onlyOrderingAvailable bool) ([]*entities.Restaurant, error) {
	var out []*entities.Restaurant
	for _, restaurant := range r.restaurants {
		if onlyOrderingAvailable && !restaurant.OrderingAvailable {
			continue
		}
		out = append(out, restaurant)
	}
	return out, nil
}

func (r *memoryRestaurantRepository) GetTopRestaurants(_ context.Context, limit int) ([]*entities.Restaurant, error) {
	out, _ := r.GetRestaurants(context.Background(), true)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryRestaurantRepository) CreateFoodType(_ context.Context, foodType *entities.FoodType) error {
	r.foodTypes[foodType.ID.String()] = foodType
	return nil
}

func (r *memoryRestaurantRepository) GetFoodTypeByID(_ context.Context, id string) (*entities.FoodType, error) {
	if foodType, ok := r.foodTypes[id]; ok {
		return foodType, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryRestaurantRepository) GetFoodTypes(context.Context) ([]*entities.FoodType, error) {
	var out []*entities.FoodType
	for _, foodType := range r.foodTypes {
		out = append(out, foodType)
	}
	return out, nil
}

func (r *memoryRestaurantRepository) DeleteFoodType(_ context.Context, id string) error {
	delete(r.foodTypes, id)
	return nil
}

func TestUpdateRestaurantOverwritesExistingImage(t *testing.T) {
	repo := newMemoryRestaurantRepository()
	s3 := &fakeS3{}
	service := NewRestaurantService(repo, s3, events.NewHub())

	restaurant := &entities.Restaurant{
		ID:       uuid.New(),
		Name:     "Trattoria",
		ImageURL: fakeBucketPrefix + "restaurants/restaurant-old.png",
	}
	require.NoError(t, repo.CreateRestaurant(context.Background(), restaurant))

	err := service.UpdateRestaurant(context.Background(), restaurant.ID.String(), domain.UpdateRestaurantRequest{
		Image: &multipart.FileHeader{Filename: "new-logo.png"},
	})
	require.NoError(t, err)

	// The existing object is overwritten in place, so the stored link
	// stays valid and no second object is created.
	require.Len(t, s3.updates, 1)
	assert.Equal(t, "restaurants/restaurant-old.png", s3.updates[0])
	assert.Empty(t, s3.uploads)
	assert.Equal(t, fakeBucketPrefix+"restaurants/restaurant-old.png", restaurant.ImageURL)
}

func TestUpdateRestaurantUploadsFirstImage(t *testing.T) {
	repo := newMemoryRestaurantRepository()
	s3 := &fakeS3{}
	service := NewRestaurantService(repo, s3, events.NewHub())

	restaurant := &entities.Restaurant{ID: uuid.New(), Name: "Trattoria"}
	require.NoError(t, repo.CreateRestaurant(context.Background(), restaurant))

	err := service.UpdateRestaurant(context.Background(), restaurant.ID.String(), domain.UpdateRestaurantRequest{
		Image: &multipart.FileHeader{Filename: "logo.png"},
	})
	require.NoError(t, err)

	require.Len(t, s3.uploads, 1)
	assert.Empty(t, s3.updates)
	assert.Equal(t, fakeBucketPrefix+s3.uploads[0], restaurant.ImageURL)
}

func TestUpdateRestaurantNotFound(t *testing.T) {
	service := NewRestaurantService(newMemoryRestaurantRepository(), &fakeS3{}, events.NewHub())

	err := service.UpdateRestaurant(context.Background(), uuid.New().String(), domain.UpdateRestaurantRequest{
		Name: "Trattoria",
	})
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestDeleteRestaurantRemovesImage(t *testing.T) {
	repo := newMemoryRestaurantRepository()
	s3 := &fakeS3{}
	service := NewRestaurantService(repo, s3, events.NewHub())

	restaurant := &entities.Restaurant{
		ID:       uuid.New(),
		Name:     "Trattoria",
		ImageURL: fakeBucketPrefix + "restaurants/restaurant-x.png",
	}
	require.NoError(t, repo.CreateRestaurant(context.Background(), restaurant))

	require.NoError(t, service.DeleteRestaurant(context.Background(), restaurant.ID.String()))
	assert.Equal(t, []string{"restaurants/restaurant-x.png"}, s3.deletes)
	assert.Empty(t, repo.restaurants)
}
