package restaurant

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/utils/storage"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/events"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RestaurantService interface {
		AddRestaurant(ctx context.Context, req domain.AddRestaurantRequest) (domain.RestaurantResponse, error)
		UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest) error
		DeleteRestaurant(ctx context.Context, id string) error
		GetRestaurants(ctx context.Context, onlyOrderingAvailable bool) ([]domain.RestaurantResponse, error)
		GetRestaurantByID(ctx context.Context, id string) (domain.RestaurantResponse, error)
		GetTopRestaurants(ctx context.Context, limit int) ([]domain.RestaurantResponse, error)

		AddFoodType(ctx context.Context, req domain.AddFoodTypeRequest) (domain.FoodTypeResponse, error)
		GetFoodTypes(ctx context.Context) ([]domain.FoodTypeResponse, error)
		DeleteFoodType(ctx context.Context, id string) error
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
		s3                   storage.AwsS3
		hub                  *events.Hub
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository, s3 storage.AwsS3, hub *events.Hub) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		s3:                   s3,
		hub:                  hub,
	}
}

func (s *restaurantService) AddRestaurant(ctx context.Context, req domain.AddRestaurantRequest) (domain.RestaurantResponse, error) {
	restaurantID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("restaurant-%s", restaurantID.String()),
			req.Image,
			"restaurants",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.RestaurantResponse{}, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	var foodTypeID *uuid.UUID
	if req.FoodTypeID != "" {
		parsed, err := uuid.Parse(req.FoodTypeID)
		if err != nil {
			return domain.RestaurantResponse{}, domain.ErrParseUUID
		}
		if _, err := s.restaurantRepository.GetFoodTypeByID(ctx, req.FoodTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.RestaurantResponse{}, domain.ErrFoodTypeNotFound
			}
			return domain.RestaurantResponse{}, err
		}
		foodTypeID = &parsed
	}

	restaurant := &entities.Restaurant{
		ID:                restaurantID,
		Name:              req.Name,
		Address:           req.Address,
		FoodTypeID:        foodTypeID,
		ImageURL:          imageURL,
		Votes:             0,
		OrderingAvailable: req.OrderingAvailable,
	}

	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantResponse{}, err
	}

	s.hub.Publish(events.Event{Table: events.TableRestaurants, Event: events.EventInsert, RowID: restaurantID.String()})

	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, id string, req domain.UpdateRestaurantRequest) error {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}

	if req.Name != "" {
		restaurant.Name = req.Name
	}
	if req.Address != "" {
		restaurant.Address = req.Address
	}
	if req.FoodTypeID != "" {
		parsed, err := uuid.Parse(req.FoodTypeID)
		if err != nil {
			return domain.ErrParseUUID
		}
		restaurant.FoodTypeID = &parsed
	}
	if req.OrderingAvailable != nil {
		restaurant.OrderingAvailable = *req.OrderingAvailable
	}
	if req.Image != nil {
		imageURL, err := s.replaceImage(restaurant.ImageURL, fmt.Sprintf("restaurant-%s", id), "restaurants", req.Image)
		if err != nil {
			return err
		}
		restaurant.ImageURL = imageURL
	}

	if err := s.restaurantRepository.UpdateRestaurant(ctx, restaurant); err != nil {
		return err
	}

	s.hub.Publish(events.Event{Table: events.TableRestaurants, Event: events.EventUpdate, RowID: id})
	return nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRestaurantNotFound
		}
		return err
	}

	if restaurant.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(restaurant.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.restaurantRepository.DeleteRestaurant(ctx, id); err != nil {
		return err
	}

	s.hub.Publish(events.Event{Table: events.TableRestaurants, Event: events.EventDelete, RowID: id})
	return nil
}

func (s *restaurantService) GetRestaurants(ctx context.Context, onlyOrderingAvailable bool) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurants(ctx, onlyOrderingAvailable)
	if err != nil {
		return nil, err
	}

	var response []domain.RestaurantResponse
	for _, restaurant := range restaurants {
		response = append(response, toRestaurantResponse(restaurant))
	}
	return response, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id string) (domain.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepository.GetRestaurantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RestaurantResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.RestaurantResponse{}, err
	}
	return toRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetTopRestaurants(ctx context.Context, limit int) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetTopRestaurants(ctx, limit)
	if err != nil {
		return nil, err
	}

	var response []domain.RestaurantResponse
	for _, restaurant := range restaurants {
		response = append(response, toRestaurantResponse(restaurant))
	}
	return response, nil
}

func (s *restaurantService) AddFoodType(ctx context.Context, req domain.AddFoodTypeRequest) (domain.FoodTypeResponse, error) {
	foodTypeID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("food-type-%s", foodTypeID.String()),
			req.Image,
			"food-types",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.FoodTypeResponse{}, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	foodType := &entities.FoodType{
		ID:       foodTypeID,
		Name:     req.Name,
		ImageURL: imageURL,
	}

	if err := s.restaurantRepository.CreateFoodType(ctx, foodType); err != nil {
		return domain.FoodTypeResponse{}, err
	}

	return domain.FoodTypeResponse{
		ID:       foodType.ID.String(),
		Name:     foodType.Name,
		ImageURL: foodType.ImageURL,
	}, nil
}

func (s *restaurantService) GetFoodTypes(ctx context.Context) ([]domain.FoodTypeResponse, error) {
	foodTypes, err := s.restaurantRepository.GetFoodTypes(ctx)
	if err != nil {
		return nil, err
	}

	var response []domain.FoodTypeResponse
	for _, foodType := range foodTypes {
		response = append(response, domain.FoodTypeResponse{
			ID:       foodType.ID.String(),
			Name:     foodType.Name,
			ImageURL: foodType.ImageURL,
		})
	}
	return response, nil
}

func (s *restaurantService) DeleteFoodType(ctx context.Context, id string) error {
	foodType, err := s.restaurantRepository.GetFoodTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodTypeNotFound
		}
		return err
	}

	if foodType.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodType.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.restaurantRepository.DeleteFoodType(ctx, id)
}

// replaceImage overwrites the object behind the current link when one
// exists, otherwise uploads a fresh object. Either way the returned
// public link points at the new image.
func (s *restaurantService) replaceImage(currentURL, fileName, dir string, file *multipart.FileHeader) (string, error) {
	if currentURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(currentURL); objectKey != "" {
			if _, err := s.s3.UpdateFile(objectKey, file, storage.AllowImage...); err != nil {
				return "", err
			}
			return currentURL, nil
		}
	}

	objectKey, err := s.s3.UploadFile(fileName, file, dir, storage.AllowImage...)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func toRestaurantResponse(restaurant *entities.Restaurant) domain.RestaurantResponse {
	response := domain.RestaurantResponse{
		ID:                restaurant.ID.String(),
		Name:              restaurant.Name,
		Address:           restaurant.Address,
		ImageURL:          restaurant.ImageURL,
		Votes:             restaurant.Votes,
		OrderingAvailable: restaurant.OrderingAvailable,
	}
	if restaurant.FoodTypeID != nil {
		response.FoodTypeID = restaurant.FoodTypeID.String()
	}
	if restaurant.FoodType != nil {
		response.FoodTypeName = restaurant.FoodType.Name
	}
	return response
}
