package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/internal/utils/storage"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/restaurant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error
		DeleteMenuItem(ctx context.Context, id string) error
		GetMenuItems(ctx context.Context, restaurantID string, typeID string) ([]domain.MenuItemResponse, error)
		GetMenuItemTypes(ctx context.Context) ([]domain.MenuItemTypeResponse, error)
		GetMenuItemTypesForRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItemTypeResponse, error)
		AddMenuItemType(ctx context.Context, req domain.AddMenuItemTypeRequest) (domain.MenuItemTypeResponse, error)
	}

	menuService struct {
		menuRepository       MenuRepository
		restaurantRepository restaurant.RestaurantRepository
		s3                   storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, restaurantRepository restaurant.RestaurantRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository:       menuRepository,
		restaurantRepository: restaurantRepository,
		s3:                   s3,
	}
}

func (s *menuService) AddMenuItem(ctx context.Context, req domain.AddMenuItemRequest) (domain.MenuItemResponse, error) {
	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return domain.MenuItemResponse{}, domain.ErrParseUUID
	}

	if _, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	if req.Price <= 0 {
		return domain.MenuItemResponse{}, domain.ErrInvalidPrice
	}

	itemID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("menu-item-%s", itemID.String()),
			req.Image,
			"menu-items",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.MenuItemResponse{}, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	var typeID *uuid.UUID
	if req.MenuItemTypeID != "" {
		parsed, err := uuid.Parse(req.MenuItemTypeID)
		if err != nil {
			return domain.MenuItemResponse{}, domain.ErrParseUUID
		}
		typeID = &parsed
	}

	item := &entities.MenuItem{
		ID:             itemID,
		RestaurantID:   restaurantUUID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		ImageURL:       imageURL,
		MenuItemTypeID: typeID,
	}

	if err := s.menuRepository.CreateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toMenuItemResponse(item), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.UpdateMenuItemRequest) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if req.MenuItemTypeID != "" {
		parsed, err := uuid.Parse(req.MenuItemTypeID)
		if err != nil {
			return domain.ErrParseUUID
		}
		item.MenuItemTypeID = &parsed
	}
	if req.Image != nil {
		imageURL, err := s.replaceImage(item.ImageURL, fmt.Sprintf("menu-item-%s", id), req.Image)
		if err != nil {
			return err
		}
		item.ImageURL = imageURL
	}

	return s.menuRepository.UpdateMenuItem(ctx, item)
}

// replaceImage overwrites the object behind the current link when one
// exists, otherwise uploads a fresh object.
func (s *menuService) replaceImage(currentURL, fileName string, file *multipart.FileHeader) (string, error) {
	if currentURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(currentURL); objectKey != "" {
			if _, err := s.s3.UpdateFile(objectKey, file, storage.AllowImage...); err != nil {
				return "", err
			}
			return currentURL, nil
		}
	}

	objectKey, err := s.s3.UploadFile(fileName, file, "menu-items", storage.AllowImage...)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenuItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.menuRepository.DeleteMenuItem(ctx, id)
}

func (s *menuService) GetMenuItems(ctx context.Context, restaurantID string, typeID string) ([]domain.MenuItemResponse, error) {
	items, err := s.menuRepository.GetMenuItems(ctx, restaurantID, typeID)
	if err != nil {
		return nil, err
	}

	var response []domain.MenuItemResponse
	for _, item := range items {
		response = append(response, toMenuItemResponse(item))
	}
	return response, nil
}

func (s *menuService) GetMenuItemTypes(ctx context.Context) ([]domain.MenuItemTypeResponse, error) {
	types, err := s.menuRepository.GetMenuItemTypes(ctx)
	if err != nil {
		return nil, err
	}
	return toMenuItemTypeResponses(types), nil
}

func (s *menuService) GetMenuItemTypesForRestaurant(ctx context.Context, restaurantID string) ([]domain.MenuItemTypeResponse, error) {
	types, err := s.menuRepository.GetMenuItemTypesForRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return toMenuItemTypeResponses(types), nil
}

func (s *menuService) AddMenuItemType(ctx context.Context, req domain.AddMenuItemTypeRequest) (domain.MenuItemTypeResponse, error) {
	itemType := &entities.MenuItemType{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.menuRepository.CreateMenuItemType(ctx, itemType); err != nil {
		return domain.MenuItemTypeResponse{}, err
	}

	return domain.MenuItemTypeResponse{
		ID:   itemType.ID.String(),
		Name: itemType.Name,
	}, nil
}

func toMenuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	response := domain.MenuItemResponse{
		ID:           item.ID.String(),
		RestaurantID: item.RestaurantID.String(),
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		ImageURL:     item.ImageURL,
	}
	if item.MenuItemTypeID != nil {
		response.MenuItemTypeID = item.MenuItemTypeID.String()
	}
	return response
}

func toMenuItemTypeResponses(types []*entities.MenuItemType) []domain.MenuItemTypeResponse {
	var response []domain.MenuItemTypeResponse
	for _, itemType := range types {
		response = append(response, domain.MenuItemTypeResponse{
			ID:   itemType.ID.String(),
			Name: itemType.Name,
		})
	}
	return response
}
