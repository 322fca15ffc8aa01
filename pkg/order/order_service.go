package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/menu"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/restaurant"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		SubmitOrder(ctx context.Context, req domain.SubmitOrderRequest, userID string) (domain.OrderResponse, error)
		GetTodayOrder(ctx context.Context, userID string) (domain.OrderResponse, error)
		GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) error
	}

	orderService struct {
		orderRepository      OrderRepository
		sessionRepository    session.SessionRepository
		restaurantRepository restaurant.RestaurantRepository
		menuRepository       menu.MenuRepository
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	sessionRepository session.SessionRepository,
	restaurantRepository restaurant.RestaurantRepository,
	menuRepository menu.MenuRepository,
) OrderService {
	return &orderService{
		orderRepository:      orderRepository,
		sessionRepository:    sessionRepository,
		restaurantRepository: restaurantRepository,
		menuRepository:       menuRepository,
	}
}

// legacyItemIDs is the shape of the menu_item_ids text column.
type legacyItemIDs struct {
	MenuItemIDs []string `json:"menu_item_ids"`
}

// SubmitOrder creates the caller's order for today, or overwrites it if
// one already exists. Requires an active ordering session and a
// restaurant that accepts orders. The total is computed server-side from
// the menu item prices, never taken from the client.
func (s *orderService) SubmitOrder(ctx context.Context, req domain.SubmitOrderRequest, userID string) (domain.OrderResponse, error) {
	if _, err := s.sessionRepository.GetActiveOrderingSession(ctx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrNoOrderingSession
		}
		return domain.OrderResponse{}, err
	}

	if len(req.MenuItemIDs) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyOrder
	}

	restaurantEntity, err := s.restaurantRepository.GetRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrRestaurantNotFound
		}
		return domain.OrderResponse{}, err
	}
	if !restaurantEntity.OrderingAvailable {
		return domain.OrderResponse{}, domain.ErrOrderingNotAvailable
	}

	// A menu item listed twice counts as quantity two.
	quantities := make(map[string]int)
	var uniqueIDs []string
	for _, id := range req.MenuItemIDs {
		if quantities[id] == 0 {
			uniqueIDs = append(uniqueIDs, id)
		}
		quantities[id]++
	}

	menuItems, err := s.menuRepository.GetMenuItemsByIDs(ctx, uniqueIDs)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if len(menuItems) != len(uniqueIDs) {
		return domain.OrderResponse{}, domain.ErrMenuItemNotFound
	}

	var totalPrice float64
	var items []*entities.OrderItem
	for _, item := range menuItems {
		if item.RestaurantID.String() != req.RestaurantID {
			return domain.OrderResponse{}, domain.ErrMenuItemWrongRestaurant
		}
		quantity := quantities[item.ID.String()]
		totalPrice += item.Price * float64(quantity)
		items = append(items, &entities.OrderItem{
			ID:         uuid.New(),
			MenuItemID: item.ID,
			Quantity:   quantity,
		})
	}

	legacy, err := json.Marshal(legacyItemIDs{MenuItemIDs: req.MenuItemIDs})
	if err != nil {
		return domain.OrderResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}
	restaurantUUID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	existing, err := s.orderRepository.GetTodayOrderForUser(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OrderResponse{}, err
	}

	var order *entities.Order
	if existing != nil {
		existing.RestaurantID = restaurantUUID
		existing.MenuItemIDs = string(legacy)
		existing.TotalPrice = totalPrice
		existing.Description = req.Description
		existing.Status = entities.OrderStatusPending
		for _, item := range items {
			item.OrderID = existing.ID
		}
		existing.Items = items
		if err := s.orderRepository.ReplaceOrder(ctx, existing); err != nil {
			return domain.OrderResponse{}, err
		}
		order = existing
	} else {
		order = &entities.Order{
			ID:           uuid.New(),
			UserID:       userUUID,
			RestaurantID: restaurantUUID,
			MenuItemIDs:  string(legacy),
			TotalPrice:   totalPrice,
			Description:  req.Description,
			Status:       entities.OrderStatusPending,
		}
		for _, item := range items {
			item.OrderID = order.ID
		}
		order.Items = items
		if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
			return domain.OrderResponse{}, err
		}
	}

	return toOrderResponse(order), nil
}

func (s *orderService) GetTodayOrder(ctx context.Context, userID string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetTodayOrderForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}
	return toOrderResponse(order), nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) error {
	switch req.Status {
	case entities.OrderStatusPending, entities.OrderStatusInProgress,
		entities.OrderStatusCompleted, entities.OrderStatusCanceled, entities.OrderStatusPaid:
	default:
		return domain.ErrInvalidOrderStatus
	}

	if err := s.orderRepository.UpdateOrderStatus(ctx, orderID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}
	return nil
}

func toOrderResponse(order *entities.Order) domain.OrderResponse {
	response := domain.OrderResponse{
		ID:           order.ID.String(),
		UserID:       order.UserID.String(),
		RestaurantID: order.RestaurantID.String(),
		MenuItemIDs:  order.MenuItemIDs,
		TotalPrice:   order.TotalPrice,
		Description:  order.Description,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	for _, item := range order.Items {
		entry := domain.OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
		}
		if item.MenuItem != nil {
			entry.Name = item.MenuItem.Name
			entry.Price = item.MenuItem.Price
		}
		response.Items = append(response.Items, entry)
	}
	return response
}

func toOrderResponses(orders []*entities.Order) []domain.OrderResponse {
	responses := make([]domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}
