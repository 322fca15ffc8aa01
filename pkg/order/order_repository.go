package order

import (
	"context"

	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		// GetTodayOrderForUser scopes "one order per user per day" on the
		// database side instead of comparing ISO date prefixes client-side.
		GetTodayOrderForUser(ctx context.Context, userID string) (*entities.Order, error)
		ReplaceOrder(ctx context.Context, order *entities.Order) error
		GetOrdersForUser(ctx context.Context, userID string) ([]*entities.Order, error)
		GetAllOrders(ctx context.Context) ([]*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id string, status string) error
		MarkUserOrdersPaid(ctx context.Context, userID string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetTodayOrderForUser(ctx context.Context, userID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND created_at::date = CURRENT_DATE", userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ReplaceOrder updates the order row and swaps its item rows in one
// transaction so an edit never leaves a half-replaced item list.
func (r *orderRepository) ReplaceOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&entities.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Save(order).Error
	})
}

func (r *orderRepository) GetOrdersForUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) MarkUserOrdersPaid(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("user_id = ? AND status IN ?", userID, []string{entities.OrderStatusPending, entities.OrderStatusCompleted}).
		Update("status", entities.OrderStatusPaid).Error
}
