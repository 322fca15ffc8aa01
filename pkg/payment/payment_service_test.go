package payment

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testServerKey = "SB-Mid-server-test"

// signedWebhook builds a callback body carrying the signature the
// gateway would compute for it.
func signedWebhook(orderID, status, fraud string) domain.MidtransWebhookRequest {
	req := domain.MidtransWebhookRequest{
		OrderID:           orderID,
		StatusCode:        "200",
		GrossAmount:       "300.00",
		TransactionStatus: status,
		FraudStatus:       fraud,
	}
	sum := sha512.Sum512([]byte(req.OrderID + req.StatusCode + req.GrossAmount + testServerKey))
	req.SignatureKey = hex.EncodeToString(sum[:])
	return req
}

type memoryPaymentRepository struct {
	transactions map[string]*entities.Transaction
}

func newMemoryPaymentRepository() *memoryPaymentRepository {
	return &memoryPaymentRepository{transactions: make(map[string]*entities.Transaction)}
}

func (r *memoryPaymentRepository) CreateTransaction(_ context.Context, transaction *entities.Transaction) error {
	r.transactions[transaction.ID.String()] = transaction
	return nil
}

func (r *memoryPaymentRepository) GetTransactionByID(_ context.Context, id string) (*entities.Transaction, error) {
	if transaction, ok := r.transactions[id]; ok {
		return transaction, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryPaymentRepository) UpdateTransaction(_ context.Context, transaction *entities.Transaction) error {
	r.transactions[transaction.ID.String()] = transaction
	return nil
}

type stubUserRepository struct {
	users map[string]*entities.User
}

func (r *stubUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *stubUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepository) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *stubUserRepository) GetUsers(context.Context, string, string, int, int) ([]*entities.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepository) GetUsersByType(context.Context, string) ([]*entities.User, error) {
	return nil, nil
}

type stubOrderRepository struct {
	orders []*entities.Order
}

func (r *stubOrderRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	r.orders = append(r.orders, order)
	return nil
}

func (r *stubOrderRepository) GetOrderByID(context.Context, string) (*entities.Order, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepository) GetTodayOrderForUser(context.Context, string) (*entities.Order, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepository) ReplaceOrder(context.Context, *entities.Order) error { return nil }

func (r *stubOrderRepository) GetOrdersForUser(context.Context, string) ([]*entities.Order, error) {
	return nil, nil
}

func (r *stubOrderRepository) GetAllOrders(context.Context) ([]*entities.Order, error) {
	return r.orders, nil
}

func (r *stubOrderRepository) UpdateOrderStatus(context.Context, string, string) error { return nil }

func (r *stubOrderRepository) MarkUserOrdersPaid(_ context.Context, userID string) error {
	for _, o := range r.orders {
		if o.UserID.String() == userID &&
			(o.Status == entities.OrderStatusPending || o.Status == entities.OrderStatusCompleted) {
			o.Status = entities.OrderStatusPaid
		}
	}
	return nil
}

func TestCreateDebtPaymentRejectsZeroDebt(t *testing.T) {
	debtor := &entities.User{ID: uuid.New(), Email: "mika@tiac.rs", CurrentDebt: 0}
	userRepo := &stubUserRepository{users: map[string]*entities.User{debtor.ID.String(): debtor}}
	service := NewPaymentService(newMemoryPaymentRepository(), userRepo, &stubOrderRepository{})

	_, err := service.CreateDebtPayment(context.Background(), domain.CreateDebtPaymentRequest{
		Email: "mika@tiac.rs",
	}, debtor.ID.String())
	assert.ErrorIs(t, err, domain.ErrNoOutstandingDebt)
}

func TestCreateDebtPaymentUnknownUser(t *testing.T) {
	userRepo := &stubUserRepository{users: map[string]*entities.User{}}
	service := NewPaymentService(newMemoryPaymentRepository(), userRepo, &stubOrderRepository{})

	_, err := service.CreateDebtPayment(context.Background(), domain.CreateDebtPaymentRequest{
		Email: "mika@tiac.rs",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestWebhookSettlementClearsDebtAndMarksOrdersPaid(t *testing.T) {
	t.Setenv("SERVER_KEY", testServerKey)
	debtor := &entities.User{ID: uuid.New(), CurrentDebt: 300}
	userRepo := &stubUserRepository{users: map[string]*entities.User{debtor.ID.String(): debtor}}
	orderRepo := &stubOrderRepository{orders: []*entities.Order{
		{ID: uuid.New(), UserID: debtor.ID, Status: entities.OrderStatusCompleted},
		{ID: uuid.New(), UserID: debtor.ID, Status: entities.OrderStatusCanceled},
	}}
	paymentRepo := newMemoryPaymentRepository()
	service := NewPaymentService(paymentRepo, userRepo, orderRepo)

	transaction := &entities.Transaction{
		ID:     uuid.New(),
		UserID: debtor.ID,
		Amount: 300,
		Status: entities.TransactionStatusPending,
	}
	require.NoError(t, paymentRepo.CreateTransaction(context.Background(), transaction))

	require.NoError(t, service.HandleWebhook(context.Background(), signedWebhook(transaction.ID.String(), "settlement", "")))

	assert.Equal(t, entities.TransactionStatusSettlement, transaction.Status)
	assert.Zero(t, debtor.CurrentDebt)
	assert.Equal(t, entities.OrderStatusPaid, orderRepo.orders[0].Status)
	// Canceled orders stay canceled.
	assert.Equal(t, entities.OrderStatusCanceled, orderRepo.orders[1].Status)
}

func TestWebhookSettlementIsIdempotent(t *testing.T) {
	t.Setenv("SERVER_KEY", testServerKey)
	debtor := &entities.User{ID: uuid.New(), CurrentDebt: 300}
	userRepo := &stubUserRepository{users: map[string]*entities.User{debtor.ID.String(): debtor}}
	paymentRepo := newMemoryPaymentRepository()
	service := NewPaymentService(paymentRepo, userRepo, &stubOrderRepository{})

	transaction := &entities.Transaction{
		ID:     uuid.New(),
		UserID: debtor.ID,
		Status: entities.TransactionStatusPending,
	}
	require.NoError(t, paymentRepo.CreateTransaction(context.Background(), transaction))

	webhook := signedWebhook(transaction.ID.String(), "settlement", "")
	require.NoError(t, service.HandleWebhook(context.Background(), webhook))

	debtor.CurrentDebt = 100
	require.NoError(t, service.HandleWebhook(context.Background(), webhook))

	// A replayed callback must not clear debt accrued afterwards.
	assert.Equal(t, 100.0, debtor.CurrentDebt)
}

func TestWebhookCaptureRequiresAcceptedFraudStatus(t *testing.T) {
	t.Setenv("SERVER_KEY", testServerKey)
	debtor := &entities.User{ID: uuid.New(), CurrentDebt: 300}
	userRepo := &stubUserRepository{users: map[string]*entities.User{debtor.ID.String(): debtor}}
	paymentRepo := newMemoryPaymentRepository()
	service := NewPaymentService(paymentRepo, userRepo, &stubOrderRepository{})

	transaction := &entities.Transaction{
		ID:     uuid.New(),
		UserID: debtor.ID,
		Status: entities.TransactionStatusPending,
	}
	require.NoError(t, paymentRepo.CreateTransaction(context.Background(), transaction))

	require.NoError(t, service.HandleWebhook(context.Background(), signedWebhook(transaction.ID.String(), "capture", "challenge")))
	assert.Equal(t, entities.TransactionStatusPending, transaction.Status)
	assert.Equal(t, 300.0, debtor.CurrentDebt)

	require.NoError(t, service.HandleWebhook(context.Background(), signedWebhook(transaction.ID.String(), "capture", "accept")))
	assert.Equal(t, entities.TransactionStatusSettlement, transaction.Status)
	assert.Zero(t, debtor.CurrentDebt)
}

func TestWebhookUnknownTransaction(t *testing.T) {
	t.Setenv("SERVER_KEY", testServerKey)
	userRepo := &stubUserRepository{users: map[string]*entities.User{}}
	service := NewPaymentService(newMemoryPaymentRepository(), userRepo, &stubOrderRepository{})

	err := service.HandleWebhook(context.Background(), signedWebhook(uuid.New().String(), "settlement", ""))
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestWebhookRejectsForgedSignature(t *testing.T) {
	t.Setenv("SERVER_KEY", testServerKey)
	debtor := &entities.User{ID: uuid.New(), CurrentDebt: 300}
	userRepo := &stubUserRepository{users: map[string]*entities.User{debtor.ID.String(): debtor}}
	paymentRepo := newMemoryPaymentRepository()
	service := NewPaymentService(paymentRepo, userRepo, &stubOrderRepository{})

	transaction := &entities.Transaction{
		ID:     uuid.New(),
		UserID: debtor.ID,
		Status: entities.TransactionStatusPending,
	}
	require.NoError(t, paymentRepo.CreateTransaction(context.Background(), transaction))

	webhook := signedWebhook(transaction.ID.String(), "settlement", "")
	webhook.SignatureKey = "deadbeef"

	err := service.HandleWebhook(context.Background(), webhook)
	assert.ErrorIs(t, err, domain.ErrInvalidWebhookSignature)
	assert.Equal(t, entities.TransactionStatusPending, transaction.Status)
	assert.Equal(t, 300.0, debtor.CurrentDebt)
}

func TestWebhookExpireMarksTransaction(t *testing.T) {
	t.Setenv("SERVER_KEY", testServerKey)
	debtor := &entities.User{ID: uuid.New(), CurrentDebt: 300}
	userRepo := &stubUserRepository{users: map[string]*entities.User{debtor.ID.String(): debtor}}
	paymentRepo := newMemoryPaymentRepository()
	service := NewPaymentService(paymentRepo, userRepo, &stubOrderRepository{})

	transaction := &entities.Transaction{
		ID:     uuid.New(),
		UserID: debtor.ID,
		Status: entities.TransactionStatusPending,
	}
	require.NoError(t, paymentRepo.CreateTransaction(context.Background(), transaction))

	require.NoError(t, service.HandleWebhook(context.Background(), signedWebhook(transaction.ID.String(), "expire", "")))
	assert.Equal(t, entities.TransactionStatusExpire, transaction.Status)
	assert.Equal(t, 300.0, debtor.CurrentDebt)
}
