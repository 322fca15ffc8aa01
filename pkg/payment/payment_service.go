package payment

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"os"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/order"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreateDebtPayment(ctx context.Context, req domain.CreateDebtPaymentRequest, userID string) (domain.CreateDebtPaymentResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		userRepository    user.UserRepository
		orderRepository   order.OrderRepository
		snapClient        snap.Client
	}
)

func NewPaymentService(
	paymentRepository PaymentRepository,
	userRepository user.UserRepository,
	orderRepository order.OrderRepository,
) PaymentService {
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var snapClient snap.Client
	snapClient.New(os.Getenv("SERVER_KEY"), env)

	return &paymentService{
		paymentRepository: paymentRepository,
		userRepository:    userRepository,
		orderRepository:   orderRepository,
		snapClient:        snapClient,
	}
}

// CreateDebtPayment opens a payment link for the caller's full current
// debt. The transaction row is created first so the gateway order id
// always maps back to a known transaction.
func (s *paymentService) CreateDebtPayment(ctx context.Context, req domain.CreateDebtPaymentRequest, userID string) (domain.CreateDebtPaymentResponse, error) {
	debtor, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateDebtPaymentResponse{}, domain.ErrUserNotFound
		}
		return domain.CreateDebtPaymentResponse{}, err
	}
	if debtor.CurrentDebt <= 0 {
		return domain.CreateDebtPaymentResponse{}, domain.ErrNoOutstandingDebt
	}

	transaction := &entities.Transaction{
		ID:     uuid.New(),
		UserID: debtor.ID,
		Amount: debtor.CurrentDebt,
		Status: entities.TransactionStatusPending,
	}
	if err := s.paymentRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateDebtPaymentResponse{}, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  transaction.ID.String(),
			GrossAmt: int64(debtor.CurrentDebt),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: debtor.FirstName,
			LName: debtor.LastName,
			Email: req.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateDebtPaymentResponse{}, domain.ErrPaymentGatewayFailure
	}

	transaction.PaymentLink = snapResp.RedirectURL
	if err := s.paymentRepository.UpdateTransaction(ctx, transaction); err != nil {
		return domain.CreateDebtPaymentResponse{}, err
	}

	return domain.CreateDebtPaymentResponse{
		TransactionID: transaction.ID.String(),
		Amount:        transaction.Amount,
		PaymentLink:   transaction.PaymentLink,
	}, nil
}

// HandleWebhook applies the gateway's status callback. The signature
// key is checked first so a forged body cannot move money state. A
// settled transaction clears the user's debt and marks their open
// orders paid.
func (s *paymentService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	if !validSignature(req) {
		return domain.ErrInvalidWebhookSignature
	}

	transaction, err := s.paymentRepository.GetTransactionByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "settlement":
		return s.settle(ctx, transaction)
	case "capture":
		if req.FraudStatus == "accept" {
			return s.settle(ctx, transaction)
		}
		return nil
	case "expire":
		transaction.Status = entities.TransactionStatusExpire
		return s.paymentRepository.UpdateTransaction(ctx, transaction)
	case "cancel":
		transaction.Status = entities.TransactionStatusCancel
		return s.paymentRepository.UpdateTransaction(ctx, transaction)
	case "deny":
		transaction.Status = entities.TransactionStatusDeny
		return s.paymentRepository.UpdateTransaction(ctx, transaction)
	default:
		return nil
	}
}

// validSignature checks the sha512 the gateway computes over
// order_id + status_code + gross_amount + server key.
func validSignature(req domain.MidtransWebhookRequest) bool {
	payload := req.OrderID + req.StatusCode + req.GrossAmount + os.Getenv("SERVER_KEY")
	sum := sha512.Sum512([]byte(payload))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.SignatureKey)) == 1
}

func (s *paymentService) settle(ctx context.Context, transaction *entities.Transaction) error {
	if transaction.Status == entities.TransactionStatusSettlement {
		return nil
	}

	transaction.Status = entities.TransactionStatusSettlement
	if err := s.paymentRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	debtor, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}
	debtor.CurrentDebt = 0
	if err := s.userRepository.UpdateUser(ctx, debtor); err != nil {
		return err
	}

	return s.orderRepository.MarkUserOrdersPaid(ctx, transaction.UserID.String())
}
