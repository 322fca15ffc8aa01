package user

import (
	"context"
	"errors"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"
	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest, userType string) (domain.RegisterUserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest, adminOnly bool) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		UpdatePassword(ctx context.Context, req domain.UpdatePasswordRequest, userID string) error
		GetUsers(ctx context.Context, userType string, search string, page, limit int) ([]domain.UserResponse, int64, error)
		UpdateDebt(ctx context.Context, userID string, debt float64) error
		SettleDebt(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest, userType string) (domain.RegisterUserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterUserResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterUserResponse{}, err
	}

	user := &entities.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    string(hashed),
		CurrentDebt: req.CurrentDebt,
		Type:        userType,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterUserResponse{}, err
	}

	return domain.RegisterUserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Type:      user.Type,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest, adminOnly bool) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	if adminOnly && user.Type != domain.RoleAdmin {
		return domain.LoginResponse{}, domain.ErrNotAnAdmin
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Type)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Type,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) UpdatePassword(ctx context.Context, req domain.UpdatePasswordRequest, userID string) error {
	if req.NewPassword != req.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetUsers(ctx context.Context, userType string, search string, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, userType, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.UserResponse
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}

	return response, count, nil
}

func (s *userService) UpdateDebt(ctx context.Context, userID string, debt float64) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.CurrentDebt = debt
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SettleDebt(ctx context.Context, userID string) error {
	return s.UpdateDebt(ctx, userID, 0)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:          user.ID.String(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		CurrentDebt: user.CurrentDebt,
		Type:        user.Type,
		CreatedAt:   user.CreatedAt,
	}
}
