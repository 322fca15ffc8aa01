package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user details retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessUpdatePassword = "password updated successfully"
	MessageSuccessGetUsers       = "users retrieved successfully"
	MessageSuccessUpdateDebt     = "user debt updated successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user details"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedUpdatePassword = "failed to update password"
	MessageFailedGetUsers       = "failed to retrieve users"
	MessageFailedUpdateDebt     = "failed to update user debt"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrNotAnAdmin         = errors.New("account does not have admin access")
)

type (
	RegisterUserRequest struct {
		FirstName   string  `json:"first_name" validate:"required"`
		LastName    string  `json:"last_name" validate:"required"`
		Email       string  `json:"email" validate:"required,email"`
		Password    string  `json:"password" validate:"required,min=8"`
		CurrentDebt float64 `json:"current_debt" validate:"omitempty,gte=0"`
	}

	RegisterUserResponse struct {
		ID        string `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Type      string `json:"type"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		FirstName string `json:"first_name" validate:"omitempty"`
		LastName  string `json:"last_name" validate:"omitempty"`
		Email     string `json:"email" validate:"omitempty,email"`
	}

	UpdatePasswordRequest struct {
		NewPassword     string `json:"new_password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirm_password" validate:"required"`
	}

	UpdateDebtRequest struct {
		CurrentDebt float64 `json:"current_debt" validate:"gte=0"`
	}

	UserResponse struct {
		ID          string    `json:"id"`
		FirstName   string    `json:"first_name"`
		LastName    string    `json:"last_name"`
		Email       string    `json:"email"`
		CurrentDebt float64   `json:"current_debt"`
		Type        string    `json:"type"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
