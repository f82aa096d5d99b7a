package domain

import "errors"

var (
	MessageSuccessRegister          = "User registered successfully"
	MessageSuccessLogin             = "login successful"
	MessageSuccessForgotPassword    = "Password reset link sent to email."
	MessageSuccessResetPassword     = "Password has been reset successfully!"
	MessageSuccessGetUsers          = "users retrieved successfully"
	MessageSuccessUpdateUser        = "User updated successfully"
	MessageSuccessDeleteUser        = "User deleted successfully"
	MessageSuccessCreateSalesperson = "Salesperson created successfully!"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedForgotPassword = "failed to send reset link"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedGetUsers       = "failed to fetch users"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedDeleteUser     = "failed to delete user"
	MessageFailedCreateUser     = "failed to create user"

	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrBusinessInfoRequired = errors.New("business name and email are required for admin registration")
	ErrResetTokenInvalid    = errors.New("invalid or expired token")
	ErrUserOutsideBusiness  = errors.New("user does not belong to this business")
)

type (
	// RegisterRequest creates a new admin account together with its
	// business. Salesperson accounts are created by an authenticated admin
	// through CreateSalespersonRequest, so tenant membership always comes
	// from a verified credential.
	RegisterRequest struct {
		Name          string `json:"name" validate:"required"`
		Email         string `json:"email" validate:"required,email"`
		Password      string `json:"password" validate:"required,min=8"`
		BusinessName  string `json:"business_name" validate:"required"`
		BusinessEmail string `json:"business_email" validate:"required,email"`
	}

	RegisterResponse struct {
		BusinessID uint `json:"business_id"`
	}

	LoginRequest struct {
		// Identifier is either the account email or the account name.
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	CreateSalespersonRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UpdateUserRequest struct {
		Name  string `json:"name" validate:"omitempty"`
		Email string `json:"email" validate:"omitempty,email"`
	}

	UserResponse struct {
		ID         uint   `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		BusinessID uint   `json:"business_id"`
	}
)
