package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resto-pos-backend/domain"
	"resto-pos-backend/entities"
	"resto-pos-backend/internal/utils"
	"resto-pos-backend/internal/utils/mailing"
	"resto-pos-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		CreateSalesperson(ctx context.Context, req domain.CreateSalespersonRequest, businessID uint) error
		GetBusinessUsers(ctx context.Context, businessID uint) ([]domain.UserResponse, error)
		GetUser(ctx context.Context, id, businessID uint) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest, businessID uint) error
		DeleteUser(ctx context.Context, id, businessID uint) error
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

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	if req.BusinessName == "" || req.BusinessEmail == "" {
		return domain.RegisterResponse{}, domain.ErrBusinessInfoRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	business := &entities.Business{
		Name:  req.BusinessName,
		Email: req.BusinessEmail,
	}
	if err := s.userRepository.CreateBusiness(ctx, business); err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		BusinessID: business.ID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       domain.RoleAdmin,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{BusinessID: business.ID}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.BusinessID, user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		Token: token,
		User: domain.UserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			BusinessID: user.BusinessID,
		},
	}, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token := uuid.NewString()
	expires := time.Now().Add(resetTokenTTL)
	user.ResetToken = &token
	user.ResetExpires = &expires

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(`<h2>Password Reset</h2>
<p>Click <a href="%s">here</a> to reset your password.</p>
<p>This link expires in 15 minutes.</p>`, resetURL)

	return mailing.SendMail(user.Email, "Password Reset Request", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	user, err := s.userRepository.GetUserByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	user.ResetToken = nil
	user.ResetExpires = nil

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) CreateSalesperson(ctx context.Context, req domain.CreateSalespersonRequest, businessID uint) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepository.CreateUser(ctx, &entities.User{
		BusinessID: businessID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       domain.RoleSalesperson,
	})
}

func (s *userService) GetBusinessUsers(ctx context.Context, businessID uint) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsersByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, domain.UserResponse{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			BusinessID: u.BusinessID,
		})
	}
	return response, nil
}

func (s *userService) GetUser(ctx context.Context, id, businessID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if user.BusinessID != businessID {
		return domain.UserResponse{}, domain.ErrUserOutsideBusiness
	}

	return domain.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		BusinessID: user.BusinessID,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, req domain.UpdateUserRequest, businessID uint) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.BusinessID != businessID {
		return domain.ErrUserOutsideBusiness
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id, businessID uint) error {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.BusinessID != businessID {
		return domain.ErrUserOutsideBusiness
	}

	return s.userRepository.DeleteUser(ctx, id)
}
