package user

import (
	"Home-Inventory-Backend/domain"
	"Home-Inventory-Backend/entities"
	"Home-Inventory-Backend/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest, userID string) error
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
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	reminderDays := req.ReminderDays
	if reminderDays <= 0 {
		reminderDays = domain.DefaultReminderDays
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Password:     string(hashed),
		Email:        req.Email,
		WebhookURL:   req.WebhookURL,
		ReminderDays: reminderDays,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), domain.RoleUser)

	return domain.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
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

func (s *userService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.Email = req.Email
	user.WebhookURL = req.WebhookURL
	if req.ReminderDays > 0 {
		user.ReminderDays = req.ReminderDays
	} else if req.ReminderDays < 0 {
		return domain.ErrInvalidReminderDays
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		WebhookURL:   user.WebhookURL,
		ReminderDays: user.ReminderDays,
	}
}
