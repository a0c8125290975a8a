package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessUpdateSettings = "notification settings updated successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedUpdateSettings = "failed to update notification settings"

	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidReminderDays = errors.New("reminder days must be positive")
)

type (
	RegisterRequest struct {
		Username     string `json:"username" validate:"required,min=3"`
		Password     string `json:"password" validate:"required,min=8"`
		Email        string `json:"email" validate:"omitempty,email"`
		WebhookURL   string `json:"webhook_url" validate:"omitempty,url"`
		ReminderDays int    `json:"reminder_days" validate:"omitempty,min=1"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateSettingsRequest struct {
		Email        string `json:"email" validate:"omitempty,email"`
		WebhookURL   string `json:"webhook_url" validate:"omitempty,url"`
		ReminderDays int    `json:"reminder_days" validate:"omitempty,min=1"`
	}

	UserResponse struct {
		ID           string `json:"id"`
		Username     string `json:"username"`
		Email        string `json:"email,omitempty"`
		WebhookURL   string `json:"webhook_url,omitempty"`
		ReminderDays int    `json:"reminder_days"`
	}
)
