package user

import (
	"Home-Inventory-Backend/domain"
	"Home-Inventory-Backend/entities"
	"context"
	"errors"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	byUsername map[string]*entities.User
	byID       map[string]*entities.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byUsername: make(map[string]*entities.User),
		byID:       make(map[string]*entities.User),
	}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *entities.User) error {
	m.byUsername[user.Username] = user
	m.byID[user.ID.String()] = user
	return nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, ok := m.byUsername[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, user *entities.User) error {
	m.byUsername[user.Username] = user
	m.byID[user.ID.String()] = user
	return nil
}

func (m *mockUserRepo) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	for _, u := range m.byID {
		users = append(users, u)
	}
	return users, nil
}

type stubJWTService struct{}

func (s *stubJWTService) GenerateTokenUser(userId string, role string) string { return "token" }
func (s *stubJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}
func (s *stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func TestRegister_DefaultsReminderDays(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, &stubJWTService{})

	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: "alice",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byUsername["alice"]
	if stored.ReminderDays != domain.DefaultReminderDays {
		t.Errorf("reminder days = %d, want %d", stored.ReminderDays, domain.DefaultReminderDays)
	}
	if stored.Password == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
	if res.Username != "alice" {
		t.Errorf("username = %s, want alice", res.Username)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, &stubJWTService{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "other-pass"})
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, &stubJWTService{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	res, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" {
		t.Error("expected a token on successful login")
	}
}

func TestUpdateSettings(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo, &stubJWTService{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Username: "alice", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	userID := repo.byUsername["alice"].ID.String()

	err := svc.UpdateSettings(ctx, domain.UpdateSettingsRequest{
		Email:        "alice@example.com",
		WebhookURL:   "https://hook.example/a",
		ReminderDays: 3,
	}, userID)
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}

	stored := repo.byID[userID]
	if stored.Email != "alice@example.com" || stored.WebhookURL != "https://hook.example/a" || stored.ReminderDays != 3 {
		t.Errorf("settings not applied: %+v", stored)
	}
}
