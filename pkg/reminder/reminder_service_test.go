package reminder

import (
	"Home-Inventory-Backend/domain"
	"Home-Inventory-Backend/entities"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type mockUsers struct {
	users []*entities.User
}

func (m *mockUsers) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return m.users, nil
}

type mockItems struct {
	byUser map[string][]*entities.Item
}

func (m *mockItems) GetItemsByUser(ctx context.Context, userID string) ([]*entities.Item, error) {
	return m.byUser[userID], nil
}

type emailCall struct {
	to      string
	subject string
	body    string
}

type mockEmailSender struct {
	mu    sync.Mutex
	calls []emailCall
}

func (m *mockEmailSender) Send(toAddress, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, emailCall{toAddress, subject, htmlBody})
	return nil
}

type webhookCall struct {
	url  string
	text string
}

type mockWebhookSender struct {
	mu      sync.Mutex
	calls   []webhookCall
	failURL string
	started chan struct{}
	release chan struct{}
}

func (m *mockWebhookSender) Send(url, textPayload string) error {
	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if url == m.failURL {
		return errors.New("connection refused")
	}
	m.calls = append(m.calls, webhookCall{url, textPayload})
	return nil
}

func testUser(email, webhook string) *entities.User {
	return &entities.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        email,
		WebhookURL:   webhook,
		ReminderDays: 7,
	}
}

func testItem(name, category string, expiresInDays int, amount string, unit string) *entities.Item {
	return &entities.Item{
		ID:             uuid.New(),
		Name:           name,
		Category:       category,
		ExpirationDate: time.Now().AddDate(0, 0, expiresInDays),
		Amount:         decimal.RequireFromString(amount),
		Unit:           unit,
	}
}

func TestBuildDigest_ExpiredProduceInBothBuckets(t *testing.T) {
	spinach := testItem("spinach", domain.CategoryVegetable, -1, "2.5", "kg")
	digest := BuildDigest([]*entities.Item{spinach}, time.Now(), 7)

	if len(digest.Expired) != 1 {
		t.Errorf("expected expired bucket to hold the item, got %d", len(digest.Expired))
	}
	if len(digest.FreshProduce) != 1 {
		t.Errorf("expected fresh-produce bucket to hold the item, got %d", len(digest.FreshProduce))
	}
	if len(digest.NearExpiry) != 0 {
		t.Errorf("expected empty near-expiry bucket, got %d", len(digest.NearExpiry))
	}

	text := digest.WebhookText(7)
	if !strings.Contains(text, "Fresh produce stock:") || !strings.Contains(text, "spinach: 2.5 kg") {
		t.Errorf("stock section missing from webhook text:\n%s", text)
	}
	if !strings.Contains(text, "Expired:") {
		t.Errorf("expired section missing from webhook text:\n%s", text)
	}
}

func TestBuildDigest_FreshProduceAloneSkipsEmail(t *testing.T) {
	apple := testItem("apple", domain.CategoryFruit, 30, "1.2", "kg")
	digest := BuildDigest([]*entities.Item{apple}, time.Now(), 7)

	if digest.HasExpiryWarnings() {
		t.Error("a fresh, far-from-expiry item should not trigger the email digest")
	}
	if !digest.HasWebhookContent() {
		t.Error("fresh produce alone should still produce the webhook stock report")
	}
}

func TestRunTick_NoChannelsNoDispatch(t *testing.T) {
	u := testUser("", "")
	items := &mockItems{byUser: map[string][]*entities.Item{
		u.ID.String(): {testItem("milk", domain.CategoryFood, -2, "1", "box")},
	}}
	email := &mockEmailSender{}
	webhook := &mockWebhookSender{}

	svc := NewReminderService(&mockUsers{users: []*entities.User{u}}, items, email, webhook, 4)
	if err := svc.RunTick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(email.calls) != 0 || len(webhook.calls) != 0 {
		t.Errorf("expected zero dispatches, got %d emails and %d webhooks", len(email.calls), len(webhook.calls))
	}
}

func TestRunTick_FailureIsolation(t *testing.T) {
	userA := testUser("", "https://broken.example/hook")
	userB := testUser("bob@example.com", "")
	userB.Username = "bob"

	items := &mockItems{byUser: map[string][]*entities.Item{
		userA.ID.String(): {testItem("yogurt", domain.CategoryFood, 1, "4", "cup")},
		userB.ID.String(): {testItem("cheese", domain.CategoryFood, 2, "1", "block")},
	}}
	email := &mockEmailSender{}
	webhook := &mockWebhookSender{failURL: "https://broken.example/hook"}

	svc := NewReminderService(&mockUsers{users: []*entities.User{userA, userB}}, items, email, webhook, 4)
	if err := svc.RunTick(context.Background()); err != nil {
		t.Fatalf("a failed dispatch must not fail the tick: %v", err)
	}

	if len(email.calls) != 1 {
		t.Fatalf("user B's email should still be sent, got %d calls", len(email.calls))
	}
	if email.calls[0].to != "bob@example.com" {
		t.Errorf("email sent to %s, want bob@example.com", email.calls[0].to)
	}
}

func TestRunTick_Idempotent(t *testing.T) {
	u := testUser("alice@example.com", "https://hook.example/a")
	items := &mockItems{byUser: map[string][]*entities.Item{
		u.ID.String(): {
			testItem("milk", domain.CategoryFood, 2, "1", "box"),
			testItem("spinach", domain.CategoryVegetable, -1, "2.5", "kg"),
		},
	}}
	email := &mockEmailSender{}
	webhook := &mockWebhookSender{}

	svc := NewReminderService(&mockUsers{users: []*entities.User{u}}, items, email, webhook, 4)
	for i := 0; i < 2; i++ {
		if err := svc.RunTick(context.Background()); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	if len(email.calls) != 2 || len(webhook.calls) != 2 {
		t.Fatalf("expected 2 dispatches per channel, got %d emails and %d webhooks", len(email.calls), len(webhook.calls))
	}
	if email.calls[0].body != email.calls[1].body {
		t.Error("email digests differ across ticks over unchanged data")
	}
	if webhook.calls[0].text != webhook.calls[1].text {
		t.Error("webhook digests differ across ticks over unchanged data")
	}
}

func TestRunTick_SkipsWhileRunning(t *testing.T) {
	u := testUser("", "https://hook.example/a")
	items := &mockItems{byUser: map[string][]*entities.Item{
		u.ID.String(): {testItem("milk", domain.CategoryFood, 1, "1", "box")},
	}}
	webhook := &mockWebhookSender{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}

	svc := NewReminderService(&mockUsers{users: []*entities.User{u}}, items, &mockEmailSender{}, webhook, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = svc.RunTick(context.Background())
	}()

	<-webhook.started

	// The first tick is still dispatching; this one must return without
	// producing a second digest.
	if err := svc.RunTick(context.Background()); err != nil {
		t.Fatalf("overlapping tick should be skipped, got: %v", err)
	}

	close(webhook.release)
	<-done

	if len(webhook.calls) != 1 {
		t.Errorf("expected 1 dispatch, got %d", len(webhook.calls))
	}
}
