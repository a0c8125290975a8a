package reminder

import (
	"Home-Inventory-Backend/entities"
	"context"
	"log"
	"sync"
	"time"
)

const emailSubject = "Household Inventory - Expiry Reminder"

type (
	// UserLister and ItemLister are the read-only slices of the user and
	// inventory repositories the tick needs.
	UserLister interface {
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
	}

	ItemLister interface {
		GetItemsByUser(ctx context.Context, userID string) ([]*entities.Item, error)
	}

	ReminderService interface {
		RunTick(ctx context.Context) error
	}

	reminderService struct {
		users         UserLister
		items         ItemLister
		emailSender   EmailSender
		webhookSender WebhookSender
		workers       int

		// tickMu is the Idle/Running guard: a tick that fires while the
		// previous one is still dispatching is skipped, not queued.
		tickMu sync.Mutex
	}
)

func NewReminderService(users UserLister, items ItemLister, emailSender EmailSender, webhookSender WebhookSender, workers int) ReminderService {
	if workers < 1 {
		workers = 1
	}
	return &reminderService{
		users:         users,
		items:         items,
		emailSender:   emailSender,
		webhookSender: webhookSender,
		workers:       workers,
	}
}

// RunTick scans every user, classifies their items as of today and dispatches
// the email and webhook digests. Each tick is a full independent re-scan; no
// dedup against previous ticks is attempted.
func (s *reminderService) RunTick(ctx context.Context) error {
	if !s.tickMu.TryLock() {
		log.Println("reminder tick still running, skipping this one")
		return nil
	}
	defer s.tickMu.Unlock()

	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return err
	}

	today := time.Now()

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for _, u := range users {
		wg.Add(1)
		sem <- struct{}{}
		go func(u *entities.User) {
			defer wg.Done()
			defer func() { <-sem }()
			s.processUser(ctx, u, today)
		}(u)
	}
	wg.Wait()

	return nil
}

// processUser builds and dispatches one user's digests. A failure on one
// channel is logged and does not stop the other channel or other users.
func (s *reminderService) processUser(ctx context.Context, u *entities.User, today time.Time) {
	items, err := s.items.GetItemsByUser(ctx, u.ID.String())
	if err != nil {
		log.Printf("failed to load items for user %s: %v", u.Username, err)
		return
	}

	digest := BuildDigest(items, today, u.ReminderDays)

	if u.Email != "" && digest.HasExpiryWarnings() {
		if err := s.emailSender.Send(u.Email, emailSubject, digest.EmailBody(u.ReminderDays)); err != nil {
			log.Printf("failed to send reminder email to %s: %v", u.Email, err)
		}
	}

	if u.WebhookURL != "" && digest.HasWebhookContent() {
		if err := s.webhookSender.Send(u.WebhookURL, digest.WebhookText(u.ReminderDays)); err != nil {
			log.Printf("failed to send webhook reminder to user %s: %v", u.Username, err)
		}
	}
}
