package reminder

import (
	"Home-Inventory-Backend/domain"
	"Home-Inventory-Backend/entities"
	"Home-Inventory-Backend/pkg/expiry"
	"fmt"
	"strings"
	"time"
)

// Digest is the per-user partition of items built during one tick. Fresh
// produce is reported unconditionally as a standing stock report; the other
// two buckets come from the classifier.
type Digest struct {
	NearExpiry   []*entities.Item
	Expired      []*entities.Item
	FreshProduce []*entities.Item
}

func BuildDigest(items []*entities.Item, asOf time.Time, leadTimeDays int) Digest {
	var digest Digest

	for _, item := range items {
		classification := expiry.Classify(item.ExpirationDate, asOf, leadTimeDays)
		switch classification.Status {
		case expiry.StatusNearExpiry:
			digest.NearExpiry = append(digest.NearExpiry, item)
		case expiry.StatusExpired:
			digest.Expired = append(digest.Expired, item)
		}

		if domain.IsFreshProduce(item.Category) {
			digest.FreshProduce = append(digest.FreshProduce, item)
		}
	}

	return digest
}

func (d Digest) HasExpiryWarnings() bool {
	return len(d.NearExpiry) > 0 || len(d.Expired) > 0
}

func (d Digest) HasWebhookContent() bool {
	return len(d.FreshProduce) > 0 || d.HasExpiryWarnings()
}

// EmailBody renders the HTML email digest: a near-expiry section and an
// expired section, each listing item name and expiration date.
func (d Digest) EmailBody(leadTimeDays int) string {
	var b strings.Builder
	b.WriteString("<h2>Inventory Reminder</h2>")

	if len(d.NearExpiry) > 0 {
		fmt.Fprintf(&b, "<h3>Items expiring within %d days:</h3><ul>", leadTimeDays)
		for _, item := range d.NearExpiry {
			fmt.Fprintf(&b, "<li>%s - expires: %s</li>", item.Name, item.ExpirationDate.Format("2006-01-02"))
		}
		b.WriteString("</ul>")
	}

	if len(d.Expired) > 0 {
		b.WriteString("<h3>Expired items:</h3><ul>")
		for _, item := range d.Expired {
			fmt.Fprintf(&b, "<li>%s - expires: %s</li>", item.Name, item.ExpirationDate.Format("2006-01-02"))
		}
		b.WriteString("</ul>")
	}

	return b.String()
}

// WebhookText renders the plain-text digest with three optional sections:
// fresh-produce stock levels, near-expiry warnings and expired items.
func (d Digest) WebhookText(leadTimeDays int) string {
	var b strings.Builder
	b.WriteString("[Household Inventory Daily Report]\n\n")

	if len(d.FreshProduce) > 0 {
		b.WriteString("Fresh produce stock:\n")
		for _, item := range d.FreshProduce {
			fmt.Fprintf(&b, "- %s: %s %s\n", item.Name, item.Amount.String(), item.Unit)
		}
		b.WriteString("\n")
	}

	if len(d.NearExpiry) > 0 {
		fmt.Fprintf(&b, "Expiring within %d days:\n", leadTimeDays)
		for _, item := range d.NearExpiry {
			fmt.Fprintf(&b, "- %s (%s)\n", item.Name, item.ExpirationDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}

	if len(d.Expired) > 0 {
		b.WriteString("Expired:\n")
		for _, item := range d.Expired {
			fmt.Fprintf(&b, "- %s (%s)\n", item.Name, item.ExpirationDate.Format("2006-01-02"))
		}
	}

	return b.String()
}
