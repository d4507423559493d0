// Package events defines the integration events the catalog publishes to
// the messaging fabric. Events are immutable snapshots carrying resolved
// brand and category labels, never raw foreign keys; ownership passes to
// the bus the moment the enclosing transaction commits.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Watermill topics for catalog item mutations.
const (
	TopicItemAdded   = "catalog.item.added"
	TopicItemChanged = "catalog.item.changed"
)

// ItemLocator builds the resource locator hint for an item id.
func ItemLocator(id int64) string {
	return fmt.Sprintf("/api/v1/items/%d", id)
}

// ItemAddedEvent is published after a new item is persisted.
type ItemAddedEvent struct {
	EventID       uuid.UUID `json:"eventId"` // unique per publish, for consumer dedup
	Version       int       `json:"version"` // schema version; bump on breaking changes
	ItemID        int64     `json:"itemId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryLabel string    `json:"categoryLabel"`
	BrandLabel    string    `json:"brandLabel"`
	Slug          string    `json:"slug"`
	Locator       string    `json:"locator"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// ItemChangedEvent is published after an existing item is rewritten.
// Unlike ItemAddedEvent it carries no locator.
type ItemChangedEvent struct {
	EventID       uuid.UUID `json:"eventId"`
	Version       int       `json:"version"`
	ItemID        int64     `json:"itemId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CategoryLabel string    `json:"categoryLabel"`
	BrandLabel    string    `json:"brandLabel"`
	Slug          string    `json:"slug"`
	OccurredAt    time.Time `json:"occurredAt"`
}
