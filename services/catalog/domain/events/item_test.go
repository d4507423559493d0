package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gocatalog/services/catalog/domain/events"
)

func TestItemAddedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemAddedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ItemID:        7,
		Name:          "Red Mug",
		Description:   "A ceramic mug",
		CategoryLabel: "Kitchen",
		BrandLabel:    "Acme",
		Slug:          "red-mug",
		Locator:       events.ItemLocator(7),
		OccurredAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{
		"eventId", "version", "itemId", "name", "description",
		"categoryLabel", "brandLabel", "slug", "locator", "occurredAt",
	} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestItemChangedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemChangedEvent{
		EventID:       uuid.New(),
		Version:       1,
		ItemID:        7,
		Name:          "Blue Mug",
		CategoryLabel: "Kitchen",
		BrandLabel:    "Acme",
		Slug:          "blue-mug",
		OccurredAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{
		"eventId", "version", "itemId", "name", "description",
		"categoryLabel", "brandLabel", "slug", "occurredAt",
	} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}

	if _, ok := raw["locator"]; ok {
		t.Error("ItemChangedEvent must not carry a locator field")
	}
}

func TestTopics(t *testing.T) {
	if events.TopicItemAdded != "catalog.item.added" {
		t.Errorf("TopicItemAdded: got %q", events.TopicItemAdded)
	}
	if events.TopicItemChanged != "catalog.item.changed" {
		t.Errorf("TopicItemChanged: got %q", events.TopicItemChanged)
	}
}

func TestItemLocator(t *testing.T) {
	if got := events.ItemLocator(42); got != "/api/v1/items/42" {
		t.Errorf("ItemLocator(42) = %q, want %q", got, "/api/v1/items/42")
	}
}
