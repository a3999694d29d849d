package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asketsystem/lifebook/internal/content"
)

func sampleDoc(id string) *content.DailyContent {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &content.DailyContent{
		ID:     id,
		UserID: "u1",
		Date:   now,
		Verse:  content.Verse{Verse: "v", Reference: "r", Explanation: "e"},
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	doc := sampleDoc("u1_2024-03-01")
	if err := store.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "u1_2024-03-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Verse.Verse != "v" || got.UserID != "u1" {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	first := sampleDoc("u1_2024-03-01")
	first.Verse.Verse = "first"
	second := sampleDoc("u1_2024-03-01")
	second.Verse.Verse = "second"

	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("Put first: %v", err)
	}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("Put second: %v", err)
	}

	got, err := store.Get(ctx, "u1_2024-03-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Verse.Verse != "second" {
		t.Fatalf("expected the later write to win, got=%q", got.Verse.Verse)
	}
}

func TestMemoryStoreRejectsMissingID(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if err := store.Put(context.Background(), &content.DailyContent{}); err == nil {
		t.Fatalf("expected an error for a document without an id")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	doc := sampleDoc("u1_2024-03-01")
	if err := store.Put(ctx, doc); err != nil {
		t.Fatalf("Put: %v", err)
	}
	doc.Verse.Verse = "mutated after put"

	got, err := store.Get(ctx, "u1_2024-03-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Verse.Verse != "v" {
		t.Fatalf("stored value should be isolated from the caller, got=%q", got.Verse.Verse)
	}

	got.Verse.Verse = "mutated after get"
	again, err := store.Get(ctx, "u1_2024-03-01")
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if again.Verse.Verse != "v" {
		t.Fatalf("returned value should be a copy, got=%q", again.Verse.Verse)
	}
}
