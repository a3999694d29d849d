package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/asketsystem/lifebook/internal/aiprovider"
	"github.com/asketsystem/lifebook/internal/platform/apierr"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

type fakeAI struct {
	mu    sync.Mutex
	calls int
	reply func(system, user string) (string, error)
}

func (f *fakeAI) Complete(_ context.Context, system, user string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.reply(system, user)
}

func (f *fakeAI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeStore struct {
	mu   sync.Mutex
	docs map[string]DailyContent
	puts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]DailyContent{}}
}

func (s *fakeStore) Put(_ context.Context, doc *DailyContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = *doc
	s.puts++
	return nil
}

func (s *fakeStore) Get(_ context.Context, id string) (*DailyContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := doc
	return &out, nil
}

// scriptedReply answers each prompt kind with well-formed content, tagging
// text fields so tests can tell generations apart.
func scriptedReply(tag string) func(system, user string) (string, error) {
	return func(_, user string) (string, error) {
		switch {
		case strings.Contains(user, "Bible verse for someone feeling"):
			return fmt.Sprintf(`{"verse": "verse-%s", "reference": "ref-%s", "explanation": "why-%s"}`, tag, tag, tag), nil
		case strings.Contains(user, "meditation script"):
			return fmt.Sprintf(`{"title": "med-%s", "script": "script-%s", "breathingPattern": "box"}`, tag, tag), nil
		case strings.Contains(user, "heartfelt Christian prayer"):
			return fmt.Sprintf(`{"title": "prayer-%s", "prayer": "text-%s", "category": "comfort"}`, tag, tag), nil
		case strings.Contains(user, "reflection question"):
			return "  How does this verse speak to you today?  ", nil
		case strings.Contains(user, "action step"):
			return fmt.Sprintf(`{"title": "act-%s", "description": "do-%s", "category": "service"}`, tag, tag), nil
		default:
			return "", fmt.Errorf("unexpected prompt: %s", user)
		}
	}
}

func newTestService(t *testing.T, ai aiprovider.Client, store Store, now time.Time) *service {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	svc := NewService(log, ai, store).(*service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGenerateDailyDeterministicID(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	ai := &fakeAI{reply: scriptedReply("a")}
	store := newFakeStore()
	svc := newTestService(t, ai, store, now)

	doc, err := svc.GenerateDaily(context.Background(), "u1", "anxious", []string{"tired"})
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	if doc.ID != "u1_2024-03-01" {
		t.Fatalf("id: got=%q want=%q", doc.ID, "u1_2024-03-01")
	}
	if ai.callCount() != 5 {
		t.Fatalf("provider calls: got=%d want=5", ai.callCount())
	}
	if doc.Reflection.Prompt != "How does this verse speak to you today?" {
		t.Fatalf("reflection prompt not trimmed: %q", doc.Reflection.Prompt)
	}
	if doc.Reflection.Response != nil {
		t.Fatalf("reflection response should start nil")
	}
	if doc.Mood.PrimaryMood != "anxious" || len(doc.Mood.SecondaryEmotions) != 1 {
		t.Fatalf("mood not embedded: %+v", doc.Mood)
	}
}

func TestGenerateDailyAllFallbacksOnMalformedReplies(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ai := &fakeAI{reply: func(_, user string) (string, error) {
		if strings.Contains(user, "reflection question") {
			return "a reflection question", nil
		}
		return "definitely {not valid json", nil
	}}
	store := newFakeStore()
	svc := newTestService(t, ai, store, now)

	doc, err := svc.GenerateDaily(context.Background(), "u1", "anxious", nil)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	if doc.Verse != fallbackVerse() {
		t.Fatalf("verse should be the fixed fallback, got=%+v", doc.Verse)
	}
	if doc.Meditation != fallbackMeditation() {
		t.Fatalf("meditation should be the fixed fallback")
	}
	if doc.Prayer != fallbackPrayer() {
		t.Fatalf("prayer should be the fixed fallback")
	}
	if doc.ActionStep != fallbackActionStep() {
		t.Fatalf("action step should be the fixed fallback")
	}
	if store.puts != 1 {
		t.Fatalf("record should still be persisted once, puts=%d", store.puts)
	}
}

func TestGenerateDailyProviderErrorsFallBackForStructuredKinds(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ai := &fakeAI{reply: func(_, user string) (string, error) {
		if strings.Contains(user, "reflection question") {
			return "a reflection question", nil
		}
		return "", aiprovider.ErrGenerationFailed
	}}
	store := newFakeStore()
	svc := newTestService(t, ai, store, now)

	doc, err := svc.GenerateDaily(context.Background(), "u1", "sad", nil)
	if err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	if doc.Verse != fallbackVerse() || doc.Prayer != fallbackPrayer() {
		t.Fatalf("structured kinds should absorb provider errors via fallback")
	}
}

func TestGenerateDailyReflectionErrorFailsTheBundle(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ai := &fakeAI{reply: func(system, user string) (string, error) {
		if strings.Contains(user, "reflection question") {
			return "", aiprovider.ErrGenerationFailed
		}
		return scriptedReply("a")(system, user)
	}}
	store := newFakeStore()
	svc := newTestService(t, ai, store, now)

	if _, err := svc.GenerateDaily(context.Background(), "u1", "sad", nil); err == nil {
		t.Fatalf("expected the bundle to fail when reflection generation fails")
	}
	if store.puts != 0 {
		t.Fatalf("nothing should be persisted on failure, puts=%d", store.puts)
	}
}

func TestGenerateDailyLastWriteWins(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := newFakeStore()

	first := &fakeAI{reply: scriptedReply("first")}
	if _, err := newTestService(t, first, store, now).GenerateDaily(context.Background(), "u1", "calm", nil); err != nil {
		t.Fatalf("first GenerateDaily: %v", err)
	}

	second := &fakeAI{reply: scriptedReply("second")}
	svc := newTestService(t, second, store, now)
	if _, err := svc.GenerateDaily(context.Background(), "u1", "calm", nil); err != nil {
		t.Fatalf("second GenerateDaily: %v", err)
	}

	got, err := svc.GetDaily(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("GetDaily: %v", err)
	}
	if got.Verse.Verse != "verse-second" {
		t.Fatalf("expected the second write to win, got=%q", got.Verse.Verse)
	}
	if store.puts != 2 {
		t.Fatalf("puts: got=%d want=2", store.puts)
	}
}

func TestGenerateDailyMissingMood(t *testing.T) {
	t.Parallel()

	ai := &fakeAI{reply: scriptedReply("a")}
	svc := newTestService(t, ai, newFakeStore(), time.Now())

	_, err := svc.GenerateDaily(context.Background(), "u1", "  ", nil)
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Status != 400 {
		t.Fatalf("expected a 400 apierr, got=%v", err)
	}
	if ai.callCount() != 0 {
		t.Fatalf("provider must not be called on invalid input, calls=%d", ai.callCount())
	}
}

func TestGetDailyNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &fakeAI{reply: scriptedReply("a")}, newFakeStore(), time.Now())

	_, err := svc.GetDaily(context.Background(), "u1", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Status != 404 {
		t.Fatalf("expected a 404 apierr, got=%v", err)
	}
}

func TestGetDailyDefaultsToToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	svc := newTestService(t, &fakeAI{reply: scriptedReply("a")}, store, now)

	if _, err := svc.GenerateDaily(context.Background(), "u1", "calm", nil); err != nil {
		t.Fatalf("GenerateDaily: %v", err)
	}
	got, err := svc.GetDaily(context.Background(), "u1", time.Time{})
	if err != nil {
		t.Fatalf("GetDaily with zero date: %v", err)
	}
	if got.ID != "u1_2024-03-01" {
		t.Fatalf("id: got=%q", got.ID)
	}
}

func TestGenerateMeditationDoesNotPersist(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(t, &fakeAI{reply: scriptedReply("a")}, store, time.Now())

	m, err := svc.GenerateMeditation(context.Background(), "stressed", 10)
	if err != nil {
		t.Fatalf("GenerateMeditation: %v", err)
	}
	if m.Title != "med-a" {
		t.Fatalf("title: got=%q", m.Title)
	}
	if store.puts != 0 {
		t.Fatalf("one-off meditation must not be persisted, puts=%d", store.puts)
	}
}

func TestGeneratePrayerDoesNotPersist(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(t, &fakeAI{reply: scriptedReply("a")}, store, time.Now())

	p, err := svc.GeneratePrayer(context.Background(), "grateful", "a new home")
	if err != nil {
		t.Fatalf("GeneratePrayer: %v", err)
	}
	if p.Title != "prayer-a" {
		t.Fatalf("title: got=%q", p.Title)
	}
	if store.puts != 0 {
		t.Fatalf("one-off prayer must not be persisted, puts=%d", store.puts)
	}
}
