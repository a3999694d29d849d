package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/asketsystem/lifebook/internal/aiprovider"
	"github.com/asketsystem/lifebook/internal/platform/apierr"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

const defaultMeditationMinutes = 5

// Service orchestrates mood-driven content generation and persistence.
type Service interface {
	GenerateDaily(ctx context.Context, userID, mood string, secondaryEmotions []string) (*DailyContent, error)
	GetDaily(ctx context.Context, userID string, date time.Time) (*DailyContent, error)
	GenerateMeditation(ctx context.Context, mood string, durationMinutes int) (*Meditation, error)
	GeneratePrayer(ctx context.Context, mood, prayerContext string) (*Prayer, error)
}

type service struct {
	log   *logger.Logger
	ai    aiprovider.Client
	store Store
	now   func() time.Time
}

func NewService(log *logger.Logger, ai aiprovider.Client, store Store) Service {
	return &service{
		log:   log.With("service", "ContentService"),
		ai:    ai,
		store: store,
		now:   time.Now,
	}
}

// GenerateDaily fans out the five content generations concurrently, joins on
// all of them, and upserts the assembled record at its deterministic id.
// The four structured kinds are infallible (they fall back internally), so
// only the reflection generation or the store write can fail the bundle.
func (s *service) GenerateDaily(ctx context.Context, userID, mood string, secondaryEmotions []string) (*DailyContent, error) {
	if strings.TrimSpace(mood) == "" {
		return nil, apierr.BadRequest("Mood is required")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, apierr.BadRequest("User ID is required")
	}

	now := s.now()

	var (
		verse      Verse
		meditation Meditation
		prayer     Prayer
		reflection string
		actionStep ActionStep
	)

	// Plain errgroup, not WithContext: join-all semantics. A reflection
	// failure must not cancel the sibling calls mid-flight.
	g := new(errgroup.Group)
	g.Go(func() error {
		verse = s.generateVerse(ctx, mood, secondaryEmotions)
		return nil
	})
	g.Go(func() error {
		meditation = s.generateMeditation(ctx, mood, defaultMeditationMinutes)
		return nil
	})
	g.Go(func() error {
		prayer = s.generatePrayer(ctx, mood, "")
		return nil
	})
	g.Go(func() error {
		var err error
		reflection, err = s.generateReflection(ctx, mood, anchorVerseText)
		return err
	})
	g.Go(func() error {
		actionStep = s.generateActionStep(ctx, mood, anchorVerseText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("generate daily content: %w", err)
	}

	doc := &DailyContent{
		ID:     DailyContentID(userID, now),
		UserID: userID,
		Date:   now,
		Mood: MoodSelection{
			PrimaryMood:       mood,
			SecondaryEmotions: secondaryEmotions,
			Timestamp:         now,
		},
		Verse:      verse,
		Meditation: meditation,
		Prayer:     prayer,
		Reflection: Reflection{
			ID:     fmt.Sprintf("reflection_%d", now.UnixMilli()),
			Prompt: reflection,
		},
		ActionStep: actionStep,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Put(ctx, doc); err != nil {
		return nil, fmt.Errorf("save daily content: %w", err)
	}

	s.log.Info("Daily content generated", "id", doc.ID, "mood", mood)
	return doc, nil
}

// GetDaily returns the stored record for the user's day. A zero date means
// today.
func (s *service) GetDaily(ctx context.Context, userID string, date time.Time) (*DailyContent, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apierr.BadRequest("User ID is required")
	}
	if date.IsZero() {
		date = s.now()
	}

	doc, err := s.store.Get(ctx, DailyContentID(userID, date))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apierr.NotFound("Content not found for this date")
		}
		return nil, fmt.Errorf("fetch daily content: %w", err)
	}
	return doc, nil
}

// GenerateMeditation produces a one-off meditation without persistence.
func (s *service) GenerateMeditation(ctx context.Context, mood string, durationMinutes int) (*Meditation, error) {
	if strings.TrimSpace(mood) == "" {
		return nil, apierr.BadRequest("Mood is required")
	}
	if durationMinutes <= 0 {
		durationMinutes = defaultMeditationMinutes
	}
	m := s.generateMeditation(ctx, mood, durationMinutes)
	return &m, nil
}

// GeneratePrayer produces a one-off prayer without persistence.
func (s *service) GeneratePrayer(ctx context.Context, mood, prayerContext string) (*Prayer, error) {
	if strings.TrimSpace(mood) == "" {
		return nil, apierr.BadRequest("Mood is required")
	}
	p := s.generatePrayer(ctx, mood, prayerContext)
	return &p, nil
}

// The structured generators below absorb every failure mode: provider errors
// and undecodable replies both resolve to the kind's fixed fallback.

func (s *service) generateVerse(ctx context.Context, mood string, secondaryEmotions []string) Verse {
	system, user := versePrompt(mood, secondaryEmotions)
	raw, err := s.ai.Complete(ctx, system, user)
	if err != nil {
		s.log.Warn("Verse generation failed, using fallback", "mood", mood)
		return fallbackVerse()
	}
	v, ok := decodeVerse(raw)
	if !ok {
		s.log.Debug("Verse reply was not decodable, using fallback", "mood", mood)
	}
	return v
}

func (s *service) generateMeditation(ctx context.Context, mood string, durationMinutes int) Meditation {
	system, user := meditationPrompt(mood, durationMinutes)
	raw, err := s.ai.Complete(ctx, system, user)
	if err != nil {
		s.log.Warn("Meditation generation failed, using fallback", "mood", mood)
		return fallbackMeditation()
	}
	m, ok := decodeMeditation(raw)
	if !ok {
		s.log.Debug("Meditation reply was not decodable, using fallback", "mood", mood)
	}
	return m
}

func (s *service) generatePrayer(ctx context.Context, mood, prayerContext string) Prayer {
	system, user := prayerPrompt(mood, prayerContext)
	raw, err := s.ai.Complete(ctx, system, user)
	if err != nil {
		s.log.Warn("Prayer generation failed, using fallback", "mood", mood)
		return fallbackPrayer()
	}
	p, ok := decodePrayer(raw)
	if !ok {
		s.log.Debug("Prayer reply was not decodable, using fallback", "mood", mood)
	}
	return p
}

func (s *service) generateActionStep(ctx context.Context, mood, verse string) ActionStep {
	system, user := actionStepPrompt(mood, verse)
	raw, err := s.ai.Complete(ctx, system, user)
	if err != nil {
		s.log.Warn("Action step generation failed, using fallback", "mood", mood)
		return fallbackActionStep()
	}
	a, ok := decodeActionStep(raw)
	if !ok {
		s.log.Debug("Action step reply was not decodable, using fallback", "mood", mood)
	}
	return a
}

// generateReflection is the one kind without a fallback: the provider's text
// is returned verbatim, trimmed, and errors propagate to the caller.
func (s *service) generateReflection(ctx context.Context, mood, verse string) (string, error) {
	system, user := reflectionPrompt(mood, verse)
	raw, err := s.ai.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
