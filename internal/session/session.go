// Package session owns the live state of one user: the assessment, the
// waitlist and the language preference. State is loaded once when the session
// opens and written back after every change. Writes are best effort: a failed
// save is logged and the in-memory state stays authoritative.
package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/service"
	"github.com/senior-care-guide/internal/storage"
	"github.com/senior-care-guide/internal/validation"
	"github.com/senior-care-guide/internal/waitlist"
)

// Metrics receives session events. *metrics.Collector implements it.
type Metrics interface {
	ObserveWaitlistMutation(operation string, applied bool)
	SetWaitlist(size, due int)
	ObservePersistenceFailure(key, operation string)
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the source of "today".
func WithClock(clock func() time.Time) Option {
	return func(s *Session) { s.clock = clock }
}

// WithIDGenerator overrides how waitlist item ids are made.
func WithIDGenerator(gen waitlist.IDGenerator) Option {
	return func(s *Session) { s.newID = gen }
}

// WithLogger sets the logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRecommender replaces the default uncached engine.
func WithRecommender(r service.Recommender) Option {
	return func(s *Session) { s.recommender = r }
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithDefaultLanguage sets the language used until one has been saved.
func WithDefaultLanguage(lang i18n.Language) Option {
	return func(s *Session) { s.defaultLang = lang }
}

// Session is safe for concurrent use.
type Session struct {
	mu         sync.RWMutex
	assessment domain.Assessment
	items      []domain.WaitlistItem
	lang       i18n.Language

	store       storage.Store
	clock       func() time.Time
	newID       waitlist.IDGenerator
	logger      *logrus.Logger
	recommender service.Recommender
	metrics     Metrics
	defaultLang i18n.Language
}

// Open loads persisted state from store. Load problems never fail the open:
// the affected key falls back to its default and the problem is logged.
func Open(ctx context.Context, store storage.Store, opts ...Option) *Session {
	s := &Session{
		store: store,
		clock: time.Now,
		newID: waitlist.NewUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.recommender == nil {
		s.recommender = service.NewCarePathEngine(s.logger)
	}
	if s.store == nil {
		s.store = storage.NewMemoryStore()
	}

	state, err := storage.LoadState(ctx, s.store)
	if err != nil {
		s.persistFailed(storage.StateKey, "load", err)
	}
	lang, err := storage.LoadLanguageOr(ctx, s.store, s.defaultLang)
	if err != nil {
		s.persistFailed(storage.LanguageKey, "load", err)
	}

	s.assessment = state.Assessment
	s.items = state.Waitlist
	s.lang = lang
	s.updateGauges()

	s.logger.WithFields(logrus.Fields{
		"waitlist_items": len(s.items),
		"language":       s.lang,
	}).Debug("Session opened")

	return s
}

// Today is the current local date.
func (s *Session) Today() string {
	return domain.FormatDate(s.clock())
}

// Assessment returns the current answers.
func (s *Session) Assessment() domain.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assessment
}

// SetAssessment replaces the answers. Unknown options are rejected and leave
// the state unchanged.
func (s *Session) SetAssessment(ctx context.Context, a domain.Assessment) error {
	if err := validation.Assessment(a); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.assessment = a
	s.saveState(ctx)
	return nil
}

// Recommendation evaluates the current answers in the session language.
func (s *Session) Recommendation() domain.Recommendation {
	s.mu.RLock()
	a, lang := s.assessment, s.lang
	s.mu.RUnlock()

	return s.recommender.Recommend(a, lang)
}

// RecommendationIn evaluates the current answers in lang.
func (s *Session) RecommendationIn(lang i18n.Language) domain.Recommendation {
	return s.recommender.Recommend(s.Assessment(), lang)
}

// Language returns the display language.
func (s *Session) Language() i18n.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage switches the display language. Unsupported codes are rejected.
func (s *Session) SetLanguage(ctx context.Context, code string) (i18n.Language, error) {
	lang, err := i18n.ParseLanguage(code)
	if err != nil {
		return s.Language(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lang = lang
	if err := storage.SaveLanguage(ctx, s.store, lang); err != nil {
		s.persistFailed(storage.LanguageKey, "save", err)
	}
	return lang, nil
}

// Waitlist returns a copy of the items, newest first.
func (s *Session) Waitlist() []domain.WaitlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// WaitlistView returns the items with their follow-up state for today.
func (s *Session) WaitlistView() []waitlist.ItemView {
	today := s.Today()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return waitlist.View(s.items, today)
}

// AddWaitlistItem records a new application. A blank facility name is
// rejected and returns false.
func (s *Session) AddWaitlistItem(ctx context.Context, draft domain.WaitlistDraft) (domain.WaitlistItem, bool) {
	today := s.Today()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, item, ok := waitlist.Add(s.items, draft, today, s.newID)
	s.observe("add", ok)
	if !ok {
		return domain.WaitlistItem{}, false
	}

	s.items = items
	s.saveState(ctx)

	s.logger.WithFields(logrus.Fields{
		"item_id":  item.ID,
		"interval": item.FollowUpEveryDays,
	}).Debug("Waitlist item added")
	return item, true
}

// MarkFollowedUp stamps today's date on the item. Unknown ids return false.
func (s *Session) MarkFollowedUp(ctx context.Context, id string) (domain.WaitlistItem, bool) {
	today := s.Today()

	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := waitlist.MarkFollowedUp(s.items, id, today)
	s.observe("follow_up", ok)
	if !ok {
		return domain.WaitlistItem{}, false
	}

	s.items = items
	s.saveState(ctx)

	item, _ := waitlist.Find(items, id)
	return item, true
}

// RemoveWaitlistItem deletes the item. Unknown ids return false.
func (s *Session) RemoveWaitlistItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := waitlist.Remove(s.items, id)
	s.observe("remove", ok)
	if !ok {
		return false
	}

	s.items = items
	s.saveState(ctx)
	return true
}

// DueItems returns the items needing a follow-up today.
func (s *Session) DueItems() []domain.WaitlistItem {
	today := s.Today()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return waitlist.DueItems(s.items, today)
}

// DueCount is the number of items needing a follow-up today.
func (s *Session) DueCount() int {
	today := s.Today()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return waitlist.DueCount(s.items, today)
}

// Snapshot returns the persisted document for the current state.
func (s *Session) Snapshot() storage.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return storage.State{
		Waitlist:   slices.Clone(s.items),
		Assessment: s.assessment,
	}
}

// Restore replaces the whole state, as an import does, and saves both keys.
// Waitlist items are sanitized first. An empty lang keeps the current language;
// an unsupported one becomes the default.
func (s *Session) Restore(ctx context.Context, state storage.State, lang i18n.Language) {
	if validation.Assessment(state.Assessment) != nil {
		state.Assessment = domain.DefaultAssessment()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := waitlist.Sanitize(state.Waitlist, s.newID)
	if dropped := len(state.Waitlist) - len(items); dropped > 0 {
		s.logger.WithField("dropped", dropped).Warn("Skipped unusable waitlist items")
	}

	switch {
	case lang == "":
		lang = s.lang
	case !lang.IsSupported():
		lang = i18n.DefaultLanguage
	}

	s.assessment = state.Assessment
	s.items = items
	s.lang = lang
	s.saveState(ctx)
	if err := storage.SaveLanguage(ctx, s.store, lang); err != nil {
		s.persistFailed(storage.LanguageKey, "save", err)
	}

	s.logger.WithField("waitlist_items", len(s.items)).Info("Session state restored")
}

// saveState writes Key A. Callers hold s.mu.
func (s *Session) saveState(ctx context.Context) {
	s.updateGauges()

	state := storage.State{Waitlist: s.items, Assessment: s.assessment}
	if err := storage.SaveState(ctx, s.store, state); err != nil {
		s.persistFailed(storage.StateKey, "save", err)
	}
}

func (s *Session) updateGauges() {
	if s.metrics != nil {
		s.metrics.SetWaitlist(len(s.items), waitlist.DueCount(s.items, s.Today()))
	}
}

func (s *Session) observe(operation string, applied bool) {
	if s.metrics != nil {
		s.metrics.ObserveWaitlistMutation(operation, applied)
	}
}

func (s *Session) persistFailed(key, operation string, err error) {
	s.logger.WithFields(logrus.Fields{
		"key":       key,
		"operation": operation,
	}).WithError(err).Warn("Session storage operation failed")

	if s.metrics != nil {
		s.metrics.ObservePersistenceFailure(key, operation)
	}
}
