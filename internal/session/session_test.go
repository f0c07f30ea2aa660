package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/storage"
	"github.com/senior-care-guide/internal/waitlist"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(date string) *fakeClock {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return &fakeClock{now: t.Add(10 * time.Hour)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, days)
}

func sequentialIDs() waitlist.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type recordingMetrics struct {
	mu        sync.Mutex
	mutations []string
	size, due int
	failures  []string
}

func (m *recordingMetrics) ObserveWaitlistMutation(op string, applied bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations = append(m.mutations, fmt.Sprintf("%s:%t", op, applied))
}

func (m *recordingMetrics) SetWaitlist(size, due int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size, m.due = size, due
}

func (m *recordingMetrics) ObservePersistenceFailure(key, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, key+":"+op)
}

// brokenStore fails every call.
type brokenStore struct{}

var errBroken = errors.New("storage unavailable")

func (brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errBroken
}

func (brokenStore) Set(ctx context.Context, key string, value []byte) error {
	return errBroken
}

func (brokenStore) Delete(ctx context.Context, key string) error {
	return errBroken
}

func (brokenStore) Close() error {
	return nil
}

func quietLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func openTestSession(t *testing.T, store storage.Store, clock *fakeClock, extra ...Option) *Session {
	t.Helper()
	opts := []Option{
		WithClock(clock.Now),
		WithIDGenerator(sequentialIDs()),
		WithLogger(quietLogger()),
	}
	return Open(context.Background(), store, append(opts, extra...)...)
}

func TestOpen_Defaults(t *testing.T) {
	s := openTestSession(t, storage.NewMemoryStore(), newFakeClock("2024-01-01"))

	assert.Equal(t, domain.DefaultAssessment(), s.Assessment())
	assert.Equal(t, i18n.English, s.Language())
	assert.Empty(t, s.Waitlist())
	assert.Equal(t, 0, s.DueCount())
	assert.Equal(t, "2024-01-01", s.Today())
}

func TestOpen_DefaultLanguageOnlyWhenNothingSaved(t *testing.T) {
	store := storage.NewMemoryStore()
	s := openTestSession(t, store, newFakeClock("2024-01-01"), WithDefaultLanguage(i18n.Chinese))
	assert.Equal(t, i18n.Chinese, s.Language())

	require.NoError(t, storage.SaveLanguage(context.Background(), store, i18n.English))
	s = openTestSession(t, store, newFakeClock("2024-01-01"), WithDefaultLanguage(i18n.Chinese))
	assert.Equal(t, i18n.English, s.Language())
}

func TestOpen_MalformedStateUsesDefaults(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.StateKey, []byte("{{{")))
	require.NoError(t, store.Set(ctx, storage.LanguageKey, []byte("klingon")))

	s := openTestSession(t, store, newFakeClock("2024-01-01"))

	assert.Equal(t, domain.DefaultAssessment(), s.Assessment())
	assert.Empty(t, s.Waitlist())
	assert.Equal(t, i18n.English, s.Language())
}

func TestSession_StateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clock := newFakeClock("2024-01-01")

	s := openTestSession(t, store, clock)
	a := domain.DefaultAssessment()
	a.Budget = domain.BudgetHigh
	require.NoError(t, s.SetAssessment(ctx, a))
	_, err := s.SetLanguage(ctx, "zh")
	require.NoError(t, err)
	_, ok := s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: "Maple Grove"})
	require.True(t, ok)

	reopened := openTestSession(t, store, clock)

	assert.Equal(t, a, reopened.Assessment())
	assert.Equal(t, i18n.Chinese, reopened.Language())
	assert.Equal(t, s.Waitlist(), reopened.Waitlist())
}

func TestSession_SetAssessmentRejectsUnknownOptions(t *testing.T) {
	ctx := context.Background()
	s := openTestSession(t, storage.NewMemoryStore(), newFakeClock("2024-01-01"))

	bad := domain.DefaultAssessment()
	bad.ADL = "Sometimes"

	err := s.SetAssessment(ctx, bad)

	assert.True(t, errors.Is(err, domain.ErrInvalidAssessment))
	assert.Equal(t, domain.DefaultAssessment(), s.Assessment())
}

func TestSession_SetLanguage(t *testing.T) {
	ctx := context.Background()
	s := openTestSession(t, storage.NewMemoryStore(), newFakeClock("2024-01-01"))

	lang, err := s.SetLanguage(ctx, " ZH ")
	require.NoError(t, err)
	assert.Equal(t, i18n.Chinese, lang)

	lang, err = s.SetLanguage(ctx, "fr")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLanguage))
	assert.Equal(t, i18n.Chinese, lang)
	assert.Equal(t, i18n.Chinese, s.Language())
}

func TestSession_RecommendationFollowsLanguage(t *testing.T) {
	ctx := context.Background()
	s := openTestSession(t, storage.NewMemoryStore(), newFakeClock("2024-01-01"))

	en := s.Recommendation()
	_, err := s.SetLanguage(ctx, "zh")
	require.NoError(t, err)
	zh := s.Recommendation()

	assert.Equal(t, en.Path, zh.Path)
	assert.Equal(t, "en", en.Language)
	assert.Equal(t, "zh", zh.Language)
	assert.Equal(t, en, s.RecommendationIn(i18n.English))
}

func TestSession_WaitlistLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock("2024-01-01")
	metrics := &recordingMetrics{}
	s := openTestSession(t, storage.NewMemoryStore(), clock, WithMetrics(metrics))

	first, ok := s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: "Maple Grove"})
	require.True(t, ok)
	second, ok := s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: "Sunrise", FollowUpEveryDays: 30})
	require.True(t, ok)

	_, ok = s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: "  "})
	assert.False(t, ok)

	items := s.Waitlist()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, "2024-01-01", first.DateApplied)

	clock.Advance(14)
	assert.Equal(t, 1, s.DueCount())
	assert.Equal(t, []domain.WaitlistItem{first}, s.DueItems())

	updated, ok := s.MarkFollowedUp(ctx, first.ID)
	require.True(t, ok)
	assert.Equal(t, "2024-01-15", updated.LastFollowUp)
	assert.Equal(t, 0, s.DueCount())

	_, ok = s.MarkFollowedUp(ctx, "nope")
	assert.False(t, ok)

	assert.True(t, s.RemoveWaitlistItem(ctx, second.ID))
	assert.False(t, s.RemoveWaitlistItem(ctx, second.ID))
	assert.Len(t, s.Waitlist(), 1)

	assert.Equal(t, []string{
		"add:true", "add:true", "add:false",
		"follow_up:true", "follow_up:false",
		"remove:true", "remove:false",
	}, metrics.mutations)
	assert.Equal(t, 1, metrics.size)
	assert.Equal(t, 0, metrics.due)
}

func TestSession_WaitlistIsACopy(t *testing.T) {
	ctx := context.Background()
	s := openTestSession(t, storage.NewMemoryStore(), newFakeClock("2024-01-01"))
	_, ok := s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: "Maple Grove"})
	require.True(t, ok)

	items := s.Waitlist()
	items[0].Facility = "changed"

	assert.Equal(t, "Maple Grove", s.Waitlist()[0].Facility)
}

func TestSession_WaitlistView(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock("2024-01-01")
	s := openTestSession(t, storage.NewMemoryStore(), clock)
	_, ok := s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: "Maple Grove", FollowUpEveryDays: 3})
	require.True(t, ok)

	clock.Advance(3)
	view := s.WaitlistView()

	require.Len(t, view, 1)
	assert.Equal(t, waitlist.StatusDue, view[0].Status)
	assert.Equal(t, 3, *view[0].DaysSinceContact)
}

func TestSession_PersistenceFailuresDoNotBlockChanges(t *testing.T) {
	ctx := context.Background()
	logger, hook := test.NewNullLogger()
	metrics := &recordingMetrics{}

	s := Open(ctx, brokenStore{},
		WithClock(newFakeClock("2024-01-01").Now),
		WithLogger(logger),
		WithMetrics(metrics),
	)

	assert.Equal(t, domain.DefaultAssessment(), s.Assessment())

	item, ok := s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: "Maple Grove"})
	require.True(t, ok)
	assert.NotEmpty(t, item.ID)
	assert.Len(t, s.Waitlist(), 1)

	_, err := s.SetLanguage(ctx, "zh")
	require.NoError(t, err)
	assert.Equal(t, i18n.Chinese, s.Language())

	assert.Equal(t, []string{"scg_v1:load", "scg_lang:load", "scg_v1:save", "scg_lang:save"}, metrics.failures)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestSession_SnapshotAndRestore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clock := newFakeClock("2024-01-01")
	s := openTestSession(t, store, clock)

	a := domain.DefaultAssessment()
	a.Province = domain.ProvinceOther
	state := storage.State{
		Assessment: a,
		Waitlist: []domain.WaitlistItem{
			{ID: "x", Facility: "Imported", DateApplied: "2023-12-01", FollowUpEveryDays: 14},
		},
	}

	s.Restore(ctx, state, i18n.Chinese)

	assert.Equal(t, state, s.Snapshot())
	assert.Equal(t, i18n.Chinese, s.Language())
	assert.Equal(t, 1, s.DueCount())

	reopened := openTestSession(t, store, clock)
	assert.Equal(t, state, reopened.Snapshot())
	assert.Equal(t, i18n.Chinese, reopened.Language())
}

func TestSession_RestoreSanitizes(t *testing.T) {
	s := openTestSession(t, storage.NewMemoryStore(), newFakeClock("2024-01-01"))

	s.Restore(context.Background(), storage.State{Assessment: domain.Assessment{Province: "Mars"}}, "xx")

	snap := s.Snapshot()
	assert.Equal(t, domain.DefaultAssessment(), snap.Assessment)
	assert.NotNil(t, snap.Waitlist)
	assert.Equal(t, i18n.English, s.Language())
}

func TestSession_RestoreCleansItemsAndKeepsLanguage(t *testing.T) {
	ctx := context.Background()
	s := openTestSession(t, storage.NewMemoryStore(), newFakeClock("2024-01-01"))
	_, err := s.SetLanguage(ctx, "zh")
	require.NoError(t, err)

	s.Restore(ctx, storage.State{
		Assessment: domain.DefaultAssessment(),
		Waitlist: []domain.WaitlistItem{
			{ID: "dup", Facility: " Oak ", DateApplied: "2023-12-01", FollowUpEveryDays: 1},
			{ID: "dup", Facility: "Pine", DateApplied: "2023-12-02", FollowUpEveryDays: 14},
			{ID: "blank", Facility: "  ", DateApplied: "2023-12-03", FollowUpEveryDays: 14},
		},
	}, "")

	items := s.Waitlist()
	require.Len(t, items, 2)
	assert.Equal(t, "Oak", items[0].Facility)
	assert.Equal(t, waitlist.MinFollowUpDays, items[0].FollowUpEveryDays)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, i18n.Chinese, s.Language())
}

func TestSession_ConcurrentUse(t *testing.T) {
	ctx := context.Background()
	s := Open(ctx, storage.NewMemoryStore(), WithLogger(quietLogger()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item, ok := s.AddWaitlistItem(ctx, domain.WaitlistDraft{Facility: fmt.Sprintf("F%d", i)})
			if ok {
				s.MarkFollowedUp(ctx, item.ID)
			}
			s.Recommendation()
			s.DueCount()
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Waitlist(), 20)
}
