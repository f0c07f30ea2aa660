package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/validation"
)

// State is the document stored under StateKey.
type State struct {
	Waitlist   []domain.WaitlistItem `json:"waitlist"`
	Assessment domain.Assessment     `json:"assessment"`
}

// DefaultState is what a fresh session starts with.
func DefaultState() State {
	return State{
		Waitlist:   []domain.WaitlistItem{},
		Assessment: domain.DefaultAssessment(),
	}
}

type rawState struct {
	Waitlist   json.RawMessage `json:"waitlist"`
	Assessment json.RawMessage `json:"assessment"`
}

// EncodeState serializes the state document.
func EncodeState(s State) ([]byte, error) {
	if s.Waitlist == nil {
		s.Waitlist = []domain.WaitlistItem{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// DecodeState reads a stored document. Each half is taken independently:
// a readable waitlist is kept even when the assessment is unusable, and the
// other way round. Anything unreadable falls back to the default.
func DecodeState(data []byte) State {
	state := DefaultState()

	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return state
	}

	if present(raw.Waitlist) {
		var items []domain.WaitlistItem
		if err := json.Unmarshal(raw.Waitlist, &items); err == nil && items != nil {
			state.Waitlist = items
		}
	}

	if present(raw.Assessment) {
		var a domain.Assessment
		if err := json.Unmarshal(raw.Assessment, &a); err == nil && validation.Assessment(a) == nil {
			state.Assessment = a
		}
	}

	return state
}

func present(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null"
}

// LoadState reads the state document. A missing key yields the default and
// a nil error; a backend failure yields the default and the error so the
// caller can log it.
func LoadState(ctx context.Context, store Store) (State, error) {
	data, err := store.Get(ctx, StateKey)
	if errors.Is(err, domain.ErrNotFound) {
		return DefaultState(), nil
	}
	if err != nil {
		return DefaultState(), err
	}
	return DecodeState(data), nil
}

// SaveState writes the state document.
func SaveState(ctx context.Context, store Store, s State) error {
	data, err := EncodeState(s)
	if err != nil {
		return err
	}
	return store.Set(ctx, StateKey, data)
}

// LoadLanguage reads the language preference. Missing or unsupported values
// yield the default language.
func LoadLanguage(ctx context.Context, store Store) (i18n.Language, error) {
	return LoadLanguageOr(ctx, store, i18n.DefaultLanguage)
}

// LoadLanguageOr is LoadLanguage with a caller-chosen fallback, used when a
// deployment starts in a language other than English.
func LoadLanguageOr(ctx context.Context, store Store, fallback i18n.Language) (i18n.Language, error) {
	if !fallback.IsSupported() {
		fallback = i18n.DefaultLanguage
	}

	data, err := store.Get(ctx, LanguageKey)
	if errors.Is(err, domain.ErrNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}

	lang, err := i18n.ParseLanguage(string(data))
	if err != nil {
		return fallback, nil
	}
	return lang, nil
}

// SaveLanguage writes the two-letter language code.
func SaveLanguage(ctx context.Context, store Store, lang i18n.Language) error {
	return store.Set(ctx, LanguageKey, []byte(lang))
}
