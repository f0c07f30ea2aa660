package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/validation"
)

// ExportVersion identifies the export document layout.
const ExportVersion = "1.0"

// Export is the portable backup format. It carries the state document's
// fields at the top level, so a raw state document can be imported too.
type Export struct {
	Version    string        `json:"version"`
	ExportedAt time.Time     `json:"exported_at"`
	Language   i18n.Language `json:"language,omitempty"`
	Count      int           `json:"count"`
	State
}

// ExportJSON writes state and language as indented JSON.
func ExportJSON(w io.Writer, state State, lang i18n.Language, now time.Time) error {
	if state.Waitlist == nil {
		state.Waitlist = DefaultState().Waitlist
	}

	export := &Export{
		Version:    ExportVersion,
		ExportedAt: now.UTC(),
		Language:   lang,
		Count:      len(state.Waitlist),
		State:      state,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// ImportJSON reads an export (or a bare state document) strictly. The input
// must be a JSON object carrying a waitlist, an assessment or both, and every
// field that is present must be usable; a half that is absent takes its
// default. The language is empty when the document has none.
func ImportJSON(r io.Reader) (State, i18n.Language, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return State{}, "", fmt.Errorf("failed to read import: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, "", fmt.Errorf("failed to decode JSON: %w", err)
	}
	if doc == nil {
		return State{}, "", fmt.Errorf("%w: expected a JSON object", domain.ErrInvalidImport)
	}

	rawWaitlist, hasWaitlist := doc["waitlist"]
	hasWaitlist = hasWaitlist && present(rawWaitlist)
	rawAssessment, hasAssessment := doc["assessment"]
	hasAssessment = hasAssessment && present(rawAssessment)
	if !hasWaitlist && !hasAssessment {
		return State{}, "", fmt.Errorf("%w: no waitlist or assessment", domain.ErrInvalidImport)
	}

	state := DefaultState()

	if hasWaitlist {
		var items []domain.WaitlistItem
		if err := json.Unmarshal(rawWaitlist, &items); err != nil {
			return State{}, "", fmt.Errorf("%w: waitlist: %v", domain.ErrInvalidImport, err)
		}
		if items != nil {
			state.Waitlist = items
		}
	}

	if hasAssessment {
		var a domain.Assessment
		if err := json.Unmarshal(rawAssessment, &a); err != nil {
			return State{}, "", fmt.Errorf("%w: assessment: %v", domain.ErrInvalidImport, err)
		}
		if err := validation.Assessment(a); err != nil {
			return State{}, "", fmt.Errorf("%w: assessment: %v", domain.ErrInvalidImport, err)
		}
		state.Assessment = a
	}

	var lang i18n.Language
	if raw, ok := doc["language"]; ok && present(raw) {
		var code string
		if err := json.Unmarshal(raw, &code); err != nil {
			return State{}, "", fmt.Errorf("%w: language: %v", domain.ErrInvalidImport, err)
		}
		if lang, err = i18n.ParseLanguage(code); err != nil {
			return State{}, "", fmt.Errorf("%w: %w", domain.ErrInvalidImport, err)
		}
	}

	return state, lang, nil
}
