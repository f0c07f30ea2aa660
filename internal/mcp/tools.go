package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/validation"
	"github.com/senior-care-guide/internal/waitlist"
)

const previewReasons = 3

// AssessmentArgs carries questionnaire answers. Empty fields keep the saved value.
type AssessmentArgs struct {
	Province  string `json:"province,omitempty" jsonschema:"ON or Other"`
	Age       string `json:"age,omitempty" jsonschema:"Under70 or 70to79 or 80plus"`
	ADL       string `json:"adl,omitempty" jsonschema:"Independent or SomeHelp or NeedsDailyHelp"`
	Cognitive string `json:"cognitive,omitempty" jsonschema:"None or Mild or Diagnosed"`
	Assessed  string `json:"assessed,omitempty" jsonschema:"Yes or No or NotSure"`
	Budget    string `json:"budget,omitempty" jsonschema:"Low or Mid or High or PreferNot"`
}

// RecommendArgs are the recommend_care_path arguments.
type RecommendArgs struct {
	Province  string `json:"province,omitempty" jsonschema:"ON or Other"`
	Age       string `json:"age,omitempty" jsonschema:"Under70 or 70to79 or 80plus"`
	ADL       string `json:"adl,omitempty" jsonschema:"Independent or SomeHelp or NeedsDailyHelp"`
	Cognitive string `json:"cognitive,omitempty" jsonschema:"None or Mild or Diagnosed"`
	Assessed  string `json:"assessed,omitempty" jsonschema:"Yes or No or NotSure"`
	Budget    string `json:"budget,omitempty" jsonschema:"Low or Mid or High or PreferNot"`
	Language  string `json:"lang,omitempty" jsonschema:"en or zh (defaults to the saved language)"`
}

func (r RecommendArgs) answers() AssessmentArgs {
	return AssessmentArgs{
		Province:  r.Province,
		Age:       r.Age,
		ADL:       r.ADL,
		Cognitive: r.Cognitive,
		Assessed:  r.Assessed,
		Budget:    r.Budget,
	}
}

// LanguageArgs are the set_language arguments.
type LanguageArgs struct {
	Language string `json:"language" jsonschema:"en or zh"`
}

// ItemArgs identifies one waitlist item.
type ItemArgs struct {
	ID string `json:"id" jsonschema:"waitlist item id"`
}

// NoArgs is the input of tools that take no arguments.
type NoArgs struct{}

type recommendationResult struct {
	domain.Recommendation
	Preview []string `json:"preview"`
}

type assessmentResult struct {
	Assessment     domain.Assessment    `json:"assessment"`
	Language       i18n.Language        `json:"language"`
	Recommendation recommendationResult `json:"recommendation"`
}

type waitlistResult struct {
	Today    string              `json:"today"`
	Items    []waitlist.ItemView `json:"items"`
	DueCount int                 `json:"dueCount"`
}

type dueResult struct {
	Today string                `json:"today"`
	Items []domain.WaitlistItem `json:"items"`
	Count int                   `json:"count"`
}

func newRecommendationResult(rec domain.Recommendation) recommendationResult {
	return recommendationResult{Recommendation: rec, Preview: rec.Preview(previewReasons)}
}

func (a AssessmentArgs) apply(base domain.Assessment) domain.Assessment {
	set := func(v string, dst *string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}

	province, age, adl := string(base.Province), string(base.Age), string(base.ADL)
	cognitive, assessed, budget := string(base.Cognitive), string(base.Assessed), string(base.Budget)

	set(a.Province, &province)
	set(a.Age, &age)
	set(a.ADL, &adl)
	set(a.Cognitive, &cognitive)
	set(a.Assessed, &assessed)
	set(a.Budget, &budget)

	return domain.Assessment{
		Province:  domain.Province(province),
		Age:       domain.AgeRange(age),
		ADL:       domain.ADL(adl),
		Cognitive: domain.Cognitive(cognitive),
		Assessed:  domain.Assessed(assessed),
		Budget:    domain.Budget(budget),
	}
}

func (s *Server) recommendCarePath(ctx context.Context, args RecommendArgs) (any, error) {
	a := args.answers().apply(s.session.Assessment())
	if err := validation.Assessment(a); err != nil {
		return nil, err
	}

	lang := s.session.Language()
	if strings.TrimSpace(args.Language) != "" {
		parsed, err := i18n.ParseLanguage(args.Language)
		if err != nil {
			return nil, err
		}
		lang = parsed
	}

	return newRecommendationResult(s.recommender.Recommend(a, lang)), nil
}

func (s *Server) getAssessment(ctx context.Context, _ NoArgs) (any, error) {
	return s.currentAssessment(), nil
}

func (s *Server) setAssessment(ctx context.Context, args AssessmentArgs) (any, error) {
	if err := s.session.SetAssessment(ctx, args.apply(s.session.Assessment())); err != nil {
		return nil, err
	}
	return s.currentAssessment(), nil
}

func (s *Server) currentAssessment() assessmentResult {
	return assessmentResult{
		Assessment:     s.session.Assessment(),
		Language:       s.session.Language(),
		Recommendation: newRecommendationResult(s.session.Recommendation()),
	}
}

func (s *Server) setLanguage(ctx context.Context, args LanguageArgs) (any, error) {
	lang, err := s.session.SetLanguage(ctx, args.Language)
	if err != nil {
		return nil, err
	}
	return map[string]i18n.Language{"language": lang}, nil
}

func (s *Server) listWaitlist(ctx context.Context, _ NoArgs) (any, error) {
	return waitlistResult{
		Today:    s.session.Today(),
		Items:    s.session.WaitlistView(),
		DueCount: s.session.DueCount(),
	}, nil
}

func (s *Server) addWaitlistItem(ctx context.Context, draft domain.WaitlistDraft) (any, error) {
	if err := validation.ValidateStruct(draft); err != nil {
		return nil, err
	}

	item, ok := s.session.AddWaitlistItem(ctx, draft)
	if !ok {
		return nil, domain.ErrBlankFacility
	}
	return item, nil
}

func (s *Server) markFollowedUp(ctx context.Context, args ItemArgs) (any, error) {
	item, ok := s.session.MarkFollowedUp(ctx, args.ID)
	if !ok {
		return nil, fmt.Errorf("waitlist item %q: %w", args.ID, domain.ErrNotFound)
	}
	return item, nil
}

func (s *Server) removeWaitlistItem(ctx context.Context, args ItemArgs) (any, error) {
	if !s.session.RemoveWaitlistItem(ctx, args.ID) {
		return nil, fmt.Errorf("waitlist item %q: %w", args.ID, domain.ErrNotFound)
	}
	return map[string]string{"removed": args.ID}, nil
}

func (s *Server) dueFollowUps(ctx context.Context, _ NoArgs) (any, error) {
	items := s.session.DueItems()
	return dueResult{Today: s.session.Today(), Items: items, Count: len(items)}, nil
}

func render(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
