package service

import (
	"github.com/sirupsen/logrus"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
)

// NeedLevel is the acuity tier the classification passes through.
type NeedLevel string

const (
	NeedHigh     NeedLevel = "high"
	NeedModerate NeedLevel = "moderate"
	NeedLow      NeedLevel = "low"
)

// Evaluation is the language-independent result of classifying an assessment:
// the chosen path plus the identities of every reason, step and caution.
type Evaluation struct {
	Path      domain.CarePath
	Need      NeedLevel
	Reasons   []i18n.Key
	NextSteps []i18n.Key
	Cautions  []i18n.Key
}

// generalSteps are always suggested, in this order.
var generalSteps = []i18n.Key{
	i18n.KeyCreateOnePageSummary,
	i18n.KeyCollectKeyDocuments,
	i18n.KeyWriteDown3Goals,
}

// ontarioSteps are the path-specific steps appended for Ontario residents.
var ontarioSteps = map[domain.CarePath][]i18n.Key{
	domain.CarePathHomeCare: {
		i18n.KeyContactOntarioHealth,
		i18n.KeyBookFamilyDoctor,
		i18n.KeyExploreInterimOptions,
	},
	domain.CarePathRetirementHome: {
		i18n.KeyShortlistRetirementHomes,
		i18n.KeyAskAboutCosts,
		i18n.KeyPlanTransition,
	},
	domain.CarePathLongTermCare: {
		i18n.KeyAskAboutLTCProcess,
		i18n.KeyPrepareForWaitTimes,
		i18n.KeyMakeShortlistLTC,
	},
}

// IsHighNeed reports whether the answers call for long-term care.
func IsHighNeed(a domain.Assessment) bool {
	return a.ADL == domain.ADLNeedsDailyHelp ||
		a.Cognitive == domain.CognitiveDiagnosed ||
		(a.Cognitive == domain.CognitiveMild && a.ADL != domain.ADLIndependent)
}

// IsModerateNeed reports whether the answers show some need. Only meaningful
// once IsHighNeed is false.
func IsModerateNeed(a domain.Assessment) bool {
	return a.ADL == domain.ADLSomeHelp ||
		a.Cognitive == domain.CognitiveMild ||
		a.Assessed == domain.AssessedNotSure
}

// Evaluate classifies an assessment. It is total and deterministic: every
// input, including values outside the known enumerations, yields a result.
func Evaluate(a domain.Assessment) Evaluation {
	ev := Evaluation{}

	if a.Province != domain.ProvinceON {
		ev.Reasons = append(ev.Reasons, i18n.KeyProvinceNote)
	}

	switch {
	case IsHighNeed(a):
		ev.Need = NeedHigh
		ev.Path = domain.CarePathLongTermCare
		ev.Reasons = append(ev.Reasons, i18n.KeyDailyLivingSupportSignificant)
		if a.Cognitive != domain.CognitiveNone {
			ev.Reasons = append(ev.Reasons, i18n.KeyCognitiveConcernsIncrease)
		}
		if a.Assessed != domain.AssessedYes {
			ev.Reasons = append(ev.Reasons, i18n.KeyFormalAssessmentHelp)
		}
		ev.Cautions = append(ev.Cautions, i18n.KeyWaitTimesCanBeLong)

	case IsModerateNeed(a):
		ev.Need = NeedModerate
		if a.ADL == domain.ADLSomeHelp && (a.Budget == domain.BudgetMid || a.Budget == domain.BudgetHigh) {
			ev.Path = domain.CarePathRetirementHome
			ev.Reasons = append(ev.Reasons, i18n.KeySomeHelpNeeded, i18n.KeyRetirementHomeCovers)
			if a.Cognitive == domain.CognitiveMild {
				ev.Cautions = append(ev.Cautions, i18n.KeyAskAboutMemoryCare)
			}
		} else {
			ev.Path = domain.CarePathHomeCare
			ev.Reasons = append(ev.Reasons, i18n.KeyNeedsModerate, i18n.KeyStartingWithHomeCare)
		}

	default:
		ev.Need = NeedLow
		ev.Path = domain.CarePathHomeCare
		ev.Reasons = append(ev.Reasons, i18n.KeyMostlyIndependent, i18n.KeyHomeCareLeastDisruptive)
	}

	if a.Budget == domain.BudgetLow {
		ev.Reasons = append(ev.Reasons, i18n.KeyBudgetNote)
	}

	ev.NextSteps = append(ev.NextSteps, generalSteps...)
	if a.Province == domain.ProvinceON {
		ev.NextSteps = append(ev.NextSteps, ontarioSteps[ev.Path]...)
	}

	return ev
}

// Localize renders an evaluation in the given language.
func Localize(ev Evaluation, lang i18n.Language) domain.Recommendation {
	rec := domain.Recommendation{
		Path:      ev.Path,
		PathLabel: i18n.CarePathLabel(lang, ev.Path),
		Tone:      ev.Path.Tone(),
		Language:  lang.String(),
		Reason:    i18n.TranslateAll(lang, ev.Reasons),
		NextSteps: i18n.TranslateAll(lang, ev.NextSteps),
	}
	if len(ev.Cautions) > 0 {
		rec.Cautions = i18n.TranslateAll(lang, ev.Cautions)
	}
	return rec
}

// Recommend classifies and localizes in one step.
func Recommend(a domain.Assessment, lang i18n.Language) domain.Recommendation {
	return Localize(Evaluate(a), lang)
}

// CarePathEngine wraps the pure rules with logging for the long-lived bindings.
type CarePathEngine struct {
	logger *logrus.Logger
}

// NewCarePathEngine creates a new care path engine
func NewCarePathEngine(logger *logrus.Logger) *CarePathEngine {
	return &CarePathEngine{logger: logger}
}

// Recommend evaluates the assessment and renders it in lang.
func (e *CarePathEngine) Recommend(a domain.Assessment, lang i18n.Language) domain.Recommendation {
	ev := Evaluate(a)

	e.logger.WithFields(logrus.Fields(a.LogFields())).WithFields(logrus.Fields{
		"care_path": ev.Path.String(),
		"need":      string(ev.Need),
		"reasons":   len(ev.Reasons),
		"cautions":  len(ev.Cautions),
	}).Debug("Evaluated care assessment")

	return Localize(ev, lang)
}
