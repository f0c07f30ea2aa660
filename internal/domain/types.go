// Package domain contains the core entities of the senior care guide: the six-question
// care assessment, the care path recommendation derived from it, and the waitlist
// records a family keeps while waiting on facilities.
//
// Every enumeration is a closed set of string values that match the persisted
// JSON representation exactly, so stored state written by any client round-trips
// without translation.
package domain

// Province is where the person needing care lives. Only Ontario has
// path-specific guidance; everything else is "Other".
type Province string

const (
	ProvinceON    Province = "ON"
	ProvinceOther Province = "Other"
)

// IsValid reports whether the province is one of the known values.
func (p Province) IsValid() bool {
	switch p {
	case ProvinceON, ProvinceOther:
		return true
	default:
		return false
	}
}

// AgeRange is the age bracket of the person needing care.
type AgeRange string

const (
	AgeUnder70 AgeRange = "Under70"
	Age70to79  AgeRange = "70to79"
	Age80Plus  AgeRange = "80plus"
)

// IsValid reports whether the age range is one of the known values.
func (a AgeRange) IsValid() bool {
	switch a {
	case AgeUnder70, Age70to79, Age80Plus:
		return true
	default:
		return false
	}
}

// ADL is the capability level for activities of daily living
// (bathing, dressing, eating).
type ADL string

const (
	ADLIndependent    ADL = "Independent"
	ADLSomeHelp       ADL = "SomeHelp"
	ADLNeedsDailyHelp ADL = "NeedsDailyHelp"
)

// IsValid reports whether the ADL level is one of the known values.
func (a ADL) IsValid() bool {
	switch a {
	case ADLIndependent, ADLSomeHelp, ADLNeedsDailyHelp:
		return true
	default:
		return false
	}
}

// Cognitive is the memory / cognitive status.
type Cognitive string

const (
	CognitiveNone      Cognitive = "None"
	CognitiveMild      Cognitive = "Mild"
	CognitiveDiagnosed Cognitive = "Diagnosed"
)

// IsValid reports whether the cognitive status is one of the known values.
func (c Cognitive) IsValid() bool {
	switch c {
	case CognitiveNone, CognitiveMild, CognitiveDiagnosed:
		return true
	default:
		return false
	}
}

// Assessed records whether a formal needs assessment has already happened.
type Assessed string

const (
	AssessedYes     Assessed = "Yes"
	AssessedNo      Assessed = "No"
	AssessedNotSure Assessed = "NotSure"
)

// IsValid reports whether the value is one of the known values.
func (a Assessed) IsValid() bool {
	switch a {
	case AssessedYes, AssessedNo, AssessedNotSure:
		return true
	default:
		return false
	}
}

// Budget is the self-reported budget tier.
type Budget string

const (
	BudgetLow       Budget = "Low"
	BudgetMid       Budget = "Mid"
	BudgetHigh      Budget = "High"
	BudgetPreferNot Budget = "PreferNot"
)

// IsValid reports whether the budget tier is one of the known values.
func (b Budget) IsValid() bool {
	switch b {
	case BudgetLow, BudgetMid, BudgetHigh, BudgetPreferNot:
		return true
	default:
		return false
	}
}

// Assessment is one complete set of questionnaire answers. It is a value:
// callers replace it wholesale whenever an answer changes.
type Assessment struct {
	Province  Province  `json:"province" validate:"oneof=ON Other" binding:"oneof=ON Other"`
	Age       AgeRange  `json:"age" validate:"oneof=Under70 70to79 80plus" binding:"oneof=Under70 70to79 80plus"`
	ADL       ADL       `json:"adl" validate:"oneof=Independent SomeHelp NeedsDailyHelp" binding:"oneof=Independent SomeHelp NeedsDailyHelp"`
	Cognitive Cognitive `json:"cognitive" validate:"oneof=None Mild Diagnosed" binding:"oneof=None Mild Diagnosed"`
	Assessed  Assessed  `json:"assessed" validate:"oneof=Yes No NotSure" binding:"oneof=Yes No NotSure"`
	Budget    Budget    `json:"budget" validate:"oneof=Low Mid High PreferNot" binding:"oneof=Low Mid High PreferNot"`
}

// DefaultAssessment is the answer set shown before the user has changed anything.
func DefaultAssessment() Assessment {
	return Assessment{
		Province:  ProvinceON,
		Age:       Age70to79,
		ADL:       ADLSomeHelp,
		Cognitive: CognitiveNone,
		Assessed:  AssessedNotSure,
		Budget:    BudgetPreferNot,
	}
}

// IsValid reports whether every field holds a known value.
func (a Assessment) IsValid() bool {
	return a.Province.IsValid() &&
		a.Age.IsValid() &&
		a.ADL.IsValid() &&
		a.Cognitive.IsValid() &&
		a.Assessed.IsValid() &&
		a.Budget.IsValid()
}

// LogFields returns structured logging fields for the assessment.
func (a Assessment) LogFields() map[string]any {
	return map[string]any{
		"province":  string(a.Province),
		"age":       string(a.Age),
		"adl":       string(a.ADL),
		"cognitive": string(a.Cognitive),
		"assessed":  string(a.Assessed),
		"budget":    string(a.Budget),
	}
}

// CarePath is the recommended care pathway. The values are the canonical
// English tags; localized labels come from the message catalog.
type CarePath string

const (
	CarePathHomeCare       CarePath = "Home Care"
	CarePathRetirementHome CarePath = "Retirement Home"
	CarePathLongTermCare   CarePath = "Long-Term Care (LTC)"
)

// IsValid reports whether the path is one of the three care paths.
func (p CarePath) IsValid() bool {
	switch p {
	case CarePathHomeCare, CarePathRetirementHome, CarePathLongTermCare:
		return true
	default:
		return false
	}
}

// String returns the canonical tag.
func (p CarePath) String() string {
	return string(p)
}

// Tone is the badge colour a UI should use for the path: higher acuity is warmer.
func (p CarePath) Tone() string {
	switch p {
	case CarePathLongTermCare:
		return "red"
	case CarePathRetirementHome:
		return "amber"
	default:
		return "green"
	}
}

// Recommendation is the advisory outcome for one assessment. Reason, NextSteps
// and Cautions are ordered, already-localized strings; Cautions is omitted when
// there are none.
type Recommendation struct {
	Path      CarePath `json:"path"`
	PathLabel string   `json:"pathLabel"`
	Tone      string   `json:"tone"`
	Language  string   `json:"language"`
	Reason    []string `json:"reason"`
	NextSteps []string `json:"nextSteps"`
	Cautions  []string `json:"cautions,omitempty"`
}

// HasCautions reports whether any caution applies.
func (r Recommendation) HasCautions() bool {
	return len(r.Cautions) > 0
}

// Preview returns at most n leading reasons, the short form shown while the
// questionnaire is still being edited.
func (r Recommendation) Preview(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(r.Reason) {
		n = len(r.Reason)
	}
	out := make([]string, n)
	copy(out, r.Reason[:n])
	return out
}
