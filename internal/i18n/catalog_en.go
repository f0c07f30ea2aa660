package i18n

var english = map[Key]string{
	// Header
	KeyAppTitle:    "Ontario Senior Care Guide",
	KeyAppSubtitle: "A simple, explainable decision helper for families.",
	KeyAssessment:  "Assessment",
	KeyResults:     "Results",
	KeyLanguage:    "Language",

	// Assessment form
	KeyQuickAssessment:   "Quick Care Assessment (2 minutes)",
	KeyProvince:          "Province",
	KeyAgeRange:          "Age range",
	KeyDailyActivities:   "Daily activities (bathing, dressing, eating)",
	KeyCognitiveConcerns: "Memory / cognitive concerns",
	KeyFormalAssessment:  "Has there been a formal needs assessment?",
	KeyBudget:            "Budget (optional)",
	KeyNotMedicalAdvice:  "This is not medical advice. It's a planning helper.",
	KeySeeResults:        "See results →",
	KeyPreview:           "Preview (live)",
	KeyBasedOnAnswers:    "Based on your current answers",

	// Form options
	KeyOntario:            "Ontario",
	KeyOther:              "Other",
	KeyUnder70:            "Under 70",
	KeyAge70to79:          "70–79",
	KeyAge80plus:          "80+",
	KeyIndependent:        "Independent",
	KeyNeedsSomeHelp:      "Needs some help",
	KeyNeedsDailyHelp:     "Needs daily help/supervision",
	KeyNone:               "None",
	KeyMildConcerns:       "Mild concerns",
	KeyDiagnosedCondition: "Diagnosed condition",
	KeyYes:                "Yes",
	KeyNo:                 "No",
	KeyNotSure:            "Not sure",
	KeyPreferNotToSay:     "Prefer not to say",
	KeyLowerBudget:        "Lower budget",
	KeyMidBudget:          "Mid budget",
	KeyHigherBudget:       "Higher budget",

	// Results
	KeyRecommendedCarePath: "Your recommended care path",
	KeyWhyRecommendation:   "Why this recommendation",
	KeyThingsToKeepInMind:  "Things to keep in mind",
	KeyEditAnswers:         "← Edit answers",
	KeyNext14DaysChecklist: "Next 14 days checklist",

	// Care paths
	KeyHomeCare:       "Home Care",
	KeyRetirementHome: "Retirement Home",
	KeyLongTermCare:   "Long-Term Care (LTC)",

	// Waitlist
	KeyWaitlistNotes:       "Waitlist notes (optional)",
	KeyOptional:            "optional",
	KeyItemsDueForFollowup: "item(s) may be due for follow-up today.",
	KeyFacilityName:        "Facility name",
	KeyRequired:            "required",
	KeyDateApplied:         "Date applied",
	KeyContactName:         "Contact name",
	KeyPhoneOrEmail:        "Phone or email",
	KeyNotes:               "Notes",
	KeyFollowUpEvery:       "Follow up every",
	KeyDays:                "days",
	KeyAdd:                 "Add",
	KeyNoItemsYet:          "No items yet. Add one above to track follow-ups.",
	KeyAddOneToTrack:       "Add one above to track follow-ups.",
	KeyFollowUpDue:         "Follow-up due",
	KeyTracking:            "Tracking",
	KeyApplied:             "Applied",
	KeyLastFollowUp:        "Last follow-up",
	KeyInterval:            "Interval",
	KeyContact:             "Contact",
	KeyMarkFollowedUp:      "Mark followed up",
	KeyRemove:              "Remove",

	// Footer
	KeyDataStoredLocally: "Data is stored locally in your browser (no server).",

	// Recommendation reasons
	KeyProvinceNote:                  "This MVP is Ontario-focused. If you're outside Ontario, the care categories still apply, but the system steps will differ.",
	KeyDailyLivingSupportSignificant: "Daily living support needs appear significant (mobility, personal care, or supervision).",
	KeyCognitiveConcernsIncrease:     "Cognitive concerns increase care complexity.",
	KeyFormalAssessmentHelp:          "A formal needs assessment/referral will help start LTC-related processes.",
	KeyWaitTimesCanBeLong:            "Wait times can be long; start early and consider interim support.",
	KeySomeHelpNeeded:                "Some help is needed, but not necessarily 24/7 clinical care.",
	KeyRetirementHomeCovers:          "A retirement home can cover meals, housekeeping, and support services.",
	KeyAskAboutMemoryCare:            "Ask specifically about memory care options.",
	KeyNeedsModerate:                 "Needs appear moderate and may be supported at home with services.",
	KeyStartingWithHomeCare:          "Starting with home care can reduce urgency while options are explored.",
	KeyMostlyIndependent:             "Based on your inputs, your parent appears mostly independent right now.",
	KeyHomeCareLeastDisruptive:       "Home care + community support is often the least disruptive first step.",
	KeyBudgetNote:                    "Budget note: prioritize publicly supported options and ask about subsidies, eligibility, and community programs.",

	// Next steps
	KeyCreateOnePageSummary:     "Create a one-page summary: diagnoses, medications, mobility, recent hospital visits, and your top concerns.",
	KeyCollectKeyDocuments:      "Collect key documents: health card, ID, medication list, and a brief medical history.",
	KeyWriteDown3Goals:          "Write down 3 realistic goals (e.g., safe bathing, meals, supervision, medication adherence).",
	KeyContactOntarioHealth:     "Contact Ontario Health atHome (formerly Home and Community Care) to ask about home care assessment/services.",
	KeyBookFamilyDoctor:         "Book a family doctor appointment to discuss support needs and referrals (OT/PT, home care).",
	KeyExploreInterimOptions:    "Explore interim options: personal support worker (PSW), meal delivery, adult day programs.",
	KeyShortlistRetirementHomes: "Shortlist 5–10 nearby retirement homes; schedule tours (in person or virtual).",
	KeyAskAboutCosts:            "Ask about: monthly cost breakdown, care packages, staffing, medication help, emergency response, and memory care.",
	KeyPlanTransition:           "Plan a transition: trial stays (if available), move-in checklist, and safety review of current home.",
	KeyAskAboutLTCProcess:       "Ask a hospital social worker or family doctor about starting an LTC application/assessment process in Ontario.",
	KeyPrepareForWaitTimes:      "Prepare for wait times: arrange interim support (home care, retirement home, short-stay respite).",
	KeyMakeShortlistLTC:         "Make a shortlist of LTC homes and track communications carefully (dates, contacts, follow-ups).",
}
