package i18n

// Message keys. The values double as the keys of the exported catalog.
const (
	// Header
	KeyAppTitle    Key = "appTitle"
	KeyAppSubtitle Key = "appSubtitle"
	KeyAssessment  Key = "assessment"
	KeyResults     Key = "results"
	KeyLanguage    Key = "language"

	// Assessment form
	KeyQuickAssessment   Key = "quickAssessment"
	KeyProvince          Key = "province"
	KeyAgeRange          Key = "ageRange"
	KeyDailyActivities   Key = "dailyActivities"
	KeyCognitiveConcerns Key = "cognitiveConcerns"
	KeyFormalAssessment  Key = "formalAssessment"
	KeyBudget            Key = "budget"
	KeyNotMedicalAdvice  Key = "notMedicalAdvice"
	KeySeeResults        Key = "seeResults"
	KeyPreview           Key = "preview"
	KeyBasedOnAnswers    Key = "basedOnAnswers"

	// Form options
	KeyOntario            Key = "ontario"
	KeyOther              Key = "other"
	KeyUnder70            Key = "under70"
	KeyAge70to79          Key = "age70to79"
	KeyAge80plus          Key = "age80plus"
	KeyIndependent        Key = "independent"
	KeyNeedsSomeHelp      Key = "needsSomeHelp"
	KeyNeedsDailyHelp     Key = "needsDailyHelp"
	KeyNone               Key = "none"
	KeyMildConcerns       Key = "mildConcerns"
	KeyDiagnosedCondition Key = "diagnosedCondition"
	KeyYes                Key = "yes"
	KeyNo                 Key = "no"
	KeyNotSure            Key = "notSure"
	KeyPreferNotToSay     Key = "preferNotToSay"
	KeyLowerBudget        Key = "lowerBudget"
	KeyMidBudget          Key = "midBudget"
	KeyHigherBudget       Key = "higherBudget"

	// Results
	KeyRecommendedCarePath Key = "recommendedCarePath"
	KeyWhyRecommendation   Key = "whyRecommendation"
	KeyThingsToKeepInMind  Key = "thingsToKeepInMind"
	KeyEditAnswers         Key = "editAnswers"
	KeyNext14DaysChecklist Key = "next14DaysChecklist"

	// Care paths
	KeyHomeCare       Key = "homeCare"
	KeyRetirementHome Key = "retirementHome"
	KeyLongTermCare   Key = "longTermCare"

	// Waitlist
	KeyWaitlistNotes       Key = "waitlistNotes"
	KeyOptional            Key = "optional"
	KeyItemsDueForFollowup Key = "itemsDueForFollowup"
	KeyFacilityName        Key = "facilityName"
	KeyRequired            Key = "required"
	KeyDateApplied         Key = "dateApplied"
	KeyContactName         Key = "contactName"
	KeyPhoneOrEmail        Key = "phoneOrEmail"
	KeyNotes               Key = "notes"
	KeyFollowUpEvery       Key = "followUpEvery"
	KeyDays                Key = "days"
	KeyAdd                 Key = "add"
	KeyNoItemsYet          Key = "noItemsYet"
	KeyAddOneToTrack       Key = "addOneToTrack"
	KeyFollowUpDue         Key = "followUpDue"
	KeyTracking            Key = "tracking"
	KeyApplied             Key = "applied"
	KeyLastFollowUp        Key = "lastFollowUp"
	KeyInterval            Key = "interval"
	KeyContact             Key = "contact"
	KeyMarkFollowedUp      Key = "markFollowedUp"
	KeyRemove              Key = "remove"

	// Footer
	KeyDataStoredLocally Key = "dataStoredLocally"

	// Recommendation reasons
	KeyProvinceNote                  Key = "provinceNote"
	KeyDailyLivingSupportSignificant Key = "dailyLivingSupportSignificant"
	KeyCognitiveConcernsIncrease     Key = "cognitiveConcernsIncrease"
	KeyFormalAssessmentHelp          Key = "formalAssessmentHelp"
	KeyWaitTimesCanBeLong            Key = "waitTimesCanBeLong"
	KeySomeHelpNeeded                Key = "someHelpNeeded"
	KeyRetirementHomeCovers          Key = "retirementHomeCovers"
	KeyAskAboutMemoryCare            Key = "askAboutMemoryCare"
	KeyNeedsModerate                 Key = "needsModerate"
	KeyStartingWithHomeCare          Key = "startingWithHomeCare"
	KeyMostlyIndependent             Key = "mostlyIndependent"
	KeyHomeCareLeastDisruptive       Key = "homeCareLeastDisruptive"
	KeyBudgetNote                    Key = "budgetNote"

	// Next steps
	KeyCreateOnePageSummary     Key = "createOnePageSummary"
	KeyCollectKeyDocuments      Key = "collectKeyDocuments"
	KeyWriteDown3Goals          Key = "writeDown3Goals"
	KeyContactOntarioHealth     Key = "contactOntarioHealth"
	KeyBookFamilyDoctor         Key = "bookFamilyDoctor"
	KeyExploreInterimOptions    Key = "exploreInterimOptions"
	KeyShortlistRetirementHomes Key = "shortlistRetirementHomes"
	KeyAskAboutCosts            Key = "askAboutCosts"
	KeyPlanTransition           Key = "planTransition"
	KeyAskAboutLTCProcess       Key = "askAboutLTCProcess"
	KeyPrepareForWaitTimes      Key = "prepareForWaitTimes"
	KeyMakeShortlistLTC         Key = "makeShortlistLTC"
)
