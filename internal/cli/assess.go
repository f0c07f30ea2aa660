package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/session"
)

type assessFlags struct {
	province, age, adl, cognitive, assessed, budget string
}

func (a *App) assessCommand() *cobra.Command {
	var f assessFlags

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Show or update the assessment answers",
		Long: `Without flags, prints the saved answers. Each flag given replaces one answer;
the others keep their saved values. The updated recommendation is printed.`,
		Example: `  careguide assess --adl NeedsDailyHelp --cognitive Mild
  careguide assess --province Other --budget Low`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				changed := anyChanged(cmd, "province", "age", "adl", "cognitive", "assessed", "budget")
				if changed {
					next := f.apply(cmd, s.Assessment())
					if err := s.SetAssessment(cmd.Context(), next); err != nil {
						return err
					}
				}

				if a.asJSON {
					return a.printJSON(cmd.OutOrStdout(), map[string]any{
						"assessment":     s.Assessment(),
						"recommendation": s.Recommendation(),
					})
				}

				printAssessment(cmd.OutOrStdout(), s.Assessment(), s.Language())
				if changed {
					fmt.Fprintln(cmd.OutOrStdout())
					printRecommendation(cmd.OutOrStdout(), s.Recommendation(), s.Language())
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&f.province, "province", "", "ON or Other")
	cmd.Flags().StringVar(&f.age, "age", "", "Under70, 70to79 or 80plus")
	cmd.Flags().StringVar(&f.adl, "adl", "", "Independent, SomeHelp or NeedsDailyHelp")
	cmd.Flags().StringVar(&f.cognitive, "cognitive", "", "None, Mild or Diagnosed")
	cmd.Flags().StringVar(&f.assessed, "assessed", "", "Yes, No or NotSure")
	cmd.Flags().StringVar(&f.budget, "budget", "", "Low, Mid, High or PreferNot")

	return cmd
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

func (f assessFlags) apply(cmd *cobra.Command, base domain.Assessment) domain.Assessment {
	if cmd.Flags().Changed("province") {
		base.Province = domain.Province(strings.TrimSpace(f.province))
	}
	if cmd.Flags().Changed("age") {
		base.Age = domain.AgeRange(strings.TrimSpace(f.age))
	}
	if cmd.Flags().Changed("adl") {
		base.ADL = domain.ADL(strings.TrimSpace(f.adl))
	}
	if cmd.Flags().Changed("cognitive") {
		base.Cognitive = domain.Cognitive(strings.TrimSpace(f.cognitive))
	}
	if cmd.Flags().Changed("assessed") {
		base.Assessed = domain.Assessed(strings.TrimSpace(f.assessed))
	}
	if cmd.Flags().Changed("budget") {
		base.Budget = domain.Budget(strings.TrimSpace(f.budget))
	}
	return base
}

func (a *App) recommendCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print the care path recommendation for the saved answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				l := s.Language()
				if lang != "" {
					parsed, err := i18n.ParseLanguage(lang)
					if err != nil {
						return err
					}
					l = parsed
				}

				rec := s.RecommendationIn(l)
				if a.asJSON {
					return a.printJSON(cmd.OutOrStdout(), rec)
				}
				printRecommendation(cmd.OutOrStdout(), rec, l)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "render in this language (en or zh) without saving it")
	return cmd
}

func (a *App) langCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [en|zh]",
		Short: "Show or set the display language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				lang := s.Language()
				if len(args) == 1 {
					set, err := s.SetLanguage(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					lang = set
				}
				fmt.Fprintln(cmd.OutOrStdout(), lang)
				return nil
			})
		},
	}
}

func printAssessment(w io.Writer, a domain.Assessment, lang i18n.Language) {
	rows := []struct {
		label i18n.Key
		value string
	}{
		{i18n.KeyProvince, string(a.Province)},
		{i18n.KeyAgeRange, string(a.Age)},
		{i18n.KeyDailyActivities, string(a.ADL)},
		{i18n.KeyCognitiveConcerns, string(a.Cognitive)},
		{i18n.KeyFormalAssessment, string(a.Assessed)},
		{i18n.KeyBudget, string(a.Budget)},
	}

	fmt.Fprintln(w, i18n.Translate(lang, i18n.KeyAssessment))
	for _, r := range rows {
		fmt.Fprintf(w, "  %s: %s\n", i18n.Translate(lang, r.label), r.value)
	}
}

func printRecommendation(w io.Writer, rec domain.Recommendation, lang i18n.Language) {
	fmt.Fprintf(w, "%s: %s\n", i18n.Translate(lang, i18n.KeyRecommendedCarePath), rec.PathLabel)

	fmt.Fprintf(w, "\n%s\n", i18n.Translate(lang, i18n.KeyWhyRecommendation))
	for _, r := range rec.Reason {
		fmt.Fprintf(w, "  - %s\n", r)
	}

	fmt.Fprintf(w, "\n%s\n", i18n.Translate(lang, i18n.KeyNext14DaysChecklist))
	for i, step := range rec.NextSteps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}

	if rec.HasCautions() {
		fmt.Fprintf(w, "\n%s\n", i18n.Translate(lang, i18n.KeyThingsToKeepInMind))
		for _, c := range rec.Cautions {
			fmt.Fprintf(w, "  ! %s\n", c)
		}
	}

	fmt.Fprintf(w, "\n%s\n", i18n.Translate(lang, i18n.KeyNotMedicalAdvice))
}
