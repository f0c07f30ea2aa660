package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/i18n"
	"github.com/senior-care-guide/internal/session"
	"github.com/senior-care-guide/internal/waitlist"
)

func (a *App) waitlistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "waitlist",
		Aliases: []string{"wl"},
		Short:   "Track facility waitlist applications and follow-ups",
	}

	cmd.AddCommand(
		a.waitlistAddCommand(),
		a.waitlistListCommand(),
		a.waitlistFollowUpCommand(),
		a.waitlistRemoveCommand(),
		a.waitlistDueCommand(),
	)
	return cmd
}

func (a *App) waitlistAddCommand() *cobra.Command {
	var draft domain.WaitlistDraft

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Track a new application",
		Example: `  careguide waitlist add --facility "Maple Grove LTC" --date 2024-02-01 --every 7`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if draft.DateApplied != "" {
				if _, err := domain.ParseDate(draft.DateApplied); err != nil {
					return err
				}
			}

			return a.withSession(cmd.Context(), func(s *session.Session) error {
				item, ok := s.AddWaitlistItem(cmd.Context(), draft)
				if !ok {
					return domain.ErrBlankFacility
				}
				if a.asJSON {
					return a.printJSON(cmd.OutOrStdout(), item)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s), follow up every %d days\n", item.Facility, item.ID, item.FollowUpEveryDays)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&draft.Facility, "facility", "", "facility name (required)")
	cmd.Flags().StringVar(&draft.DateApplied, "date", "", "date applied, yyyy-mm-dd (default today)")
	cmd.Flags().StringVar(&draft.ContactName, "contact", "", "contact name")
	cmd.Flags().StringVar(&draft.ContactPhoneOrEmail, "reach", "", "contact phone or email")
	cmd.Flags().StringVar(&draft.Notes, "notes", "", "notes")
	cmd.Flags().IntVar(&draft.FollowUpEveryDays, "every", waitlist.DefaultFollowUpDays,
		fmt.Sprintf("follow-up interval in days; values outside %d-%d are clamped", waitlist.MinFollowUpDays, waitlist.MaxFollowUpDays))
	_ = cmd.MarkFlagRequired("facility")

	return cmd
}

func (a *App) waitlistListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List applications, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				views := s.WaitlistView()
				if a.asJSON {
					return a.printJSON(cmd.OutOrStdout(), views)
				}

				lang := s.Language()
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), i18n.Translate(lang, i18n.KeyNoItemsYet))
					return nil
				}
				printItems(cmd.OutOrStdout(), views, lang)
				if due := s.DueCount(); due > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "\n%d %s\n", due, i18n.Translate(lang, i18n.KeyItemsDueForFollowup))
				}
				return nil
			})
		},
	}
}

func (a *App) waitlistFollowUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "followup ID",
		Aliases: []string{"follow-up"},
		Short:   "Record a follow-up made today",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				item, ok := s.MarkFollowedUp(cmd.Context(), args[0])
				if !ok {
					return fmt.Errorf("waitlist item %q: %w", args[0], domain.ErrNotFound)
				}
				if a.asJSON {
					return a.printJSON(cmd.OutOrStdout(), item)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Followed up with %s on %s\n", item.Facility, item.LastFollowUp)
				return nil
			})
		},
	}
}

func (a *App) waitlistRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Stop tracking an application",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				if !s.RemoveWaitlistItem(cmd.Context(), args[0]) {
					return fmt.Errorf("waitlist item %q: %w", args[0], domain.ErrNotFound)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}

func (a *App) waitlistDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List applications due for a follow-up today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				due := s.DueItems()
				if a.asJSON {
					return a.printJSON(cmd.OutOrStdout(), due)
				}

				lang := s.Language()
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", len(due), i18n.Translate(lang, i18n.KeyItemsDueForFollowup))
				if len(due) > 0 {
					printItems(cmd.OutOrStdout(), waitlist.View(due, s.Today()), lang)
				}
				return nil
			})
		},
	}
}

func printItems(w io.Writer, views []waitlist.ItemView, lang i18n.Language) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\t%s\t%s\t%s\t%s\n",
		i18n.Translate(lang, i18n.KeyFacilityName),
		i18n.Translate(lang, i18n.KeyApplied),
		i18n.Translate(lang, i18n.KeyLastFollowUp),
		i18n.Translate(lang, i18n.KeyInterval),
		i18n.Translate(lang, i18n.KeyContact),
	)

	for _, v := range views {
		status := i18n.Translate(lang, i18n.KeyTracking)
		if v.Status == waitlist.StatusDue {
			status = i18n.Translate(lang, i18n.KeyFollowUpDue)
		}
		last := v.LastFollowUp
		if last == "" {
			last = "-"
		}
		contact := v.ContactName
		if v.ContactPhoneOrEmail != "" {
			contact = fmt.Sprintf("%s %s", contact, v.ContactPhoneOrEmail)
		}

		fmt.Fprintf(tw, "%s\t%s [%s]\t%s\t%s\t%d %s\t%s\n",
			v.ID, v.Facility, status, v.DateApplied, last,
			v.FollowUpEveryDays, i18n.Translate(lang, i18n.KeyDays), contact)
	}
	tw.Flush()
}
