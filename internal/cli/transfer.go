package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/senior-care-guide/internal/session"
	"github.com/senior-care-guide/internal/setup"
	"github.com/senior-care-guide/internal/storage"
)

func (a *App) exportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write answers, waitlist and language to a JSON file",
		Long: `Writes the saved state as pretty JSON. By default the file goes to the
exports folder of the data directory; --out - writes to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd.Context(), func(s *session.Session) error {
				now := a.clock()

				if out == "-" {
					return storage.ExportJSON(cmd.OutOrStdout(), s.Snapshot(), s.Language(), now)
				}

				path := out
				if path == "" {
					path = filepath.Join(a.exportDir(), fmt.Sprintf("careguide-%s.json", now.Format("20060102-150405")))
				}
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					return fmt.Errorf("failed to create export directory: %w", err)
				}

				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}

				if err := storage.ExportJSON(f, s.Snapshot(), s.Language(), now); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to write export file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d waitlist item(s) to %s\n", len(s.Waitlist()), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, or - for stdout")
	return cmd
}

func (a *App) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the saved state with an exported JSON file",
		Long: `Replaces the saved answers and waitlist with those in FILE. The file must
carry a waitlist, an assessment or both; anything unreadable is refused and
the saved state is left alone. Waitlist items without a facility name or a
valid application date are skipped.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			state, lang, err := storage.ImportJSON(f)
			if err != nil {
				return err
			}

			return a.withSession(cmd.Context(), func(s *session.Session) error {
				s.Restore(cmd.Context(), state, lang)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d waitlist item(s)\n", len(s.Waitlist()))
				return nil
			})
		},
	}
}

func (a *App) setupCommand() *cobra.Command {
	var configPath string

	resolve := func() (string, error) {
		if configPath != "" {
			return configPath, nil
		}
		return setup.ClientConfigPath()
	}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Register the MCP server with a desktop MCP client",
	}
	cmd.PersistentFlags().StringVar(&configPath, "client-config", "", "client config file (default: the desktop client's standard location)")

	var binary string
	register := &cobra.Command{
		Use:   "register",
		Short: "Add the care guide MCP server to the client config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolve()
			if err != nil {
				return err
			}
			dataDir := a.dataDir
			if dataDir == "" {
				dataDir = a.cfg.DataDir
			}
			entry, err := setup.Register(path, setup.Options{
				BinaryPath: binary,
				DataDir:    dataDir,
				Language:   string(a.cfg.Language),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s -> %s in %s\n", setup.ServerName, entry.Command, path)
			return nil
		},
	}
	register.Flags().StringVar(&binary, "binary", "", "path to the mcp-server binary (default: search PATH)")

	unregister := &cobra.Command{
		Use:   "unregister",
		Short: "Remove the care guide MCP server from the client config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolve()
			if err != nil {
				return err
			}
			removed, err := setup.Unregister(path)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Not registered")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", setup.ServerName, path)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show whether the MCP server is registered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolve()
			if err != nil {
				return err
			}
			st, err := setup.GetStatus(path)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(cmd.OutOrStdout(), st)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config:     %s\nRegistered: %t\n", st.ConfigPath, st.Registered)
			if st.Registered {
				fmt.Fprintf(cmd.OutOrStdout(), "Binary:     %s (exists: %t)\n", st.BinaryPath, st.BinaryExists)
			}
			return nil
		},
	}

	cmd.AddCommand(register, unregister, status)
	return cmd
}
