package cmd

import "github.com/spf13/cobra"

// skipWiringAnnotation marks commands that run without config, logger or catalog.
const skipWiringAnnotation = "libcat/skip-wiring"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "libcat",
		Short:         "libcat: a small in-memory library catalog",
		Long:          "libcat keeps members and books in memory for one session. Run it without a subcommand for the interactive menu, or use the reporting subcommands against the seeded catalog.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipWiringAnnotation] != "" {
				return nil
			}

			wired, err := wireApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, app)
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newMenuCmd(app),
		newBooksCmd(app),
		newSearchCmd(app),
		newStatsCmd(app),
		newMembersCmd(app),
	)

	return rootCmd
}
