package cmd

import (
	catalogview "github.com/bnema/libcat/internal/adapters/render/catalog"
	"github.com/spf13/cobra"
)

func newMembersCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "members",
		Short: "List registered members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			members := app.catalog.ViewAllMembers()
			if asJSON {
				return writeJSON(cmd, members)
			}

			return writeView(cmd, app, catalogview.MemberList{Heading: "Members", Members: members}, catalogview.RenderOptions{})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write JSON output")

	return cmd
}
