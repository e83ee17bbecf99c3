package cmd

import (
	"fmt"

	catalogview "github.com/bnema/libcat/internal/adapters/render/catalog"
	"github.com/spf13/cobra"
)

func newBooksCmd(app *app) *cobra.Command {
	var (
		all    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List available books in the seeded catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			heading := "Available Books"
			books := app.catalog.ViewAvailableBooks()
			if all {
				heading = "All Books"
				books = app.catalog.SearchBooksByTitle("")
			}

			if asJSON {
				return writeJSON(cmd, books)
			}

			return writeView(cmd, app, catalogview.BookList{Heading: heading, Books: books}, catalogview.RenderOptions{ShowStatus: all})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include borrowed books")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write JSON output")

	return cmd
}

func newSearchCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search books by title (case-insensitive)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("search accepts at most one keyword, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			books := app.catalog.SearchBooksByTitle(keyword)
			if asJSON {
				return writeJSON(cmd, books)
			}

			return writeView(cmd, app, catalogview.BookList{
				Heading: fmt.Sprintf("Search results for %q", keyword),
				Books:   books,
			}, catalogview.RenderOptions{ShowStatus: true})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write JSON output")

	return cmd
}
