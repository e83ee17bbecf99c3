package cmd

import (
	"encoding/json"
	"fmt"

	catalogview "github.com/bnema/libcat/internal/adapters/render/catalog"
	"github.com/spf13/cobra"
)

func writeView(cmd *cobra.Command, app *app, view catalogview.View, opts catalogview.RenderOptions) error {
	rendered, err := app.renderer(view, opts)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
