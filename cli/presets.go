package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"membrane-calculator/config"
	"membrane-calculator/service"
)

func newPresetsCommand(root *rootOptions) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, root.cfg)
			if err != nil {
				return err
			}
			defer a.close()

			presets, err := a.savings.Presets(ctx)
			if err != nil {
				return err
			}

			if export != "" {
				return config.SavePresets(presets, export)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAVN\tENERGITYPE\tAREAL (m²)\tBESKRIVELSE")
			for _, p := range presets {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					p.Name,
					p.Parameters.EnergyType.Label(),
					service.FormatAmount(p.Parameters.Area),
					p.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "Write the presets to a YAML file instead of listing them")
	return cmd
}
