package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	httpLayer "membrane-calculator/http"
	"membrane-calculator/service"
)

func newEvaluateCommand(root *rootOptions) *cobra.Command {
	var (
		params  parameterOptions
		output  string
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute the savings, CO2 tax and break-even for a building",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, root.cfg)
			if err != nil {
				return err
			}
			defer a.close()

			preset, p, err := params.resolve(ctx, cmd.Flags(), a.savings)
			if err != nil {
				return err
			}

			result, err := a.savings.Calculate(ctx, p)
			if err != nil {
				return err
			}

			resp := httpLayer.EvaluateResponse{
				Preset:          preset,
				Parameters:      p,
				Result:          result,
				Summary:         service.Summarize(result),
				BreakEvenMarker: result.BreakEvenMarker(),
			}
			if explain {
				resp.Explanation = a.explainer.Explain(ctx, p, result)
			}

			switch output {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			case "text":
				return writeText(cmd.OutOrStdout(), resp)
			default:
				return fmt.Errorf("unsupported output %q", output)
			}
		},
	}

	params.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Add a written explanation of the result")
	return cmd
}

func writeText(out io.Writer, resp httpLayer.EvaluateResponse) error {
	fmt.Fprintf(out, "Energitype: %s\n\n", resp.Parameters.EnergyType.Label())
	for _, line := range resp.Summary.Lines() {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "År\tAkkumuleret besparelse (kr.)\t")
	for _, p := range resp.Result.SavingsSeries {
		fmt.Fprintf(tw, "%d\t%s\t\n", p.Year, service.FormatAmount(p.CumulativeSavings))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if resp.Explanation != "" {
		fmt.Fprintf(out, "\n%s\n", resp.Explanation)
	}
	return nil
}

