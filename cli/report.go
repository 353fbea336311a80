package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"membrane-calculator/metrics"
	"membrane-calculator/report"
)

func newReportCommand(root *rootOptions) *cobra.Command {
	var (
		params parameterOptions
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the 30-year savings chart and results to a PDF or XLSX file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			}

			a, err := newApp(ctx, root.cfg)
			if err != nil {
				return err
			}
			defer a.close()

			_, p, err := params.resolve(ctx, cmd.Flags(), a.savings)
			if err != nil {
				return err
			}

			result, err := a.savings.Calculate(ctx, p)
			if err != nil {
				return err
			}

			data, _, err := report.Generate(format, p, result)
			if err != nil {
				return err
			}
			metrics.IncreaseReportsMetric(format)

			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			zap.S().Named("report").Infow("report written", "file", out, "format", format, "bytes", len(data))
			return nil
		},
	}

	params.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "", "Report format (pdf, xlsx); defaults to the output file extension")
	cmd.Flags().StringVar(&out, "out", "membran-besparelse.pdf", "Output file")
	return cmd
}
