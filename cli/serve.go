package cli

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpLayer "membrane-calculator/http"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator API for the local widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if cmd.Flags().Changed("address") {
				cfg.Service.Address = address
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.close()

			limiter := httpLayer.NewRateLimiter(cfg.Service.RateLimit, cfg.Service.RateLimitWindow)
			defer limiter.Stop()

			router := httpLayer.NewRouter(
				root.logger,
				httpLayer.NewSavingsHandler(a.savings, a.explainer),
				httpLayer.NewReportHandler(a.savings),
				limiter,
			)

			listener, err := net.Listen("tcp", cfg.Service.Address)
			if err != nil {
				return err
			}

			return httpLayer.NewServer(router, listener, cfg.Explanation.Timeout).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (overrides MEMBRANE_ADDRESS)")
	return cmd
}
