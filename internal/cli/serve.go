package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/candorlabs/candor/internal/pipeline"
	"github.com/candorlabs/candor/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	Long: `Serve exposes the analyzer and cookie auditor over HTTP:

  POST /api/v1/analyze  {"policy_text": "..."}
  POST /api/v1/audit    {"policy_text": "...", "observed_cookies": "...", "consent_state": "before_consent"}
  GET  /healthz

Example:
  candor serve
  candor serve --addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	srv := server.New(p)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(serveAddr)
	}()

	fmt.Fprintf(os.Stderr, "Listening on %s\n", serveAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		fmt.Fprintf(os.Stderr, "Received %s, shutting down\n", sig)
		return srv.Shutdown()
	}
}
