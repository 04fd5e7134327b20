package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixgeelhaar/launchkit/adapter/api"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveDefaultAddr is the configured listen address, used when --addr is
// not given.
var serveDefaultAddr string

// serveDeps holds the handlers the serve command exposes over HTTP.
var serveDeps struct {
	waitlists     *api.WaitlistHandler
	subscriptions *api.SubscriptionHandler
}

// SetServeHandlers configures the HTTP handlers used by the serve command.
func SetServeHandlers(waitlists *api.WaitlistHandler, subscriptions *api.SubscriptionHandler) {
	serveDeps.waitlists = waitlists
	serveDeps.subscriptions = subscriptions
}

// SetServeAddr sets the listen address the serve command falls back to
// when the --addr flag is not set.
func SetServeAddr(addr string) {
	serveDefaultAddr = addr
}

// resolveServeAddr picks the listen address: the --addr flag wins, then
// the configured address, then the built-in default.
func resolveServeAddr() string {
	if serveAddr != "" {
		return serveAddr
	}
	if serveDefaultAddr != "" {
		return serveDefaultAddr
	}
	return api.DefaultServerConfig().Addr
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the signup API server",
	Long: `Run the HTTP server that exposes public waitlist signup endpoints
and the read-only subscription API.

Examples:
  launchkit serve
  launchkit serve --addr 0.0.0.0:9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveDeps.waitlists == nil || serveDeps.subscriptions == nil {
			return fmt.Errorf("application not initialized")
		}

		cfg := api.DefaultServerConfig()
		cfg.Addr = resolveServeAddr()

		server := api.NewServer(cfg, serveDeps.waitlists, serveDeps.subscriptions, logger)

		errCh := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sigCh:
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}
