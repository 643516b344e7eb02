package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/activity-roster/internal/platform/config"
	"github.com/jsamuelsen11/activity-roster/internal/platform/httpclient"
	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
	"github.com/jsamuelsen11/activity-roster/internal/ports"
)

// cli holds the global flags and the roster client built from them.
type cli struct {
	baseURL  string
	timeout  time.Duration
	logLevel string

	out    io.Writer
	errOut io.Writer
	svc    ports.RosterService
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Inspect and change activity rosters on a roster server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// One correlation ID ties together every request of an invocation.
			cmd.SetContext(httpclient.WithCorrelationID(cmd.Context(), uuid.NewString()))
			return c.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.baseURL, "base-url", "http://localhost:8080", "roster server base URL")
	flags.DurationVar(&c.timeout, "timeout", 10*time.Second, "per-request timeout")
	flags.StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.SetOut(out)
	root.SetErr(errOut)
	root.AddCommand(
		newListCmd(c),
		newShowCmd(c),
		newSignupCmd(c),
		newUnregisterCmd(c),
	)
	return root
}

// connect builds the roster client from the built-in client defaults
// overridden by the global flags.
func (c *cli) connect() error {
	cfg, err := config.Defaults()
	if err != nil {
		return fmt.Errorf("loading defaults: %w", err)
	}
	cfg.Client.BaseURL = c.baseURL
	cfg.Client.Timeout = c.timeout
	cfg.Log.Level = c.logLevel
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := logging.New(cfg.Log.Level, logging.FormatText, c.errOut)
	client := httpclient.New(&cfg.Client, "roster-api", nil, logger,
		httpclient.WithUserAgent("rosterctl"),
	)
	c.svc = acl.NewRosterClient(client, logger)
	return nil
}
