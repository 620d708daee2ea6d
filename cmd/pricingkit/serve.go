package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devlance074/pricing-ui-kit/internal/config"
	"github.com/devlance074/pricing-ui-kit/internal/server"
)

func newServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery over SSH",
		Long: `Start an SSH server where every connection gets its own gallery session.
A host key is generated on first start if none exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			runtime, err := server.New(app.Config.SSH, server.Options{
				Registry: app.Registry,
				Variant:  app.Config.Variant,
				DarkMode: app.Config.DarkMode,
				Logger:   log,
			})
			if err != nil {
				return fmt.Errorf("create ssh server: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on ssh://%s\n", runtime.Address())
			return runtime.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String("host", "", "Interface to listen on (default 0.0.0.0)")
	flags.Int("port", 0, "Port to listen on (default 23234)")
	flags.String("host-key", "", "Path to the SSH host key")
	flags.Duration("idle-timeout", 0, "Disconnect idle sessions after this long (default 10m)")
	flags.Int("max-sessions", 0, "Maximum concurrent sessions (default 32)")
	bindFlags(app.v, flags, map[string]string{
		"host":         config.KeySSHHost,
		"port":         config.KeySSHPort,
		"host-key":     config.KeySSHHostKeyPath,
		"idle-timeout": config.KeySSHIdleTimeout,
		"max-sessions": config.KeySSHMaxSessions,
	})

	return cmd
}
