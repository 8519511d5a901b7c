package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for mentor.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mentor",
		Short: "Identify cultivated mushrooms from a photo",
		Long: `Mushroom Mentor identifies mushrooms from a photo using an external
prediction service and pairs each result with cultivation parameters for
farmers or nutritional information for enthusiasts.

Configuration is read from config.toml in the working directory, an optional
config.<MENTOR_ENV>.toml overlay, and MENTOR_* environment variables.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewIdentifyCmd())
	cmd.AddCommand(NewSpeciesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a stderr text logger at level, lowered to debug by --verbose.
func newLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
