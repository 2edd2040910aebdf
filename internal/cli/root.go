// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/pricealert/internal/app"
	"github.com/law-makers/pricealert/internal/config"
	"github.com/law-makers/pricealert/internal/ui"
)

// NewRootCommand builds the command tree. Running the root command with no
// subcommand performs a price check against the configured URL.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pricealert [url]",
		Short: "Fetch an Amazon product page and print its price element",
		Long: `pricealert fetches a product page with a desktop browser User-Agent,
checks the status code and prints the first price element found in the HTML.

A non-200 status prints "Error: <code>". A network failure prints nothing to
stdout and exits with status 1.`,
		Version:       "0.1.0",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheck,
	}

	config.RegisterFlags(rootCmd)
	registerCheckFlags(rootCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Initialize the application lazily so -h/--version never touch config
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetApp(cmd) != nil {
			return nil
		}

		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		SetApp(cmd, a)
		// Run closes the app through the root command after execution
		if root := cmd.Root(); root != cmd {
			SetApp(root, a)
		}
		return nil
	}

	rootCmd.AddCommand(newCheckCommand())
	return rootCmd
}

// Run executes root and then closes the application, also when the command
// failed. cobra skips post-run hooks after a RunE error.
func Run(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if a := GetApp(root); a != nil {
		if cerr := a.Close(context.Background()); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Execute runs the CLI and exits non-zero on failure.
// This is called by main.main().
func Execute(ctx context.Context) {
	if err := Run(ctx, NewRootCommand()); err != nil {
		log.Debug().Err(err).Msg("Command failed")
		fmt.Fprintln(os.Stderr, ui.Error("pricealert: "+err.Error()))
		os.Exit(1)
	}
}
