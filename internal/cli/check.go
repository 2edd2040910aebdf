package cli

import (
	"fmt"

	"github.com/law-makers/pricealert/internal/utils/headers"
	urlutil "github.com/law-makers/pricealert/internal/utils/url"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url]",
		Short: "Fetch a product page and print its price element",
		Example: `  # Check the configured product
  pricealert check

  # Check another product, without dumping the page HTML
  pricealert check https://www.amazon.com/dp/B075CYMYK6 --no-body

  # Look for a different price element
  pricealert check --tag=span --class=a-price-whole

  # Add request headers
  pricealert check -H "Accept-Language: de-DE"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	registerCheckFlags(cmd)
	return cmd
}

func registerCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", nil, "Extra request header (e.g., -H \"Accept-Language: de-DE\")")
	cmd.Flags().Bool("no-body", false, "Do not print the raw HTML before the price element")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a := GetApp(cmd)
	if a == nil {
		return fmt.Errorf("application not initialized")
	}

	url := ""
	if len(args) == 1 {
		url = args[0]
		if err := urlutil.ValidateURL(url); err != nil {
			return err
		}
	}

	rawHeaders, err := cmd.Flags().GetStringArray("header")
	if err != nil {
		return err
	}
	noBody, err := cmd.Flags().GetBool("no-body")
	if err != nil {
		return err
	}

	checker := a.Checker(url, headers.ParseHeaders(rawHeaders), !noBody, cmd.OutOrStdout())
	if _, err := checker.Run(cmd.Context()); err != nil {
		return err
	}
	return nil
}
