package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all logs except errors")
	cmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringSlice("proxy", nil, "HTTP/SOCKS5 proxy, repeat or comma separate to rotate")
	cmd.PersistentFlags().String("timeout", "", "Hard timeout for the request (default: none)")
	cmd.PersistentFlags().String("user-agent", "", "Override the browser user agent")
	cmd.PersistentFlags().String("tag", "", "Tag name of the price element (default: span)")
	cmd.PersistentFlags().String("class", "", "Class token of the price element (default: a-offscreen)")
	cmd.PersistentFlags().String("config", "", "Path to a YAML configuration file (optional)")
}
