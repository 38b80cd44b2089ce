package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pamnotify-dev/pamnotify/config"
)

func newValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a config file and print the effective options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "configuration is valid")
			fmt.Fprintf(out, "endpoint:   %s\n", opts.Endpoint)
			fmt.Fprintf(out, "user_agent: %s\n", opts.UserAgent)
			fmt.Fprintf(out, "timeout_ms: %d\n", opts.TimeoutMs)
			fmt.Fprintf(out, "log_level:  %s\n", opts.LogLevel)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the module config file")
	return cmd
}

// loadOptions returns the defaults when no config file is given.
func loadOptions(path string) (config.Options, error) {
	if path == "" {
		opts := config.Default()
		return opts, opts.Validate()
	}
	return config.Load(path)
}
