// Package cli implements the operator commands for the pamnotify tool.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/pamnotify-dev/pamnotify/application/hook"
)

var rootCmd = &cobra.Command{
	Use:     "pamnotify",
	Short:   "Operator tool for the pamnotify login-notification hook module",
	Version: hook.Version,
	Long: `Operator tool for the pamnotify login-notification hook module.

pamnotify relays a one-line notification for every opened login session to a
webhook endpoint. Use this tool to validate a deployment's configuration and
to send a test notification before enabling the module in the host's stack.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newSendCmd())
}
