// pamnotify is the operator command-line tool for the pamnotify hook module.
//
// It is not part of the hook path; it exists so deployments can verify a
// configuration before wiring the module into the host's stack:
//   - validating a config file and printing the effective options
//   - delivering a test notification through the real relay
//
// Usage:
//
//	pamnotify validate [--config FILE]
//	pamnotify send [--config FILE] [--message TEXT]
package main

import (
	"fmt"
	"os"

	"github.com/pamnotify-dev/pamnotify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
