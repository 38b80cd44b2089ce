package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pamnotify-dev/pamnotify/application/relay"
	"github.com/pamnotify-dev/pamnotify/domain/entities"
	pamerrors "github.com/pamnotify-dev/pamnotify/domain/errors"
	"github.com/pamnotify-dev/pamnotify/log"
)

// terminalConversation satisfies the relay's conversation dependency by
// printing diagnostics to the operator's terminal.
type terminalConversation struct {
	out io.Writer
}

func (c terminalConversation) Prompt(_ entities.MessageStyle, text string) entities.ResultCode {
	fmt.Fprintln(c.out, text)
	return entities.Success
}

func newSendCmd() *cobra.Command {
	var (
		configPath string
		message    string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Deliver a test notification through the configured relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}

			logger := slog.New(log.NewHandler(cmd.ErrOrStderr(), log.WithLevel(opts.Level())))
			notifier := relay.New(
				relay.WithEndpoint(opts.Endpoint),
				relay.WithUserAgent(opts.UserAgent),
				relay.WithTimeout(opts.Timeout()),
				relay.WithLogger(logger),
			)

			conv := terminalConversation{out: cmd.OutOrStdout()}
			if err := notifier.Send(cmd.Context(), conv, message); err != nil {
				return fmt.Errorf("delivery failed (%s): %w", pamerrors.CodeOf(err), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "notification delivered")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the module config file")
	cmd.Flags().StringVarP(&message, "message", "m", "pamnotify test notification", "text to deliver")
	return cmd
}
