package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotSent = errors.New("email was not sent")

func newSendMailCmd() *cobra.Command {
	var to, subject, html, text string
	cmd := &cobra.Command{
		Use:   "send-mail",
		Short: "Send one email with the configured provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" || subject == "" || html == "" {
				return fmt.Errorf("--to, --subject and --html are required")
			}
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if !newMailService(cfg, logger).SendEmail(cmd.Context(), to, subject, html, text) {
				return errNotSent
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Recipient address")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject line")
	cmd.Flags().StringVar(&html, "html", "", "HTML body")
	cmd.Flags().StringVar(&text, "text", "", "Plain text body (optional)")
	return cmd
}
