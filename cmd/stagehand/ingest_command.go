package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string
	var fromFlag string
	var subjectFlag string

	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: "Ingest a production email body from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				body, err = os.ReadFile(args[0])
			} else {
				body, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read email body: %w", err)
			}

			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				resp, err := service.IngestEmail(cmd.Context(), api.IngestRequest{
					EventID: eventFlag,
					Source:  "cli",
					Email: api.EmailEnvelope{
						From:       fromFlag,
						Subject:    subjectFlag,
						ReceivedAt: time.Now().UTC().Format(time.RFC3339),
						Body:       string(body),
					},
				})
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, resp)
				}
				fmt.Fprintln(cmd.OutOrStdout(), resp.Summary)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	cmd.Flags().StringVar(&fromFlag, "from", "", "Sender recorded in the intake log")
	cmd.Flags().StringVar(&subjectFlag, "subject", "", "Subject recorded in the intake log")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}
