package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
)

func newWorkflowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Inspect and update workflow steps",
	}
	cmd.AddCommand(newWorkflowListCommand(ctx))
	cmd.AddCommand(newWorkflowSetCommand(ctx))
	return cmd
}

func newWorkflowListCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflow steps in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				state, err := service.GetWorkflow(cmd.Context(), eventFlag)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, state.WorkflowSteps)
				}
				rows := make([][]string, 0, len(state.WorkflowSteps))
				for _, step := range state.WorkflowSteps {
					rows = append(rows, []string{
						step.ID,
						step.What,
						step.Owner,
						step.OwnerRole,
						string(step.Status),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Step", "What", "Owner", "Role", "Status"},
					rows,
					nil,
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newWorkflowSetCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "set <step-id> <status>",
		Short: "Override a workflow step's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				resp, err := service.SetWorkflow(cmd.Context(), api.SetRequest{
					EventID: eventFlag,
					RunOfShow: api.RunOfShow{
						StatusUpdates: []api.StatusUpdate{{ID: args[0], Status: args[1]}},
					},
				})
				if err != nil {
					return err
				}
				if resp.StepsUpdated == 0 {
					return fmt.Errorf("no step matched id %q with status %q", args[0], args[1])
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
