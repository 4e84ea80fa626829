package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/readiness"
	"stagehand/internal/show"
)

func newChecklistCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Inspect and update the technical preflight checklist",
	}
	cmd.AddCommand(newChecklistListCommand(ctx))
	cmd.AddCommand(newChecklistSetCommand(ctx))
	return cmd
}

func newChecklistListCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checklist items with the overall rollup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				state, err := service.GetWorkflow(cmd.Context(), eventFlag)
				if err != nil {
					return err
				}
				rollup := readiness.Rollup(state.TechChecklist)
				if ctx.jsonOutput() {
					return writeJSON(cmd, struct {
						Rollup show.StepStatus          `json:"rollup"`
						Items  []show.TechChecklistItem `json:"items"`
					}{rollup, state.TechChecklist})
				}
				rows := make([][]string, 0, len(state.TechChecklist))
				for _, item := range state.TechChecklist {
					rows = append(rows, []string{
						item.ID,
						string(item.Department),
						item.Item,
						item.OwnerRole,
						string(item.Status),
						item.Notes,
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"Item", "Dept", "Check", "Role", "Status", "Notes"},
					rows,
					nil,
				))
				fmt.Fprintf(out, "Rollup: %s\n", rollup)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newChecklistSetCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string
	var notesFlag string

	cmd := &cobra.Command{
		Use:   "set <item-id> <status>",
		Short: "Set a checklist item's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := show.ParseChecklistStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown checklist status %q", args[1])
			}
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				_, err := service.UpdateState(cmd.Context(), eventFlag, func(state *show.State) error {
					for i := range state.TechChecklist {
						if state.TechChecklist[i].ID == args[0] {
							state.TechChecklist[i].Status = status
							if cmd.Flags().Changed("notes") {
								state.TechChecklist[i].Notes = notesFlag
							}
							return nil
						}
					}
					return fmt.Errorf("checklist item %s not found", args[0])
				})
				return err
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "Notes recorded on the item")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
