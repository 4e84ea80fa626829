package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/show"
)

func newCrewCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Inspect the crew roster",
	}
	cmd.AddCommand(newCrewListCommand(ctx))
	cmd.AddCommand(newCrewRemoveCommand(ctx))
	return cmd
}

func newCrewListCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List crew members",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				state, err := service.GetWorkflow(cmd.Context(), eventFlag)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, state.Crew)
				}
				rows := make([][]string, 0, len(state.Crew))
				for _, member := range state.Crew {
					rows = append(rows, []string{
						member.Name,
						member.Role,
						string(member.Department),
						member.Email,
						member.Phone,
						member.CallTime,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "Role", "Dept", "Email", "Phone", "Call"},
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

func newCrewRemoveCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "remove <crew-id>",
		Short: "Remove a crew member from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				_, err := service.UpdateState(cmd.Context(), eventFlag, func(state *show.State) error {
					for i := range state.Crew {
						if state.Crew[i].ID == args[0] {
							state.Crew = append(state.Crew[:i], state.Crew[i+1:]...)
							return nil
						}
					}
					return fmt.Errorf("crew member %s not found", args[0])
				})
				return err
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
