package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/show"
)

func newStaffingCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staffing",
		Short: "Inspect and update staff assignments",
	}
	cmd.AddCommand(newStaffingListCommand(ctx))
	cmd.AddCommand(newStaffingAssignCommand(ctx))
	return cmd
}

func newStaffingListCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				state, err := service.GetWorkflow(cmd.Context(), eventFlag)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, state.StaffAssignments)
				}
				rows := make([][]string, 0, len(state.StaffAssignments))
				for _, assignment := range state.StaffAssignments {
					rows = append(rows, []string{
						assignment.Role,
						assignment.Assignee,
						assignment.Email,
						assignment.Phone,
						assignment.Responsibility,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Role", "Assignee", "Email", "Phone", "Responsibility"},
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

func newStaffingAssignCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string
	var emailFlag string
	var phoneFlag string

	cmd := &cobra.Command{
		Use:   "assign <role> <assignee>",
		Short: "Assign a person to a production role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				_, err := service.UpdateState(cmd.Context(), eventFlag, func(state *show.State) error {
					for i := range state.StaffAssignments {
						if !strings.EqualFold(state.StaffAssignments[i].Role, args[0]) {
							continue
						}
						state.StaffAssignments[i].Assignee = args[1]
						if emailFlag != "" {
							state.StaffAssignments[i].Email = emailFlag
						}
						if phoneFlag != "" {
							state.StaffAssignments[i].Phone = phoneFlag
						}
						return nil
					}
					return fmt.Errorf("role %q not found", args[0])
				})
				return err
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Assignee email")
	cmd.Flags().StringVar(&phoneFlag, "phone", "", "Assignee phone")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
