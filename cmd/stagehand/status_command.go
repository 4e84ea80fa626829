package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/console"
	"stagehand/internal/readiness"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show readiness gates and department status for a production",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				state, err := service.GetWorkflow(cmd.Context(), eventFlag)
				if err != nil {
					return err
				}

				gates := console.Evaluate(&state)
				views := readiness.DepartmentViews(state.Cues, state.TechChecklist)

				if ctx.jsonOutput() {
					return writeJSON(cmd, struct {
						Gates       console.Gates              `json:"gates"`
						Departments []readiness.DepartmentView `json:"departments"`
					}{gates, views})
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				fmt.Fprintln(out, renderGateLine("Run of show lock", gates.ReadyForRunLock, colorize))
				for _, reason := range gates.RunLockReasons {
					fmt.Fprintln(out, renderGateReason(reason, colorize))
				}
				fmt.Fprintln(out, renderGateLine("Press handoff", gates.ReadyForPressHandoff, colorize))
				for _, reason := range gates.PressHandoffReasons {
					fmt.Fprintln(out, renderGateReason(reason, colorize))
				}

				rows := make([][]string, 0, len(views))
				for _, view := range views {
					rows = append(rows, []string{
						string(view.Department),
						string(view.Readiness),
						strconv.Itoa(view.CueCount),
						strconv.Itoa(view.Executed),
						strconv.Itoa(view.Hold),
						strconv.Itoa(view.ChecklistCount),
						strconv.Itoa(view.IssueChecks),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Dept", "Readiness", "Cues", "Executed", "Hold", "Checks", "Issues"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
