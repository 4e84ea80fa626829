package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/show"
)

func newCuesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cues",
		Short: "Inspect and update the cue timeline",
	}
	cmd.AddCommand(newCuesListCommand(ctx))
	cmd.AddCommand(newCuesSetCommand(ctx))
	cmd.AddCommand(newCuesRemoveCommand(ctx))
	return cmd
}

func newCuesListCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cues in show order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				state, err := service.GetWorkflow(cmd.Context(), eventFlag)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, state.Cues)
				}
				rows := make([][]string, 0, len(state.Cues))
				for i, cue := range state.Cues {
					marker := ""
					if cue.ID != "" && cue.ID == state.ActiveCueID {
						marker = ">"
					}
					rows = append(rows, []string{
						marker,
						fmt.Sprintf("%d", i+1),
						cue.Time,
						cue.Item,
						string(cue.Department),
						cue.CrewMember,
						string(cue.Status),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"", "#", "Time", "Item", "Dept", "Crew", "Status"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newCuesSetCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "set <cue-id> <status>",
		Short: "Set a cue's call status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := show.ParseCueStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown cue status %q", args[1])
			}
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				_, err := service.UpdateState(cmd.Context(), eventFlag, func(state *show.State) error {
					idx := state.CueIndex(args[0])
					if idx < 0 {
						return fmt.Errorf("cue %s not found", args[0])
					}
					state.Cues[idx].Status = status
					return nil
				})
				return err
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newCuesRemoveCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "remove <cue-id>",
		Short: "Remove a cue from the timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				_, err := service.UpdateState(cmd.Context(), eventFlag, func(state *show.State) error {
					idx := state.CueIndex(args[0])
					if idx < 0 {
						return fmt.Errorf("cue %s not found", args[0])
					}
					if state.ActiveCueID == args[0] {
						state.ActiveCueID = ""
					}
					state.Cues = append(state.Cues[:idx], state.Cues[idx+1:]...)
					return nil
				})
				return err
			})
		},
	}

	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
