package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/console"
	"stagehand/internal/show"
)

func newConsoleCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Cue call console: move the active cue and call statuses",
	}
	cmd.AddCommand(newConsoleJumpCommand(ctx, "next", 1, "Advance the active cue"))
	cmd.AddCommand(newConsoleJumpCommand(ctx, "prev", -1, "Step the active cue back"))
	cmd.AddCommand(newConsoleStatusCommand(ctx, "standby", show.CueStandby))
	cmd.AddCommand(newConsoleStatusCommand(ctx, "go", show.CueGo))
	cmd.AddCommand(newConsoleStatusCommand(ctx, "hold", show.CueHold))
	cmd.AddCommand(newConsoleExecCommand(ctx))
	cmd.AddCommand(newConsoleLockCommand(ctx))
	cmd.AddCommand(newConsoleHandoffCommand(ctx))
	return cmd
}

func consoleRun(ctx *commandContext, cmd *cobra.Command, eventID string, fn func(*show.State) error) error {
	return ctx.withService(func(_ *config.Config, service *api.Service) error {
		state, err := service.UpdateState(cmd.Context(), eventID, fn)
		if err != nil {
			return err
		}
		if idx := console.ActiveIndex(&state); idx >= 0 {
			cue := state.Cues[idx]
			fmt.Fprintf(cmd.OutOrStdout(), "active: %s %s [%s]\n", cue.Time, cue.Item, cue.Status)
		}
		return nil
	})
}

func newConsoleJumpCommand(ctx *commandContext, use string, delta int, short string) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return consoleRun(ctx, cmd, eventFlag, func(state *show.State) error {
				console.Jump(state, delta)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newConsoleStatusCommand(ctx *commandContext, use string, status show.CueStatus) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Call %s on the active cue", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			return consoleRun(ctx, cmd, eventFlag, func(state *show.State) error {
				if !console.SetActiveStatus(state, status) {
					return fmt.Errorf("no cues in the timeline")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newConsoleExecCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Mark the active cue executed and advance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return consoleRun(ctx, cmd, eventFlag, func(state *show.State) error {
				if !console.MarkExecutedAndAdvance(state) {
					return fmt.Errorf("no cues in the timeline")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newConsoleLockCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Lock the run of show",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				if _, err := service.UpdateState(cmd.Context(), eventFlag, console.LockRunOfShow); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "run of show locked")
				return service.Notifier().NotifyRunOfShowLocked(cmd.Context(), eventFlag)
			})
		},
	}
	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}

func newConsoleHandoffCommand(ctx *commandContext) *cobra.Command {
	var eventFlag string

	cmd := &cobra.Command{
		Use:   "handoff",
		Short: "Hand the production off to press",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(_ *config.Config, service *api.Service) error {
				if _, err := service.UpdateState(cmd.Context(), eventFlag, console.HandoffToPress); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "production handed off to press")
				return service.Notifier().NotifyPressHandoff(cmd.Context(), eventFlag)
			})
		},
	}
	cmd.Flags().StringVar(&eventFlag, "event", "", "Event id of the production")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
