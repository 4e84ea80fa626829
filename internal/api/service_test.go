package api_test

import (
	"context"
	"strings"
	"testing"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/show"
	"stagehand/internal/testsupport"
)

const scenarioEmail = `Hi team,

19:00 - House opens | FOH team
7:30 pm - Band soundcheck
21:00 - Headliner set | backline crew

Lighting Designer: Dana Hall dana@example.com 210-555-0144 Call time 5:30 PM
Audio Engineer: Sam Lee sam@venue.example

Please confirm parking passes.
`

func newService(t *testing.T, opts ...testsupport.ConfigOption) (*api.Service, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	st := testsupport.MustOpenStore(t, cfg)
	return api.NewService(st, cfg, nil), cfg
}

func TestIngestEmail(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	resp, err := service.IngestEmail(ctx, api.IngestRequest{
		EventID: "ev-100",
		Email: api.EmailEnvelope{
			From:    "pm@venue.example",
			Subject: "Saturday run of show",
			Body:    scenarioEmail,
		},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success")
	}
	if resp.CuesAdded != 3 {
		t.Fatalf("CuesAdded = %d, want 3", resp.CuesAdded)
	}
	if resp.CrewAdded != 2 {
		t.Fatalf("CrewAdded = %d, want 2", resp.CrewAdded)
	}
	if !strings.Contains(resp.Summary, "3 cues, 2 crew") {
		t.Fatalf("summary = %q", resp.Summary)
	}

	state, err := service.GetWorkflow(ctx, "ev-100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(state.Cues) != 3 || len(state.Crew) != 2 {
		t.Fatalf("persisted %d cues, %d crew", len(state.Cues), len(state.Crew))
	}
	for _, cue := range state.Cues {
		if cue.ID == "" {
			t.Fatalf("merged cue missing id: %+v", cue)
		}
	}
	if got := state.StepByID(show.StepEmailIntake).Status; got != show.StepDone {
		t.Fatalf("email intake step = %s", got)
	}
	if got := state.StepByID(show.StepIntakeValidation).Status; got != show.StepInProgress {
		t.Fatalf("intake validation step = %s", got)
	}
	if len(state.EmailInbox) != 1 {
		t.Fatalf("expected 1 inbox entry, got %d", len(state.EmailInbox))
	}
	if state.LastEmailAt == "" || state.LastUpdated == "" {
		t.Fatalf("timestamps missing: %+v", state)
	}
}

func TestIngestEmailAutofillsStaffing(t *testing.T) {
	service, _ := newService(t)

	if _, err := service.IngestEmail(context.Background(), api.IngestRequest{
		EventID: "ev-100",
		Email:   api.EmailEnvelope{Body: scenarioEmail},
	}); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	state, err := service.GetWorkflow(context.Background(), "ev-100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	for _, row := range state.StaffAssignments {
		switch row.Role {
		case "Lighting Designer":
			if row.Assignee != "Dana Hall" || row.Email != "dana@example.com" {
				t.Fatalf("lighting row: %+v", row)
			}
		case "Audio Engineer":
			if row.Assignee != "Sam Lee" {
				t.Fatalf("audio row: %+v", row)
			}
		}
	}
}

func TestIngestEmailRedeliveryIsIdempotent(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()
	req := api.IngestRequest{EventID: "ev-100", Email: api.EmailEnvelope{Body: scenarioEmail}}

	if _, err := service.IngestEmail(ctx, req); err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	resp, err := service.IngestEmail(ctx, req)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if resp.CuesAdded != 0 || resp.CrewAdded != 0 {
		t.Fatalf("redelivery merged rows: %+v", resp)
	}

	state, err := service.GetWorkflow(ctx, "ev-100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(state.Cues) != 3 || len(state.Crew) != 2 {
		t.Fatalf("redelivery changed collections: %d cues, %d crew", len(state.Cues), len(state.Crew))
	}
	// Only the audit log grows.
	if len(state.EmailInbox) != 2 {
		t.Fatalf("expected 2 inbox entries, got %d", len(state.EmailInbox))
	}
}

func TestIngestEmailRequiresEventID(t *testing.T) {
	service, _ := newService(t)
	if _, err := service.IngestEmail(context.Background(), api.IngestRequest{}); err == nil {
		t.Fatal("expected error for missing event id")
	}
}

func TestGetWorkflowSeedsNewProduction(t *testing.T) {
	service, cfg := newService(t)

	state, err := service.GetWorkflow(context.Background(), "ev-new")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(state.WorkflowSteps) != len(show.DefaultWorkflowSteps()) {
		t.Fatalf("expected seeded steps, got %d", len(state.WorkflowSteps))
	}
	if state.SchedulingMode != cfg.Production.SchedulingMode {
		t.Fatalf("scheduling mode = %q", state.SchedulingMode)
	}
}

func TestSetWorkflowOverridesBypassStickyDone(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	if _, err := service.SetWorkflow(ctx, api.SetRequest{
		EventID: "ev-100",
		RunOfShow: api.RunOfShow{
			StatusUpdates: []api.StatusUpdate{{ID: show.StepTechnicalSync, Status: "done"}},
		},
	}); err != nil {
		t.Fatalf("set: %v", err)
	}

	resp, err := service.SetWorkflow(ctx, api.SetRequest{
		EventID: "ev-100",
		RunOfShow: api.RunOfShow{
			StatusUpdates: []api.StatusUpdate{{ID: show.StepTechnicalSync, Status: "in_progress"}},
		},
	})
	if err != nil {
		t.Fatalf("second set: %v", err)
	}
	if resp.StepsUpdated != 1 {
		t.Fatalf("StepsUpdated = %d, want 1", resp.StepsUpdated)
	}

	state, err := service.GetWorkflow(ctx, "ev-100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := state.StepByID(show.StepTechnicalSync).Status; got != show.StepInProgress {
		t.Fatalf("explicit override ignored, step = %s", got)
	}
}

func TestSetWorkflowAcceptsLegacyStepIDs(t *testing.T) {
	service, _ := newService(t)

	resp, err := service.SetWorkflow(context.Background(), api.SetRequest{
		EventID: "ev-100",
		RunOfShow: api.RunOfShow{
			StatusUpdates: []api.StatusUpdate{{ID: "tech_sync", Status: "done"}},
		},
	})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if resp.StepsUpdated != 1 {
		t.Fatalf("StepsUpdated = %d, want 1", resp.StepsUpdated)
	}
}

func TestSetWorkflowSkipsInvalidUpdates(t *testing.T) {
	service, _ := newService(t)

	resp, err := service.SetWorkflow(context.Background(), api.SetRequest{
		EventID: "ev-100",
		RunOfShow: api.RunOfShow{
			StatusUpdates: []api.StatusUpdate{
				{ID: show.StepTechnicalSync, Status: "finished"},
				{ID: "no_such_step", Status: "done"},
			},
		},
	})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if resp.StepsUpdated != 0 {
		t.Fatalf("StepsUpdated = %d, want 0", resp.StepsUpdated)
	}
}

func TestSetWorkflowMergesCues(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	resp, err := service.SetWorkflow(ctx, api.SetRequest{
		EventID: "ev-100",
		RunOfShow: api.RunOfShow{
			Cues: []show.Cue{
				{Time: "19:00", Item: "Doors"},
				{Time: "19:00", Item: "doors"},
			},
		},
	})
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if resp.CuesMerged != 1 {
		t.Fatalf("CuesMerged = %d, want 1", resp.CuesMerged)
	}
}

func TestUpdateState(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	state, err := service.UpdateState(ctx, "ev-100", func(s *show.State) error {
		s.Cues = append(s.Cues, show.Cue{ID: "cue-1", Time: "19:00", Item: "Doors"})
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(state.Cues) != 1 {
		t.Fatalf("returned state missing cue: %+v", state.Cues)
	}

	loaded, err := service.GetWorkflow(ctx, "ev-100")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(loaded.Cues) != 1 {
		t.Fatal("mutation not persisted")
	}
}

func TestStatus(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	if _, err := service.UpdateState(ctx, "ev-100", func(*show.State) error { return nil }); err != nil {
		t.Fatalf("seed: %v", err)
	}

	status, err := service.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Productions != 1 {
		t.Fatalf("Productions = %d, want 1", status.Productions)
	}
	if status.DBPath == "" {
		t.Fatal("expected a db path")
	}
}
