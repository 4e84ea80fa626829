package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"stagehand/internal/config"
	"stagehand/internal/intake"
	"stagehand/internal/logging"
	"stagehand/internal/merge"
	"stagehand/internal/notifications"
	"stagehand/internal/readiness"
	"stagehand/internal/roles"
	"stagehand/internal/show"
	"stagehand/internal/staffing"
	"stagehand/internal/steps"
	"stagehand/internal/store"
)

const previewLength = 160

// Service implements the webhook actions and the state access the CLI uses.
// Every mutation runs the same synchronization pass so the staffing,
// checklist, workflow, and console views never drift apart.
type Service struct {
	store    *store.Store
	cfg      *config.Config
	logger   *slog.Logger
	notifier notifications.Service
	now      func() time.Time
}

// NewService wires a Service over the production store. The notifier comes
// from config and is a no-op unless an ntfy topic is set.
func NewService(st *store.Store, cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:    st,
		cfg:      cfg,
		logger:   logger,
		notifier: notifications.NewService(cfg),
		now:      time.Now,
	}
}

// Notifier exposes the milestone notifier for callers that drive gated
// actions directly.
func (s *Service) Notifier() notifications.Service {
	return s.notifier
}

func (s *Service) log() *slog.Logger {
	return s.logger.With(logging.String("component", "api"))
}

func (s *Service) catalog() *roles.Catalog {
	return roles.ForProduction(s.cfg.Production.TheaterRoles)
}

// loadState returns the reconciled state for an event, seeding a new
// production from canonical defaults when none exists yet.
func (s *Service) loadState(ctx context.Context, eventID string) (show.State, error) {
	persisted, err := s.store.Load(ctx, eventID)
	if errors.Is(err, store.ErrNotFound) {
		seeded := show.State{SchedulingMode: s.cfg.Production.SchedulingMode}
		return show.ReconcileState(seeded, s.cfg.Production.StageWorkflow), nil
	}
	if err != nil {
		return show.State{}, err
	}
	return show.ReconcileState(persisted, s.cfg.Production.StageWorkflow), nil
}

// sync runs the cross-entity synchronization rules: staffing autofill,
// checklist rollup into the technical sync step, and owner propagation.
// It is idempotent; every mutation path calls it before persisting.
func (s *Service) sync(state *show.State) {
	staffing.AutofillFromCrew(state.StaffAssignments, state.Crew, s.catalog())
	steps.ApplyChecklistReadiness(state.WorkflowSteps, readiness.Rollup(state.TechChecklist))
	steps.SyncOwnersFromStaff(state.WorkflowSteps, state.StaffAssignments)
}

// IngestEmail runs the full intake pipeline for one inbound email.
// Re-ingesting an identical email merges nothing new; only the audit log
// grows, bounded by its cap.
func (s *Service) IngestEmail(ctx context.Context, req IngestRequest) (IngestResponse, error) {
	if strings.TrimSpace(req.EventID) == "" {
		return IngestResponse{}, errors.New("ingest requires an event id")
	}

	state, err := s.loadState(ctx, req.EventID)
	if err != nil {
		return IngestResponse{}, err
	}

	result := intake.Parse(req.Email.Body, s.cfg.Production.TheaterRoles)

	beforeCues := len(state.Cues)
	beforeCrew := len(state.Crew)
	state.Cues = merge.CueRows(state.Cues, result.Cues)
	state.Crew = merge.CrewMembers(state.Crew, result.CrewMembers)

	steps.ApplyEmailSignals(state.WorkflowSteps, result.Signals)
	s.sync(&state)

	resp := IngestResponse{
		Success:      true,
		CuesAdded:    len(state.Cues) - beforeCues,
		CrewAdded:    len(state.Crew) - beforeCrew,
		UnknownLines: result.UnknownLines,
		Signals:      result.Signals,
	}
	resp.Summary = buildSummary(resp)

	now := s.now().UTC()
	receivedAt := strings.TrimSpace(req.Email.ReceivedAt)
	if receivedAt == "" {
		receivedAt = now.Format(time.RFC3339)
	}
	source := req.Source
	if source == "" {
		source = "webhook"
	}
	state.AppendInbox(show.EmailInboxEntry{
		ID:         uuid.NewString(),
		Source:     source,
		From:       req.Email.From,
		Subject:    req.Email.Subject,
		ReceivedAt: receivedAt,
		IngestedAt: now.Format(time.RFC3339),
		Summary:    resp.Summary,
		Preview:    preview(req.Email.Body),
	})
	state.LastEmailAt = receivedAt
	state.Touch(now)

	if err := s.store.Save(ctx, req.EventID, state); err != nil {
		// State is already merged in memory; the caller may retry the save
		// without re-ingesting.
		return resp, fmt.Errorf("persist production: %w", err)
	}

	s.log().Info("email ingested",
		logging.String("event_id", req.EventID),
		logging.Int("cues_added", resp.CuesAdded),
		logging.Int("crew_added", resp.CrewAdded),
		logging.Int("unknown_lines", resp.UnknownLines))
	s.notifyIngest(ctx, req.EventID, resp)
	return resp, nil
}

// notifyIngest publishes milestone notifications for one ingest. Delivery
// failures are logged, never surfaced: the ingest already succeeded.
func (s *Service) notifyIngest(ctx context.Context, eventID string, resp IngestResponse) {
	if err := s.notifier.NotifyEmailIngested(ctx, eventID, resp.Summary); err != nil {
		s.log().Warn("notify ingest", logging.Error(err))
	}
	if resp.Signals.HasBlockedLanguage {
		if err := s.notifier.NotifyIntakeBlocked(ctx, eventID, resp.Summary); err != nil {
			s.log().Warn("notify blocked", logging.Error(err))
		}
	}
	if resp.Signals.ShowCompleted {
		if err := s.notifier.NotifyShowCompleted(ctx, eventID); err != nil {
			s.log().Warn("notify show completed", logging.Error(err))
		}
	}
}

// GetWorkflow returns the persisted state blob for an event, reconciled but
// otherwise unchanged.
func (s *Service) GetWorkflow(ctx context.Context, eventID string) (show.State, error) {
	if strings.TrimSpace(eventID) == "" {
		return show.State{}, errors.New("get requires an event id")
	}
	return s.loadState(ctx, eventID)
}

// SetWorkflow applies explicit step status overrides and merges supplied
// cues.
func (s *Service) SetWorkflow(ctx context.Context, req SetRequest) (SetResponse, error) {
	if strings.TrimSpace(req.EventID) == "" {
		return SetResponse{}, errors.New("set requires an event id")
	}

	state, err := s.loadState(ctx, req.EventID)
	if err != nil {
		return SetResponse{}, err
	}

	var resp SetResponse
	for _, update := range req.RunOfShow.StatusUpdates {
		status, ok := show.ParseStepStatus(update.Status)
		if !ok {
			continue
		}
		step := state.StepByID(show.CanonicalStepID(update.ID))
		if step == nil {
			continue
		}
		// Explicit operator overrides bypass the sticky-done rule.
		if step.Status != status {
			step.Status = status
			resp.StepsUpdated++
		}
	}

	beforeCues := len(state.Cues)
	state.Cues = merge.CueRows(state.Cues, req.RunOfShow.Cues)
	resp.CuesMerged = len(state.Cues) - beforeCues

	s.sync(&state)
	state.Touch(s.now())

	if err := s.store.Save(ctx, req.EventID, state); err != nil {
		return resp, fmt.Errorf("persist production: %w", err)
	}
	resp.Success = true

	s.log().Info("workflow updated",
		logging.String("event_id", req.EventID),
		logging.Int("steps_updated", resp.StepsUpdated),
		logging.Int("cues_merged", resp.CuesMerged))
	return resp, nil
}

// UpdateState loads an event's state, hands it to fn for mutation, reruns
// synchronization, and persists the result. CLI commands build on this.
func (s *Service) UpdateState(ctx context.Context, eventID string, fn func(*show.State) error) (show.State, error) {
	if strings.TrimSpace(eventID) == "" {
		return show.State{}, errors.New("update requires an event id")
	}
	state, err := s.loadState(ctx, eventID)
	if err != nil {
		return show.State{}, err
	}
	if err := fn(&state); err != nil {
		return show.State{}, err
	}
	s.sync(&state)
	state.Touch(s.now())
	if err := s.store.Save(ctx, eventID, state); err != nil {
		return state, fmt.Errorf("persist production: %w", err)
	}
	return state, nil
}

// Status reports service health for the HTTP status endpoint.
func (s *Service) Status(ctx context.Context) (Status, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return Status{}, err
	}
	return Status{DBPath: s.store.Path(), Productions: count}, nil
}

func buildSummary(resp IngestResponse) string {
	parts := []string{
		fmt.Sprintf("%d cues, %d crew, %d unmapped lines", resp.CuesAdded, resp.CrewAdded, resp.UnknownLines),
	}
	var triggered []string
	if resp.Signals.CuesLocked {
		triggered = append(triggered, "cues locked")
	}
	if resp.Signals.CallSheetSent {
		triggered = append(triggered, "call sheet sent")
	}
	if resp.Signals.ShowCompleted {
		triggered = append(triggered, "show completed")
	}
	if resp.Signals.HasBlockedLanguage {
		triggered = append(triggered, "blocked language")
	}
	if len(triggered) > 0 {
		parts = append(parts, "signals: "+strings.Join(triggered, ", "))
	}
	return strings.Join(parts, "; ")
}

func preview(body string) string {
	condensed := strings.Join(strings.Fields(body), " ")
	if len(condensed) <= previewLength {
		return condensed
	}
	return condensed[:previewLength]
}
