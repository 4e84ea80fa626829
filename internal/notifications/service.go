package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stagehand/internal/config"
)

const userAgent = "Stagehand/0.1.0"

// Service defines the notification surface exposed to workflow components.
type Service interface {
	NotifyEmailIngested(ctx context.Context, eventID, summary string) error
	NotifyIntakeBlocked(ctx context.Context, eventID, summary string) error
	NotifyRunOfShowLocked(ctx context.Context, eventID string) error
	NotifyPressHandoff(ctx context.Context, eventID string) error
	NotifyShowCompleted(ctx context.Context, eventID string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyEmailIngested(ctx context.Context, eventID, summary string) error {
	data := payload{
		title:   "Stagehand - Email Ingested",
		message: fmt.Sprintf("Production %s: %s", strings.TrimSpace(eventID), strings.TrimSpace(summary)),
		tags:    []string{"stagehand", "intake", "ingested"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyIntakeBlocked(ctx context.Context, eventID, summary string) error {
	data := payload{
		title:    "Stagehand - Intake Blocked",
		message:  fmt.Sprintf("Production %s reported blocking language: %s", strings.TrimSpace(eventID), strings.TrimSpace(summary)),
		tags:     []string{"stagehand", "intake", "blocked"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyRunOfShowLocked(ctx context.Context, eventID string) error {
	data := payload{
		title:   "Stagehand - Run of Show Locked",
		message: fmt.Sprintf("Production %s: run of show locked, press draft handed off", strings.TrimSpace(eventID)),
		tags:    []string{"stagehand", "lock", "completed"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyPressHandoff(ctx context.Context, eventID string) error {
	data := payload{
		title:   "Stagehand - Press Handoff",
		message: fmt.Sprintf("Production %s released to press", strings.TrimSpace(eventID)),
		tags:    []string{"stagehand", "press", "handoff"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyShowCompleted(ctx context.Context, eventID string) error {
	data := payload{
		title:    "Stagehand - Show Complete",
		message:  fmt.Sprintf("Production %s reported show complete", strings.TrimSpace(eventID)),
		tags:     []string{"stagehand", "performance", "completed"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Stagehand - Test",
		message:  "Notification system test",
		tags:     []string{"stagehand", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyEmailIngested(context.Context, string, string) error { return nil }
func (noopService) NotifyIntakeBlocked(context.Context, string, string) error { return nil }
func (noopService) NotifyRunOfShowLocked(context.Context, string) error       { return nil }
func (noopService) NotifyPressHandoff(context.Context, string) error          { return nil }
func (noopService) NotifyShowCompleted(context.Context, string) error         { return nil }
func (noopService) TestNotification(context.Context) error                    { return nil }
