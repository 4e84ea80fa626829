package api

import (
	"stagehand/internal/intake"
	"stagehand/internal/show"
)

// EmailEnvelope carries one inbound production email.
type EmailEnvelope struct {
	From       string `json:"from"`
	Subject    string `json:"subject"`
	ReceivedAt string `json:"receivedAt"`
	Body       string `json:"body"`
}

// IngestRequest is the ingest-stage-email action payload.
type IngestRequest struct {
	EventID string        `json:"eventId"`
	Source  string        `json:"source,omitempty"`
	Email   EmailEnvelope `json:"email"`
}

// IngestResponse reports what one ingest run changed.
type IngestResponse struct {
	Success      bool           `json:"success"`
	Summary      string         `json:"summary"`
	CuesAdded    int            `json:"cuesAdded"`
	CrewAdded    int            `json:"crewAdded"`
	UnknownLines int            `json:"unknownLines"`
	Signals      intake.Signals `json:"signals"`
}

// StatusUpdate is one explicit workflow step override.
type StatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// RunOfShow is the set-stage-workflow mutation payload.
type RunOfShow struct {
	StatusUpdates []StatusUpdate `json:"statusUpdates"`
	Cues          []show.Cue     `json:"cues"`
}

// SetRequest is the set-stage-workflow action payload.
type SetRequest struct {
	EventID   string    `json:"eventId"`
	RunOfShow RunOfShow `json:"runOfShow"`
}

// SetResponse reports what one set-stage-workflow run changed.
type SetResponse struct {
	Success      bool `json:"success"`
	StepsUpdated int  `json:"stepsUpdated"`
	CuesMerged   int  `json:"cuesMerged"`
}

// Status is the service health summary exposed on /api/status.
type Status struct {
	DBPath      string `json:"dbPath"`
	Productions int    `json:"productions"`
}
