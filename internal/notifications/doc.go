// Package notifications delivers production milestones via pluggable
// notifiers.
//
// The default implementation publishes to ntfy using the topic configured in
// config.toml and gracefully degrades to a no-op when notifications are
// disabled. The Service interface enumerates the milestones the workflow
// emits so callers never duplicate HTTP glue.
package notifications
