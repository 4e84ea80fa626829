// Package api implements the webhook actions over the production store:
// ingest-stage-email, get-stage-workflow, and set-stage-workflow.
//
// Every mutation path, webhook or CLI, flows through the same
// synchronization pass (staffing autofill, checklist rollup into the
// technical sync step, owner propagation) before persisting, so the
// dependent views cannot drift. The pipeline is synchronous and
// single-writer per production; idempotent parsing and merging make
// at-least-once webhook delivery safe.
package api
