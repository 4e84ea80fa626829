// Package server exposes the webhook actions over HTTP for automation tools.
//
// Actions are JSON POSTs carrying a shared webhookSecret, compared in
// constant time. Transport hardening beyond the secret (signatures, retries,
// TLS termination) belongs to the automation platform in front of this
// server, not here.
package server
