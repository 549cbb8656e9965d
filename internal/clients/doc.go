// Package clients provides adapters for external services.
//
// This package contains adapters that implement domain interfaces for:
// - the Jira REST search API (issue source)
// - the SMTP mail transport (report notifier)
//
// Both adapters support context for cancellation and perform exactly one
// logical outbound operation per run, with no retries.
package clients
