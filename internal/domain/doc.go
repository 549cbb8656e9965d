// Package domain defines the core entities and interfaces for auja.
//
// It contains the Issue and Report models, the capability interfaces
// implemented by the external-service adapters (IssueSource, Notifier),
// and the sentinel errors that classify a failed run.
package domain
