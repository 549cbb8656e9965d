package domain

import "context"

type IssueSource interface {
	FetchUnassigned(ctx context.Context) ([]Issue, error)
}

type Notifier interface {
	Send(ctx context.Context, report *Report) error
}
