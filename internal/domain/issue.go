package domain

// Issue is one unassigned work item as returned by the tracker's search
// endpoint. Read-only once parsed; nothing outlives a single run.
type Issue struct {
	Key           string
	Summary       string
	Priority      string
	Reporter      string
	Organizations []string
	Description   string
	Link          string
}

// Report is the formatted notification derived from an ordered issue list.
type Report struct {
	Subject string
	Body    string
}
