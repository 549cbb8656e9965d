package service

import (
	"strings"
	"testing"
	"time"

	"auja/internal/domain"
)

var reportDate = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func sampleIssues() []domain.Issue {
	return []domain.Issue{
		{
			Key:      "OPS-1",
			Summary:  "Fix login",
			Priority: "High",
			Reporter: "Dana",
			Link:     "http://x/1",
		},
		{
			Key:      "OPS-2",
			Summary:  "Update docs",
			Priority: "Low",
			Reporter: "Sam",
			Link:     "http://x/2",
		},
	}
}

func TestGenerateBodyEmpty(t *testing.T) {
	body, err := GenerateBody(nil, reportDate)
	if err != nil {
		t.Fatalf("GenerateBody() error = %v", err)
	}

	if !strings.Contains(body, "No unassigned issues") {
		t.Errorf("empty report missing marker, got:\n%s", body)
	}
	if !strings.Contains(body, "</html>") {
		t.Errorf("empty report is not a well-formed document")
	}
	if !strings.Contains(body, "2024-03-01") {
		t.Errorf("empty report missing date header")
	}
}

func TestGenerateBodyDeterministic(t *testing.T) {
	first, err := GenerateBody(sampleIssues(), reportDate)
	if err != nil {
		t.Fatalf("GenerateBody() error = %v", err)
	}
	second, err := GenerateBody(sampleIssues(), reportDate)
	if err != nil {
		t.Fatalf("GenerateBody() error = %v", err)
	}
	if first != second {
		t.Error("same input produced different bodies")
	}
}

func TestGenerateBodyRendersEachIssueOnce(t *testing.T) {
	body, err := GenerateBody(sampleIssues(), reportDate)
	if err != nil {
		t.Fatalf("GenerateBody() error = %v", err)
	}

	once := []string{
		"Fix login",
		"Update docs",
		`href="http://x/1"`,
		`href="http://x/2"`,
		">High</span>",
		">Low</span>",
	}
	for _, want := range once {
		if got := strings.Count(body, want); got != 1 {
			t.Errorf("body contains %q %d times, want exactly once", want, got)
		}
	}

	if strings.Index(body, "Fix login") > strings.Index(body, "Update docs") {
		t.Error("issues rendered out of input order")
	}
}

func TestGenerateBodyEscapesIssueText(t *testing.T) {
	issues := []domain.Issue{{
		Key:         "OPS-3",
		Summary:     `<script>alert("x")</script>`,
		Priority:    "Medium",
		Description: "line one\nline <b>two</b>",
		Link:        "http://x/3",
	}}

	body, err := GenerateBody(issues, reportDate)
	if err != nil {
		t.Fatalf("GenerateBody() error = %v", err)
	}

	if strings.Contains(body, "<script>") {
		t.Error("summary was not escaped")
	}
	if !strings.Contains(body, "line one<br>line &lt;b&gt;two&lt;/b&gt;") {
		t.Errorf("description not escaped with line breaks, got:\n%s", body)
	}
}

func TestBuildReportSubject(t *testing.T) {
	report, err := BuildReport(nil, reportDate)
	if err != nil {
		t.Fatalf("BuildReport() error = %v", err)
	}
	if report.Subject != "Unassigned Issues Report - 2024-03-01" {
		t.Errorf("Subject = %q", report.Subject)
	}
}

func TestPriorityClass(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		want     string
	}{
		{name: "already capitalized", priority: "High", want: "High"},
		{name: "lowercase", priority: "highest", want: "Highest"},
		{name: "uppercase", priority: "LOW", want: "Low"},
		{name: "multi-byte leading rune", priority: "élevée", want: "Élevée"},
		{name: "empty", priority: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := priorityClass(tt.priority); got != tt.want {
				t.Errorf("priorityClass(%q) = %q, want %q", tt.priority, got, tt.want)
			}
		})
	}
}

func TestOrganizationList(t *testing.T) {
	tests := []struct {
		name string
		orgs []string
		want string
	}{
		{name: "none", orgs: nil, want: "N/A"},
		{name: "one", orgs: []string{"Acme"}, want: "Acme"},
		{name: "several", orgs: []string{"Acme", "Globex"}, want: "Acme, Globex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := organizationList(tt.orgs); got != tt.want {
				t.Errorf("organizationList() = %q, want %q", got, tt.want)
			}
		})
	}
}
