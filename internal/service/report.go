package service

import (
	"fmt"
	"html/template"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"auja/internal/domain"
)

const (
	reportDateFormat    = "2006-01-02"
	reportSubjectFormat = "Unassigned Issues Report - %s"

	noIssuesMessage       = "No unassigned issues found. Every open ticket has an assignee."
	noOrganizations       = "N/A"
	noDescriptionProvided = "No description provided"
)

const reportHTML = `<html>
<head>
<style>
body { font-family: 'Segoe UI', Tahoma, Verdana, sans-serif; }
.issue { margin-bottom: 30px; padding: 15px; border-left: 5px solid #007BFF; background-color: #f9f9f9; }
.issue-header { font-weight: bold; color: #1e3f5a; font-size: 20px; margin-bottom: 10px; }
.issue-header a { color: #007BFF; text-decoration: none; font-weight: bold; }
.priority { padding: 3px; border-radius: 4px; color: #fff; }
.High, .Highest { background-color: #DC3545; }
.Medium { background-color: #FFC107; }
.Low, .Lowest { background-color: #28A745; }
.label { font-weight: bold; padding-right: 30px; }
.empty { text-align: center; color: #1e3f5a; font-size: 18px; }
</style>
</head>
<body>
<h2 style="text-align: center;">Unassigned Issues Report - {{.Date}}</h2>
{{if .Issues}}{{range .Issues}}<div class="issue">
<div class="issue-header"><a href="{{.Link}}">{{.Key}}</a> - {{.Summary}}</div>
<table>
<tr><td class="label">Organization(s):</td><td>{{.Organizations}}</td></tr>
<tr><td class="label">Priority:</td><td><span class="priority {{.PriorityClass}}">{{.Priority}}</span></td></tr>
<tr><td class="label">Reporter:</td><td>{{.Reporter}}</td></tr>
</table>
<div><span class="label">Description:</span><div>{{.Description}}</div></div>
</div>
{{end}}{{else}}<p class="empty">{{.EmptyMessage}}</p>
{{end}}</body>
</html>
`

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

type reportView struct {
	Date         string
	EmptyMessage string
	Issues       []issueView
}

type issueView struct {
	Key           string
	Link          string
	Summary       string
	Priority      string
	PriorityClass string
	Reporter      string
	Organizations string
	Description   template.HTML
}

// GenerateBody renders the HTML report body. It is pure and deterministic:
// the same issue sequence and date always produce byte-identical output,
// preserving the input order. Issue-supplied text is HTML-escaped.
func GenerateBody(issues []domain.Issue, date time.Time) (string, error) {
	view := reportView{
		Date:         date.Format(reportDateFormat),
		EmptyMessage: noIssuesMessage,
		Issues:       make([]issueView, 0, len(issues)),
	}

	for _, issue := range issues {
		view.Issues = append(view.Issues, issueView{
			Key:           issue.Key,
			Link:          issue.Link,
			Summary:       issue.Summary,
			Priority:      issue.Priority,
			PriorityClass: priorityClass(issue.Priority),
			Reporter:      issue.Reporter,
			Organizations: organizationList(issue.Organizations),
			Description:   descriptionHTML(issue.Description),
		})
	}

	var body strings.Builder
	if err := reportTemplate.Execute(&body, view); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return body.String(), nil
}

// BuildReport pairs the generated body with a dated subject line.
func BuildReport(issues []domain.Issue, date time.Time) (*domain.Report, error) {
	body, err := GenerateBody(issues, date)
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		Subject: fmt.Sprintf(reportSubjectFormat, date.Format(reportDateFormat)),
		Body:    body,
	}, nil
}

func priorityClass(priority string) string {
	if priority == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(priority)
	return string(unicode.ToUpper(first)) + strings.ToLower(priority[size:])
}

func organizationList(orgs []string) string {
	if len(orgs) == 0 {
		return noOrganizations
	}
	return strings.Join(orgs, ", ")
}

// descriptionHTML escapes the raw description before turning newlines into
// line breaks, so the returned fragment is safe to inject unescaped.
func descriptionHTML(description string) template.HTML {
	if description == "" {
		description = noDescriptionProvided
	}
	escaped := template.HTMLEscapeString(description)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
