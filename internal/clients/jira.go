package clients

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"auja/internal/config"
	"auja/internal/domain"
)

const (
	searchPath   = "/rest/api/2/search"
	searchFields = "key,summary,priority,reporter,description,status,customfield_10002"
)

// jqlFilter selects open issues in one project whose assignee is empty,
// newest first. The response order is the report order.
const jqlFilter = `project = %q AND assignee = EMPTY AND status not in ("Closed", "Resolved", "Done") ORDER BY created DESC`

type searchResponse struct {
	StartAt    int           `json:"startAt"`
	MaxResults int           `json:"maxResults"`
	Total      int           `json:"total"`
	Issues     []searchIssue `json:"issues"`
}

type searchIssue struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary       string        `json:"summary"`
	Priority      namedField    `json:"priority"`
	Reporter      reporterField `json:"reporter"`
	Description   string        `json:"description"`
	Organizations []namedField  `json:"customfield_10002"`
}

type namedField struct {
	Name string `json:"name"`
}

type reporterField struct {
	DisplayName string `json:"displayName"`
}

type jiraClient struct {
	http       *resty.Client
	ticketBase string
	project    string
	pageSize   int
}

func NewJiraClient(cfg *config.Config) domain.IssueSource {
	httpClient := resty.New().
		SetBaseURL(cfg.JiraServer).
		SetBasicAuth(cfg.JiraUsername, cfg.JiraPassword).
		SetTimeout(cfg.HTTPTimeout)

	return &jiraClient{
		http:       httpClient,
		ticketBase: cfg.JiraTicketBaseURL,
		project:    cfg.JiraProject,
		pageSize:   cfg.PageSize,
	}
}

// FetchUnassigned reads every page of the search result. An empty result
// is not an error: a project with no unassigned issues is a valid state.
func (c *jiraClient) FetchUnassigned(ctx context.Context) ([]domain.Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jql := fmt.Sprintf(jqlFilter, c.project)
	issues := []domain.Issue{}

	for startAt := 0; ; {
		page, err := c.fetchPage(ctx, jql, startAt)
		if err != nil {
			return nil, err
		}

		issues = append(issues, c.convertIssues(page.Issues)...)

		startAt += len(page.Issues)
		if startAt >= page.Total || len(page.Issues) == 0 {
			break
		}
	}

	log.WithFields(log.Fields{
		"project": c.project,
		"count":   len(issues),
	}).Info("fetched unassigned issues")

	return issues, nil
}

func (c *jiraClient) fetchPage(ctx context.Context, jql string, startAt int) (*searchResponse, error) {
	var page searchResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"jql":        jql,
			"fields":     searchFields,
			"startAt":    strconv.Itoa(startAt),
			"maxResults": strconv.Itoa(c.pageSize),
		}).
		SetResult(&page).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("%w: searching issues: %v", domain.ErrFetch, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: search returned %s", domain.ErrFetch, resp.Status())
	}

	return &page, nil
}

func (c *jiraClient) convertIssues(items []searchIssue) []domain.Issue {
	issues := make([]domain.Issue, 0, len(items))
	for _, item := range items {
		issues = append(issues, domain.Issue{
			Key:           item.Key,
			Summary:       item.Fields.Summary,
			Priority:      item.Fields.Priority.Name,
			Reporter:      item.Fields.Reporter.DisplayName,
			Organizations: organizationNames(item.Fields.Organizations),
			Description:   item.Fields.Description,
			Link:          browseURL(c.ticketBase, item.Key),
		})
	}
	return issues
}

func organizationNames(orgs []namedField) []string {
	names := make([]string, 0, len(orgs))
	for _, org := range orgs {
		names = append(names, org.Name)
	}
	return names
}

func browseURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
