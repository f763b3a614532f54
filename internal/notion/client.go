// Package notion fetches the task database through the hosted proxy worker.
// The proxy returns the raw Notion query payload; every property path is
// optional, so extraction falls back to empty values instead of failing on a
// malformed page.
package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bnjuguna/momentum/internal/task"
)

// DefaultSourceURL is the hosted proxy in front of the Notion database.
const DefaultSourceURL = "https://notion-proxy.njugunabriian-dev.workers.dev"

// Source is the upstream task provider the dashboard reads from.
type Source interface {
	FetchTasks(ctx context.Context) ([]task.Task, error)
}

// Client fetches tasks from the proxy endpoint.
type Client struct {
	HTTP      *http.Client
	SourceURL string
}

func NewClient(sourceURL string) *Client {
	if sourceURL == "" {
		sourceURL = DefaultSourceURL
	}
	return &Client{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		SourceURL: sourceURL,
	}
}

type queryResponse struct {
	Results []page `json:"results"`
}

type page struct {
	ID         string     `json:"id"`
	Properties properties `json:"properties"`
}

// properties mirrors the Notion page property shapes we read. Pointer fields
// make missing paths decode to nil rather than erroring out.
type properties struct {
	Task          *titleProp    `json:"Task"`
	Category      *selectProp   `json:"Category"`
	CompletedDate *dateProp     `json:"Completed Date"`
	DueDate       *dateProp     `json:"Due Date"`
	Priority      *selectProp   `json:"Priority"`
	Status        *statusProp   `json:"Status"`
	FocusMode     *checkboxProp `json:"Focus Mode"`
}

type titleProp struct {
	Title []struct {
		PlainText string `json:"plain_text"`
	} `json:"title"`
}

type selectProp struct {
	Select *named `json:"select"`
}

type statusProp struct {
	Status *named `json:"status"`
}

type named struct {
	Name string `json:"name"`
}

type dateProp struct {
	Date *struct {
		Start string `json:"start"`
	} `json:"date"`
}

type checkboxProp struct {
	Checkbox bool `json:"checkbox"`
}

func (p *titleProp) text() string {
	if p == nil || len(p.Title) == 0 {
		return ""
	}
	return p.Title[0].PlainText
}

func (p *selectProp) name() string {
	if p == nil || p.Select == nil {
		return ""
	}
	return p.Select.Name
}

func (p *statusProp) name() string {
	if p == nil || p.Status == nil {
		return ""
	}
	return p.Status.Name
}

func (p *dateProp) start() string {
	if p == nil || p.Date == nil {
		return ""
	}
	return p.Date.Start
}

func (p *checkboxProp) checked() bool {
	return p != nil && p.Checkbox
}

// FetchTasks performs one best-effort GET against the proxy. On any network,
// status, or decode failure it returns a nil list and the error; the caller
// decides whether to fall back to a cached snapshot or an empty list.
func (c *Client) FetchTasks(ctx context.Context) ([]task.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SourceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch tasks: unexpected status %d", resp.StatusCode)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	tasks := make([]task.Task, 0, len(qr.Results))
	for _, pg := range qr.Results {
		tasks = append(tasks, task.Task{
			ID:            pg.ID,
			Name:          pg.Properties.Task.text(),
			Category:      pg.Properties.Category.name(),
			CompletedDate: pg.Properties.CompletedDate.start(),
			DueDate:       pg.Properties.DueDate.start(),
			Priority:      pg.Properties.Priority.name(),
			Status:        pg.Properties.Status.name(),
			FocusMode:     pg.Properties.FocusMode.checked(),
		})
	}
	return tasks, nil
}
