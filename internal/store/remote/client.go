// Package remote implements the record store interfaces against the hosted
// record service. Each collection is a flat record API: filtered fetches,
// single-record gets, and batched create/update/delete calls that report
// per-record results. Identifiers travel as strings and timestamps as
// ISO-8601 at this boundary; conversion happens here and nowhere else.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"learnquest/internal/store"
)

// Client talks to the record service for one project
type Client struct {
	baseURL    string
	projectID  string
	publicKey  string
	httpClient *http.Client
}

// NewClient creates a record service client. The client is passed into the
// per-collection stores explicitly; nothing here is a process-wide
// singleton.
func NewClient(baseURL, projectID, publicKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		projectID:  projectID,
		publicKey:  publicKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Stores returns the store bundle backed by this client
func (c *Client) Stores() store.Stores {
	return store.Stores{
		Activities: &activityStore{c},
		Children:   &childStore{c},
		Levels:     &levelStore{c},
		Progress:   &progressStore{c},
		Questions:  &questionStore{c},
	}
}

// condition filters a fetch by one field
type condition struct {
	FieldName string   `json:"fieldName"`
	Operator  string   `json:"operator"`
	Values    []string `json:"values"`
}

// ordering sorts fetch results by one field
type ordering struct {
	FieldName string `json:"fieldName"`
	Direction string `json:"direction"` // "asc" or "desc"
}

// paging bounds fetch results
type paging struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// fetchParams is the body of a fetch call
type fetchParams struct {
	Where   []condition `json:"where,omitempty"`
	OrderBy []ordering  `json:"orderBy,omitempty"`
	Paging  *paging     `json:"paging,omitempty"`
}

// fetchResponse is the envelope of fetch and get calls
type fetchResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// recordResult is the per-record outcome of a write call
type recordResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// writeResponse is the envelope of create, update and delete calls
type writeResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Results []recordResult `json:"results"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Project-ID", c.projectID)
	req.Header.Set("X-Public-Key", c.publicKey)
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("record service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("record service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode record service response: %w", err)
	}

	return nil
}

// fetch runs a filtered list query against a collection. Failures are
// logged and degraded to an empty result; callers render an empty state
// instead of crashing, and nothing is retried automatically.
func (c *Client) fetch(ctx context.Context, collection string, params fetchParams, records interface{}) {
	var resp fetchResponse
	err := c.do(ctx, http.MethodPost, "/records/"+collection+"/fetch", params, &resp)
	if err != nil {
		log.Printf("Error fetching %s records: %v", collection, err)
		return
	}
	if !resp.Success {
		log.Printf("Record service rejected %s fetch: %s", collection, resp.Message)
		return
	}
	if len(resp.Data) == 0 {
		return
	}
	if err := json.Unmarshal(resp.Data, records); err != nil {
		log.Printf("Error decoding %s records: %v", collection, err)
	}
}

// getByID fetches a single record. A missing record is store.ErrNotFound;
// an unreachable service is store.ErrUnavailable.
func (c *Client) getByID(ctx context.Context, collection, id string, record interface{}) error {
	var resp fetchResponse
	err := c.do(ctx, http.MethodGet, "/records/"+collection+"/"+id, nil, &resp)
	if err != nil {
		log.Printf("Error fetching %s record %s: %v", collection, id, err)
		return store.ErrUnavailable
	}
	if !resp.Success || len(resp.Data) == 0 {
		return store.ErrNotFound
	}
	if err := json.Unmarshal(resp.Data, record); err != nil {
		log.Printf("Error decoding %s record %s: %v", collection, id, err)
		return store.ErrUnavailable
	}
	return nil
}

// write submits a single-record create or update and unwraps the
// per-record result. A rejected record surfaces its field errors as a
// *store.ValidationError.
func (c *Client) write(ctx context.Context, method, collection string, record, out interface{}) error {
	body := map[string]interface{}{"records": []interface{}{record}}

	var resp writeResponse
	if err := c.do(ctx, method, "/records/"+collection, body, &resp); err != nil {
		log.Printf("Error writing %s record: %v", collection, err)
		return store.ErrUnavailable
	}
	if !resp.Success {
		log.Printf("Record service rejected %s write: %s", collection, resp.Message)
		return store.ErrUnavailable
	}

	for _, result := range resp.Results {
		if !result.Success {
			verr := &store.ValidationError{}
			for _, fe := range result.Errors {
				verr.Fields = append(verr.Fields, store.FieldError{Field: fe.Field, Message: fe.Message})
			}
			log.Printf("Record service rejected %s record: %s", collection, verr.Error())
			return verr
		}
		if err := json.Unmarshal(result.Data, out); err != nil {
			log.Printf("Error decoding written %s record: %v", collection, err)
			return store.ErrUnavailable
		}
		return nil
	}

	return store.ErrUnavailable
}

// deleteByID submits a single-record delete
func (c *Client) deleteByID(ctx context.Context, collection, id string) error {
	body := map[string]interface{}{"recordIds": []string{id}}

	var resp writeResponse
	if err := c.do(ctx, http.MethodDelete, "/records/"+collection, body, &resp); err != nil {
		log.Printf("Error deleting %s record %s: %v", collection, id, err)
		return store.ErrUnavailable
	}
	if !resp.Success {
		return store.ErrNotFound
	}
	for _, result := range resp.Results {
		if !result.Success {
			return store.ErrNotFound
		}
	}
	return nil
}
