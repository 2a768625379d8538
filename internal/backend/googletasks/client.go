// Package googletasks implements the storage.Store interface by mirroring
// the task list to a dedicated Google Tasks list.
//
// Each local task becomes one remote task: title carries the description,
// the remote status mirrors the done flag, and the notes field holds the
// serialized record so variants, dates and raw-text fallbacks round-trip
// losslessly. Save clears the remote list and re-creates it, preserving the
// whole-list overwrite semantics of the local backends.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasksapi "google.golang.org/api/tasks/v1"
	"gopkg.in/yaml.v3"

	"taskbot/internal/config"
	"taskbot/internal/storage"
	"taskbot/internal/task"
)

const (
	// ListTitle is the dedicated remote list holding the mirror.
	ListTitle = "taskbot"

	// OAuth scope for Google Tasks
	tasksScope = "https://www.googleapis.com/auth/tasks"

	// Timeouts for whole Save/Load operations, which may span several
	// API calls.
	saveTimeout = 60 * time.Second
	loadTimeout = 30 * time.Second
)

// Client implements storage.Store using the Google Tasks API.
type Client struct {
	svc    *tasksapi.Service
	listID string
}

// New creates a Google Tasks client. Requires oauth_client.json and
// token.json in the config dir (type 'login' to obtain the token). The
// dedicated remote list is created on first use.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json (type 'login' first): %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source auto-refreshes using the stored refresh token.
	tokenSource := oauthConfig.TokenSource(ctx, &token)
	httpClient := oauth2.NewClient(ctx, tokenSource)

	svc, err := tasksapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	c := &Client{svc: svc}
	if err := c.ensureList(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// ensureList resolves the dedicated list by title, creating it if needed.
func (c *Client) ensureList(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	var found string
	err := c.svc.Tasklists.List().MaxResults(100).Pages(ctx, func(resp *tasksapi.TaskLists) error {
		for _, list := range resp.Items {
			if list.Title == ListTitle {
				found = list.Id
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return wrapError(err)
	}

	if found == "" {
		list, err := c.svc.Tasklists.Insert(&tasksapi.TaskList{Title: ListTitle}).Context(ctx).Do()
		if err != nil {
			return wrapError(err)
		}
		found = list.Id
	}

	c.listID = found
	return nil
}

// Save implements storage.Store.
func (c *Client) Save(ctx context.Context, tasks []task.Task) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	// Clear the remote list.
	var remoteIDs []string
	err := c.svc.Tasks.List(c.listID).
		MaxResults(100).
		ShowCompleted(true).
		ShowHidden(true).
		Pages(ctx, func(resp *tasksapi.Tasks) error {
			for _, item := range resp.Items {
				remoteIDs = append(remoteIDs, item.Id)
			}
			return nil
		})
	if err != nil {
		return wrapError(err)
	}
	for _, id := range remoteIDs {
		if err := c.svc.Tasks.Delete(c.listID, id).Context(ctx).Do(); err != nil {
			return wrapError(err)
		}
	}

	// Inserts land at the top of the remote list, so walk the local list
	// backwards to end up with matching order.
	for i := len(tasks) - 1; i >= 0; i-- {
		remote, err := encodeRemote(tasks[i])
		if err != nil {
			return err
		}
		if _, err := c.svc.Tasks.Insert(c.listID, remote).Context(ctx).Do(); err != nil {
			return wrapError(err)
		}
	}
	return nil
}

// Load implements storage.Store. Remote items without a decodable record
// (not created by taskbot) are skipped.
func (c *Client) Load(ctx context.Context) ([]task.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	var result []task.Task
	err := c.svc.Tasks.List(c.listID).
		MaxResults(100).
		ShowCompleted(true).
		ShowHidden(true).
		Pages(ctx, func(resp *tasksapi.Tasks) error {
			for _, item := range resp.Items {
				if item.Notes == "" {
					continue
				}
				record, err := decodeNotes(item.Notes)
				if err != nil {
					continue
				}
				t, err := storage.DecodeTask(record)
				if err != nil {
					return err
				}
				result = append(result, t)
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// Close implements storage.Store.
func (c *Client) Close() error { return nil }

// encodeRemote builds the remote representation of a local task.
func encodeRemote(t task.Task) (*tasksapi.Task, error) {
	record := storage.EncodeTask(t)
	notes, err := encodeNotes(record)
	if err != nil {
		return nil, err
	}
	remote := &tasksapi.Task{
		Title:  t.Description(),
		Notes:  notes,
		Status: "needsAction",
	}
	if t.Done() {
		remote.Status = "completed"
	}
	return remote, nil
}

// encodeNotes serializes a record into the remote notes field.
func encodeNotes(r storage.Record) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode task record: %w", err)
	}
	return string(data), nil
}

// decodeNotes parses a remote notes field back into a record.
func decodeNotes(notes string) (storage.Record, error) {
	var r storage.Record
	if err := yaml.Unmarshal([]byte(notes), &r); err != nil {
		return storage.Record{}, fmt.Errorf("decode task record: %w", err)
	}
	if r.Type == "" {
		return storage.Record{}, fmt.Errorf("notes carry no task record")
	}
	return r, nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("token expired or revoked (type 'login' to re-authenticate)")
	}
	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}

	return err
}
