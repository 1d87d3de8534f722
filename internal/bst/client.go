package bst

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/step"
)

// RemoteOperationError is a non-success response from the collaborator.
// Message is the remote error field, unmodified.
type RemoteOperationError struct {
	Status  int
	Message string
}

func (e *RemoteOperationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bst service returned status %d", e.Status)
	}
	return e.Message
}

// Request is the collaborator request body.
type Request struct {
	Operation string `json:"operation" binding:"required,oneof=insert delete search"`
	Value     *int   `json:"value" binding:"required"`
	TreeState *Node  `json:"treeState"`
}

// Response is the collaborator success body.
type Response struct {
	Steps        step.Sequence `json:"steps"`
	NewTreeState *Node         `json:"newTreeState"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Client calls a remote BST collaborator and carries the tree snapshot
// between operations.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	tree    *Node
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Tree returns the snapshot returned by the last successful call.
func (c *Client) Tree() *Node { return c.tree }

// Reset forgets the carried tree.
func (c *Client) Reset() { c.tree = nil }

// Do sends one operation with the carried tree and, on success, replaces
// the carried tree with the response snapshot.
func (c *Client) Do(ctx context.Context, op Operation, value int) (step.Sequence, error) {
	body, err := json.Marshal(Request{Operation: string(op), Value: &value, TreeState: c.tree})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bst", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bst request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug("bst call", "operation", op, "value", value, "status", resp.StatusCode, "latency", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		return nil, &RemoteOperationError{Status: resp.StatusCode, Message: eb.Error}
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	c.tree = out.NewTreeState
	return out.Steps, nil
}
