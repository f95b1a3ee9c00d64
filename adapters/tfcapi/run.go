package tfcapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/tfcops/tfcops/domain/model"
)

type runCreateAttributes struct {
	IsDestroy bool   `json:"is-destroy"`
	Message   string `json:"message"`
}

type runAttributes struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RunCreate creates a run against the workspace's latest configuration version.
func (c *Client) RunCreate(ctx context.Context, workspace *model.Workspace, opts ...model.RunCreateOption) (*model.Run, error) {
	var o model.RunCreateOptions
	for _, opt := range opts {
		opt(&o)
	}
	body := &requestDocument{Data: requestResource{
		Type:       "runs",
		Attributes: runCreateAttributes{IsDestroy: o.Destroy, Message: o.Message},
		Relationships: map[string]relationship{
			"workspace": {Data: resourceIdentifier{Type: "workspaces", ID: workspace.ID}},
		},
	}}
	res, err := c.post(ctx, "/runs", body)
	if err != nil {
		return nil, err
	}
	if res == nil || res.ID == "" {
		return nil, model.ErrRunMissing
	}
	return decodeRun(res)
}

// RunGet fetches the current state of a run.
func (c *Client) RunGet(ctx context.Context, id string) (*model.Run, error) {
	res, err := c.get(ctx, "/runs/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if res == nil || res.ID == "" {
		return nil, model.ErrRunMissing
	}
	return decodeRun(res)
}

func decodeRun(res *resource) (*model.Run, error) {
	var attrs runAttributes
	if len(res.Attributes) > 0 {
		if err := json.Unmarshal(res.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("failed to decode run attributes: %w", err)
		}
	}
	return &model.Run{
		ID:      res.ID,
		Status:  model.RunStatus(attrs.Status),
		Message: attrs.Message,
	}, nil
}

var _ model.RunPort = (*Client)(nil)
