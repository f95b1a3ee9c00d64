package tfcapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tfcops/tfcops/domain/model"
)

type configVersionCreateAttributes struct {
	AutoQueueRuns bool `json:"auto-queue-runs"`
	Speculative   bool `json:"speculative,omitempty"`
}

type configVersionAttributes struct {
	Status    string `json:"status"`
	UploadURL string `json:"upload-url"`
}

// ConfigVersionCreate creates a configuration version for a workspace.
// Auto-queueing is off unless explicitly requested; the caller decides when
// a run starts, independent of upload completion.
func (c *Client) ConfigVersionCreate(ctx context.Context, workspace *model.Workspace, opts ...model.ConfigVersionCreateOption) (*model.ConfigurationVersion, error) {
	var o model.ConfigVersionCreateOptions
	for _, opt := range opts {
		opt(&o)
	}
	body := &requestDocument{Data: requestResource{
		Type: "configuration-versions",
		Attributes: configVersionCreateAttributes{
			AutoQueueRuns: o.AutoQueueRuns,
			Speculative:   o.Speculative,
		},
	}}
	res, err := c.post(ctx, "/workspaces/"+url.PathEscape(workspace.ID)+"/configuration-versions", body)
	if err != nil {
		return nil, err
	}
	if res == nil || res.ID == "" {
		return nil, model.ErrConfigVersionMissing
	}
	return decodeConfigVersion(res)
}

// ConfigVersionGet fetches the current state of a configuration version.
func (c *Client) ConfigVersionGet(ctx context.Context, id string) (*model.ConfigurationVersion, error) {
	res, err := c.get(ctx, "/configuration-versions/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if res == nil || res.ID == "" {
		return nil, model.ErrConfigVersionMissing
	}
	return decodeConfigVersion(res)
}

// ConfigVersionUpload PUTs the raw archive bytes to the pre-signed upload URL.
// The platform expects an opaque octet stream here, not a JSON:API envelope.
func (c *Client) ConfigVersionUpload(ctx context.Context, uploadURL string, content io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, content)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkError(resp)
}

func decodeConfigVersion(res *resource) (*model.ConfigurationVersion, error) {
	var attrs configVersionAttributes
	if len(res.Attributes) > 0 {
		if err := json.Unmarshal(res.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("failed to decode configuration version attributes: %w", err)
		}
	}
	return &model.ConfigurationVersion{
		ID:        res.ID,
		Status:    model.ConfigVersionStatus(attrs.Status),
		UploadURL: attrs.UploadURL,
	}, nil
}

var _ model.ConfigurationVersionPort = (*Client)(nil)
