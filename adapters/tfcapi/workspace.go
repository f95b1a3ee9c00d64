package tfcapi

import (
	"context"
	"net/url"

	"github.com/tfcops/tfcops/domain/model"
)

// WorkspaceGet looks up a workspace by organization and name.
func (c *Client) WorkspaceGet(ctx context.Context, organization, name string) (*model.Workspace, error) {
	path := "/organizations/" + url.PathEscape(organization) + "/workspaces/" + url.PathEscape(name)
	res, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if res == nil || res.ID == "" {
		return nil, model.ErrWorkspaceNotFound
	}
	return &model.Workspace{ID: res.ID, Name: name, Organization: organization}, nil
}

var _ model.WorkspacePort = (*Client)(nil)
