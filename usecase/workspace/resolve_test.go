package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/tfcops/tfcops/domain/model"
)

type fakeWorkspacePort struct {
	ws    *model.Workspace
	err   error
	calls int
}

func (f *fakeWorkspacePort) WorkspaceGet(ctx context.Context, organization, name string) (*model.Workspace, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ws, nil
}

func TestResolve(t *testing.T) {
	port := &fakeWorkspacePort{ws: &model.Workspace{ID: "ws-1", Name: "prod", Organization: "acme"}}
	u := &UseCase{Ports: &Ports{Workspace: port}}

	out, err := u.Resolve(context.Background(), &ResolveInput{Organization: "acme", Name: "prod"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Workspace.ID != "ws-1" {
		t.Errorf("unexpected workspace id %q", out.Workspace.ID)
	}
	if port.calls != 1 {
		t.Errorf("expected 1 port call, got %d", port.calls)
	}
}

func TestResolveNameWithSpace(t *testing.T) {
	port := &fakeWorkspacePort{}
	u := &UseCase{Ports: &Ports{Workspace: port}}

	_, err := u.Resolve(context.Background(), &ResolveInput{Organization: "acme", Name: "my workspace"})
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}
	if !errors.Is(err, model.ErrWorkspaceInvalid) {
		t.Errorf("expected ErrWorkspaceInvalid, got %v", err)
	}
	if port.calls != 0 {
		t.Errorf("expected no port calls for invalid name, got %d", port.calls)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	u := &UseCase{Ports: &Ports{Workspace: &fakeWorkspacePort{}}}

	if _, err := u.Resolve(context.Background(), nil); !errors.Is(err, model.ErrWorkspaceInvalid) {
		t.Errorf("expected ErrWorkspaceInvalid for nil input, got %v", err)
	}
	if _, err := u.Resolve(context.Background(), &ResolveInput{Organization: "acme"}); !errors.Is(err, model.ErrWorkspaceInvalid) {
		t.Errorf("expected ErrWorkspaceInvalid for empty name, got %v", err)
	}
}

func TestResolveNotFound(t *testing.T) {
	port := &fakeWorkspacePort{err: model.ErrWorkspaceNotFound}
	u := &UseCase{Ports: &Ports{Workspace: port}}

	_, err := u.Resolve(context.Background(), &ResolveInput{Organization: "acme", Name: "missing"})
	if !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Fatalf("expected ErrWorkspaceNotFound, got %v", err)
	}
}
