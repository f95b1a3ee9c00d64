package tfcapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tfcops/tfcops/domain/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(&Options{Address: srv.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"", "https://app.terraform.io/api/v2"},
		{"tfe.example.com", "https://tfe.example.com/api/v2"},
		{"http://127.0.0.1:8080", "http://127.0.0.1:8080/api/v2"},
		{"https://tfe.example.com/", "https://tfe.example.com/api/v2"},
	}
	for _, tt := range tests {
		u, err := parseBaseURL(tt.address)
		if err != nil {
			t.Fatalf("parseBaseURL(%q) returned error: %v", tt.address, err)
		}
		if u.String() != tt.want {
			t.Errorf("parseBaseURL(%q) = %s, want %s", tt.address, u, tt.want)
		}
	}
}

func TestNewRequiresToken(t *testing.T) {
	if _, err := New(&Options{Address: "tfe.example.com"}); err == nil {
		t.Fatalf("expected error for missing token, got nil")
	}
}

func TestWorkspaceGet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/v2/organizations/acme/workspaces/prod" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/vnd.api+json" {
			t.Errorf("unexpected Content-Type %q", got)
		}
		io.WriteString(w, `{"data":{"id":"ws-1","type":"workspaces","attributes":{"name":"prod"}}}`)
	})

	ws, err := c.WorkspaceGet(context.Background(), "acme", "prod")
	if err != nil {
		t.Fatalf("WorkspaceGet returned error: %v", err)
	}
	if ws.ID != "ws-1" || ws.Name != "prod" || ws.Organization != "acme" {
		t.Errorf("unexpected workspace: %+v", ws)
	}
}

func TestWorkspaceGetNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":null}`)
	})

	if _, err := c.WorkspaceGet(context.Background(), "acme", "prod"); !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Fatalf("expected ErrWorkspaceNotFound, got %v", err)
	}
}

func TestWorkspaceGetAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"errors":[{"status":"404","title":"not found"}]}`)
	})

	_, err := c.WorkspaceGet(context.Background(), "acme", "prod")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("unexpected status code %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "not found") {
		t.Errorf("error message %q does not contain the error title", apiErr.Error())
	}
}

func TestConfigVersionCreate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/v2/workspaces/ws-1/configuration-versions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Data struct {
				Type       string `json:"type"`
				Attributes struct {
					AutoQueueRuns bool `json:"auto-queue-runs"`
				} `json:"attributes"`
			} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Data.Type != "configuration-versions" {
			t.Errorf("unexpected resource type %q", req.Data.Type)
		}
		if req.Data.Attributes.AutoQueueRuns {
			t.Errorf("auto-queue-runs should default to false")
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"data":{"id":"cv-1","type":"configuration-versions","attributes":{"status":"pending","upload-url":"https://up.example.com/archive"}}}`)
	})

	cv, err := c.ConfigVersionCreate(context.Background(), &model.Workspace{ID: "ws-1"})
	if err != nil {
		t.Fatalf("ConfigVersionCreate returned error: %v", err)
	}
	if cv.ID != "cv-1" {
		t.Errorf("unexpected id %q", cv.ID)
	}
	if cv.UploadURL != "https://up.example.com/archive" {
		t.Errorf("unexpected upload URL %q", cv.UploadURL)
	}
	if cv.Status != model.ConfigVersionStatusPending {
		t.Errorf("unexpected status %q", cv.Status)
	}
}

func TestConfigVersionCreateNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":null}`)
	})

	_, err := c.ConfigVersionCreate(context.Background(), &model.Workspace{ID: "ws-1"})
	if !errors.Is(err, model.ErrConfigVersionMissing) {
		t.Fatalf("expected ErrConfigVersionMissing, got %v", err)
	}
}

func TestConfigVersionGet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/configuration-versions/cv-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"data":{"id":"cv-1","type":"configuration-versions","attributes":{"status":"uploaded"}}}`)
	})

	cv, err := c.ConfigVersionGet(context.Background(), "cv-1")
	if err != nil {
		t.Fatalf("ConfigVersionGet returned error: %v", err)
	}
	if !cv.Status.Uploaded() {
		t.Errorf("unexpected status %q", cv.Status)
	}
}

func TestConfigVersionUpload(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/octet-stream" {
			t.Errorf("unexpected Content-Type %q", got)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := New(&Options{Address: srv.URL, Token: "test-token"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := c.ConfigVersionUpload(context.Background(), srv.URL+"/upload/cv-1", strings.NewReader("archive-bytes")); err != nil {
		t.Fatalf("ConfigVersionUpload returned error: %v", err)
	}
	if string(gotBody) != "archive-bytes" {
		t.Errorf("unexpected upload body %q", gotBody)
	}
}

func TestRunCreate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v2/runs" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Data struct {
				Type       string `json:"type"`
				Attributes struct {
					IsDestroy bool   `json:"is-destroy"`
					Message   string `json:"message"`
				} `json:"attributes"`
				Relationships struct {
					Workspace struct {
						Data struct {
							Type string `json:"type"`
							ID   string `json:"id"`
						} `json:"data"`
					} `json:"workspace"`
				} `json:"relationships"`
			} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Data.Type != "runs" {
			t.Errorf("unexpected resource type %q", req.Data.Type)
		}
		if req.Data.Attributes.IsDestroy {
			t.Errorf("is-destroy should default to false")
		}
		if req.Data.Attributes.Message != "tfcops (abc123)" {
			t.Errorf("unexpected message %q", req.Data.Attributes.Message)
		}
		if req.Data.Relationships.Workspace.Data.ID != "ws-1" || req.Data.Relationships.Workspace.Data.Type != "workspaces" {
			t.Errorf("unexpected workspace relationship %+v", req.Data.Relationships.Workspace.Data)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"data":{"id":"run-1","type":"runs","attributes":{"status":"pending","message":"tfcops (abc123)"}}}`)
	})

	run, err := c.RunCreate(context.Background(), &model.Workspace{ID: "ws-1"}, model.WithRunMessage("tfcops (abc123)"))
	if err != nil {
		t.Fatalf("RunCreate returned error: %v", err)
	}
	if run.ID != "run-1" || run.Status != model.RunStatusPending {
		t.Errorf("unexpected run: %+v", run)
	}
}

func TestRunCreateErrorList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"errors":[{"status":"422","title":"invalid attribute","detail":"Workspace is locked"}]}`)
	})

	_, err := c.RunCreate(context.Background(), &model.Workspace{ID: "ws-1"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Workspace is locked") {
		t.Errorf("error message %q does not contain the API error detail", err.Error())
	}
}

func TestRunGet(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/runs/run-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"data":{"id":"run-1","type":"runs","attributes":{"status":"applied"}}}`)
	})

	run, err := c.RunGet(context.Background(), "run-1")
	if err != nil {
		t.Fatalf("RunGet returned error: %v", err)
	}
	if run.Status != model.RunStatusApplied {
		t.Errorf("unexpected status %q", run.Status)
	}
}
