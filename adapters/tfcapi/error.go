package tfcapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorObject is one entry of a JSON:API error list.
type ErrorObject struct {
	Status string `json:"status,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (e ErrorObject) String() string {
	s := e.Title
	if e.Detail != "" {
		if s != "" {
			s += ": "
		}
		s += e.Detail
	}
	if s == "" {
		s = e.Status
	}
	return s
}

// APIError reports a non-2xx API response. The decoded JSON:API error list
// is serialized into the message so callers surface the platform's reason.
type APIError struct {
	StatusCode int
	Errors     []ErrorObject
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, eo := range e.Errors {
		parts = append(parts, eo.String())
	}
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

type errorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

func checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var doc errorDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err == nil {
		apiErr.Errors = doc.Errors
	}
	return apiErr
}
