// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package roster provides read-only access to the student roster.

The roster is owned by the backend; this client only queries it, primarily to
bind a signed-in principal to a student record during landing resolution.
Business validation of roster data is the backend's job and is not repeated
here.
*/
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/feeflow/portal/internal/platform/backend"
	"github.com/feeflow/portal/internal/platform/constants"
)

// Student is a roster entry as the backend reports it.
type Student struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Course       string `json:"course"`
	AcademicYear string `json:"academicYear"`
}

// Client queries the roster endpoints through the shared backend client.
type Client struct {
	api    *backend.Client
	logger *slog.Logger
}

// NewClient constructs a roster [Client].
func NewClient(api *backend.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		api:    api,
		logger: logger.With(slog.String("component", "roster")),
	}
}

// List returns all roster entries. A non-array response body is treated as
// "no students", not as an error.
func (c *Client) List(ctx context.Context) ([]Student, error) {
	var raw json.RawMessage
	if err := c.api.GetJSON(ctx, constants.PathStudents, &raw); err != nil {
		return nil, err
	}

	var students []Student
	if err := json.Unmarshal(raw, &students); err != nil {
		c.logger.Warn("roster_non_array_response_treated_as_empty")
		return nil, nil
	}
	return students, nil
}

// Get returns one roster entry by id.
func (c *Client) Get(ctx context.Context, id int64) (*Student, error) {
	var student Student
	path := fmt.Sprintf("%s/%d", constants.PathStudents, id)
	if err := c.api.GetJSON(ctx, path, &student); err != nil {
		return nil, err
	}
	return &student, nil
}
