// Copyright (c) 2026 FeeFlow. All rights reserved.

// Package backendtest provides a configurable fake fee-management backend for
// the portal test suites.
//
// The fake speaks the same three endpoints the portal consumes (login,
// change-password, students) and records every request it sees, so tests can
// assert both behavior ("which screen did we land on") and traffic ("no
// network call was made").
package backendtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Backend is a fake fee-management API server.
//
// Response fields may be changed between requests; zero values mean
// "status 200 with an empty JSON object" (or an empty array for students).
type Backend struct {
	mu sync.Mutex

	// LoginStatus / LoginBody shape the POST /auth/login response.
	LoginStatus int
	LoginBody   any

	// ChangeStatus / ChangeBody shape the POST /auth/change-password response.
	ChangeStatus int
	ChangeBody   any

	// StudentsStatus / StudentsBody shape the GET /students response.
	StudentsStatus int
	StudentsBody   any

	// StudentStatus / StudentBody shape the GET /students/{id} response.
	StudentStatus int
	StudentBody   any

	loginCalls    int
	changeCalls   int
	studentsCalls int

	lastLogin      map[string]any
	lastChange     map[string]any
	lastAuthHeader string

	server *httptest.Server
}

// New starts a fake backend and registers its shutdown with t.
func New(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{}
	router := chi.NewRouter()
	router.Post("/auth/login", b.handleLogin)
	router.Post("/auth/change-password", b.handleChangePassword)
	router.Get("/students", b.handleStudents)
	router.Get("/students/{studentID}", b.handleStudent)

	b.server = httptest.NewServer(router)
	t.Cleanup(b.server.Close)
	return b
}

// URL returns the fake backend's base URL.
func (b *Backend) URL() string { return b.server.URL }

// Close shuts the fake down early (for transport-failure tests).
func (b *Backend) Close() { b.server.Close() }

// # Recorded Traffic

// LoginCalls returns how many login requests were received.
func (b *Backend) LoginCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loginCalls
}

// ChangeCalls returns how many password-change requests were received.
func (b *Backend) ChangeCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.changeCalls
}

// StudentsCalls returns how many roster requests were received.
func (b *Backend) StudentsCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.studentsCalls
}

// LastLogin returns the most recent login request body.
func (b *Backend) LastLogin() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastLogin
}

// LastChange returns the most recent password-change request body.
func (b *Backend) LastChange() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastChange
}

// LastAuthHeader returns the Authorization header of the most recent request.
func (b *Backend) LastAuthHeader() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAuthHeader
}

// # Handlers

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.loginCalls++
	b.lastLogin = decodeBody(r)
	b.lastAuthHeader = r.Header.Get("Authorization")
	status, body := b.LoginStatus, b.LoginBody
	b.mu.Unlock()

	respond(w, status, body, map[string]any{})
}

func (b *Backend) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.changeCalls++
	b.lastChange = decodeBody(r)
	b.lastAuthHeader = r.Header.Get("Authorization")
	status, body := b.ChangeStatus, b.ChangeBody
	b.mu.Unlock()

	respond(w, status, body, map[string]any{})
}

func (b *Backend) handleStudents(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.studentsCalls++
	b.lastAuthHeader = r.Header.Get("Authorization")
	status, body := b.StudentsStatus, b.StudentsBody
	b.mu.Unlock()

	respond(w, status, body, []any{})
}

func (b *Backend) handleStudent(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.lastAuthHeader = r.Header.Get("Authorization")
	status, body := b.StudentStatus, b.StudentBody
	b.mu.Unlock()

	respond(w, status, body, map[string]any{})
}

func decodeBody(r *http.Request) map[string]any {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body
}

func respond(w http.ResponseWriter, status int, body, fallback any) {
	if status == 0 {
		status = http.StatusOK
	}
	if body == nil {
		body = fallback
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
