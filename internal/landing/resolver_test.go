// Copyright (c) 2026 FeeFlow. All rights reserved.

package landing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feeflow/portal/internal/landing"
	"github.com/feeflow/portal/internal/nav"
	"github.com/feeflow/portal/internal/nav/navtest"
	"github.com/feeflow/portal/internal/platform/backend"
	"github.com/feeflow/portal/internal/platform/backend/backendtest"
	"github.com/feeflow/portal/internal/roster"
)

func newResolver(t *testing.T, fake *backendtest.Backend) (*landing.Resolver, *navtest.Recorder) {
	t.Helper()
	recorder := &navtest.Recorder{}
	client := roster.NewClient(backend.New(fake.URL(), nil), nil)
	return landing.NewResolver(client, recorder, nil), recorder
}

func seedRoster(fake *backendtest.Backend) {
	fake.StudentsBody = []map[string]any{
		{"id": 7, "email": "Aditi.Sharma@Example.com", "firstName": "Aditi", "lastName": "Sharma"},
		{"id": 9, "email": "rahul.desai@example.com", "firstName": "Rahul", "lastName": "Desai"},
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  nav.Route
	}{
		{
			name:  "exact match lands on the student's detail screen",
			email: "rahul.desai@example.com",
			want:  nav.StudentRoute(9),
		},
		{
			name:  "match is case-insensitive on both sides",
			email: "ADITI.sharma@example.COM",
			want:  nav.StudentRoute(7),
		},
		{
			name:  "no matching record falls back to manual selection",
			email: "unknown@example.com",
			want:  nav.RouteStudentSelection,
		},
		{
			name:  "substring emails do not match",
			email: "rahul.desai@example.co",
			want:  nav.RouteStudentSelection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := backendtest.New(t)
			seedRoster(fake)
			resolver, recorder := newResolver(t, fake)

			got := resolver.Resolve(context.Background(), tt.email)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []nav.Route{tt.want}, recorder.Routes)
		})
	}
}

func TestResolver_ResolveRosterFailureDegradesToSelection(t *testing.T) {
	fake := backendtest.New(t)
	fake.StudentsStatus = 500
	resolver, recorder := newResolver(t, fake)

	got := resolver.Resolve(context.Background(), "aditi.sharma@example.com")

	assert.Equal(t, nav.RouteStudentSelection, got)
	assert.Equal(t, nav.RouteStudentSelection, recorder.Last())
}

func TestResolver_ResolveRosterUnreachableDegradesToSelection(t *testing.T) {
	fake := backendtest.New(t)
	resolver, recorder := newResolver(t, fake)
	fake.Close()

	got := resolver.Resolve(context.Background(), "aditi.sharma@example.com")

	assert.Equal(t, nav.RouteStudentSelection, got)
	assert.Equal(t, nav.RouteStudentSelection, recorder.Last())
}
