// Copyright (c) 2026 FeeFlow. All rights reserved.

package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feeflow/portal/internal/platform/backend"
	"github.com/feeflow/portal/internal/platform/backend/backendtest"
	"github.com/feeflow/portal/internal/roster"
)

func newClient(t *testing.T, fake *backendtest.Backend) *roster.Client {
	t.Helper()
	return roster.NewClient(backend.New(fake.URL(), nil), nil)
}

func TestClient_List(t *testing.T) {
	fake := backendtest.New(t)
	fake.StudentsBody = []map[string]any{
		{"id": 1, "email": "aditi.sharma@example.com", "firstName": "Aditi", "lastName": "Sharma",
			"course": "Computer Science Engineering", "academicYear": "2021-2025"},
		{"id": 2, "email": "rahul.desai@example.com", "firstName": "Rahul", "lastName": "Desai",
			"course": "Business Administration", "academicYear": "2023-2027"},
	}

	students, err := newClient(t, fake).List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, int64(1), students[0].ID)
	assert.Equal(t, "aditi.sharma@example.com", students[0].Email)
	assert.Equal(t, "Business Administration", students[1].Course)
}

func TestClient_ListNonArrayResponseMeansNoStudents(t *testing.T) {
	fake := backendtest.New(t)
	fake.StudentsBody = map[string]any{"status": 404, "message": "none"}

	students, err := newClient(t, fake).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestClient_Get(t *testing.T) {
	fake := backendtest.New(t)
	fake.StudentBody = map[string]any{
		"id": 3, "email": "sofia.fernandes@example.com", "firstName": "Sofia", "lastName": "Fernandes",
		"course": "Fine Arts", "academicYear": "2022-2026",
	}

	student, err := newClient(t, fake).Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), student.ID)
	assert.Equal(t, "Sofia", student.FirstName)
}

func TestClient_GetBackendFailure(t *testing.T) {
	fake := backendtest.New(t)
	fake.StudentStatus = 404
	fake.StudentBody = map[string]any{"message": "Student not found."}

	_, err := newClient(t, fake).Get(context.Background(), 99)
	assert.Error(t, err)
}

func TestClient_ListBackendFailure(t *testing.T) {
	fake := backendtest.New(t)
	fake.StudentsStatus = 500

	_, err := newClient(t, fake).List(context.Background())
	assert.Error(t, err)
}
