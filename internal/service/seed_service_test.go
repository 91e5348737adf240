package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newSeedServiceForTest(t *testing.T, enabled bool, token string) (*seedService, *memoryCourseRepo, *memoryAssignmentRepo, *stubInvalidator) {
	t.Helper()

	courses := newMemoryCourseRepo()
	assignments := newMemoryAssignmentRepo()
	cache := &stubInvalidator{}

	svc := NewSeedService(courses, assignments, enabled, token, cache, testLogger()).(*seedService)
	svc.now = func() time.Time { return monday }
	return svc, courses, assignments, cache
}

func TestSeedServiceDisabled(t *testing.T) {
	svc, _, _, _ := newSeedServiceForTest(t, false, "hunter2")

	_, err := svc.SeedDemo(context.Background(), "hunter2")
	require.ErrorIs(t, err, ErrSeedDisabled)
}

func TestSeedServiceRejectsBadToken(t *testing.T) {
	svc, courses, _, cache := newSeedServiceForTest(t, true, "hunter2")

	_, err := svc.SeedDemo(context.Background(), "wrong")
	require.ErrorIs(t, err, ErrSeedUnauthorized)

	_, err = svc.SeedDemo(context.Background(), "")
	require.ErrorIs(t, err, ErrSeedUnauthorized)

	listed, err := courses.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, listed)
	require.Zero(t, cache.calls)
}

func TestSeedServiceRejectsEmptyConfiguredToken(t *testing.T) {
	svc, _, _, _ := newSeedServiceForTest(t, true, "   ")

	_, err := svc.SeedDemo(context.Background(), "")
	require.ErrorIs(t, err, ErrSeedUnauthorized)
}

func TestSeedServiceLoadsDemoData(t *testing.T) {
	svc, courses, assignments, cache := newSeedServiceForTest(t, true, "hunter2")

	created, err := svc.SeedDemo(context.Background(), "hunter2")
	require.NoError(t, err)
	require.Equal(t, 6, created)

	listed, err := courses.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, course := range listed {
		require.Len(t, course.Weeks, defaultTotalWeeks)
	}

	// Linear Algebra is checked off through week 8.
	require.Equal(t, "Linear Algebra", listed[0].Name)
	require.True(t, listed[0].Weeks[7].LectureDone)
	require.False(t, listed[0].Weeks[8].LectureDone)

	pending, err := assignments.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 3)
	for _, assignment := range pending {
		require.Contains(t, []string{listed[0].ID, listed[1].ID, listed[2].ID}, assignment.CourseID)
		require.False(t, assignment.Complete)
	}

	require.Equal(t, 1, cache.calls)
}

func TestSeedServiceTrimsTokenWhitespace(t *testing.T) {
	svc, _, _, _ := newSeedServiceForTest(t, true, "hunter2")

	created, err := svc.SeedDemo(context.Background(), "  hunter2\n")
	require.NoError(t, err)
	require.Equal(t, 6, created)
}
