package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/cache"
)

func newTestStore(t *testing.T) *CourseCacheStore {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set; skipping redis cache tests")
	}
	rdb, err := cache.NewRedisFromURL(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close(rdb) })

	s := NewCourseCacheStore(rdb, time.Minute)
	require.NoError(t, s.InvalidateCourseList(context.Background()))
	return s
}

func TestCourseCacheStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.GetCourseList(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	courses := []entity.Course{{ID: "c1", Title: "Go", Description: "basics", Category: "dev", CreatedBy: "a", NumberOfLectures: 2}}
	require.NoError(t, s.SetCourseList(ctx, courses))

	got, ok, err := s.GetCourseList(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, 2, got[0].NumberOfLectures)

	require.NoError(t, s.InvalidateCourseList(ctx))
	_, ok, err = s.GetCourseList(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewCourseCacheStore_DefaultTTL(t *testing.T) {
	s := NewCourseCacheStore(nil, 0)
	assert.Equal(t, 30*time.Minute, s.listTTL)
}
