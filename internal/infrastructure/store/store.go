package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

const courseListKey = "courses:list"

type CourseCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.ICourseCache = (*CourseCacheStore)(nil)

func NewCourseCacheStore(rdb *redis.Client, listTTL time.Duration) *CourseCacheStore {
	if listTTL <= 0 {
		listTTL = 30 * time.Minute
	}
	return &CourseCacheStore{rdb: rdb, listTTL: listTTL}
}

func (c *CourseCacheStore) GetCourseList(ctx context.Context) ([]entity.Course, bool, error) {
	b, err := c.rdb.Get(ctx, courseListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var courses []entity.Course
	if err := json.Unmarshal(b, &courses); err != nil {
		// a corrupt entry is a miss
		return nil, false, nil
	}
	return courses, true, nil
}

func (c *CourseCacheStore) SetCourseList(ctx context.Context, courses []entity.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, courseListKey, data, c.listTTL).Err()
}

func (c *CourseCacheStore) InvalidateCourseList(ctx context.Context) error {
	return c.rdb.Del(ctx, courseListKey).Err()
}
