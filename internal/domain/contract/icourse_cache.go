package contract

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// ICourseCache caches the public course listing.
type ICourseCache interface {
	GetCourseList(ctx context.Context) ([]entity.Course, bool, error)
	SetCourseList(ctx context.Context, courses []entity.Course) error
	InvalidateCourseList(ctx context.Context) error
}
