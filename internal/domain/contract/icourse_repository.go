package contract

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// ICourseRepository persists courses together with their embedded lectures.
type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *entity.Course) error
	GetCourseByID(ctx context.Context, id string) (*entity.Course, error)
	// ListCourses returns every course with the lectures field left out.
	ListCourses(ctx context.Context) ([]entity.Course, error)
	// SaveCourse replaces the stored document with course.
	SaveCourse(ctx context.Context, course *entity.Course) error
	DeleteCourse(ctx context.Context, id string) error
}
