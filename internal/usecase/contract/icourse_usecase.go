package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// CreateCourseInput carries the required fields of a new course.
type CreateCourseInput struct {
	Title       string
	Description string
	Category    string
	CreatedBy   string
}

// CourseUpdate lists the only fields a course update may change.
type CourseUpdate struct {
	Title       *string
	Description *string
	Category    *string
}

// ICourseUseCase defines course and lecture management.
type ICourseUseCase interface {
	ListCourses(ctx context.Context) ([]entity.Course, error)
	GetLectures(ctx context.Context, courseID string) ([]entity.Lecture, error)
	CreateCourse(ctx context.Context, in CreateCourseInput, thumbnail *entity.StagedFile) (*entity.Course, error)
	UpdateCourse(ctx context.Context, courseID string, update CourseUpdate, thumbnail *entity.StagedFile) (*entity.Course, error)
	RemoveCourse(ctx context.Context, courseID string) error
	AddLecture(ctx context.Context, courseID, title, description string, video *entity.StagedFile) (*entity.Course, error)
	RemoveLecture(ctx context.Context, courseID, lectureID string) error
}
