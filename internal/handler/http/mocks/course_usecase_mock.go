package mocks

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// MockCourseUsecase keeps courses in a map and records the last call arguments.
type MockCourseUsecase struct {
	ShouldFailUpload bool

	Courses map[string]*entity.Course

	LastUpdate    usecasecontract.CourseUpdate
	LastThumbnail *entity.StagedFile
	LastVideo     *entity.StagedFile
}

var _ usecasecontract.ICourseUseCase = (*MockCourseUsecase)(nil)

func NewMockCourseUsecase() *MockCourseUsecase {
	return &MockCourseUsecase{
		Courses: map[string]*entity.Course{
			"course-1": {
				ID:          "course-1",
				Title:       "Go Basics",
				Description: "Learn Go",
				Category:    "programming",
				CreatedBy:   "admin",
				Lectures: []entity.Lecture{
					{ID: "lecture-1", Title: "Intro", Description: "Hello", Video: entity.Asset{PublicID: "lms/lectures/v1", SecureURL: "https://cdn/v1.mp4"}},
				},
				NumberOfLectures: 1,
			},
		},
	}
}

func (m *MockCourseUsecase) notFound() error {
	return apperror.NotFound("Invalid course id or course not found.")
}

func (m *MockCourseUsecase) ListCourses(ctx context.Context) ([]entity.Course, error) {
	out := make([]entity.Course, 0, len(m.Courses))
	for _, c := range m.Courses {
		listed := *c
		listed.Lectures = nil
		out = append(out, listed)
	}
	return out, nil
}

func (m *MockCourseUsecase) GetLectures(ctx context.Context, courseID string) ([]entity.Lecture, error) {
	c, ok := m.Courses[courseID]
	if !ok {
		return nil, m.notFound()
	}
	return c.Lectures, nil
}

func (m *MockCourseUsecase) CreateCourse(ctx context.Context, in usecasecontract.CreateCourseInput, thumbnail *entity.StagedFile) (*entity.Course, error) {
	m.LastThumbnail = thumbnail
	if in.Title == "" || in.Description == "" || in.Category == "" || in.CreatedBy == "" {
		return nil, apperror.Validation("All fields are required")
	}
	if thumbnail != nil && m.ShouldFailUpload {
		return nil, apperror.Upload("Thumbnail upload failed, please try again", nil)
	}
	c := &entity.Course{ID: "course-new", Title: in.Title, Description: in.Description, Category: in.Category, CreatedBy: in.CreatedBy}
	if thumbnail != nil {
		c.Thumbnail = &entity.Asset{PublicID: "lms/thumbnails/new", SecureURL: "https://cdn/new.png"}
	}
	m.Courses[c.ID] = c
	return c, nil
}

func (m *MockCourseUsecase) UpdateCourse(ctx context.Context, courseID string, update usecasecontract.CourseUpdate, thumbnail *entity.StagedFile) (*entity.Course, error) {
	m.LastUpdate = update
	m.LastThumbnail = thumbnail
	c, ok := m.Courses[courseID]
	if !ok {
		return nil, m.notFound()
	}
	if update.Title != nil {
		c.Title = *update.Title
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	if update.Category != nil {
		c.Category = *update.Category
	}
	return c, nil
}

func (m *MockCourseUsecase) RemoveCourse(ctx context.Context, courseID string) error {
	if _, ok := m.Courses[courseID]; !ok {
		return m.notFound()
	}
	delete(m.Courses, courseID)
	return nil
}

func (m *MockCourseUsecase) AddLecture(ctx context.Context, courseID, title, description string, video *entity.StagedFile) (*entity.Course, error) {
	m.LastVideo = video
	if title == "" || description == "" {
		return nil, apperror.Validation("Title and Description are required")
	}
	if video == nil {
		return nil, apperror.Validation("Lecture video is required")
	}
	c, ok := m.Courses[courseID]
	if !ok {
		return nil, m.notFound()
	}
	c.AddLecture(entity.Lecture{ID: "lecture-new", Title: title, Description: description, Video: entity.Asset{PublicID: "lms/lectures/new", SecureURL: "https://cdn/new.mp4"}})
	return c, nil
}

func (m *MockCourseUsecase) RemoveLecture(ctx context.Context, courseID, lectureID string) error {
	c, ok := m.Courses[courseID]
	if !ok {
		return m.notFound()
	}
	idx := c.LectureIndex(lectureID)
	if idx == -1 {
		return apperror.NotFound("Lecture not found.")
	}
	c.RemoveLecture(idx)
	return nil
}
