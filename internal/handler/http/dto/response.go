package dto

import (
	"time"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// AssetResponse is the DTO for a remotely stored file.
type AssetResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// UserResponse is the DTO for a user. It never carries the password.
type UserResponse struct {
	ID        string        `json:"id"`
	FullName  string        `json:"fullName"`
	Email     string        `json:"email"`
	Avatar    AssetResponse `json:"avatar"`
	Role      string        `json:"role"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// LectureResponse is the DTO for a lecture.
type LectureResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Lecture     AssetResponse `json:"lecture"`
}

// CourseResponse is the DTO for a course. Lectures are left out of listings.
type CourseResponse struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Category         string            `json:"category"`
	CreatedBy        string            `json:"createdBy"`
	Thumbnail        *AssetResponse    `json:"thumbnail,omitempty"`
	Lectures         []LectureResponse `json:"lectures,omitempty"`
	NumberOfLectures int               `json:"numberOfLectures"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

// MessageResponse is the bare success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserEnvelope wraps a user.
type UserEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// CourseEnvelope wraps a single course.
type CourseEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Course  CourseResponse `json:"course"`
}

// CourseListEnvelope wraps the course listing.
type CourseListEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Courses []CourseResponse `json:"courses"`
}

// LecturesEnvelope wraps the lectures of one course.
type LecturesEnvelope struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Lectures []LectureResponse `json:"lectures"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func toAssetResponse(a entity.Asset) AssetResponse {
	return AssetResponse{PublicID: a.PublicID, SecureURL: a.SecureURL}
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Avatar:    toAssetResponse(user.Avatar),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

func ToLectureResponse(l entity.Lecture) LectureResponse {
	return LectureResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Lecture:     toAssetResponse(l.Video),
	}
}

func ToLectureResponses(lectures []entity.Lecture) []LectureResponse {
	out := make([]LectureResponse, 0, len(lectures))
	for _, l := range lectures {
		out = append(out, ToLectureResponse(l))
	}
	return out
}

func ToCourseResponse(c entity.Course) CourseResponse {
	resp := CourseResponse{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Category:         c.Category,
		CreatedBy:        c.CreatedBy,
		NumberOfLectures: c.NumberOfLectures,
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        c.UpdatedAt.Format(time.RFC3339),
	}
	if !c.Thumbnail.IsZero() {
		thumb := toAssetResponse(*c.Thumbnail)
		resp.Thumbnail = &thumb
	}
	if len(c.Lectures) > 0 {
		resp.Lectures = ToLectureResponses(c.Lectures)
	}
	return resp
}

func ToCourseResponses(courses []entity.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, ToCourseResponse(c))
	}
	return out
}
