package dto

import usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"

type CreateCourseRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	CreatedBy   string `json:"createdBy" form:"createdBy"`
}

func (r CreateCourseRequest) ToInput() usecasecontract.CreateCourseInput {
	return usecasecontract.CreateCourseInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		CreatedBy:   r.CreatedBy,
	}
}

// UpdateCourseRequest only has fields a client may change; anything else in the body is ignored.
type UpdateCourseRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Category    *string `json:"category" form:"category"`
}

func (r UpdateCourseRequest) ToUpdate() usecasecontract.CourseUpdate {
	return usecasecontract.CourseUpdate{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
}

type AddLectureRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}
