package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Lectern/internal/handler/http/dto"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

type CourseHandler struct {
	courseUsecase usecasecontract.ICourseUseCase
}

func NewCourseHandler(courseUsecase usecasecontract.ICourseUseCase) *CourseHandler {
	return &CourseHandler{courseUsecase: courseUsecase}
}

// ListCourses returns every course without lectures.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseUsecase.ListCourses(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseListEnvelope{
		Success: true,
		Message: "All courses",
		Courses: dto.ToCourseResponses(courses),
	})
}

// GetLectures returns the lectures of the course in the path.
func (h *CourseHandler) GetLectures(c *gin.Context) {
	lectures, err := h.courseUsecase.GetLectures(c.Request.Context(), c.Param("id"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LecturesEnvelope{
		Success:  true,
		Message:  "Course lectures fetched successfully",
		Lectures: dto.ToLectureResponses(lectures),
	})
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := BindRequest(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), req.ToInput(), middleware.StagedFile(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.CourseEnvelope{
		Success: true,
		Message: "Course created successfully",
		Course:  dto.ToCourseResponse(*course),
	})
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := BindRequest(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.UpdateCourse(c.Request.Context(), c.Param("id"), req.ToUpdate(), middleware.StagedFile(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseEnvelope{
		Success: true,
		Message: "Course updated successfully",
		Course:  dto.ToCourseResponse(*course),
	})
}

func (h *CourseHandler) RemoveCourse(c *gin.Context) {
	if err := h.courseUsecase.RemoveCourse(c.Request.Context(), c.Param("id")); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Course deleted successfully")
}

func (h *CourseHandler) AddLecture(c *gin.Context) {
	var req dto.AddLectureRequest
	if err := BindRequest(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.AddLecture(c.Request.Context(), c.Param("id"), req.Title, req.Description, middleware.StagedFile(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CourseEnvelope{
		Success: true,
		Message: "Course lecture added successfully",
		Course:  dto.ToCourseResponse(*course),
	})
}

func (h *CourseHandler) RemoveLecture(c *gin.Context) {
	if err := h.courseUsecase.RemoveLecture(c.Request.Context(), c.Param("id"), c.Param("lectureId")); err != nil {
		ErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Lecture deleted successfully")
}
