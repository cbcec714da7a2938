package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

const (
	errCourseNotFound      = "Invalid course id or course not found."
	errLectureNotFound     = "Lecture not found."
	errLectureFields       = "Title and Description are required"
	errLectureVideoMissing = "Lecture video is required"
	errThumbnailUpload     = "Thumbnail upload failed, please try again"
	errLectureUpload       = "Lecture video upload failed, please try again"
)

// CourseUseCase implements ICourseUseCase.
type CourseUseCase struct {
	courseRepo    contract.ICourseRepository
	courseCache   contract.ICourseCache
	assets        remoteAssets
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	uuidGenerator contract.IUUIDGenerator
}

var _ usecasecontract.ICourseUseCase = (*CourseUseCase)(nil)

// NewCourseUseCase creates a new CourseUseCase. The course cache is optional, see SetCourseCache.
func NewCourseUseCase(
	courseRepo contract.ICourseRepository,
	assetStore contract.IAssetStore,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	uuidGenerator contract.IUUIDGenerator,
) *CourseUseCase {
	return &CourseUseCase{
		courseRepo:    courseRepo,
		assets:        newRemoteAssets(assetStore, cfg, logger),
		logger:        logger,
		config:        cfg,
		uuidGenerator: uuidGenerator,
	}
}

// SetCourseCache enables caching of the course listing.
func (uc *CourseUseCase) SetCourseCache(cache contract.ICourseCache) {
	uc.courseCache = cache
}

// ListCourses returns all courses without their lectures.
func (uc *CourseUseCase) ListCourses(ctx context.Context) ([]entity.Course, error) {
	if uc.courseCache != nil {
		cached, ok, err := uc.courseCache.GetCourseList(ctx)
		if err != nil {
			uc.logger.Warnf("course cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	courses, err := uc.courseRepo.ListCourses(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list courses: %v", err)
		return nil, apperror.Internal(err)
	}

	if uc.courseCache != nil {
		if err := uc.courseCache.SetCourseList(ctx, courses); err != nil {
			uc.logger.Warnf("course cache write failed: %v", err)
		}
	}
	return courses, nil
}

// GetLectures returns the lecture sequence of a course.
func (uc *CourseUseCase) GetLectures(ctx context.Context, courseID string) ([]entity.Lecture, error) {
	course, err := uc.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Lectures == nil {
		return []entity.Lecture{}, nil
	}
	return course.Lectures, nil
}

// CreateCourse persists a new course, uploading the optional thumbnail first.
func (uc *CourseUseCase) CreateCourse(ctx context.Context, in usecasecontract.CreateCourseInput, thumbnail *entity.StagedFile) (*entity.Course, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.CreatedBy = strings.TrimSpace(in.CreatedBy)
	if in.Title == "" || in.Description == "" || in.Category == "" || in.CreatedBy == "" {
		return nil, apperror.Validation(errAllFieldsRequired)
	}

	now := time.Now()
	course := &entity.Course{
		ID:          uc.uuidGenerator.NewUUID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if thumbnail != nil {
		asset, err := uc.assets.upload(ctx, thumbnail, uc.thumbnailOptions())
		if err != nil {
			uc.logger.Warnf("thumbnail upload failed: %v", err)
			return nil, apperror.Upload(errThumbnailUpload, err)
		}
		course.Thumbnail = asset
	}

	if err := uc.courseRepo.CreateCourse(ctx, course); err != nil {
		if course.Thumbnail != nil {
			uc.assets.discard(ctx, course.Thumbnail.PublicID, entity.AssetKindImage)
		}
		uc.logger.Errorf("failed to create course: %v", err)
		return nil, apperror.Internal(err)
	}

	uc.invalidateList(ctx)
	return course, nil
}

// UpdateCourse applies the whitelisted fields and optionally replaces the thumbnail.
func (uc *CourseUseCase) UpdateCourse(ctx context.Context, courseID string, update usecasecontract.CourseUpdate, thumbnail *entity.StagedFile) (*entity.Course, error) {
	course, err := uc.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var uploaded *entity.Asset
	if thumbnail != nil {
		if !course.Thumbnail.IsZero() {
			if err := uc.assets.destroy(ctx, course.Thumbnail.PublicID, entity.AssetKindImage); err != nil {
				uc.logger.Errorf("failed to destroy old thumbnail %s: %v", course.Thumbnail.PublicID, err)
				return nil, apperror.Upload(errThumbnailUpload, err)
			}
		}

		uploaded, err = uc.assets.upload(ctx, thumbnail, uc.thumbnailOptions())
		if err != nil {
			uc.logger.Warnf("thumbnail upload failed for course %s: %v", course.ID, err)
			if course.Thumbnail != nil {
				// The old asset is gone; do not keep pointing at it.
				course.Thumbnail = nil
				course.UpdatedAt = time.Now()
				if saveErr := uc.courseRepo.SaveCourse(ctx, course); saveErr != nil {
					uc.logger.Errorf("failed to clear stale thumbnail of course %s: %v", course.ID, saveErr)
				}
				uc.invalidateList(ctx)
			}
			return nil, apperror.Upload(errThumbnailUpload, err)
		}
		course.Thumbnail = uploaded
	}

	// Field edits land only once the thumbnail step has succeeded.
	if v := trimmed(update.Title); v != "" {
		course.Title = v
	}
	if v := trimmed(update.Description); v != "" {
		course.Description = v
	}
	if v := trimmed(update.Category); v != "" {
		course.Category = v
	}
	course.UpdatedAt = time.Now()
	if err := uc.courseRepo.SaveCourse(ctx, course); err != nil {
		if uploaded != nil {
			uc.assets.discard(ctx, uploaded.PublicID, entity.AssetKindImage)
		}
		uc.logger.Errorf("failed to update course %s: %v", course.ID, err)
		return nil, apperror.Internal(err)
	}

	uc.invalidateList(ctx)
	return course, nil
}

// RemoveCourse destroys the course's remote assets and then deletes the document.
func (uc *CourseUseCase) RemoveCourse(ctx context.Context, courseID string) error {
	course, err := uc.findCourse(ctx, courseID)
	if err != nil {
		return err
	}

	if !course.Thumbnail.IsZero() {
		if err := uc.assets.destroy(ctx, course.Thumbnail.PublicID, entity.AssetKindImage); err != nil {
			uc.logger.Errorf("failed to destroy thumbnail %s: %v", course.Thumbnail.PublicID, err)
			return apperror.Internal(err)
		}
	}
	for _, lecture := range course.Lectures {
		if lecture.Video.PublicID == "" {
			continue
		}
		if err := uc.assets.destroy(ctx, lecture.Video.PublicID, entity.AssetKindVideo); err != nil {
			uc.logger.Warnf("failed to destroy lecture video %s of course %s: %v", lecture.Video.PublicID, course.ID, err)
		}
	}

	if err := uc.courseRepo.DeleteCourse(ctx, course.ID); err != nil {
		if errors.Is(err, contract.ErrCourseNotFound) {
			return apperror.NotFound(errCourseNotFound)
		}
		uc.logger.Errorf("failed to delete course %s: %v", course.ID, err)
		return apperror.Internal(err)
	}

	uc.invalidateList(ctx)
	return nil
}

// AddLecture uploads the video and appends a lecture to the course.
func (uc *CourseUseCase) AddLecture(ctx context.Context, courseID, title, description string, video *entity.StagedFile) (*entity.Course, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, apperror.Validation(errLectureFields)
	}
	if video == nil {
		return nil, apperror.Validation(errLectureVideoMissing)
	}

	course, err := uc.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	asset, err := uc.assets.upload(ctx, video, contract.UploadOptions{
		Folder:    uc.config.GetAssetFolder() + "/lectures",
		Kind:      entity.AssetKindVideo,
		ChunkSize: uc.config.GetVideoChunkSize(),
	})
	if err != nil {
		uc.logger.Warnf("lecture upload failed for course %s: %v", course.ID, err)
		return nil, apperror.Upload(errLectureUpload, err)
	}

	course.AddLecture(entity.Lecture{
		ID:          uc.uuidGenerator.NewUUID(),
		Title:       title,
		Description: description,
		Video:       *asset,
	})
	course.UpdatedAt = time.Now()

	if err := uc.courseRepo.SaveCourse(ctx, course); err != nil {
		uc.assets.discard(ctx, asset.PublicID, entity.AssetKindVideo)
		uc.logger.Errorf("failed to save lecture for course %s: %v", course.ID, err)
		return nil, apperror.Internal(err)
	}

	uc.invalidateList(ctx)
	return course, nil
}

// RemoveLecture destroys the lecture video and drops the lecture from the course.
func (uc *CourseUseCase) RemoveLecture(ctx context.Context, courseID, lectureID string) error {
	course, err := uc.findCourse(ctx, courseID)
	if err != nil {
		return err
	}

	idx := course.LectureIndex(lectureID)
	if idx == -1 {
		return apperror.NotFound(errLectureNotFound)
	}

	if publicID := course.Lectures[idx].Video.PublicID; publicID != "" {
		if err := uc.assets.destroy(ctx, publicID, entity.AssetKindVideo); err != nil {
			uc.logger.Errorf("failed to destroy lecture video %s: %v", publicID, err)
			return apperror.Internal(err)
		}
	}

	course.RemoveLecture(idx)
	course.UpdatedAt = time.Now()
	if err := uc.courseRepo.SaveCourse(ctx, course); err != nil {
		uc.logger.Errorf("failed to remove lecture %s from course %s: %v", lectureID, course.ID, err)
		return apperror.Internal(err)
	}

	uc.invalidateList(ctx)
	return nil
}

func (uc *CourseUseCase) findCourse(ctx context.Context, courseID string) (*entity.Course, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, apperror.NotFound(errCourseNotFound)
	}
	course, err := uc.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, contract.ErrCourseNotFound) {
			return nil, apperror.NotFound(errCourseNotFound)
		}
		uc.logger.Errorf("failed to load course %s: %v", courseID, err)
		return nil, apperror.Internal(err)
	}
	return course, nil
}

func (uc *CourseUseCase) thumbnailOptions() contract.UploadOptions {
	return contract.UploadOptions{
		Folder: uc.config.GetAssetFolder() + "/thumbnails",
		Kind:   entity.AssetKindImage,
	}
}

func (uc *CourseUseCase) invalidateList(ctx context.Context) {
	if uc.courseCache == nil {
		return
	}
	if err := uc.courseCache.InvalidateCourseList(ctx); err != nil {
		uc.logger.Warnf("course cache invalidation failed: %v", err)
	}
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
