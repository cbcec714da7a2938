package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/uploadstage"
)

const stagedFileKey = "stagedFile"

// multipart headers and text fields on top of the file itself
const formOverheadBytes = 1 << 20

// Upload stages the optional file in form field to local disk for the handler
// and removes it once the handler chain has returned.
func Upload(stager contract.IFileStager, field string, maxBytes int64, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+formOverheadBytes)
		}

		header, err := c.FormFile(field)
		if err != nil {
			var tooLarge *http.MaxBytesError
			switch {
			case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
				c.Next()
			case errors.As(err, &tooLarge):
				_ = c.Error(apperror.Validation("File is too large"))
				c.Abort()
			default:
				_ = c.Error(apperror.Validation("Invalid multipart form: " + err.Error()))
				c.Abort()
			}
			return
		}

		staged, err := stager.Stage(field, header)
		if err != nil {
			switch {
			case errors.Is(err, uploadstage.ErrFileTooLarge):
				_ = c.Error(apperror.Validation("File is too large"))
			case errors.Is(err, uploadstage.ErrUnsupportedFileType):
				_ = c.Error(apperror.Validation("Unsupported file type for " + field))
			default:
				_ = c.Error(apperror.Internal(err))
			}
			c.Abort()
			return
		}

		defer func() {
			if err := stager.Remove(staged); err != nil {
				logger.Warn("Failed to remove staged file", zap.String("path", staged.Path), zap.Error(err))
			}
		}()

		c.Set(stagedFileKey, staged)
		c.Next()
	}
}

// StagedFile returns the file staged by Upload, or nil when none was sent.
func StagedFile(c *gin.Context) *entity.StagedFile {
	v, ok := c.Get(stagedFileKey)
	if !ok {
		return nil
	}
	staged, _ := v.(*entity.StagedFile)
	return staged
}
