package contract

import (
	"mime/multipart"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// IFileStager writes uploaded files to local disk and removes them again.
type IFileStager interface {
	Stage(field string, header *multipart.FileHeader) (*entity.StagedFile, error)
	Remove(file *entity.StagedFile) error
}
