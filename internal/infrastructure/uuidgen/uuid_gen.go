package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
)

// Generator issues the string ids stored as `_id` on users and courses and as
// the id of each embedded lecture.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID returns a random (version 4) id in canonical string form.
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
