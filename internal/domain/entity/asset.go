package entity

// Asset references a file stored on the remote asset host.
type Asset struct {
	PublicID  string `bson:"public_id" json:"public_id"`
	SecureURL string `bson:"secure_url" json:"secure_url"`
}

// IsZero reports whether the asset points at nothing.
func (a *Asset) IsZero() bool {
	return a == nil || a.PublicID == ""
}

// AssetKind distinguishes how the asset host stores a file.
type AssetKind string

const (
	AssetKindImage AssetKind = "image"
	AssetKindVideo AssetKind = "video"
)

// StagedFile is an uploaded file that has been written to local disk for the
// lifetime of a single request.
type StagedFile struct {
	Field        string
	OriginalName string
	Path         string
	ContentType  string
	Size         int64
}
