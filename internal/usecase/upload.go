package usecase

import "io"

// UploadKind selects the folder an uploaded image is stored under.
type UploadKind string

const (
	UploadKindProfile UploadKind = "profile"
	UploadKindProduct UploadKind = "product"
)

// IsValid checks if the UploadKind is a valid value.
func (k UploadKind) IsValid() bool {
	return k == UploadKindProfile || k == UploadKindProduct
}

// Upload is a file received with a request, handed to the use case that owns it.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
