package media

import (
	"context"
	"io"
)

// File is a single image picked on the food form.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Uploader stores an image and returns its public URL. Failures come back as
// apperrors UploadError.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}
