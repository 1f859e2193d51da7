// Package uploads hands image files to the hosting provider. Local
// MIME-type and size checks run before any network call so a bad file is a
// field-level validation error, not an upload failure.
package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// MaxImageSize caps uploads at 5 MB.
const MaxImageSize = 5 << 20

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	ErrUnsupportedType = errors.New("only jpeg, png, gif and webp images are accepted")
	ErrTooLarge        = fmt.Errorf("image exceeds the %d MB limit", MaxImageSize>>20)
)

// ValidateImage enforces the local checks. Rejections must not disturb
// sibling fields already entered in the form.
func ValidateImage(contentType string, size int64) error {
	if !allowedTypes[contentType] {
		return ErrUnsupportedType
	}
	if size > MaxImageSize {
		return ErrTooLarge
	}
	return nil
}

// Uploader sends one image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) (string, error)
}
