// pkg/utils/validation/image.go
package validation

import (
	"errors"
	"mime/multipart"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 20MB")
	ErrFileType     = errors.New("invalid file type, only images are allowed")
	ErrFileRequired = errors.New("no file provided")
)

const MaxImageSize = 20 * 1024 * 1024 // 20MB

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	if file.Size > MaxImageSize {
		return ErrFileSize
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrFileType
	}

	return nil
}
