package validators

import (
	"errors"
	"mime/multipart"
	"strings"
)

var (
	ErrFileMissing  = errors.New("no file uploaded")
	ErrFileNotImage = errors.New("only image files are allowed")
	ErrFileTooBig   = errors.New("file exceeds the maximum allowed size")
)

// ImageValidator checks an uploaded file header before anything is read
// from it. Only the declared content type is checked here, the S3
// object carries it verbatim either way
func ImageValidator(fh *multipart.FileHeader, maxSize int64) error {
	if fh == nil {
		return ErrFileMissing
	}

	if fh.Size > maxSize {
		return ErrFileTooBig
	}

	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return ErrFileNotImage
	}

	return nil
}
