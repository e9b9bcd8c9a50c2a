package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"munsemsem/internal/common"
)

// Storage stores uploaded media and removes it again. Save returns
// the object path a record should reference; Remove of a missing
// object succeeds so deletes stay idempotent.
type Storage interface {
	Save(ctx context.Context, prefix, fileName string, file io.Reader, size int64) (string, error)
	Remove(ctx context.Context, objectPath string) error
}

// allowedImageTypes is the upload allow-list.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// sniffImage detects the content type from the leading bytes instead
// of trusting the client header. It returns the detected type, the
// extension to store under and a reader replaying the whole stream.
func sniffImage(file io.Reader) (string, string, io.Reader, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", "", nil, fmt.Errorf("could not read upload: %w", err)
	}
	head = head[:n]

	contentType := mimetype.Detect(head).String()

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", "", nil, common.ErrUnsupportedMediaType
	}

	return contentType, ext, io.MultiReader(bytes.NewReader(head), file), nil
}
