package uploads

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("empty file")
	ErrInvalidEncoding     = errors.New("invalid base64 payload")
	ErrStorageUnavailable  = errors.New("storage not configured")
)

var allowedFileTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

type Service struct {
	store   Store
	baseURL string
	now     func() time.Time
}

// NewService accepts a nil store; uploads then fail with
// ErrStorageUnavailable instead of at startup.
func NewService(store Store, publicBaseURL string) *Service {
	return &Service{
		store:   store,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		now:     time.Now,
	}
}

type UploadInput struct {
	FileBase64 string
	FileName   string
	FileType   string
}

type Result struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Upload validates and decodes the payload before any storage call, then
// writes the object under a per-user key.
func (s *Service) Upload(ctx context.Context, userID string, input UploadInput) (*Result, error) {
	if _, ok := allowedFileTypes[input.FileType]; !ok {
		return nil, ErrUnsupportedFileType
	}

	body, err := decodePayload(input.FileBase64)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, ErrEmptyFile
	}

	if s.store == nil {
		return nil, ErrStorageUnavailable
	}

	key := fmt.Sprintf("receipts/%s/%d-%s", userID, s.now().UTC().UnixMilli(), sanitizeFileName(input.FileName))
	if err := s.store.Put(ctx, key, input.FileType, body); err != nil {
		return nil, err
	}

	return &Result{
		URL: s.baseURL + "/" + key,
		Key: key,
	}, nil
}

func decodePayload(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	// Clients may send a data URL; the payload follows the first comma.
	if strings.HasPrefix(value, "data:") {
		idx := strings.Index(value, ",")
		if idx == -1 {
			return nil, ErrInvalidEncoding
		}
		value = value[idx+1:]
	}

	body, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return body, nil
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "file"
	}

	var builder strings.Builder
	builder.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			builder.WriteRune(r)
		default:
			builder.WriteByte('_')
		}
	}
	return builder.String()
}
