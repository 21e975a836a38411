package uploads

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeStore struct {
	puts map[string][]byte
}

func (f *fakeStore) Put(ctx context.Context, key, contentType string, body []byte) error {
	if f.puts == nil {
		f.puts = make(map[string][]byte)
	}
	f.puts[key] = body
	return nil
}

func TestUploadRejectsUnsupportedTypeBeforeStorage(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "https://cdn.example.com")

	_, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileBase64: base64.StdEncoding.EncodeToString([]byte("hello")),
		FileName:   "notes.txt",
		FileType:   "text/plain",
	})
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	if len(store.puts) != 0 {
		t.Fatal("store was called for a rejected file type")
	}
}

func TestUploadStoresUnderUserKey(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "https://cdn.example.com/")
	svc.now = func() time.Time { return time.UnixMilli(1700000000000).UTC() }

	payload := []byte{0xFF, 0xD8, 0xFF}
	result, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileBase64: base64.StdEncoding.EncodeToString(payload),
		FileName:   "receipt one.jpg",
		FileType:   "image/jpeg",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	wantKey := "receipts/user-1/1700000000000-receipt_one.jpg"
	if result.Key != wantKey {
		t.Fatalf("expected key %q, got %q", wantKey, result.Key)
	}
	if result.URL != "https://cdn.example.com/"+wantKey {
		t.Fatalf("unexpected url %q", result.URL)
	}
	if string(store.puts[wantKey]) != string(payload) {
		t.Fatal("stored body does not match decoded payload")
	}
}

func TestUploadDataURLPayload(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, "https://cdn.example.com")

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50})
	result, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileBase64: encoded,
		FileName:   "chart.png",
		FileType:   "image/png",
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.HasPrefix(result.Key, "receipts/user-1/") {
		t.Fatalf("unexpected key %q", result.Key)
	}
}

func TestUploadInvalidBase64(t *testing.T) {
	svc := NewService(&fakeStore{}, "https://cdn.example.com")

	_, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileBase64: "%%%not-base64%%%",
		FileName:   "a.png",
		FileType:   "image/png",
	})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestUploadWithoutStore(t *testing.T) {
	svc := NewService(nil, "")

	_, err := svc.Upload(context.Background(), "user-1", UploadInput{
		FileBase64: base64.StdEncoding.EncodeToString([]byte("x")),
		FileName:   "a.pdf",
		FileType:   "application/pdf",
	})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
