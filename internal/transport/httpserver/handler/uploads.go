package handler

import (
	"errors"
	"net/http"

	uploadsdomain "family-ledger-go/internal/domain/uploads"
)

type uploadRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req uploadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	result, err := h.Uploads.Upload(r.Context(), userID, uploadsdomain.UploadInput{
		FileBase64: req.File,
		FileName:   req.FileName,
		FileType:   req.FileType,
	})
	if err != nil {
		switch {
		case errors.Is(err, uploadsdomain.ErrUnsupportedFileType):
			writeError(w, http.StatusBadRequest, "invalid_request", "file type must be image/jpeg, image/png or application/pdf")
		case errors.Is(err, uploadsdomain.ErrInvalidEncoding):
			writeError(w, http.StatusBadRequest, "invalid_request", "file must be base64 encoded")
		case errors.Is(err, uploadsdomain.ErrEmptyFile):
			writeError(w, http.StatusBadRequest, "invalid_request", "file is empty")
		case errors.Is(err, uploadsdomain.ErrStorageUnavailable):
			h.log.InternalError("upload: storage not configured", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "storage not configured")
		default:
			h.log.InternalError("upload: put failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
