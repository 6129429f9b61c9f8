package http

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
)

const (
	attachmentBucket  = "documents"
	maxAttachmentSize = 10 << 20 // 10 MiB
)

// handleUploadAttachment stores a multipart file in the blob store and
// returns the location reference to attach to a record.
func (s *Server) handleUploadAttachment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAttachmentSize)
	if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "read upload failed")
		return
	}

	name := sanitizeFilename(hdr.Filename)
	if name == "" {
		respondError(w, http.StatusUnprocessableEntity, "invalid filename")
		return
	}
	// Prefix with a timestamp so repeated uploads of the same file
	// never collide.
	blobPath := fmt.Sprintf("%d-%s", time.Now().UnixNano(), name)

	url, err := s.blobs.Upload(r.Context(), attachmentBucket, blobPath, data, hdr.Header.Get("Content-Type"))
	if err != nil {
		respondWriteError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"bucket": attachmentBucket,
		"path":   blobPath,
		"url":    url,
	})
}

// handleDeleteAttachment removes a stored blob by its path.
func (s *Server) handleDeleteAttachment(w http.ResponseWriter, r *http.Request) {
	blobPath := r.PathValue("path")
	if strings.TrimSpace(blobPath) == "" {
		respondError(w, http.StatusBadRequest, "missing blob path")
		return
	}
	if err := s.blobs.Delete(r.Context(), attachmentBucket, blobPath); err != nil {
		respondWriteError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// sanitizeFilename keeps only the base name and drops path separators
// and control characters.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = sanitizeInput(name)
	if name == "." || name == ".." {
		return ""
	}
	return name
}
