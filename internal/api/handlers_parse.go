package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/cvflow/cvparse/internal/ingest"
	"github.com/cvflow/cvparse/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleParse parses one résumé synchronously. The body is a multipart form
// with either a "file" part or a plain "text" field.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	text, filename, err := s.requestText(r)
	if err != nil {
		jsonError(w, err.Error(), httpStatus(err))
		return
	}

	start := time.Now()
	cv := s.parser.Parse(text)
	s.stats.Record(time.Since(start).Milliseconds())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename": filename,
		"record":   cv.Cleaned(),
	})
}

// requestText resolves the request's résumé text: an uploaded file run
// through its format extractor, or the raw "text" field.
func (s *Server) requestText(r *http.Request) (text, filename string, err error) {
	file, header, ferr := r.FormFile("file")
	if ferr != nil {
		if text := r.FormValue("text"); strings.TrimSpace(text) != "" {
			return text, "", nil
		}
		return "", "", &requestError{code: http.StatusBadRequest, msg: "file or text is required"}
	}
	defer file.Close()

	filename = sanitizeFilename(header.Filename)
	if !ingest.IsSupportedExtension(filename) {
		return "", "", &requestError{
			code: http.StatusBadRequest,
			msg:  fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
		}
	}

	data, rerr := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if rerr != nil {
		return "", "", &requestError{code: http.StatusInternalServerError, msg: "failed to read file"}
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", "", &requestError{
			code: http.StatusRequestEntityTooLarge,
			msg:  fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes),
		}
	}

	ext, xerr := ingest.ForFile(filename, ingest.Options{PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext})
	if xerr != nil {
		return "", "", &requestError{code: http.StatusBadRequest, msg: xerr.Error()}
	}
	text, xerr = ext.Extract(bytes.NewReader(data), filename)
	if xerr != nil {
		return "", "", &requestError{
			code: http.StatusUnprocessableEntity,
			msg:  fmt.Sprintf("extract %s: %v", filename, xerr),
		}
	}
	return text, filename, nil
}

// handleBatchParse queues one job per uploaded file and returns poll URLs.
func (s *Server) handleBatchParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var results []map[string]any
	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		if !ingest.IsSupportedExtension(filename) {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
			})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "failed to open file",
			})
			continue
		}

		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    "file too large or read error",
			})
			continue
		}

		now := time.Now()
		job := &pipeline.Job{
			ID:          uuid.NewString(),
			Status:      pipeline.StatusQueued,
			Phase:       "queued",
			Filename:    filename,
			ContentHash: pipeline.ContentHashHex(data),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		job.SetFileData(data)

		if err := s.orchestrator.Submit(job); err != nil {
			results = append(results, map[string]any{
				"filename": filename,
				"error":    err.Error(),
			})
			continue
		}

		results = append(results, map[string]any{
			"filename": filename,
			"job_id":   job.ID,
			"status":   job.Status,
			"poll_url": fmt.Sprintf("/api/parse/%s/status", job.ID),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{"jobs": results})
}

func (s *Server) handleParseStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleParseStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"stats":       s.stats.Snapshot(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}

// requestError carries the HTTP status a request failure should map to.
type requestError struct {
	code int
	msg  string
}

func (e *requestError) Error() string { return e.msg }

func httpStatus(err error) int {
	if re, ok := err.(*requestError); ok {
		return re.code
	}
	return http.StatusInternalServerError
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
