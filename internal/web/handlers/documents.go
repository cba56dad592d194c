package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jusunglee/baybayin/internal/db"
	"github.com/jusunglee/baybayin/internal/pipeline"
)

// MaxDocumentBytes bounds the text of an asynchronous document.
const MaxDocumentBytes = 1 << 20

const maxDocumentBody = 6*MaxDocumentBytes + 4<<10

// Enqueuer schedules the conversion of a stored document.
type Enqueuer interface {
	EnqueueConversion(ctx context.Context, documentID int64) error
}

type DocumentHandler struct {
	repo     db.Repository
	log      *slog.Logger
	enqueuer Enqueuer
}

func NewDocumentHandler(repo db.Repository, log *slog.Logger, enqueuer Enqueuer) *DocumentHandler {
	return &DocumentHandler{repo: repo, log: log, enqueuer: enqueuer}
}

type createDocumentRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode,omitempty"`
	pipeline.Selectors
}

type documentResponse struct {
	ID        int64   `json:"id"`
	Mode      string  `json:"mode"`
	Status    string  `json:"status"`
	Output    *string `json:"output,omitempty"`
	Error     *string `json:"error,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toDocumentResponse(d db.Document) documentResponse {
	return documentResponse{
		ID:        d.ID,
		Mode:      d.Mode,
		Status:    string(d.Status),
		Output:    optionalString(d.Output.Valid, d.Output.String),
		Error:     optionalString(d.Error.Valid, d.Error.String),
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if !decodeJSON(w, r, maxDocumentBody, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if len(req.Text) > MaxDocumentBytes {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("text exceeds %d bytes", MaxDocumentBytes))
		return
	}

	mode := pipeline.Convert
	if req.Mode != "" {
		m, err := pipeline.ParseMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		mode = m
	}
	// Reject bad selectors now rather than failing the job later.
	if _, err := pipeline.New(mode, req.Selectors); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.repo.CreateDocument(r.Context(), db.CreateDocumentParams{
		Mode:    mode.String(),
		Options: encodeSelectors(req.Selectors),
		Input:   req.Text,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "creating document", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.enqueuer.EnqueueConversion(r.Context(), doc.ID); err != nil {
		h.log.ErrorContext(r.Context(), "enqueuing document conversion", "document_id", doc.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// An inline enqueuer has already finished; report whatever is current.
	if current, err := h.repo.GetDocument(r.Context(), doc.ID); err == nil {
		doc = current
	}

	h.log.InfoContext(r.Context(), "document accepted", "document_id", doc.ID, "mode", mode, "bytes", len(req.Text))
	writeJSON(w, http.StatusAccepted, toDocumentResponse(doc))
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	doc, err := h.repo.GetDocument(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		h.log.ErrorContext(r.Context(), "getting document", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}
