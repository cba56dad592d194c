package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/jusunglee/baybayin/internal/db"
	"github.com/jusunglee/baybayin/internal/metrics"
	"github.com/jusunglee/baybayin/internal/pipeline"
)

// MaxTextBytes bounds the text of a synchronous conversion request.
const MaxTextBytes = 64 << 10

// JSON escaping can grow text up to six times (\uXXXX); leave room for it.
const maxConvertBody = 6*MaxTextBytes + 4<<10

type ConvertHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewConvertHandler(repo db.Repository, log *slog.Logger) *ConvertHandler {
	return &ConvertHandler{repo: repo, log: log}
}

type convertRequest struct {
	Text string `json:"text"`
	pipeline.Selectors
}

type convertResponse struct {
	ID     int64  `json:"id"`
	Mode   string `json:"mode"`
	Output string `json:"output"`
}

type conversionResponse struct {
	ID        int64           `json:"id"`
	Mode      string          `json:"mode"`
	Options   json.RawMessage `json:"options"`
	Input     string          `json:"input"`
	Output    string          `json:"output"`
	CreatedAt string          `json:"created_at"`
}

type paginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type listResponse struct {
	Data       []conversionResponse `json:"data"`
	Pagination paginationMeta       `json:"pagination"`
}

func (h *ConvertHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipeline.Normalize)
}

func (h *ConvertHandler) Transliterate(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipeline.Transliterate)
}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, pipeline.Convert)
}

func (h *ConvertHandler) convert(w http.ResponseWriter, r *http.Request, mode pipeline.Mode) {
	var req convertRequest
	if !decodeJSON(w, r, maxConvertBody, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if len(req.Text) > MaxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("text exceeds %d bytes", MaxTextBytes))
		return
	}

	conv, err := pipeline.New(mode, req.Selectors)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	output := conv.Text(req.Text)

	entry, err := h.repo.SaveConversion(r.Context(), db.SaveConversionParams{
		Mode:    mode.String(),
		Options: encodeSelectors(req.Selectors),
		Input:   req.Text,
		Output:  output,
	})
	if err != nil {
		metrics.ConversionsLogged.WithLabelValues(mode.String(), "failed").Inc()
		h.log.ErrorContext(r.Context(), "saving conversion", "mode", mode, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.ConversionsLogged.WithLabelValues(mode.String(), "success").Inc()

	writeJSON(w, http.StatusOK, convertResponse{ID: entry.ID, Mode: mode.String(), Output: output})
}

// maxPage keeps the list offset within int32 at the largest page size.
const maxPage = 1 << 20

func (h *ConvertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	page = lo.Clamp(page, 1, maxPage)
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil {
		limit = 25
	}
	limit = lo.Clamp(limit, 1, 100)
	offset := (page - 1) * limit

	total, err := h.repo.CountConversions(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting conversions", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	conversions, err := h.repo.ListConversions(r.Context(), db.ListConversionsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing conversions", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data: lo.Map(conversions, func(c db.Conversion, _ int) conversionResponse {
			return toConversionResponse(c)
		}),
		Pagination: paginationMeta{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

func toConversionResponse(c db.Conversion) conversionResponse {
	opts := json.RawMessage(c.Options)
	if !json.Valid(opts) {
		opts = json.RawMessage("{}")
	}
	return conversionResponse{
		ID:        c.ID,
		Mode:      c.Mode,
		Options:   opts,
		Input:     c.Input,
		Output:    c.Output,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func encodeSelectors(sel pipeline.Selectors) string {
	raw, err := json.Marshal(sel)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
