package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/internal/service/learning"
)

type learningService interface {
	RecordResult(ctx context.Context, input learning.RecordResultInput) (*domain.LearningRecord, error)
	CheckAnswer(ctx context.Context, input learning.CheckAnswerInput) (*learning.CheckResult, error)
	GetStats(ctx context.Context, listID uuid.UUID) (domain.LearningStats, error)
	GetRecords(ctx context.Context, input learning.GetRecordsInput) ([]*domain.LearningRecord, error)
}

// LearningHandler serves study result and statistics endpoints.
type LearningHandler struct {
	svc learningService
	log *slog.Logger
}

// NewLearningHandler creates a LearningHandler.
func NewLearningHandler(svc learningService, logger *slog.Logger) *LearningHandler {
	return &LearningHandler{svc: svc, log: logger.With("handler", "learning")}
}

// RecordResult handles POST /api/records.
func (h *LearningHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	var req recordResultRequest
	if err := decodeJSON(w, r, &req, maxJSONBody); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.RecordResult(r.Context(), learning.RecordResultInput{
		ItemID:     uuid.MustParse(req.ItemID),
		ListID:     uuid.MustParse(req.ListID),
		IsCorrect:  *req.IsCorrect,
		UserAnswer: req.UserAnswer,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(rec))
}

// CheckAnswer handles POST /api/items/{itemID}/check.
func (h *LearningHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req checkAnswerRequest
	if err := decodeJSON(w, r, &req, maxJSONBody); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CheckAnswer(r.Context(), learning.CheckAnswerInput{ItemID: itemID, Answer: req.Answer})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckAnswerResponse(res))
}

// GetStats handles GET /api/lists/{listID}/stats.
func (h *LearningHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.GetStats(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// GetRecords handles GET /api/lists/{listID}/records?limit=&offset=.
// Records are returned newest first.
func (h *LearningHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records, err := h.svc.GetRecords(r.Context(), learning.GetRecordsInput{ListID: listID, Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
