package rest

import (
	"time"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/internal/service/learning"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createListRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type itemRequest struct {
	Word    string `json:"word"    validate:"required,max=255"`
	Meaning string `json:"meaning" validate:"max=2000"`
}

type addItemsRequest struct {
	Items []itemRequest `json:"items" validate:"required,min=1,dive"`
}

type uploadTextRequest struct {
	Content string `json:"content" validate:"required"`
}

type uploadPDFRequest struct {
	PDFBase64 string `json:"pdfBase64" validate:"required"`
}

type recordResultRequest struct {
	ItemID     string  `json:"itemId"     validate:"required,uuid"`
	ListID     string  `json:"listId"     validate:"required,uuid"`
	IsCorrect  *bool   `json:"isCorrect"  validate:"required"`
	UserAnswer *string `json:"userAnswer" validate:"omitempty,max=2000"`
}

type checkAnswerRequest struct {
	Answer string `json:"answer" validate:"max=2000"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type listResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type itemResponse struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	Word      string    `json:"word"`
	Meaning   string    `json:"meaning"`
	CreatedAt time.Time `json:"createdAt"`
}

type uploadResponse struct {
	Added int            `json:"added"`
	Items []itemResponse `json:"items"`
}

type recordResponse struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"itemId"`
	ListID     string    `json:"listId"`
	IsCorrect  bool      `json:"isCorrect"`
	UserAnswer *string   `json:"userAnswer"`
	CreatedAt  time.Time `json:"createdAt"`
}

type statsResponse struct {
	TotalAttempts int     `json:"totalAttempts"`
	CorrectCount  int     `json:"correctCount"`
	Accuracy      float64 `json:"accuracy"`
}

type checkAnswerResponse struct {
	Correct bool            `json:"correct"`
	Meaning string          `json:"meaning"`
	Record  *recordResponse `json:"record"`
}

func toListResponse(l *domain.VocabularyList) listResponse {
	return listResponse{
		ID:          l.ID.String(),
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toItemResponses(items []*domain.VocabularyItem) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemResponse{
			ID:        it.ID.String(),
			ListID:    it.ListID.String(),
			Word:      it.Word,
			Meaning:   it.Meaning,
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}

func toRecordResponse(rec *domain.LearningRecord) recordResponse {
	return recordResponse{
		ID:         rec.ID.String(),
		ItemID:     rec.ItemID.String(),
		ListID:     rec.ListID.String(),
		IsCorrect:  rec.IsCorrect,
		UserAnswer: rec.UserAnswer,
		CreatedAt:  rec.CreatedAt,
	}
}

func toStatsResponse(s domain.LearningStats) statsResponse {
	return statsResponse{
		TotalAttempts: s.TotalAttempts,
		CorrectCount:  s.CorrectCount,
		Accuracy:      s.Accuracy,
	}
}

func toCheckAnswerResponse(res *learning.CheckResult) checkAnswerResponse {
	out := checkAnswerResponse{Correct: res.Correct, Meaning: res.Meaning}
	if res.Record != nil {
		rec := toRecordResponse(res.Record)
		out.Record = &rec
	}
	return out
}
