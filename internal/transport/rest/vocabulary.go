package rest

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabflash-backend/internal/domain"
	"github.com/heartmarshall/vocabflash-backend/internal/parser"
	"github.com/heartmarshall/vocabflash-backend/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by VocabularyHandler.
type vocabularyService interface {
	CreateList(ctx context.Context, input vocabulary.CreateListInput) (*domain.VocabularyList, error)
	ListLists(ctx context.Context) ([]*domain.VocabularyList, error)
	GetList(ctx context.Context, listID uuid.UUID) (*domain.VocabularyList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
	AddItems(ctx context.Context, input vocabulary.AddItemsInput) ([]*domain.VocabularyItem, error)
	GetItems(ctx context.Context, listID uuid.UUID) ([]*domain.VocabularyItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	UploadText(ctx context.Context, input vocabulary.UploadTextInput) ([]*domain.VocabularyItem, error)
	UploadPDF(ctx context.Context, input vocabulary.UploadPDFInput) ([]*domain.VocabularyItem, error)
}

// UploadLimits bounds file uploads at the transport layer.
type UploadLimits struct {
	MaxTextBytes int64
	MaxPDFBytes  int64
}

// VocabularyHandler serves list, item and upload endpoints.
type VocabularyHandler struct {
	svc    vocabularyService
	limits UploadLimits
	log    *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, limits UploadLimits, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, limits: limits, log: logger.With("handler", "vocabulary")}
}

// CreateList handles POST /api/lists.
func (h *VocabularyHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := decodeJSON(w, r, &req, maxJSONBody); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.CreateList(r.Context(), vocabulary.CreateListInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(list))
}

// GetLists handles GET /api/lists.
func (h *VocabularyHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]listResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, toListResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetList handles GET /api/lists/{listID}.
func (h *VocabularyHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.GetList(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

// DeleteList handles DELETE /api/lists/{listID}.
func (h *VocabularyHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteList(r.Context(), listID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItems handles POST /api/lists/{listID}/items.
func (h *VocabularyHandler) AddItems(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addItemsRequest
	if err := decodeJSON(w, r, &req, maxJSONBody); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	parsed := make([]domain.ParsedVocabulary, 0, len(req.Items))
	for _, it := range req.Items {
		parsed = append(parsed, domain.ParsedVocabulary{Word: it.Word, Meaning: it.Meaning})
	}

	items, err := h.svc.AddItems(r.Context(), vocabulary.AddItemsInput{ListID: listID, Items: parsed})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponses(items))
}

// GetItems handles GET /api/lists/{listID}/items.
func (h *VocabularyHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.svc.GetItems(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// DeleteItem handles DELETE /api/items/{itemID}.
func (h *VocabularyHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), itemID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadText handles POST /api/lists/{listID}/upload/text.
// The body is either JSON {"content": "..."} or a multipart form with a
// .txt file in the "file" field.
func (h *VocabularyHandler) UploadText(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var content string
	if isMultipart(r) {
		data, err := h.readFormFile(w, r, parser.TypeText, h.limits.MaxTextBytes)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		content, err = parser.Decode(bytes.NewReader(data), h.limits.MaxTextBytes)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
	} else {
		var req uploadTextRequest
		if err := decodeJSON(w, r, &req, h.limits.MaxTextBytes+maxJSONOverhead); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		content = req.Content
	}

	items, err := h.svc.UploadText(r.Context(), vocabulary.UploadTextInput{ListID: listID, Content: content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{Added: len(items), Items: toItemResponses(items)})
}

// UploadPDF handles POST /api/lists/{listID}/upload/pdf.
// The body is either JSON {"pdfBase64": "..."} or a multipart form with a
// .pdf file in the "file" field.
func (h *VocabularyHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	listID, err := pathUUID(r, "listID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var encoded string
	if isMultipart(r) {
		data, err := h.readFormFile(w, r, parser.TypePDF, h.limits.MaxPDFBytes)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		encoded = base64.StdEncoding.EncodeToString(data)
	} else {
		var req uploadPDFRequest
		limit := int64(base64.StdEncoding.EncodedLen(int(h.limits.MaxPDFBytes))) + maxJSONOverhead
		if err := decodeJSON(w, r, &req, limit); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		encoded = req.PDFBase64
	}

	items, err := h.svc.UploadPDF(r.Context(), vocabulary.UploadPDFInput{ListID: listID, PDFBase64: encoded})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{Added: len(items), Items: toItemResponses(items)})
}

// maxJSONOverhead is allowed on top of the payload for JSON framing.
const maxJSONOverhead = 4 << 10

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// readFormFile reads the "file" part of a multipart upload, checking its
// extension against want and its size against limit.
func (h *VocabularyHandler) readFormFile(w http.ResponseWriter, r *http.Request, want parser.FileType, limit int64) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit+maxJSONOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, domain.NewValidationError("file", "required (multipart field \"file\")")
	}
	defer file.Close()

	if got := parser.DetectFileType(header.Filename); got != want {
		return nil, domain.NewValidationError("file", "must be a "+want.String()+" file")
	}

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, domain.NewValidationError("file", "could not read upload")
	}
	if int64(len(data)) > limit {
		return nil, domain.NewValidationError("file", "too large")
	}
	return data, nil
}
