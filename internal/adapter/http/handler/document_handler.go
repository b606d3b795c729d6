package handler

import (
	"errors"
	"net/http"
	"time"

	"marketplace-seller-service/internal/adapter/http/dto"
	"marketplace-seller-service/internal/adapter/http/middleware"
	"marketplace-seller-service/internal/core/domain"
	"marketplace-seller-service/internal/core/ports"
	"marketplace-seller-service/pkg/apperror"
	"marketplace-seller-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles verification-document endpoints.
type DocumentHandler struct {
	documentSvc ports.DocumentService
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(documentSvc ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentSvc: documentSvc}
}

// Upload handles POST /api/seller/documents. The request is multipart with a
// "type" field and a "file" part; re-uploading a type replaces the file.
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	// Parse the form up front: when the body cap trips, every later form
	// accessor fails with an empty result and the caller would see a
	// misleading "unknown type" instead of the size error.
	if _, err := c.MultipartForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, apperror.ErrFileTooLarge(maxErr.Limit))
			return
		}
		response.Error(c, apperror.Validation("request body must be multipart/form-data"))
		return
	}

	docType := domain.DocumentType(c.PostForm("type"))
	if !docType.Valid() {
		response.Error(c, apperror.ErrUnknownDocumentType(c.PostForm("type")))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, apperror.Validation("file part is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	defer file.Close()

	doc, err := h.documentSvc.Upload(c.Request.Context(), userID.(uuid.UUID), ports.DocumentUpload{
		Type:        docType,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"document": toDocumentResponse(*doc)})
}

// List handles GET /api/seller/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	docs, err := h.documentSvc.List(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DocumentResponse, len(docs))
	for i, d := range docs {
		items[i] = toDocumentResponse(d)
	}

	response.OK(c, gin.H{"documents": items})
}

// Submit handles POST /api/seller/documents/submit.
func (h *DocumentHandler) Submit(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	if err := h.documentSvc.Submit(c.Request.Context(), userID.(uuid.UUID)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "documents submitted for review"})
}

func toDocumentResponse(d domain.VerificationDocument) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          d.ID.String(),
		Type:        string(d.Type),
		Label:       d.Type.Label(),
		Required:    d.Type.Required(),
		ObjectURL:   d.ObjectURL,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Checksum:    d.Checksum,
		Submitted:   d.Submitted,
		UploadedAt:  d.UploadedAt.Format(time.RFC3339),
	}
}
