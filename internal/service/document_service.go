package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"marketplace-seller-service/internal/core/domain"
	"marketplace-seller-service/internal/core/ports"
	"marketplace-seller-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var contentTypeExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

type documentService struct {
	sellerRepo  ports.SellerRepository
	docRepo     ports.DocumentRepository
	objectStore ports.ObjectStore
	maxSize     int64
	log         zerolog.Logger
}

// NewDocumentService creates the verification-document service.
func NewDocumentService(
	sellerRepo ports.SellerRepository,
	docRepo ports.DocumentRepository,
	objectStore ports.ObjectStore,
	maxSize int64,
	log zerolog.Logger,
) ports.DocumentService {
	if maxSize <= 0 {
		maxSize = domain.MaxDocumentSizeBytes
	}
	return &documentService{
		sellerRepo:  sellerRepo,
		docRepo:     docRepo,
		objectStore: objectStore,
		maxSize:     maxSize,
		log:         log,
	}
}

func (s *documentService) Upload(ctx context.Context, userID uuid.UUID, upload ports.DocumentUpload) (*domain.VerificationDocument, error) {
	if !upload.Type.Valid() {
		return nil, apperror.ErrUnknownDocumentType(string(upload.Type))
	}
	if !domain.IsAllowedDocumentContentType(upload.ContentType) {
		return nil, apperror.ErrUnsupportedFileType(upload.ContentType)
	}
	if upload.SizeBytes > s.maxSize {
		return nil, apperror.ErrFileTooLarge(s.maxSize)
	}

	seller, err := s.resolveSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The declared size is not trusted; read at most maxSize+1 bytes and
	// reject anything past the cap.
	content, err := io.ReadAll(io.LimitReader(upload.Content, s.maxSize+1))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reading upload: %w", err))
	}
	if int64(len(content)) > s.maxSize {
		return nil, apperror.ErrFileTooLarge(s.maxSize)
	}

	sum := sha256.Sum256(content)

	objectPath := fmt.Sprintf("sellers/%s/documents/%s%s",
		seller.ID, strings.ToLower(string(upload.Type)), contentTypeExtensions[upload.ContentType])

	objectURL, err := s.objectStore.Upload(ctx, objectPath, upload.ContentType, bytes.NewReader(content))
	if err != nil {
		return nil, apperror.ErrStorageFailure(err)
	}

	doc := &domain.VerificationDocument{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		Type:        upload.Type,
		ObjectURL:   objectURL,
		ContentType: upload.ContentType,
		SizeBytes:   int64(len(content)),
		Checksum:    hex.EncodeToString(sum[:]),
		UploadedAt:  time.Now().UTC(),
	}

	if err := s.docRepo.Upsert(ctx, doc); err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().
		Str("seller_id", seller.ID.String()).
		Str("document_type", string(upload.Type)).
		Int64("size_bytes", doc.SizeBytes).
		Msg("verification document stored")

	return doc, nil
}

func (s *documentService) List(ctx context.Context, userID uuid.UUID) ([]domain.VerificationDocument, error) {
	seller, err := s.resolveSeller(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs, err := s.docRepo.ListBySellerID(ctx, seller.ID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return docs, nil
}

func (s *documentService) Submit(ctx context.Context, userID uuid.UUID) error {
	seller, err := s.resolveSeller(ctx, userID)
	if err != nil {
		return err
	}

	docs, err := s.docRepo.ListBySellerID(ctx, seller.ID)
	if err != nil {
		return apperror.InternalError(err)
	}

	if missing := domain.MissingRequiredDocuments(docs); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, m := range missing {
			labels[i] = m.Label()
		}
		return apperror.ErrMissingDocuments(labels)
	}

	if err := s.docRepo.MarkSubmitted(ctx, seller.ID); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

func (s *documentService) resolveSeller(ctx context.Context, userID uuid.UUID) (*domain.SellerProfile, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if seller == nil {
		return nil, apperror.ErrNotFound("seller profile")
	}
	return seller, nil
}
