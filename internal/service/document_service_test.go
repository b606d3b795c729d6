package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"marketplace-seller-service/internal/core/domain"
	"marketplace-seller-service/internal/core/ports"
	"marketplace-seller-service/internal/core/ports/mocks"
	"marketplace-seller-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type documentTestDeps struct {
	svc         ports.DocumentService
	sellerRepo  *mocks.MockSellerRepository
	docRepo     *mocks.MockDocumentRepository
	objectStore *mocks.MockObjectStore
	ctrl        *gomock.Controller
}

func setupDocumentService(t *testing.T) *documentTestDeps {
	ctrl := gomock.NewController(t)
	d := &documentTestDeps{
		sellerRepo:  mocks.NewMockSellerRepository(ctrl),
		docRepo:     mocks.NewMockDocumentRepository(ctrl),
		objectStore: mocks.NewMockObjectStore(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewDocumentService(d.sellerRepo, d.docRepo, d.objectStore, domain.MaxDocumentSizeBytes, zerolog.Nop())
	return d
}

func TestDocumentService_Upload_Success(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	sellerID := uuid.New()
	content := []byte("fake jpeg bytes")

	d.sellerRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.SellerProfile{ID: sellerID, UserID: userID}, nil)
	d.objectStore.EXPECT().
		Upload(ctx, "sellers/"+sellerID.String()+"/documents/id_front.jpg", "image/jpeg", gomock.Any()).
		Return("https://storage.example.com/id_front.jpg", nil)
	d.docRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *domain.VerificationDocument) error {
			assert.Equal(t, sellerID, doc.SellerID)
			assert.Equal(t, domain.DocumentTypeIDFront, doc.Type)
			assert.Equal(t, int64(len(content)), doc.SizeBytes)
			sum := sha256.Sum256(content)
			assert.Equal(t, hex.EncodeToString(sum[:]), doc.Checksum)
			assert.False(t, doc.Submitted)
			return nil
		})

	doc, err := d.svc.Upload(ctx, userID, ports.DocumentUpload{
		Type:        domain.DocumentTypeIDFront,
		FileName:    "id-front.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   int64(len(content)),
		Content:     bytes.NewReader(content),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/id_front.jpg", doc.ObjectURL)
}

func TestDocumentService_Upload_UnknownType(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Upload(context.Background(), uuid.New(), ports.DocumentUpload{
		Type:        "SELFIE",
		ContentType: "image/jpeg",
		SizeBytes:   10,
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, "DOC_004", appErr.Code)
}

func TestDocumentService_Upload_UnsupportedContentType(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Upload(context.Background(), uuid.New(), ports.DocumentUpload{
		Type:        domain.DocumentTypeIDFront,
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		SizeBytes:   10,
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DOC_001", appErr.Code)
}

func TestDocumentService_Upload_DeclaredSizeTooLarge(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Upload(context.Background(), uuid.New(), ports.DocumentUpload{
		Type:        domain.DocumentTypeIDFront,
		ContentType: "image/png",
		SizeBytes:   domain.MaxDocumentSizeBytes + 1,
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DOC_002", appErr.Code)
}

func TestDocumentService_Upload_ActualSizeTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerRepo := mocks.NewMockSellerRepository(ctrl)
	docRepo := mocks.NewMockDocumentRepository(ctrl)
	objectStore := mocks.NewMockObjectStore(ctrl)
	// Tiny cap so the stream, not the declared size, trips the limit.
	svc := NewDocumentService(sellerRepo, docRepo, objectStore, 8, zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	sellerRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.SellerProfile{ID: uuid.New(), UserID: userID}, nil)

	_, err := svc.Upload(ctx, userID, ports.DocumentUpload{
		Type:        domain.DocumentTypeIDFront,
		ContentType: "image/png",
		SizeBytes:   4, // lies
		Content:     strings.NewReader("way more than eight bytes"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DOC_002", appErr.Code)
}

func TestDocumentService_Upload_NoProfile(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	d.sellerRepo.EXPECT().GetByUserID(ctx, userID).Return(nil, nil)

	_, err := d.svc.Upload(ctx, userID, ports.DocumentUpload{
		Type:        domain.DocumentTypeIDFront,
		ContentType: "image/jpeg",
		SizeBytes:   10,
		Content:     strings.NewReader("x"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestDocumentService_Upload_StorageFailure(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	sellerID := uuid.New()

	d.sellerRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.SellerProfile{ID: sellerID, UserID: userID}, nil)
	d.objectStore.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket unavailable"))

	_, err := d.svc.Upload(ctx, userID, ports.DocumentUpload{
		Type:        domain.DocumentTypeIDBack,
		ContentType: "application/pdf",
		SizeBytes:   10,
		Content:     strings.NewReader("pdf bytes"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)
}

func TestDocumentService_Submit_MissingRequired(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	sellerID := uuid.New()

	d.sellerRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.SellerProfile{ID: sellerID, UserID: userID}, nil)
	d.docRepo.EXPECT().ListBySellerID(ctx, sellerID).Return([]domain.VerificationDocument{
		{Type: domain.DocumentTypeIDFront},
	}, nil)

	err := d.svc.Submit(ctx, userID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DOC_003", appErr.Code)
	assert.Contains(t, appErr.Fields, "Government ID (Back)")
}

func TestDocumentService_Submit_Success(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	sellerID := uuid.New()

	d.sellerRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.SellerProfile{ID: sellerID, UserID: userID}, nil)
	d.docRepo.EXPECT().ListBySellerID(ctx, sellerID).Return([]domain.VerificationDocument{
		{Type: domain.DocumentTypeIDFront},
		{Type: domain.DocumentTypeIDBack},
		{Type: domain.DocumentTypeAddressProof},
	}, nil)
	d.docRepo.EXPECT().MarkSubmitted(ctx, sellerID).Return(nil)

	assert.NoError(t, d.svc.Submit(ctx, userID))
}

func TestDocumentService_List(t *testing.T) {
	d := setupDocumentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	sellerID := uuid.New()

	d.sellerRepo.EXPECT().GetByUserID(ctx, userID).Return(&domain.SellerProfile{ID: sellerID, UserID: userID}, nil)
	d.docRepo.EXPECT().ListBySellerID(ctx, sellerID).Return([]domain.VerificationDocument{
		{Type: domain.DocumentTypeIDFront},
	}, nil)

	docs, err := d.svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}
