package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument() *domain.VerificationDocument {
	return &domain.VerificationDocument{
		ID:          uuid.New(),
		SellerID:    uuid.New(),
		Type:        domain.DocumentTypeIDFront,
		ObjectURL:   "https://storage.example.com/sellers/x/documents/id_front.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   204800,
		Checksum:    "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		UploadedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func documentColumns() []string {
	return []string{"id", "seller_id", "document_type", "object_url", "content_type", "size_bytes", "checksum", "submitted", "uploaded_at"}
}

func TestDocumentRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDocumentRepo(mock)
	d := newTestDocument()

	mock.ExpectExec("INSERT INTO seller_documents").
		WithArgs(d.ID, d.SellerID, d.Type, d.ObjectURL, d.ContentType,
			d.SizeBytes, d.Checksum, d.Submitted, d.UploadedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), d)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepo_ListBySellerID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDocumentRepo(mock)
	d := newTestDocument()
	d2 := newTestDocument()
	d2.SellerID = d.SellerID
	d2.Type = domain.DocumentTypeIDBack

	rows := pgxmock.NewRows(documentColumns()).
		AddRow(d.ID, d.SellerID, d.Type, d.ObjectURL, d.ContentType, d.SizeBytes, d.Checksum, d.Submitted, d.UploadedAt).
		AddRow(d2.ID, d2.SellerID, d2.Type, d2.ObjectURL, d2.ContentType, d2.SizeBytes, d2.Checksum, d2.Submitted, d2.UploadedAt)

	mock.ExpectQuery("SELECT (.+) FROM seller_documents WHERE seller_id").
		WithArgs(d.SellerID).
		WillReturnRows(rows)

	docs, err := repo.ListBySellerID(context.Background(), d.SellerID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, domain.DocumentTypeIDFront, docs[0].Type)
	assert.Equal(t, domain.DocumentTypeIDBack, docs[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepo_ListBySellerID_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDocumentRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM seller_documents WHERE seller_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(documentColumns()))

	docs, err := repo.ListBySellerID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentRepo_MarkSubmitted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDocumentRepo(mock)
	sellerID := uuid.New()

	mock.ExpectExec("UPDATE seller_documents SET submitted").
		WithArgs(sellerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	err = repo.MarkSubmitted(context.Background(), sellerID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
