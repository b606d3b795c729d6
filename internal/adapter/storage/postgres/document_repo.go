package postgres

import (
	"context"
	"fmt"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
)

// DocumentRepo implements ports.DocumentRepository.
type DocumentRepo struct {
	pool Pool
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(pool Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Upsert stores a verification document. One row exists per (seller, type);
// a re-upload replaces the stored object reference and clears the submitted
// flag so the replacement goes through review again.
func (r *DocumentRepo) Upsert(ctx context.Context, doc *domain.VerificationDocument) error {
	query := `INSERT INTO seller_documents
			(id, seller_id, document_type, object_url, content_type, size_bytes, checksum, submitted, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (seller_id, document_type) DO UPDATE SET
			object_url = EXCLUDED.object_url,
			content_type = EXCLUDED.content_type,
			size_bytes = EXCLUDED.size_bytes,
			checksum = EXCLUDED.checksum,
			submitted = FALSE,
			uploaded_at = EXCLUDED.uploaded_at`

	_, err := r.pool.Exec(ctx, query,
		doc.ID, doc.SellerID, doc.Type, doc.ObjectURL, doc.ContentType,
		doc.SizeBytes, doc.Checksum, doc.Submitted, doc.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert seller document: %w", err)
	}
	return nil
}

// ListBySellerID returns all documents uploaded by a seller.
func (r *DocumentRepo) ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]domain.VerificationDocument, error) {
	query := `SELECT id, seller_id, document_type, object_url, content_type, size_bytes, checksum, submitted, uploaded_at
		FROM seller_documents WHERE seller_id = $1 ORDER BY uploaded_at`

	rows, err := r.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.VerificationDocument
	for rows.Next() {
		var d domain.VerificationDocument
		if err := rows.Scan(
			&d.ID, &d.SellerID, &d.Type, &d.ObjectURL, &d.ContentType,
			&d.SizeBytes, &d.Checksum, &d.Submitted, &d.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("scan seller document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seller documents: %w", err)
	}
	return docs, nil
}

// MarkSubmitted flags every uploaded document as handed over for review.
func (r *DocumentRepo) MarkSubmitted(ctx context.Context, sellerID uuid.UUID) error {
	query := `UPDATE seller_documents SET submitted = TRUE WHERE seller_id = $1`

	if _, err := r.pool.Exec(ctx, query, sellerID); err != nil {
		return fmt.Errorf("mark documents submitted: %w", err)
	}
	return nil
}
