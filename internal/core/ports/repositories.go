package ports

import (
	"context"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SellerRepository defines persistence operations for seller profiles.
// Create runs inside the registration transaction so the profile insert and
// the role promotion commit or roll back together.
type SellerRepository interface {
	Create(ctx context.Context, tx pgx.Tx, profile *domain.SellerProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SellerProfile, error)
}

// UserRepository defines operations on the identity mirror.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	PromoteToSeller(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// DocumentRepository defines persistence for verification documents.
// Upsert replaces the existing row for the same (seller, type).
type DocumentRepository interface {
	Upsert(ctx context.Context, doc *domain.VerificationDocument) error
	ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]domain.VerificationDocument, error)
	MarkSubmitted(ctx context.Context, sellerID uuid.UUID) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
