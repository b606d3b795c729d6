package ports

import (
	"context"
	"io"
	"time"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed identity claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// --- Service Ports (Business Logic) ---

// OnboardingService defines the seller registration and profile read paths.
type OnboardingService interface {
	Register(ctx context.Context, req RegisterSellerRequest) (*SellerCreated, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*SellerProfileView, error)

	GetDraft(ctx context.Context, userID uuid.UUID) (*domain.RegistrationDraft, error)
	UpdateDraft(ctx context.Context, userID uuid.UUID, update DraftUpdate) (*domain.RegistrationDraft, error)
	DiscardDraft(ctx context.Context, userID uuid.UUID) error
}

// RegisterSellerRequest holds the validated registration payload.
type RegisterSellerRequest struct {
	UserID uuid.UUID

	BusinessName      string
	BusinessType      string
	Description       string
	Website           string
	Phone             string
	ContactEmail      string
	ContactPersonName string

	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	PostalCode   string

	TaxID           string
	VATNumber       string
	BusinessLicense string
	YearsInBusiness *int
	SocialLinks     []string

	BankAccountHolder string
	BankName          string
	AccountNumber     string
	IfscSwiftCode     string
	BranchAddress     string

	ProductCategories  []string
	ManagesOwnShipping bool
	NeedsShippingHelp  bool
	TermsAccepted      bool
}

// SellerCreated is the public projection returned after registration.
// Payout and tax fields are deliberately absent.
type SellerCreated struct {
	ID                 uuid.UUID `json:"id"`
	BusinessName       string    `json:"businessName"`
	BusinessType       string    `json:"businessType"`
	VerificationStatus string    `json:"verificationStatus"`
	CreatedAt          string    `json:"createdAt"`
}

// SellerProfileView is the read projection served to the dashboard.
type SellerProfileView struct {
	ID                 uuid.UUID `json:"id"`
	BusinessName       string    `json:"businessName"`
	BusinessType       string    `json:"businessType"`
	Description        *string   `json:"description,omitempty"`
	Website            *string   `json:"website,omitempty"`
	Phone              string    `json:"phone"`
	VerificationStatus string    `json:"verificationStatus"`
	AverageRating      float64   `json:"averageRating"`
	TotalRatings       int64     `json:"totalRatings"`
	TotalSales         int64     `json:"totalSales"`
	CreatedAt          string    `json:"createdAt"`
	UpdatedAt          string    `json:"updatedAt"`
}

// DraftUpdate carries one mutation of the registration draft. Only the
// section matching the addressed step needs to be present. Action is one of
// "save", "next", "back".
type DraftUpdate struct {
	Business *domain.BusinessDetails
	Address  *domain.AddressDetails
	Legal    *domain.LegalDetails
	Payout   *domain.PayoutDetails

	ToggleCategory     *string
	ManagesOwnShipping *bool
	NeedsShippingHelp  *bool
	TermsAccepted      *bool

	Action string
}

// DocumentService defines the verification-document workflow.
type DocumentService interface {
	Upload(ctx context.Context, userID uuid.UUID, upload DocumentUpload) (*domain.VerificationDocument, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.VerificationDocument, error)
	Submit(ctx context.Context, userID uuid.UUID) error
}

// DocumentUpload holds one file selected for a document slot.
type DocumentUpload struct {
	Type        domain.DocumentType
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// --- Storage Ports ---

// ObjectStore persists document blobs in an external object store and
// returns a durable object reference.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// DraftStore holds in-progress registration drafts.
type DraftStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.RegistrationDraft, error) // nil when absent
	Save(ctx context.Context, userID uuid.UUID, draft *domain.RegistrationDraft, ttl time.Duration) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ProfileCache caches the serialized profile projection.
type ProfileCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]byte, error) // nil on miss
	Set(ctx context.Context, userID uuid.UUID, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
