package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SellerRepo implements ports.SellerRepository.
type SellerRepo struct {
	pool Pool
}

// NewSellerRepo creates a new SellerRepo.
func NewSellerRepo(pool Pool) *SellerRepo {
	return &SellerRepo{pool: pool}
}

const sellerColumns = `id, user_id, business_name, business_type, description, website, phone,
	contact_email, contact_person_name,
	address_line1, address_line2, city, state, country, postal_code,
	tax_id, vat_number, business_license, years_in_business, social_links,
	bank_account_holder, bank_name, account_number, ifsc_swift_code, branch_address,
	categories, manages_own_shipping, needs_shipping_help,
	terms_accepted, terms_accepted_at, verification_status,
	average_rating, total_ratings, total_sales, created_at, updated_at`

// Create inserts a seller profile inside the supplied transaction. The
// unique index on user_id rejects a second profile for the same account.
func (r *SellerRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.SellerProfile) error {
	query := `INSERT INTO sellers (` + sellerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.UserID, p.BusinessName, p.BusinessType, p.Description, p.Website, p.Phone,
		p.ContactEmail, p.ContactPersonName,
		p.AddressLine1, p.AddressLine2, p.City, p.State, p.Country, p.PostalCode,
		p.TaxID, p.VATNumber, p.BusinessLicense, p.YearsInBusiness, p.SocialLinks,
		p.BankAccountHolder, p.BankName, p.AccountNumber, p.IfscSwiftCode, p.BranchAddress,
		p.Categories, p.ManagesOwnShipping, p.NeedsShippingHelp,
		p.TermsAccepted, p.TermsAcceptedAt, p.VerificationStatus,
		p.AverageRating, p.TotalRatings, p.TotalSales, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByUserID fetches the seller profile owned by a user.
func (r *SellerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SellerProfile, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE user_id = $1`

	p := &domain.SellerProfile{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.BusinessName, &p.BusinessType, &p.Description, &p.Website, &p.Phone,
		&p.ContactEmail, &p.ContactPersonName,
		&p.AddressLine1, &p.AddressLine2, &p.City, &p.State, &p.Country, &p.PostalCode,
		&p.TaxID, &p.VATNumber, &p.BusinessLicense, &p.YearsInBusiness, &p.SocialLinks,
		&p.BankAccountHolder, &p.BankName, &p.AccountNumber, &p.IfscSwiftCode, &p.BranchAddress,
		&p.Categories, &p.ManagesOwnShipping, &p.NeedsShippingHelp,
		&p.TermsAccepted, &p.TermsAcceptedAt, &p.VerificationStatus,
		&p.AverageRating, &p.TotalRatings, &p.TotalSales, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller by user_id: %w", err)
	}
	return p, nil
}
