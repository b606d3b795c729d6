package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessType enumerates the legal forms a seller can register under.
type BusinessType string

const (
	BusinessTypeIndividual         BusinessType = "INDIVIDUAL"
	BusinessTypeSoleProprietorship BusinessType = "SOLE_PROPRIETORSHIP"
	BusinessTypePartnership        BusinessType = "PARTNERSHIP"
	BusinessTypeLLC                BusinessType = "LLC"
	BusinessTypeCorporation        BusinessType = "CORPORATION"
	BusinessTypeNonprofit          BusinessType = "NONPROFIT"
)

// BusinessTypes lists every valid business type, in display order.
var BusinessTypes = []BusinessType{
	BusinessTypeIndividual,
	BusinessTypeSoleProprietorship,
	BusinessTypePartnership,
	BusinessTypeLLC,
	BusinessTypeCorporation,
	BusinessTypeNonprofit,
}

// Valid reports whether b is a known business type.
func (b BusinessType) Valid() bool {
	for _, t := range BusinessTypes {
		if b == t {
			return true
		}
	}
	return false
}

// VerificationStatus represents the vetting stage of a seller account.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusInReview VerificationStatus = "IN_REVIEW"
	VerificationStatusVerified VerificationStatus = "VERIFIED"
	VerificationStatusRejected VerificationStatus = "REJECTED"
	VerificationStatusPremium  VerificationStatus = "PREMIUM"
)

// Valid reports whether s is a known verification status.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusInReview,
		VerificationStatusVerified, VerificationStatusRejected,
		VerificationStatusPremium:
		return true
	}
	return false
}

// IsVerified reports whether the seller has passed review.
func (s VerificationStatus) IsVerified() bool {
	return s == VerificationStatusVerified || s == VerificationStatusPremium
}

// ProductCategories is the fixed catalog shared between the storefront and
// the registration form. Order matters for display.
var ProductCategories = []string{
	"Electronics",
	"Fashion & Clothing",
	"Home & Garden",
	"Health & Beauty",
	"Sports & Outdoors",
	"Books & Media",
	"Toys & Games",
	"Automotive",
	"Food & Beverages",
	"Art & Crafts",
	"Jewelry & Accessories",
	"Pet Supplies",
	"Office & Business",
	"Baby & Kids",
	"Music & Instruments",
	"Other",
}

// IsProductCategory reports whether name is in the catalog.
func IsProductCategory(name string) bool {
	for _, c := range ProductCategories {
		if c == name {
			return true
		}
	}
	return false
}

// MaxSocialLinks bounds the number of social profile URLs per seller.
const MaxSocialLinks = 4

// SellerProfile is the persisted business-registration record for one user.
// Payout and tax identifiers are never serialized to callers.
type SellerProfile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"-"`

	BusinessName      string       `json:"business_name"`
	BusinessType      BusinessType `json:"business_type"`
	Description       *string      `json:"description,omitempty"`
	Website           *string      `json:"website,omitempty"`
	Phone             string       `json:"phone"`
	ContactEmail      *string      `json:"contact_email,omitempty"`
	ContactPersonName string       `json:"contact_person_name"`

	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postal_code"`

	TaxID           string  `json:"-"` // Never expose
	VATNumber       *string `json:"-"` // Never expose
	BusinessLicense string  `json:"-"` // Never expose
	YearsInBusiness *int    `json:"years_in_business,omitempty"`

	SocialLinks []string `json:"social_links,omitempty"`

	BankAccountHolder string  `json:"-"` // Never expose
	BankName          string  `json:"-"` // Never expose
	AccountNumber     string  `json:"-"` // Never expose
	IfscSwiftCode     string  `json:"-"` // Never expose
	BranchAddress     *string `json:"-"` // Never expose

	Categories         []string `json:"categories"`
	ManagesOwnShipping bool     `json:"manages_own_shipping"`
	NeedsShippingHelp  bool     `json:"needs_shipping_help"`

	TermsAccepted   bool       `json:"terms_accepted"`
	TermsAcceptedAt *time.Time `json:"terms_accepted_at,omitempty"`

	VerificationStatus VerificationStatus `json:"verification_status"`

	// Aggregates maintained by the review/rating pipeline; read-only here.
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
	TotalSales    int64   `json:"total_sales"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsVerified reports whether the profile has passed review.
func (p *SellerProfile) IsVerified() bool {
	return p.VerificationStatus.IsVerified()
}
