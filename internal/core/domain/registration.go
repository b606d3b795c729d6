package domain

import (
	"errors"
	"time"
)

// RegistrationStep indexes the five onboarding form steps.
type RegistrationStep int

const (
	StepBusiness RegistrationStep = iota + 1
	StepAddress
	StepLegal
	StepPayout
	StepReview
)

// ErrUnknownCategory is returned when toggling a category outside the catalog.
var ErrUnknownCategory = errors.New("unknown product category")

// ErrIncompleteStep is returned by Advance when the current step still has
// missing required fields.
var ErrIncompleteStep = errors.New("current step has missing required fields")

// BusinessDetails holds step 1 of the registration form.
type BusinessDetails struct {
	BusinessName      string `json:"businessName"`
	BusinessType      string `json:"businessType"`
	Description       string `json:"description,omitempty"`
	Website           string `json:"website,omitempty"`
	Phone             string `json:"phone"`
	ContactEmail      string `json:"contactEmail,omitempty"`
	ContactPersonName string `json:"contactPersonName"`
}

// AddressDetails holds step 2.
type AddressDetails struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
}

// LegalDetails holds step 3.
type LegalDetails struct {
	TaxID           string   `json:"taxId"`
	VATNumber       string   `json:"vatNumber,omitempty"`
	BusinessLicense string   `json:"businessLicense"`
	YearsInBusiness *int     `json:"yearsInBusiness,omitempty"`
	SocialLinks     []string `json:"socialLinks,omitempty"`
}

// PayoutDetails holds step 4.
type PayoutDetails struct {
	BankAccountHolder string `json:"bankAccountHolder"`
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IfscSwiftCode     string `json:"ifscSwiftCode"`
	BranchAddress     string `json:"branchAddress,omitempty"`
}

// RegistrationDraft is the explicit state machine behind the multi-step
// onboarding form: the current step plus every field accumulated so far.
// Advancing is gated on the current step validating, so step-skipping cannot
// bypass required-field checks.
type RegistrationDraft struct {
	Step RegistrationStep `json:"step"`

	Business BusinessDetails `json:"business"`
	Address  AddressDetails  `json:"address"`
	Legal    LegalDetails    `json:"legal"`
	Payout   PayoutDetails   `json:"payout"`

	Categories         []string `json:"categories"`
	ManagesOwnShipping bool     `json:"managesOwnShipping"`
	NeedsShippingHelp  bool     `json:"needsShippingHelp"`
	TermsAccepted      bool     `json:"termsAccepted"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewRegistrationDraft starts an empty draft at step 1 with the shipping
// defaults applied.
func NewRegistrationDraft() *RegistrationDraft {
	return &RegistrationDraft{
		Step:               StepBusiness,
		ManagesOwnShipping: true,
		NeedsShippingHelp:  false,
		UpdatedAt:          time.Now().UTC(),
	}
}

// MissingFields returns the required fields of step that are still empty or
// invalid, keyed by their form field name.
func (d *RegistrationDraft) MissingFields(step RegistrationStep) []string {
	var missing []string

	add := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}

	switch step {
	case StepBusiness:
		add("businessName", d.Business.BusinessName)
		if !BusinessType(d.Business.BusinessType).Valid() {
			missing = append(missing, "businessType")
		}
		add("phone", d.Business.Phone)
		add("contactPersonName", d.Business.ContactPersonName)
	case StepAddress:
		add("addressLine1", d.Address.AddressLine1)
		add("city", d.Address.City)
		add("state", d.Address.State)
		add("country", d.Address.Country)
		add("postalCode", d.Address.PostalCode)
	case StepLegal:
		add("taxId", d.Legal.TaxID)
		add("businessLicense", d.Legal.BusinessLicense)
	case StepPayout:
		add("bankAccountHolder", d.Payout.BankAccountHolder)
		add("bankName", d.Payout.BankName)
		add("accountNumber", d.Payout.AccountNumber)
		add("ifscSwiftCode", d.Payout.IfscSwiftCode)
	case StepReview:
		if len(d.Categories) == 0 {
			missing = append(missing, "productCategories")
		}
		if !d.TermsAccepted {
			missing = append(missing, "termsAccepted")
		}
	}
	return missing
}

// Advance moves to the next step. The current step must be complete.
func (d *RegistrationDraft) Advance() error {
	if d.Step >= StepReview {
		return nil
	}
	if len(d.MissingFields(d.Step)) > 0 {
		return ErrIncompleteStep
	}
	d.Step++
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// Back moves to the previous step. Going back is never gated.
func (d *RegistrationDraft) Back() {
	if d.Step > StepBusiness {
		d.Step--
		d.UpdatedAt = time.Now().UTC()
	}
}

// ToggleCategory adds the category if absent, removes it if present. The
// name must come from the shared catalog. Toggling twice restores the
// original selection.
func (d *RegistrationDraft) ToggleCategory(name string) error {
	if !IsProductCategory(name) {
		return ErrUnknownCategory
	}
	for i, c := range d.Categories {
		if c == name {
			d.Categories = append(d.Categories[:i], d.Categories[i+1:]...)
			d.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	d.Categories = append(d.Categories, name)
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// Complete validates the whole form, returning per-field messages for every
// violation across all steps. A nil result means the draft can be submitted.
func (d *RegistrationDraft) Complete() map[string]string {
	fields := make(map[string]string)

	for step := StepBusiness; step <= StepReview; step++ {
		for _, f := range d.MissingFields(step) {
			fields[f] = "is required"
		}
	}

	if d.Legal.YearsInBusiness != nil {
		if y := *d.Legal.YearsInBusiness; y < 0 || y > 100 {
			fields["yearsInBusiness"] = "must be between 0 and 100"
		}
	}
	if len(d.Legal.SocialLinks) > MaxSocialLinks {
		fields["socialLinks"] = "at most 4 links are allowed"
	}
	for _, c := range d.Categories {
		if !IsProductCategory(c) {
			fields["productCategories"] = "contains an unknown category"
			break
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
