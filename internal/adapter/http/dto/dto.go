package dto

// RegisterSellerRequest is the request body for seller registration. Field
// names follow the storefront's camelCase wire convention.
type RegisterSellerRequest struct {
	BusinessName      string  `json:"businessName" binding:"required,min=1,max=120"`
	BusinessType      string  `json:"businessType" binding:"required,business_type"`
	Description       string  `json:"description,omitempty" binding:"omitempty,max=2000"`
	Website           string  `json:"website,omitempty" binding:"omitempty,safe_url"`
	Phone             string  `json:"phone" binding:"required,phone_number"`
	ContactEmail      string  `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPersonName string  `json:"contactPersonName" binding:"required,max=120"`

	AddressLine1 string `json:"addressLine1" binding:"required,max=200"`
	AddressLine2 string `json:"addressLine2,omitempty" binding:"omitempty,max=200"`
	City         string `json:"city" binding:"required,max=100"`
	State        string `json:"state" binding:"required,max=100"`
	Country      string `json:"country" binding:"required,max=100"`
	PostalCode   string `json:"postalCode" binding:"required,max=20"`

	TaxID           string   `json:"taxId" binding:"required,max=50"`
	VATNumber       string   `json:"vatNumber,omitempty" binding:"omitempty,max=50"`
	BusinessLicense string   `json:"businessLicense" binding:"required,max=100"`
	YearsInBusiness *int     `json:"yearsInBusiness,omitempty" binding:"omitempty,gte=0,lte=100"`
	SocialLinks     []string `json:"socialLinks,omitempty" binding:"omitempty,max=4,dive,safe_url"`

	BankAccountHolder string `json:"bankAccountHolder" binding:"required,max=120"`
	BankName          string `json:"bankName" binding:"required,max=120"`
	AccountNumber     string `json:"accountNumber" binding:"required,max=40"`
	IfscSwiftCode     string `json:"ifscSwiftCode" binding:"required,max=20"`
	BranchAddress     string `json:"branchAddress,omitempty" binding:"omitempty,max=200"`

	ProductCategories []string `json:"productCategories" binding:"required,min=1,dive,product_category"`

	ManagesOwnShipping *bool `json:"managesOwnShipping,omitempty"`
	NeedsShippingHelp  bool  `json:"needsShippingHelp,omitempty"`
	TermsAccepted      bool  `json:"termsAccepted"`
}

// BusinessSection is the step-1 slice of the registration draft.
type BusinessSection struct {
	BusinessName      string `json:"businessName" binding:"omitempty,max=120"`
	BusinessType      string `json:"businessType" binding:"omitempty,business_type"`
	Description       string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Website           string `json:"website,omitempty" binding:"omitempty,safe_url"`
	Phone             string `json:"phone" binding:"omitempty,phone_number"`
	ContactEmail      string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPersonName string `json:"contactPersonName" binding:"omitempty,max=120"`
}

// AddressSection is the step-2 slice of the registration draft.
type AddressSection struct {
	AddressLine1 string `json:"addressLine1" binding:"omitempty,max=200"`
	AddressLine2 string `json:"addressLine2,omitempty" binding:"omitempty,max=200"`
	City         string `json:"city" binding:"omitempty,max=100"`
	State        string `json:"state" binding:"omitempty,max=100"`
	Country      string `json:"country" binding:"omitempty,max=100"`
	PostalCode   string `json:"postalCode" binding:"omitempty,max=20"`
}

// LegalSection is the step-3 slice of the registration draft.
type LegalSection struct {
	TaxID           string   `json:"taxId" binding:"omitempty,max=50"`
	VATNumber       string   `json:"vatNumber,omitempty" binding:"omitempty,max=50"`
	BusinessLicense string   `json:"businessLicense" binding:"omitempty,max=100"`
	YearsInBusiness *int     `json:"yearsInBusiness,omitempty" binding:"omitempty,gte=0,lte=100"`
	SocialLinks     []string `json:"socialLinks,omitempty" binding:"omitempty,max=4,dive,safe_url"`
}

// PayoutSection is the step-4 slice of the registration draft.
type PayoutSection struct {
	BankAccountHolder string `json:"bankAccountHolder" binding:"omitempty,max=120"`
	BankName          string `json:"bankName" binding:"omitempty,max=120"`
	AccountNumber     string `json:"accountNumber" binding:"omitempty,max=40"`
	IfscSwiftCode     string `json:"ifscSwiftCode" binding:"omitempty,max=20"`
	BranchAddress     string `json:"branchAddress,omitempty" binding:"omitempty,max=200"`
}

// UpdateDraftRequest mutates the registration draft. Only the sections being
// edited need to be present; action controls step navigation.
type UpdateDraftRequest struct {
	Business *BusinessSection `json:"business,omitempty"`
	Address  *AddressSection  `json:"address,omitempty"`
	Legal    *LegalSection    `json:"legal,omitempty"`
	Payout   *PayoutSection   `json:"payout,omitempty"`

	ToggleCategory     *string `json:"toggleCategory,omitempty" binding:"omitempty,max=50"`
	ManagesOwnShipping *bool   `json:"managesOwnShipping,omitempty"`
	NeedsShippingHelp  *bool   `json:"needsShippingHelp,omitempty"`
	TermsAccepted      *bool   `json:"termsAccepted,omitempty"`

	Action string `json:"action,omitempty" binding:"omitempty,oneof=save next back"`
}

// DocumentResponse is the wire shape of one verification document.
type DocumentResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Label       string `json:"label"`
	Required    bool   `json:"required"`
	ObjectURL   string `json:"objectUrl"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Checksum    string `json:"checksum"`
	Submitted   bool   `json:"submitted"`
	UploadedAt  string `json:"uploadedAt"`
}

// DocumentTypeResponse describes one checklist slot for the upload UI.
type DocumentTypeResponse struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}
