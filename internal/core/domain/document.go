package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies one slot in the verification-document checklist.
type DocumentType string

const (
	DocumentTypeIDFront         DocumentType = "ID_FRONT"
	DocumentTypeIDBack          DocumentType = "ID_BACK"
	DocumentTypeBusinessLicense DocumentType = "BUSINESS_LICENSE"
	DocumentTypeTaxCertificate  DocumentType = "TAX_CERTIFICATE"
	DocumentTypeBankStatement   DocumentType = "BANK_STATEMENT"
	DocumentTypeAddressProof    DocumentType = "ADDRESS_PROOF"
)

var documentLabels = map[DocumentType]string{
	DocumentTypeIDFront:         "Government ID (Front)",
	DocumentTypeIDBack:          "Government ID (Back)",
	DocumentTypeBusinessLicense: "Business License",
	DocumentTypeTaxCertificate:  "Tax Certificate",
	DocumentTypeBankStatement:   "Bank Statement",
	DocumentTypeAddressProof:    "Proof of Address",
}

// RequiredDocumentTypes must all be uploaded before submission for review.
var RequiredDocumentTypes = []DocumentType{
	DocumentTypeIDFront,
	DocumentTypeIDBack,
}

// Valid reports whether d is a known document type.
func (d DocumentType) Valid() bool {
	_, ok := documentLabels[d]
	return ok
}

// Label returns the user-facing name for the document type.
func (d DocumentType) Label() string {
	return documentLabels[d]
}

// Required reports whether the document type is mandatory for review.
func (d DocumentType) Required() bool {
	for _, r := range RequiredDocumentTypes {
		if d == r {
			return true
		}
	}
	return false
}

// MaxDocumentSizeBytes is the upload size cap (5 MiB).
const MaxDocumentSizeBytes int64 = 5 << 20

var allowedDocumentContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

// IsAllowedDocumentContentType reports whether the MIME type is accepted
// for verification uploads.
func IsAllowedDocumentContentType(contentType string) bool {
	_, ok := allowedDocumentContentTypes[contentType]
	return ok
}

// VerificationDocument is one stored upload. One row per (seller, type);
// re-uploading a type replaces the prior object reference.
type VerificationDocument struct {
	ID          uuid.UUID    `json:"id"`
	SellerID    uuid.UUID    `json:"-"`
	Type        DocumentType `json:"type"`
	ObjectURL   string       `json:"object_url"`
	ContentType string       `json:"content_type"`
	SizeBytes   int64        `json:"size_bytes"`
	Checksum    string       `json:"checksum"` // SHA-256 hex of the uploaded content
	Submitted   bool         `json:"submitted"`
	UploadedAt  time.Time    `json:"uploaded_at"`
}

// MissingRequiredDocuments returns the required types absent from docs,
// in checklist order.
func MissingRequiredDocuments(docs []VerificationDocument) []DocumentType {
	present := make(map[DocumentType]bool, len(docs))
	for _, d := range docs {
		present[d.Type] = true
	}

	var missing []DocumentType
	for _, req := range RequiredDocumentTypes {
		if !present[req] {
			missing = append(missing, req)
		}
	}
	return missing
}
