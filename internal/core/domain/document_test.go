package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentType_Valid(t *testing.T) {
	for _, d := range []DocumentType{
		DocumentTypeIDFront,
		DocumentTypeIDBack,
		DocumentTypeBusinessLicense,
		DocumentTypeTaxCertificate,
		DocumentTypeBankStatement,
		DocumentTypeAddressProof,
	} {
		assert.True(t, d.Valid(), string(d))
	}
	assert.False(t, DocumentType("PASSPORT").Valid())
}

func TestDocumentType_Required(t *testing.T) {
	assert.True(t, DocumentTypeIDFront.Required())
	assert.True(t, DocumentTypeIDBack.Required())
	assert.False(t, DocumentTypeBusinessLicense.Required())
	assert.False(t, DocumentTypeBankStatement.Required())
}

func TestDocumentType_Label(t *testing.T) {
	assert.Equal(t, "Government ID (Front)", DocumentTypeIDFront.Label())
	assert.Equal(t, "Proof of Address", DocumentTypeAddressProof.Label())
}

func TestIsAllowedDocumentContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"application/pdf", true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", false},
		{"image/gif", false},
		{"text/plain", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedDocumentContentType(tt.contentType))
		})
	}
}

func TestMaxDocumentSizeBytes(t *testing.T) {
	assert.Equal(t, int64(5*1024*1024), MaxDocumentSizeBytes)
}

func TestMissingRequiredDocuments_Empty(t *testing.T) {
	missing := MissingRequiredDocuments(nil)
	assert.Equal(t, []DocumentType{DocumentTypeIDFront, DocumentTypeIDBack}, missing)
}

func TestMissingRequiredDocuments_Partial(t *testing.T) {
	docs := []VerificationDocument{
		{Type: DocumentTypeIDFront},
		{Type: DocumentTypeBankStatement},
	}
	missing := MissingRequiredDocuments(docs)
	assert.Equal(t, []DocumentType{DocumentTypeIDBack}, missing)
}

func TestMissingRequiredDocuments_AllPresent(t *testing.T) {
	docs := []VerificationDocument{
		{Type: DocumentTypeIDFront},
		{Type: DocumentTypeIDBack},
	}
	assert.Empty(t, MissingRequiredDocuments(docs))
}
