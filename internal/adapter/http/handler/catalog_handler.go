package handler

import (
	"net/http"

	"marketplace-seller-service/internal/adapter/http/dto"
	"marketplace-seller-service/internal/core/domain"
	"marketplace-seller-service/internal/core/ports"
	"marketplace-seller-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static registration catalogs used by the
// onboarding form.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Categories handles GET /api/catalog/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	response.OK(c, gin.H{"categories": domain.ProductCategories})
}

// BusinessTypes handles GET /api/catalog/business-types.
func (h *CatalogHandler) BusinessTypes(c *gin.Context) {
	types := make([]string, len(domain.BusinessTypes))
	for i, t := range domain.BusinessTypes {
		types[i] = string(t)
	}
	response.OK(c, gin.H{"businessTypes": types})
}

// DocumentTypes handles GET /api/catalog/document-types.
func (h *CatalogHandler) DocumentTypes(c *gin.Context) {
	items := []dto.DocumentTypeResponse{}
	for _, t := range []domain.DocumentType{
		domain.DocumentTypeIDFront,
		domain.DocumentTypeIDBack,
		domain.DocumentTypeBusinessLicense,
		domain.DocumentTypeTaxCertificate,
		domain.DocumentTypeBankStatement,
		domain.DocumentTypeAddressProof,
	} {
		items = append(items, dto.DocumentTypeResponse{
			Type:     string(t),
			Label:    t.Label(),
			Required: t.Required(),
		})
	}
	response.OK(c, gin.H{"documentTypes": items})
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
