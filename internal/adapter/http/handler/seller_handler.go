package handler

import (
	"marketplace-seller-service/internal/adapter/http/dto"
	"marketplace-seller-service/internal/adapter/http/middleware"
	"marketplace-seller-service/internal/core/domain"
	"marketplace-seller-service/internal/core/ports"
	"marketplace-seller-service/pkg/apperror"
	"marketplace-seller-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SellerHandler handles seller registration and profile endpoints.
type SellerHandler struct {
	onboardingSvc ports.OnboardingService
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(onboardingSvc ports.OnboardingService) *SellerHandler {
	return &SellerHandler{onboardingSvc: onboardingSvc}
}

// Register handles POST /api/seller/register.
func (h *SellerHandler) Register(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.RegisterSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ValidationFields(dto.FieldErrors(err)))
		return
	}
	dto.SanitizeStruct(&req)

	created, err := h.onboardingSvc.Register(c.Request.Context(), toRegisterRequest(userID.(uuid.UUID), req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"seller": created})
}

// GetProfile handles GET /api/seller/profile.
func (h *SellerHandler) GetProfile(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	view, err := h.onboardingSvc.GetProfile(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"seller": view})
}

// GetDraft handles GET /api/seller/register/draft.
func (h *SellerHandler) GetDraft(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	draft, err := h.onboardingSvc.GetDraft(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"draft": draft})
}

// UpdateDraft handles PUT /api/seller/register/draft.
func (h *SellerHandler) UpdateDraft(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ValidationFields(dto.FieldErrors(err)))
		return
	}
	dto.SanitizeStruct(&req)

	draft, err := h.onboardingSvc.UpdateDraft(c.Request.Context(), userID.(uuid.UUID), toDraftUpdate(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"draft": draft})
}

// DiscardDraft handles DELETE /api/seller/register/draft.
func (h *SellerHandler) DiscardDraft(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrUnauthorized())
		return
	}

	if err := h.onboardingSvc.DiscardDraft(c.Request.Context(), userID.(uuid.UUID)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func toRegisterRequest(userID uuid.UUID, req dto.RegisterSellerRequest) ports.RegisterSellerRequest {
	managesOwnShipping := true
	if req.ManagesOwnShipping != nil {
		managesOwnShipping = *req.ManagesOwnShipping
	}

	return ports.RegisterSellerRequest{
		UserID: userID,

		BusinessName:      req.BusinessName,
		BusinessType:      req.BusinessType,
		Description:       req.Description,
		Website:           req.Website,
		Phone:             req.Phone,
		ContactEmail:      req.ContactEmail,
		ContactPersonName: req.ContactPersonName,

		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,

		TaxID:           req.TaxID,
		VATNumber:       req.VATNumber,
		BusinessLicense: req.BusinessLicense,
		YearsInBusiness: req.YearsInBusiness,
		SocialLinks:     req.SocialLinks,

		BankAccountHolder: req.BankAccountHolder,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		IfscSwiftCode:     req.IfscSwiftCode,
		BranchAddress:     req.BranchAddress,

		ProductCategories:  req.ProductCategories,
		ManagesOwnShipping: managesOwnShipping,
		NeedsShippingHelp:  req.NeedsShippingHelp,
		TermsAccepted:      req.TermsAccepted,
	}
}

func toDraftUpdate(req dto.UpdateDraftRequest) ports.DraftUpdate {
	upd := ports.DraftUpdate{
		ToggleCategory:     req.ToggleCategory,
		ManagesOwnShipping: req.ManagesOwnShipping,
		NeedsShippingHelp:  req.NeedsShippingHelp,
		TermsAccepted:      req.TermsAccepted,
		Action:             req.Action,
	}

	if req.Business != nil {
		upd.Business = &domain.BusinessDetails{
			BusinessName:      req.Business.BusinessName,
			BusinessType:      req.Business.BusinessType,
			Description:       req.Business.Description,
			Website:           req.Business.Website,
			Phone:             req.Business.Phone,
			ContactEmail:      req.Business.ContactEmail,
			ContactPersonName: req.Business.ContactPersonName,
		}
	}
	if req.Address != nil {
		upd.Address = &domain.AddressDetails{
			AddressLine1: req.Address.AddressLine1,
			AddressLine2: req.Address.AddressLine2,
			City:         req.Address.City,
			State:        req.Address.State,
			Country:      req.Address.Country,
			PostalCode:   req.Address.PostalCode,
		}
	}
	if req.Legal != nil {
		upd.Legal = &domain.LegalDetails{
			TaxID:           req.Legal.TaxID,
			VATNumber:       req.Legal.VATNumber,
			BusinessLicense: req.Legal.BusinessLicense,
			YearsInBusiness: req.Legal.YearsInBusiness,
			SocialLinks:     req.Legal.SocialLinks,
		}
	}
	if req.Payout != nil {
		upd.Payout = &domain.PayoutDetails{
			BankAccountHolder: req.Payout.BankAccountHolder,
			BankName:          req.Payout.BankName,
			AccountNumber:     req.Payout.AccountNumber,
			IfscSwiftCode:     req.Payout.IfscSwiftCode,
			BranchAddress:     req.Payout.BranchAddress,
		}
	}
	return upd
}
