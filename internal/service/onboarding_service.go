package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace-seller-service/internal/core/domain"
	"marketplace-seller-service/internal/core/ports"
	"marketplace-seller-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const uniqueViolationCode = "23505"

type onboardingService struct {
	sellerRepo   ports.SellerRepository
	userRepo     ports.UserRepository
	transactor   ports.DBTransactor
	draftStore   ports.DraftStore
	profileCache ports.ProfileCache
	draftTTL     time.Duration
	profileTTL   time.Duration
	log          zerolog.Logger
}

// NewOnboardingService creates the seller registration service.
func NewOnboardingService(
	sellerRepo ports.SellerRepository,
	userRepo ports.UserRepository,
	transactor ports.DBTransactor,
	draftStore ports.DraftStore,
	profileCache ports.ProfileCache,
	draftTTL time.Duration,
	profileTTL time.Duration,
	log zerolog.Logger,
) ports.OnboardingService {
	return &onboardingService{
		sellerRepo:   sellerRepo,
		userRepo:     userRepo,
		transactor:   transactor,
		draftStore:   draftStore,
		profileCache: profileCache,
		draftTTL:     draftTTL,
		profileTTL:   profileTTL,
		log:          log,
	}
}

func (s *onboardingService) Register(ctx context.Context, req ports.RegisterSellerRequest) (*ports.SellerCreated, error) {
	if fields := draftFromRequest(req).Complete(); fields != nil {
		return nil, apperror.ValidationFields(fields)
	}

	// Cheap pre-check; the unique constraint on user_id is the authority
	// when two registrations race.
	existing, err := s.sellerRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if existing != nil {
		return nil, apperror.ErrProfileExists()
	}

	profile := profileFromRequest(req)

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.sellerRepo.Create(ctx, dbTx, profile); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ErrProfileExists()
		}
		return nil, apperror.InternalError(err)
	}

	if err := s.userRepo.PromoteToSeller(ctx, dbTx, req.UserID); err != nil {
		return nil, apperror.InternalError(err)
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ErrProfileExists()
		}
		return nil, apperror.InternalError(err)
	}

	// Best-effort cleanup; a stale draft or cache entry is harmless.
	if err := s.draftStore.Delete(ctx, req.UserID); err != nil {
		s.log.Warn().Err(err).Str("user_id", req.UserID.String()).Msg("failed to delete registration draft")
	}
	if err := s.profileCache.Invalidate(ctx, req.UserID); err != nil {
		s.log.Warn().Err(err).Str("user_id", req.UserID.String()).Msg("failed to invalidate profile cache")
	}

	return &ports.SellerCreated{
		ID:                 profile.ID,
		BusinessName:       profile.BusinessName,
		BusinessType:       string(profile.BusinessType),
		VerificationStatus: string(profile.VerificationStatus),
		CreatedAt:          profile.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *onboardingService) GetProfile(ctx context.Context, userID uuid.UUID) (*ports.SellerProfileView, error) {
	if cached, err := s.profileCache.Get(ctx, userID); err != nil {
		s.log.Warn().Err(err).Msg("profile cache read failed")
	} else if cached != nil {
		var view ports.SellerProfileView
		if err := json.Unmarshal(cached, &view); err == nil {
			return &view, nil
		}
	}

	profile, err := s.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if profile == nil {
		return nil, apperror.ErrNotFound("seller profile")
	}

	view := &ports.SellerProfileView{
		ID:                 profile.ID,
		BusinessName:       profile.BusinessName,
		BusinessType:       string(profile.BusinessType),
		Description:        profile.Description,
		Website:            profile.Website,
		Phone:              profile.Phone,
		VerificationStatus: string(profile.VerificationStatus),
		AverageRating:      profile.AverageRating,
		TotalRatings:       profile.TotalRatings,
		TotalSales:         profile.TotalSales,
		CreatedAt:          profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          profile.UpdatedAt.Format(time.RFC3339),
	}

	if raw, err := json.Marshal(view); err == nil {
		if err := s.profileCache.Set(ctx, userID, raw, s.profileTTL); err != nil {
			s.log.Warn().Err(err).Msg("profile cache write failed")
		}
	}

	return view, nil
}

func (s *onboardingService) GetDraft(ctx context.Context, userID uuid.UUID) (*domain.RegistrationDraft, error) {
	draft, err := s.draftStore.Get(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if draft == nil {
		draft = domain.NewRegistrationDraft()
	}
	return draft, nil
}

func (s *onboardingService) UpdateDraft(ctx context.Context, userID uuid.UUID, update ports.DraftUpdate) (*domain.RegistrationDraft, error) {
	draft, err := s.GetDraft(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Business != nil {
		draft.Business = *update.Business
	}
	if update.Address != nil {
		draft.Address = *update.Address
	}
	if update.Legal != nil {
		draft.Legal = *update.Legal
	}
	if update.Payout != nil {
		draft.Payout = *update.Payout
	}
	if update.ToggleCategory != nil {
		if err := draft.ToggleCategory(*update.ToggleCategory); err != nil {
			return nil, apperror.Validation(err.Error())
		}
	}
	if update.ManagesOwnShipping != nil {
		draft.ManagesOwnShipping = *update.ManagesOwnShipping
	}
	if update.NeedsShippingHelp != nil {
		draft.NeedsShippingHelp = *update.NeedsShippingHelp
	}
	if update.TermsAccepted != nil {
		draft.TermsAccepted = *update.TermsAccepted
	}
	draft.UpdatedAt = time.Now().UTC()

	switch update.Action {
	case "", "save":
		// Persist as-is.
	case "next":
		if err := draft.Advance(); err != nil {
			if errors.Is(err, domain.ErrIncompleteStep) {
				fields := make(map[string]string)
				for _, f := range draft.MissingFields(draft.Step) {
					fields[f] = "is required"
				}
				return nil, apperror.ValidationFields(fields)
			}
			return nil, apperror.InternalError(err)
		}
	case "back":
		draft.Back()
	default:
		return nil, apperror.Validation("action must be one of save, next, back")
	}

	if err := s.draftStore.Save(ctx, userID, draft, s.draftTTL); err != nil {
		return nil, apperror.InternalError(err)
	}
	return draft, nil
}

func (s *onboardingService) DiscardDraft(ctx context.Context, userID uuid.UUID) error {
	if err := s.draftStore.Delete(ctx, userID); err != nil {
		return apperror.InternalError(err)
	}
	return nil
}

// draftFromRequest rebuilds the full registration form so the whole-form
// validation in domain.RegistrationDraft.Complete applies to direct
// registration calls too.
func draftFromRequest(req ports.RegisterSellerRequest) *domain.RegistrationDraft {
	return &domain.RegistrationDraft{
		Step: domain.StepReview,
		Business: domain.BusinessDetails{
			BusinessName:      req.BusinessName,
			BusinessType:      req.BusinessType,
			Description:       req.Description,
			Website:           req.Website,
			Phone:             req.Phone,
			ContactEmail:      req.ContactEmail,
			ContactPersonName: req.ContactPersonName,
		},
		Address: domain.AddressDetails{
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			City:         req.City,
			State:        req.State,
			Country:      req.Country,
			PostalCode:   req.PostalCode,
		},
		Legal: domain.LegalDetails{
			TaxID:           req.TaxID,
			VATNumber:       req.VATNumber,
			BusinessLicense: req.BusinessLicense,
			YearsInBusiness: req.YearsInBusiness,
			SocialLinks:     req.SocialLinks,
		},
		Payout: domain.PayoutDetails{
			BankAccountHolder: req.BankAccountHolder,
			BankName:          req.BankName,
			AccountNumber:     req.AccountNumber,
			IfscSwiftCode:     req.IfscSwiftCode,
			BranchAddress:     req.BranchAddress,
		},
		Categories:         req.ProductCategories,
		ManagesOwnShipping: req.ManagesOwnShipping,
		NeedsShippingHelp:  req.NeedsShippingHelp,
		TermsAccepted:      req.TermsAccepted,
	}
}

func profileFromRequest(req ports.RegisterSellerRequest) *domain.SellerProfile {
	now := time.Now().UTC()

	// A nil slice encodes as SQL NULL; social_links is NOT NULL.
	socialLinks := req.SocialLinks
	if socialLinks == nil {
		socialLinks = []string{}
	}

	return &domain.SellerProfile{
		ID:     uuid.New(),
		UserID: req.UserID,

		BusinessName:      req.BusinessName,
		BusinessType:      domain.BusinessType(req.BusinessType),
		Description:       optional(req.Description),
		Website:           optional(req.Website),
		Phone:             req.Phone,
		ContactEmail:      optional(req.ContactEmail),
		ContactPersonName: req.ContactPersonName,

		AddressLine1: req.AddressLine1,
		AddressLine2: optional(req.AddressLine2),
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		PostalCode:   req.PostalCode,

		TaxID:           req.TaxID,
		VATNumber:       optional(req.VATNumber),
		BusinessLicense: req.BusinessLicense,
		YearsInBusiness: req.YearsInBusiness,
		SocialLinks:     socialLinks,

		BankAccountHolder: req.BankAccountHolder,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		IfscSwiftCode:     req.IfscSwiftCode,
		BranchAddress:     optional(req.BranchAddress),

		Categories:         req.ProductCategories,
		ManagesOwnShipping: req.ManagesOwnShipping,
		NeedsShippingHelp:  req.NeedsShippingHelp,

		TermsAccepted:   true,
		TermsAcceptedAt: &now,

		VerificationStatus: domain.VerificationStatusPending,

		CreatedAt: now,
		UpdatedAt: now,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
