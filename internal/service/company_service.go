package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"corpdesk/internal/cache"
	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/media"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
)

const companyCacheTTL = 5 * time.Minute

const (
	logoFolder   = "company_logos"
	bannerFolder = "company_banners"
)

// CompanyInput carries company profile fields. For updates, nil pointers mean
// the field is left unchanged.
type CompanyInput struct {
	CompanyName *string
	Address     *string
	City        *string
	State       *string
	Country     *string
	PostalCode  *string
	Website     *string
	Industry    *string
	FoundedDate *time.Time
	Description *string
	SocialLinks map[string]string
}

// CompanyService handles the one-per-owner company profile and its image assets.
type CompanyService interface {
	Register(ctx context.Context, ownerID uint, input CompanyInput) (*model.CompanyProfile, error)
	Get(ctx context.Context, ownerID uint) (*model.CompanyProfile, error)
	Update(ctx context.Context, ownerID uint, input CompanyInput) (*model.CompanyProfile, error)
	Delete(ctx context.Context, ownerID uint) error
	UploadLogo(ctx context.Context, ownerID uint, file io.Reader) (*model.CompanyProfile, error)
	UploadBanner(ctx context.Context, ownerID uint, file io.Reader) (*model.CompanyProfile, error)
}

type companyService struct {
	repo     repository.CompanyRepository
	uploader media.Uploader
	cache    *cache.Client
}

// NewCompanyService creates a new company service.
func NewCompanyService(repo repository.CompanyRepository, uploader media.Uploader, cache *cache.Client) CompanyService {
	return &companyService{
		repo:     repo,
		uploader: uploader,
		cache:    cache,
	}
}

func companyCacheKey(ownerID uint) string {
	return fmt.Sprintf("company:%d", ownerID)
}

// Register creates the owner's company profile. Each user owns at most one.
func (s *companyService) Register(ctx context.Context, ownerID uint, input CompanyInput) (*model.CompanyProfile, error) {
	if existing, err := s.repo.FindByOwnerID(ctx, ownerID); err == nil && existing != nil {
		return nil, apperrors.ErrCompanyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check company existence: %w", err)
	}

	company := &model.CompanyProfile{OwnerID: ownerID}
	applyCompanyInput(company, input)

	if err := s.repo.Create(ctx, company); err != nil {
		if column, ok := repository.UniqueViolationColumn(err); ok && column == "owner_id" {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("create company: %w", err)
	}

	return company, nil
}

// Get retrieves the owner's company profile with caching.
func (s *companyService) Get(ctx context.Context, ownerID uint) (*model.CompanyProfile, error) {
	if data, _ := s.cache.Get(ctx, companyCacheKey(ownerID)); data != nil {
		var cached model.CompanyProfile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	company, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(company); err == nil {
		_ = s.cache.Set(ctx, companyCacheKey(ownerID), payload, companyCacheTTL)
	}
	return company, nil
}

// Update applies partial changes to the owner's company profile.
func (s *companyService) Update(ctx context.Context, ownerID uint, input CompanyInput) (*model.CompanyProfile, error) {
	updates := companyUpdates(input)
	if len(updates) == 0 {
		return s.Get(ctx, ownerID)
	}

	company, err := s.repo.Update(ctx, ownerID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company: %w", err)
	}

	_ = s.cache.Delete(ctx, companyCacheKey(ownerID))
	return company, nil
}

// Delete removes the owner's company profile.
func (s *companyService) Delete(ctx context.Context, ownerID uint) error {
	if err := s.repo.Delete(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("delete company: %w", err)
	}
	_ = s.cache.Delete(ctx, companyCacheKey(ownerID))
	return nil
}

// UploadLogo stores a logo image and persists its delivery URL.
func (s *companyService) UploadLogo(ctx context.Context, ownerID uint, file io.Reader) (*model.CompanyProfile, error) {
	return s.uploadAsset(ctx, ownerID, repository.AssetLogo, logoFolder, media.LogoTransformation, file)
}

// UploadBanner stores a banner image and persists its delivery URL.
func (s *companyService) UploadBanner(ctx context.Context, ownerID uint, file io.Reader) (*model.CompanyProfile, error) {
	return s.uploadAsset(ctx, ownerID, repository.AssetBanner, bannerFolder, media.BannerTransformation, file)
}

func (s *companyService) uploadAsset(ctx context.Context, ownerID uint, kind repository.AssetKind, folder, transformation string, file io.Reader) (*model.CompanyProfile, error) {
	// The profile must exist before any asset is attached to it.
	if _, err := s.repo.FindByOwnerID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("check company existence: %w", err)
	}

	publicID := fmt.Sprintf("%s_%d_%s", kind, ownerID, uuid.New().String())
	url, err := s.uploader.UploadImage(ctx, folder, publicID, transformation, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	company, err := s.repo.UpdateAssetURL(ctx, ownerID, kind, url)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("persist %s url: %w", kind, err)
	}

	_ = s.cache.Delete(ctx, companyCacheKey(ownerID))
	return company, nil
}

func applyCompanyInput(company *model.CompanyProfile, input CompanyInput) {
	for column, value := range companyUpdates(input) {
		switch column {
		case "company_name":
			company.CompanyName = value.(string)
		case "address":
			company.Address = value.(string)
		case "city":
			company.City = value.(string)
		case "state":
			company.State = value.(string)
		case "country":
			company.Country = value.(string)
		case "postal_code":
			company.PostalCode = value.(string)
		case "website":
			company.Website = value.(string)
		case "industry":
			company.Industry = value.(string)
		case "founded_date":
			t := value.(time.Time)
			company.FoundedDate = &t
		case "description":
			company.Description = value.(string)
		case "social_links":
			company.SocialLinks = value.(map[string]string)
		}
	}
}

func companyUpdates(input CompanyInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if input.CompanyName != nil {
		updates["company_name"] = *input.CompanyName
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.City != nil {
		updates["city"] = *input.City
	}
	if input.State != nil {
		updates["state"] = *input.State
	}
	if input.Country != nil {
		updates["country"] = *input.Country
	}
	if input.PostalCode != nil {
		updates["postal_code"] = *input.PostalCode
	}
	if input.Website != nil {
		updates["website"] = *input.Website
	}
	if input.Industry != nil {
		updates["industry"] = *input.Industry
	}
	if input.FoundedDate != nil {
		updates["founded_date"] = *input.FoundedDate
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.SocialLinks != nil {
		updates["social_links"] = input.SocialLinks
	}
	return updates
}
