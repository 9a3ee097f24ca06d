package repository

import (
	"context"

	"gorm.io/gorm"

	"corpdesk/internal/model"
)

// AssetKind selects which image URL column an upload updates.
type AssetKind string

const (
	// AssetLogo is the company logo image.
	AssetLogo AssetKind = "logo"
	// AssetBanner is the company banner image.
	AssetBanner AssetKind = "banner"
)

// CompanyRepository defines persistence operations for company profiles.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.CompanyProfile) error
	FindByOwnerID(ctx context.Context, ownerID uint) (*model.CompanyProfile, error)
	Update(ctx context.Context, ownerID uint, updates map[string]interface{}) (*model.CompanyProfile, error)
	UpdateAssetURL(ctx context.Context, ownerID uint, kind AssetKind, url string) (*model.CompanyProfile, error)
	Delete(ctx context.Context, ownerID uint) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository builds a GORM-backed repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.CompanyProfile) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*model.CompanyProfile, error) {
	var company model.CompanyProfile
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Update(ctx context.Context, ownerID uint, updates map[string]interface{}) (*model.CompanyProfile, error) {
	res := r.db.WithContext(ctx).Model(&model.CompanyProfile{}).Where("owner_id = ?", ownerID).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByOwnerID(ctx, ownerID)
}

func (r *companyRepository) UpdateAssetURL(ctx context.Context, ownerID uint, kind AssetKind, url string) (*model.CompanyProfile, error) {
	column := "logo_url"
	if kind == AssetBanner {
		column = "banner_url"
	}
	return r.Update(ctx, ownerID, map[string]interface{}{column: url})
}

func (r *companyRepository) Delete(ctx context.Context, ownerID uint) error {
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.CompanyProfile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
