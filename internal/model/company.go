package model

import "time"

// CompanyProfile represents the single company profile owned by a user.
type CompanyProfile struct {
	ID          uint              `json:"id" gorm:"primaryKey"`
	OwnerID     uint              `json:"owner_id" gorm:"uniqueIndex:company_profile_owner_id_key;not null"`
	CompanyName string            `json:"company_name" gorm:"size:255;not null"`
	Address     string            `json:"address" gorm:"size:255"`
	City        string            `json:"city" gorm:"size:100"`
	State       string            `json:"state" gorm:"size:100"`
	Country     string            `json:"country" gorm:"size:100"`
	PostalCode  string            `json:"postal_code" gorm:"size:20"`
	Website     string            `json:"website,omitempty" gorm:"size:255"`
	LogoURL     string            `json:"logo_url,omitempty" gorm:"size:512"`
	BannerURL   string            `json:"banner_url,omitempty" gorm:"size:512"`
	Industry    string            `json:"industry" gorm:"size:100"`
	FoundedDate *time.Time        `json:"founded_date,omitempty"`
	Description string            `json:"description,omitempty" gorm:"type:text"`
	SocialLinks map[string]string `json:"social_links,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName keeps the legacy singular table name.
func (CompanyProfile) TableName() string {
	return "company_profile"
}
