package model

import "time"

// Gender values accepted at registration.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// SignupTypeEmail tags users created through the local email registration flow.
const SignupTypeEmail = "e"

// User represents a registered user in the system.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Email            string    `json:"email" gorm:"uniqueIndex:users_email_key;size:255;not null"`
	PasswordHash     string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	FullName         string    `json:"full_name" gorm:"size:255;not null"`
	Gender           string    `json:"gender" gorm:"size:10;not null"`
	MobileNo         string    `json:"mobile_no" gorm:"uniqueIndex:users_mobile_no_key;size:20;not null"`
	IsEmailVerified  bool      `json:"is_email_verified" gorm:"default:false;not null"`
	IsMobileVerified bool      `json:"is_mobile_verified" gorm:"default:false;not null"`
	SignupType       string    `json:"signup_type" gorm:"size:1;default:'e';not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// VerificationChannel identifies one of the two independent verification flags.
type VerificationChannel string

const (
	// ChannelEmail is the email verification channel.
	ChannelEmail VerificationChannel = "email"
	// ChannelMobile is the mobile verification channel.
	ChannelMobile VerificationChannel = "mobile"
)
