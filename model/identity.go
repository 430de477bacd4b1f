package model

import "time"

// IdentityEntity represents the identity table entity, one row per phone number.
type IdentityEntity struct {
	Phone        string     `db:"phone" json:"phone"`
	Name         *string    `db:"name" json:"name"`
	Age          *int       `db:"age" json:"age"`
	ConsentGiven bool       `db:"consent_given" json:"consentGiven"`
	OTPHash      *string    `db:"otp_hash" json:"-"`
	OTPExpiresAt *time.Time `db:"otp_expires_at" json:"-"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// HasCredential reports whether a one-time code is currently stored.
func (e *IdentityEntity) HasCredential() bool {
	return e.OTPHash != nil && *e.OTPHash != "" && e.OTPExpiresAt != nil
}

// CredentialExpired reports whether the stored code can no longer be used at now.
func (e *IdentityEntity) CredentialExpired(now time.Time) bool {
	return e.OTPExpiresAt == nil || !now.Before(*e.OTPExpiresAt)
}

func (e *IdentityEntity) Profile() Profile {
	p := Profile{
		Phone:        e.Phone,
		Age:          e.Age,
		ConsentGiven: e.ConsentGiven,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Name != nil {
		p.Name = *e.Name
	}
	return p
}

// CredentialUpdate carries a freshly issued code for an identity.
type CredentialUpdate struct {
	Phone     string
	CodeHash  string
	ExpiresAt time.Time
}

type ProfileUpdate struct {
	Phone        string
	Name         string
	Age          int
	ConsentGiven bool
}

// IdentityFilter for the admin user listing
type IdentityFilter struct {
	Search string
	Limit  int
	Offset int
}

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ConsentRequest struct {
	Phone   string `json:"phone" validate:"required,phone"`
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Age     *int   `json:"age" validate:"required,gte=18,lte=100"`
	Consent *bool  `json:"consent" validate:"required"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type SendOTPResponse struct {
	RequestID string `json:"requestId,omitempty"`
}

// VerifiedIdentity is what a successful OTP verification discloses.
type VerifiedIdentity struct {
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	ConsentGiven bool   `json:"consentGiven"`
}

type ProfileSnapshot struct {
	Phone        string `json:"phone"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	ConsentGiven bool   `json:"consentGiven"`
}

// Profile is the public read model of an identity; it never carries the code.
type Profile struct {
	Phone        string     `json:"phone"`
	Name         string     `json:"name"`
	Age          *int       `json:"age,omitempty"`
	ConsentGiven bool       `json:"consentGiven"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}
