package dto

import "github.com/mwss/sevaportal/internal/app/models"

// CreateMembershipRequest is the public membership sign-up. The membership
// number is allocated server-side.
type CreateMembershipRequest struct {
	UserID         *int64  `json:"userId,omitempty"`
	MemberName     string  `json:"memberName" binding:"required"`
	MemberEmail    *string `json:"memberEmail,omitempty"`
	MemberPhone    string  `json:"memberPhone" binding:"required"`
	MemberAddress  *string `json:"memberAddress,omitempty"`
	MembershipType string  `json:"membershipType,omitempty"`
	QRCodeURL      *string `json:"qrCodeUrl,omitempty"`
	UPIID          *string `json:"upiId,omitempty"`
	ValidFrom      *string `json:"validFrom,omitempty"`
	ValidUntil     *string `json:"validUntil,omitempty"`
}

// UpdateMembershipRequest is a partial admin-side membership update.
type UpdateMembershipRequest struct {
	MemberName     *string `json:"memberName,omitempty"`
	MemberEmail    *string `json:"memberEmail,omitempty"`
	MemberPhone    *string `json:"memberPhone,omitempty"`
	MemberAddress  *string `json:"memberAddress,omitempty"`
	MembershipType *string `json:"membershipType,omitempty"`
	QRCodeURL      *string `json:"qrCodeUrl,omitempty"`
	UPIID          *string `json:"upiId,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
	ValidFrom      *string `json:"validFrom,omitempty"`
	ValidUntil     *string `json:"validUntil,omitempty"`
}

// CreateMembershipCardRequest issues a card against a membership; the card
// number is allocated server-side.
type CreateMembershipCardRequest struct {
	MembershipID  int64   `json:"membershipId" binding:"required,min=1"`
	MemberName    string  `json:"memberName" binding:"required"`
	MemberPhoto   *string `json:"memberPhoto,omitempty"`
	ValidFrom     string  `json:"validFrom" binding:"required"`
	ValidUntil    string  `json:"validUntil" binding:"required"`
	PaymentAmount *int    `json:"paymentAmount,omitempty"`
}

// UpdateMembershipCardRequest is a partial card update. Setting
// PaymentStatus to approved stamps the approving admin and generation flag
// server-side.
type UpdateMembershipCardRequest struct {
	MemberName    *string               `json:"memberName,omitempty"`
	MemberPhoto   *string               `json:"memberPhoto,omitempty"`
	ValidFrom     *string               `json:"validFrom,omitempty"`
	ValidUntil    *string               `json:"validUntil,omitempty"`
	CardImageURL  *string               `json:"cardImageUrl,omitempty"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentAmount *int                  `json:"paymentAmount,omitempty"`
}
