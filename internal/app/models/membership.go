package models

import "time"

// Membership defines a society membership based on the 'memberships' table.
// Applications come in from the public site, so the student reference is
// optional.
type Membership struct {
	ID               int64     `json:"id" db:"id"`
	UserID           *int64    `json:"userId,omitempty" db:"user_id"`
	MemberName       string    `json:"memberName" db:"member_name"`
	MemberEmail      *string   `json:"memberEmail,omitempty" db:"member_email"`
	MemberPhone      string    `json:"memberPhone" db:"member_phone"`
	MemberAddress    *string   `json:"memberAddress,omitempty" db:"member_address"`
	MembershipType   string    `json:"membershipType" db:"membership_type"`
	MembershipNumber string    `json:"membershipNumber" db:"membership_number"`
	QRCodeURL        *string   `json:"qrCodeUrl,omitempty" db:"qr_code_url"`
	UPIID            *string   `json:"upiId,omitempty" db:"upi_id"`
	IsActive         bool      `json:"isActive" db:"is_active"`
	ValidFrom        *string   `json:"validFrom,omitempty" db:"valid_from"`
	ValidUntil       *string   `json:"validUntil,omitempty" db:"valid_until"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// MembershipCard defines a printable card issued against a membership.
// Payment status runs pending -> paid -> approved; approval stamps the
// approving admin and flips IsGenerated.
type MembershipCard struct {
	ID            int64         `json:"id" db:"id"`
	MembershipID  int64         `json:"membershipId" db:"membership_id"`
	CardNumber    string        `json:"cardNumber" db:"card_number"`
	MemberName    string        `json:"memberName" db:"member_name"`
	MemberPhoto   *string       `json:"memberPhoto,omitempty" db:"member_photo"`
	ValidFrom     string        `json:"validFrom" db:"valid_from"`
	ValidUntil    string        `json:"validUntil" db:"valid_until"`
	CardImageURL  *string       `json:"cardImageUrl,omitempty" db:"card_image_url"`
	IsGenerated   bool          `json:"isGenerated" db:"is_generated"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	PaymentAmount *int          `json:"paymentAmount,omitempty" db:"payment_amount"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty" db:"payment_date"`
	ApprovedBy    *int64        `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovedAt    *time.Time    `json:"approvedAt,omitempty" db:"approved_at"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`

	// Membership joined in admin listings, nil elsewhere.
	Membership *Membership `json:"membership,omitempty"`
}
