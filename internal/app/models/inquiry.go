package models

import "time"

// VolunteerApplication is a public volunteer sign-up awaiting an admin
// decision. Admin notes stay editable before and after the decision.
type VolunteerApplication struct {
	ID           int64             `json:"id" db:"id"`
	FullName     string            `json:"fullName" db:"full_name"`
	Email        string            `json:"email" db:"email"`
	Phone        string            `json:"phone" db:"phone"`
	Address      *string           `json:"address,omitempty" db:"address"`
	City         *string           `json:"city,omitempty" db:"city"`
	Occupation   *string           `json:"occupation,omitempty" db:"occupation"`
	Skills       *string           `json:"skills,omitempty" db:"skills"`
	Availability *string           `json:"availability,omitempty" db:"availability"`
	Message      *string           `json:"message,omitempty" db:"message"`
	Status       ApplicationStatus `json:"status" db:"status"`
	AdminNotes   *string           `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt    time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time         `json:"updatedAt" db:"updated_at"`
}

// ContactInquiry is a message from the public contact form.
type ContactInquiry struct {
	ID         int64         `json:"id" db:"id"`
	Name       string        `json:"name" db:"name"`
	Email      string        `json:"email" db:"email"`
	Phone      *string       `json:"phone,omitempty" db:"phone"`
	Subject    string        `json:"subject" db:"subject"`
	Message    string        `json:"message" db:"message"`
	Status     InquiryStatus `json:"status" db:"status"`
	AdminNotes *string       `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}
