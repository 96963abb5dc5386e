package dto

import "github.com/mwss/sevaportal/internal/app/models"

// VolunteerApplicationRequest is the public volunteer sign-up form.
type VolunteerApplicationRequest struct {
	FullName     string  `json:"fullName" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        string  `json:"phone" binding:"required"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	Occupation   *string `json:"occupation,omitempty"`
	Skills       *string `json:"skills,omitempty"`
	Availability *string `json:"availability,omitempty"`
	Message      *string `json:"message,omitempty"`
}

// UpdateVolunteerRequest records an admin decision on an application.
type UpdateVolunteerRequest struct {
	Status     *models.ApplicationStatus `json:"status,omitempty"`
	AdminNotes *string                   `json:"adminNotes,omitempty"`
}

// ContactInquiryRequest is the public contact form.
type ContactInquiryRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject" binding:"required"`
	Message string  `json:"message" binding:"required"`
}

// UpdateInquiryRequest moves an inquiry through its workflow.
type UpdateInquiryRequest struct {
	Status     *models.InquiryStatus `json:"status,omitempty"`
	AdminNotes *string               `json:"adminNotes,omitempty"`
}
