package services

import (
	"context"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
)

// InquiryStore is the persistence surface for volunteer applications and
// contact inquiries.
type InquiryStore interface {
	CreateVolunteer(ctx context.Context, app *models.VolunteerApplication) error
	GetVolunteers(ctx context.Context) ([]*models.VolunteerApplication, error)
	GetVolunteerByID(ctx context.Context, id int64) (*models.VolunteerApplication, error)
	UpdateVolunteer(ctx context.Context, app *models.VolunteerApplication) error
	DeleteVolunteer(ctx context.Context, id int64) error
	CreateInquiry(ctx context.Context, inquiry *models.ContactInquiry) error
	GetInquiries(ctx context.Context) ([]*models.ContactInquiry, error)
	GetInquiryByID(ctx context.Context, id int64) (*models.ContactInquiry, error)
	UpdateInquiry(ctx context.Context, inquiry *models.ContactInquiry) error
	DeleteInquiry(ctx context.Context, id int64) error
}

// InquiryService handles the public volunteer and contact forms and their
// admin-side workflow.
type InquiryService struct {
	inquiries InquiryStore
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(inquiries InquiryStore) *InquiryService {
	return &InquiryService{
		inquiries: inquiries,
	}
}

// ApplyVolunteer records a public volunteer application
func (s *InquiryService) ApplyVolunteer(ctx context.Context, req dto.VolunteerApplicationRequest) (*models.VolunteerApplication, error) {
	app := &models.VolunteerApplication{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Occupation:   req.Occupation,
		Skills:       req.Skills,
		Availability: req.Availability,
		Message:      req.Message,
	}
	if err := s.inquiries.CreateVolunteer(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// ListVolunteers retrieves all volunteer applications
func (s *InquiryService) ListVolunteers(ctx context.Context) ([]*models.VolunteerApplication, error) {
	return s.inquiries.GetVolunteers(ctx)
}

// UpdateVolunteer records an admin decision or note and returns the fresh
// record.
func (s *InquiryService) UpdateVolunteer(ctx context.Context, id int64, req dto.UpdateVolunteerRequest) (*models.VolunteerApplication, error) {
	app, err := s.inquiries.GetVolunteerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		app.Status = *req.Status
	}
	if req.AdminNotes != nil {
		app.AdminNotes = req.AdminNotes
	}

	if err := s.inquiries.UpdateVolunteer(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// DeleteVolunteer removes a volunteer application
func (s *InquiryService) DeleteVolunteer(ctx context.Context, id int64) error {
	return s.inquiries.DeleteVolunteer(ctx, id)
}

// SubmitInquiry records a public contact form submission
func (s *InquiryService) SubmitInquiry(ctx context.Context, req dto.ContactInquiryRequest) (*models.ContactInquiry, error) {
	inquiry := &models.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.inquiries.CreateInquiry(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// ListInquiries retrieves all contact inquiries
func (s *InquiryService) ListInquiries(ctx context.Context) ([]*models.ContactInquiry, error) {
	return s.inquiries.GetInquiries(ctx)
}

// UpdateInquiry moves an inquiry through its workflow and returns the
// fresh record.
func (s *InquiryService) UpdateInquiry(ctx context.Context, id int64, req dto.UpdateInquiryRequest) (*models.ContactInquiry, error) {
	inquiry, err := s.inquiries.GetInquiryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		inquiry.Status = *req.Status
	}
	if req.AdminNotes != nil {
		inquiry.AdminNotes = req.AdminNotes
	}

	if err := s.inquiries.UpdateInquiry(ctx, inquiry); err != nil {
		return nil, err
	}

	return inquiry, nil
}

// DeleteInquiry removes a contact inquiry
func (s *InquiryService) DeleteInquiry(ctx context.Context, id int64) error {
	return s.inquiries.DeleteInquiry(ctx, id)
}
