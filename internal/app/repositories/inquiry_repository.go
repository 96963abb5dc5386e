package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
)

// InquiryRepository handles database operations for volunteer applications
// and contact inquiries.
type InquiryRepository struct {
	db *pgxpool.Pool
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{
		db: db,
	}
}

// --- volunteer applications ---

const volunteerColumns = `id, full_name, email, phone, address, city, occupation,
		skills, availability, message, status, admin_notes, created_at, updated_at`

func scanVolunteer(row pgx.Row) (*models.VolunteerApplication, error) {
	var app models.VolunteerApplication
	err := row.Scan(
		&app.ID,
		&app.FullName,
		&app.Email,
		&app.Phone,
		&app.Address,
		&app.City,
		&app.Occupation,
		&app.Skills,
		&app.Availability,
		&app.Message,
		&app.Status,
		&app.AdminNotes,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateVolunteer inserts a volunteer application
func (r *InquiryRepository) CreateVolunteer(ctx context.Context, app *models.VolunteerApplication) error {
	query := `
		INSERT INTO volunteer_applications (
			full_name, email, phone, address, city, occupation,
			skills, availability, message
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, status, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		app.FullName, app.Email, app.Phone, app.Address, app.City,
		app.Occupation, app.Skills, app.Availability, app.Message,
	).Scan(&app.ID, &app.Status, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating volunteer application: %w", err)
	}

	return nil
}

// GetVolunteers retrieves all volunteer applications, newest first
func (r *InquiryRepository) GetVolunteers(ctx context.Context) ([]*models.VolunteerApplication, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteer_applications ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*models.VolunteerApplication
	for rows.Next() {
		app, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// GetVolunteerByID retrieves one volunteer application
func (r *InquiryRepository) GetVolunteerByID(ctx context.Context, id int64) (*models.VolunteerApplication, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteer_applications WHERE id = $1`

	app, err := scanVolunteer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("error retrieving volunteer application: %w", err)
	}

	return app, nil
}

// UpdateVolunteer records a status change or admin notes
func (r *InquiryRepository) UpdateVolunteer(ctx context.Context, app *models.VolunteerApplication) error {
	query := `
		UPDATE volunteer_applications
		SET status = $2, admin_notes = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, app.ID, app.Status, app.AdminNotes)
	if err != nil {
		return fmt.Errorf("error updating volunteer application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}

// DeleteVolunteer removes a volunteer application
func (r *InquiryRepository) DeleteVolunteer(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM volunteer_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting volunteer application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}

// --- contact inquiries ---

const inquiryColumns = `id, name, email, phone, subject, message, status,
		admin_notes, created_at, updated_at`

func scanInquiry(row pgx.Row) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := row.Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.Subject,
		&inquiry.Message,
		&inquiry.Status,
		&inquiry.AdminNotes,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// CreateInquiry inserts a contact inquiry
func (r *InquiryRepository) CreateInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	query := `
		INSERT INTO contact_inquiries (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Subject, inquiry.Message,
	).Scan(&inquiry.ID, &inquiry.Status, &inquiry.CreatedAt, &inquiry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating contact inquiry: %w", err)
	}

	return nil
}

// GetInquiries retrieves all contact inquiries, newest first
func (r *InquiryRepository) GetInquiries(ctx context.Context) ([]*models.ContactInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM contact_inquiries ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*models.ContactInquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inquiries, nil
}

// GetInquiryByID retrieves one contact inquiry
func (r *InquiryRepository) GetInquiryByID(ctx context.Context, id int64) (*models.ContactInquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM contact_inquiries WHERE id = $1`

	inquiry, err := scanInquiry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("error retrieving contact inquiry: %w", err)
	}

	return inquiry, nil
}

// UpdateInquiry records a status change or admin notes
func (r *InquiryRepository) UpdateInquiry(ctx context.Context, inquiry *models.ContactInquiry) error {
	query := `
		UPDATE contact_inquiries
		SET status = $2, admin_notes = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, inquiry.ID, inquiry.Status, inquiry.AdminNotes)
	if err != nil {
		return fmt.Errorf("error updating contact inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}

	return nil
}

// DeleteInquiry removes a contact inquiry
func (r *InquiryRepository) DeleteInquiry(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting contact inquiry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInquiryNotFound
	}

	return nil
}
