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

// AdmitCardRepository handles database operations for admit cards
type AdmitCardRepository struct {
	db *pgxpool.Pool
}

// NewAdmitCardRepository creates a new AdmitCardRepository
func NewAdmitCardRepository(db *pgxpool.Pool) *AdmitCardRepository {
	return &AdmitCardRepository{
		db: db,
	}
}

// Create inserts a new admit card
func (r *AdmitCardRepository) Create(ctx context.Context, card *models.AdmitCard) error {
	query := `
		INSERT INTO admit_cards (student_id, exam_name, file_url, file_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query,
		card.StudentID,
		card.ExamName,
		card.FileURL,
		card.FileName,
	).Scan(&card.ID, &card.UploadedAt)
	if err != nil {
		return fmt.Errorf("error creating admit card: %w", err)
	}

	return nil
}

// GetAll retrieves all admit cards with the owning student joined
func (r *AdmitCardRepository) GetAll(ctx context.Context) ([]*models.AdmitCard, error) {
	query := `
		SELECT a.id, a.student_id, a.exam_name, a.file_url, a.file_name, a.uploaded_at,
			s.id, s.full_name, s.registration_number, s.roll_number
		FROM admit_cards a
		JOIN students s ON s.id = a.student_id
		ORDER BY a.uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.AdmitCard
	for rows.Next() {
		var card models.AdmitCard
		var ref models.StudentRef
		if err := rows.Scan(
			&card.ID,
			&card.StudentID,
			&card.ExamName,
			&card.FileURL,
			&card.FileName,
			&card.UploadedAt,
			&ref.ID,
			&ref.FullName,
			&ref.RegistrationNumber,
			&ref.RollNumber,
		); err != nil {
			return nil, err
		}
		card.Student = &ref
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// GetByStudentID retrieves a student's admit cards, newest first
func (r *AdmitCardRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.AdmitCard, error) {
	query := `
		SELECT id, student_id, exam_name, file_url, file_name, uploaded_at
		FROM admit_cards
		WHERE student_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.AdmitCard
	for rows.Next() {
		var card models.AdmitCard
		if err := rows.Scan(
			&card.ID,
			&card.StudentID,
			&card.ExamName,
			&card.FileURL,
			&card.FileName,
			&card.UploadedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// GetLatestByStudentID retrieves the student's newest admit card. Used by
// the public hall-ticket lookup.
func (r *AdmitCardRepository) GetLatestByStudentID(ctx context.Context, studentID int64) (*models.AdmitCard, error) {
	query := `
		SELECT id, student_id, exam_name, file_url, file_name, uploaded_at
		FROM admit_cards
		WHERE student_id = $1
		ORDER BY uploaded_at DESC
		LIMIT 1
	`

	var card models.AdmitCard
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&card.ID,
		&card.StudentID,
		&card.ExamName,
		&card.FileURL,
		&card.FileName,
		&card.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdmitCardNotFound
		}
		return nil, fmt.Errorf("error retrieving admit card: %w", err)
	}

	return &card, nil
}

// Delete removes an admit card
func (r *AdmitCardRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting admit card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAdmitCardNotFound
	}

	return nil
}
