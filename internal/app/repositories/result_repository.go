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

// ResultRepository handles database operations for exam results
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// Create inserts a new result
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results (
			student_id, exam_name, marks_obtained, total_marks, grade,
			rank, result_date, remarks, is_published
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID,
		result.ExamName,
		result.MarksObtained,
		result.TotalMarks,
		result.Grade,
		result.Rank,
		result.ResultDate,
		result.Remarks,
		result.IsPublished,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating result: %w", err)
	}

	return nil
}

// GetByID retrieves a result by ID
func (r *ResultRepository) GetByID(ctx context.Context, id int64) (*models.Result, error) {
	query := `
		SELECT id, student_id, exam_name, marks_obtained, total_marks, grade,
			rank, result_date, remarks, is_published, created_at
		FROM results
		WHERE id = $1
	`

	var result models.Result
	err := r.db.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.StudentID,
		&result.ExamName,
		&result.MarksObtained,
		&result.TotalMarks,
		&result.Grade,
		&result.Rank,
		&result.ResultDate,
		&result.Remarks,
		&result.IsPublished,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, fmt.Errorf("error retrieving result: %w", err)
	}

	return &result, nil
}

// GetAll retrieves all results with the owning student joined, newest first
func (r *ResultRepository) GetAll(ctx context.Context) ([]*models.Result, error) {
	query := `
		SELECT r.id, r.student_id, r.exam_name, r.marks_obtained, r.total_marks,
			r.grade, r.rank, r.result_date, r.remarks, r.is_published, r.created_at,
			s.id, s.full_name, s.registration_number, s.roll_number
		FROM results r
		JOIN students s ON s.id = r.student_id
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		var result models.Result
		var ref models.StudentRef
		if err := rows.Scan(
			&result.ID,
			&result.StudentID,
			&result.ExamName,
			&result.MarksObtained,
			&result.TotalMarks,
			&result.Grade,
			&result.Rank,
			&result.ResultDate,
			&result.Remarks,
			&result.IsPublished,
			&result.CreatedAt,
			&ref.ID,
			&ref.FullName,
			&ref.RegistrationNumber,
			&ref.RollNumber,
		); err != nil {
			return nil, err
		}
		result.Student = &ref
		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetByStudentID retrieves a student's results, optionally published only
func (r *ResultRepository) GetByStudentID(ctx context.Context, studentID int64, publishedOnly bool) ([]*models.Result, error) {
	query := `
		SELECT id, student_id, exam_name, marks_obtained, total_marks, grade,
			rank, result_date, remarks, is_published, created_at
		FROM results
		WHERE student_id = $1 AND ($2 = FALSE OR is_published)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		var result models.Result
		if err := rows.Scan(
			&result.ID,
			&result.StudentID,
			&result.ExamName,
			&result.MarksObtained,
			&result.TotalMarks,
			&result.Grade,
			&result.Rank,
			&result.ResultDate,
			&result.Remarks,
			&result.IsPublished,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Update replaces the mutable fields of a result
func (r *ResultRepository) Update(ctx context.Context, result *models.Result) error {
	query := `
		UPDATE results
		SET exam_name = $2, marks_obtained = $3, total_marks = $4, grade = $5,
			rank = $6, result_date = $7, remarks = $8, is_published = $9
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		result.ID,
		result.ExamName,
		result.MarksObtained,
		result.TotalMarks,
		result.Grade,
		result.Rank,
		result.ResultDate,
		result.Remarks,
		result.IsPublished,
	)
	if err != nil {
		return fmt.Errorf("error updating result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResultNotFound
	}

	return nil
}

// Delete removes a result
func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResultNotFound
	}

	return nil
}
