package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
	"github.com/mwss/sevaportal/internal/pkg/dberrors"
	"github.com/mwss/sevaportal/internal/pkg/logger"
)

const studentColumns = `id, email, password, full_name, phone, father_name, mother_name,
		address, city, state, pincode, date_of_birth, gender, photo_url, class,
		registration_number, roll_number, fee_level, fee_amount, fee_paid,
		payment_date, is_active, created_at, updated_at`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.Email,
		&s.Password,
		&s.FullName,
		&s.Phone,
		&s.FatherName,
		&s.MotherName,
		&s.Address,
		&s.City,
		&s.State,
		&s.Pincode,
		&s.DateOfBirth,
		&s.Gender,
		&s.PhotoURL,
		&s.Class,
		&s.RegistrationNumber,
		&s.RollNumber,
		&s.FeeLevel,
		&s.FeeAmount,
		&s.FeePaid,
		&s.PaymentDate,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student. The caller supplies the already-allocated
// registration number.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			email, password, full_name, phone, father_name, mother_name,
			address, city, state, pincode, date_of_birth, gender, photo_url,
			class, registration_number, fee_level, fee_amount, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.Email,
		student.Password,
		student.FullName,
		student.Phone,
		student.FatherName,
		student.MotherName,
		student.Address,
		student.City,
		student.State,
		student.Pincode,
		student.DateOfBirth,
		student.Gender,
		student.PhotoURL,
		student.Class,
		student.RegistrationNumber,
		student.FeeLevel,
		student.FeeAmount,
		student.IsActive,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("registrationNumber", student.RegistrationNumber).
				Msg("Identifier collision while creating student")
			return apperrors.ErrAllocationCollision
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByRegistrationNumber retrieves a student by registration number
func (r *StudentRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE registration_number = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, registrationNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByRollNumber retrieves a student by roll number
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE roll_number = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, rollNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// List retrieves students, optionally filtered by class and a name/email/
// registration number search term. Newest first.
func (r *StudentRepository) List(ctx context.Context, class, search string) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns).
		From("students").
		OrderBy("created_at DESC")

	if class != "" {
		builder = builder.Where(squirrel.Eq{"class": class})
	}
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"registration_number": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update applies the given column values to one student. The registration
// number column is never updatable through this path.
func (r *StudentRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	delete(fields, "registration_number")

	builder := r.sb.Update("students").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building student update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// SetRollNumber assigns a roll number to one student
func (r *StudentRepository) SetRollNumber(ctx context.Context, id int64, rollNumber string) error {
	query := `
		UPDATE students
		SET roll_number = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, rollNumber)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAllocationCollision
		}
		return fmt.Errorf("error assigning roll number: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// RecordPayment marks a student's fee as paid
func (r *StudentRepository) RecordPayment(ctx context.Context, id int64, amount int, paymentDate time.Time) error {
	query := `
		UPDATE students
		SET fee_paid = TRUE, fee_amount = $2, payment_date = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, amount, paymentDate)
	if err != nil {
		return fmt.Errorf("error recording payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// EmailExists checks if a student email already exists
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// CountByRegistrationPrefix counts students whose registration number starts
// with the given prefix. Used to seed the year's counter on first use.
func (r *StudentRepository) CountByRegistrationPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `SELECT COUNT(*) FROM students WHERE registration_number LIKE $1 || '%'`

	var count int64
	if err := r.db.QueryRow(ctx, query, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting registrations: %w", err)
	}

	return count, nil
}

// CountByRollPrefix counts students whose roll number starts with the given
// band prefix. Used to seed the band's counter on first use.
func (r *StudentRepository) CountByRollPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `SELECT COUNT(*) FROM students WHERE roll_number LIKE $1 || '%'`

	var count int64
	if err := r.db.QueryRow(ctx, query, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting roll numbers: %w", err)
	}

	return count, nil
}

// Stats returns the admin dashboard counters in one round trip
func (r *StudentRepository) Stats(ctx context.Context) (total, today, feesPaid, active int64, err error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE),
			COUNT(*) FILTER (WHERE fee_paid),
			COUNT(*) FILTER (WHERE is_active)
		FROM students
	`

	if err = r.db.QueryRow(ctx, query).Scan(&total, &today, &feesPaid, &active); err != nil {
		err = fmt.Errorf("error reading student stats: %w", err)
		return
	}

	return
}

// ListFeePaid retrieves students with a recorded fee payment, most recent
// payment first.
func (r *StudentRepository) ListFeePaid(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE fee_paid ORDER BY payment_date DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
