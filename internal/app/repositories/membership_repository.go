package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
	"github.com/mwss/sevaportal/internal/pkg/dberrors"
)

const membershipColumns = `id, user_id, member_name, member_email, member_phone,
		member_address, membership_type, membership_number, qr_code_url, upi_id,
		is_active, valid_from, valid_until, created_at`

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *pgxpool.Pool
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{
		db: db,
	}
}

func scanMembership(row pgx.Row) (*models.Membership, error) {
	var m models.Membership
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.MemberName,
		&m.MemberEmail,
		&m.MemberPhone,
		&m.MemberAddress,
		&m.MembershipType,
		&m.MembershipNumber,
		&m.QRCodeURL,
		&m.UPIID,
		&m.IsActive,
		&m.ValidFrom,
		&m.ValidUntil,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new membership. The caller supplies the already-allocated
// membership number.
func (r *MembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	query := `
		INSERT INTO memberships (
			user_id, member_name, member_email, member_phone, member_address,
			membership_type, membership_number, qr_code_url, upi_id, is_active,
			valid_from, valid_until
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		membership.UserID,
		membership.MemberName,
		membership.MemberEmail,
		membership.MemberPhone,
		membership.MemberAddress,
		membership.MembershipType,
		membership.MembershipNumber,
		membership.QRCodeURL,
		membership.UPIID,
		membership.IsActive,
		membership.ValidFrom,
		membership.ValidUntil,
	).Scan(&membership.ID, &membership.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAllocationCollision
		}
		return fmt.Errorf("error creating membership: %w", err)
	}

	return nil
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(ctx context.Context, id int64) (*models.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE id = $1`

	membership, err := scanMembership(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("error retrieving membership: %w", err)
	}

	return membership, nil
}

// GetByNumber retrieves a membership by membership number
func (r *MembershipRepository) GetByNumber(ctx context.Context, membershipNumber string) (*models.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE membership_number = $1`

	membership, err := scanMembership(r.db.QueryRow(ctx, query, membershipNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("error retrieving membership: %w", err)
	}

	return membership, nil
}

// GetByUserID retrieves the newest membership linked to a portal account
func (r *MembershipRepository) GetByUserID(ctx context.Context, userID int64) (*models.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	membership, err := scanMembership(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("error retrieving membership: %w", err)
	}

	return membership, nil
}

// GetAll retrieves all memberships, newest first
func (r *MembershipRepository) GetAll(ctx context.Context) ([]*models.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []*models.Membership
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return memberships, nil
}

// Update replaces the mutable fields of a membership. The membership number
// is never updated.
func (r *MembershipRepository) Update(ctx context.Context, membership *models.Membership) error {
	query := `
		UPDATE memberships
		SET member_name = $2, member_email = $3, member_phone = $4,
			member_address = $5, membership_type = $6, qr_code_url = $7,
			upi_id = $8, is_active = $9, valid_from = $10, valid_until = $11
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		membership.ID,
		membership.MemberName,
		membership.MemberEmail,
		membership.MemberPhone,
		membership.MemberAddress,
		membership.MembershipType,
		membership.QRCodeURL,
		membership.UPIID,
		membership.IsActive,
		membership.ValidFrom,
		membership.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("error updating membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMembershipNotFound
	}

	return nil
}

// Delete removes a membership
func (r *MembershipRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM memberships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMembershipNotFound
	}

	return nil
}

// Count returns the total number of memberships. Used to seed the
// membership counter on first use.
func (r *MembershipRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM memberships`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting memberships: %w", err)
	}

	return count, nil
}
