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

// MembershipCardRepository handles database operations for membership cards
type MembershipCardRepository struct {
	db *pgxpool.Pool
}

// NewMembershipCardRepository creates a new MembershipCardRepository
func NewMembershipCardRepository(db *pgxpool.Pool) *MembershipCardRepository {
	return &MembershipCardRepository{
		db: db,
	}
}

const membershipCardColumns = `id, membership_id, card_number, member_name, member_photo,
		valid_from, valid_until, card_image_url, is_generated, payment_status,
		payment_amount, payment_date, approved_by, approved_at, created_at, updated_at`

func scanMembershipCard(row pgx.Row) (*models.MembershipCard, error) {
	var c models.MembershipCard
	err := row.Scan(
		&c.ID,
		&c.MembershipID,
		&c.CardNumber,
		&c.MemberName,
		&c.MemberPhoto,
		&c.ValidFrom,
		&c.ValidUntil,
		&c.CardImageURL,
		&c.IsGenerated,
		&c.PaymentStatus,
		&c.PaymentAmount,
		&c.PaymentDate,
		&c.ApprovedBy,
		&c.ApprovedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new membership card. The caller supplies the
// already-allocated card number.
func (r *MembershipCardRepository) Create(ctx context.Context, card *models.MembershipCard) error {
	query := `
		INSERT INTO membership_cards (
			membership_id, card_number, member_name, member_photo,
			valid_from, valid_until, payment_status, payment_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_generated, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		card.MembershipID,
		card.CardNumber,
		card.MemberName,
		card.MemberPhoto,
		card.ValidFrom,
		card.ValidUntil,
		card.PaymentStatus,
		card.PaymentAmount,
	).Scan(&card.ID, &card.IsGenerated, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "membership_cards_card_number_key") {
			return apperrors.ErrAllocationCollision
		}
		return fmt.Errorf("error creating membership card: %w", err)
	}

	return nil
}

// GetByID retrieves a membership card by ID
func (r *MembershipCardRepository) GetByID(ctx context.Context, id int64) (*models.MembershipCard, error) {
	query := `SELECT ` + membershipCardColumns + ` FROM membership_cards WHERE id = $1`

	card, err := scanMembershipCard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipCardNotFound
		}
		return nil, fmt.Errorf("error retrieving membership card: %w", err)
	}

	return card, nil
}

// GetLatestByMembershipID retrieves the newest card issued against a
// membership.
func (r *MembershipCardRepository) GetLatestByMembershipID(ctx context.Context, membershipID int64) (*models.MembershipCard, error) {
	query := `SELECT ` + membershipCardColumns + ` FROM membership_cards WHERE membership_id = $1 ORDER BY created_at DESC LIMIT 1`

	card, err := scanMembershipCard(r.db.QueryRow(ctx, query, membershipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMembershipCardNotFound
		}
		return nil, fmt.Errorf("error retrieving membership card: %w", err)
	}

	return card, nil
}

// GetAll retrieves all membership cards with their membership joined,
// newest first.
func (r *MembershipCardRepository) GetAll(ctx context.Context) ([]*models.MembershipCard, error) {
	query := `
		SELECT c.id, c.membership_id, c.card_number, c.member_name, c.member_photo,
			c.valid_from, c.valid_until, c.card_image_url, c.is_generated,
			c.payment_status, c.payment_amount, c.payment_date, c.approved_by,
			c.approved_at, c.created_at, c.updated_at,
			m.id, m.user_id, m.member_name, m.member_email, m.member_phone,
			m.member_address, m.membership_type, m.membership_number, m.qr_code_url,
			m.upi_id, m.is_active, m.valid_from, m.valid_until, m.created_at
		FROM membership_cards c
		JOIN memberships m ON m.id = c.membership_id
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.MembershipCard
	for rows.Next() {
		var c models.MembershipCard
		var m models.Membership
		if err := rows.Scan(
			&c.ID,
			&c.MembershipID,
			&c.CardNumber,
			&c.MemberName,
			&c.MemberPhoto,
			&c.ValidFrom,
			&c.ValidUntil,
			&c.CardImageURL,
			&c.IsGenerated,
			&c.PaymentStatus,
			&c.PaymentAmount,
			&c.PaymentDate,
			&c.ApprovedBy,
			&c.ApprovedAt,
			&c.CreatedAt,
			&c.UpdatedAt,
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
		); err != nil {
			return nil, err
		}
		c.Membership = &m
		cards = append(cards, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// Update replaces the mutable fields of a membership card. The card number
// is never updated.
func (r *MembershipCardRepository) Update(ctx context.Context, card *models.MembershipCard) error {
	query := `
		UPDATE membership_cards
		SET member_name = $2, member_photo = $3, valid_from = $4, valid_until = $5,
			card_image_url = $6, is_generated = $7, payment_status = $8,
			payment_amount = $9, payment_date = $10, approved_by = $11,
			approved_at = $12, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		card.ID,
		card.MemberName,
		card.MemberPhoto,
		card.ValidFrom,
		card.ValidUntil,
		card.CardImageURL,
		card.IsGenerated,
		card.PaymentStatus,
		card.PaymentAmount,
		card.PaymentDate,
		card.ApprovedBy,
		card.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating membership card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMembershipCardNotFound
	}

	return nil
}

// Delete removes a membership card
func (r *MembershipCardRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM membership_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting membership card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMembershipCardNotFound
	}

	return nil
}

// CountByPrefix counts cards whose card number starts with the given
// prefix. Used to seed the year's counter on first use.
func (r *MembershipCardRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `SELECT COUNT(*) FROM membership_cards WHERE card_number LIKE $1 || '%'`

	var count int64
	if err := r.db.QueryRow(ctx, query, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting membership cards: %w", err)
	}

	return count, nil
}
