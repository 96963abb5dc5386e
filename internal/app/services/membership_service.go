package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
)

// MembershipStore is the persistence surface for memberships.
type MembershipStore interface {
	Create(ctx context.Context, membership *models.Membership) error
	GetByID(ctx context.Context, id int64) (*models.Membership, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Membership, error)
	GetAll(ctx context.Context) ([]*models.Membership, error)
	Update(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, id int64) error
}

// MembershipCardStore is the persistence surface for membership cards.
type MembershipCardStore interface {
	Create(ctx context.Context, card *models.MembershipCard) error
	GetByID(ctx context.Context, id int64) (*models.MembershipCard, error)
	GetLatestByMembershipID(ctx context.Context, membershipID int64) (*models.MembershipCard, error)
	GetAll(ctx context.Context) ([]*models.MembershipCard, error)
	Update(ctx context.Context, card *models.MembershipCard) error
	Delete(ctx context.Context, id int64) error
}

// MembershipService handles society memberships and printable member cards.
type MembershipService struct {
	memberships MembershipStore
	cards       MembershipCardStore
	allocator   *AllocatorService
	logger      zerolog.Logger
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(memberships MembershipStore, cards MembershipCardStore, allocator *AllocatorService, logger zerolog.Logger) *MembershipService {
	return &MembershipService{
		memberships: memberships,
		cards:       cards,
		allocator:   allocator,
		logger:      logger,
	}
}

// ListMemberships retrieves all memberships
func (s *MembershipService) ListMemberships(ctx context.Context) ([]*models.Membership, error) {
	return s.memberships.GetAll(ctx)
}

// CreateMembership signs up a new member with a freshly allocated
// membership number.
func (s *MembershipService) CreateMembership(ctx context.Context, req dto.CreateMembershipRequest) (*models.Membership, error) {
	membershipNumber, err := s.allocator.NextMembershipNumber(ctx)
	if err != nil {
		return nil, err
	}

	membershipType := req.MembershipType
	if membershipType == "" {
		membershipType = "regular"
	}

	membership := &models.Membership{
		UserID:           req.UserID,
		MemberName:       req.MemberName,
		MemberEmail:      req.MemberEmail,
		MemberPhone:      req.MemberPhone,
		MemberAddress:    req.MemberAddress,
		MembershipType:   membershipType,
		MembershipNumber: membershipNumber,
		QRCodeURL:        req.QRCodeURL,
		UPIID:            req.UPIID,
		IsActive:         true,
		ValidFrom:        req.ValidFrom,
		ValidUntil:       req.ValidUntil,
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("membershipID", membership.ID).
		Str("membershipNumber", membershipNumber).
		Msg("Membership created")

	return membership, nil
}

// UpdateMembership applies a partial update and returns the fresh record.
// The membership number is never touched.
func (s *MembershipService) UpdateMembership(ctx context.Context, id int64, req dto.UpdateMembershipRequest) (*models.Membership, error) {
	membership, err := s.memberships.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MemberName != nil {
		membership.MemberName = *req.MemberName
	}
	if req.MemberEmail != nil {
		membership.MemberEmail = req.MemberEmail
	}
	if req.MemberPhone != nil {
		membership.MemberPhone = *req.MemberPhone
	}
	if req.MemberAddress != nil {
		membership.MemberAddress = req.MemberAddress
	}
	if req.MembershipType != nil {
		membership.MembershipType = *req.MembershipType
	}
	if req.QRCodeURL != nil {
		membership.QRCodeURL = req.QRCodeURL
	}
	if req.UPIID != nil {
		membership.UPIID = req.UPIID
	}
	if req.IsActive != nil {
		membership.IsActive = *req.IsActive
	}
	if req.ValidFrom != nil {
		membership.ValidFrom = req.ValidFrom
	}
	if req.ValidUntil != nil {
		membership.ValidUntil = req.ValidUntil
	}

	if err := s.memberships.Update(ctx, membership); err != nil {
		return nil, err
	}

	return membership, nil
}

// DeleteMembership removes a membership
func (s *MembershipService) DeleteMembership(ctx context.Context, id int64) error {
	return s.memberships.Delete(ctx, id)
}

// ListCards retrieves all membership cards with their memberships joined
func (s *MembershipService) ListCards(ctx context.Context) ([]*models.MembershipCard, error) {
	return s.cards.GetAll(ctx)
}

// CreateCard issues a card against a membership with a freshly allocated
// card number.
func (s *MembershipService) CreateCard(ctx context.Context, req dto.CreateMembershipCardRequest) (*models.MembershipCard, error) {
	if _, err := s.memberships.GetByID(ctx, req.MembershipID); err != nil {
		return nil, err
	}

	cardNumber, err := s.allocator.NextCardNumber(ctx)
	if err != nil {
		return nil, err
	}

	card := &models.MembershipCard{
		MembershipID:  req.MembershipID,
		CardNumber:    cardNumber,
		MemberName:    req.MemberName,
		MemberPhoto:   req.MemberPhoto,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		PaymentStatus: models.PaymentPending,
		PaymentAmount: req.PaymentAmount,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("cardID", card.ID).
		Str("cardNumber", cardNumber).
		Msg("Membership card issued")

	return card, nil
}

// UpdateCard applies a partial update. Moving the payment status to
// approved stamps the approving admin, the approval time and the
// generation flag; the card number is never touched.
func (s *MembershipService) UpdateCard(ctx context.Context, id, adminID int64, req dto.UpdateMembershipCardRequest) (*models.MembershipCard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MemberName != nil {
		card.MemberName = *req.MemberName
	}
	if req.MemberPhoto != nil {
		card.MemberPhoto = req.MemberPhoto
	}
	if req.ValidFrom != nil {
		card.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		card.ValidUntil = *req.ValidUntil
	}
	if req.CardImageURL != nil {
		card.CardImageURL = req.CardImageURL
	}
	if req.PaymentAmount != nil {
		card.PaymentAmount = req.PaymentAmount
	}
	if req.PaymentStatus != nil {
		card.PaymentStatus = *req.PaymentStatus
		if *req.PaymentStatus == models.PaymentApproved {
			now := time.Now()
			card.ApprovedBy = &adminID
			card.ApprovedAt = &now
			card.IsGenerated = true
		}
		if *req.PaymentStatus == models.PaymentPaid && card.PaymentDate == nil {
			now := time.Now()
			card.PaymentDate = &now
		}
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// DeleteCard removes a membership card
func (s *MembershipService) DeleteCard(ctx context.Context, id int64) error {
	return s.cards.Delete(ctx, id)
}

// MyCard resolves the calling principal's newest membership card through
// the membership linked to their account.
func (s *MembershipService) MyCard(ctx context.Context, userID int64) (*models.MembershipCard, error) {
	membership, err := s.memberships.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.GetLatestByMembershipID(ctx, membership.ID)
	if err != nil {
		return nil, err
	}

	card.Membership = membership
	return card, nil
}
