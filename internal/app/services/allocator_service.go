package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mwss/sevaportal/internal/pkg/identifier"
)

type rollCounter interface {
	CountByRegistrationPrefix(ctx context.Context, prefix string) (int64, error)
	CountByRollPrefix(ctx context.Context, prefix string) (int64, error)
}

type membershipCounter interface {
	Count(ctx context.Context) (int64, error)
}

type cardCounter interface {
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
}

// AllocatorService hands out registration, roll, membership and card
// numbers. Every number comes from an atomic per-scope counter, so two
// concurrent requests can never be given the same identifier. Counters are
// seeded from the count of already-issued identifiers the first time a
// scope is touched, which keeps new numbers contiguous with numbers issued
// before the counters existed.
type AllocatorService struct {
	sequences   SequenceStore
	students    rollCounter
	memberships membershipCounter
	cards       cardCounter
	now         func() time.Time
}

// NewAllocatorService creates a new AllocatorService
func NewAllocatorService(sequences SequenceStore, students rollCounter, memberships membershipCounter, cards cardCounter) *AllocatorService {
	return &AllocatorService{
		sequences:   sequences,
		students:    students,
		memberships: memberships,
		cards:       cards,
		now:         time.Now,
	}
}

// NextRegistrationNumber allocates the next registration number for the
// current year, e.g. MWSS20250007.
func (s *AllocatorService) NextRegistrationNumber(ctx context.Context) (string, error) {
	year := s.now().Year()

	seed, err := s.students.CountByRegistrationPrefix(ctx, identifier.RegistrationPrefix(year))
	if err != nil {
		return "", fmt.Errorf("error seeding registration counter: %w", err)
	}

	seq, err := s.sequences.Reserve(ctx, identifier.RegistrationScope(year), 1, seed)
	if err != nil {
		return "", err
	}

	return identifier.RegistrationNumber(year, seq), nil
}

// NextMembershipNumber allocates the next membership number, e.g.
// MWSS-M0001.
func (s *AllocatorService) NextMembershipNumber(ctx context.Context) (string, error) {
	seed, err := s.memberships.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("error seeding membership counter: %w", err)
	}

	seq, err := s.sequences.Reserve(ctx, identifier.ScopeMembership, 1, seed)
	if err != nil {
		return "", err
	}

	return identifier.MembershipNumber(seq), nil
}

// NextCardNumber allocates the next membership card number for the current
// year, e.g. MC20250012.
func (s *AllocatorService) NextCardNumber(ctx context.Context) (string, error) {
	year := s.now().Year()

	seed, err := s.cards.CountByPrefix(ctx, identifier.CardPrefix(year))
	if err != nil {
		return "", fmt.Errorf("error seeding card counter: %w", err)
	}

	seq, err := s.sequences.Reserve(ctx, identifier.CardScope(year), 1, seed)
	if err != nil {
		return "", err
	}

	return identifier.CardNumber(year, seq), nil
}

// ReserveRollNumbers reserves a contiguous block of n roll numbers in the
// band for the given class, in one counter advance. The returned numbers
// are in ascending order, ready to assign in input order.
func (s *AllocatorService) ReserveRollNumbers(ctx context.Context, classNumber, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	band := identifier.BandPrefix(classNumber)

	seed, err := s.students.CountByRollPrefix(ctx, strconv.Itoa(band))
	if err != nil {
		return nil, fmt.Errorf("error seeding roll counter: %w", err)
	}

	last, err := s.sequences.Reserve(ctx, identifier.RollScope(band), int64(n), seed)
	if err != nil {
		return nil, err
	}

	rolls := make([]string, 0, n)
	for seq := last - int64(n) + 1; seq <= last; seq++ {
		rolls = append(rolls, identifier.RollNumber(band, seq))
	}

	return rolls, nil
}
