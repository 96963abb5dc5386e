package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/repositories"
	"github.com/mwss/sevaportal/internal/pkg/auth"
)

// SequenceStore hands out monotonically increasing per-scope sequence
// blocks.
type SequenceStore interface {
	Reserve(ctx context.Context, scope string, n int64, initial int64) (int64, error)
}

// AdminStore is the persistence surface for administrators.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// StudentStore is the persistence surface for students.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Student, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	List(ctx context.Context, class, search string) ([]*models.Student, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	SetRollNumber(ctx context.Context, id int64, rollNumber string) error
	RecordPayment(ctx context.Context, id int64, amount int, paymentDate time.Time) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByRegistrationPrefix(ctx context.Context, prefix string) (int64, error)
	CountByRollPrefix(ctx context.Context, prefix string) (int64, error)
	Stats(ctx context.Context) (total, today, feesPaid, active int64, err error)
	ListFeePaid(ctx context.Context) ([]*models.Student, error)
}

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	AllocatorService  *AllocatorService
	StudentService    *StudentService
	ExamService       *ExamService
	MembershipService *MembershipService
	ContentService    *ContentService
	InquiryService    *InquiryService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	allocator := NewAllocatorService(
		repos.SequenceRepository,
		repos.StudentRepository,
		repos.MembershipRepository,
		repos.MembershipCardRepository,
	)

	return &Services{
		AuthService: NewAuthService(
			repos.AdminRepository,
			repos.StudentRepository,
			allocator,
			jwtService,
			log.With().Str("service", "auth").Logger(),
		),
		AllocatorService: allocator,
		StudentService: NewStudentService(
			repos.StudentRepository,
			allocator,
			log.With().Str("service", "student").Logger(),
		),
		ExamService: NewExamService(
			repos.ResultRepository,
			repos.AdmitCardRepository,
			repos.StudentRepository,
			log.With().Str("service", "exam").Logger(),
		),
		MembershipService: NewMembershipService(
			repos.MembershipRepository,
			repos.MembershipCardRepository,
			allocator,
			log.With().Str("service", "membership").Logger(),
		),
		ContentService: NewContentService(
			repos.ContentRepository,
			repos.SettingsRepository,
		),
		InquiryService: NewInquiryService(
			repos.InquiryRepository,
		),
	}
}
