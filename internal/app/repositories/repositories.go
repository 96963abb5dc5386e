package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository          *AdminRepository
	StudentRepository        *StudentRepository
	SequenceRepository       *SequenceRepository
	ResultRepository         *ResultRepository
	AdmitCardRepository      *AdmitCardRepository
	MembershipRepository     *MembershipRepository
	MembershipCardRepository *MembershipCardRepository
	ContentRepository        *ContentRepository
	SettingsRepository       *SettingsRepository
	InquiryRepository        *InquiryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:          NewAdminRepository(db),
		StudentRepository:        NewStudentRepository(db),
		SequenceRepository:       NewSequenceRepository(db),
		ResultRepository:         NewResultRepository(db),
		AdmitCardRepository:      NewAdmitCardRepository(db),
		MembershipRepository:     NewMembershipRepository(db),
		MembershipCardRepository: NewMembershipCardRepository(db),
		ContentRepository:        NewContentRepository(db),
		SettingsRepository:       NewSettingsRepository(db),
		InquiryRepository:        NewInquiryRepository(db),
	}
}
