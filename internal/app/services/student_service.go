package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
	"github.com/mwss/sevaportal/internal/pkg/auth"
)

// StudentService handles admin-side student management.
type StudentService struct {
	students  StudentStore
	allocator *AllocatorService
	logger    zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, allocator *AllocatorService, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students:  students,
		allocator: allocator,
		logger:    logger,
	}
}

// List retrieves students with optional class and search filters
func (s *StudentService) List(ctx context.Context, class, search string) ([]*models.Student, error) {
	return s.students.List(ctx, class, search)
}

// GetByID retrieves one student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Create registers a student on an admin's behalf. A default password is
// set when the request carries none.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	exists, err := s.students.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	password := req.Password
	if password == "" {
		password = defaultStudentPassword
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	feeLevel := req.FeeLevel
	if feeLevel == "" {
		feeLevel = models.FeeLevelVillage
	}
	if !feeLevel.Valid() {
		return nil, apperrors.ErrValidationFailed
	}

	registrationNumber, err := s.allocator.NextRegistrationNumber(ctx)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Email:              req.Email,
		Password:           hashed,
		FullName:           req.FullName,
		Phone:              req.Phone,
		FatherName:         req.FatherName,
		MotherName:         req.MotherName,
		Address:            req.Address,
		City:               req.City,
		State:              "Haryana",
		Pincode:            req.Pincode,
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		Class:              req.Class,
		RegistrationNumber: registrationNumber,
		FeeLevel:           feeLevel,
		FeeAmount:          models.FeeAmountFor(feeLevel),
		IsActive:           true,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).
		Str("registrationNumber", registrationNumber).
		Msg("Student created by admin")

	return student, nil
}

// Update applies a partial update and returns the fresh record
func (s *StudentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	fields := map[string]interface{}{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.FatherName != nil {
		fields["father_name"] = *req.FatherName
	}
	if req.MotherName != nil {
		fields["mother_name"] = *req.MotherName
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.Pincode != nil {
		fields["pincode"] = *req.Pincode
	}
	if req.DateOfBirth != nil {
		fields["date_of_birth"] = *req.DateOfBirth
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}
	if req.Class != nil {
		fields["class"] = *req.Class
	}
	if req.RollNumber != nil {
		fields["roll_number"] = *req.RollNumber
	}
	if req.FeeLevel != nil {
		if !req.FeeLevel.Valid() {
			return nil, apperrors.ErrValidationFailed
		}
		fields["fee_level"] = *req.FeeLevel
		fields["fee_amount"] = models.FeeAmountFor(*req.FeeLevel)
	}
	if req.FeePaid != nil {
		fields["fee_paid"] = *req.FeePaid
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if err := s.students.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.students.GetByID(ctx, id)
}

// Delete removes a student
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}

// RecordPayment marks a student's registration fee as paid
func (s *StudentService) RecordPayment(ctx context.Context, id int64, req dto.RecordPaymentRequest) (*models.Student, error) {
	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	if err := s.students.RecordPayment(ctx, id, req.Amount, paymentDate); err != nil {
		return nil, err
	}

	return s.students.GetByID(ctx, id)
}

// BulkAssignRollNumbers reserves one block of roll numbers in the class's
// band and assigns them in input order. A student whose update fails is
// reported individually; earlier assignments stay committed and their
// numbers are never reused.
func (s *StudentService) BulkAssignRollNumbers(ctx context.Context, req dto.BulkRollNumberRequest) (*dto.BulkRollNumberResponse, error) {
	rolls, err := s.allocator.ReserveRollNumbers(ctx, req.ClassNumber, len(req.StudentIDs))
	if err != nil {
		return nil, err
	}

	resp := &dto.BulkRollNumberResponse{}
	for i, id := range req.StudentIDs {
		if err := s.students.SetRollNumber(ctx, id, rolls[i]); err != nil {
			s.logger.Warn().Int64("studentID", id).Err(err).Msg("Roll number assignment failed")
			resp.Failures = append(resp.Failures, dto.RollFailure{ID: id, Error: err.Error()})
			continue
		}
		resp.RollNumbers = append(resp.RollNumbers, dto.RollAssignment{ID: id, RollNumber: rolls[i]})
	}

	resp.Assigned = len(resp.RollNumbers)
	resp.Success = len(resp.Failures) == 0

	return resp, nil
}

// DashboardStats returns the admin dashboard counters
func (s *StudentService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	total, today, feesPaid, active, err := s.students.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		TotalStudents:      total,
		TodayRegistrations: today,
		FeesPaid:           feesPaid,
		ActiveStudents:     active,
	}, nil
}

// FeeRecords returns the paid-fees export rows
func (s *StudentService) FeeRecords(ctx context.Context) ([]dto.FeeRecord, error) {
	students, err := s.students.ListFeePaid(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]dto.FeeRecord, 0, len(students))
	for _, student := range students {
		records = append(records, dto.FeeRecord{
			ID:                 student.ID,
			FullName:           student.FullName,
			RegistrationNumber: student.RegistrationNumber,
			RollNumber:         student.RollNumber,
			Class:              student.Class,
			FeeLevel:           student.FeeLevel,
			FeeAmount:          student.FeeAmount,
			PaymentDate:        student.PaymentDate,
		})
	}

	return records, nil
}
