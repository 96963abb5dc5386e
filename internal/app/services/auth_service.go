package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
	"github.com/mwss/sevaportal/internal/pkg/auth"
)

// defaultStudentPassword is set on admin-created student accounts so the
// record can be handed over before the student picks their own.
const defaultStudentPassword = "password123"

// AuthService handles authentication operations for both principal kinds.
type AuthService struct {
	admins     AdminStore
	students   StudentStore
	allocator  *AllocatorService
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(admins AdminStore, students StudentStore, allocator *AllocatorService, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		admins:     admins,
		students:   students,
		allocator:  allocator,
		jwtService: jwtService,
		logger:     logger,
	}
}

// AdminLogin authenticates an administrator and returns a signed token.
func (s *AuthService) AdminLogin(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Admin login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(admin.ID, admin.Email, auth.RoleAdmin, admin.Name)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			ID:    admin.ID,
			Email: admin.Email,
			Role:  auth.RoleAdmin,
			Name:  admin.Name,
		},
	}, nil
}

// AdminRegister creates an administrator account and logs it in.
func (s *AuthService) AdminRegister(ctx context.Context, req dto.AdminRegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.admins.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminID", admin.ID).Msg("Admin registered")

	token, _, err := s.jwtService.GenerateToken(admin.ID, admin.Email, auth.RoleAdmin, admin.Name)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			ID:    admin.ID,
			Email: admin.Email,
			Role:  auth.RoleAdmin,
			Name:  admin.Name,
		},
	}, nil
}

// StudentLogin authenticates a student. Deactivated accounts are rejected
// before the password is checked.
func (s *AuthService) StudentLogin(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	student, err := s.students.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !student.IsActive {
		return nil, apperrors.ErrAccountDeactivated
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Student login with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(student.ID, student.Email, auth.RoleStudent, student.FullName)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			ID:    student.ID,
			Email: student.Email,
			Role:  auth.RoleStudent,
			Name:  student.FullName,
		},
	}, nil
}

// StudentRegister creates a student account with a freshly allocated
// registration number and logs it in.
func (s *AuthService) StudentRegister(ctx context.Context, req dto.StudentRegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.students.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
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
		Msg("Student registered")

	token, _, err := s.jwtService.GenerateToken(student.ID, student.Email, auth.RoleStudent, student.FullName)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User: dto.AuthUser{
			ID:    student.ID,
			Email: student.Email,
			Role:  auth.RoleStudent,
			Name:  student.FullName,
		},
		RegistrationNumber: registrationNumber,
	}, nil
}

// Me resolves the authenticated principal's own profile.
func (s *AuthService) Me(ctx context.Context, role string, principalID int64) (interface{}, error) {
	switch role {
	case auth.RoleAdmin:
		admin, err := s.admins.GetByID(ctx, principalID)
		if err != nil {
			return nil, err
		}
		return &dto.AdminProfile{Admin: *admin, Role: auth.RoleAdmin}, nil
	case auth.RoleStudent:
		student, err := s.students.GetByID(ctx, principalID)
		if err != nil {
			return nil, err
		}
		return &dto.StudentProfile{Student: *student, Role: auth.RoleStudent}, nil
	default:
		return nil, apperrors.ErrTokenInvalid
	}
}
