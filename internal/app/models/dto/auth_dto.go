package dto

import "github.com/mwss/sevaportal/internal/app/models"

// LoginRequest represents login credentials for either principal kind.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminRegisterRequest represents an administrator self-registration.
type AdminRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// StudentRegisterRequest represents a student self-registration. The
// registration number is allocated server-side, never supplied.
type StudentRegisterRequest struct {
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=8"`
	FullName    string          `json:"fullName" binding:"required"`
	Phone       *string         `json:"phone,omitempty"`
	FatherName  *string         `json:"fatherName,omitempty"`
	MotherName  *string         `json:"motherName,omitempty"`
	Address     *string         `json:"address,omitempty"`
	City        *string         `json:"city,omitempty"`
	Pincode     *string         `json:"pincode,omitempty"`
	DateOfBirth *string         `json:"dateOfBirth,omitempty"`
	Gender      *string         `json:"gender,omitempty"`
	Class       string          `json:"class" binding:"required"`
	FeeLevel    models.FeeLevel `json:"feeLevel,omitempty"`
}

// AuthUser is the principal summary returned alongside a token.
type AuthUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// AuthResponse represents a successful login or registration. The
// registration number is present only for student registration.
type AuthResponse struct {
	Token              string   `json:"token"`
	User               AuthUser `json:"user"`
	RegistrationNumber string   `json:"registrationNumber,omitempty"`
}

// AdminProfile is the /api/auth/me payload for an administrator.
type AdminProfile struct {
	models.Admin
	Role string `json:"role"`
}

// StudentProfile is the /api/auth/me payload for a student.
type StudentProfile struct {
	models.Student
	Role string `json:"role"`
}
