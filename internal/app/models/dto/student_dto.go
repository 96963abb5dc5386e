package dto

import (
	"time"

	"github.com/mwss/sevaportal/internal/app/models"
)

// CreateStudentRequest represents an admin-side student creation. Password
// is optional; a default is set when absent so the record can be handed
// over later.
type CreateStudentRequest struct {
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password,omitempty"`
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

// UpdateStudentRequest represents a partial student update; only non-nil
// fields are applied. Registration number is deliberately absent, it is
// immutable after creation.
type UpdateStudentRequest struct {
	Email       *string          `json:"email,omitempty"`
	FullName    *string          `json:"fullName,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	FatherName  *string          `json:"fatherName,omitempty"`
	MotherName  *string          `json:"motherName,omitempty"`
	Address     *string          `json:"address,omitempty"`
	City        *string          `json:"city,omitempty"`
	State       *string          `json:"state,omitempty"`
	Pincode     *string          `json:"pincode,omitempty"`
	DateOfBirth *string          `json:"dateOfBirth,omitempty"`
	Gender      *string          `json:"gender,omitempty"`
	PhotoURL    *string          `json:"photoUrl,omitempty"`
	Class       *string          `json:"class,omitempty"`
	RollNumber  *string          `json:"rollNumber,omitempty"`
	FeeLevel    *models.FeeLevel `json:"feeLevel,omitempty"`
	FeePaid     *bool            `json:"feePaid,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

// RecordPaymentRequest marks a student's registration fee as paid.
type RecordPaymentRequest struct {
	Amount      int        `json:"amount" binding:"required,min=1"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

// BulkRollNumberRequest assigns roll numbers to students of one class in
// input order.
type BulkRollNumberRequest struct {
	StudentIDs  []int64 `json:"studentIds" binding:"required,min=1"`
	ClassNumber int     `json:"classNumber" binding:"required"`
}

// RollAssignment is the per-student outcome of a bulk roll number run.
type RollAssignment struct {
	ID         int64  `json:"id"`
	RollNumber string `json:"rollNumber"`
}

// RollFailure reports a student whose assignment could not be persisted.
type RollFailure struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// BulkRollNumberResponse reports per-item outcomes and aggregate counts;
// the operation never rolls back earlier assignments.
type BulkRollNumberResponse struct {
	Success     bool             `json:"success"`
	Assigned    int              `json:"assigned"`
	RollNumbers []RollAssignment `json:"rollNumbers"`
	Failures    []RollFailure    `json:"failures,omitempty"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalStudents      int64 `json:"totalStudents"`
	TodayRegistrations int64 `json:"todayRegistrations"`
	FeesPaid           int64 `json:"feesPaid"`
	ActiveStudents     int64 `json:"activeStudents"`
}

// FeeRecord is one row of the paid-fees export.
type FeeRecord struct {
	ID                 int64           `json:"id"`
	FullName           string          `json:"fullName"`
	RegistrationNumber string          `json:"registrationNumber"`
	RollNumber         *string         `json:"rollNumber,omitempty"`
	Class              string          `json:"class"`
	FeeLevel           models.FeeLevel `json:"feeLevel"`
	FeeAmount          int             `json:"feeAmount"`
	PaymentDate        *time.Time      `json:"paymentDate,omitempty"`
}
