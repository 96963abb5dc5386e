package models

import "time"

// Admin defines the administrator model based on the 'admins' table.
// Administrators are never hard-deleted and have no deactivation flag.
type Admin struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Student defines the student model based on the 'students' table. The
// registration number is assigned exactly once at creation and never
// changes; the roll number is assigned later in bulk by class band.
type Student struct {
	ID                 int64      `json:"id" db:"id"`
	Email              string     `json:"email" db:"email"`
	Password           string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FullName           string     `json:"fullName" db:"full_name"`
	Phone              *string    `json:"phone,omitempty" db:"phone"`
	FatherName         *string    `json:"fatherName,omitempty" db:"father_name"`
	MotherName         *string    `json:"motherName,omitempty" db:"mother_name"`
	Address            *string    `json:"address,omitempty" db:"address"`
	City               *string    `json:"city,omitempty" db:"city"`
	State              string     `json:"state" db:"state"`
	Pincode            *string    `json:"pincode,omitempty" db:"pincode"`
	DateOfBirth        *string    `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender             *string    `json:"gender,omitempty" db:"gender"`
	PhotoURL           *string    `json:"photoUrl,omitempty" db:"photo_url"`
	Class              string     `json:"class" db:"class"`
	RegistrationNumber string     `json:"registrationNumber" db:"registration_number"`
	RollNumber         *string    `json:"rollNumber,omitempty" db:"roll_number"`
	FeeLevel           FeeLevel   `json:"feeLevel" db:"fee_level"`
	FeeAmount          int        `json:"feeAmount" db:"fee_amount"`
	FeePaid            bool       `json:"feePaid" db:"fee_paid"`
	PaymentDate        *time.Time `json:"paymentDate,omitempty" db:"payment_date"`
	IsActive           bool       `json:"isActive" db:"is_active"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time  `json:"updatedAt" db:"updated_at"`
}
