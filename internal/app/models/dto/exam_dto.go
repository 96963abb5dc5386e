package dto

import (
	"encoding/json"

	"github.com/mwss/sevaportal/internal/app/models"
)

// CreateResultRequest represents a single result upload.
type CreateResultRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,min=1"`
	ExamName      string  `json:"examName" binding:"required"`
	MarksObtained *int    `json:"marksObtained,omitempty"`
	TotalMarks    *int    `json:"totalMarks,omitempty"`
	Grade         *string `json:"grade,omitempty"`
	Rank          *int    `json:"rank,omitempty"`
	ResultDate    *string `json:"resultDate,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
	IsPublished   bool    `json:"isPublished"`
}

// UpdateResultRequest represents a partial result update.
type UpdateResultRequest struct {
	ExamName      *string `json:"examName,omitempty"`
	MarksObtained *int    `json:"marksObtained,omitempty"`
	TotalMarks    *int    `json:"totalMarks,omitempty"`
	Grade         *string `json:"grade,omitempty"`
	Rank          *int    `json:"rank,omitempty"`
	ResultDate    *string `json:"resultDate,omitempty"`
	Remarks       *string `json:"remarks,omitempty"`
	IsPublished   *bool   `json:"isPublished,omitempty"`
}

// BulkResultItem is one row of a bulk results upload. Students are matched
// by registration number, roll number or id, in that order.
type BulkResultItem struct {
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	RollNumber         *string `json:"rollNumber,omitempty"`
	StudentID          *int64  `json:"studentId,omitempty"`
	ExamName           *string `json:"examName,omitempty"`
	MarksObtained      *int    `json:"marksObtained,omitempty"`
	TotalMarks         *int    `json:"totalMarks,omitempty"`
	Grade              *string `json:"grade,omitempty"`
	Rank               *int    `json:"rank,omitempty"`
	ResultDate         *string `json:"resultDate,omitempty"`
	IsPublished        bool    `json:"isPublished"`
}

// BulkResultsRequest uploads many results at once; rows whose student
// cannot be matched are skipped, not fatal.
type BulkResultsRequest struct {
	ExamName string           `json:"examName,omitempty"`
	Results  []BulkResultItem `json:"results" binding:"required,min=1"`
}

// BulkResultsResponse reports aggregate created/total counts.
type BulkResultsResponse struct {
	Success bool             `json:"success"`
	Created int              `json:"created"`
	Total   int              `json:"total"`
	Results []*models.Result `json:"results"`
}

// CreateAdmitCardRequest attaches an admit card document to a student.
type CreateAdmitCardRequest struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	ExamName  string `json:"examName" binding:"required"`
	FileURL   string `json:"fileUrl" binding:"required"`
	FileName  string `json:"fileName" binding:"required"`
}

// PublicAdmitCardStudent is the student summary on the public admit card
// lookup.
type PublicAdmitCardStudent struct {
	FullName           string  `json:"fullName"`
	FatherName         *string `json:"fatherName,omitempty"`
	RollNumber         *string `json:"rollNumber,omitempty"`
	RegistrationNumber string  `json:"registrationNumber"`
	Class              string  `json:"class"`
}

// PublicAdmitCardResponse is returned by the public roll-number lookup.
// AdmitData carries the card payload when the stored file URL embeds JSON.
type PublicAdmitCardResponse struct {
	Student   PublicAdmitCardStudent `json:"student"`
	ExamName  string                 `json:"examName"`
	AdmitData json.RawMessage        `json:"admitData"`
}

// MyProfileResponse bundles a student's record with their published results
// and admit cards.
type MyProfileResponse struct {
	Student    *models.Student     `json:"student"`
	Results    []*models.Result    `json:"results"`
	AdmitCards []*models.AdmitCard `json:"admitCards"`
}
