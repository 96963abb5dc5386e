package models

import "time"

// Result defines an exam result attached to one student. Students only see
// their own results once published; admins see everything.
type Result struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	ExamName      string    `json:"examName" db:"exam_name"`
	MarksObtained *int      `json:"marksObtained,omitempty" db:"marks_obtained"`
	TotalMarks    int       `json:"totalMarks" db:"total_marks"`
	Grade         *string   `json:"grade,omitempty" db:"grade"`
	Rank          *int      `json:"rank,omitempty" db:"rank"`
	ResultDate    *string   `json:"resultDate,omitempty" db:"result_date"`
	Remarks       *string   `json:"remarks,omitempty" db:"remarks"`
	IsPublished   bool      `json:"isPublished" db:"is_published"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Student summary joined in list responses, nil elsewhere.
	Student *StudentRef `json:"student,omitempty"`
}

// AdmitCard defines a hall-ticket document attached to one student. There is
// no publish gate; the owning student can always see it.
type AdmitCard struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	ExamName   string    `json:"examName" db:"exam_name"`
	FileURL    string    `json:"fileUrl" db:"file_url"`
	FileName   string    `json:"fileName" db:"file_name"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`

	Student *StudentRef `json:"student,omitempty"`
}

// StudentRef is the short student summary embedded in result and admit card
// listings.
type StudentRef struct {
	ID                 int64   `json:"id"`
	FullName           string  `json:"fullName"`
	RegistrationNumber string  `json:"registrationNumber"`
	RollNumber         *string `json:"rollNumber,omitempty"`
}
