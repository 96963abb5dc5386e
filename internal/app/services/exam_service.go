package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
	"github.com/mwss/sevaportal/internal/pkg/auth"
)

// ResultStore is the persistence surface for exam results.
type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	GetByID(ctx context.Context, id int64) (*models.Result, error)
	GetAll(ctx context.Context) ([]*models.Result, error)
	GetByStudentID(ctx context.Context, studentID int64, publishedOnly bool) ([]*models.Result, error)
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id int64) error
}

// AdmitCardStore is the persistence surface for admit cards.
type AdmitCardStore interface {
	Create(ctx context.Context, card *models.AdmitCard) error
	GetAll(ctx context.Context) ([]*models.AdmitCard, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.AdmitCard, error)
	GetLatestByStudentID(ctx context.Context, studentID int64) (*models.AdmitCard, error)
	Delete(ctx context.Context, id int64) error
}

// ExamService handles exam results and admit cards, including the public
// hall-ticket lookup.
type ExamService struct {
	results  ResultStore
	cards    AdmitCardStore
	students StudentStore
	logger   zerolog.Logger
}

// NewExamService creates a new ExamService
func NewExamService(results ResultStore, cards AdmitCardStore, students StudentStore, logger zerolog.Logger) *ExamService {
	return &ExamService{
		results:  results,
		cards:    cards,
		students: students,
		logger:   logger,
	}
}

// ListResults returns everything for admins and only the caller's
// published results for students.
func (s *ExamService) ListResults(ctx context.Context, role string, principalID int64) ([]*models.Result, error) {
	if role == auth.RoleAdmin {
		return s.results.GetAll(ctx)
	}
	return s.results.GetByStudentID(ctx, principalID, true)
}

// ResultsForStudent lists one student's results; non-admin callers only see
// published ones.
func (s *ExamService) ResultsForStudent(ctx context.Context, studentID int64, role string) ([]*models.Result, error) {
	return s.results.GetByStudentID(ctx, studentID, role != auth.RoleAdmin)
}

// CreateResult uploads one result after checking the student exists
func (s *ExamService) CreateResult(ctx context.Context, req dto.CreateResultRequest) (*models.Result, error) {
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	totalMarks := 100
	if req.TotalMarks != nil {
		totalMarks = *req.TotalMarks
	}

	result := &models.Result{
		StudentID:     req.StudentID,
		ExamName:      req.ExamName,
		MarksObtained: req.MarksObtained,
		TotalMarks:    totalMarks,
		Grade:         req.Grade,
		Rank:          req.Rank,
		ResultDate:    req.ResultDate,
		Remarks:       req.Remarks,
		IsPublished:   req.IsPublished,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateResult applies a partial update and returns the fresh record
func (s *ExamService) UpdateResult(ctx context.Context, id int64, req dto.UpdateResultRequest) (*models.Result, error) {
	result, err := s.results.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ExamName != nil {
		result.ExamName = *req.ExamName
	}
	if req.MarksObtained != nil {
		result.MarksObtained = req.MarksObtained
	}
	if req.TotalMarks != nil {
		result.TotalMarks = *req.TotalMarks
	}
	if req.Grade != nil {
		result.Grade = req.Grade
	}
	if req.Rank != nil {
		result.Rank = req.Rank
	}
	if req.ResultDate != nil {
		result.ResultDate = req.ResultDate
	}
	if req.Remarks != nil {
		result.Remarks = req.Remarks
	}
	if req.IsPublished != nil {
		result.IsPublished = *req.IsPublished
	}

	if err := s.results.Update(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteResult removes a result
func (s *ExamService) DeleteResult(ctx context.Context, id int64) error {
	return s.results.Delete(ctx, id)
}

// BulkResults uploads many results, matching each row's student by
// registration number, roll number or id. Unmatched rows are skipped.
func (s *ExamService) BulkResults(ctx context.Context, req dto.BulkResultsRequest) (*dto.BulkResultsResponse, error) {
	resp := &dto.BulkResultsResponse{Total: len(req.Results)}

	for _, item := range req.Results {
		student, err := s.matchStudent(ctx, item)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Bulk result row skipped, student not matched")
			continue
		}

		examName := req.ExamName
		if item.ExamName != nil {
			examName = *item.ExamName
		}
		if examName == "" {
			continue
		}

		totalMarks := 100
		if item.TotalMarks != nil {
			totalMarks = *item.TotalMarks
		}

		result := &models.Result{
			StudentID:     student.ID,
			ExamName:      examName,
			MarksObtained: item.MarksObtained,
			TotalMarks:    totalMarks,
			Grade:         item.Grade,
			Rank:          item.Rank,
			ResultDate:    item.ResultDate,
			IsPublished:   item.IsPublished,
		}
		if err := s.results.Create(ctx, result); err != nil {
			s.logger.Warn().Int64("studentID", student.ID).Err(err).Msg("Bulk result row failed")
			continue
		}

		resp.Results = append(resp.Results, result)
		resp.Created++
	}

	resp.Success = true
	return resp, nil
}

func (s *ExamService) matchStudent(ctx context.Context, item dto.BulkResultItem) (*models.Student, error) {
	switch {
	case item.RegistrationNumber != nil && *item.RegistrationNumber != "":
		return s.students.GetByRegistrationNumber(ctx, *item.RegistrationNumber)
	case item.RollNumber != nil && *item.RollNumber != "":
		return s.students.GetByRollNumber(ctx, *item.RollNumber)
	case item.StudentID != nil:
		return s.students.GetByID(ctx, *item.StudentID)
	default:
		return nil, apperrors.ErrStudentNotFound
	}
}

// ListAdmitCards returns everything for admins and the caller's own cards
// for students.
func (s *ExamService) ListAdmitCards(ctx context.Context, role string, principalID int64) ([]*models.AdmitCard, error) {
	if role == auth.RoleAdmin {
		return s.cards.GetAll(ctx)
	}
	return s.cards.GetByStudentID(ctx, principalID)
}

// AdmitCardsForStudent lists one student's admit cards
func (s *ExamService) AdmitCardsForStudent(ctx context.Context, studentID int64) ([]*models.AdmitCard, error) {
	return s.cards.GetByStudentID(ctx, studentID)
}

// CreateAdmitCard attaches an admit card after checking the student exists
func (s *ExamService) CreateAdmitCard(ctx context.Context, req dto.CreateAdmitCardRequest) (*models.AdmitCard, error) {
	if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	card := &models.AdmitCard{
		StudentID: req.StudentID,
		ExamName:  req.ExamName,
		FileURL:   req.FileURL,
		FileName:  req.FileName,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// DeleteAdmitCard removes an admit card
func (s *ExamService) DeleteAdmitCard(ctx context.Context, id int64) error {
	return s.cards.Delete(ctx, id)
}

// PublicAdmitCard is the unauthenticated hall-ticket lookup by roll number.
// When the stored file URL is itself a JSON document the payload is passed
// through; otherwise admitData is null.
func (s *ExamService) PublicAdmitCard(ctx context.Context, rollNumber string) (*dto.PublicAdmitCardResponse, error) {
	student, err := s.students.GetByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.GetLatestByStudentID(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	admitData := json.RawMessage("null")
	if json.Valid([]byte(card.FileURL)) {
		admitData = json.RawMessage(card.FileURL)
	}

	return &dto.PublicAdmitCardResponse{
		Student: dto.PublicAdmitCardStudent{
			FullName:           student.FullName,
			FatherName:         student.FatherName,
			RollNumber:         student.RollNumber,
			RegistrationNumber: student.RegistrationNumber,
			Class:              student.Class,
		},
		ExamName:  card.ExamName,
		AdmitData: admitData,
	}, nil
}

// MyProfile bundles the calling student's record with their published
// results and admit cards.
func (s *ExamService) MyProfile(ctx context.Context, studentID int64) (*dto.MyProfileResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	results, err := s.results.GetByStudentID(ctx, studentID, true)
	if err != nil {
		return nil, err
	}

	cards, err := s.cards.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.MyProfileResponse{
		Student:    student,
		Results:    results,
		AdmitCards: cards,
	}, nil
}
