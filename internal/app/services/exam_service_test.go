package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/models/dto"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
)

type fakeResultStore struct {
	results []*models.Result
	nextID  int64
}

func (f *fakeResultStore) Create(_ context.Context, result *models.Result) error {
	f.nextID++
	result.ID = f.nextID
	f.results = append(f.results, result)
	return nil
}

func (f *fakeResultStore) GetByID(_ context.Context, id int64) (*models.Result, error) {
	for _, r := range f.results {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperrors.ErrResultNotFound
}

func (f *fakeResultStore) GetAll(_ context.Context) ([]*models.Result, error) {
	return f.results, nil
}

func (f *fakeResultStore) GetByStudentID(_ context.Context, studentID int64, publishedOnly bool) ([]*models.Result, error) {
	var out []*models.Result
	for _, r := range f.results {
		if r.StudentID != studentID {
			continue
		}
		if publishedOnly && !r.IsPublished {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResultStore) Update(_ context.Context, _ *models.Result) error { return nil }

func (f *fakeResultStore) Delete(_ context.Context, _ int64) error { return nil }

type fakeAdmitCardStore struct {
	cards []*models.AdmitCard
}

func (f *fakeAdmitCardStore) Create(_ context.Context, card *models.AdmitCard) error {
	card.ID = int64(len(f.cards) + 1)
	f.cards = append(f.cards, card)
	return nil
}

func (f *fakeAdmitCardStore) GetAll(_ context.Context) ([]*models.AdmitCard, error) {
	return f.cards, nil
}

func (f *fakeAdmitCardStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.AdmitCard, error) {
	var out []*models.AdmitCard
	for _, c := range f.cards {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeAdmitCardStore) GetLatestByStudentID(_ context.Context, studentID int64) (*models.AdmitCard, error) {
	for i := len(f.cards) - 1; i >= 0; i-- {
		if f.cards[i].StudentID == studentID {
			return f.cards[i], nil
		}
	}
	return nil, apperrors.ErrAdmitCardNotFound
}

func (f *fakeAdmitCardStore) Delete(_ context.Context, _ int64) error { return nil }

func newTestExamService(results *fakeResultStore, cards *fakeAdmitCardStore, students *fakeStudentStore) *ExamService {
	return NewExamService(results, cards, students, zerolog.Nop())
}

func TestPublicAdmitCardUnknownRollNumber(t *testing.T) {
	svc := newTestExamService(&fakeResultStore{}, &fakeAdmitCardStore{}, newFakeStudentStore())

	_, err := svc.PublicAdmitCard(context.Background(), "900001")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("error = %v, want ErrStudentNotFound", err)
	}
}

func TestPublicAdmitCardNoCard(t *testing.T) {
	students := newFakeStudentStore()
	roll := "500001"
	students.add(&models.Student{Email: "s@example.com", FullName: "S", RollNumber: &roll, IsActive: true})

	svc := newTestExamService(&fakeResultStore{}, &fakeAdmitCardStore{}, students)

	_, err := svc.PublicAdmitCard(context.Background(), roll)
	if !errors.Is(err, apperrors.ErrAdmitCardNotFound) {
		t.Errorf("error = %v, want ErrAdmitCardNotFound", err)
	}
}

func TestPublicAdmitCardJSONPassthrough(t *testing.T) {
	students := newFakeStudentStore()
	roll := "500001"
	student := students.add(&models.Student{Email: "s@example.com", FullName: "S", RollNumber: &roll, RegistrationNumber: "MWSS20250001", Class: "6", IsActive: true})

	cards := &fakeAdmitCardStore{}
	cards.Create(context.Background(), &models.AdmitCard{
		StudentID: student.ID,
		ExamName:  "Annual Exam",
		FileURL:   `{"center":"Rohtak","date":"2025-07-01"}`,
		FileName:  "admit.json",
	})

	svc := newTestExamService(&fakeResultStore{}, cards, students)

	resp, err := svc.PublicAdmitCard(context.Background(), roll)
	if err != nil {
		t.Fatalf("PublicAdmitCard returned error: %v", err)
	}
	if string(resp.AdmitData) != `{"center":"Rohtak","date":"2025-07-01"}` {
		t.Errorf("AdmitData = %s, want the stored JSON document", resp.AdmitData)
	}
	if resp.ExamName != "Annual Exam" {
		t.Errorf("ExamName = %q", resp.ExamName)
	}
	if resp.Student.FullName != "S" {
		t.Errorf("Student.FullName = %q", resp.Student.FullName)
	}
}

func TestPublicAdmitCardNonJSONFile(t *testing.T) {
	students := newFakeStudentStore()
	roll := "500002"
	student := students.add(&models.Student{Email: "s2@example.com", FullName: "S2", RollNumber: &roll, IsActive: true})

	cards := &fakeAdmitCardStore{}
	cards.Create(context.Background(), &models.AdmitCard{
		StudentID: student.ID,
		ExamName:  "Annual Exam",
		FileURL:   "/uploads/admit-cards/s2.pdf",
		FileName:  "s2.pdf",
	})

	svc := newTestExamService(&fakeResultStore{}, cards, students)

	resp, err := svc.PublicAdmitCard(context.Background(), roll)
	if err != nil {
		t.Fatalf("PublicAdmitCard returned error: %v", err)
	}
	if string(resp.AdmitData) != "null" {
		t.Errorf("AdmitData = %s, want null for a plain file URL", resp.AdmitData)
	}
}

func TestBulkResultsMatchingAndSkipping(t *testing.T) {
	students := newFakeStudentStore()
	roll := "500001"
	byReg := students.add(&models.Student{Email: "r@example.com", RegistrationNumber: "MWSS20250001", IsActive: true})
	byRoll := students.add(&models.Student{Email: "roll@example.com", RollNumber: &roll, IsActive: true})

	results := &fakeResultStore{}
	svc := newTestExamService(results, &fakeAdmitCardStore{}, students)

	reg := "MWSS20250001"
	missing := "MWSS20259999"
	marks := 87
	resp, err := svc.BulkResults(context.Background(), dto.BulkResultsRequest{
		ExamName: "Half Yearly",
		Results: []dto.BulkResultItem{
			{RegistrationNumber: &reg, MarksObtained: &marks},
			{RollNumber: &roll, MarksObtained: &marks},
			{RegistrationNumber: &missing},
			{},
		},
	})
	if err != nil {
		t.Fatalf("BulkResults returned error: %v", err)
	}

	if resp.Total != 4 {
		t.Errorf("Total = %d, want 4", resp.Total)
	}
	if resp.Created != 2 {
		t.Errorf("Created = %d, want 2", resp.Created)
	}
	if len(results.results) != 2 {
		t.Fatalf("stored %d results, want 2", len(results.results))
	}
	if results.results[0].StudentID != byReg.ID {
		t.Errorf("first result bound to student %d, want %d", results.results[0].StudentID, byReg.ID)
	}
	if results.results[1].StudentID != byRoll.ID {
		t.Errorf("second result bound to student %d, want %d", results.results[1].StudentID, byRoll.ID)
	}
	if results.results[0].TotalMarks != 100 {
		t.Errorf("TotalMarks = %d, want default 100", results.results[0].TotalMarks)
	}
}

func TestListResultsRoleGate(t *testing.T) {
	students := newFakeStudentStore()
	student := students.add(&models.Student{Email: "s@example.com", IsActive: true})

	results := &fakeResultStore{}
	results.Create(context.Background(), &models.Result{StudentID: student.ID, ExamName: "A", IsPublished: true})
	results.Create(context.Background(), &models.Result{StudentID: student.ID, ExamName: "B", IsPublished: false})

	svc := newTestExamService(results, &fakeAdmitCardStore{}, students)

	all, err := svc.ListResults(context.Background(), "admin", 0)
	if err != nil {
		t.Fatalf("ListResults(admin) returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d results, want 2", len(all))
	}

	own, err := svc.ListResults(context.Background(), "student", student.ID)
	if err != nil {
		t.Fatalf("ListResults(student) returned error: %v", err)
	}
	if len(own) != 1 || own[0].ExamName != "A" {
		t.Errorf("student sees %+v, want only the published result", own)
	}
}
