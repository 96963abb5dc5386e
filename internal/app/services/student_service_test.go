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

func newTestStudentService(students *fakeStudentStore) *StudentService {
	allocator := newTestAllocator(students, &fakeMembershipCounter{}, &fakeCardCounter{})
	return NewStudentService(students, allocator, zerolog.Nop())
}

func TestCreateStudentDefaultPassword(t *testing.T) {
	students := newFakeStudentStore()
	svc := newTestStudentService(students)

	student, err := svc.Create(context.Background(), dto.CreateStudentRequest{
		Email:    "created@example.com",
		FullName: "Created",
		Class:    "3",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if student.Password == "" {
		t.Error("no password hash set on admin-created student")
	}
	if student.RegistrationNumber == "" {
		t.Error("no registration number allocated")
	}
	if student.FeeLevel != models.FeeLevelVillage {
		t.Errorf("fee level = %q, want village default", student.FeeLevel)
	}
}

func TestBulkAssignRollNumbers(t *testing.T) {
	students := newFakeStudentStore()
	a := students.add(&models.Student{Email: "a@example.com", Class: "6", IsActive: true})
	b := students.add(&models.Student{Email: "b@example.com", Class: "6", IsActive: true})
	c := students.add(&models.Student{Email: "c@example.com", Class: "6", IsActive: true})

	svc := newTestStudentService(students)

	resp, err := svc.BulkAssignRollNumbers(context.Background(), dto.BulkRollNumberRequest{
		StudentIDs:  []int64{a.ID, b.ID, c.ID},
		ClassNumber: 6,
	})
	if err != nil {
		t.Fatalf("BulkAssignRollNumbers returned error: %v", err)
	}

	if !resp.Success {
		t.Error("Success = false with no failures")
	}
	if resp.Assigned != 3 {
		t.Errorf("Assigned = %d, want 3", resp.Assigned)
	}

	want := []string{"500001", "500002", "500003"}
	for i, assignment := range resp.RollNumbers {
		if assignment.RollNumber != want[i] {
			t.Errorf("roll[%d] = %q, want %q", i, assignment.RollNumber, want[i])
		}
	}
}

func TestBulkAssignRollNumbersPartialFailure(t *testing.T) {
	students := newFakeStudentStore()
	a := students.add(&models.Student{Email: "a@example.com", Class: "10", IsActive: true})
	b := students.add(&models.Student{Email: "b@example.com", Class: "10", IsActive: true})
	c := students.add(&models.Student{Email: "c@example.com", Class: "10", IsActive: true})
	students.rollErrors[b.ID] = errors.New("roll number conflict")

	svc := newTestStudentService(students)

	resp, err := svc.BulkAssignRollNumbers(context.Background(), dto.BulkRollNumberRequest{
		StudentIDs:  []int64{a.ID, b.ID, c.ID},
		ClassNumber: 10,
	})
	if err != nil {
		t.Fatalf("BulkAssignRollNumbers returned error: %v", err)
	}

	if resp.Success {
		t.Error("Success = true despite a failure")
	}
	if resp.Assigned != 2 {
		t.Errorf("Assigned = %d, want 2", resp.Assigned)
	}
	if len(resp.Failures) != 1 || resp.Failures[0].ID != b.ID {
		t.Errorf("Failures = %+v, want one entry for student %d", resp.Failures, b.ID)
	}

	// The failed student's number is burned, not reassigned
	if got := students.assignedRolls[a.ID]; got != "900001" {
		t.Errorf("first assignment = %q, want %q", got, "900001")
	}
	if got := students.assignedRolls[c.ID]; got != "900003" {
		t.Errorf("third assignment = %q, want %q", got, "900003")
	}
}

func TestUpdateStudentFeeLevelRecalculatesAmount(t *testing.T) {
	students := newFakeStudentStore()
	student := students.add(&models.Student{Email: "fee@example.com", Class: "2", FeeLevel: models.FeeLevelVillage, FeeAmount: 99, IsActive: true})

	svc := newTestStudentService(students)

	level := models.FeeLevelDistrict
	if _, err := svc.Update(context.Background(), student.ID, dto.UpdateStudentRequest{FeeLevel: &level}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	bad := models.FeeLevel("galaxy")
	_, err := svc.Update(context.Background(), student.ID, dto.UpdateStudentRequest{FeeLevel: &bad})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}
