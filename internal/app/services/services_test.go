package services

import (
	"context"
	"sync"
	"time"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
)

// fakeSequenceStore mirrors the upsert semantics of the SQL counter: the
// first reservation in a scope starts from the given seed, later ones only
// advance. The mutex stands in for the row lock the database takes, so
// concurrent allocation tests see the same contract.
type fakeSequenceStore struct {
	mu     sync.Mutex
	values map[string]int64
}

func newFakeSequenceStore() *fakeSequenceStore {
	return &fakeSequenceStore{values: map[string]int64{}}
}

func (f *fakeSequenceStore) Reserve(_ context.Context, scope string, n int64, initial int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[scope]; !ok {
		f.values[scope] = initial
	}
	f.values[scope] += n
	return f.values[scope], nil
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: map[string]*models.Admin{}, nextID: 1}
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = f.nextID
	f.nextID++
	f.admins[admin.Email] = admin
	return nil
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.admins[email]
	return ok, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64

	registrationCount int64
	rollCount         int64
	rollErrors        map[int64]error
	assignedRolls     map[int64]string
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students:      map[int64]*models.Student{},
		nextID:        1,
		rollErrors:    map[int64]error{},
		assignedRolls: map[int64]string{},
	}
}

func (f *fakeStudentStore) add(student *models.Student) *models.Student {
	student.ID = f.nextID
	f.nextID++
	f.students[student.ID] = student
	return student
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	f.add(student)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, student := range f.students {
		if student.Email == email {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByRegistrationNumber(_ context.Context, registrationNumber string) (*models.Student, error) {
	for _, student := range f.students {
		if student.RegistrationNumber == registrationNumber {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByRollNumber(_ context.Context, rollNumber string) (*models.Student, error) {
	for _, student := range f.students {
		if student.RollNumber != nil && *student.RollNumber == rollNumber {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) List(_ context.Context, _, _ string) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, student := range f.students {
		out = append(out, student)
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, id int64, _ map[string]interface{}) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

func (f *fakeStudentStore) SetRollNumber(_ context.Context, id int64, rollNumber string) error {
	if err, ok := f.rollErrors[id]; ok {
		return err
	}
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.RollNumber = &rollNumber
	f.assignedRolls[id] = rollNumber
	return nil
}

func (f *fakeStudentStore) RecordPayment(_ context.Context, id int64, amount int, paymentDate time.Time) error {
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.FeePaid = true
	student.FeeAmount = amount
	student.PaymentDate = &paymentDate
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeStudentStore) CountByRegistrationPrefix(_ context.Context, _ string) (int64, error) {
	return f.registrationCount, nil
}

func (f *fakeStudentStore) CountByRollPrefix(_ context.Context, _ string) (int64, error) {
	return f.rollCount, nil
}

func (f *fakeStudentStore) Stats(_ context.Context) (total, today, feesPaid, active int64, err error) {
	for _, student := range f.students {
		total++
		if student.FeePaid {
			feesPaid++
		}
		if student.IsActive {
			active++
		}
	}
	return total, 0, feesPaid, active, nil
}

func (f *fakeStudentStore) ListFeePaid(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range f.students {
		if student.FeePaid {
			out = append(out, student)
		}
	}
	return out, nil
}

type fakeMembershipCounter struct {
	count int64
}

func (f *fakeMembershipCounter) Count(_ context.Context) (int64, error) {
	return f.count, nil
}

type fakeCardCounter struct {
	count int64
}

func (f *fakeCardCounter) CountByPrefix(_ context.Context, _ string) (int64, error) {
	return f.count, nil
}
