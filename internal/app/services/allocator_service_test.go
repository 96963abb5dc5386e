package services

import (
	"context"
	"sync"
	"testing"
	"time"
)

func newTestAllocator(students *fakeStudentStore, memberships *fakeMembershipCounter, cards *fakeCardCounter) *AllocatorService {
	allocator := NewAllocatorService(newFakeSequenceStore(), students, memberships, cards)
	allocator.now = func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return allocator
}

func TestNextRegistrationNumberSequential(t *testing.T) {
	allocator := newTestAllocator(newFakeStudentStore(), &fakeMembershipCounter{}, &fakeCardCounter{})
	ctx := context.Background()

	first, err := allocator.NextRegistrationNumber(ctx)
	if err != nil {
		t.Fatalf("NextRegistrationNumber returned error: %v", err)
	}
	if first != "MWSS20250001" {
		t.Errorf("first number = %q, want %q", first, "MWSS20250001")
	}

	second, err := allocator.NextRegistrationNumber(ctx)
	if err != nil {
		t.Fatalf("NextRegistrationNumber returned error: %v", err)
	}
	if second != "MWSS20250002" {
		t.Errorf("second number = %q, want %q", second, "MWSS20250002")
	}
}

func TestNextRegistrationNumberSeedsFromExisting(t *testing.T) {
	students := newFakeStudentStore()
	students.registrationCount = 6
	allocator := newTestAllocator(students, &fakeMembershipCounter{}, &fakeCardCounter{})

	got, err := allocator.NextRegistrationNumber(context.Background())
	if err != nil {
		t.Fatalf("NextRegistrationNumber returned error: %v", err)
	}
	if got != "MWSS20250007" {
		t.Errorf("number = %q, want %q", got, "MWSS20250007")
	}
}

func TestNextMembershipNumber(t *testing.T) {
	allocator := newTestAllocator(newFakeStudentStore(), &fakeMembershipCounter{count: 3}, &fakeCardCounter{})

	got, err := allocator.NextMembershipNumber(context.Background())
	if err != nil {
		t.Fatalf("NextMembershipNumber returned error: %v", err)
	}
	if got != "MWSS-M0004" {
		t.Errorf("number = %q, want %q", got, "MWSS-M0004")
	}
}

func TestNextCardNumber(t *testing.T) {
	allocator := newTestAllocator(newFakeStudentStore(), &fakeMembershipCounter{}, &fakeCardCounter{count: 11})

	got, err := allocator.NextCardNumber(context.Background())
	if err != nil {
		t.Fatalf("NextCardNumber returned error: %v", err)
	}
	if got != "MC20250012" {
		t.Errorf("number = %q, want %q", got, "MC20250012")
	}
}

func TestReserveRollNumbersBlock(t *testing.T) {
	students := newFakeStudentStore()
	students.rollCount = 2
	allocator := newTestAllocator(students, &fakeMembershipCounter{}, &fakeCardCounter{})

	rolls, err := allocator.ReserveRollNumbers(context.Background(), 6, 3)
	if err != nil {
		t.Fatalf("ReserveRollNumbers returned error: %v", err)
	}

	want := []string{"500003", "500004", "500005"}
	if len(rolls) != len(want) {
		t.Fatalf("got %d rolls, want %d", len(rolls), len(want))
	}
	for i := range want {
		if rolls[i] != want[i] {
			t.Errorf("rolls[%d] = %q, want %q", i, rolls[i], want[i])
		}
	}
}

func TestReserveRollNumbersBlocksDoNotOverlap(t *testing.T) {
	allocator := newTestAllocator(newFakeStudentStore(), &fakeMembershipCounter{}, &fakeCardCounter{})
	ctx := context.Background()

	first, err := allocator.ReserveRollNumbers(ctx, 9, 2)
	if err != nil {
		t.Fatalf("ReserveRollNumbers returned error: %v", err)
	}
	second, err := allocator.ReserveRollNumbers(ctx, 10, 2)
	if err != nil {
		t.Fatalf("ReserveRollNumbers returned error: %v", err)
	}

	seen := map[string]bool{}
	for _, roll := range append(first, second...) {
		if seen[roll] {
			t.Errorf("roll number %q handed out twice", roll)
		}
		seen[roll] = true
	}
}

func TestNextRegistrationNumberConcurrent(t *testing.T) {
	allocator := newTestAllocator(newFakeStudentStore(), &fakeMembershipCounter{}, &fakeCardCounter{})

	const callers = 32
	numbers := make(chan string, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := allocator.NextRegistrationNumber(context.Background())
			if err != nil {
				t.Errorf("NextRegistrationNumber returned error: %v", err)
				return
			}
			numbers <- got
		}()
	}
	wg.Wait()
	close(numbers)

	seen := map[string]bool{}
	for number := range numbers {
		if seen[number] {
			t.Errorf("registration number %q handed out twice", number)
		}
		seen[number] = true
	}
	if len(seen) != callers {
		t.Errorf("got %d distinct numbers, want %d", len(seen), callers)
	}
}

func TestReserveRollNumbersConcurrentBlocks(t *testing.T) {
	allocator := newTestAllocator(newFakeStudentStore(), &fakeMembershipCounter{}, &fakeCardCounter{})

	const callers = 8
	const blockSize = 5
	blocks := make(chan []string, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rolls, err := allocator.ReserveRollNumbers(context.Background(), 7, blockSize)
			if err != nil {
				t.Errorf("ReserveRollNumbers returned error: %v", err)
				return
			}
			blocks <- rolls
		}()
	}
	wg.Wait()
	close(blocks)

	seen := map[string]bool{}
	for block := range blocks {
		if len(block) != blockSize {
			t.Errorf("block has %d rolls, want %d", len(block), blockSize)
		}
		for _, roll := range block {
			if seen[roll] {
				t.Errorf("roll number %q handed out twice", roll)
			}
			seen[roll] = true
		}
	}
	if len(seen) != callers*blockSize {
		t.Errorf("got %d distinct rolls, want %d", len(seen), callers*blockSize)
	}
}

func TestReserveRollNumbersEmpty(t *testing.T) {
	allocator := newTestAllocator(newFakeStudentStore(), &fakeMembershipCounter{}, &fakeCardCounter{})

	rolls, err := allocator.ReserveRollNumbers(context.Background(), 3, 0)
	if err != nil {
		t.Fatalf("ReserveRollNumbers returned error: %v", err)
	}
	if rolls != nil {
		t.Errorf("rolls = %v, want nil", rolls)
	}
}
