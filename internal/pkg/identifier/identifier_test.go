package identifier

import "testing"

func TestRegistrationNumber(t *testing.T) {
	if got := RegistrationNumber(2025, 7); got != "MWSS20250007" {
		t.Errorf("RegistrationNumber(2025, 7) = %q, want %q", got, "MWSS20250007")
	}
	if got := RegistrationNumber(2025, 42); got != "MWSS20250042" {
		t.Errorf("RegistrationNumber(2025, 42) = %q, want %q", got, "MWSS20250042")
	}
	// Sequences past four digits keep all their digits
	if got := RegistrationNumber(2025, 12345); got != "MWSS202512345" {
		t.Errorf("RegistrationNumber(2025, 12345) = %q, want %q", got, "MWSS202512345")
	}
}

func TestMembershipNumber(t *testing.T) {
	if got := MembershipNumber(1); got != "MWSS-M0001" {
		t.Errorf("MembershipNumber(1) = %q, want %q", got, "MWSS-M0001")
	}
	if got := MembershipNumber(10000); got != "MWSS-M10000" {
		t.Errorf("MembershipNumber(10000) = %q, want %q", got, "MWSS-M10000")
	}
}

func TestCardNumber(t *testing.T) {
	if got := CardNumber(2025, 12); got != "MC20250012" {
		t.Errorf("CardNumber(2025, 12) = %q, want %q", got, "MC20250012")
	}
}

func TestBandPrefix(t *testing.T) {
	cases := []struct {
		class int
		want  int
	}{
		{1, 100},
		{4, 100},
		{5, 500},
		{8, 500},
		{9, 900},
		{12, 900},
		{0, 100},
		{13, 100},
	}
	for _, tc := range cases {
		if got := BandPrefix(tc.class); got != tc.want {
			t.Errorf("BandPrefix(%d) = %d, want %d", tc.class, got, tc.want)
		}
	}
}

func TestRollNumber(t *testing.T) {
	if got := RollNumber(500, 3); got != "500003" {
		t.Errorf("RollNumber(500, 3) = %q, want %q", got, "500003")
	}
	if got := RollNumber(900, 120); got != "900120" {
		t.Errorf("RollNumber(900, 120) = %q, want %q", got, "900120")
	}
	// No truncation once the sequence outgrows three digits
	if got := RollNumber(100, 1000); got != "1001000" {
		t.Errorf("RollNumber(100, 1000) = %q, want %q", got, "1001000")
	}
}

func TestScopes(t *testing.T) {
	if got := RegistrationScope(2025); got != "registration:2025" {
		t.Errorf("RegistrationScope(2025) = %q", got)
	}
	if got := RollScope(500); got != "roll:500" {
		t.Errorf("RollScope(500) = %q", got)
	}
	if got := CardScope(2025); got != "card:2025" {
		t.Errorf("CardScope(2025) = %q", got)
	}
	if got := RegistrationPrefix(2025); got != "MWSS2025" {
		t.Errorf("RegistrationPrefix(2025) = %q", got)
	}
	if got := CardPrefix(2025); got != "MC2025" {
		t.Errorf("CardPrefix(2025) = %q", got)
	}
}
