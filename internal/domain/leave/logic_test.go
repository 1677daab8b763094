package leave

import "testing"

func TestCalculateDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2025-01-10", "2025-01-10", 1},
		{"short range", "2025-01-10", "2025-01-12", 3},
		{"week with both ends", "2024-03-15", "2024-03-22", 8},
		{"across leap day", "2024-02-28", "2024-03-01", 3},
		{"across months", "2024-05-01", "2024-08-01", 93},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days, err := CalculateDays(tc.start, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if days != tc.want {
				t.Fatalf("expected %d days, got %d", tc.want, days)
			}
		})
	}
}

func TestCalculateDaysInvalid(t *testing.T) {
	if _, err := CalculateDays("2025-02-10", "2025-02-09"); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if _, err := CalculateDays("10/02/2025", "2025-02-11"); err == nil {
		t.Fatal("expected error for malformed start date")
	}
	if _, err := CalculateDays("2025-02-10", "soon"); err == nil {
		t.Fatal("expected error for malformed end date")
	}
}
