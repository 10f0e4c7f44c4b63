package cli

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 VND"},
		{500, "500 VND"},
		{1500, "1.500 VND"},
		{500_000_000, "500.000.000 VND"},
		{1_234_567_890, "1.234.567.890 VND"},
		{-42_000, "-42.000 VND"},
	}

	for _, tc := range tests {
		if got := formatPrice(tc.amount); got != tc.want {
			t.Errorf("formatPrice(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("unparsable input should pass through, got %q", got)
	}
	got := formatDate("2026-03-15T09:30:00Z")
	if len(got) != len("2026-03-15 09:30") {
		t.Errorf("unexpected shape: %q", got)
	}
}
