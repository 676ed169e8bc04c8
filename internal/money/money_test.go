package money

import "testing"

func TestNormalizeBudget(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	testCases := []struct {
		name  string
		input any
		want  *string
	}{
		{
			name:  "nil input",
			input: nil,
			want:  nil,
		},
		{
			name:  "currency prefix with thousands separator",
			input: "RM 1,200.5",
			want:  strPtr("1200.50"),
		},
		{
			name:  "plain integer string",
			input: "3000",
			want:  strPtr("3000.00"),
		},
		{
			name:  "json number",
			input: float64(50),
			want:  strPtr("50.00"),
		},
		{
			name:  "go integer",
			input: 75,
			want:  strPtr("75.00"),
		},
		{
			name:  "rounds half up",
			input: "19.995",
			want:  strPtr("20.00"),
		},
		{
			name:  "no numeric substring",
			input: "no numbers here",
			want:  nil,
		},
		{
			name:  "empty string",
			input: "   ",
			want:  nil,
		},
		{
			name:  "embedded number in sentence",
			input: "around 2,500 ringgit or so",
			want:  strPtr("2500.00"),
		},
		{
			name:  "unsupported type",
			input: []string{"50"},
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeBudget(tc.input)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("NormalizeBudget(%v) = %v, want %v", tc.input, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("NormalizeBudget(%v) = %q, want %q", tc.input, *got, *tc.want)
			}
		})
	}
}

func TestToMoney(t *testing.T) {
	floatPtr := func(f float64) *float64 { return &f }

	testCases := []struct {
		name  string
		input any
		want  *float64
	}{
		{
			name:  "dollar price with suffix",
			input: "$12.34 each",
			want:  floatPtr(12.34),
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "nil",
			input: nil,
			want:  nil,
		},
		{
			name:  "already numeric",
			input: 99.9,
			want:  floatPtr(99.9),
		},
		{
			name:  "currency symbol only",
			input: "RM",
			want:  nil,
		},
		{
			name:  "multiple decimal points fail to parse",
			input: "1.2.3",
			want:  nil,
		},
		{
			name:  "comma stripped not interpreted",
			input: "1,23",
			want:  floatPtr(123),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToMoney(tc.input)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("ToMoney(%v) = %v, want %v", tc.input, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Errorf("ToMoney(%v) = %v, want %v", tc.input, *got, *tc.want)
			}
		})
	}
}

func TestRowTotal(t *testing.T) {
	if got := RowTotal(12.5, 2); got != 25.0 {
		t.Errorf("RowTotal(12.5, 2) = %v, want 25", got)
	}
	if got := RowTotal(9.99, 0); got != 9.99 {
		t.Errorf("RowTotal(9.99, 0) = %v, want 9.99 (quantity defaulted to 1)", got)
	}
	if got := RowTotal(0.1, 3); got != 0.3 {
		t.Errorf("RowTotal(0.1, 3) = %v, want 0.3", got)
	}
}
