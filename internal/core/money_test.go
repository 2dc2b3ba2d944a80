package core

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0", 0, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", -100, true},
		{"-50", -5000, true},
		{"+3", 300, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"1e3", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Errorf("ParseCents(%q) = %d, %v; want %d, nil", tc.in, got, err, tc.out)
			}
		} else if err == nil {
			t.Errorf("ParseCents(%q) expected error", tc.in)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{123, "1.23"},
		{123456, "1234.56"},
		{-250, "-2.50"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.out {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestDivRoundHalfUp(t *testing.T) {
	cases := []struct {
		cents, n, out int64
	}{
		{100, 3, 33},
		{200, 3, 67},
		{150001, 3, 50000}, // .333 rounds down
		{150002, 3, 50001},
		{5, 2, 3}, // exact half rounds up
		{0, 3, 0},
		{100, 0, 0},
	}
	for _, tc := range cases {
		if got := DivRoundHalfUp(tc.cents, tc.n); got != tc.out {
			t.Errorf("DivRoundHalfUp(%d, %d) = %d, want %d", tc.cents, tc.n, got, tc.out)
		}
	}
}

func TestDiagnosticsWarnings(t *testing.T) {
	d := Diagnostics{UnknownCities: 1, NegativeRevenue: 2, BlankRevenue: 3}
	if got := d.Warnings(); got != 6 {
		t.Errorf("Warnings() = %d, want 6", got)
	}
}
