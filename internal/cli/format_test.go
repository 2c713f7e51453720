package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.567, "$1234.57"},
		{0.1 + 0.2, "$0.30"}, // float noise must not leak into display
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoneyWhole(t *testing.T) {
	if got := FormatMoneyWhole(12345.67); got != "$12,346" {
		t.Fatalf("got %q, want $12,346", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(35); got != "35.0%" {
		t.Fatalf("got %q, want 35.0%%", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct{ in, want string }{
		{"14:30", "2:30 PM"},
		{"09:05", "9:05 AM"},
		{"00:00", "12:00 AM"},
		{"nonsense", "nonsense"},
	}
	for _, c := range cases {
		if got := FormatClock(c.in); got != c.want {
			t.Errorf("FormatClock(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	if got := FormatDay("2026-08-31", now); got != "Today" {
		t.Fatalf("got %q, want Today", got)
	}
	if got := FormatDay("2026-08-30", now); got != "Yesterday" {
		t.Fatalf("got %q, want Yesterday", got)
	}
	if got := FormatDay("2026-08-22", now); got != "Sat, Aug 22" {
		t.Fatalf("got %q, want Sat, Aug 22", got)
	}
	if got := FormatDay("garbage", now); got != "garbage" {
		t.Fatalf("got %q, want garbage", got)
	}
}
