package timezone_test

import (
	"royalstay/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestTimezoneToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("Today() not truncated to midnight: %v", today)
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestTimezoneParseRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-15")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if got := timezone.Format(parsed, "2006-01-02"); got != "2024-06-15" {
		t.Errorf("expected formatted date 2024-06-15, got %s", got)
	}
}
