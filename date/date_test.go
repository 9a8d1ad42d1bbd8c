package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2024-02-29", want: New(2024, time.February, 29)},
		{in: "01/07/2025", wantErr: true},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) returned unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNew_normalizes(t *testing.T) {
	// Day overflow rolls into the next month.
	got := New(2025, time.January, 32)
	want := New(2025, time.February, 1)
	if got != want {
		t.Errorf("New(2025, January, 32) = %v, want %v", got, want)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2025, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2025-03-05"` {
		t.Errorf("Marshal = %s, want %q", data, "2025-03-05")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := New(2025, time.May, 10)
	b := a.Add(1)
	if !a.Before(b) || !b.After(a) {
		t.Errorf("expected %v < %v", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date must not be before or after itself")
	}
}
