package texops

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(99.50)
	if got := a.MulQty(3); !got.Equal(M(298.50)) {
		t.Errorf("MulQty(3) = %s, want 298.50", got)
	}
	if got := a.Add(M(0.50)); !got.Equal(M(100)) {
		t.Errorf("Add(0.50) = %s, want 100", got)
	}
	if got := M(10).Sub(M(25)); !got.IsNegative() {
		t.Errorf("Sub() = %s, want negative", got)
	}
	if !M(0).IsZero() {
		t.Error("M(0) is not zero")
	}
}

func TestParseMoney(t *testing.T) {
	got, err := ParseMoney("1100.50")
	if err != nil {
		t.Fatalf("ParseMoney() failed: %v", err)
	}
	if !got.Equal(M(1100.50)) {
		t.Errorf("ParseMoney() = %s, want 1100.50", got)
	}
	if _, err := ParseMoney("ten"); err == nil {
		t.Error("expected an error for a non-numeric amount")
	}
}

func TestMoneyJSON(t *testing.T) {
	// Amounts are stored as plain numbers, rounded to the currency fraction.
	data, err := json.Marshal(M(99.999))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != "100" {
		t.Errorf("Marshal() = %s, want 100", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("310.5"), &m); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !m.Equal(M(310.5)) {
		t.Errorf("Unmarshal() = %s, want 310.5", m)
	}
}
