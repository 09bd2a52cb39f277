package telemetry

import "testing"

func TestNewCorrelationID_Unique(t *testing.T) {
	a := NewCorrelationID()
	b := NewCorrelationID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty correlation IDs")
	}
	if a == b {
		t.Error("expected distinct correlation IDs across calls")
	}
}
