package distance

import "testing"

func approxEqual(a, b, tolerance float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func TestJaroKernel_ApplyPair(t *testing.T) {
	k, err := NewJaro(DefaultJaroWeights())
	if err != nil {
		t.Fatalf("NewJaro: %v", err)
	}

	got, err := k.ApplyPair("AASQ", "PASQ")
	if err != nil {
		t.Fatalf("ApplyPair error: %v", err)
	}
	want := 0.1667
	if !approxEqual(got, want, 1e-3) {
		t.Errorf("ApplyPair(AASQ, PASQ) = %v, want ~%v", got, want)
	}
}

func TestJaroKernel_Identical(t *testing.T) {
	k, _ := NewJaro(DefaultJaroWeights())
	got, err := k.ApplyPair("kitten", "kitten")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(got, 0.0, 1e-9) {
		t.Errorf("ApplyPair(identical) = %v, want 0.0", got)
	}
}

func TestJaroKernel_NoMatches(t *testing.T) {
	k, _ := NewJaro(DefaultJaroWeights())
	got, err := k.ApplyPair("abc", "xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("ApplyPair(no matches) = %v, want 1.0", got)
	}
}

func TestJaroWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights JaroWeights
		wantErr bool
	}{
		{"default", DefaultJaroWeights(), false},
		{"negative", JaroWeights{W1: -0.1, W2: 0.6, W3: 0.5}, true},
		{"doesn't sum to one", JaroWeights{W1: 0.5, W2: 0.5, W3: 0.5}, true},
		{"custom valid", JaroWeights{W1: 0.5, W2: 0.3, W3: 0.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewJaro_RejectsInvalidWeights(t *testing.T) {
	_, err := NewJaro(JaroWeights{W1: 1, W2: 1, W3: 1})
	if err == nil {
		t.Fatal("expected error for weights not summing to 1.0")
	}
}
