package distance

import "testing"

func TestOSAKernel_ApplyPair(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"fixture pair", "AASQ", "PASQ", 1.0},
		{"transposition", "abcd", "abdc", 1.0},
		{"transposition variant", "hello", "ehllo", 1.0},
		{"osa restriction applies", "CA", "ABC", 3.0},
		{"identical", "kitten", "kitten", 0.0},
		{"empty a", "", "abc", 3.0},
	}

	k := NewOSA()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := k.ApplyPair(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ApplyPair(%q, %q) error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("ApplyPair(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOSAKernel_Name(t *testing.T) {
	if NewOSA().Name() != "optimal_string_alignment" {
		t.Error("unexpected kernel name")
	}
}
