package generator_test

import (
	"testing"

	"github.com/shingu-dev/club-server/pkg/generator"
)

func TestNumericCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := generator.NumericCode(6)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("len(%q) = %d, want 6", code, len(code))
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatal("all generated codes identical")
	}
}
