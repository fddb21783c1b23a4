package pkg

import "testing"

func TestRandDigits(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := RandDigits(6)
		if err != nil {
			t.Fatalf("RandDigits: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("len(%q) = %d, want 6", code, len(code))
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in %q", code)
			}
		}
		seen[code] = true
	}
	// 50 次全撞同一个码的概率可以忽略
	if len(seen) < 2 {
		t.Error("codes are not varying")
	}
}
