package inquiry

import (
	"encoding/hex"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	s := NewInquiryService(nil)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.GenerateRequestID()
		if len(id) != 24 {
			t.Fatalf("expected 24 characters, got %d (%q)", len(id), id)
		}
		if _, err := hex.DecodeString(id); err != nil {
			t.Fatalf("expected hex request ID, got %q: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("request ID %q generated twice", id)
		}
		seen[id] = true
	}
}
