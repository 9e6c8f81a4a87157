package booking

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestReferenceNotFound(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		wantOK  bool
	}{
		{"missing room", errRoomNotFound, "room not found", true},
		{"missing guest", errGuestNotFound, "guest not found", true},
		{"wrapped sentinel", fmt.Errorf("loading reference: %w", errGuestNotFound), "guest not found", true},
		// a DB failure must not be mistaken for a missing row, even when
		// its text happens to match
		{"db failure with matching text", errors.New("room not found"), "", false},
		{"generic db failure", errors.New("connection reset"), "", false},
		{"record not found alone", gorm.ErrRecordNotFound, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := referenceNotFound(tc.err)
			if ok != tc.wantOK || msg != tc.wantMsg {
				t.Fatalf("expected (%q, %v), got (%q, %v)", tc.wantMsg, tc.wantOK, msg, ok)
			}
		})
	}
}

func TestReferenceSentinelsAreDistinct(t *testing.T) {
	if errors.Is(errRoomNotFound, gorm.ErrRecordNotFound) {
		t.Fatal("room sentinel must not match the booking-not-found case")
	}
	if errors.Is(errRoomNotFound, errGuestNotFound) {
		t.Fatal("room and guest sentinels must be distinct")
	}
}
