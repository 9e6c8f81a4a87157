package logger

import (
	"testing"
	"time"

	"lodge-booking/types"
)

func TestAsyncLoggerDeliversEntries(t *testing.T) {
	al := NewAsyncLogger(nil)

	entry := types.LogEntry{
		Method:     "POST",
		URL:        "/api/login",
		Actor:      "frontdesk1",
		StatusCode: 200,
		CreatedAt:  time.Date(2025, time.December, 17, 9, 0, 0, 0, time.UTC),
	}
	al.Log(entry) // must not block: the channel is buffered

	select {
	case got := <-al.channel:
		if got.Method != "POST" || got.URL != "/api/login" || got.Actor != "frontdesk1" || got.StatusCode != 200 {
			t.Fatalf("expected the queued entry back, got %+v", got)
		}
	default:
		t.Fatal("expected an entry queued on the channel")
	}
}

func TestAsyncLoggerBuffersWithoutConsumer(t *testing.T) {
	al := NewAsyncLogger(nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			al.Log(types.LogEntry{Method: "GET", URL: "/api/bookings"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Log blocked although the channel buffer was not full")
	}
}
