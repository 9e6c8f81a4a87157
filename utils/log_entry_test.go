package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"lodge-booking/types"

	"github.com/gofiber/fiber/v2"
)

func TestCreateSanitizedLogEntry(t *testing.T) {
	app := fiber.New()

	var entry types.LogEntry
	app.Post("/api/login", func(c *fiber.Ctx) error {
		result := c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "Login successful",
			Status:  fiber.StatusOK,
		})
		entry = CreateSanitizedLogEntry(c)
		return result
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/login",
		strings.NewReader(`{"username":"frontdesk1","password":"hunter2"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	if entry.Method != "POST" {
		t.Fatalf("expected method POST, got %q", entry.Method)
	}
	if entry.URL != "/api/login" {
		t.Fatalf("expected URL /api/login, got %q", entry.URL)
	}
	if entry.StatusCode != fiber.StatusOK {
		t.Fatalf("expected status code 200, got %d", entry.StatusCode)
	}
	if strings.Contains(entry.RequestBody, "hunter2") {
		t.Fatal("password value must not reach the log entry")
	}
	if !strings.Contains(entry.RequestBody, "[REDACTED]") {
		t.Fatalf("expected redacted password field, got %q", entry.RequestBody)
	}
	if !strings.Contains(entry.RequestBody, "frontdesk1") {
		t.Fatalf("expected username kept in request body, got %q", entry.RequestBody)
	}
	if !strings.Contains(entry.ResponseBody, "Login successful") {
		t.Fatalf("expected response body captured, got %q", entry.ResponseBody)
	}
	if entry.Actor != "system" {
		t.Fatalf("expected fallback actor system, got %q", entry.Actor)
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected a created-at timestamp")
	}
}

func TestSanitizeRequestBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "empty body",
			body: "",
			want: "",
		},
		{
			name: "non-json passes through",
			body: "plain text inquiry",
			want: "plain text inquiry",
		},
		{
			name: "password masked",
			body: `{"password":"hunter2"}`,
			want: `{"password":"[REDACTED]"}`,
		},
		{
			name: "password variants masked",
			body: `{"new_password":"hunter2"}`,
			want: `{"new_password":"[REDACTED]"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeRequestBody(tc.body); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
