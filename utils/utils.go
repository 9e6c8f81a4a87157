package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"lodge-booking/database"
	"lodge-booking/models/user"
	"lodge-booking/types"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var validate = validator.New()

// ValidateStruct runs the validate struct tags and returns one message
// per failed field, empty when the struct is valid.
func ValidateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on the '%s' rule", fieldErr.Field(), fieldErr.Tag()))
	}
	return messages
}

// GenerateBookingReference returns a short unique reference code for a
// new booking, e.g. BK-9F2C81D4.
func GenerateBookingReference() string {
	id := uuid.New()
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// GetUserByUUID looks up a staff account by its UUID claim.
func GetUserByUUID(userUUID string) (*user.User, error) {
	var u user.User
	err := database.DB.Where("uuid = ?", userUUID).First(&u).Error
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return &u, nil
}

// GenerateToken issues an HMAC JWT carrying the user's identity and
// permission strings.
func GenerateToken(u *user.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"uuid":        u.Uuid,
		"username":    u.Username,
		"permissions": []string(u.Permissions),
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ExtractUUIDFromToken pulls the user UUID out of the Bearer token.
func ExtractUUIDFromToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header missing")
	}

	// Split "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", fmt.Errorf("invalid token format")
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		uid, ok := claims["uuid"].(string)
		if !ok {
			return "", fmt.Errorf("uuid not found in token")
		}
		return uid, nil
	}

	return "", fmt.Errorf("invalid token")
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry
// for the async request logger. Must be called after the response has
// been written so the response body and status are captured.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	// Deep copies: fasthttp reuses its buffers after the handler returns
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(string(c.Body()))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		Actor:           ActorFromContext(c),
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

// sanitizeRequestBody masks credential fields so password values never
// reach the logs table. Non-JSON bodies pass through unchanged.
func sanitizeRequestBody(body string) string {
	if body == "" {
		return body
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return body
	}

	for key := range fields {
		if strings.Contains(strings.ToLower(key), "password") {
			fields[key] = "[REDACTED]"
		}
	}

	if sanitized, err := json.Marshal(fields); err == nil {
		return string(sanitized)
	}
	return body
}

// ActorFromContext returns the username stored by the auth middleware,
// for audit columns.
func ActorFromContext(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return "system"
	}
	if username, ok := claims["username"].(string); ok && username != "" {
		return username
	}
	return "system"
}
