package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"lodge-booking/database"
	"lodge-booking/logger"
	inquiryModel "lodge-booking/models/inquiry"
	inquiryService "lodge-booking/services/inquiry"
	"lodge-booking/types"
	bookingTypes "lodge-booking/types/booking"

	"github.com/gofiber/fiber/v2"
	"google.golang.org/genai"
)

// ParseInquiry turns the free text of a reservation inquiry (email or
// webform) into draft booking fields using the Gemini API
func (bc *BookingController) ParseInquiry(c *fiber.Ctx) error {
	startTime := time.Now()

	service := inquiryService.NewInquiryService(database.DB)
	requestID := service.GenerateRequestID()

	var req bookingTypes.InquiryParseRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error(fmt.Sprintf("Failed to parse inquiry request %s", requestID), err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    map[string]interface{}{"request_id": requestID},
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    map[string]interface{}{"request_id": requestID},
		})
	}

	// Inquiries longer than 20KB are almost certainly not booking text
	if len(req.Text) > 20*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Inquiry text too large. Maximum size is 20KB",
			Data:    map[string]interface{}{"request_id": requestID},
		})
	}

	if _, err := service.CreateInitialRequest(c, requestID, req.Text); err != nil {
		logger.Error(fmt.Sprintf("Failed to create initial inquiry request %s", requestID), err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to initialize request",
			Data:    map[string]interface{}{"request_id": requestID},
		})
	}

	draft, err := bc.parseInquiryWithGemini(req.Text)
	if err != nil {
		processingTime := time.Since(startTime).Milliseconds()
		service.SaveFailureResultAsync(requestID, fmt.Sprintf("Gemini parsing failed: %s", err.Error()), processingTime)

		logger.Error(fmt.Sprintf("Failed to parse inquiry with Gemini for request %s", requestID), err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to parse inquiry",
			Data: map[string]interface{}{
				"error":      err.Error(),
				"request_id": requestID,
			},
		})
	}

	processingTime := time.Since(startTime).Milliseconds()
	service.SaveResultAsync(requestID, draft, processingTime)

	logger.Success(fmt.Sprintf("Inquiry %s parsed in %dms", requestID, processingTime))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Inquiry parsed successfully",
		Data: map[string]interface{}{
			"request_id": requestID,
			"draft":      draft,
		},
	})
}

// parseInquiryWithGemini extracts structured draft booking fields from
// free-form inquiry text
func (bc *BookingController) parseInquiryWithGemini(text string) (*inquiryModel.DraftBooking, error) {
	ctx := context.Background()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := `Analyze this lodging reservation inquiry and extract the following information. Return ONLY valid JSON.

			Extract these fields from the text. If a field is missing or unclear, use an empty string (0 for party_size).

			Required JSON format:
			{
			"guest_first_name": string,
			"guest_last_name": string,
			"guest_email": string,
			"guest_phone": string,
			"guest_country": string,
			"start_date": string,        // arrival date as YYYY-MM-DD
			"end_date": string,          // departure date as YYYY-MM-DD
			"party_size": number,        // total number of guests
			"room_preference": string,   // any room wishes mentioned
			"notes": string              // anything else worth keeping
			}

			Inquiry text:
			` + text

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		"gemini-2.5-flash-lite",
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content generated")
	}

	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return nil, fmt.Errorf("empty response")
	}

	jsonText := extractJSONFromMarkdown(responseText)

	var draft inquiryModel.DraftBooking
	if err := json.Unmarshal([]byte(jsonText), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, response: %s", err, jsonText)
	}

	return &draft, nil
}

// extractJSONFromMarkdown extracts JSON content from markdown code blocks
func extractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			jsonLines := lines[1 : len(lines)-1]
			return strings.Join(jsonLines, "\n")
		}
	}

	return text
}
