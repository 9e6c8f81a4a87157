package inquiry

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"lodge-booking/logger"
	inquiryModel "lodge-booking/models/inquiry"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InquiryService persists inquiry parse requests and their outcomes
type InquiryService struct {
	DB *gorm.DB
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{DB: db}
}

// GenerateRequestID generates a 24 character unique request ID
func (s *InquiryService) GenerateRequestID() string {
	bytes := make([]byte, 12)
	if _, err := rand.Read(bytes); err != nil {
		logger.Error("Failed to read random bytes for request ID", err)
		return fmt.Sprintf("%024x", time.Now().UnixNano())
	}
	requestID := hex.EncodeToString(bytes)

	// Last 6 hex chars of the timestamp + 18 chars of random hex
	timestamp := time.Now().Unix()
	return fmt.Sprintf("%06x%s", timestamp&0xffffff, requestID[:18])
}

// CreateInitialRequest creates an initial request record in the database
func (s *InquiryService) CreateInitialRequest(c *fiber.Ctx, requestID, sourceText string) (*inquiryModel.InquiryRequest, error) {
	ipAddress := c.IP()
	if ipAddress == "" {
		ipAddress = "unknown"
	}
	userAgent := c.Get("User-Agent")

	request := &inquiryModel.InquiryRequest{
		RequestID:  requestID,
		SourceText: sourceText,
		Status:     "processing",
		IPAddress:  ipAddress,
		UserAgent:  &userAgent,
	}

	if err := s.DB.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create initial request: %w", err)
	}

	return request, nil
}

// SaveResultAsync persists a successful parse outcome without blocking the handler
func (s *InquiryService) SaveResultAsync(requestID string, draft *inquiryModel.DraftBooking, processingTimeMs int64) {
	go func() {
		resultBytes, err := json.Marshal(draft)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to marshal draft for request %s", requestID), err)
			return
		}
		resultJSON := string(resultBytes)

		updates := map[string]interface{}{
			"status":             "completed",
			"result_json":        resultJSON,
			"processing_time_ms": processingTimeMs,
		}
		if err := s.DB.Model(&inquiryModel.InquiryRequest{}).Where("request_id = ?", requestID).Updates(updates).Error; err != nil {
			logger.Error(fmt.Sprintf("Failed to save parse result for request %s", requestID), err)
		}
	}()
}

// SaveFailureResultAsync persists a failed parse outcome without blocking the handler
func (s *InquiryService) SaveFailureResultAsync(requestID, errorText string, processingTimeMs int64) {
	go func() {
		updates := map[string]interface{}{
			"status":             "failed",
			"error_text":         errorText,
			"processing_time_ms": processingTimeMs,
		}
		if err := s.DB.Model(&inquiryModel.InquiryRequest{}).Where("request_id = ?", requestID).Updates(updates).Error; err != nil {
			logger.Error(fmt.Sprintf("Failed to save parse failure for request %s", requestID), err)
		}
	}()
}
