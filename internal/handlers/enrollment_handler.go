package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
	"github.com/mynameberto/ProcessarMatriculaApp/internal/services"
	"github.com/mynameberto/ProcessarMatriculaApp/pkg/lambda"
)

// CORSHeaders returns the header set applied to every response,
// including errors and preflight replies.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Accept, Origin, X-Requested-With",
		"Access-Control-Max-Age":       "3600",
	}
}

// EnrollmentHandler handles enrollment HTTP requests
type EnrollmentHandler struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(enrollmentService services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// @Summary Process an enrollment request
// @Description Validates the enrollment data, simulates the document and payment checks and returns the generated protocol
// @Tags enrollment
// @Accept json
// @Produce json
// @Param request body models.EnrollmentRequest true "Enrollment data"
// @Success 200 {object} models.EnrollmentResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /ProcessarMatricula [post]
func (h *EnrollmentHandler) ProcessEnrollment(c *gin.Context) {
	req, errResp := parseEnrollmentRequest(c.Request.Body)
	if errResp != nil {
		c.JSON(http.StatusBadRequest, errResp)
		return
	}

	resp, err := h.enrollmentService.ProcessEnrollment(c.Request.Context(), req)
	if err != nil {
		if vErr, ok := asValidationError(err); ok {
			c.JSON(http.StatusBadRequest, newErrorResponse(errValidation, "Required fields are missing", vErr.MissingFields))
			return
		}
		// Unexpected failures are rendered by the ErrorHandler middleware
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleProcess is the framework-agnostic variant used by the Lambda
// entrypoint. CORS headers are stamped on every reply.
func (h *EnrollmentHandler) HandleProcess(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	enrollReq, errResp := parseEnrollmentRequest(bytes.NewReader(req.Body))
	if errResp != nil {
		return jsonResponse(http.StatusBadRequest, errResp)
	}

	resp, err := h.enrollmentService.ProcessEnrollment(ctx, enrollReq)
	if err != nil {
		status, payload := mapProcessingError(err)
		return jsonResponse(status, payload)
	}

	return jsonResponse(http.StatusOK, resp)
}

// parseEnrollmentRequest reads and decodes the body. An empty or
// whitespace-only body is a parse error, same as malformed JSON.
func parseEnrollmentRequest(body io.Reader) (*models.EnrollmentRequest, *models.ErrorResponse) {
	raw, err := io.ReadAll(body)
	if err != nil {
		resp := newErrorResponse(errParse, "Failed to read request body", nil)
		return nil, &resp
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		resp := newErrorResponse(errParse, "Request body is empty", nil)
		return nil, &resp
	}

	var req models.EnrollmentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		resp := newErrorResponse(errParse, "Request body is not valid JSON: "+err.Error(), nil)
		return nil, &resp
	}

	return &req, nil
}

// mapProcessingError converts pipeline errors to an HTTP status and
// payload. Client-caused validation failures are 400; anything else is
// an internal error.
func mapProcessingError(err error) (int, models.ErrorResponse) {
	if vErr, ok := asValidationError(err); ok {
		return http.StatusBadRequest, newErrorResponse(
			errValidation,
			"Required fields are missing",
			vErr.MissingFields,
		)
	}

	logrus.WithError(err).Error("Enrollment processing failed")
	return http.StatusInternalServerError, newErrorResponse(errInternal, "An unexpected error occurred", nil)
}

// jsonResponse marshals a payload into a lambda.Response with CORS and
// content-type headers.
func jsonResponse(status int, payload interface{}) (*lambda.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return &lambda.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    responseHeaders(),
			Body:       []byte(`{"erro": "Internal server error", "mensagem": "Failed to marshal response"}`),
		}, nil
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    responseHeaders(),
		Body:       body,
	}, nil
}

func responseHeaders() map[string]string {
	headers := CORSHeaders()
	headers["Content-Type"] = "application/json"
	return headers
}
