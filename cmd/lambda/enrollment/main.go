package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"github.com/mynameberto/ProcessarMatriculaApp/internal/handlers"
	"github.com/mynameberto/ProcessarMatriculaApp/internal/models"
	"github.com/mynameberto/ProcessarMatriculaApp/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Preflight is answered at the edge, before any routing
	if event.HTTPMethod == http.MethodOptions {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusNoContent,
			Headers:    handlers.CORSHeaders(),
		}, nil
	}

	if event.HTTPMethod != http.MethodPost {
		return errorProxyResponse(http.StatusMethodNotAllowed, "Method not allowed", "Only POST and OPTIONS are supported"), nil
	}

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize service container")
		return errorProxyResponse(http.StatusInternalServerError, "Internal server error", "Service initialization failed"), nil
	}

	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}

	enrollmentHandler := handlers.NewEnrollmentHandler(container.EnrollmentService)

	resp, err := enrollmentHandler.HandleProcess(ctx, req)
	if err != nil {
		logrus.WithError(err).Error("Enrollment handler failed")
		return errorProxyResponse(http.StatusInternalServerError, "Internal server error", "An unexpected error occurred"), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func errorProxyResponse(status int, label, message string) events.APIGatewayProxyResponse {
	headers := handlers.CORSHeaders()
	headers["Content-Type"] = "application/json"

	body, _ := json.Marshal(models.ErrorResponse{
		Error:     label,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

func main() {
	awslambda.Start(handler)
}
