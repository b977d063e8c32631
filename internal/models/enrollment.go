package models

import "time"

// Status label returned on successful processing
const (
	StatusProcessed = "Processed successfully"
)

// Next step labels, chosen from the document/payment validity flags
const (
	NextStepContract    = "Contract generation"
	NextStepCorrections = "Awaiting corrections"
)

// ProtocolPrefix is prepended to the epoch-millisecond protocol number.
const ProtocolPrefix = "PUCPR-"

// EnrollmentRequest is the inbound enrollment payload. The JSON field
// names follow the legacy PUCPR API contract and must not change.
type EnrollmentRequest struct {
	Name     string `json:"Nome" validate:"notblank"`
	Email    string `json:"Email" validate:"notblank"`
	CourseID string `json:"Curso" validate:"notblank"`
}

// EnrollmentResponse is the successful processing result. Existing
// consumers depend on these exact field names.
type EnrollmentResponse struct {
	Protocol       string    `json:"Protocolo"`
	Status         string    `json:"Status"`
	DocumentsValid bool      `json:"DocumentosValidos"`
	PaymentValid   bool      `json:"PagamentoValido"`
	NextStep       string    `json:"ProximaEtapa"`
	ProcessedAt    time.Time `json:"DataProcessamento"`
	CourseID       string    `json:"Curso"`
	CourseValue    string    `json:"ValorCurso"`
	ProcessingTime string    `json:"TempoProcessamento"`
}

// ErrorResponse is the error payload shared by all failure modes.
type ErrorResponse struct {
	Error     string   `json:"erro"`
	Message   string   `json:"mensagem"`
	Timestamp string   `json:"timestamp"`
	Details   []string `json:"detalhes,omitempty"`
}
