package web

// errors.go provides unified error response handling for the web layer.
//
// Every error is logged server-side with full technical detail and
// returned to clients as a user-friendly message with a support code:
//
//	IMP001 - empty or unreadable file
//	IMP002 - no name column detected
//	IMP003 - file exceeds the upload size limit
//	REQ001 - malformed JSON request body
//	REQ002 - required request field missing
//	SVC001 - catalog search not configured
//	SRV001 - unexpected internal error

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cardledger/server/internal/importer"
	"github.com/cardledger/server/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses. Includes
// both a machine-readable code and human-readable message and action.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

var (
	errFileTooLarge  = errors.New("file too large")
	errMissingRecord = errors.New("request is missing the record field")
	errNoCatalog     = errors.New("catalog search is not configured")
)

func errInvalidJSON(err error) error {
	return fmt.Errorf("invalid JSON body: %w", err)
}

// userMessage maps an error to its client-facing message, action, and code.
func userMessage(err error) ErrorResponse {
	switch {
	case errors.Is(err, importer.ErrEmptyInput):
		return ErrorResponse{
			Message: "The file is empty or could not be read",
			Action:  "Upload a CSV export with a header row and at least one data row",
			Code:    "IMP001",
		}
	case errors.Is(err, importer.ErrNoNameColumn):
		return ErrorResponse{
			Message: "No card name column was detected",
			Action:  "Rename the column holding card names to something like \"Name\" or \"Card Name\"",
			Code:    "IMP002",
		}
	case errors.Is(err, errFileTooLarge):
		return ErrorResponse{
			Message: "The file exceeds the upload size limit",
			Action:  "Split the export into smaller files",
			Code:    "IMP003",
		}
	case errors.Is(err, errMissingRecord):
		return ErrorResponse{
			Message: "The request is missing a record to match",
			Action:  "Include a record object in the request body",
			Code:    "REQ002",
		}
	case errors.Is(err, errNoCatalog):
		return ErrorResponse{
			Message: "Catalog matching is not available",
			Action:  "Configure CATALOG_BASE_URL and restart the service",
			Code:    "SVC001",
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return ErrorResponse{
			Message: "The request body is not valid JSON",
			Action:  "Check the request payload structure",
			Code:    "REQ001",
		}
	}

	return ErrorResponse{
		Message: "An unexpected error occurred",
		Action:  "Please try again; quote the request ID if the problem persists",
		Code:    "SRV001",
	}
}

// respondError logs the technical error and writes the mapped user-facing
// JSON response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	resp := userMessage(err)
	resp.Error = resp.Message

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", resp.Code,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
