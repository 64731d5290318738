package constant

import "net/http"

type ErrorType int

const (
	ErrInternal ErrorType = iota
	ErrInvalidRequest
	ErrUnauthorize
	ErrCatalogUnavailable
	ErrUpstreamRequest
	ErrUpstreamStatus
	ErrUpstreamPayload
	ErrSubmissionSave
	ErrSubmissionList
)

var ErrorTypeMessage = map[ErrorType]string{
	ErrInternal:           "error internal",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrCatalogUnavailable: "catalog unavailable",
	ErrUpstreamRequest:    "An error occurred while requesting data",
	ErrUpstreamStatus:     "Error response while requesting data",
	ErrUpstreamPayload:    "Value error",
	ErrSubmissionSave:     "An error occurred while saving the submission",
	ErrSubmissionList:     "An error occurred while retrieving the submissions",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	ErrInternal:           http.StatusInternalServerError,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrCatalogUnavailable: http.StatusInternalServerError,
	ErrUpstreamRequest:    http.StatusBadGateway,
	ErrUpstreamStatus:     http.StatusBadGateway,
	ErrUpstreamPayload:    http.StatusBadGateway,
	ErrSubmissionSave:     http.StatusInternalServerError,
	ErrSubmissionList:     http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	ErrInternal:           "0001",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrCatalogUnavailable: "0005",
	ErrUpstreamRequest:    "0006",
	ErrUpstreamStatus:     "0007",
	ErrUpstreamPayload:    "0008",
	ErrSubmissionSave:     "0009",
	ErrSubmissionList:     "0010",
}
