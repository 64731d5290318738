package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number or a numeric string; HTML forms post "5".
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("quantity must be an integer: %w", err)
	}
	*f = FlexInt(n)
	return nil
}

type SubmissionRequest struct {
	SupplierName string   `json:"supplierName" validate:"required"`
	ProductInfo  string   `json:"productInfo" validate:"required"`
	ProductURL   *string  `json:"productUrl"`
	Category     string   `json:"category" validate:"required"`
	Quantity     *FlexInt `json:"quantity" validate:"required" swaggertype:"integer"`
	Timeline     string   `json:"timeline" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	RequiredFor  string   `json:"requiredFor" validate:"required"`
}

// SubmissionEntity represents the form_submissions table entity.
// ID is zero until the row is committed.
type SubmissionEntity struct {
	ID           uint64  `db:"id"`
	SupplierName string  `db:"supplier_name"`
	ProductInfo  string  `db:"product_info"`
	ProductURL   *string `db:"product_url"`
	Category     string  `db:"category"`
	Quantity     int64   `db:"quantity"`
	Timeline     string  `db:"timeline"`
	Location     string  `db:"location"`
	RequiredFor  string  `db:"required_for"`
}

type SubmitResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

type SubmissionResponse struct {
	ID           uint64  `json:"id"`
	SupplierName string  `json:"supplier_name"`
	ProductInfo  string  `json:"product_info"`
	ProductURL   *string `json:"product_url"`
	Category     string  `json:"category"`
	Quantity     int64   `json:"quantity"`
	Timeline     string  `json:"timeline"`
	Location     string  `json:"location"`
	RequiredFor  string  `json:"required_for"`
}

// SubmissionCreatedEvent is published after a submission is committed.
type SubmissionCreatedEvent struct {
	ID           uint64 `json:"id"`
	SupplierName string `json:"supplier_name"`
	Category     string `json:"category"`
	Quantity     int64  `json:"quantity"`
	Location     string `json:"location"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
