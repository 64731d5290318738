package errors_test

import (
	"net/http"
	"testing"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	cerr "github.com/muhammadheryan/supplier-sourcing/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	tests := []struct {
		name     string
		err      cerr.CustomError
		wantMsg  string
		wantCode string
		wantHTTP int
	}{
		{
			name:     "plain invalid request",
			err:      cerr.SetCustomError(constant.ErrInvalidRequest),
			wantMsg:  "invalid request",
			wantCode: "0003",
			wantHTTP: http.StatusBadRequest,
		},
		{
			name:     "upstream status with detail",
			err:      cerr.SetCustomErrorDetail(constant.ErrUpstreamStatus, "status 429"),
			wantMsg:  "Error response while requesting data: status 429",
			wantCode: "0007",
			wantHTTP: http.StatusBadGateway,
		},
		{
			name:     "catalog error keeps 500",
			err:      cerr.SetCustomErrorDetail(constant.ErrCatalogUnavailable, "open categories.json: no such file or directory"),
			wantMsg:  "catalog unavailable: open categories.json: no such file or directory",
			wantCode: "0005",
			wantHTTP: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantCode, tt.err.ErrorCode())
			assert.Equal(t, tt.wantHTTP, tt.err.ErrorHTTPCode())
		})
	}
}

func TestErrorTypeTablesComplete(t *testing.T) {
	seen := map[string]constant.ErrorType{}
	for et := constant.ErrInternal; et <= constant.ErrSubmissionList; et++ {
		msg, ok := constant.ErrorTypeMessage[et]
		assert.True(t, ok && msg != "", "message for %d", et)
		_, ok = constant.ErrorTypeHTTPCode[et]
		assert.True(t, ok, "http code for %d", et)
		code, ok := constant.ErrorTypeCode[et]
		assert.True(t, ok, "code for %d", et)
		if prev, dup := seen[code]; dup {
			t.Fatalf("code %s shared by %d and %d", code, prev, et)
		}
		seen[code] = et
	}
	assert.Len(t, constant.ErrorTypeMessage, len(seen))
	assert.Len(t, constant.ErrorTypeHTTPCode, len(seen))
	assert.Len(t, constant.ErrorTypeCode, len(seen))
}
