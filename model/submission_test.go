package model_test

import (
	"encoding/json"
	"testing"

	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/stretchr/testify/assert"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    model.FlexInt
		wantErr bool
	}{
		{name: "number", body: `{"quantity": 12}`, want: 12},
		{name: "numeric string", body: `{"quantity": "7"}`, want: 7},
		{name: "padded string", body: `{"quantity": " 3 "}`, want: 3},
		{name: "empty string", body: `{"quantity": ""}`, wantErr: true},
		{name: "float", body: `{"quantity": 1.5}`, wantErr: true},
		{name: "word", body: `{"quantity": "many"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req model.SubmissionRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if assert.NotNil(t, req.Quantity) {
				assert.Equal(t, tt.want, *req.Quantity)
			}
		})
	}
}
