package search

import (
	"encoding/json"
	"testing"

	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *string
		wantErr bool
	}{
		{name: "string", raw: `"4.5"`, want: strPtr("4.5")},
		{name: "number", raw: `4.5`, want: strPtr("4.5")},
		{name: "null", raw: `null`, want: nil},
		{name: "bool", raw: `true`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeString("k", json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeInt(t *testing.T) {
	n := int64(42)
	tests := []struct {
		name    string
		raw     string
		want    *int64
		wantErr bool
	}{
		{name: "number", raw: `42`, want: &n},
		{name: "numeric string", raw: `" 42 "`, want: &n},
		{name: "null", raw: `null`, want: nil},
		{name: "fraction", raw: `4.2`, wantErr: true},
		{name: "text", raw: `"many"`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeInt("k", json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductRecords(t *testing.T) {
	_, err := productRecords(nil)
	assert.Error(t, err)

	_, err = productRecords(&model.UpstreamSearchPayload{Data: map[string]json.RawMessage{"products": json.RawMessage(`null`)}})
	assert.EqualError(t, err, "unexpected response format: 'data' or 'products' key not found")

	_, err = productRecords(&model.UpstreamSearchPayload{Data: map[string]json.RawMessage{"products": json.RawMessage(`{"a":1}`)}})
	assert.Error(t, err)

	recs, err := productRecords(&model.UpstreamSearchPayload{Data: map[string]json.RawMessage{"products": json.RawMessage(`[{"asin":"x"},{"asin":"y"}]`)}})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestToProduct_MissingKeyNamed(t *testing.T) {
	_, err := toProduct(map[string]json.RawMessage{"asin": json.RawMessage(`"B0"`)})
	assert.EqualError(t, err, "missing key 'product_title'")
}

func strPtr(s string) *string { return &s }
