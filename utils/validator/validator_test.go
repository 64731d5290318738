package validatorx_test

import (
	"sync"
	"testing"

	validatorx "github.com/muhammadheryan/supplier-sourcing/utils/validator"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Query string `json:"query" validate:"required,min=2"`
	Page  int    `json:"page" validate:"gt=0"`
}

// runs first in this file so Init happens under contention
func TestValidateStruct_ConcurrentFirstUse(t *testing.T) {
	const n = 50
	msgs := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := validatorx.ValidateStruct(&sample{Query: "a", Page: 1})
			if err != nil {
				msgs[i] = validatorx.Describe(err)
			}
		}(i)
	}
	wg.Wait()

	for i, msg := range msgs {
		assert.Equal(t, "query failed on min=2", msg, "goroutine %d", i)
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr bool
		wantMsg string
	}{
		{name: "valid", in: sample{Query: "ab", Page: 1}},
		{name: "short query", in: sample{Query: "a", Page: 1}, wantErr: true, wantMsg: "query failed on min=2"},
		{name: "zero page", in: sample{Query: "abc"}, wantErr: true, wantMsg: "page failed on gt=0"},
		{name: "missing query", in: sample{Page: 1}, wantErr: true, wantMsg: "query failed on required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.in)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantMsg, validatorx.Describe(err))
		})
	}
}
