package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	appcatalog "github.com/muhammadheryan/supplier-sourcing/application/catalog"
	"github.com/muhammadheryan/supplier-sourcing/constant"
	catalogmocks "github.com/muhammadheryan/supplier-sourcing/mocks/repository/catalog"
	"github.com/muhammadheryan/supplier-sourcing/model"
	cerr "github.com/muhammadheryan/supplier-sourcing/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestCatalogApp_GetCategories(t *testing.T) {
	type fields struct {
		catalogRepo *catalogmocks.CatalogRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.CategoriesResponse
		wantErr  bool
	}{
		{
			name:   "success: categories returned verbatim",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t)},
			mockCall: func(f fields) {
				f.catalogRepo.
					On("Categories", mock.Anything).
					Return(json.RawMessage(`[{"name":"Electronics","sub":["Cables"]}]`), nil).
					Once()
			},
			want: &model.CategoriesResponse{
				Categories: json.RawMessage(`[{"name":"Electronics","sub":["Cables"]}]`),
			},
		},
		{
			name:   "error: file missing",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t)},
			mockCall: func(f fields) {
				f.catalogRepo.
					On("Categories", mock.Anything).
					Return(nil, errors.New("open categories.json: no such file or directory")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcatalog.NewCatalogApp(tt.fields.catalogRepo)

			got, err := app.GetCategories(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCategories() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorHTTPCode() != 500 {
					t.Fatalf("http code = %d, want 500", ce.ErrorHTTPCode())
				}
				if ce.Error() == "" {
					t.Fatalf("empty error message")
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetCategories() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCatalogApp_GetCountries(t *testing.T) {
	type fields struct {
		catalogRepo *catalogmocks.CatalogRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.CountriesResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: countries key unwrapped",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t)},
			mockCall: func(f fields) {
				f.catalogRepo.
					On("Countries", mock.Anything).
					Return(json.RawMessage(`{"countries":["India","Japan"],"version":2}`), nil).
					Once()
			},
			want: &model.CountriesResponse{Countries: json.RawMessage(`["India","Japan"]`)},
		},
		{
			name:   "error: missing countries key",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t)},
			mockCall: func(f fields) {
				f.catalogRepo.
					On("Countries", mock.Anything).
					Return(json.RawMessage(`{"regions":[]}`), nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCatalogUnavailable,
		},
		{
			name:   "error: document is a list",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t)},
			mockCall: func(f fields) {
				f.catalogRepo.
					On("Countries", mock.Anything).
					Return(json.RawMessage(`["India"]`), nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCatalogUnavailable,
		},
		{
			name:   "error: repository fails",
			fields: fields{catalogRepo: catalogmocks.NewCatalogRepository(t)},
			mockCall: func(f fields) {
				f.catalogRepo.
					On("Countries", mock.Anything).
					Return(nil, errors.New("location.json: malformed JSON")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrCatalogUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcatalog.NewCatalogApp(tt.fields.catalogRepo)

			got, err := app.GetCountries(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCountries() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetCountries() = %s, want %s", got.Countries, tt.want.Countries)
			}
		})
	}
}
