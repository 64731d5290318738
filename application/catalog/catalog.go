package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	catalogrepo "github.com/muhammadheryan/supplier-sourcing/repository/catalog"
	"github.com/muhammadheryan/supplier-sourcing/utils/errors"
	"github.com/muhammadheryan/supplier-sourcing/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	GetCategories(ctx context.Context) (*model.CategoriesResponse, error)
	GetCountries(ctx context.Context) (*model.CountriesResponse, error)
}

type catalogAppImpl struct {
	catalogRepo catalogrepo.CatalogRepository
}

func NewCatalogApp(catalogRepo catalogrepo.CatalogRepository) CatalogApp {
	return &catalogAppImpl{catalogRepo: catalogRepo}
}

func (s *catalogAppImpl) GetCategories(ctx context.Context) (*model.CategoriesResponse, error) {
	categories, err := s.catalogRepo.Categories(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[GetCategories] error catalogRepo.Categories", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrCatalogUnavailable, err.Error())
	}

	return &model.CategoriesResponse{Categories: categories}, nil
}

func (s *catalogAppImpl) GetCountries(ctx context.Context) (*model.CountriesResponse, error) {
	doc, err := s.catalogRepo.Countries(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[GetCountries] error catalogRepo.Countries", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrCatalogUnavailable, err.Error())
	}

	countries, err := extractCountries(doc)
	if err != nil {
		logger.FromContext(ctx).Error("[GetCountries] error extractCountries", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrCatalogUnavailable, err.Error())
	}

	logger.FromContext(ctx).Info("[GetCountries] countries loaded", zap.ByteString("countries", countries))
	return &model.CountriesResponse{Countries: countries}, nil
}

func extractCountries(doc json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, fmt.Errorf("country document is not an object: %w", err)
	}
	countries, ok := fields["countries"]
	if !ok {
		return nil, fmt.Errorf("country document has no 'countries' key")
	}
	return countries, nil
}
