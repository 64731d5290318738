package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"strconv"

	"github.com/muhammadheryan/supplier-sourcing/cmd/config"
	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	redisrepo "github.com/muhammadheryan/supplier-sourcing/repository/redis"
	"github.com/muhammadheryan/supplier-sourcing/thirdparty/rapidapi"
	"github.com/muhammadheryan/supplier-sourcing/utils/errors"
	"github.com/muhammadheryan/supplier-sourcing/utils/logger"
	"github.com/muhammadheryan/supplier-sourcing/utils/metrics"
	validatorx "github.com/muhammadheryan/supplier-sourcing/utils/validator"
	"go.uber.org/zap"
)

type SearchApp interface {
	SearchProducts(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error)
}

type searchAppImpl struct {
	config       *config.Config
	searchClient rapidapi.SearchClient
	redisRepo    redisrepo.Repository
}

func NewSearchApp(config *config.Config, searchClient rapidapi.SearchClient, redisRepo redisrepo.Repository) SearchApp {
	return &searchAppImpl{config: config, searchClient: searchClient, redisRepo: redisRepo}
}

func (s *searchAppImpl) SearchProducts(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	log := logger.FromContext(ctx)

	if req.SortBy == "" {
		req.SortBy = constant.SearchDefaultSortBy
	}
	if req.ProductCondition == "" {
		req.ProductCondition = constant.SearchDefaultCondition
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	log.Info("[SearchProducts] fetching products",
		zap.String("query", req.Query),
		zap.Int("page", req.Page),
		zap.String("sort_by", req.SortBy),
		zap.String("product_condition", req.ProductCondition),
		zap.Bool("is_prime", req.IsPrime),
	)

	params := s.upstreamParams(req)

	if products, ok := s.fromCache(ctx, params); ok {
		metrics.RecordUpstream("cache_hit")
		return &model.SearchResponse{Products: products}, nil
	}

	payload, err := s.searchClient.Search(ctx, params)
	if err != nil {
		return nil, s.upstreamError(ctx, err)
	}

	records, err := productRecords(payload)
	if err != nil {
		log.Error("[SearchProducts] value error", zap.String("error", err.Error()))
		metrics.RecordUpstream("payload_error")
		return nil, errors.SetCustomErrorDetail(constant.ErrUpstreamPayload, err.Error())
	}

	products := make([]model.Product, 0, len(records))
	for i, rec := range records {
		p, err := toProduct(rec)
		if err != nil {
			if s.config.Search.SkipMalformed {
				log.Warn("[SearchProducts] skipping malformed product", zap.Int("index", i), zap.String("error", err.Error()))
				continue
			}
			log.Error("[SearchProducts] malformed product", zap.Int("index", i), zap.String("error", err.Error()))
			metrics.RecordUpstream("payload_error")
			return nil, errors.SetCustomErrorDetail(constant.ErrUpstreamPayload, fmt.Sprintf("product %d: %s", i, err.Error()))
		}
		products = append(products, p)
	}

	metrics.RecordUpstream("ok")
	s.toCache(ctx, params, products)

	return &model.SearchResponse{Products: products}, nil
}

// upstreamParams sends only the query and page 1 unless filter forwarding is switched on.
func (s *searchAppImpl) upstreamParams(req *model.SearchRequest) model.UpstreamSearchParams {
	params := model.UpstreamSearchParams{
		Query: req.Query,
		Page:  constant.SearchUpstreamPage,
	}
	if s.config.Search.ForwardFilters {
		params.Page = strconv.Itoa(req.Page)
		params.SortBy = req.SortBy
		params.ProductCondition = req.ProductCondition
		params.IsPrime = strconv.FormatBool(req.IsPrime)
	}
	return params
}

func (s *searchAppImpl) upstreamError(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	var statusErr *rapidapi.StatusError
	if goerrors.As(err, &statusErr) {
		log.Error("[SearchProducts] http error", zap.Int("status", statusErr.StatusCode), zap.String("error", err.Error()))
		metrics.RecordUpstream("status_error")
		return errors.SetCustomErrorDetail(constant.ErrUpstreamStatus, fmt.Sprintf("upstream status %d", statusErr.StatusCode))
	}

	var payloadErr *rapidapi.PayloadError
	if goerrors.As(err, &payloadErr) {
		log.Error("[SearchProducts] value error", zap.String("error", err.Error()))
		metrics.RecordUpstream("payload_error")
		return errors.SetCustomErrorDetail(constant.ErrUpstreamPayload, err.Error())
	}

	log.Error("[SearchProducts] request error", zap.String("error", err.Error()))
	metrics.RecordUpstream("request_error")
	return errors.SetCustomErrorDetail(constant.ErrUpstreamRequest, err.Error())
}

func cacheKey(p model.UpstreamSearchParams) string {
	sum := sha256.Sum256([]byte(p.Query + "\x00" + p.Page + "\x00" + p.SortBy + "\x00" + p.ProductCondition + "\x00" + p.IsPrime))
	return "search:" + hex.EncodeToString(sum[:])
}

func (s *searchAppImpl) fromCache(ctx context.Context, params model.UpstreamSearchParams) ([]model.Product, bool) {
	if s.redisRepo == nil || s.config.Search.CacheTTL <= 0 {
		return nil, false
	}
	val, err := s.redisRepo.Get(ctx, cacheKey(params))
	if err != nil {
		logger.FromContext(ctx).Warn("[SearchProducts] cache get", zap.String("error", err.Error()))
		return nil, false
	}
	if val == "" {
		return nil, false
	}
	var products []model.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		logger.FromContext(ctx).Warn("[SearchProducts] cache decode", zap.String("error", err.Error()))
		return nil, false
	}
	return products, true
}

func (s *searchAppImpl) toCache(ctx context.Context, params model.UpstreamSearchParams, products []model.Product) {
	if s.redisRepo == nil || s.config.Search.CacheTTL <= 0 {
		return
	}
	b, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.redisRepo.SetWithTTL(ctx, cacheKey(params), string(b), s.config.Search.CacheTTL); err != nil {
		logger.FromContext(ctx).Warn("[SearchProducts] cache set", zap.String("error", err.Error()))
	}
}
