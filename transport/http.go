package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	catalogapp "github.com/muhammadheryan/supplier-sourcing/application/catalog"
	searchapp "github.com/muhammadheryan/supplier-sourcing/application/search"
	submissionapp "github.com/muhammadheryan/supplier-sourcing/application/submission"
	"github.com/muhammadheryan/supplier-sourcing/cmd/config"
	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	"github.com/muhammadheryan/supplier-sourcing/utils/errors"
	"github.com/muhammadheryan/supplier-sourcing/utils/metrics"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const maxSubmitBodyBytes = 1 << 20

type RestHandler struct {
	CatalogApp    catalogapp.CatalogApp
	SearchApp     searchapp.SearchApp
	SubmissionApp submissionapp.SubmissionApp
}

func NewTransport(cfg *config.Config, CatalogApp catalogapp.CatalogApp, SearchApp searchapp.SearchApp, SubmissionApp submissionapp.SubmissionApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		CatalogApp:    CatalogApp,
		SearchApp:     SearchApp,
		SubmissionApp: SubmissionApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/health", rh.Health).Methods(http.MethodGet)
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/categories", rh.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/countries", rh.GetCountries).Methods(http.MethodGet)
	api.HandleFunc("/search", rh.SearchProducts).Methods(http.MethodGet)
	api.HandleFunc("/submit", rh.SubmitForm).Methods(http.MethodPost)

	// internal routes
	var forms http.Handler = http.HandlerFunc(rh.ListForms)
	if cfg.Internal.APIKey != "" {
		forms = InternalMiddleware(cfg.Internal.APIKey)(forms)
	}
	api.Handle("/forms", forms).Methods(http.MethodGet)

	// middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware())

	return corsHandler(cfg.CORS.AllowedOrigin).Handler(router)
}

// corsHandler allows exactly one origin, with credentials, any method and any header.
func corsHandler(origin string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}

// Health handler
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// GetCategories handler
// @Summary List categories
// @Description Returns the category document exactly as stored
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CategoriesResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/categories [get]
func (s *RestHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.GetCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetCountries handler
// @Summary List countries
// @Description Returns the countries entry of the location document
// @Tags Catalog
// @Produce json
// @Success 200 {object} model.CountriesResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/countries [get]
func (s *RestHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.GetCountries(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchProducts handler
// @Summary Search products
// @Description Proxies a product search to the upstream catalogue
// @Tags Search
// @Produce json
// @Param query query string true "Search text, at least 2 characters"
// @Param page query int false "Page" default(1)
// @Param sort_by query string false "Sort order" default(RELEVANCE)
// @Param product_condition query string false "Condition" default(ALL)
// @Param is_prime query bool false "Prime only" default(false)
// @Success 200 {object} model.SearchResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/search [get]
func (s *RestHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SearchApp.SearchProducts(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func parseSearchRequest(r *http.Request) (*model.SearchRequest, error) {
	q := r.URL.Query()

	req := &model.SearchRequest{
		Query:            strings.TrimSpace(q.Get("query")),
		Page:             constant.SearchDefaultPage,
		SortBy:           q.Get("sort_by"),
		ProductCondition: q.Get("product_condition"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "page must be an integer")
		}
		req.Page = page
	}

	if raw := q.Get("is_prime"); raw != "" {
		prime, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "is_prime must be a boolean")
		}
		req.IsPrime = prime
	}

	return req, nil
}

// SubmitForm handler
// @Summary Submit a sourcing request
// @Tags Submission
// @Accept json
// @Produce json
// @Param request body model.SubmissionRequest true "Submission"
// @Success 200 {object} model.SubmitResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/submit [post]
func (s *RestHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req model.SubmissionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmitBodyBytes)).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error()))
		return
	}

	res, err := s.SubmissionApp.SubmitForm(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListForms handler
// @Summary List submissions
// @Description Every stored submission ordered by id
// @Tags Submission
// @Produce json
// @Success 200 {array} model.SubmissionResponse
// @Failure 500 {object} model.ErrorResponse
// @Security InternalKey
// @Router /api/v1/forms [get]
func (s *RestHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	res, err := s.SubmissionApp.ListSubmissions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
