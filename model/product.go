package model

import "encoding/json"

// Product is one reshaped upstream search record. Every field is nullable
// because the upstream does not guarantee complete data.
type Product struct {
	ASIN                     *string `json:"asin"`
	ProductTitle             *string `json:"product_title"`
	ProductPrice             *string `json:"product_price"`
	ProductOriginalPrice     *string `json:"product_original_price"`
	Currency                 *string `json:"currency"`
	ProductStarRating        *string `json:"product_star_rating"`
	ProductNumRatings        *int64  `json:"product_num_ratings"`
	ProductURL               *string `json:"product_url"`
	ProductPhoto             *string `json:"product_photo"`
	ProductNumOffers         *int64  `json:"product_num_offers"`
	ProductMinimumOfferPrice *string `json:"product_minimum_offer_price"`
	IsBestSeller             *bool   `json:"is_best_seller"`
	IsAmazonChoice           *bool   `json:"is_amazon_choice"`
	IsPrime                  *bool   `json:"is_prime"`
	ClimatePledgeFriendly    *bool   `json:"climate_pledge_friendly"`
	SalesVolume              *string `json:"sales_volume"`
	Delivery                 *string `json:"delivery"`
	HasVariations            *bool   `json:"has_variations"`
}

// SearchRequest carries the /search query parameters after defaults are applied.
type SearchRequest struct {
	Query            string `json:"query" validate:"required,min=2"`
	Page             int    `json:"page" validate:"gt=0"`
	SortBy           string `json:"sort_by"`
	ProductCondition string `json:"product_condition"`
	IsPrime          bool   `json:"is_prime"`
}

type SearchResponse struct {
	Products []Product `json:"products"`
}

// UpstreamSearchParams are the query values sent to the upstream search endpoint.
// Empty values are not sent.
type UpstreamSearchParams struct {
	Query            string
	Page             string
	SortBy           string
	ProductCondition string
	IsPrime          string
}

// UpstreamSearchPayload keeps the upstream body loosely typed so that shape
// problems can be reported instead of failing the decode.
type UpstreamSearchPayload struct {
	Data map[string]json.RawMessage `json:"data"`
}
