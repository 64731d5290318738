package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/muhammadheryan/supplier-sourcing/model"
)

var jsonNull = []byte("null")

// productRecords pulls data.products out of the upstream payload.
func productRecords(payload *model.UpstreamSearchPayload) ([]map[string]json.RawMessage, error) {
	if payload == nil || payload.Data == nil {
		return nil, fmt.Errorf("unexpected response format: 'data' or 'products' key not found")
	}
	raw, ok := payload.Data["products"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, fmt.Errorf("unexpected response format: 'data' or 'products' key not found")
	}
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("unexpected response format: 'products' is not a list of objects: %w", err)
	}
	return records, nil
}

// toProduct maps one upstream record. Every key except product_original_price
// must be present; a present key may be null.
func toProduct(rec map[string]json.RawMessage) (model.Product, error) {
	var (
		p   model.Product
		err error
	)
	lookup := func(key string) (json.RawMessage, bool) {
		if err != nil {
			return nil, false
		}
		raw, ok := rec[key]
		if !ok {
			err = fmt.Errorf("missing key '%s'", key)
		}
		return raw, ok
	}
	str := func(key string, dst **string) {
		if raw, ok := lookup(key); ok {
			*dst, err = decodeString(key, raw)
		}
	}
	num := func(key string, dst **int64) {
		if raw, ok := lookup(key); ok {
			*dst, err = decodeInt(key, raw)
		}
	}
	flag := func(key string, dst **bool) {
		if raw, ok := lookup(key); ok {
			*dst, err = decodeBool(key, raw)
		}
	}

	str("asin", &p.ASIN)
	str("product_title", &p.ProductTitle)
	str("product_price", &p.ProductPrice)
	if raw, ok := rec["product_original_price"]; ok {
		if err == nil {
			p.ProductOriginalPrice, err = decodeString("product_original_price", raw)
		}
	} else {
		empty := ""
		p.ProductOriginalPrice = &empty
	}
	str("currency", &p.Currency)
	str("product_star_rating", &p.ProductStarRating)
	num("product_num_ratings", &p.ProductNumRatings)
	str("product_url", &p.ProductURL)
	str("product_photo", &p.ProductPhoto)
	num("product_num_offers", &p.ProductNumOffers)
	str("product_minimum_offer_price", &p.ProductMinimumOfferPrice)
	flag("is_best_seller", &p.IsBestSeller)
	flag("is_amazon_choice", &p.IsAmazonChoice)
	flag("is_prime", &p.IsPrime)
	flag("climate_pledge_friendly", &p.ClimatePledgeFriendly)
	str("sales_volume", &p.SalesVolume)
	str("delivery", &p.Delivery)
	flag("has_variations", &p.HasVariations)

	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// decodeString accepts a string or a bare number, e.g. a star rating sent as 4.5.
func decodeString(key string, raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, jsonNull) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s, nil
	}
	return nil, fmt.Errorf("key '%s': expected string, got %s", key, raw)
}

// decodeInt accepts an integer or a numeric string.
func decodeInt(key string, raw json.RawMessage) (*int64, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, jsonNull) {
		return nil, nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return &n, nil
		}
	}
	return nil, fmt.Errorf("key '%s': expected integer, got %s", key, raw)
}

func decodeBool(key string, raw json.RawMessage) (*bool, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, jsonNull) {
		return nil, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("key '%s': expected boolean, got %s", key, raw)
	}
	return &b, nil
}
