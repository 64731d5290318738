package model

import "encoding/json"

type CategoriesResponse struct {
	Categories json.RawMessage `json:"categories" swaggertype:"array,object"`
}

type CountriesResponse struct {
	Countries json.RawMessage `json:"countries" swaggertype:"array,object"`
}
