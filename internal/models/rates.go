package models

type RateResponse struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}
