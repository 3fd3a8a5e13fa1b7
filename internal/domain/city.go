package domain

// City holds the seat prices charged at every cinema located in it.
type City struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MorningPrice   float64 `json:"morning_price"`
	AfternoonPrice float64 `json:"afternoon_price"`
	EveningPrice   float64 `json:"evening_price"`
}

type CreateCityInput struct {
	Name           string
	MorningPrice   float64
	AfternoonPrice float64
	EveningPrice   float64
}

type CityPrices struct {
	Morning   float64
	Afternoon float64
	Evening   float64
}
