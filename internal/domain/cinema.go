package domain

type Cinema struct {
	ID     string `json:"id"`
	CityID string `json:"city_id"`
	Name   string `json:"name"`
}

type CreateCinemaInput struct {
	CityID string
	Name   string
}
