package domain

import "time"

type AgeRating string

const (
	AgeRatingU        AgeRating = "U"
	AgeRatingPG       AgeRating = "PG"
	AgeRatingTwelve   AgeRating = "12"
	AgeRatingFifteen  AgeRating = "15"
	AgeRatingEighteen AgeRating = "18"
)

func (r AgeRating) Valid() bool {
	switch r {
	case AgeRatingU, AgeRatingPG, AgeRatingTwelve, AgeRatingFifteen, AgeRatingEighteen:
		return true
	}
	return false
}

// Film titles are not unique, remakes share titles; title plus
// year published identifies a film for display purposes.
type Film struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	YearPublished int           `json:"year_published"`
	Rating        float64       `json:"rating"`
	AgeRating     AgeRating     `json:"age_rating"`
	Duration      time.Duration `json:"duration"`
	Synopsis      string        `json:"synopsis"`
	Cast          string        `json:"cast"`
}

type CreateFilmInput struct {
	Title         string
	YearPublished int
	Rating        float64
	AgeRating     AgeRating
	Duration      time.Duration
	Synopsis      string
	Cast          string
}
