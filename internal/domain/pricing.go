package domain

import (
	"fmt"
	"math"
	"time"
)

type Tier string

const (
	TierMorning   Tier = "morning"
	TierAfternoon Tier = "afternoon"
	TierEvening   Tier = "evening"
)

// TierFor picks the price tier from a showing's start time-of-day:
// [08:00, 12:00) morning, [12:00, 17:00) afternoon, [17:00, 24:00)
// evening. Starts before 08:00 should have been rejected by the operating
// hours check; reaching one here is an error, not a default.
func TierFor(showTime time.Time) (Tier, error) {
	m := showTime.Hour()*60 + showTime.Minute()
	switch {
	case m >= 8*60 && m < 12*60:
		return TierMorning, nil
	case m >= 12*60 && m < 17*60:
		return TierAfternoon, nil
	case m >= 17*60:
		return TierEvening, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNoPriceTier, showTime.Format("15:04"))
	}
}

func (c *City) TierPrice(tier Tier) float64 {
	switch tier {
	case TierMorning:
		return c.MorningPrice
	case TierAfternoon:
		return c.AfternoonPrice
	default:
		return c.EveningPrice
	}
}

// BookingPrice prices aggregate seat counts against the city's tier for
// the showing's start time. Upper gallery seats cost 1.2x the base and VIP
// seats 1.2x that again. Only the final sum is rounded, half-up to two
// decimal places.
func BookingPrice(city *City, showTime time.Time, lowerBooked, upperBooked, vipBooked int) (float64, error) {
	tier, err := TierFor(showTime)
	if err != nil {
		return 0, err
	}
	base := city.TierPrice(tier)

	price := base * float64(lowerBooked)
	price += base * float64(upperBooked) * 1.2
	price += base * float64(vipBooked) * 1.2 * 1.2

	return RoundPrice(price), nil
}

// RoundPrice rounds a monetary value half-up to two decimal places.
// Reports use it again on per-cinema totals after summing booking prices.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
