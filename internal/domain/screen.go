package domain

// Screen capacities bound the seat counts a booking may sensibly request,
// but bookings are aggregate counts and the bound is not enforced.
type Screen struct {
	ID            string `json:"id"`
	CinemaID      string `json:"cinema_id"`
	Name          string `json:"name"`
	LowerCapacity int    `json:"lower_capacity"`
	UpperCapacity int    `json:"upper_capacity"`
	VIPCapacity   int    `json:"vip_capacity"`
}

type CreateScreenInput struct {
	CinemaID      string
	Name          string
	LowerCapacity int
	UpperCapacity int
	VIPCapacity   int
}
