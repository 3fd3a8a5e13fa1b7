package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCity(c *ginext.Context)
	ListCities(c *ginext.Context)
	UpdateCityPrices(c *ginext.Context)
	CreateCinema(c *ginext.Context)
	ListCinemas(c *ginext.Context)
	CreateScreen(c *ginext.Context)
	ListScreens(c *ginext.Context)
	CreateFilm(c *ginext.Context)
	ListFilms(c *ginext.Context)
	DeleteFilm(c *ginext.Context)
	CreateShowing(c *ginext.Context)
	ListShowings(c *ginext.Context)
	UpdateShowing(c *ginext.Context)
	DeleteShowing(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListShowingBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	ReportBookingsPerFilm(c *ginext.Context)
	ReportMonthlyRevenue(c *ginext.Context)
	ReportTopRevenueFilm(c *ginext.Context)
	ReportEmployeeBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Cities
		api.POST("/cities", h.CreateCity)
		api.GET("/cities", h.ListCities)
		api.PUT("/cities/:id/prices", h.UpdateCityPrices)

		// Cinemas and screens
		api.POST("/cinemas", h.CreateCinema)
		api.GET("/cinemas", h.ListCinemas)
		api.POST("/cinemas/:id/screens", h.CreateScreen)
		api.GET("/cinemas/:id/screens", h.ListScreens)

		// Films
		api.POST("/films", h.CreateFilm)
		api.GET("/films", h.ListFilms)
		api.DELETE("/films/:id", h.DeleteFilm)

		// Showings
		api.POST("/showings", h.CreateShowing)
		api.GET("/showings", h.ListShowings)
		api.PUT("/showings/:id", h.UpdateShowing)
		api.DELETE("/showings/:id", h.DeleteShowing)

		// Bookings
		api.POST("/showings/:id/bookings", h.CreateBooking)
		api.GET("/showings/:id/bookings", h.ListShowingBookings)
		api.DELETE("/bookings/:id", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)

		// Reports
		api.GET("/reports/bookings-per-film", h.ReportBookingsPerFilm)
		api.GET("/reports/monthly-revenue", h.ReportMonthlyRevenue)
		api.GET("/reports/top-film", h.ReportTopRevenueFilm)
		api.GET("/reports/employee-bookings", h.ReportEmployeeBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
