package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/soluna/temple-go/internal/chart"
)

// chartRequest is the JSON body of a chart calculation request.
type chartRequest struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

func (r *chartRequest) birthData() *chart.BirthData {
	return &chart.BirthData{
		Year:      r.Year,
		Month:     time.Month(r.Month),
		Day:       r.Day,
		Hour:      r.Hour,
		Minute:    r.Minute,
		Timezone:  r.Timezone,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		City:      r.City,
	}
}

// CalculateChart runs the full pipeline for the posted birth data.
func (c *Controller) CalculateChart(ctx echo.Context) error {
	var req chartRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	data := req.birthData()
	if err := data.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := c.Service.Calculate(data)
	if err != nil {
		c.logger.Error("chart calculation failed", "key", data.Key(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "chart calculation failed")
	}

	return ctx.JSON(http.StatusOK, result)
}

// SolarReturn finds the solar return instant for a natal Sun longitude in a
// target year. Query parameters: longitude (degrees), year.
func (c *Controller) SolarReturn(ctx echo.Context) error {
	lon, err := strconv.ParseFloat(ctx.QueryParam("longitude"), 64)
	if err != nil || lon < 0 || lon >= 360 {
		return echo.NewHTTPError(http.StatusBadRequest, "longitude must be in [0,360)")
	}
	year, err := strconv.Atoi(ctx.QueryParam("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year must be an integer")
	}

	instant, err := c.Service.SolarReturnDate(lon, year)
	if err != nil {
		c.logger.Error("solar return solve failed", "longitude", lon, "year", year, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "solar return solve failed")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"longitude": lon,
		"year":      year,
		"instant":   instant.UTC().Format(time.RFC3339),
	})
}
