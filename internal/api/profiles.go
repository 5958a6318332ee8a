package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/soluna/temple-go/internal/datastore"
	"github.com/soluna/temple-go/internal/errors"
)

// profileRequest is the JSON body for creating a saved profile.
type profileRequest struct {
	Name string `json:"name"`
	chartRequest
}

// CreateProfile saves a birth profile, calculates its chart and persists the
// result.
func (c *Controller) CreateProfile(ctx echo.Context) error {
	if c.DS == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "persistence is not configured")
	}

	var req profileRequest
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

	profile := &datastore.BirthProfile{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Year:      req.Year,
		Month:     req.Month,
		Day:       req.Day,
		Hour:      req.Hour,
		Minute:    req.Minute,
		Timezone:  req.Timezone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		City:      req.City,
	}
	if err := c.DS.SaveProfile(profile); err != nil {
		c.logger.Error("profile save failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "profile save failed")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "result serialization failed")
	}
	record := &datastore.ChartRecord{
		ID:          uuid.NewString(),
		ProfileID:   profile.ID,
		CalcVersion: result.Chart.CalcVersion,
		Source:      result.Chart.Source,
		BirthUTC:    result.Chart.BirthUTC,
		DesignUTC:   result.Chart.DesignUTC,
		HDType:      string(result.HumanDesign.Type),
		HDProfile:   result.HumanDesign.Profile,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.DS.SaveChart(record); err != nil {
		c.logger.Error("chart save failed", "profile", profile.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "chart save failed")
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"profile": profile,
		"result":  result,
	})
}

// ListProfiles returns all saved profiles.
func (c *Controller) ListProfiles(ctx echo.Context) error {
	if c.DS == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "persistence is not configured")
	}
	profiles, err := c.DS.GetAllProfiles()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "profile query failed")
	}
	return ctx.JSON(http.StatusOK, profiles)
}

// GetProfile returns one saved profile by ID.
func (c *Controller) GetProfile(ctx echo.Context) error {
	if c.DS == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "persistence is not configured")
	}
	profile, err := c.DS.GetProfile(ctx.Param("id"))
	if err != nil {
		if errors.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "profile query failed")
	}
	return ctx.JSON(http.StatusOK, profile)
}

// GetProfileChart returns the persisted calculation result for a profile.
func (c *Controller) GetProfileChart(ctx echo.Context) error {
	if c.DS == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "persistence is not configured")
	}
	record, err := c.DS.GetChartForProfile(ctx.Param("id"))
	if err != nil {
		if errors.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "chart not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "chart query failed")
	}
	return ctx.JSONBlob(http.StatusOK, record.Payload)
}

// DeleteProfile removes a saved profile and its charts.
func (c *Controller) DeleteProfile(ctx echo.Context) error {
	if c.DS == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "persistence is not configured")
	}
	if err := c.DS.DeleteProfile(ctx.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "profile delete failed")
	}
	return ctx.NoContent(http.StatusNoContent)
}
