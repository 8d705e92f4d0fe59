package handler

import (
	"errors"
	"net/http"

	"github.com/fakhrymubarak/kloudly/internal/middleware"
	"github.com/fakhrymubarak/kloudly/internal/model"
	"github.com/fakhrymubarak/kloudly/internal/service"
	"github.com/fakhrymubarak/kloudly/internal/weatherapi"
	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
}

func NewWeatherHandler(svc ...service.WeatherServiceInterface) *WeatherHandler {
	var weatherService service.WeatherServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		weatherService = svc[0]
	} else {
		weatherService = service.NewWeatherService()
	}
	return &WeatherHandler{
		WeatherService: weatherService,
	}
}

// CoordinatesQuery binds lat/lon. Pointers let 0 pass the required check; ranges are not validated.
type CoordinatesQuery struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lon *float64 `form:"lon" binding:"required"`
}

func (q CoordinatesQuery) Coordinates() model.Coordinates {
	return model.Coordinates{Lat: *q.Lat, Lon: *q.Lon}
}

// RegisterRoutes mounts the weather endpoints on r.
func (h *WeatherHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/ping", h.HandlePing)
	api := r.Group("/api")
	api.GET("/weather", h.HandleCurrentWeather)
	api.GET("/forecast", h.HandleForecast)
	api.GET("/overview", h.HandleOverview)
	api.GET("/geocode/reverse", h.HandleReverseGeocode)
	api.GET("/geocode/search", h.HandleSearchLocations)
}

func (h *WeatherHandler) writeJSONResponse(c *gin.Context, statusCode int, resp model.Response) {
	resp.RequestID = middleware.GetRequestID(c)
	c.JSON(statusCode, resp)
}

func (h *WeatherHandler) writeError(c *gin.Context, statusCode int, errMsg string) {
	h.writeJSONResponse(c, statusCode, model.Response{
		Error:   &errMsg,
		Message: "Error",
	})
}

// writeServiceError maps provider failures to 502 and everything else to 500.
func (h *WeatherHandler) writeServiceError(c *gin.Context, err error) {
	var apiErr *weatherapi.APIError
	if errors.As(err, &apiErr) {
		h.writeError(c, http.StatusBadGateway, apiErr.Error())
		return
	}
	h.writeError(c, http.StatusInternalServerError, "Failed to fetch weather data")
}

func (h *WeatherHandler) bindCoordinates(c *gin.Context) (model.Coordinates, bool) {
	var q CoordinatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, http.StatusBadRequest, "Query parameters 'lat' and 'lon' must be numeric")
		return model.Coordinates{}, false
	}
	return q.Coordinates(), true
}

func (h *WeatherHandler) HandlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h *WeatherHandler) HandleCurrentWeather(c *gin.Context) {
	coords, ok := h.bindCoordinates(c)
	if !ok {
		return
	}
	data, err := h.WeatherService.CurrentWeather(c.Request.Context(), coords)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeJSONResponse(c, http.StatusOK, model.Response{Data: data, Message: "Success"})
}

func (h *WeatherHandler) HandleForecast(c *gin.Context) {
	coords, ok := h.bindCoordinates(c)
	if !ok {
		return
	}
	data, err := h.WeatherService.Forecast(c.Request.Context(), coords)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeJSONResponse(c, http.StatusOK, model.Response{Data: data, Message: "Success"})
}

func (h *WeatherHandler) HandleOverview(c *gin.Context) {
	coords, ok := h.bindCoordinates(c)
	if !ok {
		return
	}
	data, err := h.WeatherService.Overview(c.Request.Context(), coords)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeJSONResponse(c, http.StatusOK, model.Response{Data: data, Message: "Success"})
}

func (h *WeatherHandler) HandleReverseGeocode(c *gin.Context) {
	coords, ok := h.bindCoordinates(c)
	if !ok {
		return
	}
	places, err := h.WeatherService.ReverseGeocode(c.Request.Context(), coords)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeJSONResponse(c, http.StatusOK, model.Response{Data: places, Message: "Success"})
}

// HandleSearchLocations forwards q untouched; an empty q is left for the provider to reject.
func (h *WeatherHandler) HandleSearchLocations(c *gin.Context) {
	places, err := h.WeatherService.SearchLocations(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.writeJSONResponse(c, http.StatusOK, model.Response{Data: places, Message: "Success"})
}
