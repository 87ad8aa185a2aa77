package transitapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/freiburg-mobility/transit-api/transit"
)

// TransitService is the surface the REST layer needs from the normalization
// core. Declared here so handler tests can stub the upstream.
type TransitService interface {
	SearchStations(ctx context.Context, query string, limit int) ([]transit.Station, error)
	NearbyStations(ctx context.Context, lat, lon float64, radiusMeters, limit int) ([]transit.Station, error)
	NearestStation(ctx context.Context, lat, lon float64) (*transit.Station, error)
	Departures(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]transit.Departure, error)
	Arrivals(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]transit.Arrival, error)
	PlanRoutes(ctx context.Context, origin, destination string, when *time.Time, limit int) ([]transit.Route, error)
}

// API wires the transit service to the REST endpoints.
type API struct {
	service TransitService
}

func NewAPI(service TransitService) *API {
	return &API{service: service}
}

func (a *API) handleStations(w http.ResponseWriter, r *http.Request) {
	lat, okLat := floatParam(r, "lat")
	lon, okLon := floatParam(r, "lon")
	if !okLat || !okLon {
		writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}
	radius := intParam(r, "radius", transit.DefaultNearbyRadius)
	limit := intParam(r, "limit", transit.DefaultNearbyLimit)

	stations, err := a.service.NearbyStations(r.Context(), lat, lon, radius, limit)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":         len(stations),
		"radius_meters": radius,
		"center":        map[string]float64{"lat": lat, "lon": lon},
		"stations":      stations,
	})
}

func (a *API) handleSearchStations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "q (search term) is required")
		return
	}
	limit := intParam(r, "limit", transit.DefaultSearchLimit)

	stations, err := a.service.SearchStations(r.Context(), query, limit)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":    query,
		"count":    len(stations),
		"stations": stations,
	})
}

func (a *API) handleNearestStation(w http.ResponseWriter, r *http.Request) {
	lat, okLat := floatParam(r, "lat")
	lon, okLon := floatParam(r, "lon")
	if !okLat || !okLon {
		writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	station, err := a.service.NearestStation(r.Context(), lat, lon)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	if station == nil {
		writeError(w, http.StatusNotFound, "no station found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"station": station})
}

func (a *API) handleDepartures(w http.ResponseWriter, r *http.Request) {
	station := r.URL.Query().Get("station")
	if station == "" {
		writeError(w, http.StatusBadRequest, "station is required")
		return
	}
	when, err := timeParam(r, "time")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := intParam(r, "limit", transit.DefaultBoardLimit)
	duration := intParam(r, "duration", transit.DefaultBoardDuration)

	departures, err := a.service.Departures(r.Context(), station, when, limit, duration)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"station_id": station,
		"count":      len(departures),
		"departures": departures,
	})
}

func (a *API) handleArrivals(w http.ResponseWriter, r *http.Request) {
	station := r.URL.Query().Get("station")
	if station == "" {
		writeError(w, http.StatusBadRequest, "station is required")
		return
	}
	when, err := timeParam(r, "time")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := intParam(r, "limit", transit.DefaultBoardLimit)
	duration := intParam(r, "duration", transit.DefaultBoardDuration)

	arrivals, err := a.service.Arrivals(r.Context(), station, when, limit, duration)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"station_id": station,
		"count":      len(arrivals),
		"arrivals":   arrivals,
	})
}

func (a *API) handleRoute(w http.ResponseWriter, r *http.Request) {
	origin := r.URL.Query().Get("from")
	destination := r.URL.Query().Get("to")
	if origin == "" || destination == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}
	when, err := timeParam(r, "time")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := intParam(r, "limit", transit.DefaultRouteLimit)

	routes, err := a.service.PlanRoutes(r.Context(), origin, destination, when, limit)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"origin":      origin,
		"destination": destination,
		"count":       len(routes),
		"routes":      routes,
	})
}

func floatParam(r *http.Request, name string) (float64, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func intParam(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// timeParam parses an optional ISO-8601 query parameter. Malformed input is
// rejected here, before any upstream call is made.
func timeParam(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q, expected ISO-8601", s)
}
