package transitapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/freiburg-mobility/transit-api/dbrest"
	"github.com/freiburg-mobility/transit-api/transit"
)

// stubService records the arguments of the last call and returns canned data.
type stubService struct {
	stations   []transit.Station
	nearest    *transit.Station
	departures []transit.Departure
	arrivals   []transit.Arrival
	routes     []transit.Route
	err        error

	gotQuery    string
	gotLat      float64
	gotLon      float64
	gotRadius   int
	gotLimit    int
	gotDuration int
	gotStation  string
	gotFrom     string
	gotTo       string
	gotWhen     *time.Time
}

func (s *stubService) SearchStations(ctx context.Context, query string, limit int) ([]transit.Station, error) {
	s.gotQuery, s.gotLimit = query, limit
	return s.stations, s.err
}

func (s *stubService) NearbyStations(ctx context.Context, lat, lon float64, radiusMeters, limit int) ([]transit.Station, error) {
	s.gotLat, s.gotLon, s.gotRadius, s.gotLimit = lat, lon, radiusMeters, limit
	return s.stations, s.err
}

func (s *stubService) NearestStation(ctx context.Context, lat, lon float64) (*transit.Station, error) {
	s.gotLat, s.gotLon = lat, lon
	return s.nearest, s.err
}

func (s *stubService) Departures(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]transit.Departure, error) {
	s.gotStation, s.gotWhen, s.gotLimit, s.gotDuration = stationID, when, limit, durationMinutes
	return s.departures, s.err
}

func (s *stubService) Arrivals(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]transit.Arrival, error) {
	s.gotStation, s.gotWhen, s.gotLimit, s.gotDuration = stationID, when, limit, durationMinutes
	return s.arrivals, s.err
}

func (s *stubService) PlanRoutes(ctx context.Context, origin, destination string, when *time.Time, limit int) ([]transit.Route, error) {
	s.gotFrom, s.gotTo, s.gotWhen, s.gotLimit = origin, destination, when, limit
	return s.routes, s.err
}

func serve(t *testing.T, stub *stubService, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	NewAPI(stub).Routes().ServeHTTP(rec, req)

	body := map[string]any{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not a JSON object: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, body
}

func TestHealthEndpoint(t *testing.T) {
	rec, body := serve(t, &stubService{}, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
	if body["service"] != serviceName {
		t.Errorf("unexpected service name: %v", body["service"])
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}
}

func TestStationsEndpoint(t *testing.T) {
	dist := 55.6
	stub := &stubService{stations: []transit.Station{
		{ID: "680789", Name: "Bertoldsbrunnen", Lat: 47.9952, Lon: 7.8495, DistanceMeters: &dist},
	}}

	rec, body := serve(t, stub, "/api/stations?lat=47.999&lon=7.8421")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.gotLat != 47.999 || stub.gotLon != 7.8421 {
		t.Errorf("coordinates not forwarded: %v, %v", stub.gotLat, stub.gotLon)
	}
	if stub.gotRadius != transit.DefaultNearbyRadius || stub.gotLimit != transit.DefaultNearbyLimit {
		t.Errorf("defaults not applied: radius=%d limit=%d", stub.gotRadius, stub.gotLimit)
	}
	if body["count"] != float64(1) || body["radius_meters"] != float64(1000) {
		t.Errorf("unexpected envelope: %v", body)
	}
	stations, _ := body["stations"].([]any)
	if len(stations) != 1 {
		t.Fatalf("expected 1 station in body, got %v", body["stations"])
	}
	station, _ := stations[0].(map[string]any)
	if station["distance_meters"] != 55.6 {
		t.Errorf("distance not serialized: %v", station)
	}
}

func TestStationsEndpointExplicitParams(t *testing.T) {
	stub := &stubService{stations: []transit.Station{}}
	rec, _ := serve(t, stub, "/api/stations?lat=48&lon=7.8&radius=250&limit=5")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotRadius != 250 || stub.gotLimit != 5 {
		t.Errorf("explicit params not forwarded: radius=%d limit=%d", stub.gotRadius, stub.gotLimit)
	}
}

func TestStationsEndpointMissingCoordinates(t *testing.T) {
	for _, target := range []string{
		"/api/stations",
		"/api/stations?lat=48",
		"/api/stations?lon=7.8",
		"/api/stations?lat=abc&lon=7.8",
	} {
		rec, body := serve(t, &stubService{}, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
		if msg, _ := body["error"].(string); !strings.Contains(msg, "lat") {
			t.Errorf("%s: expected error to mention lat, got %v", target, body)
		}
	}
}

func TestSearchEndpoint(t *testing.T) {
	stub := &stubService{stations: []transit.Station{{ID: "8000107", Name: "Freiburg Hbf"}}}

	rec, body := serve(t, stub, "/api/stations/search?q=Freiburg")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotQuery != "Freiburg" || stub.gotLimit != transit.DefaultSearchLimit {
		t.Errorf("query or default limit not forwarded: %q, %d", stub.gotQuery, stub.gotLimit)
	}
	if body["query"] != "Freiburg" || body["count"] != float64(1) {
		t.Errorf("unexpected envelope: %v", body)
	}
}

func TestSearchEndpointMissingQuery(t *testing.T) {
	rec, body := serve(t, &stubService{}, "/api/stations/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "q") {
		t.Errorf("expected error to mention q, got %v", body)
	}
}

func TestNearestEndpoint(t *testing.T) {
	dist := 144.7
	stub := &stubService{nearest: &transit.Station{ID: "8000107", Name: "Freiburg Hbf", DistanceMeters: &dist}}

	rec, body := serve(t, stub, "/api/stations/nearest?lat=47.999&lon=7.8421")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	station, _ := body["station"].(map[string]any)
	if station["id"] != "8000107" {
		t.Errorf("unexpected station: %v", body)
	}
}

func TestNearestEndpointAbsent(t *testing.T) {
	rec, body := serve(t, &stubService{nearest: nil}, "/api/stations/nearest?lat=0&lon=0")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("absence maps to 404, got %d", rec.Code)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "no station") {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestDeparturesEndpoint(t *testing.T) {
	stub := &stubService{departures: []transit.Departure{{Line: "S1", Destination: "Titisee"}}}

	rec, body := serve(t, stub, "/api/departures?station=8000107")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotStation != "8000107" {
		t.Errorf("station not forwarded: %q", stub.gotStation)
	}
	if stub.gotWhen != nil {
		t.Errorf("absent time param must mean nil when, got %v", stub.gotWhen)
	}
	if stub.gotLimit != transit.DefaultBoardLimit || stub.gotDuration != transit.DefaultBoardDuration {
		t.Errorf("defaults not applied: limit=%d duration=%d", stub.gotLimit, stub.gotDuration)
	}
	if body["station_id"] != "8000107" || body["count"] != float64(1) {
		t.Errorf("unexpected envelope: %v", body)
	}
}

func TestDeparturesEndpointTimeParam(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"rfc3339", "2024-01-01T10:00:00Z", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"no zone", "2024-01-01T10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"no seconds", "2024-01-01T10:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubService{}
			rec, _ := serve(t, stub, "/api/departures?station=8000107&time="+tt.value)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if stub.gotWhen == nil || !stub.gotWhen.Equal(tt.want) {
				t.Errorf("expected when %v, got %v", tt.want, stub.gotWhen)
			}
		})
	}
}

func TestDeparturesEndpointBadParams(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		mention string
	}{
		{"missing station", "/api/departures", "station"},
		{"garbage time", "/api/departures?station=8000107&time=tomorrow", "invalid time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, &stubService{}, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if msg, _ := body["error"].(string); !strings.Contains(msg, tt.mention) {
				t.Errorf("expected error to mention %q, got %v", tt.mention, body)
			}
		})
	}
}

func TestArrivalsEndpoint(t *testing.T) {
	stub := &stubService{arrivals: []transit.Arrival{{Line: "RE7", Origin: "Karlsruhe Hbf"}}}

	rec, body := serve(t, stub, "/api/arrivals?station=8000107&limit=5&duration=30")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotLimit != 5 || stub.gotDuration != 30 {
		t.Errorf("params not forwarded: limit=%d duration=%d", stub.gotLimit, stub.gotDuration)
	}
	if body["count"] != float64(1) {
		t.Errorf("unexpected envelope: %v", body)
	}
	arrivals, _ := body["arrivals"].([]any)
	if len(arrivals) != 1 {
		t.Fatalf("expected 1 arrival in body, got %v", body["arrivals"])
	}
}

func TestRouteEndpoint(t *testing.T) {
	stub := &stubService{routes: []transit.Route{{DurationMinutes: 23, Legs: []transit.Leg{{Type: transit.LegTypeTransit}}}}}

	rec, body := serve(t, stub, "/api/route?from=8000107&to=8000105")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotFrom != "8000107" || stub.gotTo != "8000105" {
		t.Errorf("endpoints not forwarded: %q, %q", stub.gotFrom, stub.gotTo)
	}
	if stub.gotLimit != transit.DefaultRouteLimit {
		t.Errorf("default limit not applied: %d", stub.gotLimit)
	}
	if body["origin"] != "8000107" || body["destination"] != "8000105" || body["count"] != float64(1) {
		t.Errorf("unexpected envelope: %v", body)
	}
}

func TestRouteEndpointMissingEndpoints(t *testing.T) {
	for _, target := range []string{"/api/route", "/api/route?from=8000107", "/api/route?to=8000105"} {
		rec, body := serve(t, &stubService{}, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
		if msg, _ := body["error"].(string); !strings.Contains(msg, "from and to") {
			t.Errorf("%s: unexpected error body: %v", target, body)
		}
	}
}

func TestUpstreamErrorsMapToBadGateway(t *testing.T) {
	stub := &stubService{err: &dbrest.StatusError{StatusCode: 500, Body: `{"message":"boom"}`}}

	targets := []string{
		"/api/stations?lat=48&lon=7.8",
		"/api/stations/search?q=Freiburg",
		"/api/stations/nearest?lat=48&lon=7.8",
		"/api/departures?station=8000107",
		"/api/arrivals?station=8000107",
		"/api/route?from=a&to=b",
	}
	for _, target := range targets {
		rec, body := serve(t, stub, target)
		if rec.Code != http.StatusBadGateway {
			t.Errorf("%s: expected 502, got %d", target, rec.Code)
		}
		// upstream detail passes through unmodified
		if msg, _ := body["error"].(string); !strings.Contains(msg, "boom") {
			t.Errorf("%s: expected upstream detail, got %v", target, body)
		}
	}
}

func TestRoutesRejectNonGET(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/departures?station=8000107", nil)
	NewAPI(&stubService{}).Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}
