package transit

import (
	"context"
	"sort"
	"time"

	"github.com/freiburg-mobility/transit-api/dbrest"
	"github.com/freiburg-mobility/transit-api/geo"
)

// Default query parameters, shared with the REST and tool front-ends.
const (
	DefaultSearchLimit   = 10
	DefaultNearbyRadius  = 1000
	DefaultNearbyLimit   = 50
	NearestSearchRadius  = 5000
	DefaultBoardLimit    = 20
	DefaultBoardDuration = 60
	DefaultRouteLimit    = 5
)

// Service turns upstream payloads into the canonical transit records. It
// holds no state beyond the injected client, so a single instance serves
// concurrent callers.
type Service struct {
	client *dbrest.Client
}

// NewService creates a Service on top of an upstream client.
func NewService(client *dbrest.Client) *Service {
	return &Service{client: client}
}

// SearchStations looks up stations by name. Upstream elements that are not
// stops or stations (addresses, POIs) are dropped even though the query
// already asks the upstream to exclude them. Result order mirrors upstream
// order; no distance is computed.
func (s *Service) SearchStations(ctx context.Context, query string, limit int) ([]Station, error) {
	data, err := s.client.Get(ctx, "locations", dbrest.Params{
		"query":     query,
		"results":   limit,
		"stops":     true,
		"addresses": false,
		"poi":       false,
	})
	if err != nil {
		return nil, err
	}

	stations := []Station{}
	for _, v := range asList(data, "locations") {
		item := asObject(v)
		if item == nil || !isStopType(item.str("type")) {
			continue
		}
		loc := item.object("location")
		stations = append(stations, Station{
			ID:   item.str("id"),
			Name: item.str("name"),
			Lat:  loc.float("latitude"),
			Lon:  loc.float("longitude"),
		})
	}
	return stations, nil
}

// NearbyStations returns the stations within radiusMeters of a coordinate,
// sorted ascending by distance. The distance of record is recomputed
// client-side: the upstream ordering is not trusted once distances are
// recalculated, and callers rely on index 0 being the closest.
func (s *Service) NearbyStations(ctx context.Context, lat, lon float64, radiusMeters, limit int) ([]Station, error) {
	data, err := s.client.Get(ctx, "locations/nearby", dbrest.Params{
		"latitude":  lat,
		"longitude": lon,
		"results":   limit,
		"distance":  radiusMeters,
	})
	if err != nil {
		return nil, err
	}

	stations := []Station{}
	for _, v := range asList(data, "locations") {
		item := asObject(v)
		if item == nil || !isStopType(item.str("type")) {
			continue
		}
		loc := item.object("location")
		stationLat := loc.float("latitude")
		stationLon := loc.float("longitude")
		distance := geo.RoundTo1(geo.DistanceMeters(lat, lon, stationLat, stationLon))

		stations = append(stations, Station{
			ID:             item.str("id"),
			Name:           item.str("name"),
			Lat:            stationLat,
			Lon:            stationLon,
			DistanceMeters: &distance,
		})
	}

	// stable: equal rounded distances keep upstream order
	sort.SliceStable(stations, func(i, j int) bool {
		return *stations[i].DistanceMeters < *stations[j].DistanceMeters
	})
	return stations, nil
}

// NearestStation returns the closest station within 5 km of the coordinate,
// or nil when none exists. Absence is a valid result, not an error.
func (s *Service) NearestStation(ctx context.Context, lat, lon float64) (*Station, error) {
	stations, err := s.NearbyStations(ctx, lat, lon, NearestSearchRadius, 1)
	if err != nil {
		return nil, err
	}
	if len(stations) == 0 {
		return nil, nil
	}
	return &stations[0], nil
}

// Departures returns the departure board of a station. A nil when means
// "now" (upstream default). The payload may be a bare array or wrapped under
// a departures key; entries keep upstream order.
func (s *Service) Departures(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]Departure, error) {
	params := dbrest.Params{
		"results":  limit,
		"duration": durationMinutes,
		"bus":      true,
		"ferry":    true,
		"subway":   true,
		"tram":     true,
		"taxi":     false,
	}
	if when != nil {
		params["when"] = when.Format(time.RFC3339)
	}

	data, err := s.client.Get(ctx, "stops/"+stationID+"/departures", params)
	if err != nil {
		return nil, err
	}

	departures := []Departure{}
	for _, v := range asList(data, "departures") {
		dep := asObject(v)
		if dep == nil {
			continue
		}
		line := dep.object("line")
		scheduled := dep.str("plannedWhen")
		estimated := dep.str("when")
		if estimated == "" {
			estimated = scheduled
		}

		departures = append(departures, Departure{
			Line:          lineName(line),
			Direction:     dep.str("direction"),
			Destination:   destinationName(dep),
			Mode:          vehicleMode(line),
			ScheduledTime: scheduled,
			EstimatedTime: estimated,
			DelayMinutes:  delayMinutes(dep),
			Platform:      dep.str("platform"),
		})
	}
	return departures, nil
}

// Arrivals returns the arrival board of a station. Same shape rules as
// Departures, with the provenance field as the origin.
func (s *Service) Arrivals(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]Arrival, error) {
	params := dbrest.Params{
		"results":  limit,
		"duration": durationMinutes,
	}
	if when != nil {
		params["when"] = when.Format(time.RFC3339)
	}

	data, err := s.client.Get(ctx, "stops/"+stationID+"/arrivals", params)
	if err != nil {
		return nil, err
	}

	arrivals := []Arrival{}
	for _, v := range asList(data, "arrivals") {
		arr := asObject(v)
		if arr == nil {
			continue
		}
		line := arr.object("line")
		scheduled := arr.str("plannedWhen")
		estimated := arr.str("when")
		if estimated == "" {
			estimated = scheduled
		}

		arrivals = append(arrivals, Arrival{
			Line:          lineName(line),
			Origin:        arr.strOr("provenance", "?"),
			Mode:          vehicleMode(line),
			ScheduledTime: scheduled,
			EstimatedTime: estimated,
			DelayMinutes:  delayMinutes(arr),
			Platform:      arr.str("platform"),
		})
	}
	return arrivals, nil
}

// PlanRoutes returns journey suggestions between two stations. Legs that do
// not parse into a recognizable shape are skipped; a journey left with no
// legs is dropped entirely, since it carries no information.
func (s *Service) PlanRoutes(ctx context.Context, origin, destination string, when *time.Time, limit int) ([]Route, error) {
	params := dbrest.Params{
		"from":      origin,
		"to":        destination,
		"results":   limit,
		"stopovers": true,
		"bus":       true,
		"ferry":     true,
		"subway":    true,
		"tram":      true,
	}
	if when != nil {
		params["departure"] = when.Format(time.RFC3339)
	}

	data, err := s.client.Get(ctx, "journeys", params)
	if err != nil {
		return nil, err
	}

	routes := []Route{}
	for _, jv := range asList(data, "journeys") {
		journey := asObject(jv)

		legs := []Leg{}
		for _, lv := range journey.list("legs") {
			if leg, ok := parseLeg(asObject(lv)); ok {
				legs = append(legs, leg)
			}
		}
		if len(legs) == 0 {
			continue
		}

		first, last := legs[0], legs[len(legs)-1]
		routes = append(routes, Route{
			DepartureTime:   first.DepartureTime,
			ArrivalTime:     last.ArrivalTime,
			DurationMinutes: durationMinutes(first.DepartureTime, last.ArrivalTime),
			NumTransfers:    countTransfers(legs),
			Legs:            legs,
		})
	}
	return routes, nil
}

// parseLeg converts one upstream journey leg into a walk or transit Leg.
// ok is false when the element has no recognizable shape; callers drop it.
func parseLeg(leg object) (Leg, bool) {
	if leg == nil {
		return Leg{}, false
	}

	originName := leg.object("origin").strOr("name", "?")
	destName := leg.object("destination").strOr("name", "?")
	depTime := leg.str("departure")
	arrTime := leg.str("arrival")

	if leg.bool("walking") {
		distance := leg.float("distance")
		return Leg{
			Type:          LegTypeWalk,
			Origin:        originName,
			Destination:   destName,
			DepartureTime: depTime,
			ArrivalTime:   arrTime,
			Distance:      &distance,
		}, true
	}

	// Not a walk: require at least one usable transit field before treating
	// the element as a ride. A missing line object alone is tolerated.
	line := leg.object("line")
	if line == nil && depTime == "" && arrTime == "" && leg.str("direction") == "" {
		return Leg{}, false
	}

	return Leg{
		Type:          LegTypeTransit,
		Line:          lineName(line),
		Direction:     leg.str("direction"),
		Mode:          vehicleMode(line),
		Origin:        originName,
		Destination:   destName,
		DepartureTime: depTime,
		ArrivalTime:   arrTime,
	}, true
}

func countTransfers(legs []Leg) int {
	transitLegs := 0
	for _, l := range legs {
		if l.Type == LegTypeTransit {
			transitLegs++
		}
	}
	if transitLegs <= 1 {
		return 0
	}
	return transitLegs - 1
}

func isStopType(t string) bool {
	return t == "stop" || t == "station"
}
