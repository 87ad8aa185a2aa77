package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/freiburg-mobility/transit-api/transit"
)

// TransitService is the surface the tools call into. Mirrors the REST
// layer's view of the normalization core.
type TransitService interface {
	SearchStations(ctx context.Context, query string, limit int) ([]transit.Station, error)
	NearbyStations(ctx context.Context, lat, lon float64, radiusMeters, limit int) ([]transit.Station, error)
	NearestStation(ctx context.Context, lat, lon float64) (*transit.Station, error)
	Departures(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]transit.Departure, error)
	Arrivals(ctx context.Context, stationID string, when *time.Time, limit, durationMinutes int) ([]transit.Arrival, error)
	PlanRoutes(ctx context.Context, origin, destination string, when *time.Time, limit int) ([]transit.Route, error)
}

// NewServer builds the MCP server with all transit tools registered.
func NewServer(svc TransitService) *server.MCPServer {
	s := server.NewMCPServer("Freiburg Transit API", "1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("search_stations",
		mcp.WithDescription("Search stations by name (e.g. 'Freiburg Hbf'). Returns matching stations with their IDs and coordinates."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search term")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results"), mcp.DefaultNumber(transit.DefaultSearchLimit)),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		stations, err := svc.SearchStations(ctx, query, req.GetInt("limit", transit.DefaultSearchLimit))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(stations)
	})

	s.AddTool(mcp.NewTool("get_stations",
		mcp.WithDescription("Find stations within a radius around a coordinate, sorted by distance."),
		mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude (WGS84)")),
		mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude (WGS84)")),
		mcp.WithNumber("radius", mcp.Description("Search radius in meters"), mcp.DefaultNumber(transit.DefaultNearbyRadius)),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results"), mcp.DefaultNumber(20)),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lat, err := req.RequireFloat("lat")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		lon, err := req.RequireFloat("lon")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		radius := req.GetInt("radius", transit.DefaultNearbyRadius)
		limit := req.GetInt("limit", 20)
		stations, err := svc.NearbyStations(ctx, lat, lon, radius, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(stations)
	})

	s.AddTool(mcp.NewTool("get_nearest_station",
		mcp.WithDescription("Find the single closest station to a coordinate (within 5 km)."),
		mcp.WithNumber("lat", mcp.Required(), mcp.Description("Latitude (WGS84)")),
		mcp.WithNumber("lon", mcp.Required(), mcp.Description("Longitude (WGS84)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lat, err := req.RequireFloat("lat")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		lon, err := req.RequireFloat("lon")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		station, err := svc.NearestStation(ctx, lat, lon)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if station == nil {
			return mcp.NewToolResultText("no station found within 5 km"), nil
		}
		return jsonResult(station)
	})

	s.AddTool(mcp.NewTool("get_departures",
		mcp.WithDescription("Get departures for a station ID (e.g. '8000107')."),
		mcp.WithString("station_id", mcp.Required(), mcp.Description("Station ID")),
		mcp.WithString("time_iso", mcp.Description("Departure time as ISO-8601 timestamp, defaults to now")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results"), mcp.DefaultNumber(10)),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stationID, err := req.RequireString("station_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		when, err := parseWhen(req.GetString("time_iso", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		departures, err := svc.Departures(ctx, stationID, when, req.GetInt("limit", 10), transit.DefaultBoardDuration)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(departures)
	})

	s.AddTool(mcp.NewTool("get_arrivals",
		mcp.WithDescription("Get arrivals for a station ID (e.g. '8000107')."),
		mcp.WithString("station_id", mcp.Required(), mcp.Description("Station ID")),
		mcp.WithString("time_iso", mcp.Description("Arrival time as ISO-8601 timestamp, defaults to now")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results"), mcp.DefaultNumber(10)),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stationID, err := req.RequireString("station_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		when, err := parseWhen(req.GetString("time_iso", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		arrivals, err := svc.Arrivals(ctx, stationID, when, req.GetInt("limit", 10), transit.DefaultBoardDuration)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(arrivals)
	})

	s.AddTool(mcp.NewTool("get_route",
		mcp.WithDescription("Plan a route between two station IDs."),
		mcp.WithString("origin_id", mcp.Required(), mcp.Description("Origin station ID")),
		mcp.WithString("destination_id", mcp.Required(), mcp.Description("Destination station ID")),
		mcp.WithString("time_iso", mcp.Description("Departure time as ISO-8601 timestamp, defaults to now")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of route suggestions"), mcp.DefaultNumber(transit.DefaultRouteLimit)),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		origin, err := req.RequireString("origin_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		destination, err := req.RequireString("destination_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		when, err := parseWhen(req.GetString("time_iso", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		routes, err := svc.PlanRoutes(ctx, origin, destination, when, req.GetInt("limit", transit.DefaultRouteLimit))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(routes)
	})

	return s
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}

// parseWhen parses an optional ISO-8601 tool argument; "" means now.
func parseWhen(s string) (*time.Time, error) {
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
