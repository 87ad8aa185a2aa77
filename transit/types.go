package transit

// Station is a stop or station as returned by station search and
// nearby-station ranking. DistanceMeters is set only when the station was
// looked up relative to a query coordinate.
type Station struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Lat            float64  `json:"lat"`
	Lon            float64  `json:"lon"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// Departure is one entry of a station's departure board.
type Departure struct {
	Line          string `json:"line"`
	Direction     string `json:"direction"`
	Destination   string `json:"destination"`
	Mode          string `json:"mode"`
	ScheduledTime string `json:"scheduled_time"`
	EstimatedTime string `json:"estimated_time"`
	DelayMinutes  int    `json:"delay_minutes"`
	Platform      string `json:"platform"`
}

// Arrival is one entry of a station's arrival board.
type Arrival struct {
	Line          string `json:"line"`
	Origin        string `json:"origin"`
	Mode          string `json:"mode"`
	ScheduledTime string `json:"scheduled_time"`
	EstimatedTime string `json:"estimated_time"`
	DelayMinutes  int    `json:"delay_minutes"`
	Platform      string `json:"platform"`
}

// Leg types.
const (
	LegTypeWalk    = "walk"
	LegTypeTransit = "transit"
)

// Leg is one segment of a journey, either a walk or a ride on a single line.
// Distance is set on walk legs; Line, Direction and Mode on transit legs.
type Leg struct {
	Type          string   `json:"type"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Distance      *float64 `json:"distance,omitempty"`
	Line          string   `json:"line,omitempty"`
	Direction     string   `json:"direction,omitempty"`
	Mode          string   `json:"mode,omitempty"`
}

// Route is one journey suggestion between an origin and a destination. Legs
// keep the upstream order.
type Route struct {
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	DurationMinutes int    `json:"duration_minutes"`
	NumTransfers    int    `json:"num_transfers"`
	Legs            []Leg  `json:"legs"`
}
