package models

// Coordinates is a geocoder resolution: a lat/lon pair plus the canonical
// display name built from the resolved place, region, and country.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// RawObservation holds the current readings as returned by the weather
// provider. Every numeric field is optional: nil means the provider omitted
// it, which is distinct from a present zero value.
type RawObservation struct {
	TemperatureC *float64 `json:"temperature_2m"`
	HumidityPct  *float64 `json:"relative_humidity_2m"`
	WindSpeedKmh *float64 `json:"wind_speed_10m"`
	WindDirDeg   *float64 `json:"wind_direction_10m"`
	WeatherCode  *int     `json:"weather_code"`
	Time         string   `json:"time"`
}

// WeatherResult is the parsed, human-usable lookup result. Optional numeric
// fields are nil when the corresponding raw reading was absent.
type WeatherResult struct {
	Location     string `json:"location"`
	Condition    string `json:"condition"`
	TemperatureC *int   `json:"temperatureC,omitempty"`
	TemperatureF *int   `json:"temperatureF,omitempty"`
	HumidityPct  *int   `json:"humidityPct,omitempty"`
	WindSpeedKmh *int   `json:"windSpeedKmh,omitempty"`
	Wind         string `json:"wind"`
	ReportedAt   string `json:"reportedAt"`
	Source       string `json:"source"`
}

// WeatherError is the typed failure shape of the lookup pipeline.
type WeatherError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}

// OutcomeKind discriminates the two arms of WeatherOutcome.
type OutcomeKind string

const (
	OutcomeResult OutcomeKind = "result"
	OutcomeError  OutcomeKind = "error"
)

// WeatherOutcome is the tagged union returned by the lookup orchestrator:
// exactly one of Result or Error is set, and Kind says which.
type WeatherOutcome struct {
	Kind   OutcomeKind    `json:"kind"`
	Result *WeatherResult `json:"result,omitempty"`
	Error  *WeatherError  `json:"error,omitempty"`
}

// ResultOutcome wraps a WeatherResult in a tagged outcome.
func ResultOutcome(r WeatherResult) WeatherOutcome {
	return WeatherOutcome{Kind: OutcomeResult, Result: &r}
}

// ErrorOutcome wraps a WeatherError in a tagged outcome.
func ErrorOutcome(e WeatherError) WeatherOutcome {
	return WeatherOutcome{Kind: OutcomeError, Error: &e}
}
