package weather

import (
	"fmt"
	"math"
	"time"

	"github.com/avelinak/tool-endpoint-service/internal/models"
)

// conditionByCode maps WMO weather codes to display text. Codes outside the
// table render as "Unknown".
var conditionByCode = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Fog",
	51: "Drizzle",
	53: "Drizzle",
	55: "Drizzle",
	56: "Freezing drizzle",
	57: "Freezing drizzle",
	61: "Rain",
	63: "Rain",
	65: "Rain",
	66: "Freezing rain",
	67: "Freezing rain",
	71: "Snowfall",
	73: "Snowfall",
	75: "Snowfall",
	77: "Snow grains",
	80: "Rain showers",
	81: "Rain showers",
	82: "Rain showers",
	85: "Snow showers",
	86: "Snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with hail",
}

// compassPoints is the 16-point rose, index 0 = north, clockwise.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// providerTimeLayouts are tried in order when parsing the raw timestamp.
// Open-Meteo reports minute precision without a zone designator.
var providerTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Parse maps raw readings into a WeatherResult for the given canonical
// location. Pure function: absent raw fields stay absent in the result,
// and no reading is ever invented.
func Parse(obs models.RawObservation, loc string) models.WeatherResult {
	result := models.WeatherResult{
		Location:   loc,
		Condition:  Condition(obs.WeatherCode),
		Wind:       windText(obs.WindSpeedKmh, obs.WindDirDeg),
		ReportedAt: formatReportedAt(obs.Time),
		Source:     SourceTag,
	}

	if obs.TemperatureC != nil {
		c := roundInt(*obs.TemperatureC)
		// Fahrenheit converts from the unrounded Celsius reading.
		f := roundInt(*obs.TemperatureC*1.8 + 32)
		result.TemperatureC = &c
		result.TemperatureF = &f
	}
	if obs.HumidityPct != nil {
		h := roundInt(*obs.HumidityPct)
		result.HumidityPct = &h
	}
	if obs.WindSpeedKmh != nil {
		w := roundInt(*obs.WindSpeedKmh)
		result.WindSpeedKmh = &w
	}

	return result
}

// Condition resolves a weather code to display text; nil or unmapped codes
// yield "Unknown".
func Condition(code *int) string {
	if code == nil {
		return "Unknown"
	}
	if text, ok := conditionByCode[*code]; ok {
		return text
	}
	return "Unknown"
}

// CompassPoint maps a wind direction in degrees to one of the 16 compass
// abbreviations. 0 and 360 both resolve to "N".
func CompassPoint(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compassPoints[idx]
}

// windText renders "<kph> km/h <direction>", dropping the direction segment
// when unknown. An unknown speed renders as the em-dash placeholder.
func windText(speed, direction *float64) string {
	if speed == nil {
		return "—"
	}
	text := fmt.Sprintf("%d km/h", roundInt(*speed))
	if direction != nil {
		text += " " + CompassPoint(*direction)
	}
	return text
}

// formatReportedAt renders the provider timestamp as "YYYY-MM-DD HH:MM:SSZ".
// The raw value is treated as a naive UTC time; when absent or unparseable
// the current UTC time is used instead.
func formatReportedAt(raw string) string {
	ts := time.Now().UTC()
	if raw != "" {
		for _, layout := range providerTimeLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				ts = parsed.UTC()
				break
			}
		}
	}
	return ts.Format("2006-01-02 15:04:05") + "Z"
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
