// Package weather implements the lookup pipeline: normalize the requested
// location, geocode it, fetch current readings, and parse them into a
// structured result. Failures surface as typed error results, never as
// faults escaping to the caller.
package weather

// SourceTag identifies the upstream data provider on every result and error.
const SourceTag = "open-meteo"

// Fixed user-facing failure messages. Kept together so the pipeline contract
// is verifiable in one place.
const (
	MsgLocationNotFound       = "Could not find this location. Try a city, address, or zip code."
	MsgObservationUnavailable = "Could not retrieve current observations for this location."
	MsgLookupFailed           = "Weather lookup failed. Please try again."
)
