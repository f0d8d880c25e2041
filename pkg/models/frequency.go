package models

// FrequencyPoint represents a single frequency measurement
type FrequencyPoint struct {
	Frequency float64 `json:"frequency"` // Hz
	Magnitude float64 `json:"magnitude"` // dB
}

// MagnitudeResponse is a filter's magnitude response as a series of
// frequency/gain pairs, ordered by ascending frequency.
type MagnitudeResponse []FrequencyPoint
