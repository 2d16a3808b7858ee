package entity

// Location is the first geocoding match for a city query.
type Location struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CanonicalName string  `json:"name"`
	CountryName   string  `json:"country"`
}
