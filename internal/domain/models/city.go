package models

// City is one entry of the built-in city catalogs.
type City struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CalculationMethod is one of the upstream prayer time calculation methods.
type CalculationMethod struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameTr string `json:"name_tr"`
}
