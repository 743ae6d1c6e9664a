package model

// Court environments.
const (
    EnvironmentIndoor  = "indoor"
    EnvironmentOutdoor = "outdoor"
)

// Court is a single playable unit inside a facility, for example one
// badminton court or one turf. Courts are static reference data in this
// build; they are seeded at startup and never created or destroyed by
// users.
type Court struct {
    ID           string  `json:"id"`
    FacilityID   string  `json:"facilityId"`
    Name         string  `json:"name"`
    Sport        string  `json:"sport"`
    Environment  string  `json:"environment"`
    PricePerHour float64 `json:"pricePerHour"`
    IsActive     bool    `json:"isActive"`
}
