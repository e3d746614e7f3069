package kernel

import (
	"fmt"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

const (
	// GeolocationMinLatitude is the minimum valid latitude in decimal degrees.
	GeolocationMinLatitude = -90.0
	// GeolocationMaxLatitude is the maximum valid latitude in decimal degrees.
	GeolocationMaxLatitude = 90.0
	// GeolocationMinLongitude is the minimum valid longitude in decimal degrees.
	GeolocationMinLongitude = -180.0
	// GeolocationMaxLongitude is the maximum valid longitude in decimal degrees.
	GeolocationMaxLongitude = 180.0
)

// ErrGeolocationIsNotConstructed is returned when attempting to use an improperly
// initialized Geolocation. Geolocations must be created via NewGeolocation.
var ErrGeolocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geolocation must be created via NewGeolocation constructor")

// Geolocation is an immutable WGS84 coordinate pair attached to tracking events
// reported from the field. Latitude and longitude always travel together; a
// partial coordinate is rejected at the transport boundary before this type is
// ever constructed. The zero value is invalid and fails validation.
//
// Example:
//
//	geo, err := kernel.NewGeolocation(11.5564, 104.9282)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("%s", geo) // Output: Geolocation(11.556400,104.928200)
type Geolocation struct {
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeolocation creates a Geolocation with the given coordinates.
// Returns an out-of-range error when either coordinate lies outside its
// valid interval.
func NewGeolocation(lat, lng float64) (Geolocation, error) {
	if lat < GeolocationMinLatitude || lat > GeolocationMaxLatitude {
		return Geolocation{}, errs.NewValueIsOutOfRangeError(
			"latitude", lat, GeolocationMinLatitude, GeolocationMaxLatitude)
	}
	if lng < GeolocationMinLongitude || lng > GeolocationMaxLongitude {
		return Geolocation{}, errs.NewValueIsOutOfRangeError(
			"longitude", lng, GeolocationMinLongitude, GeolocationMaxLongitude)
	}

	return Geolocation{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the geolocation was created via NewGeolocation.
func (g Geolocation) Validate() error {
	return g.guard.Validate(ErrGeolocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (g Geolocation) Latitude() float64 {
	return g.lat
}

// Longitude returns the longitude in decimal degrees.
func (g Geolocation) Longitude() float64 {
	return g.lng
}

// IsEqual compares two geolocations by coordinates.
func (g Geolocation) IsEqual(other Geolocation) bool {
	return g.lat == other.lat && g.lng == other.lng
}

// String implements fmt.Stringer.
func (g Geolocation) String() string {
	return fmt.Sprintf("Geolocation(%f,%f)", g.lat, g.lng)
}
