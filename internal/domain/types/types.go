package types

type ServiceMode string

// API Service - REST backend for the mobile app: prayer times, qibla direction, cities, device settings
// Compass Service - WebSocket gateway that turns magnetometer sample streams into live qibla headings
const (
	ApiService     ServiceMode = "api-service"
	CompassService ServiceMode = "compass-service"
)

func (m ServiceMode) String() string {
	return string(m)
}

// Platform selects the magnetometer axis convention of the sending device.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

func (p Platform) String() string {
	return string(p)
}
