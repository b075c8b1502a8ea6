// Package location provides domain.Locator implementations for a machine
// without a GPS receiver, plus the terminal prompt used to ask for location
// permission.
//
// HTTPLocator asks an IP-geolocation endpoint once per call and accepts the
// two common response shapes ({"lat","lon"} and {"latitude","longitude"}).
// StaticLocator returns coordinates fixed in configuration.
package location
