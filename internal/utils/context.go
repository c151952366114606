// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/worldsync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ServiceAddressCtxKey is the key under which the control API stores the
// broker address a request targets.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithServiceAddress(ctx, models.ServiceAddress{Host: "broker", Port: 1883})
var ServiceAddressCtxKey = contextKey("serviceAddress")

// WithServiceAddress returns a copy of ctx carrying addr.
func WithServiceAddress(ctx context.Context, addr models.ServiceAddress) context.Context {
	return context.WithValue(ctx, ServiceAddressCtxKey, addr)
}

// GetServiceAddressFromContext retrieves the broker address from the context.
//
// Returns the address and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetServiceAddressFromContext(ctx context.Context) (models.ServiceAddress, bool) {
	addr, ok := ctx.Value(ServiceAddressCtxKey).(models.ServiceAddress)
	return addr, ok
}
