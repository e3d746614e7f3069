// Package kernel provides core domain primitives and utilities for the tracking system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - TrackingCode: A value object for human-facing shipment identifiers with format validation
//   - Geolocation: A value object representing a WGS84 coordinate pair reported from the field
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
