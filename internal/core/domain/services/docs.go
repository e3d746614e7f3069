// Package services provides domain services for the shipment tracking system.
// It hosts business logic that doesn't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - TrackingCodeGenerator: A domain service producing unique tracking codes
//
// Domain services stay free of infrastructure concerns; external inputs such
// as clocks and randomness sources are injected by the composition root.
package services
