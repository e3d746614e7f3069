// Package shipment provides domain entities and business logic for shipment
// lifecycle management in the tracking system. It implements the Shipment
// aggregate root with its append-only event log.
//
// The package includes:
//   - Shipment: The aggregate root that owns identity, parties, route, and history
//   - TrackingEvent: An immutable entry in a shipment's history
//   - Status: The closed five-way shipment status enumeration
//
// Key business rules:
//   - A shipment starts in Pending with one synthetic "Shipment created" event
//   - The current status always equals the last appended event's status snapshot
//   - Status overwrites through the event-append path are unrestricted;
//     only cancellation is guarded (rejected for Delivered/Cancelled shipments)
//   - Events are totally ordered by append time, stable on ties, and are never
//     edited or removed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
