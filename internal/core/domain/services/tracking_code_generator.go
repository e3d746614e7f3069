package services

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TrackingCodeGenerator is a domain service responsible for producing unique
// human-facing tracking codes of the form KH-YYYYMMDD-XXXXXX, where the date
// segment reflects the creation day and the suffix is six uppercase hex
// characters drawn from a random UUID.
//
// The suffix gives roughly 16.7 million combinations per day, so collisions
// are possible under load. The generator itself does not check uniqueness;
// the store's unique constraint on the tracking code is the authority, and
// the creation use case retries with a fresh code on conflict.
//
// Both time and randomness sources are injected so tests can pin the output:
//
//	generator := services.NewTrackingCodeGenerator(time.Now, uuid.New)
//	code, err := generator.Generate()
type TrackingCodeGenerator struct {
	now     func() time.Time
	entropy func() uuid.UUID
}

// NewTrackingCodeGenerator creates a generator with the given time and
// randomness sources. Production wiring passes time.Now and uuid.New.
func NewTrackingCodeGenerator(now func() time.Time, entropy func() uuid.UUID) TrackingCodeGenerator {
	return TrackingCodeGenerator{now: now, entropy: entropy}
}

// Generate produces a new tracking code. The date segment is taken from the
// injected clock in UTC.
func (g TrackingCodeGenerator) Generate() (kernel.TrackingCode, error) {
	id := g.entropy()
	suffix := strings.ToUpper(hex.EncodeToString(id[:3]))

	value := fmt.Sprintf("KH-%s-%s", g.now().UTC().Format("20060102"), suffix)
	return kernel.NewTrackingCode(value)
}
