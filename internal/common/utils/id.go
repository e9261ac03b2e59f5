// Package utils provides small helper functions for the webhook guard.
//
// This package contains ID generation utilities used for request tracing
// and webhook delivery correlation throughout the application.
package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracing and correlation.
//
// Creates a request ID in the format: "req-{uuid}" where uuid is a
// random RFC 4122 version 4 UUID.
//
// The request ID is designed to be:
//   - Unique across distributed systems
//   - Easily identifiable as a request ID (req- prefix)
func GenerateRequestID() string {
	return fmt.Sprintf("req-%s", uuid.NewString())
}

// GenerateDeliveryID generates a unique ID for a received webhook delivery.
//
// Creates a delivery ID in the format: "delivery-{uuid}". Delivery IDs are
// assigned after a request passes signature verification and are attached
// to logs so a single delivery can be traced across processing stages.
func GenerateDeliveryID() string {
	return fmt.Sprintf("delivery-%s", uuid.NewString())
}
