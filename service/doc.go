// Package service orchestrates the core components of the
// low-memory daemon — candidate registry, pressure thresholds,
// kill journal, outbox, and epoch reclamation.
//
// It provides a clean API for probing, scanning, and killing,
// decoupled from network transports like gRPC.
package service
