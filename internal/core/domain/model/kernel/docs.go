// Package kernel contains shared value objects used across the domain model.
// These types have no dependencies on other domain packages and enforce their
// own invariants through constructor functions.
package kernel
