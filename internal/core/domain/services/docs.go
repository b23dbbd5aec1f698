// Package services contains stateless domain services that coordinate
// several aggregates inside a single transaction.
package services
