// Package delivery contains the Delivery projection: the driver-facing view
// of an assigned order, including its current location and the one-time
// confirmation code.
package delivery
