// Package driver contains the Driver aggregate: the people who carry orders
// from the warehouse to the customer.
package driver
