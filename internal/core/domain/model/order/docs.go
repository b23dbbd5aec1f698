// Package order contains the Order aggregate and its status state machine.
// The aggregate owns the full order lifecycle: creation with a tracking
// identity, role-gated status transitions, driver assignment, OTP-confirmed
// delivery, and cancellation with a simulated refund. All mutations go through
// aggregate methods so the lifecycle invariants cannot be bypassed.
package order
