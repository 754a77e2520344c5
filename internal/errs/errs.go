package errs

import "errors"

// Sentinel errors for the order lifecycle and payout workflow. Call sites wrap
// these with fmt.Errorf("...: %w", err) so handlers can dispatch on errors.Is
// while still logging the details.
var ErrInvalidTransition = errors.New("invalid order status transition")
var ErrAlreadyClaimed = errors.New("order already claimed by another driver")
var ErrInsufficientEarnings = errors.New("withdrawal amount exceeds available earnings")
var ErrNotAuthorized = errors.New("caller is not allowed to perform this action")
var ErrOrderNotFound = errors.New("order not found")
var ErrEarningsExist = errors.New("earnings already recorded for this order")
var ErrRequestNotFound = errors.New("withdrawal request not found")
var ErrUpstreamFailure = errors.New("upstream call failed")
