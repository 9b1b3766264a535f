// Package launch implements the token launch wizard.
//
// A Session walks a Draft through three linear steps: Configure, Review and
// Launch. Field edits go through UpdateField, which filters input instead of
// rejecting it, and progression is gated by CanAdvance.
//
// Nothing in this package touches a ledger. EstimatedFee is a fixed formula
// and SimulatedAddress returns a random placeholder string.
package launch
