// Package outcome provides two immutable container types for modeling
// expected failure and absence of a value as plain return values:
// Result[T, E] for success/failure outcomes and Option[T] for
// present/absent values.
//
// Highlights:
// - Success/Failure, Some/None: construct one of the fixed variants
// - IsOk/IsErr, IsSome/IsNone: inspect the variant tag
// - Ok/Err: convert a Result into an Option over either payload
// - Match/MatchResult: total access via one handler per variant
// - Unwrap: partial access that panics on the wrong variant
//
// Every container is immutable once constructed, so instances can be
// shared across goroutines without synchronization.
//
// Unwrapping an absent Option panics with a *Fault carrying the message
// "called unwrap on an absent value". Unwrapping a failed Result panics
// with the held error value itself, since that value already carries the
// caller's description of the failure. A program that checks the tag
// first, or uses Match, never observes either panic.
package outcome
