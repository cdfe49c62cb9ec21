// Package core holds the pieces shared by the reduction packages: a small
// row-major N-d float64 array, the error taxonomy, and numeric helpers.
//
// Every function in this module is a synchronous computation over
// in-memory values. Invalid input is reported through one of the error
// categories below before any output is produced:
//
//   - ErrDomain: mathematically undefined input (log of a non-positive
//     flux, zero exposure time, negative counts)
//   - ErrShapeMismatch: arrays that must agree in shape do not
//   - ErrDivisionByZero: a denominator that would be zero (n_bg, flat pixel)
//   - ErrMissingWeight, ErrConflictingWeight: ambiguous weighting input
//   - ErrUnsupportedUnit: a unit tag the conversion does not know
//   - ErrEmptyInput: an empty frame list or sample
//   - ErrInvalidAxis: a reduction axis the array does not have
package core
