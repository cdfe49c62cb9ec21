// Package weighted computes weighted means along one axis of an N-d array.
//
// Exactly one weighting source must be given. With WithSigma the weights
// are inverse variances, w = 1/σ², normalized to sum to one along the axis,
// and the result also carries the propagated error sqrt(Σ σ² w²). With
// WithWeights the supplied weights are normalized the same way and no error
// is propagated. Supplying neither fails with core.ErrMissingWeight and
// supplying both fails with core.ErrConflictingWeight.
package weighted
