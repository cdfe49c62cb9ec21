// Package snr evaluates the CCD equation for the signal-to-noise ratio of
// an aperture measurement.
//
// Rate form, with rates in electrons per second:
//
//	SNR = S t / sqrt(S t + n_ap (1 + n_ap/n_bg) (B t + D t + R²))
//
// Count form, with totals in electrons:
//
//	SNR = S / sqrt(S + n_ap (1 + n_ap/n_bg) (B + D + R²))
//
// S is the source, B the sky per pixel, D the dark current per pixel and R
// the read noise. n_ap is the number of pixels in the source aperture and
// n_bg the number used to estimate the background; the (1 + n_ap/n_bg)
// factor carries the uncertainty of the sky estimate into the subtraction.
//
// Inputs are validated before evaluation: a zero n_bg fails with
// core.ErrDivisionByZero rather than producing Inf or NaN.
package snr
