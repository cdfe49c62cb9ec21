// Package spectrum holds a 1-D spectrum (wavelength, flux and optional
// flux errors) and the operations used to inspect it: rest/observed frame
// shifts, windows around a wavelength, resampling onto a new grid and
// constant-resolution smoothing.
//
// Wavelengths are in Å and must be positive and strictly increasing.
// Flux is taken to be f_λ in erg s^-1 cm^-2 Å^-1 where a unit matters
// (see [Spectrum.FnuJy]).
package spectrum
