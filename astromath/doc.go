// Package astromath collects small numeric helpers used across day-to-day
// reduction work: physical constants in cgs units, angular unit
// conversion, block rebinning of 2-D frames, and uniform sampling of
// directions on the sphere.
package astromath
