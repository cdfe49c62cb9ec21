// Package axis computes tick positions and labels for plots of
// astronomical data. It produces plain values and strings; drawing them
// is left to the caller's plotting library.
//
// Logarithmic axes get major labels of the form 10^{n} and single-digit
// minor labels (2..9) that can be thinned with a [LabelConfig]. Image
// axes in pixels get ticks at a fixed angular interval, labelled in
// angular units.
package axis
