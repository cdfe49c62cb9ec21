// Package calib implements CCD calibration arithmetic: median-combined
// master bias and master flat frames, and bias/flat correction of science
// frames.
//
//	bias := calib.MasterBias(biasFrames)
//	flat := calib.MasterFlat(flatFrames, bias)   // mean 1
//	out  := calib.CalibrateScience(sci, flat, bias)
//	     // (sci - bias) / flat / t_exp
//
// Every call validates its input before computing: frames must be 2-D and
// share a shape (core.ErrShapeMismatch), lists must be non-empty
// (core.ErrEmptyInput), exposure times must be positive (core.ErrDomain)
// and a flat must not contain zero pixels (core.ErrDivisionByZero).
// Inputs are never modified.
//
// [Batch] calibrates many science frames concurrently against one pair of
// master frames and reports failures per frame instead of aborting.
package calib
