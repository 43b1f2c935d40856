// Package band decodes resistor color-band sequences.
//
// Decoding happens in three stages:
//
//   - Resolve turns raw tokens ("Brown", "vi", "gold") into model.Color
//     values, expanding unambiguous shorthand prefixes.
//   - Validate checks the band count (4, 5 or 6) and that each color is
//     permitted for the role its position plays at that band count.
//   - Decode computes resistance, tolerance and, for six bands, the
//     temperature coefficient. Each decoding step re-validates the slice
//     it reads, so Decode never needs a prior call to Validate.
//
// Every role (digit, multiplier, tolerance, temperature coefficient) owns
// a fixed table of permitted colors and their numeric meaning. Failures are
// reported as *Error values that carry the offending value, the permitted
// set and the band position, so callers can render them however they like.
// The package has no knowledge of terminals or output formats.
package band
