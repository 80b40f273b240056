// Package numconv converts numbers between representations.
//
// It provides two conversions:
//   - decimal to fraction, including decimals whose trailing digits repeat
//     forever (0.1333... = 2/15)
//   - numeral text between positional bases 2 through 36, plus base 64 as a
//     byte-text encoding
//
// along with the GCD and LCM helpers they rely on.
//
// # Precision
//
// All scaling by powers of ten and all radix arithmetic is done with
// math/big integers. Fraction inputs given as float64 are first rendered
// with the shortest decimal representation that round-trips, so the digits
// seen by the conversion are exactly the digits a reader would see; no
// binary representation error reaches the truncation step. Callers that
// need trailing zeros preserved ("2.50") use ParseFraction with text.
//
// # Errors
//
// Every constraint violation returns an *errs.Error with
// errs.CodeInvalidArgument; fixed-width helpers (GCD, LCM) report
// errs.CodeOverflow instead of wrapping around.
package numconv
