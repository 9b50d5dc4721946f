// Package weight implements the exact rational weight algebra W used by the
// decoder: signed values with lossless addition, subtraction, multiplication
// and division, a total order, and the Zero/One constants.
//
// All dual arithmetic of the solver runs on this type, which is what makes
// the reported weight bounds bit-exact: lower == upper is a proof of
// optimality, not a floating-point coincidence.
//
// Serialization follows the decoder snapshot convention: integers marshal as
// [sign, [u32 digits little-endian]], non-integers as a "numer/denom" string;
// the unmarshaler additionally accepts plain JSON numbers.
//
// Errors (sentinel):
//
//	– ErrDivisionByZero if Div is called with a zero divisor.
//	– ErrBadEncoding    if an encoded rational cannot be parsed.
//
// Complexity: all operations are O(n·m) in the bit lengths of the operands
// (math/big semantics); values produced by the solver stay small because edge
// weights are integers and rates are in {−1, 0, +1}.
package weight
