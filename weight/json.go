package weight

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// bitsPerDigit is the width of one serialized magnitude digit.
const bitsPerDigit = 32

// digitMask extracts one u32 digit from a big.Int word stream.
var digitMask = new(big.Int).SetUint64(1<<bitsPerDigit - 1)

// MarshalJSON encodes w in the snapshot wire form:
//
//	integer      → [sign, [u32 digits little-endian]]
//	non-integer  → "numer/denom"
//
// Consumers of the snapshot schema must accept both forms; the decoder's own
// UnmarshalJSON does, plus plain JSON numbers for hand-written fixtures.
func (w W) MarshalJSON() ([]byte, error) {
	if w.IsInt() {
		return json.Marshal(encodeBigInt(w.rat().Num()))
	}

	return json.Marshal(w.String())
}

// UnmarshalJSON decodes any of the accepted wire forms into w.
func (w *W) UnmarshalJSON(data []byte) error {
	// Integer form: [sign, [digits]].
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		n, decErr := decodeBigInt(arr)
		if decErr != nil {
			return decErr
		}
		*w = W{}
		if n.Sign() != 0 {
			w.r = new(big.Rat).SetInt(n)
		}

		return nil
	}

	// String form: "numer/denom" or a decimal literal.
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r, ok := new(big.Rat).SetString(s)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadEncoding, s)
		}
		*w = W{}
		if r.Sign() != 0 {
			w.r = r
		}

		return nil
	}

	// Plain JSON number.
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		r := new(big.Rat).SetFloat64(f)
		if r == nil {
			return fmt.Errorf("%w: non-finite number", ErrBadEncoding)
		}
		*w = W{}
		if r.Sign() != 0 {
			w.r = r
		}

		return nil
	}

	return fmt.Errorf("%w: %s", ErrBadEncoding, string(data))
}

// encodeBigInt splits |n| into little-endian u32 digits prefixed by the sign.
func encodeBigInt(n *big.Int) []interface{} {
	digits := make([]uint32, 0, (n.BitLen()+bitsPerDigit-1)/bitsPerDigit)
	abs := new(big.Int).Abs(n)
	word := new(big.Int)
	for abs.Sign() != 0 {
		digits = append(digits, uint32(word.And(abs, digitMask).Uint64()))
		abs.Rsh(abs, bitsPerDigit)
	}

	return []interface{}{n.Sign(), digits}
}

// decodeBigInt reassembles a big.Int from the [sign, [digits]] form.
func decodeBigInt(arr []json.RawMessage) (*big.Int, error) {
	if len(arr) != 2 {
		return nil, fmt.Errorf("%w: want [sign, digits], got %d elements", ErrBadEncoding, len(arr))
	}
	var sign int
	if err := json.Unmarshal(arr[0], &sign); err != nil || sign < -1 || sign > 1 {
		return nil, fmt.Errorf("%w: bad sign", ErrBadEncoding)
	}
	var digits []uint32
	if err := json.Unmarshal(arr[1], &digits); err != nil {
		return nil, fmt.Errorf("%w: bad digit list", ErrBadEncoding)
	}

	n := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		n.Lsh(n, bitsPerDigit)
		n.Or(n, new(big.Int).SetUint64(uint64(digits[i])))
	}
	if sign < 0 {
		n.Neg(n)
	}
	if sign == 0 && n.Sign() != 0 {
		return nil, fmt.Errorf("%w: zero sign with non-zero digits", ErrBadEncoding)
	}

	return n, nil
}
