package weight_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwpf/weight"
)

// TestW_ZeroValue verifies the zero value of W behaves as the number zero.
func TestW_ZeroValue(t *testing.T) {
	var w weight.W

	assert.True(t, w.IsZero(), "zero value must be zero")
	assert.Equal(t, 0, w.Sign())
	assert.True(t, w.Equal(weight.Zero()))
	assert.Equal(t, "0", w.String())
}

// TestW_FieldLaws checks the ordered-field identities the dual arithmetic
// relies on: additive/multiplicative identities, inverses, exact division.
func TestW_FieldLaws(t *testing.T) {
	a, err := weight.FromFrac(3, 7)
	require.NoError(t, err)
	b := weight.FromInt(5)

	assert.True(t, a.Add(weight.Zero()).Equal(a), "a + 0 == a")
	assert.True(t, a.Mul(weight.One()).Equal(a), "a × 1 == a")
	assert.True(t, a.Sub(a).IsZero(), "a − a == 0")

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, q.Mul(b).Equal(a), "(a ÷ b) × b == a exactly")

	// 1/3 + 1/3 + 1/3 == 1 with no drift.
	third, err := weight.FromFrac(1, 3)
	require.NoError(t, err)
	assert.True(t, third.Add(third).Add(third).Equal(weight.One()))
}

// TestW_DivisionByZero verifies the sentinel for a zero divisor.
func TestW_DivisionByZero(t *testing.T) {
	_, err := weight.One().Div(weight.Zero())
	assert.ErrorIs(t, err, weight.ErrDivisionByZero)

	_, err = weight.FromFrac(1, 0)
	assert.ErrorIs(t, err, weight.ErrDivisionByZero)
}

// TestW_Ordering verifies the total order used for obstacle comparisons.
func TestW_Ordering(t *testing.T) {
	half, _ := weight.FromFrac(1, 2)
	twoThirds, _ := weight.FromFrac(2, 3)

	assert.Equal(t, -1, half.Cmp(twoThirds))
	assert.Equal(t, 1, twoThirds.Cmp(half))
	assert.Equal(t, 0, half.Cmp(half))
	assert.Equal(t, -1, weight.FromInt(-1).Cmp(weight.Zero()))
}

// TestW_JSONInteger verifies the [sign, [u32 digits LE]] integer form.
func TestW_JSONInteger(t *testing.T) {
	raw, err := json.Marshal(weight.FromInt(160))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, [160]]`, string(raw))

	raw, err = json.Marshal(weight.FromInt(-7))
	require.NoError(t, err)
	assert.JSONEq(t, `[-1, [7]]`, string(raw))

	raw, err = json.Marshal(weight.Zero())
	require.NoError(t, err)
	assert.JSONEq(t, `[0, []]`, string(raw))

	// Multi-digit magnitude: 2^33 = [2, then 0 in the low digit] LE.
	raw, err = json.Marshal(weight.FromInt(1 << 33))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, [0, 2]]`, string(raw))
}

// TestW_JSONRoundTrip verifies every accepted wire form decodes correctly.
func TestW_JSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want weight.W
	}{
		{"integer array", `[1, [160]]`, weight.FromInt(160)},
		{"negative array", `[-1, [7]]`, weight.FromInt(-7)},
		{"zero array", `[0, []]`, weight.Zero()},
		{"fraction string", `"3/7"`, mustFrac(t, 3, 7)},
		{"integer string", `"42"`, weight.FromInt(42)},
		{"plain number", `100`, weight.FromInt(100)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var w weight.W
			require.NoError(t, json.Unmarshal([]byte(tc.in), &w))
			assert.True(t, w.Equal(tc.want), "decoded %s, want %s", w, tc.want)
		})
	}
}

// TestW_JSONBadEncoding verifies malformed input surfaces ErrBadEncoding.
func TestW_JSONBadEncoding(t *testing.T) {
	for _, in := range []string{`"abc"`, `[2, [1]]`, `[1]`, `{"n":1}`} {
		var w weight.W
		err := json.Unmarshal([]byte(in), &w)
		assert.Error(t, err, "input %s must fail", in)
	}
}

// TestW_Immutability verifies operations never mutate their operands.
func TestW_Immutability(t *testing.T) {
	a := weight.FromInt(10)
	b := weight.FromInt(3)
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(b)
	_, _ = a.Div(b)
	_ = a.Neg()

	assert.True(t, a.Equal(weight.FromInt(10)))
	assert.True(t, b.Equal(weight.FromInt(3)))
}

func mustFrac(t *testing.T, n, d int64) weight.W {
	t.Helper()
	w, err := weight.FromFrac(n, d)
	require.NoError(t, err)

	return w
}
