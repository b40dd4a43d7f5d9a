package core

import "math/big"

// Timebase is a Rational interpreted as seconds-per-tick.
type Timebase struct {
	Rational
}

// NewTimebase builds a Timebase; den must be > 0.
func NewTimebase(num, den int64) Timebase {
	return Timebase{NewRational(num, den)}
}

// Rescale converts a pts expressed in timebase `from` into the equivalent
// pts in timebase `to`:
//
//	pts_to = round(pts_from * from.Num * to.Den / (from.Den * to.Num))
//
// Ties round to even. The result saturates to the int64 range rather than
// overflowing; exact arithmetic is performed with big.Int so intermediate
// products never lose precision regardless of pts magnitude.
func Rescale(pts int64, from, to Timebase) int64 {
	num := new(big.Int).Mul(big.NewInt(pts), big.NewInt(from.Num))
	num.Mul(num, big.NewInt(to.Den))
	den := new(big.Int).Mul(big.NewInt(from.Den), big.NewInt(to.Num))

	return divRoundHalfEven(num, den)
}

// divRoundHalfEven computes round-half-to-even(num/den) as an int64,
// saturating to math.MinInt64/math.MaxInt64 on overflow.
func divRoundHalfEven(num, den *big.Int) int64 {
	neg := (num.Sign() < 0) != (den.Sign() < 0)
	num = new(big.Int).Abs(num)
	den = new(big.Int).Abs(den)

	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, den, r)

	twice := new(big.Int).Lsh(r, 1)
	switch twice.Cmp(den) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	if neg {
		q.Neg(q)
	}

	maxI64 := big.NewInt(1<<63 - 1)
	minI64 := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 63))
	if q.Cmp(maxI64) > 0 {
		return maxI64.Int64()
	}
	if q.Cmp(minI64) < 0 {
		return minI64.Int64()
	}
	return q.Int64()
}
