package tensor

import (
	"math"
	"reflect"
)

// Saturate converts v to T with defined results for every input. Integer
// targets truncate toward zero and clamp to T's range; NaN becomes 0.
// Float targets convert as Go does, so float32 overflows to ±Inf.
//
// A plain T(v) is implementation-defined when v is outside T's range.
func Saturate[T Number](v float64) T {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := rv.Type().Bits()
		limit := math.Ldexp(1, bits-1) // 2^(bits-1)
		switch {
		case math.IsNaN(v):
		case v <= -limit:
			rv.SetInt(math.MinInt64 >> (64 - bits))
		case v >= limit:
			rv.SetInt(math.MaxInt64 >> (64 - bits))
		default:
			rv.SetInt(int64(v))
		}
	default: // unsigned
		bits := rv.Type().Bits()
		switch {
		case !(v > 0):
		case v >= math.Ldexp(1, bits):
			rv.SetUint(math.MaxUint64 >> (64 - bits))
		default:
			rv.SetUint(uint64(v))
		}
	}

	return out
}
