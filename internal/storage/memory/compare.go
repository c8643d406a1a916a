package memory

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// compare orders two column values. Integers of any width compare numerically.
func compare(a, b any) (int, error) {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		if !ok {
			return 0, fmt.Errorf("cannot compare %T with %T", a, b)
		}
		return at.Compare(bt), nil
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		if !av.IsValid() && !bv.IsValid() {
			return 0, nil
		}
		return 0, fmt.Errorf("cannot compare %v with %v", a, b)
	}

	switch {
	case isInt(av) && isInt(bv):
		return compareInts(av, bv), nil
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return strings.Compare(av.String(), bv.String()), nil
	case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
		x, y := av.Bool(), bv.Bool()
		switch {
		case x == y:
			return 0, nil
		case !x:
			return -1, nil
		default:
			return 1, nil
		}
	case av.Kind() == reflect.Float64 || bv.Kind() == reflect.Float64:
		x, okx := toFloat(av)
		y, oky := toFloat(bv)
		if !okx || !oky {
			return 0, fmt.Errorf("cannot compare %T with %T", a, b)
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	}

	if reflect.DeepEqual(a, b) {
		return 0, nil
	}
	return 0, fmt.Errorf("cannot compare %T with %T", a, b)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func compareInts(a, b reflect.Value) int {
	switch {
	case isSigned(a) && isSigned(b):
		return cmp3(a.Int() < b.Int(), a.Int() > b.Int())
	case !isSigned(a) && !isSigned(b):
		return cmp3(a.Uint() < b.Uint(), a.Uint() > b.Uint())
	case isSigned(a):
		if a.Int() < 0 {
			return -1
		}
		x := uint64(a.Int())
		return cmp3(x < b.Uint(), x > b.Uint())
	default:
		if b.Int() < 0 {
			return 1
		}
		y := uint64(b.Int())
		return cmp3(a.Uint() < y, a.Uint() > y)
	}
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	default:
		return 0
	}
}

func toFloat(v reflect.Value) (float64, bool) {
	switch {
	case v.Kind() == reflect.Float64 || v.Kind() == reflect.Float32:
		return v.Float(), true
	case isInt(v) && isSigned(v):
		return float64(v.Int()), true
	case isInt(v):
		return float64(v.Uint()), true
	default:
		return 0, false
	}
}
