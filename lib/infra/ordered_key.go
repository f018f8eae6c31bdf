package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// NaN has no place in a total order, callers own that precondition.
type Float interface {
	~float32 | ~float64
}

// Number is the constraint of the numeric folds (sum).
type Number interface {
	Integer | Float
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyComparator
// Assume i is the probe and j is the target.
//  1. i == j, return 0
//  2. i > j, return 1
//  3. i < j, return -1
type OrderedKeyComparator[K OrderedKey] func(i, j K) int

// Compare is the default OrderedKeyComparator.
func Compare[K OrderedKey](i, j K) int {
	if i < j {
		return -1
	} else if i > j {
		return 1
	}
	return 0
}
