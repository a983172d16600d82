package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// ValidateNotNil rejects nil interfaces and typed-nil pointers.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare ensures m is non-nil and n×n.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, m.Rows(), m.Cols())
	}

	return nil
}

// ValidateWeights rejects NaN and -Inf entries. +Inf is the "no edge" sentinel.
func ValidateWeights(m Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return fmt.Errorf("%w: at (%d,%d)", ErrNaN, i, j)
			}
		}
	}

	return nil
}
