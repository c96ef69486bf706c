package parser

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Matrix converts a list of numbers into a single row, or a list of lists
// into rows. A null value gives nil.
func Matrix(v cty.Value) ([][]float64, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() || !v.CanIterateElements() {
		return nil, fmt.Errorf("expected a list of numbers or a list of rows, got %s", v.Type().FriendlyName())
	}

	var nested, flat bool
	var rows [][]float64
	var row []float64
	for it := v.ElementIterator(); it.Next(); {
		_, el := it.Element()
		switch {
		case el.IsNull():
			return nil, fmt.Errorf("null element")
		case el.Type() == cty.Number:
			flat = true
			f, _ := el.AsBigFloat().Float64()
			row = append(row, f)
		case el.CanIterateElements():
			nested = true
			r, err := Vector(el)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		default:
			return nil, fmt.Errorf("unexpected %s element", el.Type().FriendlyName())
		}
	}
	if nested && flat {
		return nil, fmt.Errorf("mixes numbers and rows")
	}
	if flat || !nested {
		if row == nil {
			row = []float64{}
		}
		return [][]float64{row}, nil
	}
	return rows, nil
}

// Vector converts a list of numbers. A null value gives nil and an empty
// list gives an empty, non-nil slice.
func Vector(v cty.Value) ([]float64, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() || !v.CanIterateElements() {
		return nil, fmt.Errorf("expected a list of numbers, got %s", v.Type().FriendlyName())
	}
	out := []float64{}
	for it := v.ElementIterator(); it.Next(); {
		_, el := it.Element()
		if el.IsNull() || el.Type() != cty.Number {
			return nil, fmt.Errorf("expected a number, got %s", el.Type().FriendlyName())
		}
		f, _ := el.AsBigFloat().Float64()
		out = append(out, f)
	}
	return out, nil
}
