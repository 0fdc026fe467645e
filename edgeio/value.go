package edgeio

import "strconv"

// ParseValue converts one whitespace-delimited field into a grade
// coordinate of type V.
type ParseValue[V any] func(string) (V, error)

// FormatValue renders a grade coordinate of type V as a single field.
type FormatValue[V any] func(V) string

// IntValue is the ParseValue/FormatValue pair for int-valued grades.
func IntValue() (ParseValue[int], FormatValue[int]) {
	parse := func(s string) (int, error) { return strconv.Atoi(s) }
	format := func(v int) string { return strconv.Itoa(v) }
	return parse, format
}

// Float64Value is the ParseValue/FormatValue pair for float64-valued
// grades, using the same bit width as ordered_float::OrderedFloat<f64>
// used by the Rust collaborators this format is shared with.
func Float64Value() (ParseValue[float64], FormatValue[float64]) {
	parse := func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return parse, format
}
