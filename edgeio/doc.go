// SPDX-License-Identifier: MIT
// Package: bidom/edgeio
//
// Package edgeio reads and writes the bit-exact edge-list text format
// shared with external collaborators (minimal-presentation tooling,
// benchmark harnesses): an optional leading count line followed by one
// "u v g0 g1" row per edge.
//
// Because edge.List is generic over the grade value domain V, callers
// supply a ParseValue/FormatValue pair for their concrete V (IntValue
// and Float64Value cover the two domains used elsewhere in this
// module). This mirrors how the removal driver itself stays agnostic
// of V: the format is fixed, the value domain is not.
package edgeio

import "errors"

// ErrMalformedLine indicates a data row did not parse as exactly four
// whitespace-separated fields, or one of its numeric fields failed to
// parse under the supplied ParseValue.
var ErrMalformedLine = errors.New("edgeio: malformed edge-list line")

// ErrCountMismatch indicates a present count line disagreed with the
// number of data rows actually read.
var ErrCountMismatch = errors.New("edgeio: declared edge count does not match rows read")
