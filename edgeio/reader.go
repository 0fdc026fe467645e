package edgeio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bidom/edge"
	"github.com/katalvlaran/bidom/grade"
)

// Read parses an edge-list text stream into an edge.List[V]. The first
// non-blank line is treated as a decimal edge count if it consists of
// a single integer field; otherwise it is treated as the first data
// row, so a stream with no count line parses just as well as one with
// it. Every data row must be exactly "u v g0 g1".
func Read[V grade.Value](r io.Reader, parse ParseValue[V]) (*edge.List[V], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	declared := -1
	var first []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 1 {
			n, err := strconv.Atoi(fields[0])
			if err == nil {
				declared = n
				break
			}
		}
		first = fields
		break
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgeio: %w", err)
	}

	list := edge.New[V](0, max(declared, 0))
	if first != nil {
		f, err := parseRow(first, parse)
		if err != nil {
			return nil, err
		}
		if err := list.Add(f); err != nil {
			return nil, fmt.Errorf("edgeio: %w", err)
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		f, err := parseRow(fields, parse)
		if err != nil {
			return nil, err
		}
		if err := list.Add(f); err != nil {
			return nil, fmt.Errorf("edgeio: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgeio: %w", err)
	}

	if declared >= 0 && declared != list.Len() {
		return nil, fmt.Errorf("%w: declared %d, read %d", ErrCountMismatch, declared, list.Len())
	}

	return list, nil
}

func parseRow[V grade.Value](fields []string, parse ParseValue[V]) (edge.Filtered[V], error) {
	if len(fields) != 4 {
		return edge.Filtered[V]{}, fmt.Errorf("%w: %q", ErrMalformedLine, strings.Join(fields, " "))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return edge.Filtered[V]{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return edge.Filtered[V]{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	g0, err := parse(fields[2])
	if err != nil {
		return edge.Filtered[V]{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	g1, err := parse(fields[3])
	if err != nil {
		return edge.Filtered[V]{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return edge.NewFiltered(grade.New(g0, g1), u, v)
}
