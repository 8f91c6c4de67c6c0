package meshfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	countPrefix = "Vertex Count:"
	dataHeader  = "Data:"
)

// Parse reads the plain-text model format:
//
//	Vertex Count: N
//
//	Data:
//
//	x y z tu tv nx ny nz
//	... (N lines)
//
// Blank lines are ignored. Errors carry the 1-based line number.
func Parse(r io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	next := func() (string, bool) {
		for scanner.Scan() {
			lineNum++
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	line, ok := next()
	if !ok {
		return nil, scanErr(scanner, "missing %q header", countPrefix)
	}
	if !strings.HasPrefix(line, countPrefix) {
		return nil, fmt.Errorf("line %d: expected %q, got %q", lineNum, countPrefix, line)
	}
	count, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, countPrefix)))
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid vertex count: %w", lineNum, err)
	}
	if count <= 0 {
		return nil, fmt.Errorf("line %d: vertex count must be positive, got %d", lineNum, count)
	}

	line, ok = next()
	if !ok {
		return nil, scanErr(scanner, "missing %q header", dataHeader)
	}
	if line != dataHeader {
		return nil, fmt.Errorf("line %d: expected %q, got %q", lineNum, dataHeader, line)
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, count),
		Indices:  make([]uint32, 0, count),
	}
	for i := 0; i < count; i++ {
		line, ok = next()
		if !ok {
			return nil, scanErr(scanner, "expected %d vertices, found %d", count, i)
		}
		v, err := parseVertex(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		mesh.Vertices = append(mesh.Vertices, v)
		mesh.Indices = append(mesh.Indices, uint32(i))
	}

	if line, ok = next(); ok {
		return nil, fmt.Errorf("line %d: unexpected data after %d vertices: %q", lineNum, count, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read model data: %w", err)
	}

	return mesh, nil
}

func parseVertex(line string) (Vertex, error) {
	fields := strings.Fields(line)
	if len(fields) != FloatsPerVertex {
		return Vertex{}, fmt.Errorf("expected %d values, got %d", FloatsPerVertex, len(fields))
	}

	var vals [FloatsPerVertex]float32
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return Vertex{}, fmt.Errorf("invalid value %q: %w", f, err)
		}
		vals[i] = float32(v)
	}

	return Vertex{
		Position: [3]float32{vals[0], vals[1], vals[2]},
		UV:       [2]float32{vals[3], vals[4]},
		Normal:   [3]float32{vals[5], vals[6], vals[7]},
	}, nil
}

// scanErr prefers the underlying read error over the format complaint.
func scanErr(scanner *bufio.Scanner, format string, args ...any) error {
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read model data: %w", err)
	}
	return fmt.Errorf(format, args...)
}
