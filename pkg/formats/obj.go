package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrOBJIndexOutOfRange = errors.New("OBJ face index out of range")
	ErrOBJMalformed       = errors.New("malformed OBJ statement")
	ErrOBJNoFaces         = errors.New("OBJ contains no faces")
)

// OBJCorner references the attributes of one face corner. Indices are
// zero-based; -1 marks an attribute the corner does not specify.
type OBJCorner struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJ is a parsed Wavefront OBJ file. Polygons are fan-triangulated so
// Triangles holds three corners per entry.
type OBJ struct {
	Positions [][3]float32
	TexCoords [][2]float32
	Normals   [][3]float32
	Triangles [][3]OBJCorner

	// Skipped counts statements the parser does not use (o, g, s, usemtl...).
	Skipped int
}

// ParseOBJ parses OBJ text.
func ParseOBJ(data []byte) (*OBJ, error) {
	return ParseOBJReader(bytes.NewReader(data))
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ: %w", err)
	}
	defer f.Close()
	return ParseOBJReader(f)
}

// ParseOBJReader parses OBJ text from a reader.
func ParseOBJReader(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		var err error
		switch fields[0] {
		case "v":
			var v [3]float32
			err = parseFloats(fields[1:], v[:])
			obj.Positions = append(obj.Positions, v)
		case "vt":
			var v [2]float32
			// a third w component is allowed and ignored
			err = parseFloats(fields[1:min(len(fields), 3)], v[:])
			obj.TexCoords = append(obj.TexCoords, v)
		case "vn":
			var v [3]float32
			err = parseFloats(fields[1:], v[:])
			obj.Normals = append(obj.Normals, v)
		case "f":
			err = obj.parseFace(fields[1:])
		default:
			obj.Skipped++
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}
	if len(obj.Triangles) == 0 {
		return nil, ErrOBJNoFaces
	}
	return obj, nil
}

func parseFloats(fields []string, out []float32) error {
	if len(fields) < len(out) {
		return fmt.Errorf("%w: want %d values, got %d", ErrOBJMalformed, len(out), len(fields))
	}
	for i := range out {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrOBJMalformed, err)
		}
		out[i] = float32(f)
	}
	return nil
}

func (o *OBJ) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: face needs at least 3 corners, got %d", ErrOBJMalformed, len(fields))
	}
	corners := make([]OBJCorner, len(fields))
	for i, f := range fields {
		c, err := o.parseCorner(f)
		if err != nil {
			return err
		}
		corners[i] = c
	}
	for i := 1; i+1 < len(corners); i++ {
		o.Triangles = append(o.Triangles, [3]OBJCorner{corners[0], corners[i], corners[i+1]})
	}
	return nil
}

// parseCorner handles v, v/vt, v//vn and v/vt/vn with 1-based or negative
// relative indices.
func (o *OBJ) parseCorner(s string) (OBJCorner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return OBJCorner{}, fmt.Errorf("%w: corner %q", ErrOBJMalformed, s)
	}
	c := OBJCorner{Position: -1, TexCoord: -1, Normal: -1}

	var err error
	if c.Position, err = resolveIndex(parts[0], len(o.Positions)); err != nil {
		return OBJCorner{}, err
	}
	if c.Position < 0 {
		return OBJCorner{}, fmt.Errorf("%w: corner %q has no position", ErrOBJMalformed, s)
	}
	if len(parts) > 1 {
		if c.TexCoord, err = resolveIndex(parts[1], len(o.TexCoords)); err != nil {
			return OBJCorner{}, err
		}
	}
	if len(parts) > 2 {
		if c.Normal, err = resolveIndex(parts[2], len(o.Normals)); err != nil {
			return OBJCorner{}, err
		}
	}
	return c, nil
}

func resolveIndex(s string, count int) (int, error) {
	if s == "" {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrOBJMalformed, s)
	}
	idx := n - 1
	if n < 0 {
		idx = count + n
	}
	if n == 0 || idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %d of %d", ErrOBJIndexOutOfRange, n, count)
	}
	return idx, nil
}
