package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gopoi/pkg/geometry"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// LoadSTL reads an ASCII or binary STL file
func LoadSTL(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return ParseSTL(data)
}

// ParseSTL decodes STL data. Binary files whose header happens to start
// with "solid" are recognised by their exact size.
func ParseSTL(data []byte) (*Mesh, error) {
	if isBinarySTL(data) {
		return parseBinarySTL(data)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return parseASCIISTL(bytes.NewReader(data))
	}
	return parseBinarySTL(data)
}

func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return int64(len(data)) == stlHeaderSize+4+int64(count)*stlTriangleSize
}

func parseASCIISTL(r io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(r)
	m := New("")

	var normal geometry.Vector3
	vertices := make([]geometry.Vector3, 0, 3)
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				v, err := parseVector(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid normal: %w", line, err)
				}
				normal = v
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs three coordinates", line)
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", line, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				m.Add(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
			normal = geometry.Vector3{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return m, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

func parseBinarySTL(data []byte) (*Mesh, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, fmt.Errorf("failed to read header: file is %d bytes", len(data))
	}

	m := New(strings.TrimSpace(string(bytes.TrimRight(data[:stlHeaderSize], "\x00"))))

	count := int(binary.LittleEndian.Uint32(data[stlHeaderSize:]))
	body := data[stlHeaderSize+4:]
	if len(body) < count*stlTriangleSize {
		return nil, fmt.Errorf("failed to read triangles: expected %d, file holds %d", count, len(body)/stlTriangleSize)
	}

	for i := 0; i < count; i++ {
		rec := body[i*stlTriangleSize:]
		m.Add(geometry.NewTriangle(
			readVector(rec[0:]),
			readVector(rec[12:]),
			readVector(rec[24:]),
			readVector(rec[36:]),
		))
	}

	return m, nil
}

func readVector(b []byte) geometry.Vector3 {
	return geometry.NewVector3(
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	)
}

// WriteBinarySTL encodes m as binary STL
func WriteBinarySTL(w io.Writer, m *Mesh) error {
	header := make([]byte, stlHeaderSize)
	copy(header, m.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	rec := make([]byte, stlTriangleSize)
	for _, t := range m.Triangles {
		for i, v := range []geometry.Vector3{t.Normal, t.V1, t.V2, t.V3} {
			binary.LittleEndian.PutUint32(rec[i*12:], math.Float32bits(float32(v.X)))
			binary.LittleEndian.PutUint32(rec[i*12+4:], math.Float32bits(float32(v.Y)))
			binary.LittleEndian.PutUint32(rec[i*12+8:], math.Float32bits(float32(v.Z)))
		}
		if _, err := w.Write(rec); err != nil {
			return fmt.Errorf("failed to write triangle: %w", err)
		}
	}
	return nil
}
