// Package pointfile reads and writes sample point data: one point per line,
// three whitespace-separated float coordinates.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spatial3d/octree/internal/geom"
)

// Read parses points from r. Blank lines are skipped; anything else that is
// not a float triple is an error naming the offending line.
func Read(r io.Reader) ([]geom.Point3, error) {
	var points []geom.Point3
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 coordinates, got %d", line, len(fields))
		}
		var coords [3]float32
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse %q: %w", line, field, err)
			}
			coords[i] = float32(value)
		}
		points = append(points, geom.New(coords[0], coords[1], coords[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan points: %w", err)
	}
	return points, nil
}

func ReadFile(path string) ([]geom.Point3, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open point file: %w", err)
	}
	defer file.Close()

	points, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return points, nil
}

// Write emits points in the same format Read parses.
func Write(w io.Writer, points []geom.Point3) error {
	buffered := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(buffered, "%g %g %g\n", p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("write point: %w", err)
		}
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flush points: %w", err)
	}
	return nil
}

func WriteFile(path string, points []geom.Point3) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create point file: %w", err)
	}
	if err := Write(file, points); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close point file: %w", err)
	}
	return nil
}
