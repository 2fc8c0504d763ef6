package xyzio

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/heterolattice/atoms"
)

var (
	latticeRe = regexp.MustCompile(`Lattice="([^"]+)"`)
	pbcRe     = regexp.MustCompile(`pbc="([^"]+)"`)
)

// Read parses one extended-XYZ frame from r.
//
// Stage 1 (Validate): the first line is a positive atom count; the
// second line carries a 9-number Lattice="..." matrix and, optionally, a
// pbc="T T F"-style flag triple (defaulting to atoms.TwoDPBC when
// absent, the dialect this repository writes).
// Stage 2 (Execute): the next count lines are "species x y z", split on
// whitespace.
func Read(r io.Reader) (atoms.Atoms, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return atoms.Atoms{}, fmt.Errorf("xyzio: reading atom count: %w", ErrMalformedFile)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n <= 0 {
		return atoms.Atoms{}, fmt.Errorf("xyzio: invalid atom count %q: %w", scanner.Text(), ErrMalformedFile)
	}

	if !scanner.Scan() {
		return atoms.Atoms{}, fmt.Errorf("xyzio: reading comment line: %w", ErrMalformedFile)
	}
	comment := scanner.Text()

	cell, err := parseLattice(comment)
	if err != nil {
		return atoms.Atoms{}, err
	}
	pbc := parsePBC(comment)

	out := atoms.Atoms{
		Cell:      cell,
		Positions: make([]atoms.Vec3, 0, n),
		Species:   make([]string, 0, n),
		PBC:       make([]atoms.PBCFlags, 0, n),
	}

	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return atoms.Atoms{}, fmt.Errorf("xyzio: expected %d atom lines, got %d: %w", n, i, ErrMalformedFile)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return atoms.Atoms{}, fmt.Errorf("xyzio: malformed atom line %q: %w", scanner.Text(), ErrMalformedFile)
		}

		var pos atoms.Vec3
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return atoms.Atoms{}, fmt.Errorf("xyzio: malformed coordinate %q: %w", fields[j+1], ErrMalformedFile)
			}
			pos[j] = v
		}

		out.Positions = append(out.Positions, pos)
		out.Species = append(out.Species, fields[0])
		out.PBC = append(out.PBC, pbc)
	}

	if err := scanner.Err(); err != nil {
		return atoms.Atoms{}, fmt.Errorf("xyzio: %w: %w", err, ErrMalformedFile)
	}

	return out, nil
}

// Write serializes a into the extended-XYZ dialect Read accepts.
// Coordinates and lattice vectors are written with 9 decimal digits, the
// precision Read's round-trip is expected to preserve.
func Write(w io.Writer, a atoms.Atoms) error {
	if err := a.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, a.Len())

	pbc := atoms.TwoDPBC
	if len(a.PBC) > 0 {
		pbc = a.PBC[0]
	}
	fmt.Fprintf(bw, "Lattice=%q Properties=species:S:1:pos:R:3 pbc=%q\n",
		formatLattice(a.Cell), formatPBC(pbc))

	for i, p := range a.Positions {
		fmt.Fprintf(bw, "%s %.9f %.9f %.9f\n", a.Species[i], p[0], p[1], p[2])
	}

	return bw.Flush()
}

func parseLattice(comment string) (atoms.Cell, error) {
	m := latticeRe.FindStringSubmatch(comment)
	if m == nil {
		return atoms.Cell{}, fmt.Errorf("xyzio: no Lattice=\"...\" in comment line: %w", ErrMalformedFile)
	}
	fields := strings.Fields(m[1])
	if len(fields) != 9 {
		return atoms.Cell{}, fmt.Errorf("xyzio: Lattice must have 9 numbers, got %d: %w", len(fields), ErrMalformedFile)
	}

	var cell atoms.Cell
	for i := 0; i < 9; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return atoms.Cell{}, fmt.Errorf("xyzio: malformed lattice entry %q: %w", fields[i], ErrMalformedFile)
		}
		cell[i/3][i%3] = v
	}

	return cell, nil
}

func parsePBC(comment string) atoms.PBCFlags {
	m := pbcRe.FindStringSubmatch(comment)
	if m == nil {
		return atoms.TwoDPBC
	}
	fields := strings.Fields(m[1])
	if len(fields) != 3 {
		return atoms.TwoDPBC
	}

	var pbc atoms.PBCFlags
	for i, f := range fields {
		pbc[i] = f == "T" || f == "true"
	}

	return pbc
}

func formatLattice(cell atoms.Cell) string {
	parts := make([]string, 0, 9)
	for _, row := range cell {
		for _, v := range row {
			parts = append(parts, strconv.FormatFloat(v, 'f', 9, 64))
		}
	}

	return strings.Join(parts, " ")
}

func formatPBC(pbc atoms.PBCFlags) string {
	flags := make([]string, 3)
	for i, v := range pbc {
		if v {
			flags[i] = "T"
		} else {
			flags[i] = "F"
		}
	}

	return strings.Join(flags, " ")
}
