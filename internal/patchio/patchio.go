// Package patchio reads and writes patches in the line format shared with
// the classifier:
//
//	<N>
//	<level> ; <a,b,c,d,e,f>
//	...            (N lines)
//
// Records follow one another until end of input.
package patchio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hat-surround/internal/geom"
	"hat-surround/internal/surround"
)

// ErrMalformed is returned for input that does not follow the format.
var ErrMalformed = errors.New("patchio: malformed input")

// Record maps every transform of a patch to its corona level.
type Record map[geom.Transform]int

// Writer writes patches.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes one patch record.
func (w *Writer) Write(p surround.Patch) error {
	if _, err := fmt.Fprintf(w.w, "%d\n", len(p)); err != nil {
		return err
	}
	for _, pl := range p {
		if _, err := fmt.Fprintf(w.w, "%d ; %v\n", pl.Level, pl.T); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WritePatch writes a single record to w.
func WritePatch(w io.Writer, p surround.Patch) error {
	pw := NewWriter(w)
	if err := pw.Write(p); err != nil {
		return err
	}
	return pw.Flush()
}

// Reader reads a stream of patch records.
type Reader struct {
	s    *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// next returns the next non-blank line.
func (r *Reader) next() (string, bool) {
	for r.s.Scan() {
		r.line++
		if l := strings.TrimSpace(r.s.Text()); l != "" {
			return l, true
		}
	}
	return "", false
}

func (r *Reader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, r.line, fmt.Sprintf(format, args...))
}

// Next returns the next patch in placement order. It returns io.EOF when the
// input is exhausted between records.
func (r *Reader) Next() (surround.Patch, error) {
	l, ok := r.next()
	if !ok {
		if err := r.s.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	n, err := strconv.Atoi(l)
	if err != nil || n < 0 {
		return nil, r.errorf("bad record size %q", l)
	}

	p := make(surround.Patch, 0, n)
	for i := 0; i < n; i++ {
		l, ok := r.next()
		if !ok {
			if err := r.s.Err(); err != nil {
				return nil, err
			}
			return nil, r.errorf("record ends after %d of %d placements", i, n)
		}
		pl, err := parsePlacement(l)
		if err != nil {
			return nil, r.errorf("%v", err)
		}
		p = append(p, pl)
	}
	return p, nil
}

// parsePlacement parses "<level> ; <a,b,c,d,e,f>".
func parsePlacement(l string) (surround.Placement, error) {
	level, rest, ok := strings.Cut(l, ";")
	if !ok {
		return surround.Placement{}, fmt.Errorf("missing ';' in %q", l)
	}
	k, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil {
		return surround.Placement{}, fmt.Errorf("bad level in %q", l)
	}

	rest = strings.TrimSpace(rest)
	rest = strings.TrimPrefix(rest, "<")
	rest = strings.TrimSuffix(rest, ">")
	fields := strings.Split(rest, ",")
	if len(fields) != 6 {
		return surround.Placement{}, fmt.Errorf("want 6 coefficients in %q, got %d", l, len(fields))
	}
	var m [6]int
	for i, f := range fields {
		if m[i], err = strconv.Atoi(strings.TrimSpace(f)); err != nil {
			return surround.Placement{}, fmt.Errorf("bad coefficient %q in %q", f, l)
		}
	}
	return surround.Placement{Level: k, T: geom.FromCoefficients(m)}, nil
}

// ReadPatches reads every patch from r.
func ReadPatches(r io.Reader) ([]surround.Patch, error) {
	pr := NewReader(r)
	var ps []surround.Patch
	for {
		p, err := pr.Next()
		if errors.Is(err, io.EOF) {
			return ps, nil
		}
		if err != nil {
			return ps, err
		}
		ps = append(ps, p)
	}
}

// ReadAll reads every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	ps, err := ReadPatches(r)
	recs := make([]Record, len(ps))
	for i, p := range ps {
		recs[i] = Record(p.Levels())
	}
	return recs, err
}
