package checker

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/namoa/criteria"
)

// lineReader yields non-blank lines with their numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line, or io.EOF.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		if f := strings.Fields(lr.sc.Text()); len(f) > 0 {
			return f, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

// comment consumes the first line verbatim, blank or not.
func (lr *lineReader) comment() error {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return err
		}
		return fmt.Errorf("%w: empty input", ErrMalformed)
	}
	lr.line++

	return nil
}

func (lr *lineReader) ints(n int) ([]int, error) {
	f, err := lr.next()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: line %d: unexpected end of input", ErrMalformed, lr.line)
	}
	if err != nil {
		return nil, err
	}
	if len(f) != n {
		return nil, fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformed, lr.line, n, len(f))
	}
	out := make([]int, n)
	for i, s := range f {
		if out[i], err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lr.line, err)
		}
	}

	return out, nil
}

// maxPrealloc caps capacity hints taken from file headers.
const maxPrealloc = 1 << 12

// count reads a one-field non-negative count line.
func (lr *lineReader) count(what string) (int, error) {
	n, err := lr.ints(1)
	if err != nil {
		return 0, err
	}
	if n[0] < 0 {
		return 0, fmt.Errorf("%w: line %d: negative %s %d", ErrMalformed, lr.line, what, n[0])
	}

	return n[0], nil
}

// ParseQueries reads a grid queries file for k criteria.
func ParseQueries(r io.Reader, k int) ([]Query, error) {
	lr := newLineReader(r)
	if err := lr.comment(); err != nil {
		return nil, err
	}
	nc, err := lr.ints(1)
	if err != nil {
		return nil, err
	}
	if nc[0] != k {
		return nil, fmt.Errorf("%w: file has %d, want %d", ErrCriteriaMismatch, nc[0], k)
	}
	np, err := lr.count("problem count")
	if err != nil {
		return nil, err
	}

	out := make([]Query, 0, min(np, maxPrealloc))
	for i := 0; i < np; i++ {
		v, err := lr.ints(5)
		if err != nil {
			return nil, err
		}
		out = append(out, Query{ID: v[0], Source: Cell{v[1], v[2]}, Target: Cell{v[3], v[4]}})
	}

	return out, nil
}

// ParseSolutions reads a solutions file for k criteria until end of input.
func ParseSolutions(r io.Reader, k int) (Solutions, error) {
	lr := newLineReader(r)
	if err := lr.comment(); err != nil {
		return nil, err
	}

	out := make(Solutions)
	for {
		f, err := lr.next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"<id> <k>\"", ErrMalformed, lr.line)
		}
		id, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lr.line, err)
		}
		if fk, err := strconv.Atoi(f[1]); err != nil || fk != k {
			return nil, fmt.Errorf("%w: problem %d declares %q, want %d", ErrCriteriaMismatch, id, f[1], k)
		}
		n, err := lr.count("solution count")
		if err != nil {
			return nil, err
		}
		sols := make([]criteria.Vector, 0, min(n, maxPrealloc))
		for i := 0; i < n; i++ {
			vals, err := lr.ints(k)
			if err != nil {
				return nil, err
			}
			v := make(criteria.Vector, k)
			for j, x := range vals {
				v[j] = criteria.Weight(x)
			}
			sols = append(sols, v)
		}
		out[id] = sols
	}
}
