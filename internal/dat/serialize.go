package dat

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SaveText writes the double array to w in the text format mandated by
// spec.md §6: two lines, each a comma-separated decimal integer list; line
// 1 is base, line 2 is check. This format is the interoperability contract
// with artifacts produced by other tools, so its layout is fixed.
func (d *DoubleArray) SaveText(w io.Writer) error {
	if !d.built {
		return ErrNotBuilt
	}
	bw := bufio.NewWriter(w)
	if err := writeIntLine(bw, d.base); err != nil {
		return err
	}
	if err := writeIntLine(bw, d.check); err != nil {
		return err
	}
	return bw.Flush()
}

func writeIntLine(w *bufio.Writer, values []int32) error {
	for i, v := range values {
		if i > 0 {
			if _, err := w.WriteString(","); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.FormatInt(int64(v), 10)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// LoadText reads a double array previously written by SaveText.
func LoadText(r io.Reader) (*DoubleArray, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)

	base, err := readIntLine(sc)
	if err != nil {
		return nil, &Error{Kind: Malformed, Message: "reading base line", Err: err}
	}
	check, err := readIntLine(sc)
	if err != nil {
		return nil, &Error{Kind: Malformed, Message: "reading check line", Err: err}
	}
	if len(base) != len(check) {
		return nil, &Error{Kind: DimensionMismatch, Message: fmt.Sprintf("base has %d cells, check has %d", len(base), len(check))}
	}

	d := &DoubleArray{
		base:       base,
		check:      check,
		blockSize:  defaultBlockSize,
		startPoint: root,
		built:      true,
	}
	return d, nil
}

func readIntLine(sc *bufio.Scanner) ([]int32, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.ErrUnexpectedEOF
	}
	line := strings.TrimSpace(sc.Text())
	if line == "" {
		return []int32{}, nil
	}
	fields := strings.Split(line, ",")
	out := make([]int32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w", i, f, err)
		}
		out[i] = int32(v)
	}
	return out, nil
}

// Save writes the text-format artifact to path, per spec.md §4.1's save/load
// operation pair.
func (d *DoubleArray) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	if err := d.SaveText(f); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// Load reads a text-format artifact from path.
func Load(path string) (*DoubleArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	d, err := LoadText(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return d, nil
}

// gobExport mirrors DoubleArray's unexported fields for encoding/gob, which
// cannot see unexported fields directly. Grounded on
// colin0000007-darts-go's DATExport: a gob-friendly exported mirror struct
// is the idiomatic way to serialize a type that otherwise keeps its fields
// private by design.
type gobExport struct {
	Base       []int32
	Check      []int32
	BlockSize  int32
	StartPoint int32
	Stats      Stats
}

// SaveGob writes a compact binary artifact using encoding/gob. This is an
// ambient alternative to the mandated text format (spec.md §6 requires the
// text mode for interoperability but permits a compact binary layout
// alongside it).
func (d *DoubleArray) SaveGob(w io.Writer) error {
	if !d.built {
		return ErrNotBuilt
	}
	exp := gobExport{
		Base:       d.base,
		Check:      d.check,
		BlockSize:  d.blockSize,
		StartPoint: d.startPoint,
		Stats:      d.stats,
	}
	return gob.NewEncoder(w).Encode(&exp)
}

// LoadGob reads a double array previously written by SaveGob.
func LoadGob(r io.Reader) (*DoubleArray, error) {
	var exp gobExport
	if err := gob.NewDecoder(r).Decode(&exp); err != nil {
		return nil, &Error{Kind: Malformed, Message: "decoding gob artifact", Err: err}
	}
	if len(exp.Base) != len(exp.Check) {
		return nil, &Error{Kind: DimensionMismatch, Message: fmt.Sprintf("base has %d cells, check has %d", len(exp.Base), len(exp.Check))}
	}
	return &DoubleArray{
		base:       exp.Base,
		check:      exp.Check,
		blockSize:  exp.BlockSize,
		startPoint: exp.StartPoint,
		stats:      exp.Stats,
		built:      true,
	}, nil
}
