/*package catio reads column-oriented text catalogs, such as particle initial
condition files:

   # x y z vx vy vz
   1.0 2.0 3.0 0.1 0.0 -0.2
   ...

Columns are separated by runs of the Separator character (or any whitespace
when Separator is ' ') and everything after a Comment character is ignored.*/
package catio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// TextConfig contains information neccessary for parsing text catalogs.
type TextConfig struct {
	Separator   byte           // Character used to separated fields
	Comment     byte           // Character used to start comments.
	SkipLines   int            // Number of lines to skip at the start of file.
	ColumnNames map[string]int // Map from column names to column indices.
	MaxLineSize int            // Largest possible line size.
}

// DefaultConfig is a TextConfig instance which can read whitespace-separated
// files with '#' comments.
var DefaultConfig = TextConfig{
	Separator:   ' ',
	Comment:     '#',
	SkipLines:   0,
	ColumnNames: map[string]int{},
	MaxLineSize: 1 << 20,
}

// Reader allows the user to access columns of a text catalog.
type Reader interface {
	// ReadFloat64s reads the given columns as float64s. columns must be
	// []int or []string, in which case ColumnNames is used to look up
	// indices.
	ReadFloat64s(columns interface{}) ([][]float64, error)
}

type textReader struct {
	text   []byte
	name   string
	config TextConfig
}

// TextFile creates a Reader for a text file on disk.
func TextFile(fname string, config ...TextConfig) (Reader, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("The catalog %s cannot be opened: %s",
			fname, err.Error())
	}
	defer f.Close()

	text, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("The catalog %s cannot be read: %s",
			fname, err.Error())
	}

	rd := Text(text, config...).(*textReader)
	rd.name = fname
	return rd, nil
}

// Text creates a Reader for a block of text.
func Text(text []byte, config ...TextConfig) Reader {
	rd := &textReader{text: text, name: "<text>", config: DefaultConfig}
	if len(config) > 0 {
		rd.config = config[0]
	}
	return rd
}

// columnIndices converts the generic columns variable into integer indices.
func (t *textReader) columnIndices(columns interface{}) ([]int, error) {
	switch cols := columns.(type) {
	case []int:
		for _, col := range cols {
			if col < 0 {
				return nil, fmt.Errorf("Column index %d is negative.", col)
			}
		}
		return cols, nil
	case []string:
		idxs := make([]int, len(cols))
		for i := range cols {
			idx, ok := t.config.ColumnNames[cols[i]]
			if !ok {
				return nil, fmt.Errorf("The column name '%s' is not "+
					"recognized.", cols[i])
			}
			idxs[i] = idx
		}
		return idxs, nil
	}
	return nil, fmt.Errorf("Columns argument must be []int or []string.")
}

// fields calls f on the fields of every non-empty, uncommented line.
func (t *textReader) fields(f func(line int, tok []string) error) error {
	sc := bufio.NewScanner(bytes.NewReader(t.text))
	sc.Buffer(make([]byte, 0, 4096), t.config.MaxLineSize)

	line := 0
	for sc.Scan() {
		line++
		if line <= t.config.SkipLines {
			continue
		}

		text := sc.Text()
		if i := strings.IndexByte(text, t.config.Comment); i >= 0 {
			text = text[:i]
		}

		var tok []string
		if t.config.Separator == ' ' {
			tok = strings.Fields(text)
		} else {
			if strings.TrimSpace(text) == "" {
				continue
			}
			tok = strings.Split(text, string(t.config.Separator))
			for i := range tok {
				tok[i] = strings.TrimSpace(tok[i])
			}
		}
		if len(tok) == 0 {
			continue
		}

		if err := f(line, tok); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("Error while scanning %s: %s", t.name, err.Error())
	}
	return nil
}

func (t *textReader) ReadFloat64s(columns interface{}) ([][]float64, error) {
	idx, err := t.columnIndices(columns)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(idx))

	err = t.fields(func(line int, tok []string) error {
		for i, col := range idx {
			if col >= len(tok) {
				return fmt.Errorf("Line %d of %s has %d columns, but column "+
					"%d was requested.", line, t.name, len(tok), col)
			}
			x, err := strconv.ParseFloat(tok[col], 64)
			if err != nil {
				return fmt.Errorf("Cannot parse column %d of line %d of %s, "+
					"'%s', as a float.", col, line, t.name, tok[col])
			}
			out[i] = append(out[i], x)
		}
		return nil
	})

	return out, err
}
