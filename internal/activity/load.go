package activity

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// ErrEmptyInput indicates an input that holds no activity record.
var ErrEmptyInput = errors.New("no activity record found")

// Decode reads every YAML document from r as a Record. JSON input is valid
// YAML and decodes the same way. Numeric and yes/no answers never cause an
// error; structural problems (a list where a section is expected) do.
func Decode(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	var records []Record
	for {
		var rec Record
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding activity record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}

// Load reads the records stored at path, or stdin when path is "-". A nil
// stdin selects os.Stdin.
func Load(path string, stdin io.Reader) ([]Record, error) {
	if path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		records, err := Decode(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return records, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening activity file: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}
