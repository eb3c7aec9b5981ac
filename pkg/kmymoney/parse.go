package kmymoney

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Parse decodes a KMyMoney XML document from r.
func Parse(r io.Reader) (*File, error) {
	dec := xml.NewDecoder(r)
	f := &File{}
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("failed to decode KMyMoney XML: %w", err)
	}
	return f, nil
}

// Load reads and decodes a KMyMoney XML document from path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}
