// =============================================================================
// internal/dataset/loader.go - Reading generated datasets back from disk
// =============================================================================
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bryanCE/dnsgen/internal/records"
	"github.com/miekg/dns"
)

// Load reads a dataset file. The decoder is chosen by extension: .yaml/.yml,
// .zone/.db (master file syntax), anything else is treated as JSON.
func Load(filename string) (records.Collection, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return records.DecodeYAML(reader)
	case ".zone", ".db":
		return loadZone(reader, filename)
	default:
		return records.DecodeJSON(reader)
	}
}

func loadZone(reader *bufio.Reader, filename string) (records.Collection, error) {
	var c records.Collection

	zp := dns.NewZoneParser(reader, "", filename)
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		rec, err := records.FromRR(rr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		c = append(c, rec)
	}
	if err := zp.Err(); err != nil {
		return nil, fmt.Errorf("error reading zone: %w", err)
	}

	if len(c) == 0 {
		return nil, fmt.Errorf("no records found in %s", filename)
	}
	return c, nil
}
