package output_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bryanCE/dnsgen/internal/dataset"
	"github.com/bryanCE/dnsgen/internal/output"
	"github.com/bryanCE/dnsgen/internal/records"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() records.Collection {
	return records.Collection{
		records.A{Owner: "techdev.edu", IP: "192.0.2.10"},
		records.AAAA{Owner: "kumar.edu", IP: "2001:db8:0001:0002:0003:0004:0005:0006"},
		records.CNAME{Owner: "www.cloud.edu", Target: "cloud.edu"},
		records.MX{Owner: "shop.edu", Target: "mail.shop.edu", Priority: 20},
		records.NS{Owner: "labs.edu", Target: "ns2.labs.edu"},
		records.TXT{Owner: "pay.edu", Text: "v=spf1 include:spf.pay.edu ~all"},
	}
}

func render(t *testing.T, format output.OutputFormat, c records.Collection) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(format).FormatRecords(c, &buf))
	return buf.String()
}

// =============================================================================
// Format Parsing Tests
// =============================================================================

func TestParseFormat(t *testing.T) {
	for _, f := range output.Formats {
		parsed, err := output.ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	parsed, err := output.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, parsed)

	_, err = output.ParseFormat("xml")
	assert.Error(t, err)
}

// =============================================================================
// Record Format Tests
// =============================================================================

func TestFormatRecords_JSON(t *testing.T) {
	out := render(t, output.FormatJSON, sample()[3:4])

	expected := `[
  {
    "name": "shop.edu",
    "type": "MX",
    "target": "mail.shop.edu",
    "priority": 20
  }
]
`
	assert.Equal(t, expected, out)
}

func TestFormatRecords_JSONKeepsTextLiteral(t *testing.T) {
	c := records.Collection{records.TXT{Owner: "a.edu", Text: "<b>&café</b>"}}
	out := render(t, output.FormatJSON, c)
	assert.Contains(t, out, `"text": "<b>&café</b>"`)
}

func TestFormatRecords_YAML(t *testing.T) {
	out := render(t, output.FormatYAML, sample()[:1])
	assert.Equal(t, "- name: techdev.edu\n  type: A\n  ip: 192.0.2.10\n", out)
}

func TestFormatRecords_CSV(t *testing.T) {
	out := render(t, output.FormatCSV, sample())

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"name", "type", "ip", "target", "priority", "text"}, rows[0])
	assert.Equal(t, []string{"shop.edu", "MX", "", "mail.shop.edu", "20", ""}, rows[4])
	assert.Equal(t, []string{"pay.edu", "TXT", "", "", "", "v=spf1 include:spf.pay.edu ~all"}, rows[6])
}

func TestFormatRecords_Zone(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(output.FormatZone).WithTTL(300).FormatRecords(sample(), &buf))

	assert.True(t, strings.HasPrefix(buf.String(), "$TTL 300\n"))

	zp := dns.NewZoneParser(strings.NewReader(buf.String()), "", "")
	n := 0
	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		rec, err := records.FromRR(rr)
		require.NoError(t, err)
		assert.Equal(t, sample()[n].Name(), rec.Name())
		assert.Equal(t, uint32(300), rr.Header().Ttl)
		n++
	}
	require.NoError(t, zp.Err())
	assert.Equal(t, len(sample()), n)
}

func TestFormatRecords_ZoneRejectsLegacyIPv6(t *testing.T) {
	c := records.Collection{records.AAAA{Owner: "a.edu", IP: "2001:db8:::0001:0002:0003:0004:0005:0006"}}
	err := output.NewFormatter(output.FormatZone).FormatRecords(c, io.Discard)
	assert.ErrorIs(t, err, records.ErrInvalidAddress)
}

func TestFormatRecords_Table(t *testing.T) {
	out := render(t, output.FormatTable, sample())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3+len(sample())+1)
	width := len([]rune(lines[0]))
	for _, line := range lines {
		assert.Equal(t, width, len([]rune(line)), "ragged line %q", line)
	}
	assert.Contains(t, out, "mail.shop.edu")
	assert.Equal(t, "No records.\n", render(t, output.FormatTable, nil))
}

// =============================================================================
// Issue and Stats Format Tests
// =============================================================================

func TestFormatIssues(t *testing.T) {
	issues := []dataset.Issue{{
		Index: 3, Name: "a.edu", RecordType: records.RecordTypeMX,
		Kind: dataset.IssueMXPriority, Description: "priority 5 not in {10, 20, 30}", Severity: dataset.SeverityMedium,
	}}

	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(output.FormatTable).FormatIssues(issues, &buf))
	assert.Contains(t, buf.String(), "MEDIUM")
	assert.Contains(t, buf.String(), "priority 5")

	buf.Reset()
	require.NoError(t, output.NewFormatter(output.FormatJSON).FormatIssues(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, output.NewFormatter(output.FormatTable).FormatIssues(nil, &buf))
	assert.Contains(t, buf.String(), "No dataset issues")
}

func TestFormatStats(t *testing.T) {
	stats := dataset.Summarize(sample())

	var buf bytes.Buffer
	require.NoError(t, output.NewFormatter(output.FormatTable).FormatStats(stats, &buf))
	assert.Contains(t, buf.String(), "16.7%")

	buf.Reset()
	require.NoError(t, output.NewFormatter(output.FormatCSV).FormatStats(stats, &buf))
	assert.Contains(t, buf.String(), "AAAA,1,16.67")
}

// =============================================================================
// File Writer Tests
// =============================================================================

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generate.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer"), 0o644))

	err := output.WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "fresh")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestWriteFile_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := output.WriteFile(filepath.Join(t.TempDir(), "x.json"), func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = output.WriteFile(filepath.Join(t.TempDir(), "missing", "x.json"), func(io.Writer) error { return nil })
	assert.Error(t, err)
}
