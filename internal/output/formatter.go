// =============================================================================
// internal/output/formatter.go - Output formatting for different formats
// =============================================================================
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bryanCE/dnsgen/internal/dataset"
	"github.com/bryanCE/dnsgen/internal/records"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatCSV   OutputFormat = "csv"
	FormatZone  OutputFormat = "zone"
	FormatTable OutputFormat = "table"
)

// Formats lists every supported output format
var Formats = []OutputFormat{FormatJSON, FormatYAML, FormatCSV, FormatZone, FormatTable}

// ParseFormat converts a user-supplied format name
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "zone":
		return FormatZone, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml, csv, zone or table)", s)
	}
}

// Formatter handles output formatting for different formats
type Formatter struct {
	format OutputFormat
	ttl    uint32
}

// NewFormatter creates a new formatter with the specified format
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format, ttl: 3600}
}

// WithTTL sets the TTL written by the zone format
func (f *Formatter) WithTTL(ttl uint32) *Formatter {
	f.ttl = ttl
	return f
}

// FormatRecords writes a record collection
func (f *Formatter) FormatRecords(c records.Collection, writer io.Writer) error {
	switch f.format {
	case FormatJSON:
		return writeJSON(c, writer)
	case FormatYAML:
		return writeYAML(c, writer)
	case FormatCSV:
		return f.formatRecordsCSV(c, writer)
	case FormatZone:
		return f.formatRecordsZone(c, writer)
	default:
		return f.formatRecordsTable(c, writer)
	}
}

// FormatIssues writes the result of a dataset check
func (f *Formatter) FormatIssues(issues []dataset.Issue, writer io.Writer) error {
	if issues == nil {
		issues = []dataset.Issue{}
	}
	switch f.format {
	case FormatJSON:
		return writeJSON(issues, writer)
	case FormatYAML:
		return writeYAML(issues, writer)
	case FormatCSV:
		return f.formatIssuesCSV(issues, writer)
	default:
		return f.formatIssuesTable(issues, writer)
	}
}

// FormatStats writes a dataset summary
func (f *Formatter) FormatStats(stats dataset.Stats, writer io.Writer) error {
	switch f.format {
	case FormatJSON:
		return writeJSON(stats, writer)
	case FormatYAML:
		return writeYAML(stats, writer)
	case FormatCSV:
		return f.formatStatsCSV(stats, writer)
	default:
		return f.formatStatsTable(stats, writer)
	}
}

// Table formatting methods
func (f *Formatter) formatRecordsTable(c records.Collection, writer io.Writer) error {
	if len(c) == 0 {
		fmt.Fprintf(writer, "No records.\n")
		return nil
	}

	table := NewTable([]string{"Name", "Type", "Value", "Priority"})
	for _, rec := range c {
		value, priority := recordValue(rec)
		table.AddRow([]string{
			truncateString(rec.Name(), 40),
			string(rec.Type()),
			truncateString(value, 60),
			priority,
		})
	}

	return table.Render(writer)
}

func (f *Formatter) formatIssuesTable(issues []dataset.Issue, writer io.Writer) error {
	if len(issues) == 0 {
		fmt.Fprintf(writer, "✅ No dataset issues found!\n")
		return nil
	}

	fmt.Fprintf(writer, "🔍 Dataset Issues Found: %d\n\n", len(issues))

	table := NewTable([]string{"Severity", "Record", "Name", "Type", "Description"})
	for _, issue := range issues {
		table.AddRow([]string{
			severityLabel(issue.Severity),
			strconv.Itoa(issue.Index),
			truncateString(issue.Name, 40),
			string(issue.RecordType),
			truncateString(issue.Description, 60),
		})
	}

	return table.Render(writer)
}

func (f *Formatter) formatStatsTable(stats dataset.Stats, writer io.Writer) error {
	fmt.Fprintf(writer, "📊 %d records, %d roots, %d secondary records\n\n", stats.Total, stats.Roots, stats.Secondaries)

	table := NewTable([]string{"Type", "Count", "Share"})
	for _, rt := range records.AllTypes {
		table.AddRow([]string{
			string(rt),
			strconv.Itoa(stats.ByType[rt]),
			fmt.Sprintf("%.1f%%", stats.Percent(rt)),
		})
	}

	return table.Render(writer)
}

// Zone formatting
func (f *Formatter) formatRecordsZone(c records.Collection, writer io.Writer) error {
	rrs, err := c.RRs(f.ttl)
	if err != nil {
		return fmt.Errorf("cannot render zone: %w", err)
	}

	if _, err := fmt.Fprintf(writer, "$TTL %d\n", f.ttl); err != nil {
		return err
	}
	for _, rr := range rrs {
		if _, err := fmt.Fprintln(writer, rr.String()); err != nil {
			return err
		}
	}
	return nil
}

// CSV formatting methods
func (f *Formatter) formatRecordsCSV(c records.Collection, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"name", "type", "ip", "target", "priority", "text"}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, rec := range c {
		row := make([]string, len(header))
		row[0] = rec.Name()
		row[1] = string(rec.Type())
		switch r := rec.(type) {
		case records.A:
			row[2] = r.IP
		case records.AAAA:
			row[2] = r.IP
		case records.CNAME:
			row[3] = r.Target
		case records.MX:
			row[3] = r.Target
			row[4] = strconv.Itoa(r.Priority)
		case records.NS:
			row[3] = r.Target
		case records.TXT:
			row[5] = r.Text
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (f *Formatter) formatIssuesCSV(issues []dataset.Issue, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"Index", "Name", "RecordType", "Kind", "Severity", "Description"}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, issue := range issues {
		row := []string{
			strconv.Itoa(issue.Index),
			issue.Name,
			string(issue.RecordType),
			issue.Kind,
			string(issue.Severity),
			issue.Description,
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (f *Formatter) formatStatsCSV(stats dataset.Stats, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write([]string{"Type", "Count", "Percent"}); err != nil {
		return err
	}
	for _, rt := range records.AllTypes {
		row := []string{string(rt), strconv.Itoa(stats.ByType[rt]), fmt.Sprintf("%.2f", stats.Percent(rt))}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// JSON and YAML formatting
func writeJSON(v interface{}, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(v interface{}, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// Utility functions
func recordValue(rec records.Record) (value, priority string) {
	switch r := rec.(type) {
	case records.A:
		return r.IP, ""
	case records.AAAA:
		return r.IP, ""
	case records.CNAME:
		return r.Target, ""
	case records.MX:
		return r.Target, strconv.Itoa(r.Priority)
	case records.NS:
		return r.Target, ""
	case records.TXT:
		return r.Text, ""
	}
	return "", ""
}

func severityLabel(s dataset.Severity) string {
	switch s {
	case dataset.SeverityHigh:
		return color.RedString("HIGH")
	case dataset.SeverityMedium:
		return color.YellowString("MEDIUM")
	default:
		return color.GreenString("LOW")
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
