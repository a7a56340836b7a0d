package dataset

import (
	"strings"

	"github.com/bryanCE/dnsgen/internal/records"
)

// Stats summarizes a dataset
type Stats struct {
	Total       int                        `json:"total" yaml:"total"`
	Roots       int                        `json:"roots" yaml:"roots"`
	Secondaries int                        `json:"secondaries" yaml:"secondaries"`
	ByType      map[records.RecordType]int `json:"by_type" yaml:"by_type"`
}

// RootOf returns the root domain a record was generated for. Secondary www
// and mail A records report ok == false.
func RootOf(rec records.Record) (root string, ok bool) {
	if c, isCNAME := rec.(records.CNAME); isCNAME {
		return c.Target, true
	}
	name := rec.Name()
	if rec.Type() == records.RecordTypeA &&
		(strings.HasPrefix(name, "www.") || strings.HasPrefix(name, "mail.")) {
		return "", false
	}
	return name, true
}

// Summarize counts records by type and by role
func Summarize(c records.Collection) Stats {
	stats := Stats{
		Total:  len(c),
		ByType: c.CountByType(),
	}
	for _, rec := range c {
		if _, ok := RootOf(rec); ok {
			stats.Roots++
		} else {
			stats.Secondaries++
		}
	}
	return stats
}

// Percent returns the share of records of type rt, in percent
func (s Stats) Percent(rt records.RecordType) float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.ByType[rt]) / float64(s.Total)
}
