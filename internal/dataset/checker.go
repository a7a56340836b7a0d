// =============================================================================
// internal/dataset/checker.go - Dataset consistency and validation
// =============================================================================
package dataset

import (
	"fmt"
	"net/netip"
	"regexp"
	"strings"

	"github.com/bryanCE/dnsgen/internal/records"
	"github.com/miekg/dns"
)

// Severity ranks how badly an issue breaks consumers of the dataset
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Issue kinds reported by the checker
const (
	IssueInvalidName     = "invalid_name"
	IssueInvalidAddress  = "invalid_address"
	IssueLegacyIPv6      = "legacy_ipv6_format"
	IssueInvalidTarget   = "invalid_target"
	IssueCNAMEShape      = "cname_shape"
	IssueMXPriority      = "mx_priority"
	IssueNSTarget        = "ns_target"
	IssueEmptyText       = "empty_txt"
	IssueLongText        = "txt_too_long"
	IssueDuplicateRoot   = "duplicate_root"
	IssueOrphanSecondary = "orphan_secondary"
)

// Issue represents a single problem found in a dataset
type Issue struct {
	Index       int                `json:"index" yaml:"index"`
	Name        string             `json:"name" yaml:"name"`
	RecordType  records.RecordType `json:"record_type" yaml:"record_type"`
	Kind        string             `json:"kind" yaml:"kind"`
	Description string             `json:"description" yaml:"description"`
	Severity    Severity           `json:"severity" yaml:"severity"`
}

var (
	legacyIPv6 = regexp.MustCompile(`^2001:db8:::([0-9a-f]{4}:){5}[0-9a-f]{4}$`)
	nsTarget   = regexp.MustCompile(`^ns[123]\.(.+)$`)
)

var validPriorities = map[int]bool{10: true, 20: true, 30: true}

// Checker validates generated datasets
type Checker struct {
	tld string
}

// NewChecker creates a checker. A non-empty tld additionally requires every
// name to end in that label.
func NewChecker(tld string) *Checker {
	return &Checker{tld: strings.ToLower(strings.TrimPrefix(tld, "."))}
}

// Check runs every per-record and cross-record check over c
func (ch *Checker) Check(c records.Collection) []Issue {
	var issues []Issue

	roots := make(map[string]int)
	primaryA := make(map[string]bool)

	for i, rec := range c {
		issues = append(issues, ch.checkRecord(i, rec)...)

		root, isPrimary := RootOf(rec)
		if !isPrimary {
			owner := strings.TrimPrefix(strings.TrimPrefix(rec.Name(), "www."), "mail.")
			if !primaryA[owner] {
				issues = append(issues, newIssue(i, rec, IssueOrphanSecondary,
					fmt.Sprintf("no preceding A record for root %s", owner)))
			}
			continue
		}

		if first, dup := roots[root]; dup {
			issues = append(issues, newIssue(i, rec, IssueDuplicateRoot,
				fmt.Sprintf("root %s already used by record %d", root, first)))
		} else {
			roots[root] = i
		}
		if rec.Type() == records.RecordTypeA {
			primaryA[root] = true
		}
	}

	return issues
}

// Check validates c without a TLD constraint
func Check(c records.Collection) []Issue {
	return NewChecker("").Check(c)
}

// HasSeverity reports whether any issue is at least as severe as min
func HasSeverity(issues []Issue, min Severity) bool {
	for _, issue := range issues {
		if rank(issue.Severity) >= rank(min) {
			return true
		}
	}
	return false
}

func (ch *Checker) checkRecord(i int, rec records.Record) []Issue {
	var issues []Issue

	if !isDomainName(rec.Name()) {
		issues = append(issues, newIssue(i, rec, IssueInvalidName,
			fmt.Sprintf("%q is not a valid domain name", rec.Name())))
	} else if ch.tld != "" && !strings.HasSuffix(rec.Name(), "."+ch.tld) {
		issues = append(issues, newIssue(i, rec, IssueInvalidName,
			fmt.Sprintf("%s is outside .%s", rec.Name(), ch.tld)))
	}

	switch r := rec.(type) {
	case records.A:
		if addr, err := netip.ParseAddr(r.IP); err != nil || !addr.Is4() {
			issues = append(issues, newIssue(i, rec, IssueInvalidAddress,
				fmt.Sprintf("%q is not an IPv4 address", r.IP)))
		}
	case records.AAAA:
		addr, err := netip.ParseAddr(r.IP)
		switch {
		case err == nil && addr.Is6() && !addr.Is4In6():
		case legacyIPv6.MatchString(r.IP):
			issues = append(issues, newIssue(i, rec, IssueLegacyIPv6,
				fmt.Sprintf("%s uses the legacy triple-colon shape", r.IP)))
		default:
			issues = append(issues, newIssue(i, rec, IssueInvalidAddress,
				fmt.Sprintf("%q is not an IPv6 address", r.IP)))
		}
	case records.CNAME:
		if !isDomainName(r.Target) {
			issues = append(issues, newIssue(i, rec, IssueInvalidTarget,
				fmt.Sprintf("%q is not a valid target", r.Target)))
		} else if r.Owner != "www."+r.Target {
			issues = append(issues, newIssue(i, rec, IssueCNAMEShape,
				fmt.Sprintf("alias %s does not point at its parent %s", r.Owner, r.Target)))
		}
	case records.MX:
		if !validPriorities[r.Priority] {
			issues = append(issues, newIssue(i, rec, IssueMXPriority,
				fmt.Sprintf("priority %d not in {10, 20, 30}", r.Priority)))
		}
		if !isDomainName(r.Target) {
			issues = append(issues, newIssue(i, rec, IssueInvalidTarget,
				fmt.Sprintf("%q is not a valid mail exchanger", r.Target)))
		}
	case records.NS:
		m := nsTarget.FindStringSubmatch(r.Target)
		if m == nil || m[1] != r.Owner {
			issues = append(issues, newIssue(i, rec, IssueNSTarget,
				fmt.Sprintf("%s does not match ns{1,2,3}.%s", r.Target, r.Owner)))
		}
	case records.TXT:
		switch {
		case strings.TrimSpace(r.Text) == "":
			issues = append(issues, newIssue(i, rec, IssueEmptyText, "TXT record has no text"))
		case len(r.Text) > 255:
			issues = append(issues, newIssue(i, rec, IssueLongText,
				fmt.Sprintf("text is %d bytes, longer than one character-string", len(r.Text))))
		}
	}

	return issues
}

func newIssue(i int, rec records.Record, kind, description string) Issue {
	return Issue{
		Index:       i,
		Name:        rec.Name(),
		RecordType:  rec.Type(),
		Kind:        kind,
		Description: description,
		Severity:    determineSeverity(kind),
	}
}

// determineSeverity determines the severity of an issue based on its kind
func determineSeverity(kind string) Severity {
	switch kind {
	case IssueInvalidName, IssueInvalidAddress, IssueInvalidTarget, IssueEmptyText, IssueDuplicateRoot:
		return SeverityHigh
	case IssueMXPriority, IssueNSTarget, IssueLongText:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func rank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

func isDomainName(name string) bool {
	if name == "" || strings.HasSuffix(name, ".") {
		return false
	}
	_, ok := dns.IsDomainName(name)
	return ok
}
