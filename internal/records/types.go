// =============================================================================
// internal/records/types.go - Core DNS record data structures
// =============================================================================
package records

// RecordType represents the DNS record types the generator produces
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypeTXT   RecordType = "TXT"
)

// AllTypes lists every supported record type in canonical order
var AllTypes = []RecordType{
	RecordTypeA,
	RecordTypeAAAA,
	RecordTypeCNAME,
	RecordTypeMX,
	RecordTypeNS,
	RecordTypeTXT,
}

// Valid reports whether t is one of the supported record types
func (t RecordType) Valid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Record is a single synthetic resource record. The set of implementations is
// closed: A, AAAA, CNAME, MX, NS and TXT.
type Record interface {
	Name() string
	Type() RecordType
	record()
}

// A maps a name to an IPv4 address
type A struct {
	Owner string
	IP    string
}

// AAAA maps a name to an IPv6 address
type AAAA struct {
	Owner string
	IP    string
}

// CNAME aliases Owner to Target
type CNAME struct {
	Owner  string
	Target string
}

// MX names the mail exchanger for Owner
type MX struct {
	Owner    string
	Target   string
	Priority int
}

// NS names an authoritative nameserver for Owner
type NS struct {
	Owner  string
	Target string
}

// TXT carries free-form text for Owner
type TXT struct {
	Owner string
	Text  string
}

func (r A) Name() string { return r.Owner }
func (r AAAA) Name() string { return r.Owner }
func (r CNAME) Name() string { return r.Owner }
func (r MX) Name() string { return r.Owner }
func (r NS) Name() string { return r.Owner }
func (r TXT) Name() string { return r.Owner }

func (A) Type() RecordType { return RecordTypeA }
func (AAAA) Type() RecordType { return RecordTypeAAAA }
func (CNAME) Type() RecordType { return RecordTypeCNAME }
func (MX) Type() RecordType { return RecordTypeMX }
func (NS) Type() RecordType { return RecordTypeNS }
func (TXT) Type() RecordType { return RecordTypeTXT }

func (A) record() {}
func (AAAA) record() {}
func (CNAME) record() {}
func (MX) record() {}
func (NS) record() {}
func (TXT) record() {}

// Collection is the ordered output of one generator run
type Collection []Record

// CountByType returns how many records of each type the collection holds
func (c Collection) CountByType() map[RecordType]int {
	counts := make(map[RecordType]int, len(AllTypes))
	for _, rec := range c {
		counts[rec.Type()]++
	}
	return counts
}
