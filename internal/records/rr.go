// =============================================================================
// internal/records/rr.go - Conversion between records and miekg/dns RRs
// =============================================================================
package records

import (
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"
)

// ToRR converts a record into its miekg/dns resource record with the given TTL
func ToRR(rec Record, ttl uint32) (dns.RR, error) {
	hdr := dns.RR_Header{
		Name:   dns.Fqdn(rec.Name()),
		Rrtype: TypeCode(rec.Type()),
		Class:  dns.ClassINET,
		Ttl:    ttl,
	}

	switch r := rec.(type) {
	case A:
		ip := net.ParseIP(r.IP).To4()
		if ip == nil {
			return nil, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidAddress, r.IP)
		}
		return &dns.A{Hdr: hdr, A: ip}, nil
	case AAAA:
		ip := net.ParseIP(r.IP)
		if ip == nil || ip.To4() != nil {
			return nil, fmt.Errorf("%w: %q is not an IPv6 address", ErrInvalidAddress, r.IP)
		}
		return &dns.AAAA{Hdr: hdr, AAAA: ip}, nil
	case CNAME:
		return &dns.CNAME{Hdr: hdr, Target: dns.Fqdn(r.Target)}, nil
	case MX:
		return &dns.MX{Hdr: hdr, Preference: uint16(r.Priority), Mx: dns.Fqdn(r.Target)}, nil
	case NS:
		return &dns.NS{Hdr: hdr, Ns: dns.Fqdn(r.Target)}, nil
	case TXT:
		return &dns.TXT{Hdr: hdr, Txt: []string{r.Text}}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownType, rec)
	}
}

// FromRR converts a parsed resource record back into a record. Names lose
// their trailing dot so round-tripped zone data matches generated documents.
func FromRR(rr dns.RR) (Record, error) {
	name := unFqdn(rr.Header().Name)

	switch r := rr.(type) {
	case *dns.A:
		return A{Owner: name, IP: r.A.String()}, nil
	case *dns.AAAA:
		return AAAA{Owner: name, IP: r.AAAA.String()}, nil
	case *dns.CNAME:
		return CNAME{Owner: name, Target: unFqdn(r.Target)}, nil
	case *dns.MX:
		return MX{Owner: name, Target: unFqdn(r.Mx), Priority: int(r.Preference)}, nil
	case *dns.NS:
		return NS{Owner: name, Target: unFqdn(r.Ns)}, nil
	case *dns.TXT:
		return TXT{Owner: name, Text: strings.Join(r.Txt, "")}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, dns.TypeToString[rr.Header().Rrtype])
	}
}

// RRs converts every record in the collection, failing on the first record
// that cannot be represented
func (c Collection) RRs(ttl uint32) ([]dns.RR, error) {
	rrs := make([]dns.RR, 0, len(c))
	for i, rec := range c {
		rr, err := ToRR(rec, ttl)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s %s): %w", i, rec.Type(), rec.Name(), err)
		}
		rrs = append(rrs, rr)
	}
	return rrs, nil
}

// TypeCode converts our record type to the DNS library type code
func TypeCode(recordType RecordType) uint16 {
	switch recordType {
	case RecordTypeA:
		return dns.TypeA
	case RecordTypeAAAA:
		return dns.TypeAAAA
	case RecordTypeCNAME:
		return dns.TypeCNAME
	case RecordTypeMX:
		return dns.TypeMX
	case RecordTypeNS:
		return dns.TypeNS
	case RecordTypeTXT:
		return dns.TypeTXT
	default:
		return dns.TypeNone
	}
}

func unFqdn(name string) string {
	if name == "." {
		return name
	}
	return strings.TrimSuffix(name, ".")
}
