// =============================================================================
// internal/records/wire.go - Document encoding of record collections
// =============================================================================
package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// wireRecord is the flat document shape of a record. Field order matches the
// published layout: name, type, then the type-specific payload.
type wireRecord struct {
	Name     string     `json:"name" yaml:"name"`
	Type     RecordType `json:"type" yaml:"type"`
	IP       string     `json:"ip,omitempty" yaml:"ip,omitempty"`
	Target   string     `json:"target,omitempty" yaml:"target,omitempty"`
	Priority int        `json:"priority,omitempty" yaml:"priority,omitempty"`
	Text     string     `json:"text,omitempty" yaml:"text,omitempty"`
}

// rawRecord is the decoding counterpart of wireRecord; pointers let us tell a
// missing field from an empty one.
type rawRecord struct {
	Name     *string `json:"name" yaml:"name"`
	Type     *string `json:"type" yaml:"type"`
	IP       *string `json:"ip" yaml:"ip"`
	Target   *string `json:"target" yaml:"target"`
	Priority *int    `json:"priority" yaml:"priority"`
	Text     *string `json:"text" yaml:"text"`
}

func toWire(rec Record) wireRecord {
	w := wireRecord{Name: rec.Name(), Type: rec.Type()}
	switch r := rec.(type) {
	case A:
		w.IP = r.IP
	case AAAA:
		w.IP = r.IP
	case CNAME:
		w.Target = r.Target
	case MX:
		w.Target = r.Target
		w.Priority = r.Priority
	case NS:
		w.Target = r.Target
	case TXT:
		w.Text = r.Text
	}
	return w
}

func (raw rawRecord) toRecord() (Record, error) {
	if raw.Name == nil || *raw.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedRecord)
	}
	if raw.Type == nil {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedRecord)
	}
	rt := RecordType(*raw.Type)
	if !rt.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, *raw.Type)
	}

	present := map[string]bool{
		"ip":       raw.IP != nil,
		"target":   raw.Target != nil,
		"priority": raw.Priority != nil,
		"text":     raw.Text != nil,
	}
	required := map[RecordType][]string{
		RecordTypeA:     {"ip"},
		RecordTypeAAAA:  {"ip"},
		RecordTypeCNAME: {"target"},
		RecordTypeMX:    {"target", "priority"},
		RecordTypeNS:    {"target"},
		RecordTypeTXT:   {"text"},
	}[rt]

	for _, field := range required {
		if !present[field] {
			return nil, fmt.Errorf("%w: %s record %q missing %s", ErrMalformedRecord, rt, *raw.Name, field)
		}
		delete(present, field)
	}
	for field, ok := range present {
		if ok {
			return nil, fmt.Errorf("%w: %s record %q has extraneous field %s", ErrMalformedRecord, rt, *raw.Name, field)
		}
	}

	name := *raw.Name
	switch rt {
	case RecordTypeA:
		return A{Owner: name, IP: *raw.IP}, nil
	case RecordTypeAAAA:
		return AAAA{Owner: name, IP: *raw.IP}, nil
	case RecordTypeCNAME:
		return CNAME{Owner: name, Target: *raw.Target}, nil
	case RecordTypeMX:
		return MX{Owner: name, Target: *raw.Target, Priority: *raw.Priority}, nil
	case RecordTypeNS:
		return NS{Owner: name, Target: *raw.Target}, nil
	default:
		return TXT{Owner: name, Text: *raw.Text}, nil
	}
}

func fromRaw(raws []rawRecord) (Collection, error) {
	c := make(Collection, 0, len(raws))
	for i, raw := range raws {
		rec, err := raw.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		c = append(c, rec)
	}
	return c, nil
}

// MarshalJSON encodes the collection as an array of flat objects. HTML
// characters in TXT payloads are left unescaped.
func (c Collection) MarshalJSON() ([]byte, error) {
	out := make([]wireRecord, len(c))
	for i, rec := range c {
		out[i] = toWire(rec)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes an array of flat objects, rejecting unknown fields
func (c *Collection) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalYAML encodes the collection as a YAML sequence of mappings
func (c Collection) MarshalYAML() (interface{}, error) {
	out := make([]wireRecord, len(c))
	for i, rec := range c {
		out[i] = toWire(rec)
	}
	return out, nil
}

// DecodeJSON reads a JSON array of records from r
func DecodeJSON(r io.Reader) (Collection, error) {
	var elems []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elems); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	raws := make([]rawRecord, len(elems))
	for i, elem := range elems {
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raws[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w: %v", i, ErrMalformedRecord, err)
		}
	}
	return fromRaw(raws)
}

// DecodeYAML reads a YAML sequence of records from r
func DecodeYAML(r io.Reader) (Collection, error) {
	var raws []rawRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raws); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode records: %w: %v", ErrMalformedRecord, err)
	}
	return fromRaw(raws)
}
