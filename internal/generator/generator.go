// =============================================================================
// internal/generator/generator.go - Synthetic DNS record generation
// =============================================================================

// Package generator produces collections of plausible-looking DNS records
// for fixtures and demos. Every run is driven by an explicit Rand so that a
// fixed seed reproduces the same collection.
package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bryanCE/dnsgen/internal/records"
	"github.com/bryanCE/dnsgen/pkg/vocabulary"
	"go.uber.org/zap"
)

const (
	DefaultCount      = 500
	DefaultMaxRetries = 10000

	personalProbability  = 0.3
	secondaryProbability = 0.3
	mailProbability      = 0.5
)

var (
	// ErrNameSpaceExhausted is returned when MaxRetries consecutive root
	// domains collide with ones already used in the run.
	ErrNameSpaceExhausted = errors.New("domain name space exhausted")
	// ErrInvalidCount is returned for a target count below one.
	ErrInvalidCount = errors.New("record count must be at least 1")
)

// DefaultTypeWeights are the relative weights used to pick a primary record type
var DefaultTypeWeights = []Choice[records.RecordType]{
	{Value: records.RecordTypeA, Weight: 50},
	{Value: records.RecordTypeAAAA, Weight: 10},
	{Value: records.RecordTypeCNAME, Weight: 15},
	{Value: records.RecordTypeMX, Weight: 10},
	{Value: records.RecordTypeNS, Weight: 10},
	{Value: records.RecordTypeTXT, Weight: 5},
}

var mxPriorities = []int{10, 20, 30}

// Options controls a generation run. Zero values take the defaults.
type Options struct {
	Count       int
	TLD         string
	MaxRetries  int
	LegacyIPv6  bool
	Words       []string
	Personal    []string
	TypeWeights []Choice[records.RecordType]
}

// Stats describes the work done by the last Generate call
type Stats struct {
	Attempts   int `json:"attempts"`
	Collisions int `json:"collisions"`
	Roots      int `json:"roots"`
}

// Generator builds record collections
type Generator struct {
	logger *zap.Logger
	rng    Rand
	opts   Options
	types  *Weighted[records.RecordType]
	stats  Stats
}

// New creates a generator drawing from r. It fails only if custom type
// weights are invalid.
func New(logger *zap.Logger, r Rand, opts Options) (*Generator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Count == 0 {
		opts.Count = DefaultCount
	}
	if opts.TLD == "" {
		opts.TLD = vocabulary.DefaultTLD
	}
	opts.TLD = strings.ToLower(strings.TrimPrefix(opts.TLD, "."))
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if len(opts.Words) == 0 {
		opts.Words = vocabulary.GetWords()
	}
	if len(opts.Personal) == 0 {
		opts.Personal = vocabulary.GetPersonalNames()
	}
	if len(opts.TypeWeights) == 0 {
		opts.TypeWeights = DefaultTypeWeights
	}

	for _, c := range opts.TypeWeights {
		if !c.Value.Valid() {
			return nil, fmt.Errorf("invalid type weights: %w: %q", records.ErrUnknownType, c.Value)
		}
	}
	types, err := NewWeighted(opts.TypeWeights...)
	if err != nil {
		return nil, fmt.Errorf("invalid type weights: %w", err)
	}

	return &Generator{
		logger: logger,
		rng:    r,
		opts:   opts,
		types:  types,
	}, nil
}

// Generate produces exactly `count` records using the default options.
func Generate(r Rand, count int) (records.Collection, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	g, err := New(nil, r, Options{Count: count})
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// Generate runs the uniqueness loop until the collection holds exactly
// opts.Count records. Each new root gets one primary record; A roots may also
// get www and mail A records. The loop stops as soon as the target is reached,
// so secondary records never overshoot it.
func (g *Generator) Generate() (records.Collection, error) {
	count := g.opts.Count
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	g.stats = Stats{}
	out := make(records.Collection, 0, count)
	used := make(map[string]struct{}, count)
	misses := 0

	add := func(rec records.Record) bool {
		out = append(out, rec)
		return len(out) >= count
	}

	for len(out) < count {
		g.stats.Attempts++
		domain := g.rootDomain()
		if _, dup := used[domain]; dup {
			g.stats.Collisions++
			misses++
			if misses > g.opts.MaxRetries {
				g.stats.Roots = len(used)
				g.logger.Debug("giving up on unique roots",
					zap.Int("roots", len(used)), zap.Int("records", len(out)), zap.Int("misses", misses))
				return nil, fmt.Errorf("%w: %d consecutive collisions after %d unique roots (%d of %d records)",
					ErrNameSpaceExhausted, misses, len(used), len(out), count)
			}
			continue
		}
		misses = 0
		used[domain] = struct{}{}

		primary := g.primary(domain)
		if add(primary) {
			break
		}

		extra := g.rng.Float64() < secondaryProbability
		a, isA := primary.(records.A)
		if !extra || !isA {
			continue
		}
		if add(records.A{Owner: "www." + domain, IP: a.IP}) {
			break
		}
		if g.rng.Float64() < mailProbability {
			add(records.A{Owner: "mail." + domain, IP: ipv4(g.rng)})
		}
	}

	g.stats.Roots = len(used)
	g.logger.Debug("generated records",
		zap.Int("records", len(out)),
		zap.Int("roots", g.stats.Roots),
		zap.Int("attempts", g.stats.Attempts),
		zap.Int("collisions", g.stats.Collisions))
	return out, nil
}

// Stats returns counters from the last Generate call
func (g *Generator) Stats() Stats {
	return g.stats
}

// rootDomain synthesizes a candidate root: a personal name, or one word with
// a one-in-four chance of a second word appended.
func (g *Generator) rootDomain() string {
	var label string
	if g.rng.Float64() < personalProbability {
		label = pick(g.rng, g.opts.Personal)
	} else {
		label = pick(g.rng, g.opts.Words)
		if g.rng.IntN(4) == 3 {
			label += pick(g.rng, g.opts.Words)
		}
	}
	return strings.ToLower(label) + "." + g.opts.TLD
}

func (g *Generator) primary(domain string) records.Record {
	switch g.types.Pick(g.rng) {
	case records.RecordTypeA:
		return records.A{Owner: domain, IP: ipv4(g.rng)}
	case records.RecordTypeAAAA:
		return records.AAAA{Owner: domain, IP: ipv6(g.rng, g.opts.LegacyIPv6)}
	case records.RecordTypeCNAME:
		return records.CNAME{Owner: "www." + domain, Target: domain}
	case records.RecordTypeMX:
		return records.MX{
			Owner:    domain,
			Target:   "mail." + domain,
			Priority: mxPriorities[g.rng.IntN(len(mxPriorities))],
		}
	case records.RecordTypeNS:
		return records.NS{Owner: domain, Target: fmt.Sprintf("ns%d.%s", 1+g.rng.IntN(3), domain)}
	default:
		return records.TXT{Owner: domain, Text: g.txt(domain)}
	}
}

func (g *Generator) txt(domain string) string {
	switch g.rng.IntN(3) {
	case 0:
		return fmt.Sprintf("v=spf1 include:spf.%s ~all", domain)
	case 1:
		return "google-site-verification=" + randomHex(g.rng)
	default:
		return "MS=" + randomHex(g.rng)
	}
}
