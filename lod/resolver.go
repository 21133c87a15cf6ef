package lod

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/pthm-cable/lodgroups/config"
)

// MaxLevel is the coarsest level a resolver can produce.
const MaxLevel = math.MaxUint8

// ErrBandsOrder is returned when band edges are not strictly ascending and positive.
var ErrBandsOrder = errors.New("lod: band edges must be positive and strictly ascending")

// Resolver converts a squared viewpoint distance into a level.
//
// Resolve must be pure and total: any input, including NaN or negative
// values, yields a valid level. Implementations should be monotonically
// non-decreasing so that farther objects never get more detail.
//
// Resolution is the squared distance the viewpoint has to travel before
// every tracked entity is re-resolved.
type Resolver interface {
	Resolution() float64
	Resolve(distanceSquared float64) uint8
}

// Linear assigns one level per Step world units of distance.
type Linear struct {
	Threshold float64
	Step      float64
}

// Resolution implements Resolver.
func (l Linear) Resolution() float64 { return l.Threshold }

// Resolve implements Resolver.
func (l Linear) Resolve(distanceSquared float64) uint8 {
	if l.Step <= 0 {
		return 0
	}
	return clampLevel(math.Sqrt(positive(distanceSquared)) / l.Step)
}

// Bands assigns levels by distance edges: a distance below Edges[0] is
// level 0, between Edges[0] and Edges[1] level 1, and so on.
type Bands struct {
	threshold float64
	edgesSq   []float64
}

// NewBands creates a band resolver from ascending world-space distance edges.
func NewBands(threshold float64, edges []float64) (*Bands, error) {
	sq := make([]float64, len(edges))
	for i, e := range edges {
		if e <= 0 || (i > 0 && e <= edges[i-1]) {
			return nil, fmt.Errorf("edge %d (%v): %w", i, e, ErrBandsOrder)
		}
		sq[i] = e * e
	}
	return &Bands{threshold: threshold, edgesSq: sq}, nil
}

// Resolution implements Resolver.
func (b *Bands) Resolution() float64 { return b.threshold }

// Resolve implements Resolver.
func (b *Bands) Resolve(distanceSquared float64) uint8 {
	d := positive(distanceSquared)
	n := sort.Search(len(b.edgesSq), func(i int) bool { return b.edgesSq[i] > d })
	return clampLevel(float64(n))
}

// ResolverFunc pairs a threshold with a plain resolve function.
type ResolverFunc struct {
	Threshold float64
	Fn        func(distanceSquared float64) uint8
}

// Resolution implements Resolver.
func (f ResolverFunc) Resolution() float64 { return f.Threshold }

// Resolve implements Resolver. A nil Fn resolves everything to level 0.
func (f ResolverFunc) Resolve(distanceSquared float64) uint8 {
	if f.Fn == nil {
		return 0
	}
	return f.Fn(distanceSquared)
}

// NewResolver builds the resolver selected by the configuration.
func NewResolver(cfg config.LODConfig) (Resolver, error) {
	switch cfg.Resolver {
	case config.ResolverLinear:
		return Linear{Threshold: cfg.Threshold, Step: cfg.Step}, nil
	case config.ResolverBands:
		b, err := NewBands(cfg.Threshold, cfg.Bands)
		if err != nil {
			return nil, fmt.Errorf("building bands resolver: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown resolver %q", cfg.Resolver)
	}
}

// Monotonic reports whether r never yields a finer level for a larger
// distance across the given squared distances (in any order).
func Monotonic(r Resolver, distancesSquared []float64) bool {
	ds := append([]float64(nil), distancesSquared...)
	sort.Float64s(ds)
	for i := 1; i < len(ds); i++ {
		if r.Resolve(ds[i]) < r.Resolve(ds[i-1]) {
			return false
		}
	}
	return true
}

// positive maps NaN and negative inputs to 0.
func positive(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}

func clampLevel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= MaxLevel {
		return MaxLevel
	}
	return uint8(v)
}
