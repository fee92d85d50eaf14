package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-console/internal/model"
)

const orderIDPrefix = "ORD-"

// IDGenerator hands out order ids. It is called only once an order is known to
// be valid.
type IDGenerator interface {
	NextOrderID(orders []model.Order) string
}

func FormatOrderID(n int) string {
	return fmt.Sprintf("%s%03d", orderIDPrefix, n)
}

// ParseOrderNumber extracts n from "ORD-n". ok is false for any other shape.
func ParseOrderNumber(id string) (int, bool) {
	if !strings.HasPrefix(id, orderIDPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, orderIDPrefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// LengthIDs numbers orders by collection size. Deleting an order and adding
// another can reuse an id that is still in the list.
type LengthIDs struct{}

func (LengthIDs) NextOrderID(orders []model.Order) string {
	return FormatOrderID(len(orders) + 1)
}

// MonotonicIDs never hands out a number at or below one it has seen.
type MonotonicIDs struct {
	mu   sync.Mutex
	last int
}

func (g *MonotonicIDs) NextOrderID(orders []model.Order) string {
	g.Observe(orders)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.last++
	return FormatOrderID(g.last)
}

// Observe raises the high-water mark to the largest id in orders.
func (g *MonotonicIDs) Observe(orders []model.Order) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, o := range orders {
		if n, ok := ParseOrderNumber(o.ID); ok && n > g.last {
			g.last = n
		}
	}
}

const (
	StrategyMonotonic = "monotonic"
	StrategyLength    = "length"
)

// NewIDGenerator maps a configured strategy name to a generator. existing
// primes the monotonic generator so seeded ids are never handed out again.
func NewIDGenerator(strategy string, existing []model.Order) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyMonotonic:
		g := &MonotonicIDs{}
		g.Observe(existing)
		return g, nil
	case StrategyLength:
		return LengthIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown order id strategy %q", strategy)
	}
}
