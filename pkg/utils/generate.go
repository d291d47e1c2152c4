package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== ORDER ID ====================

// OrderIDSpace is the number of distinct suffixes available per year.
const OrderIDSpace = 1000

// OrderIDGenerator draws identifiers of the form ORD-YYYY-NNN.
// Draws are random over OrderIDSpace, so callers that need uniqueness
// must check the result against the IDs they already hold.
type OrderIDGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewOrderIDGenerator(seed int64, now func() time.Time) *OrderIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &OrderIDGenerator{
		rnd: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

func (g *OrderIDGenerator) Next() string {
	g.mu.Lock()
	n := g.rnd.Intn(OrderIDSpace)
	g.mu.Unlock()

	return FormatOrderID(g.now().Year(), n)
}

// Year reports the year the next identifier will carry.
func (g *OrderIDGenerator) Year() int {
	return g.now().Year()
}

func FormatOrderID(year, n int) string {
	return fmt.Sprintf("ORD-%04d-%03d", year, n)
}
