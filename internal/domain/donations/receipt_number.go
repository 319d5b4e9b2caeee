package donations

import (
	"fmt"
	"sync"
	"time"

	"github.com/speps/go-hashids/v2"
)

// ReceiptNumberGenerator produces short, non-sequential receipt numbers such
// as TUP-K3vQ9xL from the issue time and a per-process counter.
type ReceiptNumberGenerator struct {
	mu      sync.Mutex
	hd      *hashids.HashID
	counter int64
}

func NewReceiptNumberGenerator(salt string) (*ReceiptNumberGenerator, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = 8

	hd, err := hashids.NewWithData(data)
	if err != nil {
		return nil, err
	}
	return &ReceiptNumberGenerator{hd: hd}, nil
}

func (g *ReceiptNumberGenerator) Generate(at time.Time) (string, error) {
	g.mu.Lock()
	g.counter++
	n := g.counter
	g.mu.Unlock()

	id, err := g.hd.EncodeInt64([]int64{at.UnixMilli(), n})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TUP-%s", id), nil
}
