package order

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quantfold/futuresim/pkg/util"
)

const (
	orderIDMin = 10_000_000
	orderIDMax = 99_999_999
)

// Simulator fabricates exchange acknowledgements locally. There is no
// connectivity and no state: each Place call draws fresh random values
// and stamps the current clock time.
type Simulator struct {
	rng   *rand.Rand
	clock util.Clock
}

// New builds a simulator with an explicit random source and clock, so
// tests can pin both. The client order id is drawn from src as well,
// making seeded output fully reproducible.
func New(src rand.Source, clock util.Clock) *Simulator {
	return &Simulator{rng: rand.New(src), clock: clock}
}

// NewDefault is the production simulator: time-seeded randomness, wall
// clock.
func NewDefault() *Simulator {
	return New(rand.NewSource(time.Now().UnixNano()), util.RealClock{})
}

// PlaceLimit acknowledges a limit order as resting (NEW), echoing the
// requested quantity and price verbatim.
func (s *Simulator) PlaceLimit(req Request) (*LimitAck, error) {
	ack, err := s.newAck(req, StatusNew)
	if err != nil {
		return nil, err
	}
	return &LimitAck{
		Ack:     ack,
		OrigQty: req.Quantity,
		Price:   req.Price,
	}, nil
}

// PlaceMarket acknowledges a market order as immediately filled at a
// fabricated average price in [1000.00, 2000.00).
func (s *Simulator) PlaceMarket(req Request) (*MarketAck, error) {
	ack, err := s.newAck(req, StatusFilled)
	if err != nil {
		return nil, err
	}
	return &MarketAck{
		Ack:         ack,
		ExecutedQty: req.Quantity,
		AvgPrice:    decimal.NewFromFloat(1000 + s.rng.Float64()*1000).Round(2),
	}, nil
}

func (s *Simulator) newAck(req Request, status Status) (Ack, error) {
	cid, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return Ack{}, err
	}
	return Ack{
		OrderID:       orderIDMin + s.rng.Int63n(orderIDMax-orderIDMin+1),
		ClientOrderID: cid.String(),
		Symbol:        req.Symbol,
		Side:          req.Side,
		Status:        status,
		TransactTime:  s.clock.Now().UnixMilli(),
	}, nil
}
