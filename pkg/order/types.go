// Package order holds the simulated USDT-M futures order domain:
// request validation and fabricated exchange acknowledgements.
package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type Status string

const (
	StatusNew    Status = "NEW"    // limit orders: resting, not filled
	StatusFilled Status = "FILLED" // market orders: filled immediately
)

// Request is a validated order request. Price is only meaningful for
// limit orders.
type Request struct {
	Symbol   string
	Side     Side
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// Ack carries the fields shared by every simulated acknowledgement.
// OrderID is random and unique only by chance; nothing is persisted, so
// collisions across invocations are out of scope.
type Ack struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Side          Side
	Status        Status
	TransactTime  int64 // epoch milliseconds
}

// LimitAck acknowledges a resting limit order. OrigQty and Price echo
// the request verbatim.
type LimitAck struct {
	Ack
	OrigQty decimal.Decimal
	Price   decimal.Decimal
}

// MarketAck acknowledges an immediately filled market order. AvgPrice
// is fabricated by the simulator.
type MarketAck struct {
	Ack
	ExecutedQty decimal.Decimal
	AvgPrice    decimal.Decimal
}

// Summary renders the one-line key=value record printed to stdout on
// success. This line is the tool's output contract for callers
// scripting against it.
func (a *LimitAck) Summary() string {
	return fmt.Sprintf("orderId=%d clientOrderId=%s symbol=%s side=%s status=%s origQty=%s price=%s",
		a.OrderID, a.ClientOrderID, a.Symbol, a.Side, a.Status, a.OrigQty, a.Price)
}

func (a *MarketAck) Summary() string {
	return fmt.Sprintf("orderId=%d clientOrderId=%s symbol=%s side=%s status=%s executedQty=%s avgPrice=%s",
		a.OrderID, a.ClientOrderID, a.Symbol, a.Side, a.Status, a.ExecutedQty, a.AvgPrice.StringFixed(2))
}

// Normalize trims and uppercases raw symbol/side tokens before
// validation. Validators assume normalized input.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
