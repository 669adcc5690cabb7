// Package cli wires argument parsing, validation, the order simulator
// and reporting for the limit-orders and market-orders tools. The two
// tools differ only in their usage line and the kind of acknowledgement
// they produce.
package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/quantfold/futuresim/pkg/order"
)

const (
	// Exit code for malformed arguments and validation failures,
	// matching the usual argument-parser convention.
	ExitUsage = 2
	// Exit code for unexpected failures during simulation.
	ExitFailure = 1
)

const (
	LimitUsage  = "usage: limit-orders <SYMBOL> <SIDE> <QUANTITY> <PRICE>"
	MarketUsage = "usage: market-orders <SYMBOL> <SIDE> <QUANTITY>"
)

type App struct {
	Logger *zap.SugaredLogger
	Sim    *order.Simulator
	Stdout io.Writer
	Stderr io.Writer
}

// RunLimit places a simulated limit order from positional arguments
// (symbol, side, quantity, price) and returns the process exit code.
func (a *App) RunLimit(args []string) int {
	if len(args) != 4 {
		return a.usageError(LimitUsage, fmt.Errorf("expected 4 arguments, got %d", len(args)))
	}

	req, err := a.parseRequest(args[0], args[1], args[2], args[3])
	if err != nil {
		return a.usageError(LimitUsage, err)
	}

	a.Logger.Infow("placing_limit_order",
		"symbol", req.Symbol, "side", req.Side, "qty", req.Quantity, "price", req.Price)

	ack, err := a.Sim.PlaceLimit(req)
	if err != nil {
		a.Logger.Errorw("limit_order_failed", "err", err)
		return ExitFailure
	}

	a.Logger.Infow("limit_order_placed", "order_id", ack.OrderID, "status", ack.Status)
	fmt.Fprintln(a.Stdout, ack.Summary())
	return 0
}

// RunMarket places a simulated market order from positional arguments
// (symbol, side, quantity) and returns the process exit code.
func (a *App) RunMarket(args []string) int {
	if len(args) != 3 {
		return a.usageError(MarketUsage, fmt.Errorf("expected 3 arguments, got %d", len(args)))
	}

	req, err := a.parseRequest(args[0], args[1], args[2], "")
	if err != nil {
		return a.usageError(MarketUsage, err)
	}

	a.Logger.Infow("placing_market_order",
		"symbol", req.Symbol, "side", req.Side, "qty", req.Quantity)

	ack, err := a.Sim.PlaceMarket(req)
	if err != nil {
		a.Logger.Errorw("market_order_failed", "err", err)
		return ExitFailure
	}

	a.Logger.Infow("market_order_placed", "order_id", ack.OrderID, "avg_price", ack.AvgPrice)
	fmt.Fprintln(a.Stdout, ack.Summary())
	return 0
}

// parseRequest validates the raw tokens in the same order for both
// tools: quantity, price (when present), side, symbol. priceRaw == ""
// means a market order with no price argument.
func (a *App) parseRequest(symbolRaw, sideRaw, qtyRaw, priceRaw string) (order.Request, error) {
	var req order.Request

	qty, err := order.ParseQuantity(qtyRaw)
	if err != nil {
		return req, err
	}
	req.Quantity = qty

	if priceRaw != "" {
		price, err := order.ParsePrice(priceRaw)
		if err != nil {
			return req, err
		}
		req.Price = price
	}

	side, err := order.ParseSide(order.Normalize(sideRaw))
	if err != nil {
		return req, err
	}
	req.Side = side

	symbol := order.Normalize(symbolRaw)
	if !order.ValidSymbol(symbol) {
		return req, &order.ValidationError{Field: "symbol", Reason: "must be alphanumeric and end with USDT (e.g. BTCUSDT)"}
	}
	req.Symbol = symbol

	return req, nil
}

// usageError reports a validation failure: one error-level log line,
// usage on stderr, ExitUsage. No summary is printed.
func (a *App) usageError(usage string, err error) int {
	a.Logger.Errorw("invalid_input", "err", err)
	fmt.Fprintf(a.Stderr, "%s\nerror: %v\n", usage, err)
	return ExitUsage
}
