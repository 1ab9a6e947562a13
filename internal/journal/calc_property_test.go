package journal

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"leaddesk/internal/models"
)

// Property: a buy and a sell over the same prices have mirrored
// profit/loss, the classification always agrees with the sign of the
// P&L, and a trade without an exit price is never classified.
func TestProperty_Compute(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	quantityGen := gen.Float64Range(0.01, 1000)
	priceGen := gen.Float64Range(0.01, 100000)

	properties.Property("buy and sell P&L are mirrored", prop.ForAll(
		func(quantity, entry, exit float64) bool {
			buy := Compute(models.TradeBuy, quantity, entry, &exit)
			sell := Compute(models.TradeSell, quantity, entry, &exit)
			if buy.ProfitLoss == nil || sell.ProfitLoss == nil {
				return false
			}
			return math.Abs(*buy.ProfitLoss+*sell.ProfitLoss) < 1e-9
		},
		quantityGen, priceGen, priceGen,
	))

	properties.Property("result matches the sign of the P&L", prop.ForAll(
		func(quantity, entry, exit float64, sell bool) bool {
			direction := models.TradeBuy
			if sell {
				direction = models.TradeSell
			}
			outcome := Compute(direction, quantity, entry, &exit)
			if outcome.ProfitLoss == nil {
				return false
			}
			if *outcome.ProfitLoss >= 0 {
				return outcome.Result == models.TradeSuccess
			}
			return outcome.Result == models.TradeFailed
		},
		quantityGen, priceGen, priceGen, gen.Bool(),
	))

	properties.Property("no exit price means pending", prop.ForAll(
		func(quantity, entry float64, sell bool) bool {
			direction := models.TradeBuy
			if sell {
				direction = models.TradeSell
			}
			outcome := Compute(direction, quantity, entry, nil)
			return outcome.Result == models.TradePending && outcome.ProfitLoss == nil
		},
		quantityGen, priceGen, gen.Bool(),
	))

	properties.Property("non-positive quantity or entry means pending", prop.ForAll(
		func(quantity, entry, exit float64) bool {
			outcome := Compute(models.TradeBuy, -quantity, entry, &exit)
			if outcome.Result != models.TradePending {
				return false
			}
			outcome = Compute(models.TradeBuy, quantity, -entry, &exit)
			return outcome.Result == models.TradePending
		},
		quantityGen, priceGen, priceGen,
	))

	properties.TestingRun(t)
}

// Property: the entry total equals the sum of the closed trades' P&L,
// whatever mix of open and closed trades the entry holds.
func TestProperty_EntryTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("total is the sum over closed trades", prop.ForAll(
		func(pnls []float64, openEvery int) bool {
			trades := make([]models.Trade, 0, len(pnls))
			var want float64
			for i, pnl := range pnls {
				trade := models.Trade{Asset: "X", Direction: models.TradeBuy}
				open := openEvery > 0 && i%openEvery == 0
				if !open {
					v := pnl
					trade.ProfitLoss = &v
					want += v
				}
				trades = append(trades, trade)
			}
			return math.Abs(EntryTotal(trades)-want) < 1e-9
		},
		gen.SliceOf(gen.Float64Range(-1000, 1000)),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}
