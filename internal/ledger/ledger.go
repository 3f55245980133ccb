// Package ledger implements the four-week rolling stock ledger kept per paint color.
//
// Each week's remaining stock is derived from its opening balance and movements,
// and is carried forward as the opening balance of the following week. Updates are
// expressed as closed commands so remaining stock and status can never be set
// directly.
package ledger

import (
	"fmt"

	"github.com/straye-as/paint-stock-api/internal/domain"
)

// Status thresholds relative to the configured minimum stock level
const criticalFactor = 0.5

// Command is an edit of one editable field of a ledger week.
// The set of implementations is closed to this package.
type Command interface {
	apply(rec *domain.StockWeekRecord)
	Field() string
}

// SetOpeningStock overrides a week's opening balance
type SetOpeningStock float64

// SetInflow sets the stock received during a week
type SetInflow float64

// SetProductionConsumption sets the stock consumed by production during a week
type SetProductionConsumption float64

// SetWasteLoss sets the stock lost to waste during a week
type SetWasteLoss float64

// SetMinStockLevel sets the threshold used for status classification
type SetMinStockLevel float64

func (c SetOpeningStock) apply(rec *domain.StockWeekRecord) { rec.OpeningStock = float64(c) }
func (c SetInflow) apply(rec *domain.StockWeekRecord)       { rec.Inflow = float64(c) }
func (c SetProductionConsumption) apply(rec *domain.StockWeekRecord) {
	rec.ProductionConsumption = float64(c)
}
func (c SetWasteLoss) apply(rec *domain.StockWeekRecord)     { rec.WasteLoss = float64(c) }
func (c SetMinStockLevel) apply(rec *domain.StockWeekRecord) { rec.MinStockLevel = float64(c) }

func (SetOpeningStock) Field() string          { return "openingStock" }
func (SetInflow) Field() string                { return "inflow" }
func (SetProductionConsumption) Field() string { return "productionConsumption" }
func (SetWasteLoss) Field() string             { return "wasteLoss" }
func (SetMinStockLevel) Field() string         { return "minStockLevel" }

// ParseCommand maps a field name received at the API boundary to a command.
// remainingStock and status are derived and rejected like any unknown name.
func ParseCommand(field string, value float64) (Command, error) {
	switch field {
	case "openingStock":
		return SetOpeningStock(value), nil
	case "inflow":
		return SetInflow(value), nil
	case "productionConsumption":
		return SetProductionConsumption(value), nil
	case "wasteLoss":
		return SetWasteLoss(value), nil
	case "minStockLevel":
		return SetMinStockLevel(value), nil
	default:
		return nil, fmt.Errorf("%w: unknown stock field %q", domain.ErrInvalidArgument, field)
	}
}

// Remaining computes the closing balance of a week. The result is not clamped:
// a negative value is a real shortage.
func Remaining(rec domain.StockWeekRecord) float64 {
	return rec.OpeningStock + rec.Inflow - rec.ProductionConsumption - rec.WasteLoss
}

// Classify derives the status of a remaining amount against a minimum level.
// Thresholds are inclusive and checked from most to least severe.
func Classify(remaining, minLevel float64) domain.StockStatus {
	switch {
	case remaining <= minLevel*criticalFactor:
		return domain.StockStatusCritical
	case remaining <= minLevel:
		return domain.StockStatusLow
	default:
		return domain.StockStatusNormal
	}
}

// Recompute refreshes the derived fields of a record
func Recompute(rec domain.StockWeekRecord) domain.StockWeekRecord {
	rec.RemainingStock = Remaining(rec)
	rec.Status = Classify(rec.RemainingStock, rec.MinStockLevel)
	return rec
}

// ApplyFieldUpdate applies cmd to one week of a color's ledger and cascades the
// new closing balance forward through every later week. The input ledger is not
// modified; the returned ledger shares no week slices with it for the edited color.
func ApplyFieldUpdate(l domain.StockLedger, color domain.PaintColor, weekIndex int, cmd Command) (domain.StockLedger, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: missing stock command", domain.ErrInvalidArgument)
	}
	weeks, ok := l[color]
	if !ok {
		return nil, fmt.Errorf("%w: unknown color %q", domain.ErrInvalidArgument, color)
	}
	if weekIndex < 0 || weekIndex >= len(weeks) || weekIndex >= domain.WeeksPerLedger {
		return nil, fmt.Errorf("%w: week index %d out of range [0,%d]", domain.ErrInvalidArgument, weekIndex, domain.WeeksPerLedger-1)
	}

	updated := append([]domain.StockWeekRecord(nil), weeks...)

	rec := updated[weekIndex]
	cmd.apply(&rec)
	updated[weekIndex] = Recompute(rec)

	// Forward propagation over the fixed window
	for i := weekIndex + 1; i < len(updated); i++ {
		next := updated[i]
		next.OpeningStock = updated[i-1].RemainingStock
		updated[i] = Recompute(next)
	}

	out := make(domain.StockLedger, len(l))
	for c, w := range l {
		out[c] = w
	}
	out[color] = updated
	return out, nil
}

// LowStock returns every flagged week across all ledgers, tagged with its color,
// in color display order.
func LowStock(l domain.StockLedger) []domain.LowStockEntry {
	entries := []domain.LowStockEntry{}
	for _, color := range domain.AllColors {
		for i, rec := range l[color] {
			if rec.Status == domain.StockStatusLow || rec.Status == domain.StockStatusCritical {
				entries = append(entries, domain.LowStockEntry{
					Color:           color,
					WeekIndex:       i,
					StockWeekRecord: rec,
				})
			}
		}
	}
	return entries
}

// CurrentStock returns the first week's remaining stock of every color.
// Colors without a ledger report zero.
func CurrentStock(l domain.StockLedger) map[domain.PaintColor]float64 {
	stock := make(map[domain.PaintColor]float64, len(domain.AllColors))
	for _, color := range domain.AllColors {
		if weeks := l[color]; len(weeks) > 0 {
			stock[color] = weeks[0].RemainingStock
		} else {
			stock[color] = 0
		}
	}
	return stock
}

// Validate checks the structural shape of a ledger loaded from storage
func Validate(l domain.StockLedger) error {
	for _, color := range domain.AllColors {
		weeks, ok := l[color]
		if !ok {
			return fmt.Errorf("missing ledger for color %q", color)
		}
		if len(weeks) != domain.WeeksPerLedger {
			return fmt.Errorf("ledger for color %q has %d weeks, want %d", color, len(weeks), domain.WeeksPerLedger)
		}
	}
	for color := range l {
		if !color.IsValid() {
			return fmt.Errorf("unknown color %q in ledger", color)
		}
	}
	return nil
}
