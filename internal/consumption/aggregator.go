package consumption

import (
	"fmt"

	"github.com/straye-as/paint-stock-api/internal/domain"
)

// EntryCommand edits one field of a day's tank entry.
// The set of implementations is closed to this package.
type EntryCommand interface {
	apply(e *domain.DailyTankConsumption)
}

// SetLevel records a level reading; nil clears it
type SetLevel struct {
	Level *float64
}

// SetConsumedMass records the mass consumed from a tank on a day
type SetConsumedMass float64

func (c SetLevel) apply(e *domain.DailyTankConsumption) {
	if c.Level == nil {
		e.Level = nil
		return
	}
	level := *c.Level
	e.Level = &level
}

func (c SetConsumedMass) apply(e *domain.DailyTankConsumption) {
	e.ConsumedMass = float64(c)
}

// ParseEntryCommand maps a field name received at the API boundary to a command.
// A nil value clears a level and zeroes a consumed mass.
func ParseEntryCommand(field string, value *float64) (EntryCommand, error) {
	switch field {
	case "level":
		return SetLevel{Level: value}, nil
	case "consumedMass":
		if value == nil {
			return SetConsumedMass(0), nil
		}
		return SetConsumedMass(*value), nil
	default:
		return nil, fmt.Errorf("%w: unknown consumption field %q", domain.ErrInvalidArgument, field)
	}
}

// SetConsumptionEntry applies cmd to the entry of tankID in category and returns
// the updated day. A missing entry is created with defaults (no level, zero mass).
// The daily total is always recomputed. The input day is not modified.
func SetConsumptionEntry(day domain.DayRecord, category domain.TankCategory, tankID string, cmd EntryCommand) (domain.DayRecord, error) {
	if !category.IsValid() {
		return domain.DayRecord{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidArgument, category)
	}
	if tankID == "" {
		return domain.DayRecord{}, fmt.Errorf("%w: tank id is required", domain.ErrInvalidArgument)
	}
	if cmd == nil {
		return domain.DayRecord{}, fmt.Errorf("%w: missing consumption command", domain.ErrInvalidArgument)
	}

	out := day.Clone()
	entries := out.EntriesFor(category)

	idx := -1
	for i, e := range entries {
		if e.TankID == tankID {
			idx = i
			break
		}
	}
	if idx < 0 {
		entries = append(entries, domain.DailyTankConsumption{TankID: tankID})
		idx = len(entries) - 1
	}
	cmd.apply(&entries[idx])

	out.SetEntries(category, entries)
	out.DailyTotal = DailyTotal(out)
	return out, nil
}

// DailyTotal sums the consumed mass of every entry of a day
func DailyTotal(day domain.DayRecord) float64 {
	var total float64
	for _, category := range domain.AllCategories {
		total += sumEntries(day.EntriesFor(category))
	}
	return total
}

// TotalWeeklyConsumption sums the consumed mass of every entry, category and day.
// Entries whose tank no longer exists still count here.
func TotalWeeklyConsumption(week domain.WeeklyConsumption) float64 {
	var total float64
	for _, day := range week.Days {
		total += DailyTotal(day)
	}
	return total
}

// ConsumptionByColor attributes each entry to its tank's configured color.
// Entries referencing a tank that is not configured contribute nothing.
func ConsumptionByColor(week domain.WeeklyConsumption, params *domain.Parameters) map[domain.PaintColor]float64 {
	byColor := zeroByColor()
	for _, day := range week.Days {
		for _, category := range domain.AllCategories {
			for _, e := range day.EntriesFor(category) {
				tank, ok := params.FindTank(e.TankID)
				if !ok {
					continue
				}
				byColor[tank.Color] += e.ConsumedMass
			}
		}
	}
	return byColor
}

// ConsumptionByCategory sums the week's consumed mass per production unit
func ConsumptionByCategory(week domain.WeeklyConsumption) map[domain.TankCategory]float64 {
	byCategory := zeroByCategory()
	for _, day := range week.Days {
		for _, category := range domain.AllCategories {
			byCategory[category] += sumEntries(day.EntriesFor(category))
		}
	}
	return byCategory
}

// DailyTotals returns each day's stored total in week order
func DailyTotals(week domain.WeeklyConsumption) []domain.DailyTotalDTO {
	totals := make([]domain.DailyTotalDTO, 0, len(week.Days))
	for _, day := range week.Days {
		totals = append(totals, domain.DailyTotalDTO{DayName: day.DayName, Total: day.DailyTotal})
	}
	return totals
}

func sumEntries(entries []domain.DailyTankConsumption) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.ConsumedMass
	}
	return sum
}
