// Package consumption converts tank level readings into paint mass and folds
// per-tank daily figures into weekly totals.
package consumption

import (
	"math"

	"github.com/straye-as/paint-stock-api/internal/domain"
)

// massScale converts volume x density into the system mass unit (kg)
const massScale = 1000.0

// fallbackDensity is used for tanks whose color has no configured parameter
const fallbackDensity = 1.0

// Result is the mass derived from a pair of level readings
type Result struct {
	ConsumedMass  float64 `json:"consumedMass"`
	RemainingMass float64 `json:"remainingMass"`
}

// ComputeConsumption derives consumed and remaining mass from a tank's Monday
// and Friday levels. A missing reading yields zeros, meaning "not yet measured"
// rather than "nothing consumed". A level that rose or stayed the same is
// reported as zero consumption while remaining mass still follows Friday.
func ComputeConsumption(tank domain.Tank, density float64, mondayLevel, fridayLevel *float64) Result {
	if mondayLevel == nil || fridayLevel == nil {
		return Result{}
	}

	area := crossSection(tank.Diameter)
	result := Result{
		RemainingMass: area * *fridayLevel * density / massScale,
	}

	delta := *mondayLevel - *fridayLevel
	if delta <= 0 {
		return result
	}
	result.ConsumedMass = area * delta * density / massScale
	return result
}

func crossSection(diameter float64) float64 {
	radius := diameter / 2
	return math.Pi * radius * radius
}

// TankResult is one tank's computed figures in a weekly calculation
type TankResult struct {
	Tank domain.Tank
	Result
}

// WeekCalculation is the outcome of converting a week's readings for every tank
type WeekCalculation struct {
	Tanks      []TankResult
	ByCategory map[domain.TankCategory]float64
	ByColor    map[domain.PaintColor]float64
	Total      float64
}

// CalculateWeek runs ComputeConsumption for every configured tank. Tanks absent
// from readings are treated as unmeasured. Readings for unknown tank ids are ignored.
func CalculateWeek(params *domain.Parameters, readings map[string]domain.LevelReading) WeekCalculation {
	calc := WeekCalculation{
		ByCategory: zeroByCategory(),
		ByColor:    zeroByColor(),
	}

	for _, tank := range params.AllTanks() {
		density := fallbackDensity
		if paint, ok := params.Paint(tank.Color); ok {
			density = paint.Density
		}

		reading := readings[tank.ID]
		res := ComputeConsumption(tank, density, reading.MondayLevel, reading.FridayLevel)

		calc.Tanks = append(calc.Tanks, TankResult{Tank: tank, Result: res})
		calc.ByCategory[tank.Category] += res.ConsumedMass
		calc.ByColor[tank.Color] += res.ConsumedMass
		calc.Total += res.ConsumedMass
	}

	return calc
}

func zeroByColor() map[domain.PaintColor]float64 {
	m := make(map[domain.PaintColor]float64, len(domain.AllColors))
	for _, c := range domain.AllColors {
		m[c] = 0
	}
	return m
}

func zeroByCategory() map[domain.TankCategory]float64 {
	m := make(map[domain.TankCategory]float64, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		m[c] = 0
	}
	return m
}
