package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DayNames are the day labels of a week, Monday first
var DayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DefaultTargets are the weekly consumption targets per color in kg
var DefaultTargets = map[PaintColor]float64{
	ColorMetallic: 300,
	ColorBlue:     250,
	ColorWhite:    350,
	ColorRed:      200,
	ColorPink:     150,
}

// New tanks added through the settings surface start with these values
const (
	DefaultTankColor     = ColorMetallic
	DefaultTankDiameter  = 50.0
	DefaultTankMaxHeight = 80.0
	DefaultTankCapacity  = 150.0
)

// DefaultSnapshot builds the factory configuration used on first run and on reset.
// Every call returns a fresh value that shares nothing with previous calls.
func DefaultSnapshot() *Snapshot {
	params := Parameters{
		Paints: []PaintParameter{
			{Color: ColorMetallic, ColorCode: "MET", Density: 1.05, Active: true},
			{Color: ColorBlue, ColorCode: "BLU", Density: 1.15, Active: true},
			{Color: ColorWhite, ColorCode: "WHT", Density: 1.20, Active: true},
			{Color: ColorRed, ColorCode: "RED", Density: 1.18, Active: true},
			{Color: ColorPink, ColorCode: "PNK", Density: 1.12, Active: true},
		},
		PinikTanks: []Tank{
			defaultTank(CategoryPinik, 1, ColorMetallic, 50, 80, 165),
			defaultTank(CategoryPinik, 2, ColorBlue, 50, 80, 181),
			defaultTank(CategoryPinik, 3, ColorWhite, 50, 80, 188),
		},
		HomeTanks: []Tank{
			defaultTank(CategoryHome, 1, ColorMetallic, 40, 60, 120),
			defaultTank(CategoryHome, 2, ColorBlue, 40, 60, 130),
			defaultTank(CategoryHome, 3, ColorWhite, 40, 60, 140),
		},
		IndustrialTanks: []Tank{
			defaultTank(CategoryIndustrial, 1, ColorMetallic, 60, 100, 250),
			defaultTank(CategoryIndustrial, 2, ColorBlue, 60, 100, 270),
			defaultTank(CategoryIndustrial, 3, ColorRed, 60, 100, 260),
			defaultTank(CategoryIndustrial, 4, ColorPink, 60, 100, 240),
		},
	}

	days := make([]DayRecord, DaysPerWeek)
	for i, name := range DayNames {
		days[i] = DayRecord{
			DayName:           name,
			PinikEntries:      emptyEntries(params.PinikTanks),
			HomeEntries:       emptyEntries(params.HomeTanks),
			IndustrialEntries: emptyEntries(params.IndustrialTanks),
		}
	}

	return &Snapshot{
		Parameters: params,
		WeeklyConsumption: WeeklyConsumption{
			WeekNumber: 1,
			DateRange:  "",
			Days:       days,
		},
		StockLedger: StockLedger{
			ColorMetallic: defaultWeeks(500, 200),
			ColorBlue:     defaultWeeks(400, 150),
			ColorWhite:    defaultWeeks(600, 250),
			ColorRed:      defaultWeeks(350, 150),
			ColorPink:     defaultWeeks(300, 100),
		},
	}
}

// DayIndex resolves a day given either as a zero based index ("0".."6") or
// as a day name (case-insensitive)
func DayIndex(day string) (int, error) {
	if i, err := strconv.Atoi(day); err == nil {
		if i < 0 || i >= DaysPerWeek {
			return 0, fmt.Errorf("%w: day index %d out of range", ErrInvalidArgument, i)
		}
		return i, nil
	}
	for i, name := range DayNames {
		if strings.EqualFold(name, day) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown day %q", ErrInvalidArgument, day)
}

// NewTank builds a tank with the defaults used when a tank is added
func NewTank(category TankCategory, number int) Tank {
	return defaultTank(category, number, DefaultTankColor, DefaultTankDiameter, DefaultTankMaxHeight, DefaultTankCapacity)
}

// WeekLabel returns the display label of a ledger week (zero based index)
func WeekLabel(index int) string {
	return fmt.Sprintf("Week %d", index+1)
}

func defaultTank(category TankCategory, number int, color PaintColor, diameter, maxHeight, capacity float64) Tank {
	return Tank{
		ID:        fmt.Sprintf("%s%d", category.IDPrefix(), number),
		Number:    number,
		Category:  category,
		Color:     color,
		Diameter:  diameter,
		MaxHeight: maxHeight,
		Capacity:  capacity,
		Active:    true,
	}
}

func emptyEntries(tanks []Tank) []DailyTankConsumption {
	entries := make([]DailyTankConsumption, len(tanks))
	for i, t := range tanks {
		entries[i] = DailyTankConsumption{TankID: t.ID}
	}
	return entries
}

func defaultWeeks(opening, minLevel float64) []StockWeekRecord {
	weeks := make([]StockWeekRecord, WeeksPerLedger)
	for i := range weeks {
		weeks[i] = StockWeekRecord{
			WeekLabel:      WeekLabel(i),
			OpeningStock:   opening,
			RemainingStock: opening,
			MinStockLevel:  minLevel,
			Status:         StockStatusNormal,
		}
	}
	return weeks
}
