package domain

import "time"

// PaintColor identifies a paint type. It is the key used by paint parameters,
// tanks, ledgers and reports.
type PaintColor string

const (
	ColorMetallic PaintColor = "Metallic"
	ColorBlue     PaintColor = "Blue"
	ColorWhite    PaintColor = "White"
	ColorRed      PaintColor = "Red"
	ColorPink     PaintColor = "Pink"
)

// AllColors lists every paint color in display order
var AllColors = []PaintColor{ColorMetallic, ColorBlue, ColorWhite, ColorRed, ColorPink}

// IsValid checks if the paint color is one of the known colors
func (c PaintColor) IsValid() bool {
	switch c {
	case ColorMetallic, ColorBlue, ColorWhite, ColorRed, ColorPink:
		return true
	}
	return false
}

// TankCategory is the production unit a tank belongs to
type TankCategory string

const (
	CategoryPinik      TankCategory = "pinik"
	CategoryHome       TankCategory = "home"
	CategoryIndustrial TankCategory = "industrial"
)

// AllCategories lists the production units in display order
var AllCategories = []TankCategory{CategoryPinik, CategoryHome, CategoryIndustrial}

// IsValid checks if the category is one of the three production units
func (c TankCategory) IsValid() bool {
	switch c {
	case CategoryPinik, CategoryHome, CategoryIndustrial:
		return true
	}
	return false
}

// IDPrefix returns the prefix used when generating ids for new tanks
func (c TankCategory) IDPrefix() string {
	switch c {
	case CategoryPinik:
		return "pinik"
	case CategoryHome:
		return "home"
	case CategoryIndustrial:
		return "ind"
	default:
		return string(c)
	}
}

// StockStatus classifies remaining stock against the configured minimum
type StockStatus string

const (
	StockStatusNormal   StockStatus = "Normal"
	StockStatusLow      StockStatus = "Low"
	StockStatusCritical StockStatus = "Critical"
)

// PaintParameter holds per-color settings used in mass conversion
type PaintParameter struct {
	Color     PaintColor `json:"color" validate:"required"`
	ColorCode string     `json:"colorCode" validate:"max=10"`
	Density   float64    `json:"density" validate:"gt=0"`
	Active    bool       `json:"active"`
}

// Tank is a cylindrical vessel holding a single paint color
type Tank struct {
	ID        string       `json:"id" validate:"required,max=50"`
	Number    int          `json:"number" validate:"gt=0"`
	Category  TankCategory `json:"category" validate:"required,oneof=pinik home industrial"`
	Color     PaintColor   `json:"color" validate:"required"`
	Diameter  float64      `json:"diameter" validate:"gt=0"`
	MaxHeight float64      `json:"maxHeight" validate:"gt=0"`
	Capacity  float64      `json:"capacity" validate:"gt=0"`
	Active    bool         `json:"active"`
}

// Parameters is the configuration part of the application snapshot
type Parameters struct {
	Paints          []PaintParameter `json:"paints" validate:"dive"`
	PinikTanks      []Tank           `json:"pinikTanks" validate:"dive"`
	HomeTanks       []Tank           `json:"homeTanks" validate:"dive"`
	IndustrialTanks []Tank           `json:"industrialTanks" validate:"dive"`
}

// TanksFor returns the tank list for a category
func (p *Parameters) TanksFor(category TankCategory) []Tank {
	switch category {
	case CategoryPinik:
		return p.PinikTanks
	case CategoryHome:
		return p.HomeTanks
	case CategoryIndustrial:
		return p.IndustrialTanks
	}
	return nil
}

// SetTanks replaces the tank list for a category
func (p *Parameters) SetTanks(category TankCategory, tanks []Tank) {
	switch category {
	case CategoryPinik:
		p.PinikTanks = tanks
	case CategoryHome:
		p.HomeTanks = tanks
	case CategoryIndustrial:
		p.IndustrialTanks = tanks
	}
}

// FindTank looks a tank up by id across all three categories.
// The second return value is false for ids with no backing tank.
func (p *Parameters) FindTank(id string) (Tank, bool) {
	for _, category := range AllCategories {
		for _, t := range p.TanksFor(category) {
			if t.ID == id {
				return t, true
			}
		}
	}
	return Tank{}, false
}

// AllTanks returns every configured tank, pinik first
func (p *Parameters) AllTanks() []Tank {
	all := make([]Tank, 0, len(p.PinikTanks)+len(p.HomeTanks)+len(p.IndustrialTanks))
	all = append(all, p.PinikTanks...)
	all = append(all, p.HomeTanks...)
	all = append(all, p.IndustrialTanks...)
	return all
}

// Paint returns the parameter for a color
func (p *Parameters) Paint(color PaintColor) (PaintParameter, bool) {
	for _, paint := range p.Paints {
		if paint.Color == color {
			return paint, true
		}
	}
	return PaintParameter{}, false
}

// LevelReading is the transient pair of readings used to derive weekly consumption
type LevelReading struct {
	MondayLevel *float64 `json:"mondayLevel"`
	FridayLevel *float64 `json:"fridayLevel"`
}

// DailyTankConsumption is one tank's figures for one day
type DailyTankConsumption struct {
	TankID       string   `json:"tankId"`
	Level        *float64 `json:"level"`
	ConsumedMass float64  `json:"consumedMass"`
}

// DayRecord groups the per-tank consumption entries of a single day
type DayRecord struct {
	DayName           string                 `json:"dayName"`
	PinikEntries      []DailyTankConsumption `json:"pinikEntries"`
	HomeEntries       []DailyTankConsumption `json:"homeEntries"`
	IndustrialEntries []DailyTankConsumption `json:"industrialEntries"`
	DailyTotal        float64                `json:"dailyTotal"`
}

// EntriesFor returns the entry list for a category
func (d *DayRecord) EntriesFor(category TankCategory) []DailyTankConsumption {
	switch category {
	case CategoryPinik:
		return d.PinikEntries
	case CategoryHome:
		return d.HomeEntries
	case CategoryIndustrial:
		return d.IndustrialEntries
	}
	return nil
}

// SetEntries replaces the entry list for a category
func (d *DayRecord) SetEntries(category TankCategory, entries []DailyTankConsumption) {
	switch category {
	case CategoryPinik:
		d.PinikEntries = entries
	case CategoryHome:
		d.HomeEntries = entries
	case CategoryIndustrial:
		d.IndustrialEntries = entries
	}
}

// DaysPerWeek is the fixed number of day records in a week
const DaysPerWeek = 7

// WeeklyConsumption is the current week's consumption record, Monday first
type WeeklyConsumption struct {
	WeekNumber int         `json:"weekNumber"`
	DateRange  string      `json:"dateRange"`
	Days       []DayRecord `json:"days"`
}

// WeeksPerLedger is the fixed length of each color's stock ledger
const WeeksPerLedger = 4

// StockWeekRecord is a single week in a color's stock ledger.
// RemainingStock and Status are always derived.
type StockWeekRecord struct {
	WeekLabel             string      `json:"weekLabel"`
	OpeningStock          float64     `json:"openingStock"`
	Inflow                float64     `json:"inflow"`
	ProductionConsumption float64     `json:"productionConsumption"`
	WasteLoss             float64     `json:"wasteLoss"`
	RemainingStock        float64     `json:"remainingStock"`
	MinStockLevel         float64     `json:"minStockLevel"`
	Status                StockStatus `json:"status"`
}

// StockLedger maps each paint color to its four weekly records
type StockLedger map[PaintColor][]StockWeekRecord

// Snapshot is the full persisted application state
type Snapshot struct {
	Parameters        Parameters        `json:"parameters"`
	WeeklyConsumption WeeklyConsumption `json:"weeklyConsumption"`
	StockLedger       StockLedger       `json:"stockLedger"`
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Parameters: Parameters{
			Paints:          append([]PaintParameter(nil), s.Parameters.Paints...),
			PinikTanks:      append([]Tank(nil), s.Parameters.PinikTanks...),
			HomeTanks:       append([]Tank(nil), s.Parameters.HomeTanks...),
			IndustrialTanks: append([]Tank(nil), s.Parameters.IndustrialTanks...),
		},
		WeeklyConsumption: WeeklyConsumption{
			WeekNumber: s.WeeklyConsumption.WeekNumber,
			DateRange:  s.WeeklyConsumption.DateRange,
			Days:       make([]DayRecord, len(s.WeeklyConsumption.Days)),
		},
		StockLedger: make(StockLedger, len(s.StockLedger)),
	}
	for i, day := range s.WeeklyConsumption.Days {
		out.WeeklyConsumption.Days[i] = day.Clone()
	}
	for color, weeks := range s.StockLedger {
		out.StockLedger[color] = append([]StockWeekRecord(nil), weeks...)
	}
	return out
}

// Clone returns a deep copy of the day record
func (d DayRecord) Clone() DayRecord {
	out := d
	out.PinikEntries = cloneEntries(d.PinikEntries)
	out.HomeEntries = cloneEntries(d.HomeEntries)
	out.IndustrialEntries = cloneEntries(d.IndustrialEntries)
	return out
}

func cloneEntries(entries []DailyTankConsumption) []DailyTankConsumption {
	if entries == nil {
		return nil
	}
	out := make([]DailyTankConsumption, len(entries))
	for i, e := range entries {
		out[i] = e
		if e.Level != nil {
			level := *e.Level
			out[i].Level = &level
		}
	}
	return out
}

// LowStockEntry is a flagged ledger week tagged with its color
type LowStockEntry struct {
	Color     PaintColor `json:"color"`
	WeekIndex int        `json:"weekIndex"`
	StockWeekRecord
}

// ReportRow is one line of the weekly consumption report
type ReportRow struct {
	Color      PaintColor `json:"color"`
	ThisWeek   float64    `json:"thisWeek"`
	Target     float64    `json:"target"`
	Difference float64    `json:"difference"`
	Percentage float64    `json:"percentage"`
}

// Report is the weekly consumption report with its totals row
type Report struct {
	WeekNumber int         `json:"weekNumber"`
	Rows       []ReportRow `json:"rows"`
	Total      ReportRow   `json:"total"`
}

// SnapshotRecord is the database row backing the SQL blob store
type SnapshotRecord struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for SnapshotRecord
func (SnapshotRecord) TableName() string {
	return "snapshots"
}
