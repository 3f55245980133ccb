package domain

// ============================================================================
// Request DTOs
// ============================================================================

// UpdateStockFieldRequest sets one editable field of a ledger week
type UpdateStockFieldRequest struct {
	Field string   `json:"field" validate:"required,oneof=openingStock inflow productionConsumption wasteLoss minStockLevel"`
	Value *float64 `json:"value" validate:"required"`
}

// UpdateWeekRequest changes the current week number and optionally its date range
type UpdateWeekRequest struct {
	WeekNumber int     `json:"weekNumber" validate:"gte=1"`
	DateRange  *string `json:"dateRange,omitempty" validate:"omitempty,max=100"`
}

// UpdateConsumptionEntryRequest sets one field of a day's tank entry.
// A null value clears the level, or zeroes the consumed mass.
type UpdateConsumptionEntryRequest struct {
	Field string   `json:"field" validate:"required,oneof=level consumedMass"`
	Value *float64 `json:"value"`
}

// UpdateDensityRequest changes the density of a paint color
type UpdateDensityRequest struct {
	Density float64 `json:"density" validate:"gt=0"`
}

// UpdateTankRequest edits a tank. Omitted fields are left unchanged.
type UpdateTankRequest struct {
	Color     *PaintColor `json:"color,omitempty"`
	Diameter  *float64    `json:"diameter,omitempty" validate:"omitempty,gt=0"`
	MaxHeight *float64    `json:"maxHeight,omitempty" validate:"omitempty,gt=0"`
	Capacity  *float64    `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Active    *bool       `json:"active,omitempty"`
}

// CalculateLevelsRequest carries Monday/Friday readings keyed by tank id
type CalculateLevelsRequest struct {
	Readings map[string]LevelReading `json:"readings" validate:"required"`
}

// LoginRequest carries the admin password
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// SummaryDTO is the dashboard view over the current snapshot
type SummaryDTO struct {
	WeekNumber             int                      `json:"weekNumber"`
	TotalWeeklyConsumption float64                  `json:"totalWeeklyConsumption"`
	ConsumptionByColor     map[PaintColor]float64   `json:"consumptionByColor"`
	ConsumptionByCategory  map[TankCategory]float64 `json:"consumptionByCategory"`
	DailyTotals            []DailyTotalDTO          `json:"dailyTotals"`
	CurrentStock           map[PaintColor]float64   `json:"currentStock"`
	LowStock               []LowStockEntry          `json:"lowStock"`
}

// DailyTotalDTO is a single day's total
type DailyTotalDTO struct {
	DayName string  `json:"dayName"`
	Total   float64 `json:"total"`
}

// TankCalculationDTO is the derived consumption of a single tank
type TankCalculationDTO struct {
	TankID        string       `json:"tankId"`
	Category      TankCategory `json:"category"`
	Color         PaintColor   `json:"color"`
	ConsumedMass  float64      `json:"consumedMass"`
	RemainingMass float64      `json:"remainingMass"`
}

// LevelCalculationDTO is the result of converting a week's level readings
type LevelCalculationDTO struct {
	Tanks      []TankCalculationDTO     `json:"tanks"`
	ByCategory map[TankCategory]float64 `json:"byCategory"`
	ByColor    map[PaintColor]float64   `json:"byColor"`
	Total      float64                  `json:"total"`
}

// LoginResponse carries the admin session token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// ErrorResponse is the documented error body
type ErrorResponse = APIError
