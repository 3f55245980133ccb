package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/straye-as/paint-stock-api/internal/consumption"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/ledger"
	"github.com/straye-as/paint-stock-api/internal/logger"
	"github.com/straye-as/paint-stock-api/internal/mapper"
	"github.com/straye-as/paint-stock-api/internal/report"
	"github.com/straye-as/paint-stock-api/internal/storage"
	"go.uber.org/zap"
)

// StoreService owns the application snapshot. Every mutation works on a copy
// and only replaces the current snapshot after the copy was persisted, so a
// rejected or failed mutation leaves the state untouched. Last write wins.
type StoreService struct {
	store    storage.Storage
	key      string
	targets  map[domain.PaintColor]float64
	validate *validator.Validate
	logger   *zap.Logger

	mu   sync.RWMutex
	snap *domain.Snapshot
}

// NewStoreService creates a store holding the default snapshot.
// Call Load to pick up previously persisted state.
func NewStoreService(store storage.Storage, key string, targets map[domain.PaintColor]float64, logger *zap.Logger) *StoreService {
	if targets == nil {
		targets = domain.DefaultTargets
	}
	return &StoreService{
		store:    store,
		key:      key,
		targets:  targets,
		validate: validator.New(),
		logger:   logger,
		snap:     domain.DefaultSnapshot(),
	}
}

// Load reads the persisted snapshot. A missing, unreadable or structurally
// invalid blob leaves the defaults in place; only storage failures are returned.
func (s *StoreService) Load(ctx context.Context) error {
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Info("no persisted snapshot, starting from defaults", zap.String("key", s.key))
			s.replace(domain.DefaultSnapshot())
			return nil
		}
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		s.logger.Warn("persisted snapshot is corrupt, falling back to defaults",
			zap.String("key", s.key),
			zap.Error(err),
		)
		s.replace(domain.DefaultSnapshot())
		return nil
	}

	s.replace(snap)
	s.logger.Info("snapshot loaded",
		zap.String("key", s.key),
		zap.Int("weekNumber", snap.WeeklyConsumption.WeekNumber),
	)
	return nil
}

func decodeSnapshot(data []byte) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot json: %w", err)
	}
	if err := ledger.Validate(snap.StockLedger); err != nil {
		return nil, err
	}
	if len(snap.WeeklyConsumption.Days) != domain.DaysPerWeek {
		return nil, fmt.Errorf("expected %d day records, got %d", domain.DaysPerWeek, len(snap.WeeklyConsumption.Days))
	}
	if snap.WeeklyConsumption.WeekNumber < 1 {
		return nil, fmt.Errorf("week number %d is not positive", snap.WeeklyConsumption.WeekNumber)
	}
	return &snap, nil
}

func (s *StoreService) replace(snap *domain.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// mutate applies fn to a copy of the current snapshot, persists the copy and
// then makes it current
func (s *StoreService) mutate(ctx context.Context, operation string, fn func(next *domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snap.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		logger.WithOperation(s.logger, operation).Error("failed to persist snapshot", zap.Error(err))
		return err
	}

	s.snap = next
	logger.WithOperation(s.logger, operation).Debug("snapshot updated")
	return nil
}

func (s *StoreService) persist(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.store.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current snapshot
func (s *StoreService) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// read runs fn against the current snapshot under the read lock.
// fn must not retain or modify the snapshot.
func (s *StoreService) read(fn func(snap *domain.Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.snap)
}

// ============================================================================
// Mutations
// ============================================================================

// UpdateParameters replaces the whole configuration after validating it
func (s *StoreService) UpdateParameters(ctx context.Context, params domain.Parameters) error {
	if err := s.validateParameters(&params); err != nil {
		return err
	}
	return s.mutate(ctx, "update_parameters", func(next *domain.Snapshot) error {
		clone := (&domain.Snapshot{Parameters: params}).Clone()
		next.Parameters = clone.Parameters
		return nil
	})
}

func (s *StoreService) validateParameters(params *domain.Parameters) error {
	if err := s.validate.Struct(params); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	seenColors := make(map[domain.PaintColor]bool, len(params.Paints))
	for _, p := range params.Paints {
		if !p.Color.IsValid() {
			return fmt.Errorf("%w: unknown paint color %q", domain.ErrInvalidArgument, p.Color)
		}
		if seenColors[p.Color] {
			return fmt.Errorf("%w: %s", ErrDuplicatePaint, p.Color)
		}
		seenColors[p.Color] = true
	}

	seenTanks := make(map[string]bool)
	for _, category := range domain.AllCategories {
		for _, t := range params.TanksFor(category) {
			if err := validateTank(t); err != nil {
				return err
			}
			if t.Category != category {
				return fmt.Errorf("%w: tank %s has category %q but is listed under %q",
					domain.ErrInvalidArgument, t.ID, t.Category, category)
			}
			if seenTanks[t.ID] {
				return fmt.Errorf("%w: %s", ErrDuplicateTank, t.ID)
			}
			seenTanks[t.ID] = true
		}
	}
	return nil
}

func validateTank(t domain.Tank) error {
	if !t.Color.IsValid() {
		return fmt.Errorf("%w: tank %s has unknown color %q", domain.ErrInvalidArgument, t.ID, t.Color)
	}
	if t.Diameter <= 0 || t.MaxHeight <= 0 || t.Capacity <= 0 {
		return fmt.Errorf("%w: tank %s dimensions must be positive", domain.ErrInvalidArgument, t.ID)
	}
	return nil
}

// UpdateStockField applies a single ledger edit and cascades it forward
func (s *StoreService) UpdateStockField(ctx context.Context, color domain.PaintColor, weekIndex int, cmd ledger.Command) error {
	return s.mutate(ctx, "update_stock_field", func(next *domain.Snapshot) error {
		updated, err := ledger.ApplyFieldUpdate(next.StockLedger, color, weekIndex, cmd)
		if err != nil {
			return err
		}
		next.StockLedger = updated
		return nil
	})
}

// UpdateWeekNumber sets the current week number
func (s *StoreService) UpdateWeekNumber(ctx context.Context, weekNumber int) error {
	if weekNumber < 1 {
		return fmt.Errorf("%w: week number must be at least 1", domain.ErrInvalidArgument)
	}
	return s.mutate(ctx, "update_week_number", func(next *domain.Snapshot) error {
		next.WeeklyConsumption.WeekNumber = weekNumber
		return nil
	})
}

// UpdateDateRange sets the free-text date range of the current week
func (s *StoreService) UpdateDateRange(ctx context.Context, dateRange string) error {
	return s.mutate(ctx, "update_date_range", func(next *domain.Snapshot) error {
		next.WeeklyConsumption.DateRange = dateRange
		return nil
	})
}

// UpdateConsumptionEntry edits one tank entry of one day and refreshes that day's total
func (s *StoreService) UpdateConsumptionEntry(ctx context.Context, dayIndex int, category domain.TankCategory, tankID string, cmd consumption.EntryCommand) error {
	return s.mutate(ctx, "update_consumption_entry", func(next *domain.Snapshot) error {
		days := next.WeeklyConsumption.Days
		if dayIndex < 0 || dayIndex >= len(days) {
			return fmt.Errorf("%w: day index %d out of range", domain.ErrInvalidArgument, dayIndex)
		}
		day, err := consumption.SetConsumptionEntry(days[dayIndex], category, tankID, cmd)
		if err != nil {
			return err
		}
		days[dayIndex] = day
		return nil
	})
}

// UpdateDensity changes the density of a configured paint color
func (s *StoreService) UpdateDensity(ctx context.Context, color domain.PaintColor, density float64) error {
	if !color.IsValid() {
		return fmt.Errorf("%w: unknown paint color %q", domain.ErrInvalidArgument, color)
	}
	if density <= 0 {
		return fmt.Errorf("%w: density must be positive", domain.ErrInvalidArgument)
	}
	return s.mutate(ctx, "update_density", func(next *domain.Snapshot) error {
		for i := range next.Parameters.Paints {
			if next.Parameters.Paints[i].Color == color {
				next.Parameters.Paints[i].Density = density
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrPaintNotFound, color)
	})
}

// AddTank appends a tank with default dimensions to a category. Its number is
// one above the highest number in the category, skipping ids already in use.
func (s *StoreService) AddTank(ctx context.Context, category domain.TankCategory) (domain.Tank, error) {
	if !category.IsValid() {
		return domain.Tank{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidArgument, category)
	}

	var added domain.Tank
	err := s.mutate(ctx, "add_tank", func(next *domain.Snapshot) error {
		tanks := next.Parameters.TanksFor(category)
		number := 0
		for _, t := range tanks {
			if t.Number > number {
				number = t.Number
			}
		}
		for {
			number++
			added = domain.NewTank(category, number)
			if _, exists := next.Parameters.FindTank(added.ID); !exists {
				break
			}
		}
		next.Parameters.SetTanks(category, append(tanks, added))
		return nil
	})
	if err != nil {
		return domain.Tank{}, err
	}
	return added, nil
}

// UpdateTank edits a configured tank. Id, number and category cannot change.
func (s *StoreService) UpdateTank(ctx context.Context, category domain.TankCategory, tankID string, req domain.UpdateTankRequest) (domain.Tank, error) {
	if !category.IsValid() {
		return domain.Tank{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidArgument, category)
	}

	var updated domain.Tank
	err := s.mutate(ctx, "update_tank", func(next *domain.Snapshot) error {
		tanks := next.Parameters.TanksFor(category)
		for i, t := range tanks {
			if t.ID != tankID {
				continue
			}
			candidate := mapper.ApplyTankUpdate(t, req)
			if err := validateTank(candidate); err != nil {
				return err
			}
			tanks[i] = candidate
			updated = candidate
			return nil
		}
		return fmt.Errorf("%w: %s in %s", ErrTankNotFound, tankID, category)
	})
	if err != nil {
		return domain.Tank{}, err
	}
	return updated, nil
}

// RemoveTank deletes a tank from the configuration. Consumption entries that
// reference it are kept and no longer count towards any color.
func (s *StoreService) RemoveTank(ctx context.Context, category domain.TankCategory, tankID string) error {
	if !category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidArgument, category)
	}
	return s.mutate(ctx, "remove_tank", func(next *domain.Snapshot) error {
		tanks := next.Parameters.TanksFor(category)
		kept := make([]domain.Tank, 0, len(tanks))
		for _, t := range tanks {
			if t.ID != tankID {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tanks) {
			return fmt.Errorf("%w: %s in %s", ErrTankNotFound, tankID, category)
		}
		next.Parameters.SetTanks(category, kept)
		return nil
	})
}

// Reset deletes the persisted snapshot and restores the defaults
func (s *StoreService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		logger.WithOperation(s.logger, "reset").Error("failed to delete snapshot", zap.Error(err))
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	s.snap = domain.DefaultSnapshot()
	s.logger.Info("snapshot reset to defaults", zap.String("key", s.key))
	return nil
}

// ============================================================================
// Derived reads
// ============================================================================

// TotalWeeklyConsumption sums every consumption entry of the current week
func (s *StoreService) TotalWeeklyConsumption() float64 {
	var total float64
	s.read(func(snap *domain.Snapshot) {
		total = consumption.TotalWeeklyConsumption(snap.WeeklyConsumption)
	})
	return total
}

// ConsumptionByColor attributes the current week's consumption to paint colors
func (s *StoreService) ConsumptionByColor() map[domain.PaintColor]float64 {
	var byColor map[domain.PaintColor]float64
	s.read(func(snap *domain.Snapshot) {
		byColor = consumption.ConsumptionByColor(snap.WeeklyConsumption, &snap.Parameters)
	})
	return byColor
}

// CurrentStock returns the first ledger week's remaining stock per color
func (s *StoreService) CurrentStock() map[domain.PaintColor]float64 {
	var stock map[domain.PaintColor]float64
	s.read(func(snap *domain.Snapshot) {
		stock = ledger.CurrentStock(snap.StockLedger)
	})
	return stock
}

// LowStock lists every Low or Critical ledger week, tagged with its color
func (s *StoreService) LowStock() []domain.LowStockEntry {
	var entries []domain.LowStockEntry
	s.read(func(snap *domain.Snapshot) {
		entries = ledger.LowStock(snap.StockLedger)
	})
	return entries
}

// Ledger returns the four weekly records of a color
func (s *StoreService) Ledger(color domain.PaintColor) ([]domain.StockWeekRecord, error) {
	if !color.IsValid() {
		return nil, fmt.Errorf("%w: unknown paint color %q", domain.ErrInvalidArgument, color)
	}
	var weeks []domain.StockWeekRecord
	s.read(func(snap *domain.Snapshot) {
		weeks = append([]domain.StockWeekRecord(nil), snap.StockLedger[color]...)
	})
	if weeks == nil {
		return nil, fmt.Errorf("%w: ledger for %s", domain.ErrNotFound, color)
	}
	return weeks, nil
}

// Summary gathers the dashboard figures from one consistent snapshot
func (s *StoreService) Summary() domain.SummaryDTO {
	var summary domain.SummaryDTO
	s.read(func(snap *domain.Snapshot) {
		week := snap.WeeklyConsumption
		summary = domain.SummaryDTO{
			WeekNumber:             week.WeekNumber,
			TotalWeeklyConsumption: consumption.TotalWeeklyConsumption(week),
			ConsumptionByColor:     consumption.ConsumptionByColor(week, &snap.Parameters),
			ConsumptionByCategory:  consumption.ConsumptionByCategory(week),
			DailyTotals:            consumption.DailyTotals(week),
			CurrentStock:           ledger.CurrentStock(snap.StockLedger),
			LowStock:               ledger.LowStock(snap.StockLedger),
		}
	})
	return summary
}

// Report builds the weekly consumption-versus-target report
func (s *StoreService) Report() domain.Report {
	var rep domain.Report
	s.read(func(snap *domain.Snapshot) {
		byColor := consumption.ConsumptionByColor(snap.WeeklyConsumption, &snap.Parameters)
		rep = report.Build(snap.WeeklyConsumption.WeekNumber, byColor, s.targets)
	})
	return rep
}

// CalculateLevels converts Monday/Friday readings into consumed and remaining
// mass with the current configuration. Readings are not stored.
func (s *StoreService) CalculateLevels(readings map[string]domain.LevelReading) domain.LevelCalculationDTO {
	var calc consumption.WeekCalculation
	s.read(func(snap *domain.Snapshot) {
		calc = consumption.CalculateWeek(&snap.Parameters, readings)
	})
	return mapper.ToLevelCalculationDTO(calc)
}
