package consumption_test

import (
	"testing"

	"github.com/straye-as/paint-stock-api/internal/consumption"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMass(t *testing.T, week *domain.WeeklyConsumption, day int, category domain.TankCategory, tankID string, mass float64) {
	t.Helper()
	updated, err := consumption.SetConsumptionEntry(week.Days[day], category, tankID, consumption.SetConsumedMass(mass))
	require.NoError(t, err)
	week.Days[day] = updated
}

func TestSetConsumptionEntry_MergesExistingEntry(t *testing.T) {
	day := domain.DefaultSnapshot().WeeklyConsumption.Days[0]

	updated, err := consumption.SetConsumptionEntry(day, domain.CategoryPinik, "pinik2", consumption.SetConsumedMass(12.5))
	require.NoError(t, err)

	assert.Len(t, updated.PinikEntries, 3)
	assert.Equal(t, 12.5, updated.PinikEntries[1].ConsumedMass)
	assert.Nil(t, updated.PinikEntries[1].Level)
	assert.Equal(t, 12.5, updated.DailyTotal)

	// input is untouched
	assert.Zero(t, day.PinikEntries[1].ConsumedMass)
	assert.Zero(t, day.DailyTotal)
}

func TestSetConsumptionEntry_CreatesMissingEntryWithDefaults(t *testing.T) {
	day := domain.DayRecord{DayName: "Monday"}

	updated, err := consumption.SetConsumptionEntry(day, domain.CategoryHome, "home9", consumption.SetLevel{Level: ptr(33)})
	require.NoError(t, err)
	require.Len(t, updated.HomeEntries, 1)
	assert.Equal(t, "home9", updated.HomeEntries[0].TankID)
	require.NotNil(t, updated.HomeEntries[0].Level)
	assert.Equal(t, 33.0, *updated.HomeEntries[0].Level)
	assert.Zero(t, updated.HomeEntries[0].ConsumedMass)

	updated, err = consumption.SetConsumptionEntry(updated, domain.CategoryIndustrial, "ind7", consumption.SetConsumedMass(4))
	require.NoError(t, err)
	require.Len(t, updated.IndustrialEntries, 1)
	assert.Nil(t, updated.IndustrialEntries[0].Level)
	assert.Equal(t, 4.0, updated.DailyTotal)
}

func TestSetConsumptionEntry_RecomputesDailyTotalAcrossCategories(t *testing.T) {
	week := domain.DefaultSnapshot().WeeklyConsumption

	setMass(t, &week, 2, domain.CategoryPinik, "pinik1", 10)
	setMass(t, &week, 2, domain.CategoryHome, "home1", 5)
	setMass(t, &week, 2, domain.CategoryIndustrial, "ind4", 2.5)
	assert.Equal(t, 17.5, week.Days[2].DailyTotal)

	setMass(t, &week, 2, domain.CategoryHome, "home1", 1)
	assert.Equal(t, 13.5, week.Days[2].DailyTotal)
	assert.Equal(t, consumption.DailyTotal(week.Days[2]), week.Days[2].DailyTotal)
}

func TestSetConsumptionEntry_ClearLevel(t *testing.T) {
	day := domain.DefaultSnapshot().WeeklyConsumption.Days[0]

	day, err := consumption.SetConsumptionEntry(day, domain.CategoryPinik, "pinik1", consumption.SetLevel{Level: ptr(12)})
	require.NoError(t, err)
	require.NotNil(t, day.PinikEntries[0].Level)

	day, err = consumption.SetConsumptionEntry(day, domain.CategoryPinik, "pinik1", consumption.SetLevel{})
	require.NoError(t, err)
	assert.Nil(t, day.PinikEntries[0].Level)
}

func TestSetConsumptionEntry_InvalidArguments(t *testing.T) {
	day := domain.DefaultSnapshot().WeeklyConsumption.Days[0]

	_, err := consumption.SetConsumptionEntry(day, domain.TankCategory("garage"), "pinik1", consumption.SetConsumedMass(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = consumption.SetConsumptionEntry(day, domain.CategoryPinik, "", consumption.SetConsumedMass(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = consumption.SetConsumptionEntry(day, domain.CategoryPinik, "pinik1", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseEntryCommand(t *testing.T) {
	cmd, err := consumption.ParseEntryCommand("level", ptr(4))
	require.NoError(t, err)
	assert.Equal(t, consumption.SetLevel{Level: ptr(4)}, cmd)

	cmd, err = consumption.ParseEntryCommand("consumedMass", nil)
	require.NoError(t, err)
	assert.Equal(t, consumption.SetConsumedMass(0), cmd)

	_, err = consumption.ParseEntryCommand("dailyTotal", ptr(1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTotalWeeklyConsumption(t *testing.T) {
	week := domain.DefaultSnapshot().WeeklyConsumption
	assert.Zero(t, consumption.TotalWeeklyConsumption(week))

	setMass(t, &week, 0, domain.CategoryPinik, "pinik1", 10)
	setMass(t, &week, 3, domain.CategoryHome, "home2", 7)
	setMass(t, &week, 6, domain.CategoryIndustrial, "ind3", 3)

	assert.Equal(t, 20.0, consumption.TotalWeeklyConsumption(week))
}

func TestConsumptionByColor(t *testing.T) {
	snap := domain.DefaultSnapshot()
	week := snap.WeeklyConsumption

	setMass(t, &week, 0, domain.CategoryPinik, "pinik1", 10)   // Metallic
	setMass(t, &week, 1, domain.CategoryHome, "home1", 5)      // Metallic
	setMass(t, &week, 1, domain.CategoryIndustrial, "ind2", 8) // Blue
	setMass(t, &week, 4, domain.CategoryIndustrial, "ind4", 2) // Pink
	setMass(t, &week, 5, domain.CategoryPinik, "pinik3", 1.5)  // White

	byColor := consumption.ConsumptionByColor(week, &snap.Parameters)

	assert.Len(t, byColor, len(domain.AllColors))
	assert.Equal(t, 15.0, byColor[domain.ColorMetallic])
	assert.Equal(t, 8.0, byColor[domain.ColorBlue])
	assert.Equal(t, 1.5, byColor[domain.ColorWhite])
	assert.Equal(t, 0.0, byColor[domain.ColorRed])
	assert.Equal(t, 2.0, byColor[domain.ColorPink])
}

func TestConsumptionByColor_SkipsOrphanedEntries(t *testing.T) {
	snap := domain.DefaultSnapshot()
	week := snap.WeeklyConsumption

	setMass(t, &week, 0, domain.CategoryIndustrial, "ind2", 8)
	setMass(t, &week, 0, domain.CategoryIndustrial, "ind1", 4)

	// remove ind2 from configuration, its entries stay in the week
	snap.Parameters.IndustrialTanks = append([]domain.Tank{snap.Parameters.IndustrialTanks[0]}, snap.Parameters.IndustrialTanks[2:]...)

	var byColor map[domain.PaintColor]float64
	require.NotPanics(t, func() {
		byColor = consumption.ConsumptionByColor(week, &snap.Parameters)
	})
	assert.Equal(t, 0.0, byColor[domain.ColorBlue])
	assert.Equal(t, 4.0, byColor[domain.ColorMetallic])

	// the raw total still counts the stored entry
	assert.Equal(t, 12.0, consumption.TotalWeeklyConsumption(week))
}

func TestConsumptionByColor_ResolvesAcrossAllTankLists(t *testing.T) {
	snap := domain.DefaultSnapshot()
	week := snap.WeeklyConsumption

	// ind3 is configured as an industrial tank but recorded under home
	setMass(t, &week, 0, domain.CategoryHome, "ind3", 9)

	byColor := consumption.ConsumptionByColor(week, &snap.Parameters)
	assert.Equal(t, 9.0, byColor[domain.ColorRed])
}

func TestConsumptionByCategoryAndDailyTotals(t *testing.T) {
	week := domain.DefaultSnapshot().WeeklyConsumption

	setMass(t, &week, 0, domain.CategoryPinik, "pinik1", 10)
	setMass(t, &week, 1, domain.CategoryPinik, "pinik2", 2)
	setMass(t, &week, 1, domain.CategoryIndustrial, "ind1", 3)

	byCategory := consumption.ConsumptionByCategory(week)
	assert.Equal(t, 12.0, byCategory[domain.CategoryPinik])
	assert.Equal(t, 0.0, byCategory[domain.CategoryHome])
	assert.Equal(t, 3.0, byCategory[domain.CategoryIndustrial])

	totals := consumption.DailyTotals(week)
	require.Len(t, totals, domain.DaysPerWeek)
	assert.Equal(t, "Monday", totals[0].DayName)
	assert.Equal(t, 10.0, totals[0].Total)
	assert.Equal(t, 5.0, totals[1].Total)
	assert.Equal(t, 0.0, totals[6].Total)
}
