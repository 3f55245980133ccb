package mapper_test

import (
	"testing"

	"github.com/straye-as/paint-stock-api/internal/consumption"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLevelCalculationDTO(t *testing.T) {
	params := domain.DefaultSnapshot().Parameters
	monday, friday := 60.0, 40.0
	calc := consumption.CalculateWeek(&params, map[string]domain.LevelReading{
		"pinik1": {MondayLevel: &monday, FridayLevel: &friday},
	})

	dto := mapper.ToLevelCalculationDTO(calc)

	require.Len(t, dto.Tanks, len(params.AllTanks()))
	first := dto.Tanks[0]
	assert.Equal(t, "pinik1", first.TankID)
	assert.Equal(t, domain.CategoryPinik, first.Category)
	assert.Equal(t, domain.ColorMetallic, first.Color)
	assert.InDelta(t, 41.23, first.ConsumedMass, 0.01)
	assert.InDelta(t, 82.47, first.RemainingMass, 0.01)
	assert.Equal(t, calc.Total, dto.Total)
}

func TestApplyTankUpdate(t *testing.T) {
	tank := domain.NewTank(domain.CategoryHome, 4)
	color := domain.ColorPink
	diameter := 42.0
	inactive := false

	updated := mapper.ApplyTankUpdate(tank, domain.UpdateTankRequest{
		Color:    &color,
		Diameter: &diameter,
		Active:   &inactive,
	})

	assert.Equal(t, "home4", updated.ID)
	assert.Equal(t, domain.ColorPink, updated.Color)
	assert.Equal(t, 42.0, updated.Diameter)
	assert.Equal(t, domain.DefaultTankMaxHeight, updated.MaxHeight)
	assert.False(t, updated.Active)
	assert.True(t, tank.Active, "input tank is a value and stays unchanged")
}
