package mapper

import (
	"github.com/straye-as/paint-stock-api/internal/consumption"
	"github.com/straye-as/paint-stock-api/internal/domain"
)

// ToLevelCalculationDTO converts a weekly level calculation to its response shape
func ToLevelCalculationDTO(calc consumption.WeekCalculation) domain.LevelCalculationDTO {
	dto := domain.LevelCalculationDTO{
		Tanks:      make([]domain.TankCalculationDTO, 0, len(calc.Tanks)),
		ByCategory: calc.ByCategory,
		ByColor:    calc.ByColor,
		Total:      calc.Total,
	}
	for _, t := range calc.Tanks {
		dto.Tanks = append(dto.Tanks, ToTankCalculationDTO(t))
	}
	return dto
}

// ToTankCalculationDTO converts one tank's calculated figures
func ToTankCalculationDTO(t consumption.TankResult) domain.TankCalculationDTO {
	return domain.TankCalculationDTO{
		TankID:        t.Tank.ID,
		Category:      t.Tank.Category,
		Color:         t.Tank.Color,
		ConsumedMass:  t.ConsumedMass,
		RemainingMass: t.RemainingMass,
	}
}

// ApplyTankUpdate returns tank with the non-nil fields of req applied
func ApplyTankUpdate(tank domain.Tank, req domain.UpdateTankRequest) domain.Tank {
	if req.Color != nil {
		tank.Color = *req.Color
	}
	if req.Diameter != nil {
		tank.Diameter = *req.Diameter
	}
	if req.MaxHeight != nil {
		tank.MaxHeight = *req.MaxHeight
	}
	if req.Capacity != nil {
		tank.Capacity = *req.Capacity
	}
	if req.Active != nil {
		tank.Active = *req.Active
	}
	return tank
}
