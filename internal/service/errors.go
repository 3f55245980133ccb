package service

import (
	"fmt"

	"github.com/straye-as/paint-stock-api/internal/domain"
)

// Store errors wrap the domain sentinels so callers can branch with errors.Is
var (
	// ErrTankNotFound is returned when a tank id is not configured in a category
	ErrTankNotFound = fmt.Errorf("%w: tank", domain.ErrNotFound)

	// ErrPaintNotFound is returned when a color has no paint parameter
	ErrPaintNotFound = fmt.Errorf("%w: paint parameter", domain.ErrNotFound)

	// ErrDuplicateTank is returned when a tank id appears more than once
	ErrDuplicateTank = fmt.Errorf("%w: duplicate tank id", domain.ErrInvalidArgument)

	// ErrDuplicatePaint is returned when a color has more than one paint parameter
	ErrDuplicatePaint = fmt.Errorf("%w: duplicate paint color", domain.ErrInvalidArgument)
)
