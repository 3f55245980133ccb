package ledger_test

import (
	"testing"

	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLedger() domain.StockLedger {
	return domain.DefaultSnapshot().StockLedger
}

func assertInvariants(t *testing.T, l domain.StockLedger) {
	t.Helper()
	for color, weeks := range l {
		for i, w := range weeks {
			assert.InDelta(t, w.OpeningStock+w.Inflow-w.ProductionConsumption-w.WasteLoss, w.RemainingStock, 1e-9,
				"remaining stock invariant broken for %s week %d", color, i)
			assert.Equal(t, ledger.Classify(w.RemainingStock, w.MinStockLevel), w.Status)
		}
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		remaining float64
		minLevel  float64
		want      domain.StockStatus
	}{
		{name: "above minimum is normal", remaining: 151, minLevel: 150, want: domain.StockStatusNormal},
		{name: "equal to minimum is low", remaining: 150, minLevel: 150, want: domain.StockStatusLow},
		{name: "between half and minimum is low", remaining: 90, minLevel: 150, want: domain.StockStatusLow},
		{name: "equal to half minimum is critical", remaining: 75, minLevel: 150, want: domain.StockStatusCritical},
		{name: "negative remaining is critical", remaining: -20, minLevel: 150, want: domain.StockStatusCritical},
		{name: "zero minimum with zero remaining is critical", remaining: 0, minLevel: 0, want: domain.StockStatusCritical},
		{name: "zero minimum with positive remaining is normal", remaining: 1, minLevel: 0, want: domain.StockStatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.Classify(tt.remaining, tt.minLevel))
		})
	}
}

func TestApplyFieldUpdate_BlueScenario(t *testing.T) {
	l := defaultLedger()

	var err error
	l, err = ledger.ApplyFieldUpdate(l, domain.ColorBlue, 0, ledger.SetProductionConsumption(300))
	require.NoError(t, err)
	l, err = ledger.ApplyFieldUpdate(l, domain.ColorBlue, 0, ledger.SetWasteLoss(10))
	require.NoError(t, err)

	week0 := l[domain.ColorBlue][0]
	assert.Equal(t, 400.0, week0.OpeningStock)
	assert.Equal(t, 90.0, week0.RemainingStock)
	assert.Equal(t, 150.0, week0.MinStockLevel)
	assert.Equal(t, domain.StockStatusLow, week0.Status)

	assert.Equal(t, 90.0, l[domain.ColorBlue][1].OpeningStock)
	assertInvariants(t, l)
}

func TestApplyFieldUpdate_CascadesThroughAllLaterWeeks(t *testing.T) {
	l := defaultLedger()

	l, err := ledger.ApplyFieldUpdate(l, domain.ColorMetallic, 0, ledger.SetProductionConsumption(100))
	require.NoError(t, err)

	weeks := l[domain.ColorMetallic]
	assert.Equal(t, 400.0, weeks[0].RemainingStock)
	for i := 1; i < domain.WeeksPerLedger; i++ {
		assert.Equal(t, weeks[i-1].RemainingStock, weeks[i].OpeningStock, "week %d opening", i)
		assert.Equal(t, 400.0, weeks[i].RemainingStock, "week %d remaining", i)
	}
	assertInvariants(t, l)
}

func TestApplyFieldUpdate_CascadeProperty(t *testing.T) {
	for weekIndex := 0; weekIndex < domain.WeeksPerLedger; weekIndex++ {
		before := defaultLedger()
		// Give each week its own movement so cascades are observable
		var err error
		for i := 0; i < domain.WeeksPerLedger; i++ {
			before, err = ledger.ApplyFieldUpdate(before, domain.ColorWhite, i, ledger.SetInflow(float64(10*(i+1))))
			require.NoError(t, err)
		}

		after, err := ledger.ApplyFieldUpdate(before, domain.ColorWhite, weekIndex, ledger.SetProductionConsumption(123.5))
		require.NoError(t, err)

		for j := 0; j <= weekIndex; j++ {
			assert.Equal(t, before[domain.ColorWhite][j].OpeningStock, after[domain.ColorWhite][j].OpeningStock,
				"edit of week %d changed opening of week %d", weekIndex, j)
		}
		for j := weekIndex + 1; j < domain.WeeksPerLedger; j++ {
			assert.Equal(t, after[domain.ColorWhite][j-1].RemainingStock, after[domain.ColorWhite][j].OpeningStock,
				"edit of week %d did not cascade into week %d", weekIndex, j)
		}
		assertInvariants(t, after)
	}
}

func TestApplyFieldUpdate_DoesNotMutateInput(t *testing.T) {
	before := defaultLedger()
	original := append([]domain.StockWeekRecord(nil), before[domain.ColorRed]...)

	after, err := ledger.ApplyFieldUpdate(before, domain.ColorRed, 1, ledger.SetInflow(50))
	require.NoError(t, err)

	assert.Equal(t, original, before[domain.ColorRed])
	assert.Equal(t, 400.0, after[domain.ColorRed][1].RemainingStock)
	assert.Equal(t, before[domain.ColorPink], after[domain.ColorPink])
}

func TestApplyFieldUpdate_OpeningOverrideOnLaterWeek(t *testing.T) {
	l := defaultLedger()

	l, err := ledger.ApplyFieldUpdate(l, domain.ColorPink, 2, ledger.SetOpeningStock(1000))
	require.NoError(t, err)
	assert.Equal(t, 1000.0, l[domain.ColorPink][2].OpeningStock)
	assert.Equal(t, 1000.0, l[domain.ColorPink][3].OpeningStock)

	// A later edit to an earlier week re-derives the override
	l, err = ledger.ApplyFieldUpdate(l, domain.ColorPink, 0, ledger.SetInflow(0))
	require.NoError(t, err)
	assert.Equal(t, 300.0, l[domain.ColorPink][2].OpeningStock)
	assertInvariants(t, l)
}

func TestApplyFieldUpdate_NegativeRemainingIsNotClamped(t *testing.T) {
	l, err := ledger.ApplyFieldUpdate(defaultLedger(), domain.ColorPink, 0, ledger.SetProductionConsumption(450))
	require.NoError(t, err)

	assert.Equal(t, -150.0, l[domain.ColorPink][0].RemainingStock)
	assert.Equal(t, domain.StockStatusCritical, l[domain.ColorPink][0].Status)
	assert.Equal(t, -150.0, l[domain.ColorPink][1].OpeningStock)
}

func TestApplyFieldUpdate_InvalidArguments(t *testing.T) {
	tests := []struct {
		name      string
		color     domain.PaintColor
		weekIndex int
		cmd       ledger.Command
	}{
		{name: "negative week", color: domain.ColorBlue, weekIndex: -1, cmd: ledger.SetInflow(1)},
		{name: "week past end", color: domain.ColorBlue, weekIndex: 4, cmd: ledger.SetInflow(1)},
		{name: "unknown color", color: domain.PaintColor("Green"), weekIndex: 0, cmd: ledger.SetInflow(1)},
		{name: "nil command", color: domain.ColorBlue, weekIndex: 0, cmd: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := defaultLedger()
			out, err := ledger.ApplyFieldUpdate(l, tt.color, tt.weekIndex, tt.cmd)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Nil(t, out)
			assert.Equal(t, defaultLedger(), l)
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		field   string
		want    ledger.Command
		wantErr bool
	}{
		{field: "openingStock", want: ledger.SetOpeningStock(5)},
		{field: "inflow", want: ledger.SetInflow(5)},
		{field: "productionConsumption", want: ledger.SetProductionConsumption(5)},
		{field: "wasteLoss", want: ledger.SetWasteLoss(5)},
		{field: "minStockLevel", want: ledger.SetMinStockLevel(5)},
		{field: "remainingStock", wantErr: true},
		{field: "status", wantErr: true},
		{field: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cmd, err := ledger.ParseCommand(tt.field, 5)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
			assert.Equal(t, tt.field, cmd.Field())
		})
	}
}

func TestLowStock_TagsEveryFlaggedWeek(t *testing.T) {
	l := defaultLedger()
	assert.Empty(t, ledger.LowStock(l))

	l, err := ledger.ApplyFieldUpdate(l, domain.ColorBlue, 2, ledger.SetProductionConsumption(300))
	require.NoError(t, err)

	entries := ledger.LowStock(l)
	require.Len(t, entries, 2)
	for i, e := range entries {
		assert.Equal(t, domain.ColorBlue, e.Color)
		assert.Equal(t, 2+i, e.WeekIndex)
		assert.Equal(t, domain.StockStatusLow, e.Status)
	}
}

func TestCurrentStock_UsesFirstWeek(t *testing.T) {
	l, err := ledger.ApplyFieldUpdate(defaultLedger(), domain.ColorWhite, 0, ledger.SetInflow(40))
	require.NoError(t, err)

	stock := ledger.CurrentStock(l)
	assert.Len(t, stock, len(domain.AllColors))
	assert.Equal(t, 640.0, stock[domain.ColorWhite])
	assert.Equal(t, 500.0, stock[domain.ColorMetallic])

	delete(l, domain.ColorRed)
	assert.Equal(t, 0.0, ledger.CurrentStock(l)[domain.ColorRed])
}

func TestValidate(t *testing.T) {
	require.NoError(t, ledger.Validate(defaultLedger()))

	short := defaultLedger()
	short[domain.ColorBlue] = short[domain.ColorBlue][:3]
	assert.Error(t, ledger.Validate(short))

	missing := defaultLedger()
	delete(missing, domain.ColorPink)
	assert.Error(t, ledger.Validate(missing))

	extra := defaultLedger()
	extra[domain.PaintColor("Green")] = extra[domain.ColorBlue]
	assert.Error(t, ledger.Validate(extra))
}
