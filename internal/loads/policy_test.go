package loads

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdesk/backoffice/pkg/config"
	"github.com/freightdesk/backoffice/pkg/enums"
)

func TestPolicyFromConfig(t *testing.T) {
	p, err := PolicyFromConfig(config.LoadsConfig{
		PageSize:            25,
		InitialStatus:       "pending_dispatch",
		ImportInitialStatus: "available",
		LockTerminal:        true,
		Timezone:            "America/Chicago",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, p.PageSize)
	assert.Equal(t, enums.LoadStatusPendingDispatch, p.InitialStatusFor(SourceManual))
	assert.Equal(t, enums.LoadStatusAvailable, p.InitialStatusFor(SourceImport))
	assert.True(t, p.LockTerminal)
	assert.Equal(t, "America/Chicago", p.Location.String())
}

func TestPolicyFromConfigRejectsBadValues(t *testing.T) {
	_, err := PolicyFromConfig(config.LoadsConfig{InitialStatus: "parked"})
	require.ErrorContains(t, err, config.EnvLoadsInitialStatus)

	_, err = PolicyFromConfig(config.LoadsConfig{InitialStatus: "available", Timezone: "Mars/Olympus"})
	require.ErrorContains(t, err, config.EnvLoadsTimezone)
}

func TestDefaultPolicyKeepsTerminalStatusesOpen(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, defaultPageSize, p.PageSize)
	assert.Equal(t, time.UTC, p.Location)
	assert.True(t, p.AllowsTransition(enums.LoadStatusClosed, enums.LoadStatusAvailable))

	p.LockTerminal = true
	assert.False(t, p.AllowsTransition(enums.LoadStatusCancelled, enums.LoadStatusBooked))
	assert.True(t, p.AllowsTransition(enums.LoadStatusCancelled, enums.LoadStatusCancelled))
	assert.True(t, p.AllowsTransition(enums.LoadStatusBooked, enums.LoadStatusCancelled))
}

func TestLoadFieldsColumns(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	pickup := time.Date(2026, 3, 10, 8, 0, 0, 0, chicago)

	cols := LoadFields{
		PickupCity:     strPtr("  Dallas "),
		BrokerName:     strPtr("   "),
		PickupAt:       &pickup,
		Rate:           dec("1200.456"),
		EstimatedMiles: intPtr(310),
	}.columns()

	assert.Equal(t, "Dallas", cols["pickup_city"])
	assert.Nil(t, cols["broker_name"])
	assert.Contains(t, cols, "broker_name")
	assert.Equal(t, time.UTC, cols["pickup_at"].(time.Time).Location())
	assert.Equal(t, "1200.46", cols["rate"].(decimal.Decimal).String())
	assert.Equal(t, 310, cols["estimated_miles"])
	assert.Equal(t, []string{"broker_name", "estimated_miles", "pickup_at", "pickup_city", "rate"}, sortedKeys(cols))
}

func TestLoadFieldsValidate(t *testing.T) {
	assert.Error(t, LoadFields{CarrierRate: dec("-0.01")}.validate())
	assert.Error(t, LoadFields{EmptyMiles: intPtr(-3)}.validate())
	assert.Error(t, LoadFields{PickupAt: at("2026-03-10T10:00:00Z"), DeliveryAt: at("2026-03-09T10:00:00Z")}.validate())
	assert.NoError(t, LoadFields{PickupAt: at("2026-03-10T10:00:00Z"), DeliveryAt: at("2026-03-10T10:00:00Z")}.validate())
}
