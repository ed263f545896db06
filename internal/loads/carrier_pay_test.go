package loads

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
)

func TestCarrierPayDisplay(t *testing.T) {
	gated := approvalVehicle()

	cases := []struct {
		name          string
		load          models.Load
		vehicle       *models.Vehicle
		wantAmount    string
		wantState     PayState
		wantTag       string
		wantStruck    bool
		needsApproval bool
	}{
		{
			name: "approved then rate raised",
			load: models.Load{
				Rate:            dec("1200"),
				CarrierRate:     dec("840"),
				CarrierApproved: true,
				ApprovedPayload: dec("1000"),
			},
			vehicle:       gated,
			wantAmount:    "840",
			wantState:     PayPayloadChanged,
			wantTag:       LoadApprovalTag,
			wantStruck:    true,
			needsApproval: true,
		},
		{
			name: "approved and unchanged",
			load: models.Load{
				Rate:            dec("1000"),
				CarrierApproved: true,
				ApprovedPayload: dec("1000"),
			},
			vehicle:    gated,
			wantAmount: "700",
			wantState:  PayConfirmed,
			wantTag:    LoadApprovalTag,
		},
		{
			name:          "waiting on approval",
			load:          models.Load{Rate: dec("1000")},
			vehicle:       gated,
			wantAmount:    "700",
			wantState:     PayPendingApproval,
			wantTag:       LoadApprovalTag,
			needsApproval: true,
		},
		{
			name: "approved without stored payload",
			load: models.Load{
				Rate:            dec("1000"),
				CarrierApproved: true,
			},
			vehicle:       gated,
			wantAmount:    "700",
			wantState:     PayPayloadChanged,
			wantTag:       LoadApprovalTag,
			wantStruck:    true,
			needsApproval: true,
		},
		{
			name:       "own truck ignores carrier rate",
			load:       models.Load{Rate: dec("800"), CarrierRate: dec("500")},
			vehicle:    &models.Vehicle{TruckType: enums.TruckTypeMyTruck},
			wantAmount: "800",
			wantState:  PayNotRequired,
		},
		{
			name:       "unset truck type earns full rate",
			load:       models.Load{Rate: dec("650"), CarrierRate: dec("500")},
			vehicle:    &models.Vehicle{},
			wantAmount: "650",
			wantState:  PayNotRequired,
		},
		{
			name:       "no vehicle earns full rate",
			load:       models.Load{Rate: dec("650")},
			wantAmount: "650",
			wantState:  PayNotRequired,
		},
		{
			name:       "contractor split",
			load:       models.Load{Rate: dec("1000")},
			vehicle:    &models.Vehicle{TruckType: enums.TruckTypeContractor, ContractorPercentage: dec("70")},
			wantAmount: "700",
			wantState:  PayNotRequired,
		},
		{
			name:       "contractor prefers stored carrier rate",
			load:       models.Load{Rate: dec("1000"), CarrierRate: dec("725.50")},
			vehicle:    &models.Vehicle{TruckType: enums.TruckTypeContractor, ContractorPercentage: dec("70")},
			wantAmount: "725.5",
			wantState:  PayNotRequired,
		},
		{
			name:       "contractor without percentage",
			load:       models.Load{Rate: dec("1000")},
			vehicle:    &models.Vehicle{TruckType: enums.TruckTypeContractor, ContractorPercentage: dec("0")},
			wantAmount: "1000",
			wantState:  PayNotRequired,
		},
		{
			name:       "contractor split rounds to cents",
			load:       models.Load{Rate: dec("999.99")},
			vehicle:    &models.Vehicle{TruckType: enums.TruckTypeContractor, ContractorPercentage: dec("33.3")},
			wantAmount: "333",
			wantState:  PayNotRequired,
		},
		{
			name:       "missing rate is zero",
			load:       models.Load{},
			vehicle:    &models.Vehicle{TruckType: enums.TruckTypeMyTruck},
			wantAmount: "0",
			wantState:  PayNotRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CarrierPayDisplay(tc.load, tc.vehicle)
			assert.Equal(t, tc.wantAmount, got.Amount.String())
			assert.Equal(t, tc.wantState, got.State)
			assert.Equal(t, tc.wantTag, got.Tag())
			assert.Equal(t, tc.wantStruck, got.Struck())
			assert.Equal(t, tc.needsApproval, NeedsApproval(tc.load, tc.vehicle))
		})
	}
}

func TestPayloadChangedOnlyForApprovedLoads(t *testing.T) {
	assert.False(t, PayloadChanged(models.Load{Rate: dec("10"), ApprovedPayload: dec("5")}))
	assert.True(t, PayloadChanged(models.Load{Rate: dec("10"), ApprovedPayload: dec("5"), CarrierApproved: true}))
	assert.False(t, PayloadChanged(models.Load{CarrierApproved: true, ApprovedPayload: dec("0")}))
}

func TestRequiresApproval(t *testing.T) {
	assert.False(t, RequiresApproval(nil))
	assert.False(t, RequiresApproval(&models.Vehicle{}))
	assert.True(t, RequiresApproval(approvalVehicle()))
}
