package loads

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

func TestBoardProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	statuses := enums.LoadStatuses()

	properties.Property("default order is status rank then newest first", prop.ForAll(
		func(picks []int) bool {
			loads := make([]models.Load, 0, len(picks))
			for i, p := range picks {
				status := enums.LoadStatus("legacy_status")
				if p < len(statuses) {
					status = statuses[p]
				}
				load := newLoad("L", status, (i*7)%13)
				loads = append(loads, load)
			}
			SortLoads(loads, Sort{}, DefaultStatusOrder)
			for i := 1; i < len(loads); i++ {
				prev, cur := DefaultStatusOrder.Rank(loads[i-1].Status), DefaultStatusOrder.Rank(loads[i].Status)
				if prev > cur {
					return false
				}
				if prev == cur && loads[i-1].CreatedAt.Before(loads[i].CreatedAt) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(statuses))),
	))

	properties.Property("three toggles of one column restore the default", prop.ForAll(
		func(idx int) bool {
			field := validSortFields[idx]
			s := NextSort(NextSort(NextSort(Sort{}, field), field), field)
			return s.IsZero()
		},
		gen.IntRange(0, len(validSortFields)-1),
	))

	properties.Property("page is clamped and bounded", prop.ForAll(
		func(total, size, requested int) bool {
			page := pagination.ClampPage(total, requested, size)
			if page.TotalPages != (total+size-1)/size {
				return false
			}
			if page.Number < 1 {
				return false
			}
			if page.TotalPages > 0 && page.Number > page.TotalPages {
				return false
			}
			return page.Start <= page.End && page.End-page.Start <= size && page.End <= total
		},
		gen.IntRange(0, 500),
		gen.IntRange(1, 50),
		gen.IntRange(-5, 100),
	))

	properties.Property("contractor pay never exceeds the rate", prop.ForAll(
		func(cents int64, pct int) bool {
			rate := decimal.New(cents, -2)
			p := decimal.NewFromInt(int64(pct))
			vehicle := &models.Vehicle{TruckType: enums.TruckTypeContractor, ContractorPercentage: &p}
			got := CarrierPayDisplay(models.Load{Rate: &rate}, vehicle)
			return got.State == PayNotRequired && got.Amount.LessThanOrEqual(rate) && !got.Amount.IsNegative()
		},
		gen.Int64Range(0, 10_000_000),
		gen.IntRange(1, 100),
	))

	properties.Property("approval set matches payload drift", prop.ForAll(
		func(rateCents, payloadCents int64, approved bool) bool {
			rate := decimal.New(rateCents, -2)
			payload := decimal.New(payloadCents, -2)
			load := models.Load{Rate: &rate, CarrierApproved: approved, ApprovedPayload: &payload}
			vehicle := approvalVehicle()
			want := !approved || !rate.Equal(payload)
			return NeedsApproval(load, vehicle) == want
		},
		gen.Int64Range(0, 500_000),
		gen.Int64Range(0, 500_000),
		gen.Bool(),
	))

	properties.Property("pickup filter keeps only dated loads inside the range", prop.ForAll(
		func(offsets []int, from, span int) bool {
			loads := make([]models.Load, 0, len(offsets))
			for _, o := range offsets {
				load := newLoad("L", enums.LoadStatusBooked, 0)
				if o >= 0 {
					ts := baseTime.Add(time.Duration(o) * time.Hour)
					load.PickupAt = &ts
				}
				loads = append(loads, load)
			}
			start := baseTime.AddDate(0, 0, from)
			end := start.AddDate(0, 0, span)
			for _, load := range FilterLoads(loads, Filter{PickupFrom: &start, PickupTo: &end}) {
				if load.PickupAt == nil {
					return false
				}
				if load.PickupAt.Before(StartOfDay(start, time.UTC)) || load.PickupAt.After(EndOfDay(end, time.UTC)) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1, 24*30)),
		gen.IntRange(0, 20),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
