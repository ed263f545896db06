package loads

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

// StatusOrder ranks statuses for the default board ordering. Statuses it does
// not know rank after every known one.
type StatusOrder struct {
	rank map[enums.LoadStatus]int
}

// NewStatusOrder ranks statuses by their position in the argument list.
// Duplicates keep their first position.
func NewStatusOrder(statuses ...enums.LoadStatus) StatusOrder {
	rank := make(map[enums.LoadStatus]int, len(statuses))
	for _, s := range statuses {
		if _, ok := rank[s]; ok {
			continue
		}
		rank[s] = len(rank)
	}
	return StatusOrder{rank: rank}
}

// DefaultStatusOrder follows the dispatch lifecycle from action_needed to tonu,
// with ready_for_audit appended at the tail.
var DefaultStatusOrder = NewStatusOrder(enums.LoadStatuses()...)

// Rank returns the board position of s.
func (o StatusOrder) Rank(s enums.LoadStatus) int {
	if r, ok := o.rank[s]; ok {
		return r
	}
	return len(o.rank)
}

// Append returns a copy with extra statuses at the tail.
func (o StatusOrder) Append(statuses ...enums.LoadStatus) StatusOrder {
	all := make([]enums.LoadStatus, len(o.rank), len(o.rank)+len(statuses))
	for s, r := range o.rank {
		all[r] = s
	}
	return NewStatusOrder(append(all, statuses...)...)
}

// SortField names a sortable board column.
type SortField string

const (
	SortByStatus       SortField = "status"
	SortByPickupDate   SortField = "pickup_date"
	SortByDeliveryDate SortField = "delivery_date"
	SortByRate         SortField = "rate"
	SortByLoadNumber   SortField = "load_number"
	SortByCreatedAt    SortField = "created_at"
)

var validSortFields = []SortField{
	SortByStatus,
	SortByPickupDate,
	SortByDeliveryDate,
	SortByRate,
	SortByLoadNumber,
	SortByCreatedAt,
}

func (f SortField) IsValid() bool {
	for _, candidate := range validSortFields {
		if candidate == f {
			return true
		}
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort is an explicit column sort. The zero value means the default ordering.
type Sort struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

func (s Sort) IsZero() bool {
	return s.Field == "" || s.Direction == ""
}

// ParseSort validates raw query values. An empty field yields the default ordering.
func ParseSort(field, direction string) (Sort, error) {
	field = strings.TrimSpace(strings.ToLower(field))
	direction = strings.TrimSpace(strings.ToLower(direction))
	if field == "" {
		return Sort{}, nil
	}
	f := SortField(field)
	if !f.IsValid() {
		return Sort{}, fmt.Errorf("invalid sort field %q", field)
	}
	switch SortDirection(direction) {
	case "", SortAsc:
		return Sort{Field: f, Direction: SortAsc}, nil
	case SortDesc:
		return Sort{Field: f, Direction: SortDesc}, nil
	default:
		return Sort{}, fmt.Errorf("invalid sort direction %q", direction)
	}
}

// NextSort advances the column toggle: unsorted -> asc -> desc -> unsorted.
// Selecting a different column starts over at asc.
func NextSort(current Sort, field SortField) Sort {
	if current.IsZero() || current.Field != field {
		return Sort{Field: field, Direction: SortAsc}
	}
	if current.Direction == SortAsc {
		return Sort{Field: field, Direction: SortDesc}
	}
	return Sort{}
}

var epoch = time.Unix(0, 0).UTC()

// SortLoads orders loads in place. With a zero Sort the board order applies:
// status rank ascending, then newest first.
func SortLoads(loads []models.Load, s Sort, order StatusOrder) {
	if s.IsZero() {
		sort.SliceStable(loads, func(i, j int) bool {
			ri, rj := order.Rank(loads[i].Status), order.Rank(loads[j].Status)
			if ri != rj {
				return ri < rj
			}
			return loads[i].CreatedAt.After(loads[j].CreatedAt)
		})
		return
	}

	sort.SliceStable(loads, func(i, j int) bool {
		c := compareField(loads[i], loads[j], s.Field, order)
		if s.Direction == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareField(a, b models.Load, field SortField, order StatusOrder) int {
	switch field {
	case SortByStatus:
		return compareInt(order.Rank(a.Status), order.Rank(b.Status))
	case SortByPickupDate:
		return timeOrEpoch(a.PickupAt).Compare(timeOrEpoch(b.PickupAt))
	case SortByDeliveryDate:
		return timeOrEpoch(a.DeliveryAt).Compare(timeOrEpoch(b.DeliveryAt))
	case SortByRate:
		return decimalOrZero(a.Rate).Cmp(decimalOrZero(b.Rate))
	case SortByLoadNumber:
		return strings.Compare(a.LoadNumber, b.LoadNumber)
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func timeOrEpoch(t *time.Time) time.Time {
	if t == nil {
		return epoch
	}
	return *t
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Filter narrows the board. Every populated criterion must match.
type Filter struct {
	// Status is a single status or "all"; empty also means all.
	Status string
	// Search is a case-insensitive substring over load number, pickup and
	// delivery locations, and broker name.
	Search string
	// PickupFrom and PickupTo are calendar dates, read in Location.
	PickupFrom *time.Time
	PickupTo   *time.Time
	// ApprovalMode keeps only loads waiting on carrier approval.
	ApprovalMode bool
	Location     *time.Location
}

// Matches reports whether load passes every criterion.
func (f Filter) Matches(load models.Load) bool {
	if !f.matchesStatus(load) {
		return false
	}
	if !f.matchesSearch(load) {
		return false
	}
	if !f.matchesPickup(load) {
		return false
	}
	if f.ApprovalMode && !NeedsApproval(load, load.Vehicle) {
		return false
	}
	return true
}

func (f Filter) matchesStatus(load models.Load) bool {
	status := strings.TrimSpace(f.Status)
	if status == "" || status == enums.LoadStatusAll {
		return true
	}
	return string(load.Status) == status
}

func (f Filter) matchesSearch(load models.Load) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	if needle == "" {
		return true
	}
	haystack := []string{
		load.LoadNumber,
		stringOrEmpty(load.PickupLocation),
		stringOrEmpty(load.DeliveryLocation),
		stringOrEmpty(load.BrokerName),
	}
	for _, field := range haystack {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (f Filter) matchesPickup(load models.Load) bool {
	if f.PickupFrom == nil && f.PickupTo == nil {
		return true
	}
	if load.PickupAt == nil {
		return false
	}
	pickup := *load.PickupAt
	if f.PickupFrom != nil && pickup.Before(StartOfDay(*f.PickupFrom, f.location())) {
		return false
	}
	if f.PickupTo != nil && pickup.After(EndOfDay(*f.PickupTo, f.location())) {
		return false
	}
	return true
}

func (f Filter) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// StartOfDay is 00:00:00 of d's calendar date in loc.
func StartOfDay(d time.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

// EndOfDay is the last instant of d's calendar date in loc (23:59:59.999999999).
func EndOfDay(d time.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}

// FilterLoads returns the loads that match f, preserving input order.
func FilterLoads(loads []models.Load, f Filter) []models.Load {
	out := make([]models.Load, 0, len(loads))
	for _, load := range loads {
		if f.Matches(load) {
			out = append(out, load)
		}
	}
	return out
}

// Row is one board line: the load plus its derived carrier pay state.
type Row struct {
	Load          models.Load
	CarrierPay    PayDisplay
	NeedsApproval bool
}

// NewRow derives the display fields for load using its preloaded vehicle.
func NewRow(load models.Load) Row {
	return Row{
		Load:          load,
		CarrierPay:    CarrierPayDisplay(load, load.Vehicle),
		NeedsApproval: NeedsApproval(load, load.Vehicle),
	}
}

// Query is a full board request.
type Query struct {
	Filter Filter
	Sort   Sort
	Page   int
}

// Board is one page of the arranged load list.
type Board struct {
	Rows []Row
	Page pagination.Page
	Sort Sort
}

// Arrange filters, sorts and paginates loads. The input slice is not modified.
func Arrange(loads []models.Load, q Query, order StatusOrder, pageSize int) Board {
	filtered := FilterLoads(loads, q.Filter)
	SortLoads(filtered, q.Sort, order)

	page := pagination.ClampPage(len(filtered), q.Page, pageSize)
	rows := make([]Row, 0, page.End-page.Start)
	for _, load := range filtered[page.Start:page.End] {
		rows = append(rows, NewRow(load))
	}
	return Board{Rows: rows, Page: page, Sort: q.Sort}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
