package enums

import "fmt"

// TruckType describes who operates a vehicle, which drives carrier pay.
type TruckType string

const (
	TruckTypeUnset      TruckType = ""
	TruckTypeMyTruck    TruckType = "my_truck"
	TruckTypeContractor TruckType = "contractor_truck"
)

var validTruckTypes = []TruckType{
	TruckTypeMyTruck,
	TruckTypeContractor,
}

func (t TruckType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TruckType. Unset is allowed.
func (t TruckType) IsValid() bool {
	if t == TruckTypeUnset {
		return true
	}
	for _, candidate := range validTruckTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTruckType converts raw input into a TruckType.
func ParseTruckType(value string) (TruckType, error) {
	if value == "" {
		return TruckTypeUnset, nil
	}
	for _, candidate := range validTruckTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid truck type %q", value)
}
