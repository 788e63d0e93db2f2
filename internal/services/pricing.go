package services

// ExpressSurcharge is the flat add-on for express service, in rupees.
const ExpressSurcharge = 199

// Fixed price table: vehicle type x package tier. Combinations outside this
// enumeration are not priceable at all; they must be rejected, never
// defaulted to zero.
var packagePrices = map[string]map[string]int{
	"Hatchback":   {"Basic": 200, "Premium": 300, "Plus": 400},
	"Compact SUV": {"Basic": 220, "Premium": 350, "Plus": 600},
	"SUV":         {"Basic": 250, "Premium": 400, "Plus": 800},
}

// Price resolves the total price for a booking. It is called on every create
// and every update so the stored price always follows the current fields;
// whatever price the client sent is ignored.
func Price(vehicleType, pkg string, express bool) (int, error) {
	tiers, ok := packagePrices[vehicleType]
	if !ok {
		return 0, ErrUnpriceable
	}
	base, ok := tiers[pkg]
	if !ok {
		return 0, ErrUnpriceable
	}
	if express {
		return base + ExpressSurcharge, nil
	}
	return base, nil
}

// VehicleTypes lists the priceable vehicle types in table order.
func VehicleTypes() []string {
	return []string{"Hatchback", "Compact SUV", "SUV"}
}

// Packages lists the package tiers in table order.
func Packages() []string {
	return []string{"Basic", "Premium", "Plus"}
}
