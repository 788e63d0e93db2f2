package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		vehicleType string
		pkg         string
		express     bool
		want        int
	}{
		{"Hatchback", "Basic", false, 200},
		{"Hatchback", "Premium", false, 300},
		{"Hatchback", "Plus", false, 400},
		{"Compact SUV", "Basic", false, 220},
		{"Compact SUV", "Premium", false, 350},
		{"Compact SUV", "Plus", false, 600},
		{"SUV", "Basic", false, 250},
		{"SUV", "Premium", false, 400},
		{"SUV", "Plus", false, 800},
		{"Hatchback", "Basic", true, 399},
		{"SUV", "Plus", true, 999},
	}
	for _, c := range cases {
		got, err := Price(c.vehicleType, c.pkg, c.express)
		require.NoError(t, err, "%s/%s", c.vehicleType, c.pkg)
		assert.Equal(t, c.want, got, "%s/%s express=%v", c.vehicleType, c.pkg, c.express)
	}
}

func TestPriceUnpriceable(t *testing.T) {
	cases := []struct {
		vehicleType string
		pkg         string
	}{
		{"Sedan", "Basic"},
		{"Hatchback", "Gold"},
		{"", ""},
		{"hatchback", "Basic"}, // case sensitive
	}
	for _, c := range cases {
		_, err := Price(c.vehicleType, c.pkg, false)
		assert.ErrorIs(t, err, ErrUnpriceable, "%s/%s", c.vehicleType, c.pkg)
	}
}

func TestPriceExpressNeverDiscounts(t *testing.T) {
	for _, vt := range VehicleTypes() {
		for _, pkg := range Packages() {
			base, err := Price(vt, pkg, false)
			require.NoError(t, err)
			express, err := Price(vt, pkg, true)
			require.NoError(t, err)
			assert.Equal(t, base+ExpressSurcharge, express)
		}
	}
}
