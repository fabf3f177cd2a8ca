package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomPrice(t *testing.T) {
	assert.Equal(t, int64(0), CustomPrice(nil))
	assert.Equal(t, int64(105000), CustomPrice([]string{"Monday"}))
	assert.Equal(t, int64(210000), CustomPrice([]string{"Monday", "Wednesday"}))

	// dailyRate × |days| for every prefix of the week
	for n := 1; n <= len(DaysOfWeek); n++ {
		got := CustomPrice(DaysOfWeek[:n])
		assert.Equal(t, int64(105000)*int64(n), got, "n=%d", n)
	}
}

func TestPackagePrice(t *testing.T) {
	for _, p := range []int64{0, 1, 30000, 60000, 1_000_000} {
		assert.Equal(t, p, PackagePrice(p))
	}
}

func TestValidDeliveryDays(t *testing.T) {
	assert.False(t, ValidDeliveryDays(nil))
	assert.False(t, ValidDeliveryDays([]string{}))
	assert.False(t, ValidDeliveryDays([]string{"Funday"}))
	assert.False(t, ValidDeliveryDays([]string{"Monday", "monday"}))
	assert.True(t, ValidDeliveryDays([]string{"Monday"}))
	assert.True(t, ValidDeliveryDays(DaysOfWeek))
}
