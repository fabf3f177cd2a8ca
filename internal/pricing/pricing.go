// Package pricing holds the pure price calculations for meal subscriptions.
// All amounts are Indonesian rupiah.
package pricing

const (
	BreakfastPrice int64 = 30000
	LunchPrice     int64 = 40000
	DinnerPrice    int64 = 35000
)

// DaysOfWeek lists the canonical delivery day names accepted on a
// subscription.
var DaysOfWeek = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// CustomPrice returns the weekly price for a custom plan: the full-day rate
// (breakfast + lunch + dinner) times the number of delivery days. An empty
// day set prices at zero; rejecting it is the caller's job.
func CustomPrice(days []string) int64 {
	daily := BreakfastPrice + LunchPrice + DinnerPrice
	return daily * int64(len(days))
}

// PackagePrice returns the plan's listed price unchanged.
func PackagePrice(planPrice int64) int64 {
	return planPrice
}

// ValidDeliveryDays reports whether days is non-empty and every entry is one
// of the seven canonical weekday names.
func ValidDeliveryDays(days []string) bool {
	if len(days) == 0 {
		return false
	}
	for _, d := range days {
		if !validDay(d) {
			return false
		}
	}
	return true
}

func validDay(name string) bool {
	for _, d := range DaysOfWeek {
		if d == name {
			return true
		}
	}
	return false
}
