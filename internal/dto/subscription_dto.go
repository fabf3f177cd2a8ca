package dto

type CreateSubscriptionRequest struct {
	PlanName     string   `json:"planName"`
	MealTypes    []string `json:"mealTypes"`
	DeliveryDays []string `json:"deliveryDays"`
	// Pointer so a missing totalPrice is distinguishable from zero.
	TotalPrice *int64 `json:"totalPrice"`
	Allergies  string `json:"allergies"`
}

type PauseSubscriptionRequest struct {
	PauseStartDate string `json:"pauseStartDate"`
	PauseEndDate   string `json:"pauseEndDate"`
}

// MetricsResponse mirrors the admin dashboard payload. MRR is the sum of
// totalPrice over subscriptions created in the requested window, not a true
// recurring-revenue figure.
type MetricsResponse struct {
	NewSubscriptions int64 `json:"newSubscriptions"`
	MRR              int64 `json:"mrr"`
	Reactivations    int64 `json:"reactivations"`
	TotalActive      int64 `json:"totalActive"`
}
