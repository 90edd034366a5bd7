package domain

// HourlyPoint is one bucket of today's hourly earnings series.
// Hour is a display label like "06:00".
type HourlyPoint struct {
	Hour     string  `json:"hour"`
	Earnings float64 `json:"earnings"`
}

// UserEarnings is today's earnings for one driver, split by payment type.
type UserEarnings struct {
	User  string  `json:"user"`
	Total float64 `json:"total"`
	Cash  float64 `json:"cash"`
	IBAN  float64 `json:"iban"`
}

// PaymentTypeTotal is one slice of the payment-type breakdown chart.
type PaymentTypeTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// PeriodPoint is one bucket of a period-switcher series (hour, day, or week
// of month depending on the series).
type PeriodPoint struct {
	Label    string  `json:"label"`
	Earnings float64 `json:"earnings"`
	Cash     float64 `json:"cash"`
	IBAN     float64 `json:"iban"`
}

// PeriodSeries holds the three switchable chart series.
// Each series always contains at least one point so charts never render empty.
type PeriodSeries struct {
	Daily   []PeriodPoint `json:"daily"`
	Weekly  []PeriodPoint `json:"weekly"`
	Monthly []PeriodPoint `json:"monthly"`
}

// Dashboard is the full snapshot returned to the UI for one view
// (personal when filtered to a single user, combined otherwise).
// Everything here is recomputed from the payment log on each request.
type Dashboard struct {
	Payments      []Payment          `json:"payments"` // today's records, newest first
	TotalEarnings float64            `json:"total_earnings"`
	CashTotal     float64            `json:"cash_total"`
	IBANTotal     float64            `json:"iban_total"`
	DailyGoal     GoalProgress       `json:"daily_goal"`
	WeeklyGoal    GoalProgress       `json:"weekly_goal"`
	Hourly        []HourlyPoint      `json:"hourly"`
	UserEarnings  []UserEarnings     `json:"user_earnings"`
	PaymentTypes  []PaymentTypeTotal `json:"payment_types"`
	Period        PeriodSeries       `json:"period"`
}
