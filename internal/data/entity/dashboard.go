package entity

type DashboardStats struct {
	Users               int64                       `json:"users"`
	Admins              int64                       `json:"admins"`
	Cities              int64                       `json:"cities"`
	Hotels              int64                       `json:"hotels"`
	Trips               int64                       `json:"trips"`
	ActiveTrips         int64                       `json:"active_trips"`
	ReservationsByState map[ReservationStatus]int64 `json:"reservations_by_status"`
	ConfirmedTickets    int64                       `json:"confirmed_tickets"`
	ConfirmedRevenue    float64                     `json:"confirmed_revenue"`
}
