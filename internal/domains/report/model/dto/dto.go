package dto

type ForecastRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

type ForecastDay struct {
	Date             string  `json:"date"`
	Weekday          string  `json:"weekday"`
	Occupied         int     `json:"occupied"`
	Arrivals         int     `json:"arrivals"`
	Departures       int     `json:"departures"`
	OutOfService     int     `json:"out_of_service"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

type ForecastResponse struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	TotalRooms int           `json:"total_rooms"`
	Days       []ForecastDay `json:"days"`
}

type DashboardStatsResponse struct {
	TotalRooms        int     `json:"total_rooms"`
	AvailableRooms    int     `json:"available_rooms"`
	OccupiedRooms     int     `json:"occupied_rooms"`
	OutOfServiceRooms int     `json:"out_of_service_rooms"`
	InHouseGuests     int     `json:"in_house_guests"`
	TodayArrivals     int     `json:"today_arrivals"`
	TodayDepartures   int     `json:"today_departures"`
	OccupancyPercent  float64 `json:"occupancy_percent"`
}
