package entities

import (
	"strconv"
	"strings"
	"time"
)

// StatusColor is the urgency band shown for an order in the management list.
type StatusColor string

const (
	StatusColorRed    StatusColor = "red"
	StatusColorYellow StatusColor = "yellow"
	StatusColorGreen  StatusColor = "green"
	StatusColorBlue   StatusColor = "blue"
)

// StatusColor derives the band of o relative to the calendar day of today:
//   - green: the order already arrived
//   - blue: no delivery date, or delivery more than one day away
//   - yellow: delivery today or tomorrow
//   - red: delivery date already passed
func (o ServiceOrder) StatusColor(today time.Time) StatusColor {
	if o.ArrivedAt != nil {
		return StatusColorGreen
	}
	delivery, ok := ParseDate(o.DeliveryDate)
	if !ok {
		return StatusColorBlue
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	diffDays := int(delivery.Sub(day).Hours() / 24)
	switch {
	case delivery.Before(day):
		return StatusColorRed
	case diffDays <= 1:
		return StatusColorYellow
	default:
		return StatusColorBlue
	}
}

type ArrivalFilter string

const (
	ArrivalFilterAll        ArrivalFilter = "all"
	ArrivalFilterArrived    ArrivalFilter = "arrived"
	ArrivalFilterNotArrived ArrivalFilter = "not_arrived"
)

// OrderFilter narrows an already-fetched list of orders.
type OrderFilter struct {
	Search       string
	Arrival      ArrivalFilter
	DeliveryDate string
}

// Matches applies every non-empty criterion of f to o.
func (f OrderFilter) Matches(o ServiceOrder) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strconv.Itoa(o.OrderNumber), term) &&
			!strings.Contains(strings.ToLower(o.ClientName), term) &&
			!strings.Contains(o.ClientPhone, term) {
			return false
		}
	}
	switch f.Arrival {
	case ArrivalFilterArrived:
		if o.ArrivedAt == nil {
			return false
		}
	case ArrivalFilterNotArrived:
		if o.ArrivedAt != nil {
			return false
		}
	}
	if d := strings.TrimSpace(f.DeliveryDate); d != "" && o.DeliveryDate != d {
		return false
	}
	return true
}

// Apply returns the orders matching f, keeping their order.
func (f OrderFilter) Apply(orders []ServiceOrder) []ServiceOrder {
	out := make([]ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// OrderStatistics are the counters shown above the management list.
type OrderStatistics struct {
	Total   int `json:"total"`
	Overdue int `json:"overdue"`
	Urgent  int `json:"urgent"`
	Arrived int `json:"arrived"`
}

func ComputeStatistics(orders []ServiceOrder, today time.Time) OrderStatistics {
	stats := OrderStatistics{Total: len(orders)}
	for _, o := range orders {
		switch o.StatusColor(today) {
		case StatusColorRed:
			stats.Overdue++
		case StatusColorYellow:
			stats.Urgent++
		case StatusColorGreen:
			stats.Arrived++
		}
	}
	return stats
}
