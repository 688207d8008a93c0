package entities

import (
	"testing"
	"time"
)

func TestServiceOrder_StatusColor(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	arrived := today.Add(-time.Hour)

	cases := []struct {
		name  string
		order ServiceOrder
		want  StatusColor
	}{
		{name: "arrived wins over overdue", order: ServiceOrder{DeliveryDate: "2025-03-01", ArrivedAt: &arrived}, want: StatusColorGreen},
		{name: "no delivery date", order: ServiceOrder{}, want: StatusColorBlue},
		{name: "malformed delivery date", order: ServiceOrder{DeliveryDate: "10/03/2025"}, want: StatusColorBlue},
		{name: "overdue", order: ServiceOrder{DeliveryDate: "2025-03-09"}, want: StatusColorRed},
		{name: "due today", order: ServiceOrder{DeliveryDate: "2025-03-10"}, want: StatusColorYellow},
		{name: "due tomorrow", order: ServiceOrder{DeliveryDate: "2025-03-11"}, want: StatusColorYellow},
		{name: "later", order: ServiceOrder{DeliveryDate: "2025-03-12"}, want: StatusColorBlue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.order.StatusColor(today); got != tc.want {
				t.Fatalf("expected %s got %s", tc.want, got)
			}
		})
	}
}

func TestOrderFilter_Apply(t *testing.T) {
	now := time.Now()
	orders := []ServiceOrder{
		{OrderNumber: 12, ClientName: "Maria Souza", ClientPhone: "(81) 9 8898-4545", DeliveryDate: "2025-03-10"},
		{OrderNumber: 7, ClientName: "João Lima", ClientPhone: "(81) 9 9999-0000", ArrivedAt: &now},
		{OrderNumber: 3, ClientName: "Ana Maria", ClientPhone: "(11) 9 1234-5658", DeliveryDate: "2025-03-11"},
	}

	t.Run("search by name is case insensitive", func(t *testing.T) {
		got := OrderFilter{Search: "MARIA"}.Apply(orders)
		if len(got) != 2 || got[0].OrderNumber != 12 || got[1].OrderNumber != 3 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("search by number", func(t *testing.T) {
		got := OrderFilter{Search: "7"}.Apply(orders)
		if len(got) != 1 || got[0].OrderNumber != 7 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("search by phone", func(t *testing.T) {
		got := OrderFilter{Search: "1234"}.Apply(orders)
		if len(got) != 1 || got[0].OrderNumber != 3 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("arrival filters", func(t *testing.T) {
		if got := (OrderFilter{Arrival: ArrivalFilterArrived}).Apply(orders); len(got) != 1 {
			t.Fatalf("expected 1 arrived, got %d", len(got))
		}
		if got := (OrderFilter{Arrival: ArrivalFilterNotArrived}).Apply(orders); len(got) != 2 {
			t.Fatalf("expected 2 pending, got %d", len(got))
		}
	})

	t.Run("delivery date", func(t *testing.T) {
		got := OrderFilter{DeliveryDate: "2025-03-11"}.Apply(orders)
		if len(got) != 1 || got[0].OrderNumber != 3 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestComputeStatistics(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	arrived := today
	orders := []ServiceOrder{
		{DeliveryDate: "2025-03-01"},
		{DeliveryDate: "2025-03-02"},
		{DeliveryDate: "2025-03-10"},
		{ArrivedAt: &arrived},
		{},
	}

	stats := ComputeStatistics(orders, today)
	if stats.Total != 5 || stats.Overdue != 2 || stats.Urgent != 1 || stats.Arrived != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
