package models_test

import (
	"testing"

	"github.com/shashiranjanraj/vanijya/app/models"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled"} {
		if _, err := models.ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "Pending", "canceled", "teleported"} {
		if _, err := models.ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) should have failed", invalid)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to models.Status
		allowed  bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusShipped, false},
		{models.StatusPending, models.StatusDelivered, false},
		{models.StatusConfirmed, models.StatusShipped, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusDelivered, false},
		{models.StatusShipped, models.StatusDelivered, true},
		{models.StatusShipped, models.StatusCancelled, false},
		{models.StatusDelivered, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.allowed {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	terminal := map[models.Status]bool{
		models.StatusPending:   false,
		models.StatusConfirmed: false,
		models.StatusShipped:   false,
		models.StatusDelivered: true,
		models.StatusCancelled: true,
	}
	for status, want := range terminal {
		if got := status.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	order := models.Order{
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 10.0},
			{ProductID: 2, Quantity: 1, UnitPrice: 5.0},
		},
	}
	if got := order.Total(); got != 25.0 {
		t.Errorf("Total() = %v, want 25.0", got)
	}

	empty := models.Order{}
	if got := empty.Total(); got != 0 {
		t.Errorf("empty order Total() = %v, want 0", got)
	}
}
