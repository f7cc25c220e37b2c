package controllers

import (
	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/app/services"
	"github.com/shashiranjanraj/vanijya/pkg/ctx"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type orderCreateInput struct {
	CustomerID uint                `json:"customer_id" validate:"required,numeric"`
	OrderItems []services.LineItem `json:"order_items"`
}

type orderStatusInput struct {
	Status string `json:"status" validate:"required,in=pending,confirmed,shipped,delivered,cancelled"`
}

func (ct *OrderController) Place(c *ctx.Context) {
	var in orderCreateInput
	if !c.BindJSON(&in) {
		return
	}

	if _, err := ct.service.Place(in.CustomerID, in.OrderItems); err != nil {
		fail(c, err)
		return
	}

	c.Created("Order placed successfully", nil)
}

func (ct *OrderController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	order, err := ct.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(order)
}

// Track returns the order without its line items, just the lifecycle view.
func (ct *OrderController) Track(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	order, err := ct.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]any{
		"id":          order.ID,
		"order_date":  order.OrderDate,
		"customer_id": order.CustomerID,
		"status":      order.Status,
	})
}

func (ct *OrderController) UpdateStatus(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	var in orderStatusInput
	if !c.BindJSON(&in) {
		return
	}

	status, err := models.ParseStatus(in.Status)
	if err != nil {
		c.ValidationError(map[string]string{"status": err.Error()})
		return
	}

	order, err := ct.service.Transition(id, status)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(order)
}

func (ct *OrderController) Cancel(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	if _, err := ct.service.Cancel(id); err != nil {
		fail(c, err)
		return
	}

	c.Message("Order canceled successfully")
}

func (ct *OrderController) Total(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	total, err := ct.service.Total(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(map[string]any{
		"order_id":    id,
		"total_price": total,
	})
}
