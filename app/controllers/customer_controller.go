package controllers

import (
	"github.com/shashiranjanraj/vanijya/app/services"
	"github.com/shashiranjanraj/vanijya/pkg/ctx"
)

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

type customerInput struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email,max=254"`
	Phone string `json:"phone" validate:"required,max=32"`
}

func (ct *CustomerController) Create(c *ctx.Context) {
	var in customerInput
	if !c.BindJSON(&in) {
		return
	}

	customer, err := ct.service.Create(in.Name, in.Email, in.Phone)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Customer created successfully", customer)
}

func (ct *CustomerController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	customer, err := ct.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(customer)
}

func (ct *CustomerController) Update(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	var in customerInput
	if !c.BindJSON(&in) {
		return
	}

	if _, err := ct.service.Update(id, in.Name, in.Email, in.Phone); err != nil {
		fail(c, err)
		return
	}

	c.Message("Customer updated successfully")
}

func (ct *CustomerController) Delete(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	if err := ct.service.Delete(id); err != nil {
		fail(c, err)
		return
	}

	c.Message("Customer deleted successfully")
}
