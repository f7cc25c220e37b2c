package controllers

import (
	"github.com/shashiranjanraj/vanijya/app/services"
	"github.com/shashiranjanraj/vanijya/pkg/ctx"
)

type AccountController struct {
	service *services.AccountService
}

func NewAccountController(service *services.AccountService) *AccountController {
	return &AccountController{service: service}
}

type accountCreateInput struct {
	Username   string `json:"username" validate:"required,alpha_dash,between=3,64"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	CustomerID uint   `json:"customer_id" validate:"required,numeric"`
}

type accountUpdateInput struct {
	Username string `json:"username" validate:"required,alpha_dash,between=3,64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (ct *AccountController) Create(c *ctx.Context) {
	var in accountCreateInput
	if !c.BindJSON(&in) {
		return
	}

	account, err := ct.service.Create(in.Username, in.Password, in.CustomerID)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Customer account created successfully", account)
}

func (ct *AccountController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	account, err := ct.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(account)
}

func (ct *AccountController) Update(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	var in accountUpdateInput
	if !c.BindJSON(&in) {
		return
	}

	if _, err := ct.service.Update(id, in.Username, in.Password); err != nil {
		fail(c, err)
		return
	}

	c.Message("Customer account updated successfully")
}

func (ct *AccountController) Delete(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	if err := ct.service.Delete(id); err != nil {
		fail(c, err)
		return
	}

	c.Message("Customer account deleted successfully")
}
