package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vanijya/app/services"
	"github.com/shashiranjanraj/vanijya/pkg/ctx"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

type productCreateInput struct {
	Name  string  `json:"name" validate:"required,max=200"`
	Price float64 `json:"price" validate:"required,numeric,gt=0"`
	Stock int     `json:"stock" validate:"integer,gte=0"`
}

// Stock is a pointer so a missing field leaves the current value alone.
type productUpdateInput struct {
	Name  string  `json:"name" validate:"required,max=200"`
	Price float64 `json:"price" validate:"required,numeric,gt=0"`
	Stock *int    `json:"stock" validate:"nullable,integer,gte=0"`
}

func (ct *ProductController) Create(c *ctx.Context) {
	var in productCreateInput
	if !c.BindJSON(&in) {
		return
	}

	product, err := ct.service.Create(in.Name, in.Price, in.Stock)
	if err != nil {
		fail(c, err)
		return
	}

	c.Created("Product created successfully", product)
}

func (ct *ProductController) Show(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	product, err := ct.service.Get(id)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(product)
}

func (ct *ProductController) Index(c *ctx.Context) {
	products, err := ct.service.List()
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(products)
}

func (ct *ProductController) Update(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	var in productUpdateInput
	if !c.BindJSON(&in) {
		return
	}

	if _, err := ct.service.Update(id, in.Name, in.Price, in.Stock); err != nil {
		fail(c, err)
		return
	}

	c.Message("Product updated successfully")
}

func (ct *ProductController) Delete(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	if err := ct.service.Delete(id); err != nil {
		fail(c, err)
		return
	}

	c.Message("Product deleted successfully")
}

// UploadImage accepts a multipart form with an "image" file field.
func (ct *ProductController) UploadImage(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		return
	}

	file, header, err := c.FormFile("image")
	if err != nil {
		c.Error(http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	product, err := ct.service.AttachImage(id, file, header)
	if err != nil {
		fail(c, err)
		return
	}

	c.Success(product)
}
