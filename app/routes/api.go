package routes

import (
	"net/http"

	"github.com/shashiranjanraj/vanijya/app/controllers"
	"github.com/shashiranjanraj/vanijya/pkg/ctx"
	"github.com/shashiranjanraj/vanijya/pkg/router"
)

// Controllers carries the handler set routes are built from.
type Controllers struct {
	Customers *controllers.CustomerController
	Accounts  *controllers.AccountController
	Products  *controllers.ProductController
	Orders    *controllers.OrderController
}

func RegisterAPI(r *router.Router, c Controllers) {
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	customers := r.Group("/customers")
	customers.Post("", "customers.create", ctx.Wrap(c.Customers.Create))
	customers.Get("/{id}", "customers.show", ctx.Wrap(c.Customers.Show))
	customers.Put("/{id}", "customers.update", ctx.Wrap(c.Customers.Update))
	customers.Delete("/{id}", "customers.delete", ctx.Wrap(c.Customers.Delete))

	accounts := r.Group("/customeraccounts")
	accounts.Post("", "accounts.create", ctx.Wrap(c.Accounts.Create))
	accounts.Get("/{id}", "accounts.show", ctx.Wrap(c.Accounts.Show))
	accounts.Put("/{id}", "accounts.update", ctx.Wrap(c.Accounts.Update))
	accounts.Delete("/{id}", "accounts.delete", ctx.Wrap(c.Accounts.Delete))

	products := r.Group("/products")
	products.Post("", "products.create", ctx.Wrap(c.Products.Create))
	products.Get("", "products.index", ctx.Wrap(c.Products.Index))
	products.Get("/{id}", "products.show", ctx.Wrap(c.Products.Show))
	products.Put("/{id}", "products.update", ctx.Wrap(c.Products.Update))
	products.Delete("/{id}", "products.delete", ctx.Wrap(c.Products.Delete))
	products.Post("/{id}/image", "products.image", ctx.Wrap(c.Products.UploadImage))

	orders := r.Group("/orders")
	orders.Post("", "orders.place", ctx.Wrap(c.Orders.Place))
	orders.Get("/{id}", "orders.show", ctx.Wrap(c.Orders.Show))
	orders.Get("/{id}/track", "orders.track", ctx.Wrap(c.Orders.Track))
	orders.Put("/{id}/status", "orders.status", ctx.Wrap(c.Orders.UpdateStatus))
	orders.Post("/{id}/cancel", "orders.cancel", ctx.Wrap(c.Orders.Cancel))
	orders.Get("/{id}/total", "orders.total", ctx.Wrap(c.Orders.Total))
}
