package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/vanijya/pkg/validate"
)

type productInput struct {
	Name  string  `json:"name"  validate:"required,max=200"`
	Price float64 `json:"price" validate:"required,numeric,gt=0"`
	Stock *int    `json:"stock" validate:"nullable,integer,gte=0"`
}

type accountInput struct {
	Username   string `json:"username"    validate:"required,alpha_dash,between=3,64"`
	Password   string `json:"password"    validate:"required,min=8,max=72"`
	CustomerID uint   `json:"customer_id" validate:"required,numeric"`
	Role       string `json:"role"        validate:"nullable,in=admin,staff,viewer"`
}

func TestValidInput(t *testing.T) {
	stock := 5
	errs := validate.Struct(productInput{
		Name:  "Brass Diya",
		Price: 10.0,
		Stock: &stock,
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected errors for empty input")
	}
	if _, ok := errs["name"]; !ok {
		t.Errorf("expected name error, got: %v", errs)
	}
	if _, ok := errs["price"]; !ok {
		t.Errorf("expected price error, got: %v", errs)
	}
}

func TestNullableSkipsRemainingRules(t *testing.T) {
	errs := validate.Struct(productInput{Name: "X", Price: 1.0, Stock: nil})
	if validate.HasErrors(errs) {
		t.Errorf("nil nullable field should pass, got: %v", errs)
	}
}

func TestNullableStillChecksWhenSet(t *testing.T) {
	stock := -1
	errs := validate.Struct(productInput{Name: "X", Price: 1.0, Stock: &stock})
	if _, ok := errs["stock"]; !ok {
		t.Errorf("negative stock should fail gte=0, got: %v", errs)
	}
}

func TestGreaterThanZero(t *testing.T) {
	errs := validate.Struct(productInput{Name: "Free Item", Price: -3.5})
	if _, ok := errs["price"]; !ok {
		t.Errorf("negative price should fail gt=0, got: %v", errs)
	}
}

func TestAlphaDash(t *testing.T) {
	errs := validate.Struct(accountInput{
		Username:   "bad user!",
		Password:   "password123",
		CustomerID: 1,
	})
	if _, ok := errs["username"]; !ok {
		t.Errorf("username with space should fail alpha_dash, got: %v", errs)
	}
}

func TestBetweenOnStringLength(t *testing.T) {
	errs := validate.Struct(accountInput{
		Username:   "ab",
		Password:   "password123",
		CustomerID: 1,
	})
	if _, ok := errs["username"]; !ok {
		t.Errorf("2-char username should fail between=3,64, got: %v", errs)
	}
}

func TestInList(t *testing.T) {
	in := accountInput{
		Username:   "valid_user",
		Password:   "password123",
		CustomerID: 1,
		Role:       "admin",
	}
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Errorf("role admin should pass, got: %v", errs)
	}

	in.Role = "superuser"
	if errs := validate.Struct(in); !validate.HasErrors(errs) {
		t.Error("role superuser should fail in=admin,staff,viewer")
	}
}

func TestEmail(t *testing.T) {
	type emailInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	if errs := validate.Struct(emailInput{Email: "asha@example.com"}); validate.HasErrors(errs) {
		t.Errorf("valid email should pass, got: %v", errs)
	}
	if errs := validate.Struct(emailInput{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("invalid email should fail")
	}
}

func TestMinPasswordLength(t *testing.T) {
	errs := validate.Struct(accountInput{
		Username:   "valid_user",
		Password:   "short",
		CustomerID: 1,
	})
	if _, ok := errs["password"]; !ok {
		t.Errorf("short password should fail min=8, got: %v", errs)
	}
}

func TestErrorsUseJSONFieldNames(t *testing.T) {
	errs := validate.Struct(accountInput{Username: "valid_user", Password: "password123"})
	if _, ok := errs["customer_id"]; !ok {
		t.Errorf("expected customer_id key, got: %v", errs)
	}
}
