package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/vanijya/app/models"
	"github.com/shashiranjanraj/vanijya/app/repositories"
	"github.com/shashiranjanraj/vanijya/pkg/cache"
	"github.com/shashiranjanraj/vanijya/pkg/storage"
)

const (
	productListKey = "products:all"
	productListTTL = 5 * time.Minute
)

// ProductView is the API shape of a product. ImageURL is resolved
// from the stored path against the active disk.
type ProductView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url,omitempty"`
}

type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func viewOf(p models.Product) ProductView {
	v := ProductView{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
	if p.ImagePath != "" {
		v.ImageURL = storage.URL(p.ImagePath)
	}
	return v
}

func (s *ProductService) Create(name string, price float64, stock int) (ProductView, error) {
	product := models.Product{Name: name, Price: price, Stock: stock}
	if err := s.products.Create(&product); err != nil {
		return ProductView{}, err
	}
	cache.Forget(productListKey)
	return viewOf(product), nil
}

func (s *ProductService) Get(id uint) (ProductView, error) {
	product, err := s.find(id)
	if err != nil {
		return ProductView{}, err
	}
	return viewOf(product), nil
}

// List returns every product, cached for a short window. The cache is
// dropped on any product mutation.
func (s *ProductService) List() ([]ProductView, error) {
	var views []ProductView
	if cache.Get(productListKey, &views) {
		return views, nil
	}

	products, err := s.products.All()
	if err != nil {
		return nil, err
	}

	views = make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, viewOf(p))
	}

	cache.Set(productListKey, views, productListTTL)
	return views, nil
}

// Update replaces name and price. Stock is optional and keeps its
// current value when nil.
func (s *ProductService) Update(id uint, name string, price float64, stock *int) (ProductView, error) {
	product, err := s.find(id)
	if err != nil {
		return ProductView{}, err
	}

	product.Name = name
	product.Price = price
	if stock != nil {
		product.Stock = *stock
	}

	if err := s.products.Update(&product); err != nil {
		return ProductView{}, err
	}

	cache.Forget(productListKey)
	return viewOf(product), nil
}

func (s *ProductService) Delete(id uint) error {
	product, err := s.find(id)
	if err != nil {
		return err
	}

	refs, err := s.products.ReferenceCount(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("product %d is referenced by %d order line(s): %w", id, refs, ErrConflict)
	}

	if err := s.products.Delete(&product); err != nil {
		return err
	}
	cache.Forget(productListKey)
	return nil
}

// AttachImage stores an uploaded image on the configured disk and
// records its path on the product.
func (s *ProductService) AttachImage(id uint, file multipart.File, header *multipart.FileHeader) (ProductView, error) {
	product, err := s.find(id)
	if err != nil {
		return ProductView{}, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return ProductView{}, fmt.Errorf("unsupported image type %q: %w", ext, ErrInvalid)
	}

	path := fmt.Sprintf("products/%d%s", product.ID, ext)
	if err := storage.PutStream(path, file); err != nil {
		return ProductView{}, fmt.Errorf("store image: %w", err)
	}

	product.ImagePath = path
	if err := s.products.Update(&product); err != nil {
		return ProductView{}, err
	}

	cache.Forget(productListKey)
	return viewOf(product), nil
}

func (s *ProductService) find(id uint) (models.Product, error) {
	product, err := s.products.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return models.Product{}, err
	}
	return product, nil
}
