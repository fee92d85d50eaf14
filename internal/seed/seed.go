// Package seed loads the fixed data set the console starts from.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/store"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type File struct {
	Products  []ProductRecord  `yaml:"products"`
	Orders    []OrderRecord    `yaml:"orders"`
	Customers []CustomerRecord `yaml:"customers"`
}

type ProductRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Battery  string `yaml:"battery"`
	Status   string `yaml:"status"`
	Alerts   int    `yaml:"alerts"`
	LastSync string `yaml:"lastSync"`
	Stock    int    `yaml:"stock"`
	Active   bool   `yaml:"active"`
	Price    string `yaml:"price"`
	ImageURL string `yaml:"imageUrl"`
}

type OrderRecord struct {
	ID           string `yaml:"id"`
	CustomerName string `yaml:"customerName"`
	ProductID    string `yaml:"productId"`
	ProductName  string `yaml:"productName"`
	Quantity     int    `yaml:"quantity"`
	UnitPrice    string `yaml:"unitPrice"`
	Status       string `yaml:"status"`
	Date         string `yaml:"date"`
}

type CustomerRecord struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone"`
	Status        string `yaml:"status"`
	Joined        string `yaml:"joined"`
	TotalOrders   int    `yaml:"totalOrders"`
	TotalSpend    string `yaml:"totalSpend"`
	LastOrderDate string `yaml:"lastOrderDate"`
	Notes         string `yaml:"notes"`
}

// Default returns the embedded seed data.
func Default() (store.Snapshot, error) {
	return Parse(defaultSeed)
}

// LoadFile reads seed data from path instead of the embedded copy.
func LoadFile(path string) (store.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (store.Snapshot, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to parse seed YAML: %w", err)
	}
	return f.Snapshot()
}

// Snapshot converts the records, recomputing every order total from its
// quantity and unit price.
func (f *File) Snapshot() (store.Snapshot, error) {
	snap := store.Snapshot{
		Products:  make([]model.Product, 0, len(f.Products)),
		Orders:    make([]model.Order, 0, len(f.Orders)),
		Customers: make([]model.Customer, 0, len(f.Customers)),
	}

	for _, r := range f.Products {
		if model.FindProduct(snap.Products, r.ID) >= 0 {
			return store.Snapshot{}, fmt.Errorf("duplicate product id %q", r.ID)
		}
		price, err := parseMoney(r.Price)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("product %s: %w", r.ID, err)
		}
		p := model.Product{
			ID:       r.ID,
			Name:     r.Name,
			Category: r.Category,
			Battery:  r.Battery,
			Status:   r.Status,
			Alerts:   r.Alerts,
			LastSync: r.LastSync,
			Stock:    r.Stock,
			Active:   r.Active,
			Price:    price,
		}
		if r.ImageURL != "" {
			img := r.ImageURL
			p.ImageURL = &img
		}
		snap.Products = append(snap.Products, p)
	}

	for _, r := range f.Orders {
		if model.FindOrder(snap.Orders, r.ID) >= 0 {
			return store.Snapshot{}, fmt.Errorf("duplicate order id %q", r.ID)
		}
		unit, err := parseMoney(r.UnitPrice)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("order %s: %w", r.ID, err)
		}
		status := model.OrderStatus(r.Status)
		if status == "" {
			status = model.OrderPending
		}
		if !status.IsValid() {
			return store.Snapshot{}, fmt.Errorf("order %s: invalid status %q", r.ID, r.Status)
		}
		snap.Orders = append(snap.Orders, model.Order{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			Quantity:     r.Quantity,
			UnitPrice:    unit,
			TotalPrice:   model.LineTotal(r.Quantity, unit),
			Status:       status,
			Date:         r.Date,
		})
	}

	for _, r := range f.Customers {
		spend, err := parseMoney(r.TotalSpend)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("customer %s: %w", r.ID, err)
		}
		status := model.CustomerStatus(r.Status)
		if !status.IsValid() {
			return store.Snapshot{}, fmt.Errorf("customer %s: invalid status %q", r.ID, r.Status)
		}
		snap.Customers = append(snap.Customers, model.Customer{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			Phone:         r.Phone,
			Status:        status,
			Joined:        r.Joined,
			TotalOrders:   r.TotalOrders,
			TotalSpend:    spend,
			LastOrderDate: r.LastOrderDate,
			Notes:         r.Notes,
		})
	}

	return snap, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
