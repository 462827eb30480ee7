package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Category is a product category as returned by the order API.
//
// The upstream payload is not uniform: some catalogs return categories as bare
// strings, others as objects carrying a "name" field. Both decode into the
// same Name.
type Category struct {
	Name string `json:"name"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Name = s
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Name = obj.Name
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"name"`
	}{Name: c.Name})
}

type ProductImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Product is a purchased line item owned by an Invoice. Price is the
// string-encoded unit price in the smallest currency unit, as delivered by
// the order API.
type Product struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Price      string         `json:"price"`
	Qty        int            `json:"qty"`
	Images     []ProductImage `json:"images"`
	Categories []Category     `json:"categories,omitempty"`
}

// UnitPrice parses the string-encoded price. Malformed prices count as zero.
func (p Product) UnitPrice() int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(p.Price), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// LineTotal is unit price times quantity, used for the webhook line items.
func (p Product) LineTotal() int64 {
	return p.UnitPrice() * int64(p.Qty)
}

type PaymentMethod struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Shipping struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Invoice is the customer order record fetched from the order service.
// Immutable once loaded for a confirmation session; Total is an integer in
// the smallest currency unit (IDR has no minor unit).
type Invoice struct {
	Invoice       string        `json:"invoice"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Total         int64         `json:"total"`
	Products      []Product     `json:"products"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Shipping      Shipping      `json:"shipping"`
	Status        string        `json:"status"`
}

// FirstProduct returns the product that drives bank-destination resolution.
func (i Invoice) FirstProduct() *Product {
	if len(i.Products) == 0 {
		return nil
	}
	return &i.Products[0]
}
