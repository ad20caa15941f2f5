package entity

import "time"

// Category representa una categoría del catálogo.
// ProductCount es derivado: se puebla en lecturas contando los productos que la referencian.
type Category struct {
	ID           string
	Name         string
	Description  string
	IsActive     bool
	ProductCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
