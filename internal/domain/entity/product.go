package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento de un producto.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Variant es una configuración comprable de un producto (talla, color, etc.).
// Pertenece exclusivamente a su producto padre; el ID se asigna al crearla y
// nunca se regenera, de modo que las actualizaciones de inventario puedan
// apuntar a una variante concreta.
type Variant struct {
	ID        string // sub-identificador estable (uuid)
	Name      string
	Color     string
	Size      string
	SKU       string // único a nivel global
	Price     decimal.Decimal
	Inventory int // nunca negativo
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product representa un producto del catálogo con su lista ordenada de variantes.
// CategoryName es derivado: se puebla en lecturas con el nombre de la categoría referenciada.
type Product struct {
	ID           string
	Name         string
	Description  string
	CategoryID   string
	CategoryName string
	Brand        string
	BasePrice    decimal.Decimal
	Discount     decimal.Decimal
	DiscountType string // percentage | fixed
	Variants     []Variant
	Images       []string
	Tags         []string
	IsActive     bool
	IsFeatured   bool
	Slug         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var hundred = decimal.NewFromInt(100)

// FinalPrice calcula el precio final tras aplicar el descuento.
// percentage: basePrice × (1 − discount/100); fixed: max(0, basePrice − discount).
// Un DiscountType vacío se trata como percentage (valor por defecto del catálogo).
func (p *Product) FinalPrice() decimal.Decimal {
	if p.DiscountType == DiscountTypeFixed {
		final := p.BasePrice.Sub(p.Discount)
		if final.IsNegative() {
			return decimal.Zero
		}
		return final
	}
	return p.BasePrice.Mul(hundred.Sub(p.Discount)).Div(hundred)
}

// TotalInventory suma el inventario de todas las variantes.
func (p *Product) TotalInventory() int {
	total := 0
	for i := range p.Variants {
		total += p.Variants[i].Inventory
	}
	return total
}

// InStock indica si el producto tiene al menos una unidad disponible.
func (p *Product) InStock() bool {
	return p.TotalInventory() > 0
}

// Variant busca una variante por su sub-identificador. Devuelve nil si no existe.
func (p *Product) Variant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

// RefreshSlug regenera el slug a partir del nombre actual.
// Se invoca al crear el producto y cada vez que cambia el nombre.
func (p *Product) RefreshSlug() {
	p.Slug = Slugify(p.Name)
}

// Slugify deriva un identificador apto para URL: minúsculas, cada corrida de
// caracteres no alfanuméricos colapsada a un solo guion, sin guiones en los extremos.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for _, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
