package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Validator valida los DTOs de entrada y produce mensajes por campo con el
// nombre JSON del campo, no el de Go.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador compartido por los handlers.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida un DTO y devuelve mensajes por campo, o nil si es válido.
func (val *Validator) Struct(s any) map[string]string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		// Namespace incluye el tipo raíz ("CreateProductRequest.variants[0].sku");
		// se recorta para exponer la ruta JSON del campo.
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		out[key] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "hexadecimal":
		return fmt.Sprintf("%s must be a hexadecimal string", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Las reglas sobre montos no pasan por las etiquetas validate porque
// decimal.Decimal no es un tipo que el validador sepa comparar; se verifican
// a mano y se agregan al mismo mapa de errores.

func checkPriceRules(errs map[string]string, basePrice, discount *decimal.Decimal, discountType string, variants []dto.VariantRequest) map[string]string {
	add := func(field, msg string) map[string]string {
		if errs == nil {
			errs = map[string]string{}
		}
		errs[field] = msg
		return errs
	}
	if basePrice != nil && basePrice.IsNegative() {
		errs = add("basePrice", "basePrice must be a non-negative number")
	}
	if discount != nil {
		if discount.IsNegative() {
			errs = add("discount", "discount must be a non-negative number")
		} else if (discountType == "" || discountType == entity.DiscountTypePercentage) &&
			discount.GreaterThan(decimal.NewFromInt(100)) {
			errs = add("discount", "percentage discount cannot exceed 100")
		}
	}
	for i := range variants {
		if variants[i].Price.IsNegative() {
			errs = add(fmt.Sprintf("variants[%d].price", i), "price must be a non-negative number")
		}
	}
	return errs
}

func validateCreateProduct(val *Validator, in dto.CreateProductRequest) map[string]string {
	errs := val.Struct(in)
	return checkPriceRules(errs, &in.BasePrice, &in.Discount, in.DiscountType, in.Variants)
}

func validateUpdateProduct(val *Validator, in dto.UpdateProductRequest) map[string]string {
	errs := val.Struct(in)
	discountType := ""
	if in.DiscountType != nil {
		discountType = *in.DiscountType
	}
	return checkPriceRules(errs, in.BasePrice, in.Discount, discountType, in.Variants)
}
