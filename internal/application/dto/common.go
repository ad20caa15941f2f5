package dto

// Pagination metadatos de página en respuestas de listados.
// Pages solo se emite en listados que lo calculan (categorías).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages,omitempty"`
}

// ListResponse envoltura estándar de listados: {success, count, pagination, data}.
type ListResponse struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	Pagination Pagination `json:"pagination"`
	Data       any        `json:"data"`
}

// ItemResponse envoltura estándar de un solo recurso: {success, data}.
type ItemResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse cuerpo de error HTTP: {success: false, error}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ValidationErrorResponse error de validación con mensajes por campo.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}
