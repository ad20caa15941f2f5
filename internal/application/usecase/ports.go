package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios ligados a una misma
// transacción; Commit si devuelve nil, Rollback en caso contrario.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository, categories repository.CategoryRepository) error) error
}
