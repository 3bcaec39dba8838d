// Package catalog consulta productos y mesas del servicio remoto. Es un
// passthrough sin estado: el catálogo vive en el servicio, el terminal no lo
// cachea ni lo valida.
package catalog

import (
	"context"

	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// Source puerto del catálogo remoto.
type Source interface {
	Products(ctx context.Context) ([]entity.Product, error)
	Tables(ctx context.Context) ([]entity.Table, error)
}

// UseCase consulta de catálogo.
type UseCase struct {
	source Source
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(source Source) *UseCase {
	return &UseCase{source: source}
}

// Products lista los productos vendibles.
func (uc *UseCase) Products(ctx context.Context) ([]entity.Product, error) {
	return uc.source.Products(ctx)
}

// Tables lista las mesas del local.
func (uc *UseCase) Tables(ctx context.Context) ([]entity.Table, error) {
	return uc.source.Tables(ctx)
}
