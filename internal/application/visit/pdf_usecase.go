package visit

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/domain/entity"
)

// BadgePDFGenerator puerto de generación del crachá imprimible.
type BadgePDFGenerator interface {
	GenerateBadgePDF(ctx context.Context, agg *entity.VisitAggregate) ([]byte, error)
}

// BadgePDFUseCase resuelve el agregado de la visita y delega la generación
// del PDF al generador inyectado.
type BadgePDFUseCase struct {
	visits *VisitUseCase
	gen    BadgePDFGenerator
}

// NewBadgePDFUseCase construye el caso de uso.
func NewBadgePDFUseCase(visits *VisitUseCase, gen BadgePDFGenerator) *BadgePDFUseCase {
	return &BadgePDFUseCase{visits: visits, gen: gen}
}

// Generate devuelve los bytes del PDF del crachá de la visita.
// Aplica las mismas reglas de tenant que cualquier lectura de visita.
func (uc *BadgePDFUseCase) Generate(ctx context.Context, visitID, companyID string) ([]byte, error) {
	agg, err := uc.visits.Aggregate(ctx, visitID, companyID)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateBadgePDF(ctx, agg)
}
