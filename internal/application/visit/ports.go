package visit

import (
	"context"

	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con los repos del agregado de visita atados a
// una misma transacción. O se confirma el agregado completo (visita +
// acompañantes + crachá) o no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		visitRepo repository.VisitRepository,
		companionRepo repository.CompanionRepository,
		badgeRepo repository.BadgeRepository,
	) error) error
}

// ActiveVisitsCache caché opcional del listado de visitas activas por
// empresa. Las implementaciones deben tolerar el backend caído: un fallo de
// caché nunca es un fallo de la operación.
type ActiveVisitsCache interface {
	Get(ctx context.Context, companyID string) ([]byte, bool)
	Set(ctx context.Context, companyID string, payload []byte)
	Invalidate(ctx context.Context, companyID string)
}
