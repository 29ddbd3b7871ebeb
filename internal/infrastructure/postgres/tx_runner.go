package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/portaria-api/internal/application/visit"
	"github.com/jhoicas/portaria-api/internal/domain/repository"
)

// Ensure TxRunner implements visit.TxRunner.
var _ visit.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del agregado de visita
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	visitRepo repository.VisitRepository,
	companionRepo repository.CompanionRepository,
	badgeRepo repository.BadgeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	visitRepo := NewVisitRepository(tx)
	companionRepo := NewCompanionRepository(tx)
	badgeRepo := NewBadgeRepository(tx)

	if err := fn(visitRepo, companionRepo, badgeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
