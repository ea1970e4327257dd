package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// Garante que DashboardRepo implementa repository.DashboardRepository.
var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas do resumo gerencial. Somente leitura.
type DashboardRepo struct {
	db dbtx
}

// NewDashboardRepository constrói o adaptador de consultas do dashboard.
func NewDashboardRepository(db dbtx) *DashboardRepo {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}

// CountEmpresasComLicenca conta empresas distintas com ao menos uma licença.
func (r *DashboardRepo) CountEmpresasComLicenca(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT empresa_id) FROM licencas`)
}

// CountLicencasAtivas conta licenças com status ativa.
func (r *DashboardRepo) CountLicencasAtivas(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM licencas WHERE status = 'ativa'`)
}

// CountCondicionantesPendentes conta condicionantes com status pendente.
func (r *DashboardRepo) CountCondicionantesPendentes(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM condicionantes WHERE status = 'pendente'`)
}

// CountLicencasVencendoAte conta licenças ativas vencendo até a data.
func (r *DashboardRepo) CountLicencasVencendoAte(ctx context.Context, ate time.Time) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM licencas WHERE status = 'ativa' AND data_vencimento <= $1`, ate)
}

// CountCondicionantesVencendoAte conta pendentes com data limite até a data.
func (r *DashboardRepo) CountCondicionantesVencendoAte(ctx context.Context, ate time.Time) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM condicionantes
		 WHERE status = 'pendente' AND data_limite IS NOT NULL AND data_limite <= $1`, ate)
}

// CountCondicionantesVencidas conta pendentes com data limite anterior a hoje.
func (r *DashboardRepo) CountCondicionantesVencidas(ctx context.Context, hoje time.Time) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM condicionantes
		 WHERE status = 'pendente' AND data_limite IS NOT NULL AND data_limite < $1`, hoje)
}

// ProximasAcoes devolve as condicionantes pendentes mais urgentes com
// licença e empresa, limitadas. Pendentes sem data limite entram por
// último, quando sobram vagas.
func (r *DashboardRepo) ProximasAcoes(ctx context.Context, limit int) ([]*repository.CondicionanteComLicenca, error) {
	query := `SELECT ` + condicionanteJoinCols + condicionanteJoin + `
		WHERE c.status = 'pendente'` +
		ordemCanonica + ` LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard próximas ações: %w", err)
	}
	return scanCondicionantesComLicenca(rows)
}
