package repository

import (
	"context"
	"time"
)

// DashboardRepository define as consultas read-only do resumo gerencial.
// As implementações não modificam dados.
type DashboardRepository interface {
	// CountEmpresasComLicenca conta empresas distintas donas de ao menos uma licença.
	CountEmpresasComLicenca(ctx context.Context) (int, error)
	CountLicencasAtivas(ctx context.Context) (int, error)
	CountCondicionantesPendentes(ctx context.Context) (int, error)
	// CountLicencasVencendoAte conta licenças ativas com vencimento até a data.
	CountLicencasVencendoAte(ctx context.Context, ate time.Time) (int, error)
	// CountCondicionantesVencendoAte conta condicionantes pendentes com data limite até a data.
	CountCondicionantesVencendoAte(ctx context.Context, ate time.Time) (int, error)
	// CountCondicionantesVencidas conta condicionantes pendentes com data limite anterior a hoje.
	CountCondicionantesVencidas(ctx context.Context, hoje time.Time) (int, error)
	// ProximasAcoes devolve as condicionantes pendentes mais urgentes,
	// com licença e empresa embutidas.
	ProximasAcoes(ctx context.Context, limit int) ([]*CondicionanteComLicenca, error)
}
