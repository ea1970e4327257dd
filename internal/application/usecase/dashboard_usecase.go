package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

const dashboardProximasAcoes = 5 // condicionantes no widget de próximas ações

// DashboardUseCase gera o resumo gerencial do licenciamento.
//
// Fonte de dados: DashboardRepository (consultas read-only). Não acessa as
// tabelas diretamente; delega tudo ao repositório.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetResumo constrói o ResumoResponse do dashboard.
//
// Três grupos de consultas em paralelo:
//  1. Totais    → empresas com licença, licenças ativas, condicionantes pendentes
//  2. Alertas   → itens vencendo em 30 dias e condicionantes já vencidas
//  3. Próximas  → as 5 condicionantes pendentes mais urgentes
func (uc *DashboardUseCase) GetResumo(ctx context.Context) (*dto.ResumoResponse, error) {
	hoje := time.Now()
	ate30 := hoje.AddDate(0, 0, 30)

	type totaisResult struct {
		totais dto.TotaisResumo
		err    error
	}
	type alertasResult struct {
		alertas dto.AlertasResumo
		err     error
	}
	type proximasResult struct {
		acoes []*repository.CondicionanteComLicenca
		err   error
	}

	totaisCh := make(chan totaisResult, 1)
	alertasCh := make(chan alertasResult, 1)
	proximasCh := make(chan proximasResult, 1)

	go func() {
		var r totaisResult
		if r.totais.Empresas, r.err = uc.repo.CountEmpresasComLicenca(ctx); r.err != nil {
			totaisCh <- r
			return
		}
		if r.totais.Licencas, r.err = uc.repo.CountLicencasAtivas(ctx); r.err != nil {
			totaisCh <- r
			return
		}
		r.totais.Condicionantes, r.err = uc.repo.CountCondicionantesPendentes(ctx)
		totaisCh <- r
	}()
	go func() {
		var r alertasResult
		if r.alertas.LicencasVencimento, r.err = uc.repo.CountLicencasVencendoAte(ctx, ate30); r.err != nil {
			alertasCh <- r
			return
		}
		if r.alertas.CondicionantesVencimento, r.err = uc.repo.CountCondicionantesVencendoAte(ctx, ate30); r.err != nil {
			alertasCh <- r
			return
		}
		r.alertas.CondicionantesVencidas, r.err = uc.repo.CountCondicionantesVencidas(ctx, hoje)
		alertasCh <- r
	}()
	go func() {
		acoes, err := uc.repo.ProximasAcoes(ctx, dashboardProximasAcoes)
		proximasCh <- proximasResult{acoes, err}
	}()

	totais := <-totaisCh
	alertas := <-alertasCh
	proximas := <-proximasCh

	if totais.err != nil {
		return nil, fmt.Errorf("dashboard: totais: %w", totais.err)
	}
	if alertas.err != nil {
		return nil, fmt.Errorf("dashboard: alertas: %w", alertas.err)
	}
	if proximas.err != nil {
		return nil, fmt.Errorf("dashboard: próximas ações: %w", proximas.err)
	}

	acoes := make([]dto.ProximaAcaoResponse, 0, len(proximas.acoes))
	for _, cl := range proximas.acoes {
		acoes = append(acoes, dto.ProximaAcaoResponse{
			CondicionanteResponse: *toCondicionanteResponse(&cl.Condicionante, hoje),
			Empresa:               cl.Empresa.RazaoSocial,
			TipoLicenca:           cl.Licenca.TipoLicenca,
		})
	}

	return &dto.ResumoResponse{
		Totais:        totais.totais,
		Alertas:       alertas.alertas,
		ProximasAcoes: acoes,
	}, nil
}
