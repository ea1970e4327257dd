package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// fakeDashboardRepo devolve contagens pré-configuradas e registra o limite
// pedido em ProximasAcoes.
type fakeDashboardRepo struct {
	empresas       int
	licencas       int
	condicionantes int

	licencasVencimento       int
	condicionantesVencimento int
	condicionantesVencidas   int

	acoes        []*repository.CondicionanteComLicenca
	limitePedido int

	falhaAlertas error
}

func (f *fakeDashboardRepo) CountEmpresasComLicenca(context.Context) (int, error) {
	return f.empresas, nil
}

func (f *fakeDashboardRepo) CountLicencasAtivas(context.Context) (int, error) {
	return f.licencas, nil
}

func (f *fakeDashboardRepo) CountCondicionantesPendentes(context.Context) (int, error) {
	return f.condicionantes, nil
}

func (f *fakeDashboardRepo) CountLicencasVencendoAte(context.Context, time.Time) (int, error) {
	if f.falhaAlertas != nil {
		return 0, f.falhaAlertas
	}
	return f.licencasVencimento, nil
}

func (f *fakeDashboardRepo) CountCondicionantesVencendoAte(context.Context, time.Time) (int, error) {
	return f.condicionantesVencimento, nil
}

func (f *fakeDashboardRepo) CountCondicionantesVencidas(context.Context, time.Time) (int, error) {
	return f.condicionantesVencidas, nil
}

func (f *fakeDashboardRepo) ProximasAcoes(_ context.Context, limit int) ([]*repository.CondicionanteComLicenca, error) {
	f.limitePedido = limit
	return f.acoes, nil
}

func proximaAcao(id, descricao string, dataLimite *time.Time) *repository.CondicionanteComLicenca {
	return &repository.CondicionanteComLicenca{
		Condicionante: entity.Condicionante{
			ID:         id,
			LicencaID:  "lic-1",
			Descricao:  descricao,
			DataLimite: dataLimite,
			Status:     entity.CondicionantePendente,
		},
		Licenca: entity.Licenca{ID: "lic-1", TipoLicenca: "Licença de Operação"},
		Empresa: entity.Empresa{ID: "emp-1", RazaoSocial: "Usina Boa Vista S.A."},
	}
}

func TestDashboardResumoAgregaContadores(t *testing.T) {
	em10Dias := time.Now().AddDate(0, 0, 10)
	repo := &fakeDashboardRepo{
		empresas:       3,
		licencas:       2,
		condicionantes: 5,

		licencasVencimento:       1,
		condicionantesVencimento: 4,
		condicionantesVencidas:   1,

		acoes: []*repository.CondicionanteComLicenca{
			proximaAcao("cond-1", "Relatório de monitoramento", &em10Dias),
			proximaAcao("cond-2", "Plano de recuperação", nil),
		},
	}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.GetResumo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, out.Totais.Empresas)
	assert.Equal(t, 2, out.Totais.Licencas)
	assert.Equal(t, 5, out.Totais.Condicionantes)

	assert.Equal(t, 1, out.Alertas.LicencasVencimento)
	assert.Equal(t, 4, out.Alertas.CondicionantesVencimento)
	assert.Equal(t, 1, out.Alertas.CondicionantesVencidas)

	assert.Equal(t, 5, repo.limitePedido, "o widget pede as 5 mais urgentes")

	require.Len(t, out.ProximasAcoes, 2)
	primeira := out.ProximasAcoes[0]
	assert.Equal(t, "cond-1", primeira.ID)
	assert.Equal(t, "Usina Boa Vista S.A.", primeira.Empresa)
	assert.Equal(t, "Licença de Operação", primeira.TipoLicenca)
	require.NotNil(t, primeira.DiasParaVencimento)
	assert.Equal(t, 10, *primeira.DiasParaVencimento)

	// Pendente sem data limite entra no widget sem dias calculados.
	segunda := out.ProximasAcoes[1]
	assert.Equal(t, "cond-2", segunda.ID)
	assert.Nil(t, segunda.DataLimite)
	assert.Nil(t, segunda.DiasParaVencimento)
}

func TestDashboardResumoSemProximasAcoes(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeDashboardRepo{})

	out, err := uc.GetResumo(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.ProximasAcoes)
	assert.Equal(t, 0, out.Totais.Empresas)
}

func TestDashboardResumoPropagaErroDeConsulta(t *testing.T) {
	errTimeout := errors.New("timeout na consulta")
	uc := usecase.NewDashboardUseCase(&fakeDashboardRepo{falhaAlertas: errTimeout})

	out, err := uc.GetResumo(context.Background())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, errTimeout)
}
