package agenda_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestor/licenciamento-api/internal/application/agenda"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// fakeClient cliente de calendário em memória com contadores.
type fakeClient struct {
	criados     int
	atualizados int
	removidos   int
	falhaCriar  bool
}

func (f *fakeClient) CriarEvento(_ context.Context, cond *entity.Condicionante, _ string) (string, error) {
	if f.falhaCriar {
		return "", fmt.Errorf("quota excedida")
	}
	f.criados++
	return "evt_" + cond.ID, nil
}

func (f *fakeClient) AtualizarEvento(_ context.Context, _ string, _ *entity.Condicionante, _ string) error {
	f.atualizados++
	return nil
}

func (f *fakeClient) RemoverEvento(_ context.Context, _ string) error {
	f.removidos++
	return nil
}

func (f *fakeClient) Modo() string { return "simulado" }

// fakeNotifRepo repositório de notificações em memória.
type fakeNotifRepo struct {
	notifs map[string]*entity.Notificacao
}

func newFakeNotifRepo() *fakeNotifRepo {
	return &fakeNotifRepo{notifs: map[string]*entity.Notificacao{}}
}

func (f *fakeNotifRepo) Create(n *entity.Notificacao) error {
	cp := *n
	f.notifs[n.ID] = &cp
	return nil
}

func (f *fakeNotifRepo) Update(n *entity.Notificacao) error {
	cp := *n
	f.notifs[n.ID] = &cp
	return nil
}

func (f *fakeNotifRepo) Delete(id string) error {
	delete(f.notifs, id)
	return nil
}

func (f *fakeNotifRepo) GetCalendarByCondicionante(condicionanteID string) (*entity.Notificacao, error) {
	for _, n := range f.notifs {
		if n.CondicionanteID == condicionanteID && n.Tipo == entity.NotificacaoCalendar {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeNotifRepo) CountCalendarEnviadas() (int, error) {
	count := 0
	for _, n := range f.notifs {
		if n.Tipo == entity.NotificacaoCalendar && n.Status == entity.NotificacaoEnviada && n.GoogleEventID != "" {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotifRepo) UltimasSincronizacoes(limit int) ([]*entity.Notificacao, error) {
	var out []*entity.Notificacao
	for _, n := range f.notifs {
		if len(out) == limit {
			break
		}
		if n.Tipo == entity.NotificacaoCalendar && n.GoogleEventID != "" {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner executa o callback direto no repositório, sem transação.
type fakeTxRunner struct {
	notifRepo repository.NotificacaoRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.NotificacaoRepository) error) error {
	return fn(f.notifRepo)
}

// fakeSyncCondRepo expõe só as condicionantes pré-carregadas.
type fakeSyncCondRepo struct {
	conds map[string]*repository.CondicionanteComLicenca
}

func (f *fakeSyncCondRepo) Create(*entity.Condicionante) error { return nil }
func (f *fakeSyncCondRepo) Update(*entity.Condicionante) error { return nil }
func (f *fakeSyncCondRepo) Delete(string) error                { return nil }

func (f *fakeSyncCondRepo) GetByID(string) (*entity.Condicionante, error) {
	return nil, nil
}

func (f *fakeSyncCondRepo) GetComLicenca(id string) (*repository.CondicionanteComLicenca, error) {
	cl, ok := f.conds[id]
	if !ok {
		return nil, nil
	}
	return cl, nil
}

func (f *fakeSyncCondRepo) List(repository.CondicionanteFiltro) ([]*repository.CondicionanteComLicenca, error) {
	return nil, nil
}

func (f *fakeSyncCondRepo) ListByLicenca(string) ([]*entity.Condicionante, error) {
	return nil, nil
}

func (f *fakeSyncCondRepo) ListVencimento(time.Time) ([]*repository.CondicionanteComLicenca, error) {
	return nil, nil
}

func (f *fakeSyncCondRepo) ListPendentesComDataLimite() ([]*repository.CondicionanteComLicenca, error) {
	out := make([]*repository.CondicionanteComLicenca, 0, len(f.conds))
	for _, cl := range f.conds {
		out = append(out, cl)
	}
	return out, nil
}

func novaCondicionante(id, descricao string) *repository.CondicionanteComLicenca {
	limite := time.Now().AddDate(0, 0, 30)
	return &repository.CondicionanteComLicenca{
		Condicionante: entity.Condicionante{
			ID:         id,
			LicencaID:  "lic-1",
			Descricao:  descricao,
			DataLimite: &limite,
			Status:     entity.CondicionantePendente,
		},
		Licenca: entity.Licenca{ID: "lic-1", TipoLicenca: "Licença de Operação"},
		Empresa: entity.Empresa{ID: "emp-1", RazaoSocial: "Empresa Teste LTDA"},
	}
}

func setupSync(conds ...*repository.CondicionanteComLicenca) (*agenda.SyncUseCase, *fakeClient, *fakeNotifRepo) {
	condRepo := &fakeSyncCondRepo{conds: map[string]*repository.CondicionanteComLicenca{}}
	for _, cl := range conds {
		condRepo.conds[cl.Condicionante.ID] = cl
	}
	notifRepo := newFakeNotifRepo()
	client := &fakeClient{}
	uc := agenda.NewSyncUseCase(condRepo, notifRepo, &fakeTxRunner{notifRepo: notifRepo}, client)
	return uc, client, notifRepo
}

func TestSyncPrimeiraVezCriaEvento(t *testing.T) {
	uc, client, notifRepo := setupSync(novaCondicionante("cond-1", "Relatório de monitoramento"))

	out, err := uc.SincronizarCondicionante(context.Background(), "cond-1")
	require.NoError(t, err)

	assert.True(t, out.Criado)
	assert.Equal(t, "Evento criado no Google Calendar", out.Mensagem)
	assert.Equal(t, "evt_cond-1", out.EventID)
	assert.Equal(t, 1, client.criados)

	notif, err := notifRepo.GetCalendarByCondicionante("cond-1")
	require.NoError(t, err)
	require.NotNil(t, notif)
	assert.Equal(t, entity.NotificacaoEnviada, notif.Status)
	assert.Equal(t, "evt_cond-1", notif.GoogleEventID)
	assert.Contains(t, notif.Mensagem, "Evento criado para: Relatório de monitoramento")
}

func TestSyncSegundaVezAtualizaEvento(t *testing.T) {
	uc, client, _ := setupSync(novaCondicionante("cond-1", "Relatório"))

	_, err := uc.SincronizarCondicionante(context.Background(), "cond-1")
	require.NoError(t, err)

	out, err := uc.SincronizarCondicionante(context.Background(), "cond-1")
	require.NoError(t, err)

	assert.False(t, out.Criado)
	assert.Equal(t, "Evento atualizado no Google Calendar", out.Mensagem)
	assert.Equal(t, "evt_cond-1", out.EventID)
	assert.Equal(t, 1, client.criados, "não deve criar de novo")
	assert.Equal(t, 1, client.atualizados)
}

func TestSyncCondicionanteInexistente(t *testing.T) {
	uc, _, _ := setupSync()

	_, err := uc.SincronizarCondicionante(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestSyncTodasAcumulaContadores(t *testing.T) {
	uc, _, _ := setupSync(
		novaCondicionante("cond-1", "A"),
		novaCondicionante("cond-2", "B"),
		novaCondicionante("cond-3", "C"),
	)

	// Primeira leva: tudo criado.
	out, err := uc.SincronizarTodas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sincronização concluída", out.Mensagem)
	assert.Equal(t, 3, out.TotalProcessados)
	assert.Equal(t, 3, out.EventosCriados)
	assert.Equal(t, 0, out.EventosAtualizados)
	assert.Equal(t, 0, out.Erros)

	// Segunda leva: tudo atualizado.
	out, err = uc.SincronizarTodas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.EventosCriados)
	assert.Equal(t, 3, out.EventosAtualizados)
}

func TestSyncTodasContaErros(t *testing.T) {
	cl := novaCondicionante("cond-1", "A")
	condRepo := &fakeSyncCondRepo{conds: map[string]*repository.CondicionanteComLicenca{"cond-1": cl}}
	notifRepo := newFakeNotifRepo()
	client := &fakeClient{falhaCriar: true}
	uc := agenda.NewSyncUseCase(condRepo, notifRepo, &fakeTxRunner{notifRepo: notifRepo}, client)

	out, err := uc.SincronizarTodas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Erros)
	assert.Equal(t, 0, out.EventosCriados)
}

func TestRemoverEventoSemNotificacao(t *testing.T) {
	uc, _, _ := setupSync(novaCondicionante("cond-1", "A"))

	err := uc.RemoverEvento(context.Background(), "cond-1")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestRemoverEventoExistente(t *testing.T) {
	uc, client, notifRepo := setupSync(novaCondicionante("cond-1", "A"))

	_, err := uc.SincronizarCondicionante(context.Background(), "cond-1")
	require.NoError(t, err)

	require.NoError(t, uc.RemoverEvento(context.Background(), "cond-1"))
	assert.Equal(t, 1, client.removidos)

	notif, err := notifRepo.GetCalendarByCondicionante("cond-1")
	require.NoError(t, err)
	assert.Nil(t, notif, "notificação local deve ser removida junto")
}

func TestStatusPercentual(t *testing.T) {
	uc, _, _ := setupSync(
		novaCondicionante("cond-1", "A"),
		novaCondicionante("cond-2", "B"),
		novaCondicionante("cond-3", "C"),
	)

	_, err := uc.SincronizarCondicionante(context.Background(), "cond-1")
	require.NoError(t, err)

	status, err := uc.Status(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, status.TotalCondicionantes)
	assert.Equal(t, 1, status.Sincronizadas)
	assert.Equal(t, 2, status.NaoSincronizadas)
	assert.InDelta(t, 33.3, status.PercentualSincronizado, 0.01)
	assert.Len(t, status.UltimasSincronizacoes, 1)
}

func TestConfigModoSimulado(t *testing.T) {
	uc, _, _ := setupSync()

	cfg := uc.Config()
	assert.Equal(t, "configurado", cfg.Status)
	assert.Equal(t, "simulado", cfg.Modo)
	assert.Contains(t, cfg.Observacao, "modo de desenvolvimento")
	assert.NotEmpty(t, cfg.Funcionalidades)
}
