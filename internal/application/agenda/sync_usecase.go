package agenda

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// SyncUseCase orquestra criação/atualização/remoção de eventos de calendário
// e mantém a notificação tipo calendar de cada condicionante (no máximo uma;
// sincronizações seguintes atualizam pelo event id).
type SyncUseCase struct {
	condRepo  repository.CondicionanteRepository
	notifRepo repository.NotificacaoRepository
	txRunner  TxRunner
	client    Client
}

// NewSyncUseCase constrói o caso de uso de sincronização.
func NewSyncUseCase(
	condRepo repository.CondicionanteRepository,
	notifRepo repository.NotificacaoRepository,
	txRunner TxRunner,
	client Client,
) *SyncUseCase {
	return &SyncUseCase{condRepo: condRepo, notifRepo: notifRepo, txRunner: txRunner, client: client}
}

// SincronizarCondicionante sincroniza uma condicionante: atualiza o evento
// existente ou cria um novo, registrando o resultado na notificação.
func (uc *SyncUseCase) SincronizarCondicionante(ctx context.Context, condicionanteID string) (*dto.SyncResponse, error) {
	cl, err := uc.condRepo.GetComLicenca(condicionanteID)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, domain.ErrNaoEncontrado
	}

	var resp *dto.SyncResponse
	err = uc.txRunner.Run(ctx, func(notifRepo repository.NotificacaoRepository) error {
		resp, err = uc.sincronizar(ctx, notifRepo, cl)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// sincronizar aplica o fluxo de sync para uma condicionante dentro da transação.
func (uc *SyncUseCase) sincronizar(
	ctx context.Context,
	notifRepo repository.NotificacaoRepository,
	cl *repository.CondicionanteComLicenca,
) (*dto.SyncResponse, error) {
	cond := &cl.Condicionante
	empresaNome := cl.Empresa.RazaoSocial

	notif, err := notifRepo.GetCalendarByCondicionante(cond.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if notif != nil && notif.GoogleEventID != "" {
		if err := uc.client.AtualizarEvento(ctx, notif.GoogleEventID, cond, empresaNome); err != nil {
			return nil, fmt.Errorf("atualizar evento no calendário: %w", err)
		}
		notif.Status = entity.NotificacaoEnviada
		notif.DataEnvio = &now
		if err := notifRepo.Update(notif); err != nil {
			return nil, err
		}
		return &dto.SyncResponse{
			Mensagem: "Evento atualizado no Google Calendar",
			EventID:  notif.GoogleEventID,
		}, nil
	}

	eventID, err := uc.client.CriarEvento(ctx, cond, empresaNome)
	if err != nil {
		return nil, fmt.Errorf("criar evento no calendário: %w", err)
	}

	if notif != nil {
		notif.GoogleEventID = eventID
		notif.Status = entity.NotificacaoEnviada
		notif.DataEnvio = &now
		if err := notifRepo.Update(notif); err != nil {
			return nil, err
		}
	} else {
		nova := &entity.Notificacao{
			ID:              uuid.New().String(),
			CondicionanteID: cond.ID,
			Tipo:            entity.NotificacaoCalendar,
			DataEnvio:       &now,
			Status:          entity.NotificacaoEnviada,
			GoogleEventID:   eventID,
			Mensagem:        fmt.Sprintf("Evento criado para: %s...", truncar(cond.Descricao, 50)),
			CreatedAt:       now,
		}
		if err := notifRepo.Create(nova); err != nil {
			return nil, err
		}
	}
	return &dto.SyncResponse{
		Mensagem: "Evento criado no Google Calendar",
		EventID:  eventID,
		Criado:   true,
	}, nil
}

// SincronizarTodas sincroniza todas as condicionantes pendentes com data
// limite, acumulando contadores de criados/atualizados/erros. As escritas da
// leva comitam juntas.
func (uc *SyncUseCase) SincronizarTodas(ctx context.Context) (*dto.SyncAllResponse, error) {
	list, err := uc.condRepo.ListPendentesComDataLimite()
	if err != nil {
		return nil, err
	}

	out := &dto.SyncAllResponse{
		Mensagem:         "Sincronização concluída",
		TotalProcessados: len(list),
	}
	err = uc.txRunner.Run(ctx, func(notifRepo repository.NotificacaoRepository) error {
		for _, cl := range list {
			resp, err := uc.sincronizar(ctx, notifRepo, cl)
			if err != nil {
				out.Erros++
				continue
			}
			if resp.Criado {
				out.EventosCriados++
			} else {
				out.EventosAtualizados++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoverEvento remove o evento externo e a notificação local da
// condicionante. Ausência de qualquer um dos dois é ErrNaoEncontrado.
func (uc *SyncUseCase) RemoverEvento(ctx context.Context, condicionanteID string) error {
	notif, err := uc.notifRepo.GetCalendarByCondicionante(condicionanteID)
	if err != nil {
		return err
	}
	if notif == nil || notif.GoogleEventID == "" {
		return domain.ErrNaoEncontrado
	}

	if err := uc.client.RemoverEvento(ctx, notif.GoogleEventID); err != nil {
		return fmt.Errorf("remover evento do calendário: %w", err)
	}
	return uc.txRunner.Run(ctx, func(notifRepo repository.NotificacaoRepository) error {
		return notifRepo.Delete(notif.ID)
	})
}

// Status devolve o andamento da sincronização: universo pendente com data
// limite, quantas já têm evento e as últimas sincronizações.
func (uc *SyncUseCase) Status(ctx context.Context) (*dto.CalendarStatusResponse, error) {
	pendentes, err := uc.condRepo.ListPendentesComDataLimite()
	if err != nil {
		return nil, err
	}
	total := len(pendentes)

	sincronizadas, err := uc.notifRepo.CountCalendarEnviadas()
	if err != nil {
		return nil, err
	}

	percentual := 0.0
	if total > 0 {
		percentual = math.Round(float64(sincronizadas)/float64(total)*1000) / 10
	}

	ultimas, err := uc.notifRepo.UltimasSincronizacoes(5)
	if err != nil {
		return nil, err
	}
	infos := make([]dto.SincronizacaoInfo, 0, len(ultimas))
	for _, n := range ultimas {
		infos = append(infos, dto.SincronizacaoInfo{
			CondicionanteID: n.CondicionanteID,
			DataEnvio:       dto.DataHora(n.DataEnvio),
			EventID:         n.GoogleEventID,
			Mensagem:        n.Mensagem,
		})
	}

	return &dto.CalendarStatusResponse{
		TotalCondicionantes:    total,
		Sincronizadas:          sincronizadas,
		NaoSincronizadas:       total - sincronizadas,
		PercentualSincronizado: percentual,
		UltimasSincronizacoes:  infos,
	}, nil
}

// Config descreve a integração ativa.
func (uc *SyncUseCase) Config() *dto.CalendarConfigResponse {
	observacao := "Integração real com o Google Calendar via OAuth2."
	if uc.client.Modo() == "simulado" {
		observacao = "Em modo de desenvolvimento, os eventos são simulados. Para produção, configure as credenciais OAuth2 do Google."
	}
	return &dto.CalendarConfigResponse{
		Status:     "configurado",
		Modo:       uc.client.Modo(),
		Observacao: observacao,
		Funcionalidades: []string{
			"Criação de eventos para condicionantes",
			"Atualização automática de eventos",
			"Remoção de eventos quando condicionantes são cumpridas",
			"Lembretes automáticos (7, 3 e 1 dia antes)",
			"Sincronização em lote",
		},
	}
}

func truncar(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
