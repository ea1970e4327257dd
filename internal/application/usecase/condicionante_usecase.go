package usecase

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// ComprovanteStorage porto de armazenamento dos comprovantes de cumprimento.
// A implementação vive em infrastructure/storage.
type ComprovanteStorage interface {
	// Permitido informa se a extensão do arquivo está na allow-list.
	Permitido(nomeArquivo string) bool
	// Salvar grava o conteúdo e devolve o caminho relativo persistível.
	Salvar(nomeArquivo string, conteudo io.Reader) (string, error)
}

// Comprovante arquivo de comprovante recebido por multipart.
type Comprovante struct {
	Nome     string
	Conteudo io.Reader
}

// CondicionanteUseCase aplica as regras de negócio para condicionantes.
type CondicionanteUseCase struct {
	condRepo    repository.CondicionanteRepository
	licencaRepo repository.LicencaRepository
	storage     ComprovanteStorage
}

// NewCondicionanteUseCase constrói o caso de uso.
func NewCondicionanteUseCase(
	condRepo repository.CondicionanteRepository,
	licencaRepo repository.LicencaRepository,
	storage ComprovanteStorage,
) *CondicionanteUseCase {
	return &CondicionanteUseCase{condRepo: condRepo, licencaRepo: licencaRepo, storage: storage}
}

// Create cria uma condicionante. A licença deve existir (ErrNaoEncontrado).
// Com prazo_dias a data limite é derivada da emissão da licença (ou hoje);
// senão, data_limite absoluta é aceita em YYYY-MM-DD.
func (uc *CondicionanteUseCase) Create(in dto.CreateCondicionanteRequest) (*dto.CondicionanteResponse, error) {
	licenca, err := uc.licencaRepo.GetByID(in.LicencaID)
	if err != nil {
		return nil, err
	}
	if licenca == nil {
		return nil, domain.ErrNaoEncontrado
	}

	status := in.Status
	if status == "" {
		status = entity.CondicionantePendente
	}

	now := time.Now()
	cond := &entity.Condicionante{
		ID:          uuid.New().String(),
		LicencaID:   in.LicencaID,
		Descricao:   in.Descricao,
		PrazoDias:   in.PrazoDias,
		Status:      status,
		Responsavel: in.Responsavel,
		Observacoes: in.Observacoes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.PrazoDias != nil {
		cond.CalcularDataLimite(licenca.DataEmissao, now)
	} else if in.DataLimite != "" {
		d, err := dto.ParseData(in.DataLimite)
		if err != nil {
			return nil, err
		}
		cond.DataLimite = &d
	}

	if err := uc.condRepo.Create(cond); err != nil {
		return nil, err
	}
	return toCondicionanteResponse(cond, now), nil
}

// List lista condicionantes com licença e empresa embutidas.
func (uc *CondicionanteUseCase) List(filtro repository.CondicionanteFiltro) ([]dto.CondicionanteResponse, error) {
	list, err := uc.condRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	return uc.toResponsesComLicenca(list), nil
}

// GetByID obtém uma condicionante com licença e empresa embutidas.
// Devolve (nil, nil) se não existir.
func (uc *CondicionanteUseCase) GetByID(id string) (*dto.CondicionanteResponse, error) {
	cl, err := uc.condRepo.GetComLicenca(id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, nil
	}
	hoje := time.Now()
	resp := toCondicionanteResponse(&cl.Condicionante, hoje)
	resp.Licenca = toLicencaResponse(&cl.Licenca, hoje)
	resp.Empresa = toEmpresaResponse(&cl.Empresa)
	return resp, nil
}

// Update aplica uma atualização parcial. prazo_dias presente recalcula a
// data limite a partir da emissão da licença; data_limite presente numa
// edição posterior sobrescreve a derivada.
func (uc *CondicionanteUseCase) Update(id string, in dto.UpdateCondicionanteRequest) (*dto.CondicionanteResponse, error) {
	cond, err := uc.condRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, domain.ErrNaoEncontrado
	}

	now := time.Now()
	if in.Descricao != nil {
		cond.Descricao = *in.Descricao
	}
	if in.PrazoDias != nil {
		cond.PrazoDias = in.PrazoDias
		licenca, err := uc.licencaRepo.GetByID(cond.LicencaID)
		if err != nil {
			return nil, err
		}
		var base *time.Time
		if licenca != nil {
			base = licenca.DataEmissao
		}
		cond.CalcularDataLimite(base, now)
	}
	if in.DataLimite != nil {
		d, err := dto.ParseData(*in.DataLimite)
		if err != nil {
			return nil, err
		}
		cond.DataLimite = &d
	}
	if in.Status != nil {
		cond.Status = *in.Status
	}
	if in.Responsavel != nil {
		cond.Responsavel = *in.Responsavel
	}
	if in.Observacoes != nil {
		cond.Observacoes = *in.Observacoes
	}
	if in.DataEnvioCumprimento != nil && *in.DataEnvioCumprimento != "" {
		d, err := dto.ParseData(*in.DataEnvioCumprimento)
		if err != nil {
			return nil, err
		}
		cond.DataEnvioCumprimento = &d
	}

	cond.UpdatedAt = now
	if err := uc.condRepo.Update(cond); err != nil {
		return nil, err
	}
	return toCondicionanteResponse(cond, now), nil
}

// Delete remove a condicionante; notificações caem em cascata.
func (uc *CondicionanteUseCase) Delete(id string) error {
	cond, err := uc.condRepo.GetByID(id)
	if err != nil {
		return err
	}
	if cond == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.condRepo.Delete(id)
}

// ListVencimento lista condicionantes pendentes vencendo nos próximos dias.
func (uc *CondicionanteUseCase) ListVencimento(dias int) ([]dto.CondicionanteResponse, error) {
	if dias <= 0 {
		dias = DiasVencimentoPadrao
	}
	ate := time.Now().AddDate(0, 0, dias)
	list, err := uc.condRepo.ListVencimento(ate)
	if err != nil {
		return nil, err
	}
	return uc.toResponsesComLicenca(list), nil
}

// MarcarCumprida marca a condicionante como cumprida, com comprovante opcional.
// Extensão fora da allow-list devolve ErrArquivoNaoPermitido sem alterar nada.
// Observações e comprovante anteriores são sempre limpos.
func (uc *CondicionanteUseCase) MarcarCumprida(id string, arquivo *Comprovante) (*dto.CondicionanteResponse, error) {
	cond, err := uc.condRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, domain.ErrNaoEncontrado
	}

	path := ""
	if arquivo != nil {
		if !uc.storage.Permitido(arquivo.Nome) {
			return nil, domain.ErrArquivoNaoPermitido
		}
		path, err = uc.storage.Salvar(arquivo.Nome, arquivo.Conteudo)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cond.Status = entity.CondicionanteCumprida
	cond.DataEnvioCumprimento = &hoje
	cond.Observacoes = ""
	cond.ComprovantePath = path
	cond.UpdatedAt = now

	if err := uc.condRepo.Update(cond); err != nil {
		return nil, err
	}
	return toCondicionanteResponse(cond, now), nil
}

// MarcarPendente reverte a condicionante para pendente, limpando os dados
// de cumprimento (data de envio, observações e comprovante).
func (uc *CondicionanteUseCase) MarcarPendente(id string) (*dto.CondicionanteResponse, error) {
	cond, err := uc.condRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, domain.ErrNaoEncontrado
	}

	now := time.Now()
	cond.Status = entity.CondicionantePendente
	cond.DataEnvioCumprimento = nil
	cond.Observacoes = ""
	cond.ComprovantePath = ""
	cond.UpdatedAt = now

	if err := uc.condRepo.Update(cond); err != nil {
		return nil, err
	}
	return toCondicionanteResponse(cond, now), nil
}

func (uc *CondicionanteUseCase) toResponsesComLicenca(list []*repository.CondicionanteComLicenca) []dto.CondicionanteResponse {
	hoje := time.Now()
	items := make([]dto.CondicionanteResponse, 0, len(list))
	for _, cl := range list {
		resp := toCondicionanteResponse(&cl.Condicionante, hoje)
		resp.Licenca = toLicencaResponse(&cl.Licenca, hoje)
		resp.Empresa = toEmpresaResponse(&cl.Empresa)
		items = append(items, *resp)
	}
	return items
}
