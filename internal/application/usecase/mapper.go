package usecase

import (
	"time"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
)

// Conversões entidade -> DTO. Os campos derivados (dias_para_vencimento)
// são calculados aqui, em toda leitura.

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	created := e.CreatedAt
	updated := e.UpdatedAt
	return &dto.EmpresaResponse{
		ID:          e.ID,
		RazaoSocial: e.RazaoSocial,
		CNPJ:        e.CNPJ,
		Email:       e.Email,
		Endereco:    e.Endereco,
		CreatedAt:   dto.DataHora(&created),
		UpdatedAt:   dto.DataHora(&updated),
	}
}

func toLicencaResponse(l *entity.Licenca, hoje time.Time) *dto.LicencaResponse {
	if l == nil {
		return nil
	}
	dias := l.DiasParaVencimento(hoje)
	created := l.CreatedAt
	updated := l.UpdatedAt
	venc := l.DataVencimento
	return &dto.LicencaResponse{
		ID:                 l.ID,
		EmpresaID:          l.EmpresaID,
		TipoLicenca:        l.TipoLicenca,
		NumeroLicenca:      l.NumeroLicenca,
		OrgaoEmissor:       l.OrgaoEmissor,
		DataEmissao:        dto.Data(l.DataEmissao),
		DataVencimento:     dto.Data(&venc),
		Status:             l.Status,
		Observacoes:        l.Observacoes,
		DiasParaVencimento: &dias,
		CreatedAt:          dto.DataHora(&created),
		UpdatedAt:          dto.DataHora(&updated),
	}
}

func toCondicionanteResponse(c *entity.Condicionante, hoje time.Time) *dto.CondicionanteResponse {
	if c == nil {
		return nil
	}
	created := c.CreatedAt
	updated := c.UpdatedAt
	return &dto.CondicionanteResponse{
		ID:                   c.ID,
		LicencaID:            c.LicencaID,
		Descricao:            c.Descricao,
		PrazoDias:            c.PrazoDias,
		DataLimite:           dto.Data(c.DataLimite),
		Status:               c.Status,
		Responsavel:          c.Responsavel,
		Observacoes:          c.Observacoes,
		DataEnvioCumprimento: dto.Data(c.DataEnvioCumprimento),
		ComprovantePath:      c.ComprovantePath,
		DiasParaVencimento:   c.DiasParaVencimento(hoje),
		CreatedAt:            dto.DataHora(&created),
		UpdatedAt:            dto.DataHora(&updated),
	}
}
