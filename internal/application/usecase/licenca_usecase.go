package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// DiasVencimentoPadrao janela padrão das consultas de vencimento.
const DiasVencimentoPadrao = 30

// LicencaUseCase aplica as regras de negócio para licenças.
type LicencaUseCase struct {
	licencaRepo repository.LicencaRepository
	empresaRepo repository.EmpresaRepository
	condRepo    repository.CondicionanteRepository
}

// NewLicencaUseCase constrói o caso de uso.
func NewLicencaUseCase(
	licencaRepo repository.LicencaRepository,
	empresaRepo repository.EmpresaRepository,
	condRepo repository.CondicionanteRepository,
) *LicencaUseCase {
	return &LicencaUseCase{licencaRepo: licencaRepo, empresaRepo: empresaRepo, condRepo: condRepo}
}

// Create cria uma licença. A empresa deve existir (ErrNaoEncontrado) e as
// datas seguem YYYY-MM-DD (ErrDataInvalida).
func (uc *LicencaUseCase) Create(in dto.CreateLicencaRequest) (*dto.LicencaResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNaoEncontrado
	}

	var dataEmissao *time.Time
	if in.DataEmissao != "" {
		d, err := dto.ParseData(in.DataEmissao)
		if err != nil {
			return nil, err
		}
		dataEmissao = &d
	}
	dataVencimento, err := dto.ParseData(in.DataVencimento)
	if err != nil {
		return nil, err
	}

	orgao := in.OrgaoEmissor
	if orgao == "" {
		orgao = entity.OrgaoEmissorPadrao
	}
	status := in.Status
	if status == "" {
		status = entity.LicencaAtiva
	}

	now := time.Now()
	licenca := &entity.Licenca{
		ID:             uuid.New().String(),
		EmpresaID:      in.EmpresaID,
		TipoLicenca:    in.TipoLicenca,
		NumeroLicenca:  in.NumeroLicenca,
		OrgaoEmissor:   orgao,
		DataEmissao:    dataEmissao,
		DataVencimento: dataVencimento,
		Status:         status,
		Observacoes:    in.Observacoes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.licencaRepo.Create(licenca); err != nil {
		return nil, err
	}
	return toLicencaResponse(licenca, now), nil
}

// List lista licenças com a empresa dona embutida, aplicando filtros opcionais.
func (uc *LicencaUseCase) List(filtro repository.LicencaFiltro) ([]dto.LicencaResponse, error) {
	list, err := uc.licencaRepo.List(filtro)
	if err != nil {
		return nil, err
	}
	hoje := time.Now()
	items := make([]dto.LicencaResponse, 0, len(list))
	for _, le := range list {
		resp := toLicencaResponse(&le.Licenca, hoje)
		resp.Empresa = toEmpresaResponse(&le.Empresa)
		items = append(items, *resp)
	}
	return items, nil
}

// GetByID obtém uma licença com empresa e condicionantes embutidas.
// As condicionantes vêm ordenadas por data limite ascendente, NULLs por último.
// Devolve (nil, nil) se não existir.
func (uc *LicencaUseCase) GetByID(id string) (*dto.LicencaResponse, error) {
	licenca, err := uc.licencaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if licenca == nil {
		return nil, nil
	}
	empresa, err := uc.empresaRepo.GetByID(licenca.EmpresaID)
	if err != nil {
		return nil, err
	}
	conds, err := uc.condRepo.ListByLicenca(id)
	if err != nil {
		return nil, err
	}

	hoje := time.Now()
	resp := toLicencaResponse(licenca, hoje)
	resp.Empresa = toEmpresaResponse(empresa)
	resp.Condicionantes = make([]dto.CondicionanteResponse, 0, len(conds))
	for _, c := range conds {
		resp.Condicionantes = append(resp.Condicionantes, *toCondicionanteResponse(c, hoje))
	}
	return resp, nil
}

// Update aplica uma atualização parcial de licença.
func (uc *LicencaUseCase) Update(id string, in dto.UpdateLicencaRequest) (*dto.LicencaResponse, error) {
	licenca, err := uc.licencaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if licenca == nil {
		return nil, domain.ErrNaoEncontrado
	}

	if in.DataEmissao != nil {
		d, err := dto.ParseData(*in.DataEmissao)
		if err != nil {
			return nil, err
		}
		licenca.DataEmissao = &d
	}
	if in.DataVencimento != nil {
		d, err := dto.ParseData(*in.DataVencimento)
		if err != nil {
			return nil, err
		}
		licenca.DataVencimento = d
	}
	if in.TipoLicenca != nil {
		licenca.TipoLicenca = *in.TipoLicenca
	}
	if in.NumeroLicenca != nil {
		licenca.NumeroLicenca = *in.NumeroLicenca
	}
	if in.OrgaoEmissor != nil {
		licenca.OrgaoEmissor = *in.OrgaoEmissor
	}
	if in.Status != nil {
		licenca.Status = *in.Status
	}
	if in.Observacoes != nil {
		licenca.Observacoes = *in.Observacoes
	}

	licenca.UpdatedAt = time.Now()
	if err := uc.licencaRepo.Update(licenca); err != nil {
		return nil, err
	}
	return toLicencaResponse(licenca, time.Now()), nil
}

// Delete remove a licença; condicionantes e notificações caem em cascata.
func (uc *LicencaUseCase) Delete(id string) error {
	licenca, err := uc.licencaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if licenca == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.licencaRepo.Delete(id)
}

// ListVencimento lista licenças ativas vencendo nos próximos dias.
func (uc *LicencaUseCase) ListVencimento(dias int) ([]dto.LicencaResponse, error) {
	if dias <= 0 {
		dias = DiasVencimentoPadrao
	}
	hoje := time.Now()
	ate := hoje.AddDate(0, 0, dias)

	list, err := uc.licencaRepo.ListVencimento(ate)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LicencaResponse, 0, len(list))
	for _, le := range list {
		resp := toLicencaResponse(&le.Licenca, hoje)
		resp.Empresa = toEmpresaResponse(&le.Empresa)
		items = append(items, *resp)
	}
	return items, nil
}

// ListByEmpresa lista as licenças de uma empresa.
func (uc *LicencaUseCase) ListByEmpresa(empresaID string) ([]dto.LicencaResponse, error) {
	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNaoEncontrado
	}
	list, err := uc.licencaRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	hoje := time.Now()
	items := make([]dto.LicencaResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLicencaResponse(l, hoje))
	}
	return items, nil
}

// ListCondicionantes lista as condicionantes de uma licença, na ordenação canônica.
func (uc *LicencaUseCase) ListCondicionantes(licencaID string) ([]dto.CondicionanteResponse, error) {
	licenca, err := uc.licencaRepo.GetByID(licencaID)
	if err != nil {
		return nil, err
	}
	if licenca == nil {
		return nil, domain.ErrNaoEncontrado
	}
	conds, err := uc.condRepo.ListByLicenca(licencaID)
	if err != nil {
		return nil, err
	}
	hoje := time.Now()
	items := make([]dto.CondicionanteResponse, 0, len(conds))
	for _, c := range conds {
		items = append(items, *toCondicionanteResponse(c, hoje))
	}
	return items, nil
}
