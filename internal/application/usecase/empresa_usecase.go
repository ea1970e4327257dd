package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/cnpj"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// EmpresaUseCase aplica as regras de negócio para empresas.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase constrói o caso de uso com o porto de persistência.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create cria uma empresa. Valida o CNPJ (forma pontuada ou só dígitos) e o
// armazena normalizado. Devolve ErrCNPJInvalido ou ErrCNPJDuplicado.
func (uc *EmpresaUseCase) Create(in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if !cnpj.Valid(in.CNPJ) {
		return nil, domain.ErrCNPJInvalido
	}
	limpo := cnpj.Normalize(in.CNPJ)

	existente, err := uc.repo.GetByCNPJ(limpo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrCNPJDuplicado
	}

	now := time.Now()
	empresa := &entity.Empresa{
		ID:          uuid.New().String(),
		RazaoSocial: in.RazaoSocial,
		CNPJ:        limpo,
		Email:       in.Email,
		Endereco:    in.Endereco,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// GetByID obtém uma empresa. Devolve (nil, nil) se não existir.
func (uc *EmpresaUseCase) GetByID(id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	return toEmpresaResponse(empresa), nil
}

// List lista todas as empresas.
func (uc *EmpresaUseCase) List() ([]dto.EmpresaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	return items, nil
}

// Update aplica uma atualização parcial: só os campos presentes no corpo
// são tocados. CNPJ, se presente, é revalidado como na criação.
func (uc *EmpresaUseCase) Update(id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNaoEncontrado
	}

	if in.CNPJ != nil {
		if !cnpj.Valid(*in.CNPJ) {
			return nil, domain.ErrCNPJInvalido
		}
		limpo := cnpj.Normalize(*in.CNPJ)
		existente, err := uc.repo.GetByCNPJ(limpo)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, domain.ErrCNPJDuplicado
		}
		empresa.CNPJ = limpo
	}
	if in.RazaoSocial != nil {
		empresa.RazaoSocial = *in.RazaoSocial
	}
	if in.Email != nil {
		empresa.Email = *in.Email
	}
	if in.Endereco != nil {
		empresa.Endereco = *in.Endereco
	}

	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// Delete remove uma empresa. Bloqueado quando existem licenças associadas
// (ErrEmpresaComLicencas); a remoção dos descendentes de uma licença é
// responsabilidade do cascade do banco.
func (uc *EmpresaUseCase) Delete(id string) error {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNaoEncontrado
	}
	n, err := uc.repo.CountLicencas(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrEmpresaComLicencas
	}
	return uc.repo.Delete(id)
}
