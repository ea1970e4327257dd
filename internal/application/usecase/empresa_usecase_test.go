package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestor/licenciamento-api/internal/application/dto"
	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
)

// fakeEmpresaRepo repositório em memória para os testes de caso de uso.
type fakeEmpresaRepo struct {
	empresas map[string]*entity.Empresa
	licencas map[string]int // empresa_id -> nº de licenças
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{
		empresas: map[string]*entity.Empresa{},
		licencas: map[string]int{},
	}
}

func (f *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	cp := *e
	f.empresas[e.ID] = &cp
	return nil
}

func (f *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	e, ok := f.empresas[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmpresaRepo) GetByCNPJ(cnpj string) (*entity.Empresa, error) {
	for _, e := range f.empresas {
		if e.CNPJ == cnpj {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmpresaRepo) Update(e *entity.Empresa) error {
	cp := *e
	f.empresas[e.ID] = &cp
	return nil
}

func (f *fakeEmpresaRepo) List() ([]*entity.Empresa, error) {
	out := make([]*entity.Empresa, 0, len(f.empresas))
	for _, e := range f.empresas {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEmpresaRepo) Delete(id string) error {
	delete(f.empresas, id)
	return nil
}

func (f *fakeEmpresaRepo) CountLicencas(empresaID string) (int, error) {
	return f.licencas[empresaID], nil
}

// CNPJ real da Petrobras, com e sem pontuação.
const (
	cnpjPontuado = "33.000.167/0001-01"
	cnpjLimpo    = "33000167000101"
)

func TestEmpresaCreateNormalizaCNPJ(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := usecase.NewEmpresaUseCase(repo)

	out, err := uc.Create(dto.CreateEmpresaRequest{
		RazaoSocial: "Petróleo Brasileiro S.A.",
		CNPJ:        cnpjPontuado,
	})
	require.NoError(t, err)
	assert.Equal(t, cnpjLimpo, out.CNPJ, "CNPJ deve ser armazenado sem pontuação")
	assert.NotEmpty(t, out.ID)
	assert.NotNil(t, out.CreatedAt)
}

func TestEmpresaCreateCNPJInvalido(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(newFakeEmpresaRepo())

	_, err := uc.Create(dto.CreateEmpresaRequest{
		RazaoSocial: "Empresa X",
		CNPJ:        "33.000.167/0001-02", // dígito verificador alterado
	})
	assert.ErrorIs(t, err, domain.ErrCNPJInvalido)
}

func TestEmpresaCreateCNPJDuplicado(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := usecase.NewEmpresaUseCase(repo)

	_, err := uc.Create(dto.CreateEmpresaRequest{RazaoSocial: "A", CNPJ: cnpjPontuado})
	require.NoError(t, err)

	// Mesmo CNPJ sem pontuação: mesma identidade após normalização.
	_, err = uc.Create(dto.CreateEmpresaRequest{RazaoSocial: "B", CNPJ: cnpjLimpo})
	assert.ErrorIs(t, err, domain.ErrCNPJDuplicado)
}

func TestEmpresaUpdateParcial(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := usecase.NewEmpresaUseCase(repo)

	criada, err := uc.Create(dto.CreateEmpresaRequest{
		RazaoSocial: "Antiga Razão",
		CNPJ:        cnpjPontuado,
		Email:       "contato@antiga.com.br",
	})
	require.NoError(t, err)

	nova := "Nova Razão LTDA"
	out, err := uc.Update(criada.ID, dto.UpdateEmpresaRequest{RazaoSocial: &nova})
	require.NoError(t, err)

	assert.Equal(t, nova, out.RazaoSocial)
	assert.Equal(t, "contato@antiga.com.br", out.Email, "campo ausente não deve ser tocado")
	assert.Equal(t, cnpjLimpo, out.CNPJ)
}

func TestEmpresaUpdateMesmoCNPJNaoEDuplicata(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := usecase.NewEmpresaUseCase(repo)

	criada, err := uc.Create(dto.CreateEmpresaRequest{RazaoSocial: "A", CNPJ: cnpjPontuado})
	require.NoError(t, err)

	mesmo := cnpjPontuado
	_, err = uc.Update(criada.ID, dto.UpdateEmpresaRequest{CNPJ: &mesmo})
	assert.NoError(t, err, "reenviar o próprio CNPJ não é duplicata")
}

func TestEmpresaUpdateNaoEncontrada(t *testing.T) {
	uc := usecase.NewEmpresaUseCase(newFakeEmpresaRepo())

	nome := "X"
	_, err := uc.Update("inexistente", dto.UpdateEmpresaRequest{RazaoSocial: &nome})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestEmpresaDeleteComLicencasBloqueado(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := usecase.NewEmpresaUseCase(repo)

	criada, err := uc.Create(dto.CreateEmpresaRequest{RazaoSocial: "A", CNPJ: cnpjPontuado})
	require.NoError(t, err)
	repo.licencas[criada.ID] = 2

	err = uc.Delete(criada.ID)
	assert.ErrorIs(t, err, domain.ErrEmpresaComLicencas)

	restante, err := uc.GetByID(criada.ID)
	require.NoError(t, err)
	assert.NotNil(t, restante, "empresa bloqueada não pode ser removida")
}

func TestEmpresaDeleteSemLicencas(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := usecase.NewEmpresaUseCase(repo)

	criada, err := uc.Create(dto.CreateEmpresaRequest{RazaoSocial: "A", CNPJ: cnpjPontuado})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(criada.ID))

	restante, err := uc.GetByID(criada.ID)
	require.NoError(t, err)
	assert.Nil(t, restante)
}
