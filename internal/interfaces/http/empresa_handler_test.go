package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
	apphttp "github.com/ecogestor/licenciamento-api/internal/interfaces/http"
)

// fakeEmpresaRepo repositório em memória para os testes de handler.
type fakeEmpresaRepo struct {
	empresas map[string]*entity.Empresa
	licencas map[string]int
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{}, licencas: map[string]int{}}
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

// stubLicencaRepo só o suficiente para construir o LicencaUseCase.
type stubLicencaRepo struct{ repository.LicencaRepository }

func (stubLicencaRepo) ListByEmpresa(string) ([]*entity.Licenca, error) { return nil, nil }

// buildEmpresaApp monta o app Fiber com as rotas de empresa sobre fakes.
func buildEmpresaApp(repo *fakeEmpresaRepo) *fiber.App {
	empresaUC := usecase.NewEmpresaUseCase(repo)
	licencaUC := usecase.NewLicencaUseCase(stubLicencaRepo{}, repo, nil)
	h := apphttp.NewEmpresaHandler(empresaUC, licencaUC)

	app := fiber.New()
	api := app.Group("/api")
	empresas := api.Group("/empresas")
	empresas.Get("/", h.List)
	empresas.Post("/", h.Create)
	empresas.Get("/:id", h.GetByID)
	empresas.Put("/:id", h.Update)
	empresas.Delete("/:id", h.Delete)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestEmpresaHandlerCreate(t *testing.T) {
	app := buildEmpresaApp(newFakeEmpresaRepo())

	resp := postJSON(t, app, "/api/empresas/", map[string]string{
		"razao_social": "Petróleo Brasileiro S.A.",
		"cnpj":         "33.000.167/0001-01",
		"email":        "meioambiente@petrobras.com.br",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "33000167000101", body["cnpj"], "CNPJ deve sair normalizado")
	assert.NotEmpty(t, body["id"])
}

func TestEmpresaHandlerCreateCamposObrigatorios(t *testing.T) {
	app := buildEmpresaApp(newFakeEmpresaRepo())

	// A razão social é checada antes do CNPJ: mensagens determinísticas.
	resp := postJSON(t, app, "/api/empresas/", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Razão social é obrigatória", decodeBody(t, resp)["erro"])

	resp = postJSON(t, app, "/api/empresas/", map[string]string{"razao_social": "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CNPJ é obrigatório", decodeBody(t, resp)["erro"])
}

func TestEmpresaHandlerCreateCNPJInvalido(t *testing.T) {
	app := buildEmpresaApp(newFakeEmpresaRepo())

	resp := postJSON(t, app, "/api/empresas/", map[string]string{
		"razao_social": "X",
		"cnpj":         "11.111.111/1111-11", // dígitos repetidos
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CNPJ inválido", decodeBody(t, resp)["erro"])
}

func TestEmpresaHandlerCreateCNPJDuplicado(t *testing.T) {
	app := buildEmpresaApp(newFakeEmpresaRepo())

	resp := postJSON(t, app, "/api/empresas/", map[string]string{
		"razao_social": "A", "cnpj": "33.000.167/0001-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, app, "/api/empresas/", map[string]string{
		"razao_social": "B", "cnpj": "33000167000101",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CNPJ já cadastrado", decodeBody(t, resp)["erro"])
}

func TestEmpresaHandlerGetNaoEncontrada(t *testing.T) {
	app := buildEmpresaApp(newFakeEmpresaRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/empresas/nao-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Empresa não encontrada", decodeBody(t, resp)["erro"])
}

func TestEmpresaHandlerDeleteComLicencas(t *testing.T) {
	repo := newFakeEmpresaRepo()
	app := buildEmpresaApp(repo)

	resp := postJSON(t, app, "/api/empresas/", map[string]string{
		"razao_social": "A", "cnpj": "33.000.167/0001-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["id"].(string)
	repo.licencas[id] = 1

	req := httptest.NewRequest(http.MethodDelete, "/api/empresas/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Não é possível deletar empresa com licenças associadas", decodeBody(t, resp)["erro"])
}

func TestEmpresaHandlerDeleteOK(t *testing.T) {
	app := buildEmpresaApp(newFakeEmpresaRepo())

	resp := postJSON(t, app, "/api/empresas/", map[string]string{
		"razao_social": "A", "cnpj": "33.000.167/0001-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["id"].(string)

	req := httptest.NewRequest(http.MethodDelete, "/api/empresas/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Empresa deletada com sucesso", decodeBody(t, resp)["mensagem"])
}
