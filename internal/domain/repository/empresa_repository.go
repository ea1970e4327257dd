package repository

import "github.com/ecogestor/licenciamento-api/internal/domain/entity"

// EmpresaRepository define o porto de persistência para Empresa (DIP).
// A implementação vive em infrastructure. Métodos Get* devolvem (nil, nil)
// quando o registro não existe.
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	GetByCNPJ(cnpj string) (*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
	List() ([]*entity.Empresa, error)
	Delete(id string) error
	// CountLicencas informa quantas licenças a empresa possui (guarda de deleção).
	CountLicencas(empresaID string) (int, error)
}
