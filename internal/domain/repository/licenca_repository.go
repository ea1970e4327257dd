package repository

import (
	"time"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
)

// LicencaComEmpresa resultado de leitura com a projeção da empresa dona.
// Produzido pelo JOIN no banco; o use case o converte em DTO.
type LicencaComEmpresa struct {
	Licenca entity.Licenca
	Empresa entity.Empresa
}

// LicencaFiltro filtros de igualdade opcionais para listagem.
type LicencaFiltro struct {
	EmpresaID string
	Status    string
}

// LicencaRepository define o porto de persistência para Licenca.
type LicencaRepository interface {
	Create(licenca *entity.Licenca) error
	GetByID(id string) (*entity.Licenca, error)
	Update(licenca *entity.Licenca) error
	Delete(id string) error
	// List devolve licenças com a empresa embutida, aplicando os filtros.
	List(filtro LicencaFiltro) ([]*LicencaComEmpresa, error)
	// ListByEmpresa devolve as licenças de uma empresa (sem projeção da dona).
	ListByEmpresa(empresaID string) ([]*entity.Licenca, error)
	// ListVencimento devolve licenças ativas com vencimento até a data dada,
	// ordenadas por data de vencimento ascendente.
	ListVencimento(ate time.Time) ([]*LicencaComEmpresa, error)
}
