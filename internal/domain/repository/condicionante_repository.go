package repository

import (
	"time"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
)

// CondicionanteComLicenca resultado de leitura com licença e empresa embutidas.
type CondicionanteComLicenca struct {
	Condicionante entity.Condicionante
	Licenca       entity.Licenca
	Empresa       entity.Empresa
}

// CondicionanteFiltro filtros de igualdade opcionais para listagem.
type CondicionanteFiltro struct {
	LicencaID string
	Status    string
}

// CondicionanteRepository define o porto de persistência para Condicionante.
//
// Ordenação canônica das listagens: data_limite ascendente com NULLs por
// último, desempate pela ordem de criação (created_at, id).
type CondicionanteRepository interface {
	Create(c *entity.Condicionante) error
	GetByID(id string) (*entity.Condicionante, error)
	// GetComLicenca devolve a condicionante com licença e empresa embutidas.
	GetComLicenca(id string) (*CondicionanteComLicenca, error)
	Update(c *entity.Condicionante) error
	Delete(id string) error
	List(filtro CondicionanteFiltro) ([]*CondicionanteComLicenca, error)
	ListByLicenca(licencaID string) ([]*entity.Condicionante, error)
	// ListVencimento devolve condicionantes pendentes com data limite até a data
	// dada, ordenadas por data limite ascendente.
	ListVencimento(ate time.Time) ([]*CondicionanteComLicenca, error)
	// ListPendentesComDataLimite devolve as condicionantes pendentes que têm
	// data limite (universo da sincronização em lote).
	ListPendentesComDataLimite() ([]*CondicionanteComLicenca, error)
}
