package postgres

import (
	"context"
	"fmt"

	"github.com/ecogestor/licenciamento-api/internal/domain"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// Garante que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	db dbtx
}

// NewEmpresaRepository constrói o adaptador de persistência para empresas.
func NewEmpresaRepository(db dbtx) *EmpresaRepo {
	return &EmpresaRepo{db: db}
}

const empresaCols = `id, razao_social, cnpj, email, endereco, created_at, updated_at`

// Create persiste uma nova empresa. Violação do índice único de CNPJ
// (corrida entre a pré-checagem e o insert) vira ErrCNPJDuplicado.
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, razao_social, cnpj, email, endereco, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.RazaoSocial, e.CNPJ, e.Email, e.Endereco, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCNPJDuplicado
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID. Devolve (nil, nil) se não existir.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCNPJ obtém uma empresa pelo CNPJ normalizado.
func (r *EmpresaRepo) GetByCNPJ(cnpj string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas WHERE cnpj = $1`
	return r.scanOne(query, cnpj)
}

func (r *EmpresaRepo) scanOne(query string, arg any) (*entity.Empresa, error) {
	var e entity.Empresa
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.RazaoSocial, &e.CNPJ, &e.Email, &e.Endereco, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// Update atualiza uma empresa existente.
func (r *EmpresaRepo) Update(e *entity.Empresa) error {
	query := `
		UPDATE empresas SET razao_social = $2, cnpj = $3, email = $4, endereco = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.RazaoSocial, e.CNPJ, e.Email, e.Endereco, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCNPJDuplicado
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// List devolve todas as empresas, mais recentes primeiro.
func (r *EmpresaRepo) List() ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaCols + ` FROM empresas ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.RazaoSocial, &e.CNPJ, &e.Email, &e.Endereco, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete remove uma empresa por ID.
func (r *EmpresaRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}

// CountLicencas conta as licenças da empresa (guarda de deleção).
func (r *EmpresaRepo) CountLicencas(empresaID string) (int, error) {
	var n int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM licencas WHERE empresa_id = $1`, empresaID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count licenças da empresa: %w", err)
	}
	return n, nil
}
