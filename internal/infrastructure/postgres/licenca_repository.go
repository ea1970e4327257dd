package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/internal/domain/repository"
)

// Garante que LicencaRepo implementa repository.LicencaRepository.
var _ repository.LicencaRepository = (*LicencaRepo)(nil)

// LicencaRepo implementação do porto LicencaRepository sobre PostgreSQL.
type LicencaRepo struct {
	db dbtx
}

// NewLicencaRepository constrói o adaptador de persistência para licenças.
func NewLicencaRepository(db dbtx) *LicencaRepo {
	return &LicencaRepo{db: db}
}

const licencaCols = `l.id, l.empresa_id, l.tipo_licenca, l.numero_licenca, l.orgao_emissor,
	l.data_emissao, l.data_vencimento, l.status, l.observacoes, l.created_at, l.updated_at`

const licencaEmpresaCols = licencaCols + `,
	e.id, e.razao_social, e.cnpj, e.email, e.endereco, e.created_at, e.updated_at`

// Create persiste uma nova licença.
func (r *LicencaRepo) Create(l *entity.Licenca) error {
	query := `
		INSERT INTO licencas (id, empresa_id, tipo_licenca, numero_licenca, orgao_emissor,
			data_emissao, data_vencimento, status, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		l.ID, l.EmpresaID, l.TipoLicenca, l.NumeroLicenca, l.OrgaoEmissor,
		l.DataEmissao, l.DataVencimento, l.Status, l.Observacoes, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert licença: %w", err)
	}
	return nil
}

// GetByID obtém uma licença por ID. Devolve (nil, nil) se não existir.
func (r *LicencaRepo) GetByID(id string) (*entity.Licenca, error) {
	query := `SELECT ` + licencaCols + ` FROM licencas l WHERE l.id = $1`
	var l entity.Licenca
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.EmpresaID, &l.TipoLicenca, &l.NumeroLicenca, &l.OrgaoEmissor,
		&l.DataEmissao, &l.DataVencimento, &l.Status, &l.Observacoes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get licença: %w", err)
	}
	return &l, nil
}

// Update atualiza uma licença existente.
func (r *LicencaRepo) Update(l *entity.Licenca) error {
	query := `
		UPDATE licencas SET tipo_licenca = $2, numero_licenca = $3, orgao_emissor = $4,
			data_emissao = $5, data_vencimento = $6, status = $7, observacoes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		l.ID, l.TipoLicenca, l.NumeroLicenca, l.OrgaoEmissor,
		l.DataEmissao, l.DataVencimento, l.Status, l.Observacoes, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update licença: %w", err)
	}
	return nil
}

// Delete remove a licença; condicionantes e notificações caem via cascade.
func (r *LicencaRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM licencas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete licença: %w", err)
	}
	return nil
}

// List devolve licenças com a empresa dona, aplicando filtros de igualdade.
func (r *LicencaRepo) List(filtro repository.LicencaFiltro) ([]*repository.LicencaComEmpresa, error) {
	query := `
		SELECT ` + licencaEmpresaCols + `
		FROM licencas l
		JOIN empresas e ON e.id = l.empresa_id
		WHERE ($1 = '' OR l.empresa_id::text = $1)
		  AND ($2 = '' OR l.status = $2)
		ORDER BY l.created_at DESC`
	rows, err := r.db.Query(context.Background(), query, filtro.EmpresaID, filtro.Status)
	if err != nil {
		return nil, fmt.Errorf("list licenças: %w", err)
	}
	return scanLicencasComEmpresa(rows)
}

// ListByEmpresa devolve as licenças de uma empresa.
func (r *LicencaRepo) ListByEmpresa(empresaID string) ([]*entity.Licenca, error) {
	query := `SELECT ` + licencaCols + ` FROM licencas l WHERE l.empresa_id = $1 ORDER BY l.created_at`
	rows, err := r.db.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list licenças da empresa: %w", err)
	}
	defer rows.Close()

	var list []*entity.Licenca
	for rows.Next() {
		var l entity.Licenca
		if err := rows.Scan(
			&l.ID, &l.EmpresaID, &l.TipoLicenca, &l.NumeroLicenca, &l.OrgaoEmissor,
			&l.DataEmissao, &l.DataVencimento, &l.Status, &l.Observacoes, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan licença: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListVencimento devolve licenças ativas vencendo até a data, ascendente.
func (r *LicencaRepo) ListVencimento(ate time.Time) ([]*repository.LicencaComEmpresa, error) {
	query := `
		SELECT ` + licencaEmpresaCols + `
		FROM licencas l
		JOIN empresas e ON e.id = l.empresa_id
		WHERE l.status = 'ativa' AND l.data_vencimento <= $1
		ORDER BY l.data_vencimento`
	rows, err := r.db.Query(context.Background(), query, ate)
	if err != nil {
		return nil, fmt.Errorf("list licenças por vencer: %w", err)
	}
	return scanLicencasComEmpresa(rows)
}

func scanLicencasComEmpresa(rows pgx.Rows) ([]*repository.LicencaComEmpresa, error) {
	defer rows.Close()

	var list []*repository.LicencaComEmpresa
	for rows.Next() {
		var le repository.LicencaComEmpresa
		l := &le.Licenca
		e := &le.Empresa
		if err := rows.Scan(
			&l.ID, &l.EmpresaID, &l.TipoLicenca, &l.NumeroLicenca, &l.OrgaoEmissor,
			&l.DataEmissao, &l.DataVencimento, &l.Status, &l.Observacoes, &l.CreatedAt, &l.UpdatedAt,
			&e.ID, &e.RazaoSocial, &e.CNPJ, &e.Email, &e.Endereco, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan licença com empresa: %w", err)
		}
		list = append(list, &le)
	}
	return list, rows.Err()
}
