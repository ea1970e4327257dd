package entity

import "time"

// Status possíveis de uma licença (devem coincidir com o CHECK da tabela licencas).
const (
	LicencaAtiva     = "ativa"
	LicencaVencida   = "vencida"
	LicencaCancelada = "cancelada"
)

// OrgaoEmissorPadrao órgão emissor usado quando nenhum é informado.
const OrgaoEmissorPadrao = "IMA/AL"

// Licenca representa uma autorização ambiental com data de vencimento.
// Pertence a uma Empresa; possui condicionantes com remoção em cascata.
type Licenca struct {
	ID             string
	EmpresaID      string
	TipoLicenca    string // ex: "Licença de Operação - Renovação"
	NumeroLicenca  string
	OrgaoEmissor   string
	DataEmissao    *time.Time // opcional
	DataVencimento time.Time
	Status         string // ver constantes Licenca*
	Observacoes    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DiasParaVencimento calcula quantos dias faltam para o vencimento,
// relativo a hoje. Derivado em toda leitura; nunca persistido.
func (l *Licenca) DiasParaVencimento(hoje time.Time) int {
	return diasEntre(hoje, l.DataVencimento)
}

// diasEntre devolve a diferença em dias de calendário entre duas datas,
// ignorando a componente de horário.
func diasEntre(de, ate time.Time) int {
	d := date(de)
	a := date(ate)
	return int(a.Sub(d).Hours() / 24)
}

func date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
