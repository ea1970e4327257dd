package dto

import (
	"time"

	"github.com/ecogestor/licenciamento-api/internal/domain"
)

// FormatoData único formato aceito para datas na API.
const FormatoData = "2006-01-02"

// ErrorResponse corpo de erro HTTP: {"erro": "..."}.
type ErrorResponse struct {
	Erro string `json:"erro"`
}

// MensagemResponse confirmação simples: {"mensagem": "..."}.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}

// ParseData converte uma data YYYY-MM-DD. Qualquer outro formato
// devolve domain.ErrDataInvalida.
func ParseData(s string) (time.Time, error) {
	t, err := time.Parse(FormatoData, s)
	if err != nil {
		return time.Time{}, domain.ErrDataInvalida
	}
	return t, nil
}

// Data formata uma data opcional como YYYY-MM-DD ou nil.
func Data(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(FormatoData)
	return &s
}

// DataHora formata um timestamp opcional como ISO-8601 ou nil.
func DataHora(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
