package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrCNPJInvalido         = errors.New("CNPJ inválido")
	ErrCNPJDuplicado        = errors.New("CNPJ já cadastrado")
	ErrDataInvalida         = errors.New("formato de data inválido")
	ErrEmpresaComLicencas   = errors.New("empresa possui licenças associadas")
	ErrArquivoNaoPermitido  = errors.New("tipo de arquivo não permitido")
	ErrEmailJaRegistrado    = errors.New("email já registrado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
)
