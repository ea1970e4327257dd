// Package storage grava comprovantes de cumprimento no sistema de arquivos.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecogestor/licenciamento-api/internal/application/usecase"
)

// Garante que ComprovanteStorage implementa o porto do caso de uso.
var _ usecase.ComprovanteStorage = (*ComprovanteStorage)(nil)

// Extensões aceitas para comprovantes.
var extensoesPermitidas = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".pdf":  {},
}

// ComprovanteStorage grava arquivos sob <dir>/comprovantes e devolve o
// caminho relativo a <dir>, que é o que vai para o banco.
type ComprovanteStorage struct {
	dir string
}

// NewComprovanteStorage constrói o storage sobre o diretório de uploads.
func NewComprovanteStorage(dir string) *ComprovanteStorage {
	return &ComprovanteStorage{dir: dir}
}

// Permitido informa se a extensão do arquivo está na allow-list.
func (s *ComprovanteStorage) Permitido(nomeArquivo string) bool {
	ext := strings.ToLower(filepath.Ext(nomeArquivo))
	_, ok := extensoesPermitidas[ext]
	return ok
}

// Salvar grava o conteúdo em comprovantes/<timestamp>_<nome> e devolve
// esse caminho relativo.
func (s *ComprovanteStorage) Salvar(nomeArquivo string, conteudo io.Reader) (string, error) {
	nome := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(nomeArquivo))
	rel := filepath.Join("comprovantes", nome)
	destino := filepath.Join(s.dir, rel)

	if err := os.MkdirAll(filepath.Dir(destino), 0o755); err != nil {
		return "", fmt.Errorf("criar diretório de comprovantes: %w", err)
	}

	f, err := os.Create(destino)
	if err != nil {
		return "", fmt.Errorf("criar comprovante: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, conteudo); err != nil {
		return "", fmt.Errorf("gravar comprovante: %w", err)
	}
	return filepath.ToSlash(rel), nil
}
