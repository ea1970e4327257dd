package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermitido(t *testing.T) {
	s := NewComprovanteStorage(t.TempDir())

	assert.True(t, s.Permitido("relatorio.pdf"))
	assert.True(t, s.Permitido("FOTO.JPG"))
	assert.True(t, s.Permitido("scan.jpeg"))
	assert.True(t, s.Permitido("print.png"))
	assert.True(t, s.Permitido("anim.gif"))

	assert.False(t, s.Permitido("macro.exe"))
	assert.False(t, s.Permitido("planilha.xlsx"))
	assert.False(t, s.Permitido("sem_extensao"))
}

func TestSalvar(t *testing.T) {
	dir := t.TempDir()
	s := NewComprovanteStorage(dir)

	rel, err := s.Salvar("relatorio.pdf", strings.NewReader("conteudo"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rel, "comprovantes/"), "caminho relativo: %s", rel)
	assert.True(t, strings.HasSuffix(rel, "_relatorio.pdf"), "caminho relativo: %s", rel)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "conteudo", string(data))
}

func TestSalvarDescartaDiretorioDoNome(t *testing.T) {
	dir := t.TempDir()
	s := NewComprovanteStorage(dir)

	rel, err := s.Salvar("../../etc/passwd.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, rel, "..")
	assert.True(t, strings.HasPrefix(rel, "comprovantes/"))
}
