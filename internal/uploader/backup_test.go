package uploader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmint/mintgen/internal/supabase"
	"github.com/solmint/mintgen/pkg/generator"
)

func TestBackupWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewBackupWriter(dir, generator.SuffixBonk)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(w.Path()), "bonk_addresses_"))
	assert.True(t, strings.HasSuffix(w.Path(), ".txt"))

	require.NoError(t, w.Append(supabase.Record{PubKey: "pub1", PrivateKey: "priv1", SuffixType: "bonk"}))
	require.NoError(t, w.Append(supabase.Record{PubKey: "pub2", PrivateKey: "priv2", SuffixType: "bonk"}))
	assert.Equal(t, 2, w.Count())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Equal(t, "pub1,priv1,bonk\npub2,priv2,bonk\n", string(data))
}

func TestBackupWriterBadDir(t *testing.T) {
	_, err := NewBackupWriter(filepath.Join(t.TempDir(), "missing"), generator.SuffixPump)
	assert.Error(t, err)
}
