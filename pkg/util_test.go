package pkg

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNickname(t *testing.T) {
	assert.Equal(t, "player1", Nickname("player1"))
	assert.Equal(t, "ab", Nickname("a b\n"))
	assert.Len(t, Nickname(strings.Repeat("x", 40)), MaxNicknameLength)

	random := Nickname("  ")
	assert.NotEmpty(t, random)
	assert.Contains(t, random, "-")
}

func TestInitLog(t *testing.T) {
	out, prefix := log.Writer(), log.Prefix()
	defer func() {
		log.SetOutput(out)
		log.SetPrefix(prefix)
	}()

	dest := filepath.Join(t.TempDir(), "log")
	InitLog(dest, "TEST: ")
	log.Print("hello")

	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), "TEST: ")
	assert.Contains(t, string(b), "hello")
}
