//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostSignerEphemeral(t *testing.T) {
	signer, err := HostSigner("")
	require.NoError(t, err)
	assert.Equal(t, "ssh-ed25519", signer.PublicKey().Type())

	signer, err = HostSigner(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.NotNil(t, signer)
}

func TestHostSignerFile(t *testing.T) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "host_key")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0600))

	signer, err := HostSigner(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh-ed25519", signer.PublicKey().Type())

	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0600))
	_, err = HostSigner(path)
	assert.Error(t, err)
}

func TestCommand(t *testing.T) {
	s := &SSHServer{Binary: "/usr/local/bin/tetristerm", Args: []string{"-randomizer", "bag"}}

	cmd := s.Command(context.Background(), "some user!", "xterm-256color")
	assert.Equal(t, []string{"/usr/local/bin/tetristerm", "-randomizer", "bag", "-nick", "someuser!"}, cmd.Args)
	assert.Contains(t, cmd.Env, "TERM=xterm-256color")
	assert.Equal(t, []string{"-randomizer", "bag"}, s.Args, "args are not aliased")
}

func TestListenRequiresAddress(t *testing.T) {
	s := &SSHServer{}
	assert.ErrorIs(t, s.ListenAndServe(), ErrNoAddress)
	assert.NoError(t, s.Close())
}
