//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/tetristerm/pkg"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	DefaultAddress    = ":2222"
)

var ErrNoAddress = errors.New("ssh server listen address must be specified")

// SSHServer runs a fresh client process under a pseudo-terminal for every
// interactive session. No game state crosses the connection.
type SSHServer struct {
	ListenAddress string
	Binary        string
	// Args are passed to every client process before the nickname flag.
	Args []string
	// HostKeyFile is a PEM private key. When empty or missing an ephemeral
	// ed25519 key is generated.
	HostKeyFile string

	server *ssh.Server
}

// Command builds the client process for a session by user.
func (s *SSHServer) Command(ctx context.Context, user, term string) *exec.Cmd {
	args := append(append([]string{}, s.Args...), "-nick", pkg.Nickname(user))

	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *SSHServer) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start tetristerm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.Command(cmdCtx, sshSession.User(), ptyReq.Term)

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	log.Printf("Session started for %s from %s", sshSession.User(), sshSession.RemoteAddr())

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Printf("failed to resize pseudo-terminal: %s", err)
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	cmd.Wait()

	log.Printf("Session ended for %s", sshSession.User())
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}

// HostSigner loads the host key from path, or generates an ephemeral one
// when path is empty or does not exist.
func HostSigner(path string) (gossh.Signer, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			signer, err := gossh.ParsePrivateKey(b)
			if err != nil {
				return nil, fmt.Errorf("failed to parse host key %s: %w", path, err)
			}
			return signer, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read host key %s: %w", path, err)
		}
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate host key: %w", err)
	}
	return gossh.NewSignerFromKey(key)
}

// ListenAndServe blocks until the server is closed.
func (s *SSHServer) ListenAndServe() error {
	if s.ListenAddress == "" {
		return ErrNoAddress
	}

	signer, err := HostSigner(s.HostKeyFile)
	if err != nil {
		return err
	}

	s.server = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}
	s.server.AddHostKey(signer)

	log.Printf("Listening for SSH connections on %s", s.ListenAddress)

	return s.server.ListenAndServe()
}

func (s *SSHServer) Close() error {
	if s.server == nil {
		return nil
	}
	return s.server.Close()
}
