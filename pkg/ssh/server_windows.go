//go:build windows
// +build windows

package ssh

import "errors"

// SSH server is unsupported on Windows

const DefaultAddress = ":2222"

var ErrNoAddress = errors.New("ssh server listen address must be specified")

type SSHServer struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string
}

func (s *SSHServer) ListenAndServe() error {
	return errors.New("ssh server is unsupported on windows")
}

func (s *SSHServer) Close() error {
	return nil
}
