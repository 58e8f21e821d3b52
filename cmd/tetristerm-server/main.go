package main

import (
	"flag"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/ssh"
)

var (
	listenSSH   string
	clientPath  string
	clientArgs  string
	hostKeyFile string
	logPath     string

	done = make(chan bool)
)

func main() {
	flag.StringVar(&listenSSH, "listen-ssh", ssh.DefaultAddress, "SSH listen address")
	flag.StringVar(&clientPath, "tetristerm", "", "path to the tetristerm client binary (default: found next to this binary or in PATH)")
	flag.StringVar(&clientArgs, "client-args", "", "extra space separated arguments for every client")
	flag.StringVar(&hostKeyFile, "host-key", defaultHostKey(), "SSH host key file, generated per run when missing")
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.Parse()

	if logPath != "" {
		pkg.InitLog(logPath, "SERVER: ")
	}

	binary, err := findClient(clientPath)
	if err != nil {
		log.Fatalf("failed to find tetristerm client: %s", err)
	}

	s := &ssh.SSHServer{
		ListenAddress: listenSSH,
		Binary:        binary,
		Args:          strings.Fields(clientArgs),
		HostKeyFile:   hostKeyFile,
	}

	go func() {
		if err := s.ListenAndServe(); err != nil {
			log.Fatalf("failed to serve SSH: %s", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	log.Println("Server stopped")
	s.Close()
}

func defaultHostKey() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".ssh", "id_ed25519")
}

func findClient(path string) (string, error) {
	if path != "" {
		return exec.LookPath(path)
	}

	if self, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), "tetristerm")
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}

	return exec.LookPath("tetristerm")
}
