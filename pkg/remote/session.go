// Package remote opens CLI sessions to fabric devices over SSH.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/fabricops/fabcheck/pkg/util"
)

// Session is one open CLI session to a device. A session runs commands and
// is closed after use; it keeps no state between commands.
type Session interface {
	Run(ctx context.Context, command string) (string, error)
	Close() error
}

// Dialer opens sessions to devices by management address. The production
// implementation speaks SSH; tests substitute fakes.
type Dialer interface {
	Dial(ctx context.Context, host string) (Session, error)
}

// Config carries the fixed connection parameters for the device family.
type Config struct {
	Username       string
	Password       string
	Port           int           // default 22
	ConnectTimeout time.Duration // default 30s
	SessionTimeout time.Duration // default 30s
}

// DefaultTimeout is applied when Config leaves a timeout unset.
const DefaultTimeout = 30 * time.Second

// SSHDialer opens password-authenticated SSH sessions.
type SSHDialer struct {
	cfg Config
}

// NewSSHDialer creates a dialer, filling unset Config fields with defaults.
func NewSSHDialer(cfg Config) *SSHDialer {
	if cfg.Port == 0 {
		cfg.Port = 22
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultTimeout
	}
	if cfg.SessionTimeout == 0 {
		cfg.SessionTimeout = DefaultTimeout
	}
	return &SSHDialer{cfg: cfg}
}

// Dial connects to host and returns an open session. Connection failures are
// classified into the util sentinel errors.
func (d *SSHDialer) Dial(ctx context.Context, host string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config := &ssh.ClientConfig{
		User: d.cfg.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(d.cfg.Password),
		},
		// Fabric management networks rotate device host keys on reimage;
		// keys are not pinned here.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         d.cfg.ConnectTimeout,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(d.cfg.Port))
	client, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, Classify(host, err)
	}

	util.WithDevice(host).Debugf("SSH session opened")
	return &sshSession{client: client, host: host, timeout: d.cfg.SessionTimeout}, nil
}

type sshSession struct {
	client  *ssh.Client
	host    string
	timeout time.Duration
}

// Run executes one command on the device and returns the combined output.
// The SSH exec session is created per call (stateless).
func (s *sshSession) Run(ctx context.Context, command string) (string, error) {
	sess, err := s.client.NewSession()
	if err != nil {
		return "", Classify(s.host, err)
	}
	defer sess.Close()

	type execResult struct {
		out []byte
		err error
	}
	done := make(chan execResult, 1)
	go func() {
		out, err := sess.CombinedOutput(command)
		done <- execResult{out, err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			return string(r.out), fmt.Errorf("exec %q on %s: %w", command, s.host, r.err)
		}
		return string(r.out), nil
	case <-timer.C:
		return "", util.NewConnectionError(s.host, util.ErrConnectTimeout,
			fmt.Errorf("command %q exceeded session timeout %s", command, s.timeout))
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *sshSession) Close() error {
	return s.client.Close()
}

// Classify tags a connection-level error with the matching sentinel so
// callers can distinguish timeouts and credential rejections from the rest.
// Unrecognized errors are returned wrapped but untagged.
func Classify(host string, err error) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return util.NewConnectionError(host, util.ErrConnectTimeout, err)
	}
	if strings.Contains(err.Error(), "unable to authenticate") {
		return util.NewConnectionError(host, util.ErrAuthFailed, err)
	}
	return fmt.Errorf("connecting to %s: %w", host, err)
}
