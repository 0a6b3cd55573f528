package transport

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/napalm-community/dlink/domain/entities"
)

// SSHClient manages an SSH session with a switch
type SSHClient struct {
	config  entities.DeviceConfig
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	reader  *bufio.Reader
	netConn net.Conn
}

// NewSSHClient creates a new SSH client with the given configuration
func NewSSHClient(cfg entities.DeviceConfig) *SSHClient {
	return &SSHClient{config: cfg}
}

func (sc *SSHClient) Connect() error {
	if sc.IsConnected() {
		return nil
	}
	timeout := sc.config.CommandTimeout()
	addr := net.JoinHostPort(sc.config.Target, strconv.Itoa(sc.config.DialPort()))
	sshConfig := &ssh.ClientConfig{
		User:            sc.config.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(sc.config.Password)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	dialer := &net.Dialer{Timeout: timeout}
	rawConn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s via SSH: %v", sc.config.Target, err)
	}

	clientConn, chans, reqs, err := ssh.NewClientConn(rawConn, addr, sshConfig)
	if err != nil {
		rawConn.Close()
		return fmt.Errorf("failed to establish SSH client connection to %s: %v", sc.config.Target, err)
	}

	client := ssh.NewClient(clientConn, chans, reqs)

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to create SSH session for %s: %v", sc.config.Target, err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 9600,
		ssh.TTY_OP_OSPEED: 9600,
	}
	if err := session.RequestPty("vt100", 80, 40, modes); err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to request PTY for %s: %v", sc.config.Target, err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to get stdin pipe for %s: %v", sc.config.Target, err)
	}

	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to get stdout pipe for %s: %v", sc.config.Target, err)
	}

	if err := session.Shell(); err != nil {
		session.Close()
		client.Close()
		rawConn.Close()
		return fmt.Errorf("failed to start shell for %s: %v", sc.config.Target, err)
	}

	sc.client = client
	sc.session = session
	sc.stdin = stdin
	sc.reader = bufio.NewReader(stdout)
	sc.netConn = rawConn

	if sc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Connected to %s via SSH\n", sc.config.Target)
	}

	// D-Link drops straight into the privileged prompt after login
	if _, err := sc.readUntilAny([]string{PromptPrivileged}, timeout); err != nil {
		sc.Disconnect()
		return err
	}
	return nil
}

func (sc *SSHClient) Disconnect() {
	if sc.session != nil {
		sc.session.Close()
		sc.session = nil
	}
	if sc.client != nil {
		sc.client.Close()
		sc.client = nil
	}
	if sc.netConn != nil {
		sc.netConn.Close()
		sc.netConn = nil
	}
	sc.stdin = nil
	sc.reader = nil
	if sc.config.IsDebugEnabled() {
		fmt.Println("DEBUG: Disconnected")
	}
}

func (sc *SSHClient) IsConnected() bool {
	return sc.session != nil && sc.client != nil
}

// Probe writes an ASCII null byte to keep the session alive and verify it is usable
func (sc *SSHClient) Probe() error {
	if !sc.IsConnected() || sc.stdin == nil {
		return fmt.Errorf("not connected to %s", sc.config.Target)
	}
	if _, err := sc.stdin.Write([]byte{0}); err != nil {
		return fmt.Errorf("keepalive to %s failed: %v", sc.config.Target, err)
	}
	return nil
}

func (sc *SSHClient) ExecuteCommand(cmd string) (string, error) {
	if !sc.IsConnected() || sc.stdin == nil {
		return "", fmt.Errorf("not connected to %s", sc.config.Target)
	}
	if sc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Executing: %s\n", cmd)
	}
	timeout := sc.config.CommandTimeout()
	if err := sc.send(cmd + "\n"); err != nil {
		return "", fmt.Errorf("failed to send command %s: %v", cmd, err)
	}

	output, err := sc.readUntilAny([]string{PromptPrivileged, PromptPaging}, timeout)
	if err != nil {
		return "", fmt.Errorf("error executing %s: %v", cmd, err)
	}
	if strings.Contains(output, PromptPaging) {
		if err := sc.send(PagingQuitCmd); err != nil {
			return "", fmt.Errorf("failed to quit pager after %s: %v", cmd, err)
		}
		rest, err := sc.readUntilAny([]string{PromptPrivileged}, timeout)
		if err != nil {
			return "", fmt.Errorf("error quitting pager after %s: %v", cmd, err)
		}
		output += rest
	}

	output = stripEcho(output)
	if sc.config.IsRawOutputEnabled() {
		fmt.Printf("Switch output for '%s':\n%s\n", cmd, output)
	}
	return output, nil
}

func (sc *SSHClient) send(data string) error {
	_, err := sc.stdin.Write([]byte(data))
	return err
}

func (sc *SSHClient) readUntilAny(patterns []string, timeout time.Duration) (string, error) {
	buffer := make([]byte, BufferSize)
	var output strings.Builder
	output.Grow(BufferSize)
	deadline := time.Now().Add(timeout)

	for {
		if sc.netConn != nil {
			_ = sc.netConn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		}

		n, err := sc.reader.Read(buffer)
		if n > 0 {
			output.Write(buffer[:n])
			if sc.config.IsRawOutputEnabled() {
				fmt.Printf("Switch output: Read: %s\n", string(buffer[:n]))
			}
			text := output.String()
			for _, pattern := range patterns {
				if strings.Contains(text, pattern) {
					return text, nil
				}
			}
		}

		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if time.Now().After(deadline) {
					return output.String(), fmt.Errorf("timeout waiting for prompts %s", strings.Join(patterns, ", "))
				}
				continue
			}
			return output.String(), fmt.Errorf("read error: %v", err)
		}

		if time.Now().After(deadline) {
			return output.String(), fmt.Errorf("timeout waiting for prompts %s", strings.Join(patterns, ", "))
		}
	}
}
