package transport

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ziutek/telnet"

	"github.com/napalm-community/dlink/domain/entities"
)

const (
	BufferSize       = 4096
	PromptUsername   = "UserName:"
	PromptPassword   = "PassWord:"
	PromptPrivileged = "#"
	PromptPaging     = "Next Page" // CLI pager stop line when clipaging is enabled
	PagingQuitCmd    = "q"

	// Telnet protocol bytes used for the keepalive probe
	telnetIAC = 255
	telnetNOP = 241
)

// TelnetClient manages a Telnet connection to a switch
type TelnetClient struct {
	conn         *telnet.Conn
	config       entities.DeviceConfig
	authSequence []entities.AuthPrompt
}

// NewTelnetClient creates a new Telnet client with the given configuration
func NewTelnetClient(cfg entities.DeviceConfig) *TelnetClient {
	return &TelnetClient{config: cfg}
}

// SetAuthSequence configures the authentication sequence for this client
func (tc *TelnetClient) SetAuthSequence(prompts []entities.AuthPrompt) {
	tc.authSequence = prompts
}

// Connect establishes a Telnet connection to the switch
func (tc *TelnetClient) Connect() error {
	if tc.conn != nil {
		return nil
	}
	timeout := tc.config.CommandTimeout()
	addr := net.JoinHostPort(tc.config.Target, strconv.Itoa(tc.config.DialPort()))
	conn, err := telnet.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %v", tc.config.Target, err)
	}
	tc.conn = conn
	if tc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Connected to %s\n", tc.config.Target)
	}

	// Use custom auth sequence if configured, otherwise use the default
	// D-Link login sequence
	var prompts []entities.AuthPrompt
	if len(tc.authSequence) > 0 {
		prompts = tc.authSequence
	} else {
		prompts = []entities.AuthPrompt{
			{WaitFor: PromptUsername, SendCmd: tc.config.Username + "\n"},
			{WaitFor: PromptPassword, SendCmd: tc.config.Password + "\n"},
			{WaitFor: PromptPrivileged, SendCmd: ""},
		}
	}

	for _, p := range prompts {
		output, err := tc.readUntilAny([]string{p.WaitFor}, timeout)
		if err != nil {
			return fmt.Errorf("failed to wait for %s: %v, output: %s", p.WaitFor, err, output)
		}
		if p.SendCmd != "" {
			if err := tc.send(p.SendCmd); err != nil {
				return fmt.Errorf("failed to answer prompt %s: %v", p.WaitFor, err)
			}
			if tc.config.IsDebugEnabled() {
				fmt.Printf("DEBUG: Sent %s for prompt %s\n", strings.TrimSpace(p.SendCmd), p.WaitFor)
			}
		}
	}
	return nil
}

// send writes to the connection with a fresh write deadline
func (tc *TelnetClient) send(data string) error {
	tc.conn.SetWriteDeadline(time.Now().Add(tc.config.CommandTimeout()))
	_, err := tc.conn.Write([]byte(data))
	return err
}

// readUntilAny reads from the Telnet connection until one of the patterns is
// found, rolling a short read deadline per iteration against the overall
// timeout.
func (tc *TelnetClient) readUntilAny(patterns []string, timeout time.Duration) (string, error) {
	buffer := make([]byte, BufferSize)
	var output strings.Builder
	output.Grow(BufferSize)
	deadline := time.Now().Add(timeout)

	for {
		tc.conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))

		n, err := tc.conn.Read(buffer)
		if n > 0 {
			output.Write(buffer[:n])
			if tc.config.IsRawOutputEnabled() {
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
					return output.String(), fmt.Errorf("timeout waiting for %s", strings.Join(patterns, ", "))
				}
				continue
			}
			return output.String(), fmt.Errorf("read error: %v", err)
		}

		if time.Now().After(deadline) {
			return output.String(), fmt.Errorf("timeout waiting for %s", strings.Join(patterns, ", "))
		}
	}
}

// Disconnect closes the Telnet connection
func (tc *TelnetClient) Disconnect() {
	if tc.conn != nil {
		tc.conn.Close()
		if tc.config.IsDebugEnabled() {
			fmt.Println("DEBUG: Disconnected")
		}
		tc.conn = nil
	}
}

func (tc *TelnetClient) IsConnected() bool {
	return tc.conn != nil
}

// Probe sends a Telnet IAC NOP to verify the session still accepts writes
func (tc *TelnetClient) Probe() error {
	if tc.conn == nil {
		return fmt.Errorf("not connected to %s", tc.config.Target)
	}
	if _, err := tc.conn.Write([]byte{telnetIAC, telnetNOP}); err != nil {
		return fmt.Errorf("keepalive to %s failed: %v", tc.config.Target, err)
	}
	return nil
}

// ExecuteCommand sends a command to the switch and returns its output. When the
// CLI pager interrupts the output the pager is quit and the stop line stays in
// the captured text so callers can detect that paging is active.
func (tc *TelnetClient) ExecuteCommand(cmd string) (string, error) {
	if tc.conn == nil {
		return "", fmt.Errorf("not connected to %s", tc.config.Target)
	}
	if tc.config.IsDebugEnabled() {
		fmt.Printf("DEBUG: Executing: %s\n", cmd)
	}
	timeout := tc.config.CommandTimeout()
	if err := tc.send(cmd + "\n"); err != nil {
		return "", fmt.Errorf("failed to send command %s: %v", cmd, err)
	}
	output, err := tc.readUntilAny([]string{PromptPrivileged, PromptPaging}, timeout)
	if err != nil {
		return "", fmt.Errorf("error executing %s: %v", cmd, err)
	}
	if strings.Contains(output, PromptPaging) {
		if err := tc.send(PagingQuitCmd); err != nil {
			return "", fmt.Errorf("failed to quit pager after %s: %v", cmd, err)
		}
		rest, err := tc.readUntilAny([]string{PromptPrivileged}, timeout)
		if err != nil {
			return "", fmt.Errorf("error quitting pager after %s: %v", cmd, err)
		}
		output += rest
	}
	output = stripEcho(output)
	if tc.config.IsRawOutputEnabled() {
		fmt.Printf("Switch output for '%s':\n%s\n", cmd, output)
	}
	return output, nil
}

// stripEcho drops the echoed command line and the trailing prompt line
func stripEcho(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) > 1 {
		return strings.Join(lines[1:len(lines)-1], "\n")
	}
	return ""
}
