package player

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"shotlog/internal/timecode"
)

// Mpv queries the playback position of a running mpv instance over its JSON
// IPC socket (mpv --input-ipc-server=PATH).
type Mpv struct {
	socketPath string
	timeout    time.Duration
}

// NewMpv builds an mpv playback source for the given socket path.
func NewMpv(socketPath string, timeout time.Duration) *Mpv {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Mpv{socketPath: socketPath, timeout: timeout}
}

type mpvRequest struct {
	Command   []any `json:"command"`
	RequestID int   `json:"request_id"`
}

type mpvResponse struct {
	Data      json.RawMessage `json:"data"`
	RequestID int             `json:"request_id"`
	Error     string          `json:"error"`
}

// CurrentTimestamp returns the current playback position. The connection is
// opened per query; a save happens at human cadence, so there is nothing to
// gain from pooling.
func (m *Mpv) CurrentTimestamp(ctx context.Context) (timecode.TimeCode, error) {
	conn, err := net.DialTimeout("unix", m.socketPath, m.timeout)
	if err != nil {
		return timecode.TimeCode{}, fmt.Errorf("player: dial mpv socket %s: %w", m.socketPath, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(m.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return timecode.TimeCode{}, fmt.Errorf("player: set deadline: %w", err)
	}

	const requestID = 1
	request := mpvRequest{Command: []any{"get_property", "playback-time"}, RequestID: requestID}
	encoded, err := json.Marshal(request)
	if err != nil {
		return timecode.TimeCode{}, fmt.Errorf("player: encode request: %w", err)
	}
	if _, err := conn.Write(append(encoded, '\n')); err != nil {
		return timecode.TimeCode{}, fmt.Errorf("player: write request: %w", err)
	}

	// mpv interleaves asynchronous events on the same socket; skip anything
	// that is not the reply to our request.
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var resp mpvResponse
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			continue
		}
		if resp.RequestID != requestID {
			continue
		}
		if resp.Error != "success" {
			return timecode.TimeCode{}, fmt.Errorf("player: mpv returned %q", resp.Error)
		}
		var seconds float64
		if err := json.Unmarshal(resp.Data, &seconds); err != nil {
			return timecode.TimeCode{}, fmt.Errorf("player: decode playback-time: %w", err)
		}
		return timecode.FromSeconds(seconds), nil
	}
	if err := scanner.Err(); err != nil {
		return timecode.TimeCode{}, fmt.Errorf("player: read response: %w", err)
	}
	return timecode.TimeCode{}, fmt.Errorf("player: mpv closed the connection without replying")
}
