package ipc

import (
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const dialTimeout = 2 * time.Second

// Client talks to a running daemon over its Unix socket.
type Client struct {
	conn *rpc.Client
}

// Dial connects to the daemon socket at the given path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connect to daemon at %s: %w", path, err)
	}
	return &Client{conn: jsonrpc.NewClient(conn)}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Status fetches the daemon's runtime snapshot.
func (c *Client) Status() (StatusResponse, error) {
	var resp StatusResponse
	if err := c.conn.Call("CineBob.Status", StatusRequest{}, &resp); err != nil {
		return StatusResponse{}, fmt.Errorf("status call: %w", err)
	}
	return resp, nil
}

// Stop asks the daemon to shut down.
func (c *Client) Stop() (StopResponse, error) {
	var resp StopResponse
	if err := c.conn.Call("CineBob.Stop", StopRequest{}, &resp); err != nil {
		return StopResponse{}, fmt.Errorf("stop call: %w", err)
	}
	return resp, nil
}

// Ask runs a command handler inside the daemon and returns its reply.
func (c *Client) Ask(command, argument string) (string, error) {
	var resp AskResponse
	req := AskRequest{Command: command, Argument: argument}
	if err := c.conn.Call("CineBob.Ask", req, &resp); err != nil {
		return "", fmt.Errorf("ask call: %w", err)
	}
	return resp.Reply, nil
}

// SendTest asks the daemon to deliver a test message to a chat.
func (c *Client) SendTest(chatID int64) (SendTestResponse, error) {
	var resp SendTestResponse
	if err := c.conn.Call("CineBob.SendTest", SendTestRequest{ChatID: chatID}, &resp); err != nil {
		return SendTestResponse{}, fmt.Errorf("send test call: %w", err)
	}
	return resp, nil
}
