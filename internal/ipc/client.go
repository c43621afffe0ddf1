package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"resty.dev/v3"
)

func newClient(sockPath string) *resty.Client {
	client := resty.NewWithClient(&http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", sockPath)
			},
		},
	})

	client.SetBaseURL("http://dvdlogo")
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "dvdlogo")
	return client
}

// SendStatus asks the instance listening on sockPath for its status.
func SendStatus(sockPath string) (*StatusResponse, error) {
	client := newClient(sockPath)
	defer client.Close()

	result := StatusResponse{}
	response, err := client.R().SetResult(&result).Get("/status")
	if err != nil {
		return nil, err
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error requesting status: %s", response.Status())
	}
	return &result, nil
}

func SendStop(sockPath string) error {
	return sendCommand(sockPath, "/stop")
}

func SendRecolor(sockPath string) error {
	return sendCommand(sockPath, "/recolor")
}

func sendCommand(sockPath, path string) error {
	client := newClient(sockPath)
	defer client.Close()

	response, err := client.R().Post(path)
	if err != nil {
		return err
	}
	if response.StatusCode() != http.StatusOK {
		var result Response
		if json.Unmarshal(response.Bytes(), &result) == nil && result.Error != "" {
			return fmt.Errorf("error sending %s: %s", path, result.Error)
		}
		return fmt.Errorf("error sending %s: %s", path, response.Status())
	}
	return nil
}
