// Command healthcheck checks the local server's health endpoint and exits
// non-zero when it is unreachable or unhealthy. It is the container
// HEALTHCHECK for scratch images, which have no curl.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const defaultPort = "5003"

func main() {
	os.Exit(check(healthURL(os.Getenv("TFCC_HOST"), os.Getenv("PORT"))))
}

func check(url string) int {
	client := &http.Client{Timeout: 2 * time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 1
	}

	resp, err := client.Do(req)
	if err != nil {
		return 1
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 1
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Status != "OK" {
		return 1
	}

	return 0
}

// healthURL builds the health URL on loopback rather than the bind-all
// address. The check runs inside the same container as the server.
func healthURL(host, port string) string {
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = defaultPort
	}

	return fmt.Sprintf("http://%s/api/health", net.JoinHostPort(host, port))
}
