package studio

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

var ipEndpoints = []string{
	"https://api.ipify.org?format=json",
	"https://api.seeip.org/jsonip",
}

// DetectPublicIP returns the caller's public address for the footer.
// Detection is cosmetic, so any failure yields an empty string.
func DetectPublicIP(ctx context.Context) string {
	client := &http.Client{Timeout: 3 * time.Second}
	for _, endpoint := range ipEndpoints {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			continue
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		if err != nil || resp.StatusCode != http.StatusOK {
			continue
		}
		if ip := gjson.GetBytes(body, "ip").String(); ip != "" {
			return ip
		}
	}
	return ""
}
