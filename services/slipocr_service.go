package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// SlipClaim is the best-effort extraction from a transfer slip. Every field
// can be empty; nothing here is ever used as the charged amount.
type SlipClaim struct {
	Amount        string `json:"amount,omitempty"`
	Reference     string `json:"reference,omitempty"`
	TransactionNo string `json:"transactionNo,omitempty"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	FromAccount   string `json:"fromAccount,omitempty"`
	ToAccount     string `json:"toAccount,omitempty"`
}

type slipOCRResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ReadSlip sends a base64 slip image to the configured OCR endpoint and maps
// whatever comes back into a SlipClaim. Disabled (returns an error) when the
// endpoint is not configured.
func ReadSlip(imageBase64 string) (*SlipClaim, error) {
	if idx := strings.Index(imageBase64, "base64,"); idx >= 0 {
		imageBase64 = imageBase64[idx+7:]
	}
	if _, err := base64.StdEncoding.DecodeString(imageBase64); err != nil {
		return nil, fmt.Errorf("base64 invalid: %w", err)
	}

	endpoint := strings.TrimSpace(os.Getenv("SLIP_OCR_ENDPOINT"))
	if endpoint == "" {
		return nil, fmt.Errorf("slip OCR not configured")
	}
	apiKey := os.Getenv("SLIP_OCR_API_KEY")

	payload := map[string]interface{}{
		"image": imageBase64,
		"model": "slip-ocr-v1",
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var sr slipOCRResponse
	if err := json.Unmarshal(bodyBytes, &sr); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	if sr.Status != "success" {
		return nil, fmt.Errorf("API status error: %s - %s", sr.Status, sr.Message)
	}

	var claim SlipClaim
	if err := json.Unmarshal(sr.Data, &claim); err == nil {
		return &claim, nil
	}
	var arr []SlipClaim
	if err := json.Unmarshal(sr.Data, &arr); err == nil && len(arr) > 0 {
		return &arr[0], nil
	}
	return nil, fmt.Errorf("no data returned from slip OCR: %s", string(sr.Data))
}
