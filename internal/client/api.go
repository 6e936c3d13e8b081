// Package client implements the lockbox command-line client. It talks to
// the server's JSON API and mirrors its error messages to the terminal.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API is a thin wrapper over the server's HTTP endpoints.
type API struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type encryptResult struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"download_url"`
	Message     string `json:"message"`
}

type messageResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResult struct {
	Error string `json:"error"`
}

// Encrypt asks the server to encrypt the file at the given server-local
// path and returns the download URL of the stored artifact.
func (a *API) Encrypt(path string) (string, error) {
	var res encryptResult
	form := url.Values{"filepath": {path}}
	if err := a.postForm("/encrypt", form, &res); err != nil {
		return "", err
	}
	return res.DownloadURL, nil
}

// Decrypt asks the server to decrypt the file at the given server-local
// path and returns the server's status message naming the output file.
func (a *API) Decrypt(path string) (string, error) {
	var res messageResult
	form := url.Values{"filepath": {path}}
	if err := a.postForm("/decrypt", form, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// SendOTP requests a one-time password for the given email address.
func (a *API) SendOTP(email string) error {
	var res messageResult
	return a.postJSON("/send-otp", map[string]string{"email": email}, &res)
}

// VerifyOTP checks a previously delivered code.
func (a *API) VerifyOTP(code string) error {
	var res messageResult
	return a.postJSON("/verify-otp", map[string]string{"otp": code}, &res)
}

// Download streams the named artifact into w.
func (a *API) Download(name string, w io.Writer) error {
	resp, err := a.HTTPClient.Get(a.BaseURL + "/download/" + url.PathEscape(name))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// Ping checks server reachability and reports the round-trip time.
func (a *API) Ping() (time.Duration, error) {
	start := time.Now()
	resp, err := a.HTTPClient.Get(a.BaseURL + "/ping")
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("server returned status: %s", resp.Status)
	}
	return time.Since(start), nil
}

func (a *API) postForm(path string, form url.Values, out any) error {
	resp, err := a.HTTPClient.PostForm(a.BaseURL+path, form)
	if err != nil {
		return err
	}
	return a.decode(resp, out)
}

func (a *API) postJSON(path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := a.HTTPClient.Post(a.BaseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	return a.decode(resp, out)
}

func (a *API) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var res errorResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err == nil && res.Error != "" {
		return errors.New(res.Error)
	}
	return fmt.Errorf("server returned status: %s", resp.Status)
}
