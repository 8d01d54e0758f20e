// Package client is a thin HTTP client for the exam API. The bearer
// token is an explicit argument on every authenticated call; the client
// itself carries no credential state.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"exam-platform-backend/internal/models"
	"exam-platform-backend/internal/services"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type RegisterRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	RegistrationNumber string `json:"registration_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type SubmitRequest struct {
	Answers      []services.SubmittedAnswer `json:"answers"`
	TimeSpent    int                        `json:"time_spent"`
	AttemptToken string                     `json:"attempt_token,omitempty"`
}

type resultsResponse struct {
	Results []models.Result `json:"results"`
}

func (c *Client) Register(req RegisterRequest) (string, error) {
	var resp authResponse
	if err := c.do(http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Login(email, password string) (string, error) {
	var resp authResponse
	if err := c.do(http.MethodPost, "/api/v1/auth/login", "", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Profile(token string) (*models.User, error) {
	var user models.User
	if err := c.do(http.MethodGet, "/api/v1/auth/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) FetchExam(token string) (*services.ExamPaper, error) {
	var paper services.ExamPaper
	if err := c.do(http.MethodGet, "/api/v1/exam/questions", token, nil, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

func (c *Client) SubmitExam(token string, req SubmitRequest) (*services.ResultSummary, error) {
	var summary services.ResultSummary
	if err := c.do(http.MethodPost, "/api/v1/results/submit", token, req, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) Result(token, resultID string) (*services.ResultDetail, error) {
	var detail services.ResultDetail
	if err := c.do(http.MethodGet, "/api/v1/results/"+resultID, token, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) Results(token string) ([]models.Result, error) {
	var resp resultsResponse
	if err := c.do(http.MethodGet, "/api/v1/results", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) do(method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
