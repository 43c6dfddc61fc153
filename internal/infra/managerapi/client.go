package managerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/pkg/errs"
)

const (
	availablePath   = "/api/managers/available"
	defaultTimeout  = 5 * time.Second
	maxErrorBodyLen = 2048
)

var (
	ErrUnauthorized     = errs.New("manager api rejected credentials")
	ErrUnexpectedStatus = errs.New("manager api returned unexpected status")
	ErrMalformedBody    = errs.New("manager api returned malformed body")
)

type availableRequest struct {
	Address       string `json:"address"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	ManagerChoose bool   `json:"managerChoose"`
}

// managerDTO mirrors the remote payload. Pointers distinguish absent fields
// from empty ones.
type managerDTO struct {
	UUID          *string  `json:"uuid"`
	Name          *string  `json:"name"`
	ProfileImage  *string  `json:"profileImage"`
	AverageRate   *float64 `json:"averageRate"`
	IntroduceText *string  `json:"introduceText"`
}

type envelope struct {
	Data []managerDTO `json:"data"`
}

// Client calls the manager availability service over REST.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
}

func NewClient(baseURL string, timeout time.Duration, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid manager api base url %q", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: parsed, http: httpClient, timeout: timeout}, nil
}

func (c *Client) FindAvailable(ctx context.Context, q reservation.ManagerQuery) ([]reservation.ManagerCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(availableRequest{
		Address:       q.Address,
		StartTime:     q.StartTime,
		EndTime:       q.EndTime,
		ManagerChoose: q.ManagerChoose,
	})
	if err != nil {
		return nil, errs.Wrap(err, "encode manager request")
	}

	endpoint := c.baseURL.JoinPath(availablePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "build manager request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("manager api request", slog.String("url", endpoint.String()), slog.Bool("manager_choose", q.ManagerChoose))

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "manager api request failed")
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return decodeCandidates(res.Body)
	case http.StatusNoContent, http.StatusNotFound:
		return []reservation.ManagerCandidate{}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyLen))
		slog.Error("manager api unexpected status",
			slog.Int("status", res.StatusCode),
			slog.String("url", endpoint.String()),
			slog.String("body", strings.TrimSpace(string(raw))))
		return nil, errs.Wrapf(ErrUnexpectedStatus, "status %d", res.StatusCode)
	}
}

// decodeCandidates accepts either a bare array or a {"data": [...]} envelope
// and drops entries without a uuid or name.
func decodeCandidates(body io.Reader) ([]reservation.ManagerCandidate, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedBody)
	}

	var items []managerDTO
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return []reservation.ManagerCandidate{}, nil
	case trimmed[0] == '[':
		err = json.Unmarshal(trimmed, &items)
	default:
		var env envelope
		err = json.Unmarshal(trimmed, &env)
		items = env.Data
	}
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedBody)
	}

	candidates := make([]reservation.ManagerCandidate, 0, len(items))
	for i, item := range items {
		candidate, ok := item.toCandidate()
		if !ok {
			slog.Warn("manager api entry dropped: missing uuid or name", slog.Int("index", i))
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (d managerDTO) toCandidate() (reservation.ManagerCandidate, bool) {
	if d.UUID == nil || strings.TrimSpace(*d.UUID) == "" {
		return reservation.ManagerCandidate{}, false
	}
	if d.Name == nil || strings.TrimSpace(*d.Name) == "" {
		return reservation.ManagerCandidate{}, false
	}

	c := reservation.ManagerCandidate{
		UUID: strings.TrimSpace(*d.UUID),
		Name: strings.TrimSpace(*d.Name),
	}
	if d.ProfileImage != nil {
		c.ProfileImage = *d.ProfileImage
	}
	if d.AverageRate != nil {
		c.AverageRate = *d.AverageRate
	}
	if d.IntroduceText != nil {
		c.IntroduceText = *d.IntroduceText
	}
	return c, true
}
