package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"pudu-fleet-gateway/config"
	"pudu-fleet-gateway/internal/core/ports"
)

// CloudService implements ports.CloudService: it canonicalizes, signs
// and dispatches requests to the Pudu cloud and classifies the
// outcome. It never logs and never retries — typed errors go back to
// the caller, which owns presentation.
//
// One instance with one pooled http.Client serves the whole process;
// it is safe for concurrent use.
type CloudService struct {
	baseURL   string
	signer    ports.CloudSigner
	client    *http.Client
	closeOnce sync.Once
}

// NewCloudService validates the cloud configuration and builds the
// service around the given signer and HTTP client. An empty app key,
// app secret or base URL is fatal here — there is no runtime recovery
// from bad credentials.
func NewCloudService(cfg config.CloudConfig, signer ports.CloudSigner, client *http.Client) (*CloudService, error) {
	if cfg.AppKey == "" || cfg.AppSecret == "" || cfg.BaseURL == "" {
		return nil, ErrMissingCredentials
	}
	return &CloudService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		signer:  signer,
		client:  client,
	}, nil
}

// Send performs one signed request. The signature covers the
// environment-normalized path plus the canonical query, while the wire
// request keeps the original path — two separate values on purpose.
// The body is serialized exactly once; the same bytes feed the content
// digest and the request.
func (s *CloudService) Send(ctx context.Context, method, path string, query url.Values, body any, language string) (*ports.CloudResult, error) {
	rawQuery := query.Encode()

	target := s.baseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	signingPath := SigningPath(path)
	if rawQuery != "" {
		if nq := NormalizeQuery(rawQuery); nq != "" {
			signingPath += "?" + nq
		}
	}

	var payload []byte
	if method == http.MethodPost {
		var err error
		payload, err = encodeBody(body)
		if err != nil {
			return nil, err
		}
	}

	sig := s.signer.Sign(method, signingPath, payload)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}

	// Host is derived from the target URL by net/http. Language is
	// sent when provided but stays outside the signature.
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("x-date", sig.Date)
	req.Header.Set("Authorization", sig.Authorization)
	if language != "" {
		req.Header.Set("Language", language)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	result := &ports.CloudResult{StatusCode: resp.StatusCode}
	var decoded any
	if json.Unmarshal(respBody, &decoded) == nil {
		result.Data = decoded
	} else {
		result.Raw = string(respBody)
	}
	return result, nil
}

// Close releases pooled connections. Safe to call more than once; only
// the first call has an effect. In-flight requests are not aborted.
func (s *CloudService) Close() error {
	s.closeOnce.Do(func() {
		s.client.CloseIdleConnections()
	})
	return nil
}

// encodeBody serializes a POST body as compact JSON. Pre-encoded
// bodies ([]byte, json.RawMessage) pass through untouched so the
// caller's field order survives into the digest; a nil body becomes
// the empty document, which still gets a digest.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return []byte("{}"), nil
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	default:
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		return payload, nil
	}
}
