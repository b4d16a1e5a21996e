// internal/infra/secrets/secret_manager.go
package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

var ErrNotConfigured = errors.New("secrets: not configured")

// Provider reads secret payloads from Secret Manager. Used at startup to
// resolve the Gemini API key when it is not passed through the environment.
type Provider struct {
	Client    *secretmanager.Client
	ProjectID string
}

func NewProvider(ctx context.Context, projectID string) (*Provider, error) {
	pid := strings.TrimSpace(projectID)
	if pid == "" {
		return nil, fmt.Errorf("%w: projectID is empty", ErrNotConfigured)
	}

	c, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &Provider{Client: c, ProjectID: pid}, nil
}

// Access returns the latest version of the named secret, trimmed.
func (p *Provider) Access(ctx context.Context, secretID string) (string, error) {
	if p == nil || p.Client == nil {
		return "", ErrNotConfigured
	}
	sid := strings.TrimSpace(secretID)
	if sid == "" {
		return "", fmt.Errorf("%w: secretID is empty", ErrNotConfigured)
	}

	name := "projects/" + p.ProjectID + "/secrets/" + sid + "/versions/latest"
	resp, err := p.Client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("secrets: AccessSecretVersion failed (%s): %w", name, err)
	}
	if resp == nil || resp.Payload == nil {
		return "", fmt.Errorf("secrets: empty payload (%s)", name)
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}

func (p *Provider) Close() error {
	if p == nil || p.Client == nil {
		return nil
	}
	return p.Client.Close()
}
