// internal/application/assistant/social.go
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	shopdom "borgo/internal/domain/shop"
)

var ErrEmptyModelReply = errors.New("assistant: empty model reply")

// SocialPostWriter drafts a social announcement for a shop, voiced as the
// owner speaking to the local community.
type SocialPostWriter struct {
	gen Generator
}

func NewSocialPostWriter(gen Generator) *SocialPostWriter {
	return &SocialPostWriter{gen: gen}
}

// Draft returns a ready-to-post text for s.
func (w *SocialPostWriter) Draft(ctx context.Context, s *shopdom.Shop) (string, error) {
	if s == nil {
		return "", shopdom.ErrInvalidShop
	}

	prompt := fmt.Sprintf(`Crea un post social coinvolgente e amichevole in italiano per questo negozio: Nome: %q, che si occupa di: %q. Il post deve suonare come un annuncio dal proprietario del negozio alla sua comunità locale, invitandoli a passare. Sii creativo, caloroso e usa qualche emoji.`, s.Name, s.Description)

	text, err := w.gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyModelReply
	}
	return text, nil
}
