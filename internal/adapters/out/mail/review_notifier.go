// internal/adapters/out/mail/review_notifier.go
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	shopdom "borgo/internal/domain/shop"
)

// ReviewNotifier emails a shop owner when a visitor leaves a review.
// It implements usecase.ReviewNotifier; the usecase treats failures as
// best-effort, so this adapter only has to report them.
type ReviewNotifier struct {
	Client EmailClient
	From   string
}

func NewReviewNotifier(client EmailClient, from string) *ReviewNotifier {
	return &ReviewNotifier{Client: client, From: strings.TrimSpace(from)}
}

func (n *ReviewNotifier) ReviewPosted(ctx context.Context, s *shopdom.Shop, r shopdom.Review) error {
	if n == nil || n.Client == nil {
		return errors.New("review_notifier: mail client is nil")
	}
	if s == nil {
		return errors.New("review_notifier: shop is nil")
	}

	to := strings.TrimSpace(s.OwnerID)
	if to == "" {
		return errors.New("review_notifier: shop has no owner email")
	}

	subject := fmt.Sprintf("Nuova recensione per %s", s.Name)

	body := fmt.Sprintf(
		"%s ha lasciato una recensione (%d/5) per %s.\n\n%s\n\nValutazione media aggiornata: %.1f su %d recensioni.",
		r.Author, r.Rating, s.Name, strings.TrimSpace(r.Comment), s.Rating, s.ReviewCount,
	)

	return n.Client.Send(ctx, n.From, to, subject, body)
}
