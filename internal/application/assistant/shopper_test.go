// internal/application/assistant/shopper_test.go
package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopdom "borgo/internal/domain/shop"
)

type stubRepo struct {
	shops []*shopdom.Shop
}

func (r *stubRepo) GetAll(_ context.Context) ([]*shopdom.Shop, error) { return r.shops, nil }
func (r *stubRepo) GetByID(_ context.Context, _ string) (*shopdom.Shop, error) {
	return nil, nil
}
func (r *stubRepo) Create(_ context.Context, _ *shopdom.Shop) (string, error) { return "", nil }
func (r *stubRepo) UpdateProfile(_ context.Context, _ *shopdom.Shop) error    { return nil }
func (r *stubRepo) Delete(_ context.Context, _ string) error                  { return nil }
func (r *stubRepo) ReplaceProducts(_ context.Context, _ string, _ []shopdom.Product) error {
	return nil
}
func (r *stubRepo) ReplaceCoupons(_ context.Context, _ string, _ []shopdom.Coupon) error { return nil }
func (r *stubRepo) ReplaceReviews(_ context.Context, _ string, _ []shopdom.Review, _ shopdom.RatingSummary) error {
	return nil
}

type stubGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.reply, g.err
}

func (g *stubGenerator) GenerateRecommendations(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	return g.reply, g.err
}

func shopperRepo() *stubRepo {
	return &stubRepo{shops: []*shopdom.Shop{
		{
			ID: "s1", OwnerID: "a@b.it", Name: "Panificio Rossi",
			Description: "Pane fresco",
			Products: []shopdom.Product{
				{ID: "p1", Name: "Pane", Price: "3€"},
				{ID: "p2", Name: "Focaccia", Price: "5€"},
			},
		},
		{
			ID: "s2", OwnerID: "a@b.it", Name: "Enoteca Bacco",
			Description: "Vini locali",
			Products: []shopdom.Product{
				{ID: "p3", Name: "Barbera", Price: "12€"},
			},
		},
	}}
}

func TestChat_ResolvesRecommendations(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"responseText": "Ecco cosa ho trovato!",
		"recommendations": [
			{"shopId": "s1", "productId": "p2", "reasoning": "Perfetta per un aperitivo"},
			{"shopId": "s2", "productId": "p3", "reasoning": "Un rosso del territorio"}
		]
	}`}
	ps := NewPersonalShopper(shopperRepo(), gen)

	got, err := ps.Chat(context.Background(), "qualcosa per un aperitivo")

	require.NoError(t, err)
	assert.Equal(t, "Ecco cosa ho trovato!", got.ResponseText)
	require.Len(t, got.Recommendations, 2)
	assert.Equal(t, "s1", got.Recommendations[0].Shop.ID)
	assert.Equal(t, "Focaccia", got.Recommendations[0].Product.Name)
	assert.Equal(t, "Un rosso del territorio", got.Recommendations[1].Reasoning)
}

func TestChat_PromptCarriesCatalogAndRequest(t *testing.T) {
	gen := &stubGenerator{reply: `{"responseText":"ok","recommendations":[]}`}
	ps := NewPersonalShopper(shopperRepo(), gen)

	_, err := ps.Chat(context.Background(), "vino rosso")

	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, `"shopId":"s2"`)
	assert.Contains(t, gen.lastPrompt, `"productId":"p3"`)
	assert.Contains(t, gen.lastPrompt, "vino rosso")
}

func TestChat_DropsUnresolvedIDs(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"responseText": "Trovato",
		"recommendations": [
			{"shopId": "ghost", "productId": "p1", "reasoning": "x"},
			{"shopId": "s1", "productId": "gone", "reasoning": "y"},
			{"shopId": "s1", "productId": "p1", "reasoning": "z"}
		]
	}`}
	ps := NewPersonalShopper(shopperRepo(), gen)

	got, err := ps.Chat(context.Background(), "pane")

	require.NoError(t, err)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "p1", got.Recommendations[0].Product.ID)
}

func TestChat_CapsAtThree(t *testing.T) {
	gen := &stubGenerator{reply: `{
		"responseText": "Tutto!",
		"recommendations": [
			{"shopId": "s1", "productId": "p1", "reasoning": "a"},
			{"shopId": "s1", "productId": "p2", "reasoning": "b"},
			{"shopId": "s2", "productId": "p3", "reasoning": "c"},
			{"shopId": "s1", "productId": "p1", "reasoning": "d"}
		]
	}`}
	ps := NewPersonalShopper(shopperRepo(), gen)

	got, err := ps.Chat(context.Background(), "tutto")

	require.NoError(t, err)
	assert.Len(t, got.Recommendations, MaxRecommendations)
}

func TestChat_ToleratesCodeFences(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n{\"responseText\":\"ok\",\"recommendations\":[]}\n```"}
	ps := NewPersonalShopper(shopperRepo(), gen)

	got, err := ps.Chat(context.Background(), "x")

	require.NoError(t, err)
	assert.Equal(t, "ok", got.ResponseText)
}

func TestChat_MalformedOutput(t *testing.T) {
	gen := &stubGenerator{reply: "sorry, I cannot help with that"}
	ps := NewPersonalShopper(shopperRepo(), gen)

	_, err := ps.Chat(context.Background(), "x")

	assert.ErrorIs(t, err, ErrBadModelOutput)
}

func TestChat_EmptyRequest(t *testing.T) {
	ps := NewPersonalShopper(shopperRepo(), &stubGenerator{})

	_, err := ps.Chat(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyRequest)
}

func TestChat_GeneratorError(t *testing.T) {
	genErr := errors.New("quota exceeded")
	ps := NewPersonalShopper(shopperRepo(), &stubGenerator{err: genErr})

	_, err := ps.Chat(context.Background(), "x")

	assert.ErrorIs(t, err, genErr)
}

func TestDraft_SocialPost(t *testing.T) {
	gen := &stubGenerator{reply: "Passate a trovarci! 🥖"}
	w := NewSocialPostWriter(gen)

	got, err := w.Draft(context.Background(), shopperRepo().shops[0])

	require.NoError(t, err)
	assert.Equal(t, "Passate a trovarci! 🥖", got)
	assert.True(t, strings.Contains(gen.lastPrompt, "Panificio Rossi"))
	assert.True(t, strings.Contains(gen.lastPrompt, "Pane fresco"))
}

func TestDraft_EmptyReply(t *testing.T) {
	w := NewSocialPostWriter(&stubGenerator{reply: "  "})

	_, err := w.Draft(context.Background(), shopperRepo().shops[0])

	assert.ErrorIs(t, err, ErrEmptyModelReply)
}

func TestDraft_NilShop(t *testing.T) {
	w := NewSocialPostWriter(&stubGenerator{})

	_, err := w.Draft(context.Background(), nil)

	assert.Error(t, err)
}
