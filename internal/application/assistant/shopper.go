// internal/application/assistant/shopper.go
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	shopdom "borgo/internal/domain/shop"
)

var (
	ErrEmptyRequest   = errors.New("assistant: empty request")
	ErrBadModelOutput = errors.New("assistant: malformed model output")
)

// MaxRecommendations caps how many products one chat turn may recommend.
const MaxRecommendations = 3

// Recommendation pairs a recommended product with its shop and the model's
// one-line reasoning.
type Recommendation struct {
	Shop      *shopdom.Shop   `json:"shop"`
	Product   shopdom.Product `json:"product"`
	Reasoning string          `json:"reasoning"`
}

// ChatResult is one personal-shopper reply.
type ChatResult struct {
	ResponseText    string           `json:"responseText"`
	Recommendations []Recommendation `json:"recommendations"`
}

// PersonalShopper answers "what am I looking for" requests by handing the
// whole shop/product catalog to the model and resolving the ids it returns.
type PersonalShopper struct {
	repo shopdom.Repository
	gen  Generator
}

func NewPersonalShopper(repo shopdom.Repository, gen Generator) *PersonalShopper {
	return &PersonalShopper{repo: repo, gen: gen}
}

// promptShop is the compact catalog projection embedded in the prompt.
type promptShop struct {
	ShopID          string          `json:"shopId"`
	ShopName        string          `json:"shopName"`
	ShopDescription string          `json:"shopDescription"`
	Products        []promptProduct `json:"products"`
}

type promptProduct struct {
	ProductID          string `json:"productId"`
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	Price              string `json:"price"`
}

// modelReply mirrors the JSON schema the generator is constrained to.
type modelReply struct {
	ResponseText    string `json:"responseText"`
	Recommendations []struct {
		ShopID    string `json:"shopId"`
		ProductID string `json:"productId"`
		Reasoning string `json:"reasoning"`
	} `json:"recommendations"`
}

// Chat runs one personal-shopper turn for the visitor request.
// Recommendations whose ids no longer resolve (shop or product deleted since
// the catalog snapshot) are silently dropped.
func (ps *PersonalShopper) Chat(ctx context.Context, request string) (*ChatResult, error) {
	req := strings.TrimSpace(request)
	if req == "" {
		return nil, ErrEmptyRequest
	}

	shops, err := ps.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := buildShopperPrompt(shops, req)
	if err != nil {
		return nil, err
	}

	raw, err := ps.gen.GenerateRecommendations(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(stripFences(raw)), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadModelOutput, err)
	}

	result := &ChatResult{
		ResponseText:    strings.TrimSpace(reply.ResponseText),
		Recommendations: []Recommendation{},
	}

	byID := map[string]*shopdom.Shop{}
	for _, s := range shops {
		if s != nil {
			byID[s.ID] = s
		}
	}

	for _, rec := range reply.Recommendations {
		if len(result.Recommendations) >= MaxRecommendations {
			break
		}
		s, ok := byID[rec.ShopID]
		if !ok {
			continue
		}
		var product *shopdom.Product
		for i := range s.Products {
			if s.Products[i].ID == rec.ProductID {
				product = &s.Products[i]
				break
			}
		}
		if product == nil {
			continue
		}
		result.Recommendations = append(result.Recommendations, Recommendation{
			Shop:      s,
			Product:   *product,
			Reasoning: strings.TrimSpace(rec.Reasoning),
		})
	}

	return result, nil
}

func buildShopperPrompt(shops []*shopdom.Shop, request string) (string, error) {
	catalog := make([]promptShop, 0, len(shops))
	for _, s := range shops {
		if s == nil {
			continue
		}
		products := make([]promptProduct, 0, len(s.Products))
		for _, p := range s.Products {
			products = append(products, promptProduct{
				ProductID:          p.ID,
				ProductName:        p.Name,
				ProductDescription: p.Description,
				Price:              p.Price,
			})
		}
		catalog = append(catalog, promptShop{
			ShopID:          s.ID,
			ShopName:        s.Name,
			ShopDescription: s.Description,
			Products:        products,
		})
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Sei un personal shopper amichevole e disponibile per "La Rete del Borgo". Un utente sta cercando dei prodotti. Ecco un elenco di tutti i negozi e dei loro prodotti in formato JSON: %s. La richiesta dell'utente è: %q.

Analizza la richiesta e i dati dei prodotti. Se trovi delle buone corrispondenze, rispondi con un breve messaggio introduttivo e poi raccomanda fino a %d prodotti.

La tua risposta DEVE essere un oggetto JSON valido con due proprietà:
1. "responseText": una stringa con il tuo messaggio amichevole per l'utente.
2. "recommendations": un array di oggetti, ognuno con "shopId", "productId" e "reasoning" (una breve frase che spiega perché hai scelto quel prodotto).

Se non trovi nessuna corrispondenza, "recommendations" deve essere un array vuoto e "responseText" deve spiegare gentilmente che non hai trovato nulla. NON rispondere in nessun altro formato. Solo JSON.`, string(data), request, MaxRecommendations), nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in
// one despite the JSON response mime type.
func stripFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}
