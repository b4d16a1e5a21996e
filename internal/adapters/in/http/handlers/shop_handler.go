// internal/adapters/in/http/handlers/shop_handler.go
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"borgo/internal/adapters/in/http/middleware"
	"borgo/internal/adapters/out/gcs"
	"borgo/internal/application/assistant"
	"borgo/internal/application/query"
	usecase "borgo/internal/application/usecase"
	shopdom "borgo/internal/domain/shop"
	userdom "borgo/internal/domain/user"
)

const maxShopImageBytes = 10 << 20 // 10MB

// ImageStore is the slice of the GCS adapter the handler needs.
type ImageStore interface {
	Upload(ctx context.Context, shopID string, kind gcs.ImageKind, data []byte) (string, error)
}

// ShopHandler serves everything under /shops: the catalog listing, the shop
// CRUD, the nested product/coupon/review collections, and the two
// merchant-side extras (social post draft, image upload).
type ShopHandler struct {
	uc      *usecase.ShopUsecase
	catalog *query.CatalogQuery
	social  *assistant.SocialPostWriter // optional
	images  ImageStore                  // optional
}

func NewShopHandler(uc *usecase.ShopUsecase, catalog *query.CatalogQuery) *ShopHandler {
	return &ShopHandler{uc: uc, catalog: catalog}
}

// WithSocialWriter mounts POST /shops/{id}/social-post.
func (h *ShopHandler) WithSocialWriter(w *assistant.SocialPostWriter) *ShopHandler {
	h.social = w
	return h
}

// WithImageStore mounts POST /shops/{id}/images.
func (h *ShopHandler) WithImageStore(s ImageStore) *ShopHandler {
	h.images = s
	return h
}

func (h *ShopHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "shop handler is not configured")
		return
	}

	seg := splitPath(r.URL.Path, "/shops")

	switch len(seg) {
	case 0:
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			methodNotAllowed(w)
		}
	case 1:
		id := seg[0]
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, id)
		case http.MethodPut:
			h.updateProfile(w, r, id)
		case http.MethodDelete:
			h.delete(w, r, id)
		default:
			methodNotAllowed(w)
		}
	case 2:
		id := seg[0]
		switch {
		case seg[1] == "products" && r.Method == http.MethodPut:
			h.putProduct(w, r, id)
		case seg[1] == "coupons" && r.Method == http.MethodPut:
			h.putCoupon(w, r, id)
		case seg[1] == "reviews" && r.Method == http.MethodPost:
			h.postReview(w, r, id)
		case seg[1] == "social-post" && r.Method == http.MethodPost:
			h.draftSocialPost(w, r, id)
		case seg[1] == "images" && r.Method == http.MethodPost:
			h.uploadImage(w, r, id)
		default:
			notFound(w)
		}
	case 3:
		id := seg[0]
		switch {
		case seg[1] == "products" && r.Method == http.MethodDelete:
			h.deleteProduct(w, r, id, seg[2])
		case seg[1] == "coupons" && r.Method == http.MethodDelete:
			h.deleteCoupon(w, r, id, seg[2])
		default:
			notFound(w)
		}
	default:
		notFound(w)
	}
}

// -------------------------
// catalog + CRUD
// -------------------------

// GET /shops?category=Ristoranti&q=pane
func (h *ShopHandler) list(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeErr(w, http.StatusInternalServerError, "catalog query is not configured")
		return
	}

	f := query.CatalogFilter{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Search:   strings.TrimSpace(r.URL.Query().Get("q")),
	}
	cards, err := h.catalog.List(r.Context(), f)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

type shopProfileBody struct {
	Name            string   `json:"name"`
	CardImage       string   `json:"cardImage"`
	Category        string   `json:"category"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	IsFeatured      bool     `json:"isFeatured"`
	Address         string   `json:"address"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
	GalleryImages   []string `json:"galleryImages"`
}

func (b shopProfileBody) toProfile() usecase.ShopProfile {
	return usecase.ShopProfile{
		Name:            b.Name,
		CardImage:       b.CardImage,
		Category:        shopdom.Category(b.Category),
		Description:     b.Description,
		LongDescription: b.LongDescription,
		IsFeatured:      b.IsFeatured,
		Address:         b.Address,
		Lat:             b.Lat,
		Lng:             b.Lng,
		GalleryImages:   b.GalleryImages,
	}
}

// POST /shops
func (h *ShopHandler) create(w http.ResponseWriter, r *http.Request) {
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	var body shopProfileBody
	if !decodeJSON(w, r, &body) {
		return
	}

	s, err := h.uc.Create(r.Context(), u.Email, body.toProfile())
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// GET /shops/{id}
func (h *ShopHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	s, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// PUT /shops/{id}
func (h *ShopHandler) updateProfile(w http.ResponseWriter, r *http.Request, id string) {
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	var body shopProfileBody
	if !decodeJSON(w, r, &body) {
		return
	}

	s, err := h.uc.UpdateProfile(r.Context(), u.Email, id, body.toProfile())
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// DELETE /shops/{id}
func (h *ShopHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	if err := h.uc.Delete(r.Context(), u.Email, id); err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// -------------------------
// products
// -------------------------

// PUT /shops/{id}/products
func (h *ShopHandler) putProduct(w http.ResponseWriter, r *http.Request, id string) {
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	var item shopdom.Product
	if !decodeJSON(w, r, &item) {
		return
	}
	if len(item.Images) > shopdom.MaxProductImages {
		writeErr(w, http.StatusBadRequest, "too many product images")
		return
	}

	// the product cap only blocks NEW entries; editing an existing one is
	// always allowed
	if s, err := h.uc.Get(r.Context(), id); err == nil {
		if !hasProduct(s.Products, item.ID) && len(s.Products) >= shopdom.MaxProducts {
			writeErr(w, http.StatusUnprocessableEntity, "product limit reached")
			return
		}
	}

	s, err := h.uc.SaveProduct(r.Context(), u.Email, id, item)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// DELETE /shops/{id}/products/{pid}
func (h *ShopHandler) deleteProduct(w http.ResponseWriter, r *http.Request, id, productID string) {
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	s, err := h.uc.DeleteProduct(r.Context(), u.Email, id, productID)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func hasProduct(products []shopdom.Product, id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// -------------------------
// coupons
// -------------------------

// PUT /shops/{id}/coupons
func (h *ShopHandler) putCoupon(w http.ResponseWriter, r *http.Request, id string) {
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	var item shopdom.Coupon
	if !decodeJSON(w, r, &item) {
		return
	}

	s, err := h.uc.SaveCoupon(r.Context(), u.Email, id, item)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// DELETE /shops/{id}/coupons/{cid}
func (h *ShopHandler) deleteCoupon(w http.ResponseWriter, r *http.Request, id, couponID string) {
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	s, err := h.uc.DeleteCoupon(r.Context(), u.Email, id, couponID)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// -------------------------
// reviews
// -------------------------

// POST /shops/{id}/reviews — open to any visitor, no auth required.
func (h *ShopHandler) postReview(w http.ResponseWriter, r *http.Request, id string) {
	var item shopdom.Review
	if !decodeJSON(w, r, &item) {
		return
	}

	s, err := h.uc.AddReview(r.Context(), id, item)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// -------------------------
// social post + images
// -------------------------

// POST /shops/{id}/social-post
func (h *ShopHandler) draftSocialPost(w http.ResponseWriter, r *http.Request, id string) {
	if h.social == nil {
		writeErr(w, http.StatusServiceUnavailable, "assistant is not configured")
		return
	}
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	s, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	if !s.OwnedBy(u.Email) {
		writeErr(w, http.StatusForbidden, "not the shop owner")
		return
	}

	post, err := h.social.Draft(r.Context(), s)
	if err != nil {
		writeErr(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"post": post})
}

// POST /shops/{id}/images?kind=card|gallery|product (multipart, field "file")
func (h *ShopHandler) uploadImage(w http.ResponseWriter, r *http.Request, id string) {
	if h.images == nil {
		writeErr(w, http.StatusServiceUnavailable, "image store is not configured")
		return
	}
	u, ok := requireMerchant(w, r)
	if !ok {
		return
	}

	kind := gcs.ImageKind(strings.TrimSpace(r.URL.Query().Get("kind")))
	if !kind.IsValid() {
		writeErr(w, http.StatusBadRequest, "kind must be card, gallery or product")
		return
	}

	s, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeShopErr(w, err)
		return
	}
	if !s.OwnedBy(u.Email) {
		writeErr(w, http.StatusForbidden, "not the shop owner")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxShopImageBytes)
	if err := r.ParseMultipartForm(maxShopImageBytes); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	f, _, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "failed to read file")
		return
	}
	if len(data) == 0 {
		writeErr(w, http.StatusBadRequest, "file is empty")
		return
	}

	url, err := h.images.Upload(r.Context(), s.ID, kind, data)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// -------------------------
// shared
// -------------------------

// requireMerchant answers 401/403 itself when the caller may not manage shops.
func requireMerchant(w http.ResponseWriter, r *http.Request) (*userdom.User, bool) {
	u, ok := middleware.CurrentUser(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	if !u.CanManageShops() {
		writeErr(w, http.StatusForbidden, "merchant account required")
		return nil, false
	}
	return u, true
}

func writeShopErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrShopInvalidArgument):
		code = http.StatusBadRequest
	case errors.Is(err, usecase.ErrShopNotFound):
		code = http.StatusNotFound
	case errors.Is(err, usecase.ErrShopNotOwner):
		code = http.StatusForbidden
	case errors.Is(err, shopdom.ErrInvalidShop):
		code = http.StatusBadRequest
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
