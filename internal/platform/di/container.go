// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	httpin "borgo/internal/adapters/in/http"
	"borgo/internal/adapters/out/gcs"
	genaiout "borgo/internal/adapters/out/genai"
	"borgo/internal/adapters/out/mail"
	"borgo/internal/adapters/out/postgres"
	"borgo/internal/application/assistant"
	"borgo/internal/application/query"
	usecase "borgo/internal/application/usecase"
	"borgo/internal/infra/config"
	"borgo/internal/infra/database"
	firestoreinfra "borgo/internal/infra/firestore"
	"borgo/internal/infra/secrets"

	fs "borgo/internal/adapters/out/firestore"
)

// Container is the bundle of dependency objects main.go consumes. The goal
// is to keep main.go as thin as possible.
type Container struct {
	Config *config.Config

	FirebaseAuth *fbauth.Client

	ShopUC     *usecase.ShopUsecase
	CatalogQ   *query.CatalogQuery
	Shopper    *assistant.PersonalShopper
	SocialPost *assistant.SocialPostWriter
	Images     *gcs.ShopImageRepositoryGCS

	// Reporting is the optional Postgres read model; nil without DATABASE_URL.
	Reporting *postgres.ShopQueryPG

	fsClient  *firestoreinfra.ClientWrapper
	gcsClient *storage.Client
	db        *database.DB
	cleanupFn []func()
}

// Close releases every resource the container opened, LIFO.
func (c *Container) Close() {
	for i := len(c.cleanupFn) - 1; i >= 0; i-- {
		c.cleanupFn[i]()
	}
}

// RouterDeps hands the wired application objects to the HTTP router.
func (c *Container) RouterDeps() httpin.RouterDeps {
	deps := httpin.RouterDeps{
		ShopUC:         c.ShopUC,
		CatalogQ:       c.CatalogQ,
		Shopper:        c.Shopper,
		SocialPost:     c.SocialPost,
		MapsBrowserKey: c.Config.MapsBrowserKey,
	}
	if c.Images != nil {
		deps.Images = c.Images
	}
	if c.Reporting != nil {
		deps.Reporting = c.Reporting
	}
	return deps
}

// NewContainer initializes every external resource and wires repositories,
// usecases and assistants together. Optional pieces (Postgres, Gemini,
// SendGrid, GCS) log a WARN and stay nil instead of failing the boot.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := config.Load()
	c := &Container{Config: cfg}

	// 1) Firestore (required: the shop store)
	fsw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("init firestore: %w", err)
	}
	c.fsClient = fsw
	c.cleanupFn = append(c.cleanupFn, func() { _ = fsw.Close() })

	if err := fsw.Ping(ctx); err != nil {
		log.Printf("[di] WARN: firestore ping failed: %v", err)
	}

	// 2) Firebase Auth (skipped entirely with AUTH_DISABLED=1)
	if !cfg.AuthDisabled {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
		if err != nil {
			log.Printf("[di] WARN: firebase app init failed: %v", err)
		} else if authClient, err := app.Auth(ctx); err != nil {
			log.Printf("[di] WARN: firebase auth init failed: %v", err)
		} else {
			c.FirebaseAuth = authClient
			log.Printf("[di] Firebase Auth initialized")
		}
	} else {
		log.Printf("[di] AUTH_DISABLED=1: requests run as the development merchant")
	}

	// 3) GCS (shop imagery)
	if cfg.GCSBucket != "" {
		gcsClient, err := storage.NewClient(ctx)
		if err != nil {
			log.Printf("[di] WARN: gcs init failed: %v", err)
		} else {
			c.gcsClient = gcsClient
			c.cleanupFn = append(c.cleanupFn, func() { _ = gcsClient.Close() })
			c.Images = gcs.NewShopImageRepositoryGCS(gcsClient, cfg.GCSBucket)
		}
	} else {
		log.Printf("[di] GCS_BUCKET not set: image upload disabled")
	}

	// 4) Postgres reporting read model (optional)
	if cfg.DatabaseURL != "" {
		db, err := database.NewConnection(cfg.DatabaseURL)
		if err != nil {
			log.Printf("[di] WARN: postgres init failed: %v", err)
		} else {
			c.db = db
			c.cleanupFn = append(c.cleanupFn, func() { _ = db.Close() })
			c.Reporting = postgres.NewShopQueryPG(db.Client)
		}
	}

	// 5) Repositories + usecases
	shopRepo := fs.NewShopRepositoryFS(fsw.Client)

	var notifier usecase.ReviewNotifier
	if cfg.SendGridAPIKey != "" {
		notifier = mail.NewReviewNotifier(mail.NewSendGridClient(cfg.SendGridAPIKey), cfg.MailFrom)
	} else {
		log.Printf("[di] SENDGRID_API_KEY not set: review notifications disabled")
	}

	c.ShopUC = usecase.NewShopUsecaseWithNotifier(shopRepo, notifier)
	if c.Images != nil {
		c.ShopUC.WithImageCleaner(c.Images)
	}
	c.CatalogQ = query.NewCatalogQuery(shopRepo)

	// 6) Gemini assistant
	apiKey := cfg.GeminiAPIKey
	if apiKey == "" && cfg.GeminiAPIKeySecret != "" {
		provider, err := secrets.NewProvider(ctx, cfg.FirestoreProjectID)
		if err != nil {
			log.Printf("[di] WARN: secret manager init failed: %v", err)
		} else {
			c.cleanupFn = append(c.cleanupFn, func() { _ = provider.Close() })
			if key, err := provider.Access(ctx, cfg.GeminiAPIKeySecret); err != nil {
				log.Printf("[di] WARN: gemini key secret read failed: %v", err)
			} else {
				apiKey = key
			}
		}
	}
	if apiKey != "" {
		gen, err := genaiout.NewClient(ctx, apiKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("[di] WARN: gemini init failed: %v", err)
		} else {
			c.Shopper = assistant.NewPersonalShopper(shopRepo, gen)
			c.SocialPost = assistant.NewSocialPostWriter(gen)
		}
	} else {
		log.Printf("[di] no Gemini API key: assistant disabled")
	}

	return c, nil
}
