package admin

import (
	"time"

	"product-vendor-go/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Catalog interface {
	Snapshot() models.Rotation
}

type Gate interface {
	Ready() bool
	Count() int
}

type ProductView struct {
	Serial int32 `json:"serial"`
	Price  int32 `json:"price"`
}

type CatalogView struct {
	Sequence    uint64        `json:"sequence"`
	Subscribers int           `json:"subscribers"`
	RotatedAt   time.Time     `json:"rotated_at"`
	Products    []ProductView `json:"products"`
}

// New builds the admin app. /ready is 503 until the gate reports quorum.
func New(catalog Catalog, gate Gate) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(recover.New())
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessProbe: func(c *fiber.Ctx) bool {
			return true
		},
		LivenessEndpoint: "/live",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			return gate.Ready()
		},
		ReadinessEndpoint: "/ready",
	}))
	app.Use(requestLogger())

	app.Get("/catalog", func(c *fiber.Ctx) error {
		snapshot := catalog.Snapshot()

		view := CatalogView{
			Sequence:    snapshot.Sequence,
			Subscribers: gate.Count(),
			RotatedAt:   snapshot.At,
			Products:    make([]ProductView, 0, len(snapshot.Products)),
		}
		for _, product := range snapshot.Products {
			view.Products = append(view.Products, ProductView{Serial: product.Serial, Price: product.Price})
		}

		return c.JSON(view)
	})

	return app
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, requestID)

		err := c.Next()

		log.WithFields(log.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"request_id": requestID,
			"duration":   time.Since(start),
		}).Debug("[Admin] Request served")

		return err
	}
}
