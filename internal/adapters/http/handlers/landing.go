package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/web3infra-foundation/mda-site/internal/adapters/http/dto"
	"github.com/web3infra-foundation/mda-site/internal/adapters/http/middleware"
	"github.com/web3infra-foundation/mda-site/internal/domain"
	"github.com/web3infra-foundation/mda-site/internal/platform/logging"
)

const htmlContentType = "text/html; charset=utf-8"

var (
	pageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mda_site",
		Name:      "page_renders_total",
		Help:      "Landing page renders by outcome.",
	}, []string{"outcome"})

	pageRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mda_site",
		Name:      "page_render_duration_seconds",
		Help:      "Time spent rendering the landing page.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	})
)

// LandingService is what the landing handler needs from the application layer.
type LandingService interface {
	Intro(ctx context.Context) domain.Intro
	RenderLanding(ctx context.Context, w io.Writer) error
}

// LandingHandler serves the landing page and its JSON projection.
type LandingHandler struct {
	service LandingService
}

// NewLandingHandler creates a LandingHandler.
func NewLandingHandler(service LandingService) *LandingHandler {
	return &LandingHandler{service: service}
}

// Page handles GET and HEAD /. HEAD answers with the headers of GET.
func (h *LandingHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	var buf bytes.Buffer
	err := h.service.RenderLanding(ctx, &buf)

	pageRenderDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		pageRenders.WithLabelValues("error").Inc()
		h.pageError(c, err)

		return
	}

	pageRenders.WithLabelValues("ok").Inc()

	c.Header("Content-Length", strconv.Itoa(buf.Len()))

	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", htmlContentType)
		c.Status(http.StatusOK)

		return
	}

	c.Data(http.StatusOK, htmlContentType, buf.Bytes())
}

func (h *LandingHandler) pageError(c *gin.Context, err error) {
	if !middleware.WantsHTML(c) {
		dto.HandleError(c, err)
		return
	}

	ctx := c.Request.Context()
	status, _ := dto.MapDomainError(err)

	logging.FromContext(ctx).ErrorContext(ctx, "landing page unavailable",
		slog.Any("error", err),
		slog.Int("status", status),
	)

	middleware.RenderErrorPage(c, status, "The page could not be rendered. Please try again shortly.")
}

// Intro handles GET /api/v1/intro.
func (h *LandingHandler) Intro(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewIntroResponse(h.service.Intro(c.Request.Context())))
}

// Link handles GET /api/v1/intro/links/:label.
func (h *LandingHandler) Link(c *gin.Context) {
	link, err := h.service.Intro(c.Request.Context()).Link(c.Param("label"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LinkResponse{
		Label: link.Label,
		Href:  link.Href,
		Icon:  string(link.Icon),
	})
}

// RegisterRoutes mounts the page at / and the JSON views under /api/v1.
func (h *LandingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Page)
	rg.HEAD("/", h.Page)

	api := rg.Group("/api/v1")
	api.GET("/intro", h.Intro)
	api.GET("/intro/links/:label", h.Link)
}
