package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/asketsystem/lifebook/internal/content"
	"github.com/asketsystem/lifebook/internal/http/response"
	"github.com/asketsystem/lifebook/internal/platform/apierr"
	"github.com/asketsystem/lifebook/internal/platform/ctxutil"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

type ContentHandler struct {
	log     *logger.Logger
	svc     content.Service
	devMode bool
}

func NewContentHandler(log *logger.Logger, svc content.Service, devMode bool) *ContentHandler {
	return &ContentHandler{
		log:     log.With("handler", "ContentHandler"),
		svc:     svc,
		devMode: devMode,
	}
}

// POST /api/content/daily
// body: { "mood": "...", "secondaryEmotions": ["..."] }
func (h *ContentHandler) GenerateDaily(c *gin.Context) {
	ident := ctxutil.GetIdentity(c.Request.Context())
	if ident == nil {
		response.Error(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		Mood              string   `json:"mood"`
		SecondaryEmotions []string `json:"secondaryEmotions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Mood) == "" {
		response.Error(c, http.StatusBadRequest, "Mood is required")
		return
	}

	doc, err := h.svc.GenerateDaily(c.Request.Context(), ident.UID, req.Mood, req.SecondaryEmotions)
	if err != nil {
		h.respondError(c, err, "Failed to generate content")
		return
	}
	response.OK(c, doc)
}

// GET /api/content/daily?date=YYYY-MM-DD
func (h *ContentHandler) GetDaily(c *gin.Context) {
	ident := ctxutil.GetIdentity(c.Request.Context())
	if ident == nil {
		response.Error(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	doc, err := h.svc.GetDaily(c.Request.Context(), ident.UID, date)
	if err != nil {
		h.respondError(c, err, "Failed to fetch content")
		return
	}
	response.OK(c, doc)
}

// POST /api/content/meditation
// body: { "mood": "...", "duration": 5 }
func (h *ContentHandler) GenerateMeditation(c *gin.Context) {
	ident := ctxutil.GetIdentity(c.Request.Context())
	if ident == nil {
		response.Error(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		Mood     string `json:"mood"`
		Duration int    `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Mood) == "" {
		response.Error(c, http.StatusBadRequest, "Mood is required")
		return
	}

	meditation, err := h.svc.GenerateMeditation(c.Request.Context(), req.Mood, req.Duration)
	if err != nil {
		h.respondError(c, err, "Failed to generate meditation")
		return
	}
	response.OK(c, meditation)
}

// POST /api/content/prayer
// body: { "mood": "...", "context": "..." }
func (h *ContentHandler) GeneratePrayer(c *gin.Context) {
	ident := ctxutil.GetIdentity(c.Request.Context())
	if ident == nil {
		response.Error(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		Mood    string `json:"mood"`
		Context string `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Mood) == "" {
		response.Error(c, http.StatusBadRequest, "Mood is required")
		return
	}

	prayer, err := h.svc.GeneratePrayer(c.Request.Context(), req.Mood, req.Context)
	if err != nil {
		h.respondError(c, err, "Failed to generate prayer")
		return
	}
	response.OK(c, prayer)
}

// respondError is the sole translator from internal errors to HTTP statuses.
// Non-500 apierr statuses surface their message verbatim; everything else is
// a 500 whose detail is shown only in development mode.
func (h *ContentHandler) respondError(c *gin.Context, err error, publicMsg string) {
	var ae *apierr.Error
	if errors.As(err, &ae) && ae.Status != 0 && ae.Status < http.StatusInternalServerError {
		response.Error(c, ae.Status, ae.Error())
		return
	}

	h.log.Error("Request failed", "path", c.FullPath(), "error", err)
	if h.devMode {
		response.ErrorWithDetail(c, http.StatusInternalServerError, publicMsg, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, publicMsg)
}
