package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aarondoran/Dotlink-url-shortener/internal/config"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/logic"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/models"
)

const (
	applicationJSON = "application/json"
	contentType     = "Content-Type"

	homeTemplate     = "home.tmpl"
	doneTemplate     = "done.tmpl"
	redirectTemplate = "redirect.tmpl"
)

type App struct {
	config *config.ServerConfig
	logic  *logic.CoreLogic
	logger *zap.SugaredLogger
}

func NewApp(config *config.ServerConfig, coreLogic *logic.CoreLogic, logger *zap.SugaredLogger) *App {
	return &App{
		config: config,
		logic:  coreLogic,
		logger: logger,
	}
}

func (a *App) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, homeTemplate, nil)
}

// ShortenForm handles the browser form flow: a rendered result page on
// success, 400 with a plain-text reason on a blacklisted URL.
func (a *App) ShortenForm(c *gin.Context) {
	originalURL := c.PostForm("originalUrl")

	shortURL, err := a.logic.ShortenURL(c.Request.Context(), originalURL)
	if err != nil {
		if errors.Is(err, logic.ErrBlacklisted) {
			c.String(http.StatusBadRequest, logic.BlacklistedMessage)
			return
		}

		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, doneTemplate, gin.H{
		"ShortURL": shortURL,
	})
}

// ShortenAPI handles the JSON flow. A blacklisted URL still answers 200;
// the rejection travels in the error field of the body.
func (a *App) ShortenAPI(c *gin.Context) {
	var req models.ShortenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Writer.WriteHeader(http.StatusBadRequest)
		return
	}

	shortURL, err := a.logic.ShortenURL(c.Request.Context(), req.OriginalURL)
	if err != nil {
		if errors.Is(err, logic.ErrBlacklisted) {
			c.JSON(http.StatusOK, models.ShortenRes{Error: logic.BlacklistedMessage})
			return
		}

		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, models.ShortenRes{ShortURL: shortURL})
}

// RedirectToOriginal resolves the alias and renders the redirect page.
// Unknown aliases fall back to the home page instead of erroring.
func (a *App) RedirectToOriginal(c *gin.Context) {
	id := c.Param("shortUrl")

	originalURL, err := a.logic.GetOriginalURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, logic.ErrNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, redirectTemplate, gin.H{
		"OriginalURL": originalURL,
	})
}

func (a *App) Ping(c *gin.Context) {
	if err := a.logic.Ping(c.Request.Context()); err != nil {
		c.Writer.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Writer.WriteHeader(http.StatusOK)
}
