package app

import (
	"fmt"
	"html/template"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	ginLogger "github.com/Aarondoran/Dotlink-url-shortener/internal/middleware/logger"

	"github.com/Aarondoran/Dotlink-url-shortener/internal/middleware/compress"
	"github.com/Aarondoran/Dotlink-url-shortener/web"
)

const (
	rootPath       = "/"
	shortenPath    = "/shorten"
	apiShortenPath = "/api/shorten"
	redirectPath   = "/r/:shortUrl"
	pingPath       = "/ping"
)

func (a *App) SetupRouter() (*gin.Engine, error) {
	r := gin.New()
	if a.config.ProfileMode {
		pprof.Register(r)
	}

	tmpl, err := template.ParseFS(web.Templates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(ginLogger.Logger(a.logger.Named("middleware")))
	r.Use(compress.Compress())

	r.GET(rootPath, a.HomePage)
	r.POST(shortenPath, a.ShortenForm)
	r.POST(apiShortenPath, a.ShortenAPI)
	r.GET(redirectPath, a.RedirectToOriginal)
	r.GET(pingPath, a.Ping)

	return r, nil
}
