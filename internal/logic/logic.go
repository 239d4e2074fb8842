package logic

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/Aarondoran/Dotlink-url-shortener/internal/blacklist"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/config"
	"github.com/Aarondoran/Dotlink-url-shortener/internal/utils"
)

const (
	aliasLength  = 8
	redirectPath = "r"

	BlacklistedMessage = "URL contains blacklisted term/phrase"
)

var (
	ErrBlacklisted = errors.New("url contains blacklisted term")
	ErrNotFound    = errors.New("not found")
)

type Store interface {
	Get(shortURL string) (string, error)
	GetByOriginal(originalURL string) (string, error)
	Put(id string, url string) (string, error)
	Ping() error
	Close()
}

type CoreLogic struct {
	config *config.ServerConfig
	store  Store
	filter *blacklist.Filter
	logger *zap.SugaredLogger
}

func NewCoreLogic(
	config *config.ServerConfig,
	store Store,
	filter *blacklist.Filter,
	logger *zap.SugaredLogger,
) *CoreLogic {
	return &CoreLogic{
		config: config,
		store:  store,
		filter: filter,
		logger: logger,
	}
}

// ShortenURL normalizes the URL, rejects it when blacklisted and returns
// the public short link. Re-submitting a known URL returns the alias that
// was stored the first time; nothing new is persisted.
func (cl *CoreLogic) ShortenURL(ctx context.Context, originalURL string) (string, error) {
	originalURL = utils.NormalizeURL(originalURL)

	blacklisted, err := cl.filter.IsBlacklisted(originalURL)
	if err != nil {
		err = fmt.Errorf("error checking blacklist: %w", err)
		cl.logger.Error(err)
		return "", err
	}
	if blacklisted {
		return "", ErrBlacklisted
	}

	id, err := cl.store.GetByOriginal(originalURL)
	if err != nil {
		err = fmt.Errorf("error looking up original URL: %w", err)
		cl.logger.Error(err)
		return "", err
	}

	if id == "" {
		id, err = utils.GenerateRandomString(aliasLength)
		if err != nil {
			err = fmt.Errorf("random string generator error: %w", err)
			cl.logger.Error(err)
			return "", err
		}

		id, err = cl.store.Put(id, originalURL)
		if err != nil {
			err = fmt.Errorf("error saving data: %w", err)
			cl.logger.Error(err)
			return "", err
		}
	}

	resultURL, err := url.JoinPath(cl.config.RedirectBaseURL, redirectPath, id)
	if err != nil {
		err = fmt.Errorf("URL cannot be joined: %w", err)
		cl.logger.Error(err)
		return "", err
	}

	return resultURL, nil
}

// GetOriginalURL resolves a short alias to the stored original URL.
func (cl *CoreLogic) GetOriginalURL(ctx context.Context, shortURL string) (string, error) {
	originalURL, err := cl.store.Get(shortURL)
	if err != nil {
		err = fmt.Errorf("error getting original URL: %w", err)
		cl.logger.Error(err)
		return "", err
	}

	if originalURL == "" {
		return "", ErrNotFound
	}

	return originalURL, nil
}

func (cl *CoreLogic) Ping(ctx context.Context) error {
	if err := cl.store.Ping(); err != nil {
		err = fmt.Errorf("error checking storage: %w", err)
		cl.logger.Error(err)
		return err
	}

	return nil
}
