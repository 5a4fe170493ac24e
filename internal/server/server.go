package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"callboard/internal/api"
	"callboard/internal/leads"
	"callboard/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

//go:embed templates
var uiFS embed.FS

var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	client    *api.Client
	simulator *leads.Simulator
	templates *template.Template

	cookie *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	boards *boardRegistry

	debug bool

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	client *api.Client,
	simulator *leads.Simulator,
	jwkCache *jwk.Cache,
	jwksURL string,
	debug bool,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger:    logger,
		config:    config,
		client:    client,
		simulator: simulator,
		cookie:    securecookie.New(hashKey, blockKey),
		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		boards:    newBoardRegistry(),
		debug:     debug,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)
	r.Use(s.WithSession)

	r.HandleFunc("/", s.handleHome, http.MethodGet)

	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout, http.MethodGet)

	r.HandleFunc("/community", s.handleCommunity, http.MethodGet)
	r.HandleFunc("/market/:kind", s.handleMarket, http.MethodGet)
	r.HandleFunc("/profile/:id", s.handleProfile, http.MethodGet)

	r.HandleFunc("/leads", s.handleLeadSubmit, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/community/posts/new", s.handleGetNewPost, http.MethodGet)
		r.HandleFunc("/community/posts", s.handleCreatePost, http.MethodPost)
		r.HandleFunc("/community/posts/:id/like", s.handleLikePost, http.MethodPost)
		r.HandleFunc("/community/gigs/:id/role", s.handleSelectRole, http.MethodPost)
		r.HandleFunc("/community/gigs/:id/apply", s.handleApplyToGig, http.MethodPost)

		r.HandleFunc("/dashboard", s.handleDashboard, http.MethodGet)
		r.HandleFunc("/dashboard/leads", s.handleDashboardLeads, http.MethodGet)
	})
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"derefOr": func(s *string, defaultVal string) string {
			if s == nil {
				return defaultVal
			}
			return *s
		},
		"cents": func(cents int) string {
			return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

