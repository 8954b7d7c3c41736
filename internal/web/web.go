package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/sirupsen/logrus"

	embedded "volunteerhub"
	authservice "volunteerhub/auth/service"
	"volunteerhub/auth/users"
	"volunteerhub/internal/backend"
	"volunteerhub/internal/config"
	"volunteerhub/internal/dashboard"
	"volunteerhub/internal/web/webpath"
)

type Server struct {
	auth       *authservice.Service
	dashboards *dashboard.Service
	client     *backend.Client
	app        *fiber.App
	cfg        config.Server
	log        *logrus.Entry
}

const sessionKey = "session"

func New(cfg config.Server, auth *authservice.Service, dashboards *dashboard.Service, client *backend.Client, l *logrus.Logger) (*Server, error) {
	server := Server{
		auth:       auth,
		dashboards: dashboards,
		client:     client,
		cfg:        cfg,
		log:        l.WithFields(map[string]interface{}{"from": "web"}),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		session, err := auth.Auth(c.Context(), tokenCookie, c.Method(), c.Path())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrNotAuthorized):
				return c.Redirect(webpath.Signin)
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
				return c.Render("error", newData("Forbidden").
					With("Message", "You don't have access to this page."), "layouts/main")
			default:
				server.log.WithError(err).Error("auth middleware")
				c.Status(fiber.StatusInternalServerError)
				return nil
			}
		}
		c.Context().SetUserValue(sessionKey, session)
		return c.Next()
	})

	app.Get(webpath.Home, server.handleMain)
	app.Get(webpath.Signin, server.handleSignInGet)
	app.Post(webpath.Signin, server.handleSignInPost)
	app.Get(webpath.Signup, server.handleSignUpGet)
	app.Post(webpath.Signup, server.handleSignUpPost)
	app.Get(webpath.Signout, server.handleSignOut)

	app.Get(webpath.Dashboard, server.handleDashboard)
	app.Post(webpath.DashboardEnroll, server.handleEnroll)
	app.Get(webpath.Matching, server.handleMatchingGet)
	app.Post(webpath.Matching, server.handleMatchingPost)
	app.Get(webpath.MatchingOpen, server.handleMatchingOpen)
	app.Get(webpath.History, server.handleHistory)
	app.Get(webpath.Notifications, server.handleNotifications)
	app.Get(webpath.Admin, server.handleAdmin)
	app.Get(webpath.CompleteProfile, server.handleCompleteProfile)

	server.app = app
	return &server, nil
}

// Serve uses the cert.pem/key.pem pair from cmd/certgen when present,
// plain HTTP otherwise.
func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if _, err := os.Stat("cert.pem"); err == nil {
		if _, err := os.Stat("key.pem"); err == nil {
			return s.app.ListenTLS(addr, "cert.pem", "key.pem")
		}
	}
	return s.app.Listen(addr)
}

func (s *Server) session(ctx *fiber.Ctx) users.Session {
	session, _ := ctx.Context().UserValue(sessionKey).(users.Session)
	return session
}

// pageData builds the common render payload: user, route map and any
// pending flash messages (consumed here, shown once).
func (s *Server) pageData(ctx *fiber.Ctx, title string) data {
	session := s.session(ctx)
	return newData(title).
		WithUser(session.User).
		WithFlashes(s.auth.PopFlashes(ctx.Context(), session.ID))
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	return ctx.Render("index", s.pageData(ctx, "VolunteerHub"), "layouts/main")
}

func (s *Server) handleSignInGet(ctx *fiber.Ctx) error {
	if !s.session(ctx).User.IsZero() {
		return ctx.Redirect(webpath.Dashboard)
	}
	return ctx.Render("signin", s.pageData(ctx, "Login"), "layouts/main")
}

func (s *Server) handleSignInPost(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", s.pageData(ctx, "Login").WithErrors(err), "layouts/main")
	}
	session, err := s.auth.Login(ctx.Context(), req.Email, req.Password)
	if err != nil {
		return ctx.Render("signin", s.pageData(ctx, "Login").WithErrors(loginError(err)), "layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(session.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	s.auth.Flash(ctx.Context(), session.ID, "Login successful")

	// redirect by role and profile completeness, as the backend reported them
	switch {
	case session.User.IsAdmin():
		return ctx.Redirect(webpath.Admin)
	case session.User.ProfileComplete:
		return ctx.Redirect(webpath.Dashboard)
	default:
		return ctx.Redirect(webpath.CompleteProfile)
	}
}

// loginError keeps the backend's own message when there is one and hides
// transport details otherwise.
func loginError(err error) error {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return errors.New(statusErr.Message)
	}
	if errors.As(err, &statusErr) {
		return errors.New("Login failed")
	}
	return errors.New("Error logging in")
}

func (s *Server) handleSignUpGet(ctx *fiber.Ctx) error {
	if !s.session(ctx).User.IsZero() {
		return ctx.Redirect(webpath.Dashboard)
	}
	return ctx.Render("signup", s.pageData(ctx, "Register"), "layouts/main")
}

func (s *Server) handleSignUpPost(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", s.pageData(ctx, "Register").WithErrors(err), "layouts/main")
	}
	if err := s.auth.Register(ctx.Context(), req.Email, req.Password); err != nil {
		s.log.WithError(err).Info("registration rejected")
		return ctx.Render("signup", s.pageData(ctx, "Register").WithErrors(loginError(err)), "layouts/main")
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	if err := s.auth.Logout(ctx.Context(), ctx.Cookies("token")); err != nil {
		s.log.WithError(err).Warn("logout")
	}
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleAdmin(ctx *fiber.Ctx) error {
	return ctx.Render("admin", s.pageData(ctx, "Admin"), "layouts/main")
}

func (s *Server) handleCompleteProfile(ctx *fiber.Ctx) error {
	return ctx.Render("completeProfile", s.pageData(ctx, "Complete Your Profile"), "layouts/main")
}
