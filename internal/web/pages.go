package web

import (
	"github.com/gofiber/fiber/v2"

	"volunteerhub/internal/web/webpath"
)

func (s *Server) handleMatchingGet(ctx *fiber.Ctx) error {
	return ctx.Render("matching", s.pageData(ctx, "Volunteer Matching"), "layouts/main")
}

// handleMatchingPost runs the backend matching query and renders the
// results. Clicking a result goes through handleMatchingOpen so the
// dashboard can auto-open that event.
func (s *Server) handleMatchingPost(ctx *fiber.Ctx) error {
	session := s.session(ctx)
	page := s.pageData(ctx, "Volunteer Matching")
	matches, err := s.client.Matches(ctx.Context(), session.User.ID)
	if err != nil {
		s.log.WithError(err).Error("match query failed")
		return ctx.Render("matching", page.With("MatchError", "Could not load matches."), "layouts/main")
	}
	if len(matches) == 0 {
		page = page.With("NoMatches", "No matches found yet. Try updating your profile skills.")
	}
	return ctx.Render("matching", page.With("Matches", newMatchViews(matches)).With("Searched", true), "layouts/main")
}

func (s *Server) handleMatchingOpen(ctx *fiber.Ctx) error {
	session := s.session(ctx)
	eventID := ctx.Params("eventID")
	if err := s.auth.OpenEventHandoff(ctx.Context(), session.ID, eventID); err != nil {
		s.log.WithError(err).Warn("unable to store handoff token")
	}
	return ctx.Redirect(webpath.Dashboard + "?section=" + sectionAllEvents)
}

func (s *Server) handleHistory(ctx *fiber.Ctx) error {
	session := s.session(ctx)
	page := s.pageData(ctx, "Volunteer History")
	history, err := s.client.History(ctx.Context(), session.User.ID)
	if err != nil {
		s.log.WithError(err).Error("history fetch failed")
		return ctx.Render("history", page.With("HistoryError", "Could not load your history."), "layouts/main")
	}
	return ctx.Render("history", page.With("History", newHistoryViews(history)), "layouts/main")
}

func (s *Server) handleNotifications(ctx *fiber.Ctx) error {
	session := s.session(ctx)
	page := s.pageData(ctx, "Notifications")
	notifications, err := s.dashboards.CombinedNotifications(ctx.Context(), session.User.ID)
	if err != nil {
		s.log.WithError(err).Error("notifications fetch failed")
		return ctx.Render("notifications", page.With("LoadError", "Could not load notifications."), "layouts/main")
	}
	return ctx.Render("notifications", page.With("Notifications", newNotificationViews(notifications)), "layouts/main")
}
