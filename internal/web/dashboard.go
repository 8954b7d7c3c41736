package web

import (
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"volunteerhub/internal/domain"
	"volunteerhub/internal/events"
	"volunteerhub/internal/web/webpath"
)

const (
	sectionOverview  = "overview"
	sectionMyEvents  = "my-events"
	sectionAllEvents = "all-events"
	sectionHistory   = "history"
)

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	session := s.session(ctx)
	if !session.User.ProfileComplete {
		return ctx.Render("completeProfile", s.pageData(ctx, "Complete Your Profile"), "layouts/main")
	}

	refresh := ctx.Query("refresh") == "1"
	d, loadErrs := s.dashboards.Load(ctx.Context(), session.User.ID, refresh)

	section := ctx.Query("section", sectionOverview)
	selectedEventID := ctx.Query("event")

	// one-shot redirect from the matching page: open the named event's
	// detail view if it is in the loaded list, otherwise just show the
	// browse list (the token is gone either way)
	if target, ok := s.auth.ConsumeOpenEventHandoff(ctx.Context(), session.ID); ok {
		section = sectionAllEvents
		if _, found := findEvent(d.Browse, target); found {
			selectedEventID = target
		}
	}

	page := s.pageData(ctx, "Volunteer Dashboard").
		With("Section", section)
	if len(loadErrs) > 0 {
		page = page.With("LoadError", "Some dashboard sections failed to load. Refresh to retry.")
	}

	switch section {
	case sectionMyEvents:
		page = page.With("Enrolled", newEventViews(d.Enrolled))
	case sectionAllEvents:
		page = s.withBrowse(ctx, page, d, selectedEventID)
	case sectionHistory:
		// history renders inline and must not take the page down with it
		history, err := s.client.History(ctx.Context(), session.User.ID)
		if err != nil {
			s.log.WithError(err).Error("history fetch failed")
			page = page.With("HistoryError", "Could not load your history.")
		} else {
			page = page.With("History", newHistoryViews(history))
		}
	default:
		page = page.With("Section", sectionOverview).
			With("Suggested", newMatchViews(d.Suggested)).
			With("Notifications", newNotificationViews(d.Notifications)).
			With("Calendar", newCalendarViews(d.Calendar))
		if d.NextEvent != nil {
			page = page.With("NextEvent", newEventView(*d.NextEvent))
		}
	}

	return ctx.Render("dashboard", page, "layouts/main")
}

// withBrowse fills the all-events section: either one event's detail view
// or the filtered, paginated browse list.
func (s *Server) withBrowse(ctx *fiber.Ctx, page data, d domain.Dashboard, selectedEventID string) data {
	if selectedEventID != "" {
		if event, found := findEvent(d.Browse, selectedEventID); found {
			return page.With("Detail", newEventView(event))
		}
	}

	filter := events.Filter{
		Search:   ctx.Query("q"),
		Location: ctx.Query("loc"),
		Urgency:  ctx.Query("urgency", events.UrgencyAll),
		Date:     ctx.Query("date", events.DateAny),
	}
	pageNumber, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil {
		pageNumber = 1
	}
	filtered := events.Apply(d.Browse, filter, time.Now())
	paged := events.Paginate(filtered, pageNumber)

	return page.
		With("Events", newEventViews(paged.Items)).
		With("Page", paged).
		With("Filter", filter).
		With("Urgencies", events.Urgencies(d.Browse))
}

func (s *Server) handleEnroll(ctx *fiber.Ctx) error {
	session := s.session(ctx)
	eventID := ctx.Params("eventID")
	if err := s.dashboards.Enroll(ctx.Context(), session.User.ID, eventID); err != nil {
		s.log.WithError(err).Error("enroll failed")
		s.auth.Flash(ctx.Context(), session.ID, "Could not enroll. Try again.")
		return ctx.Redirect(webpath.Dashboard + "?section=" + sectionAllEvents + "&event=" + url.QueryEscape(eventID))
	}
	s.auth.Flash(ctx.Context(), session.ID, "You are enrolled!")
	return ctx.Redirect(webpath.Dashboard + "?section=" + sectionAllEvents)
}

func findEvent(list []domain.Event, id string) (domain.Event, bool) {
	for _, event := range list {
		if event.ID == id {
			return event, true
		}
	}
	return domain.Event{}, false
}
