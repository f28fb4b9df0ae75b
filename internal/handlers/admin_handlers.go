package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/middleware"
	"portfolio_web_echo/internal/stores"
	"portfolio_web_echo/web/templates/pages"
	"portfolio_web_echo/web/templates/shared"
)

// AdminHandler serves the contact inbox and testimonial moderation pages
type AdminHandler struct {
	stores    *stores.Registry
	siteTitle string
	logger    *zap.Logger
}

func NewAdminHandler(registry *stores.Registry, siteTitle string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{stores: registry, siteTitle: siteTitle, logger: logger}
}

// Messages lists the unread contact messages
func (h *AdminHandler) Messages(c echo.Context) error {
	breadcrumbs := []shared.Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Messages", URL: ""},
	}

	props := pages.AdminMessagesProps{
		Layout:   layoutData(c, h.stores, h.siteTitle, "messages", breadcrumbs),
		Messages: h.stores.Messages.FetchUnread(c.Request().Context()),
		Flash:    c.QueryParam("error"),
	}
	return render(c, http.StatusOK, pages.AdminMessages(props))
}

func (h *AdminHandler) MarkMessageRead(c echo.Context) error {
	return h.act(c, "/admin/messages", h.stores.Messages.MarkRead, "Failed to mark message as read.")
}

func (h *AdminHandler) DeleteMessage(c echo.Context) error {
	return h.act(c, "/admin/messages", h.stores.Messages.Delete, "Failed to delete message.")
}

// Testimonials lists the testimonials waiting for approval
func (h *AdminHandler) Testimonials(c echo.Context) error {
	breadcrumbs := []shared.Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Testimonials", URL: ""},
	}

	props := pages.AdminTestimonialsProps{
		Layout:  layoutData(c, h.stores, h.siteTitle, "testimonials", breadcrumbs),
		Pending: h.stores.Moderation.FetchPending(c.Request().Context()),
		Flash:   c.QueryParam("error"),
	}
	return render(c, http.StatusOK, pages.AdminTestimonials(props))
}

func (h *AdminHandler) ApproveTestimonial(c echo.Context) error {
	return h.act(c, "/admin/testimonials", h.stores.Moderation.Approve, "Failed to approve testimonial.")
}

func (h *AdminHandler) RejectTestimonial(c echo.Context) error {
	return h.act(c, "/admin/testimonials", h.stores.Moderation.Reject, "Failed to reject testimonial.")
}

// act runs op on the :id path param and redirects back to the list, carrying the
// error message in the query string when op fails
func (h *AdminHandler) act(c echo.Context, back string, op func(context.Context, int) error, fallback string) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	if err := op(c.Request().Context(), id); err != nil {
		h.logger.Warn("admin action failed",
			zap.String("path", c.Path()),
			zap.Int("id", id),
			zap.String("user", middleware.StringFromContext(c, middleware.ContextUserEmail)),
			zap.Error(err),
		)
		return c.Redirect(http.StatusSeeOther, back+"?error="+url.QueryEscape(apiclient.Message(err, fallback)))
	}
	return c.Redirect(http.StatusSeeOther, back)
}
