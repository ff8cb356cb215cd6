// Package handlers contains the HTTP handlers of campaign-stub, a development stand-in for the campaign server.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sort"

	"campaignclient/domain"
	"campaignclient/helpers"
	"campaignclient/interfaces"
	"campaignclient/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
)

const headerRequestID = "X-Request-ID"

// HTTPServer answers campaign queries from a catalog and records notifications and proxy commands in an event
// store.
type HTTPServer struct {
	catalog    interfaces.CatalogSource
	events     interfaces.EventStore[domain.RecordedEvent]
	clock      interfaces.TimeProvider
	eventTTLMs int
	logger     log.Logger
}

// NewHTTPServer creates the stub handlers. eventTTLMs <= 0 keeps events until the store drops them.
func NewHTTPServer(
	catalog interfaces.CatalogSource,
	events interfaces.EventStore[domain.RecordedEvent],
	clock interfaces.TimeProvider,
	eventTTLMs int,
	logger log.Logger,
) *HTTPServer {
	return &HTTPServer{
		catalog:    helpers.NilPanic(catalog, "handlers.http.go: catalog is required"),
		events:     helpers.NilPanic(events, "handlers.http.go: events is required"),
		clock:      helpers.NilPanic(clock, "handlers.http.go: clock is required"),
		eventTTLMs: eventTTLMs,
		logger:     log.With(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// RegisterHandlers mounts the campaign path surface on e. middleware (typically api.RequestValidator) wraps every
// route.
func RegisterHandlers(e *echo.Echo, h *HTTPServer, middleware ...echo.MiddlewareFunc) {
	e.GET("/", h.Greeting, middleware...)
	e.GET("/_events", h.ListEvents, middleware...)
	e.DELETE("/_events", h.ClearEvents, middleware...)
	e.GET("/scenarios/:id", h.GetScenarios, middleware...)
	e.GET("/scenario_info/:id/:name", h.GetScenarioInfo, middleware...)
	e.GET("/scenario_settings/:id/:name", h.GetScenarioSettings, middleware...)
	e.GET("/ships_available/:id", h.GetShips, middleware...)
	e.GET("/campaign/:id/:name", h.GetCampaign, middleware...)
	e.GET("/briefing/:id", h.GetBriefing, middleware...)
	e.POST("/proxySpawn", h.ProxySpawn, middleware...)
	e.POST("/proxyDestroy", h.ProxyDestroy, middleware...)
	e.POST("/:event", h.Notify, middleware...)
}

// Greeting (GET /) answers the liveness check.
func (h *HTTPServer) Greeting(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, map[string]string{"message": h.catalog.Catalog().Greeting})
}

// GetScenarios (GET /scenarios/{id}).
func (h *HTTPServer) GetScenarios(ectx echo.Context) error {
	h.logQuery(ectx, "scenarios")
	return ectx.JSON(http.StatusOK, map[string][]string{"scenarios": orEmpty(h.catalog.Catalog().Scenarios)})
}

// GetScenarioInfo (GET /scenario_info/{id}/{name}) returns 404 for scenarios missing from the catalog.
func (h *HTTPServer) GetScenarioInfo(ectx echo.Context) error {
	h.logQuery(ectx, "scenario_info")
	name := pathParam(ectx, "name")
	info, ok := h.catalog.Catalog().ScenarioInfo[name]
	if !ok {
		return service.NewEntityNotFoundError("unknown scenario "+name, nil)
	}
	return ectx.JSON(http.StatusOK, map[string]map[string]string{"scenarioInfo": info})
}

// GetScenarioSettings (GET /scenario_settings/{id}/{name}).
func (h *HTTPServer) GetScenarioSettings(ectx echo.Context) error {
	h.logQuery(ectx, "scenario_settings")
	name := pathParam(ectx, "name")
	settings, ok := h.catalog.Catalog().ScenarioSettings[name]
	if !ok {
		return service.NewEntityNotFoundError("unknown scenario "+name, nil)
	}
	return ectx.JSON(http.StatusOK, settings)
}

// GetShips (GET /ships_available/{id}).
func (h *HTTPServer) GetShips(ectx echo.Context) error {
	h.logQuery(ectx, "ships_available")
	return ectx.JSON(http.StatusOK, map[string][]string{"ships": orEmpty(h.catalog.Catalog().Ships)})
}

// GetCampaign (GET /campaign/{id}/{name}).
func (h *HTTPServer) GetCampaign(ectx echo.Context) error {
	h.logQuery(ectx, "campaign")
	name := pathParam(ectx, "name")
	campaign, ok := h.catalog.Catalog().Campaigns[name]
	if !ok {
		return service.NewEntityNotFoundError("unknown campaign "+name, nil)
	}
	return ectx.JSON(http.StatusOK, campaign)
}

// GetBriefing (GET /briefing/{id}) returns the briefing as plain text.
func (h *HTTPServer) GetBriefing(ectx echo.Context) error {
	h.logQuery(ectx, "briefing")
	return ectx.String(http.StatusOK, h.catalog.Catalog().Briefing)
}

// ProxySpawn (POST /proxySpawn) records the spawn command.
func (h *HTTPServer) ProxySpawn(ectx echo.Context) error {
	return h.record(ectx, "proxySpawn")
}

// ProxyDestroy (POST /proxyDestroy) records the destroy command.
func (h *HTTPServer) ProxyDestroy(ectx echo.Context) error {
	return h.record(ectx, "proxyDestroy")
}

// Notify (POST /{event}) records a notification.
func (h *HTTPServer) Notify(ectx echo.Context) error {
	return h.record(ectx, pathParam(ectx, "event"))
}

// ListEvents (GET /_events) returns recorded events oldest first; an empty store gives an empty list.
func (h *HTTPServer) ListEvents(ectx echo.Context) error {
	events, err := h.events.ListAllValues(ectx.Request().Context())
	if err != nil && !service.IsEntityNotFoundError(err) {
		return err
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ReceivedAt.Equal(events[j].ReceivedAt) {
			return events[i].ID < events[j].ID
		}
		return events[i].ReceivedAt.Before(events[j].ReceivedAt)
	})
	if events == nil {
		events = []domain.RecordedEvent{}
	}
	return ectx.JSON(http.StatusOK, map[string][]domain.RecordedEvent{"events": events})
}

// ClearEvents (DELETE /_events) forgets every recorded event.
func (h *HTTPServer) ClearEvents(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	events, err := h.events.ListAllValues(ctx)
	if err != nil && !service.IsEntityNotFoundError(err) {
		return err
	}
	for _, ev := range events {
		if err := h.events.DeleteValue(ctx, ev.ID); err != nil {
			return err
		}
	}
	level.Info(h.logger).Log("msg", "recorded events cleared", "count", len(events))
	return ectx.NoContent(http.StatusNoContent)
}

func (h *HTTPServer) record(ectx echo.Context, event string) error {
	var body map[string]any
	if err := json.NewDecoder(ectx.Request().Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return service.NewBadParameterError("request body is required", err)
		}
		return service.NewBadParameterError("invalid request body", err)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return service.NewInternalServerError("can't generate event id", err)
	}
	recorded := domain.RecordedEvent{
		ID:         id.String(),
		Event:      event,
		Path:       ectx.Request().URL.EscapedPath(),
		Body:       body,
		ReceivedAt: h.clock.Now(),
	}
	if err := h.events.WriteValue(ectx.Request().Context(), recorded.ID, recorded, h.eventTTLMs); err != nil {
		return err
	}

	level.Info(h.logger).Log("msg", "event recorded", "event", event, "id", recorded.ID,
		"request_id", ectx.Request().Header.Get(headerRequestID))
	return ectx.NoContent(http.StatusNoContent)
}

func (h *HTTPServer) logQuery(ectx echo.Context, endpoint string) {
	level.Debug(h.logger).Log("msg", "query", "endpoint", endpoint, "id", pathParam(ectx, "id"),
		"request_id", ectx.Request().Header.Get(headerRequestID))
}

// pathParam returns the decoded value of a path parameter. Echo routes on the raw path when it differs from the
// default encoding (for example an encoded "/"), and its params are still escaped in that case.
func pathParam(ectx echo.Context, name string) string {
	value := ectx.Param(name)
	if ectx.Request().URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
