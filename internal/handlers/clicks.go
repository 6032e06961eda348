package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rohithgowthamg4927/clickweb/internal/analytics"
	"github.com/rohithgowthamg4927/clickweb/internal/messaging"
	"github.com/rohithgowthamg4927/clickweb/internal/store"
	"go.uber.org/zap"
)

// ClickHandler handles click event ingestion.
type ClickHandler struct {
	store              store.ClickStore
	publishClickLogged messaging.Publish[analytics.ClickLoggedEvent]
	logger             *zap.Logger
}

// NewClickHandler creates a new click ingestion handler.
func NewClickHandler(
	clickStore store.ClickStore,
	publishClickLogged messaging.Publish[analytics.ClickLoggedEvent],
	logger *zap.Logger,
) *ClickHandler {
	return &ClickHandler{
		store:              clickStore,
		publishClickLogged: publishClickLogged,
		logger:             logger,
	}
}

// LogClick validates a submitted event and writes it as one item to the
// click store. Validation checks presence of the six top-level fields only;
// no type or uniqueness checking happens here, and re-submitting an id
// overwrites the prior record without error.
func (h *ClickHandler) LogClick(ctx context.Context, req *LogClickRequest) (*LogClickResponse, error) {
	if missing := missingFields(&req.Body); len(missing) > 0 {
		return nil, huma.Error400BadRequest(
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
		)
	}

	item := store.ClickItem{
		ID:         req.Body.ID,
		Button:     req.Body.Button,
		Timestamp:  req.Body.Timestamp,
		PageURL:    req.Body.PageURL,
		DeviceType: req.Body.Device.DeviceType,
		Platform:   req.Body.Device.Platform,
		Browser:    req.Body.Device.Browser,
		City:       req.Body.Location.City,
		Country:    req.Body.Location.Country,
	}

	if err := h.store.Put(ctx, item); err != nil {
		h.logger.Error("failed to persist click",
			zap.String("id", item.ID),
			zap.String("button", item.Button),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("could not log click")
	}

	meta := RequestMetaFromContext(ctx)
	h.logger.Info("click logged",
		zap.String("id", item.ID),
		zap.String("button", item.Button),
		zap.String("clientIp", meta.ClientIP),
	)

	// Archive publish is best-effort: the click is already durable.
	logged := &analytics.ClickLoggedEvent{
		ID:         item.ID,
		Button:     item.Button,
		Timestamp:  item.Timestamp,
		PageURL:    item.PageURL,
		DeviceType: item.DeviceType,
		Platform:   item.Platform,
		Browser:    item.Browser,
		City:       item.City,
		Country:    item.Country,
		LoggedAt:   time.Now(),
	}
	if err := h.publishClickLogged(logged); err != nil {
		h.logger.Error("failed to publish click logged event",
			zap.String("id", item.ID),
			zap.Error(err),
		)
	}

	resp := &LogClickResponse{}
	resp.Body.Message = "Click logged successfully"

	return resp, nil
}

// missingFields returns the names of required top-level fields that are
// empty or null, in submission order.
func missingFields(body *ClickSubmission) []string {
	var missing []string

	if body.ID == "" {
		missing = append(missing, "id")
	}

	if body.Button == "" {
		missing = append(missing, "button")
	}

	if body.Timestamp == "" {
		missing = append(missing, "timestamp")
	}

	if body.PageURL == "" {
		missing = append(missing, "pageUrl")
	}

	if body.Device == nil {
		missing = append(missing, "device")
	}

	if body.Location == nil {
		missing = append(missing, "location")
	}

	return missing
}
