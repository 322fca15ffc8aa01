package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ljubanOpacic10/tiac-food-ordering/pkg/events"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const keepAliveInterval = 15 * time.Second

type (
	EventHandler interface {
		Stream(c *fiber.Ctx) error
	}

	eventHandler struct {
		hub *events.Hub
	}
)

func NewEventHandler(hub *events.Hub) EventHandler {
	return &eventHandler{hub: hub}
}

// Stream pushes table change events over server-sent events. Clients
// pass ?tables=voting_sessions,restaurants to narrow the feed; no
// filter means every table.
func (h *eventHandler) Stream(c *fiber.Ctx) error {
	var tables []string
	for _, t := range strings.Split(c.Query("tables"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tables = append(tables, t)
		}
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	sub := h.hub.Subscribe(tables...)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(sub)

		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		for {
			select {
			case event, ok := <-sub.C:
				if !ok {
					return
				}
				payload, err := json.Marshal(event)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
				if err := w.Flush(); err != nil {
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}
