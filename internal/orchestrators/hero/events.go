package hero

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/heroquest-tracker/internal/entities"
)

// publish notifies the event bus, if any, with a copy of hero as the source
func (o *orchestrator) publish(ctx context.Context, eventType string, hero *entities.Hero, action string) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, hero.Clone(), nil)
	if action != "" {
		event.Context().Set(ContextKeyAction, action)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to publish hero event",
			"event_type", eventType,
			"hero_id", hero.ID,
			"error", err)
	}
}
