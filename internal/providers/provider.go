package providers

import (
	"context"

	domaingames "mlb-insights-service/internal/domain/games"
)

// ScheduleProvider defines how upstream schedule data is fetched.
// start and end are inclusive YYYY-MM-DD bounds; providers return every
// schedule row in the range, completed or not, in upstream order.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error)
}
