package timezone

import (
	"sync"
	"time"

	"barbershop/config"
	"barbershop/shared/model"

	"github.com/rs/zerolog/log"
)

const fallbackLocation = "UTC"

// location resolves APP_TIMEZONE on first use. Calendar days, "today" and
// the past-slot checks of the booking flow are all evaluated in it.
var location = sync.OnceValue(func() *time.Location {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC")

		name = fallbackLocation
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
})

// Now returns the current time in the shop's timezone.
func Now() time.Time {
	return time.Now().In(location())
}

// Today returns the shop's current calendar day.
func Today() model.Date {
	return model.DateOf(Now())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Parse reads a wall-clock value as shop local time.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
