package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"travel-planner/internal/weather"
	"travel-planner/pkg/openmeteo"
)

// SetCity records the new city text and runs one derivation pass. The
// trigger is re-entrant: a newer SetCity may land while this one is still
// talking to the network, so every write from the network path re-checks
// the generation captured here and stale responses are dropped.
func (uc *implUseCase) SetCity(ctx context.Context, city string) weather.Snapshot {
	uc.mu.Lock()
	uc.gen++
	gen := uc.gen
	uc.state.City = city

	switch {
	case city == "":
		uc.state = weather.Snapshot{Status: weather.StatusIdle}
		defer uc.mu.Unlock()
		return uc.snapshotLocked()

	case utf8.RuneCountInString(city) < weather.MinQueryLen:
		uc.state.Location = nil
		uc.state.Days = nil
		uc.state.Err = ""
		uc.state.Status = weather.StatusDebounced
		defer uc.mu.Unlock()
		return uc.snapshotLocked()
	}

	uc.state.Err = ""
	uc.state.Status = weather.StatusResolving
	uc.mu.Unlock()

	uc.resolve(ctx, city, gen)
	return uc.Snapshot(ctx)
}

// Snapshot returns a copy of the current lookup state.
func (uc *implUseCase) Snapshot(ctx context.Context) weather.Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

func (uc *implUseCase) snapshotLocked() weather.Snapshot {
	snap := uc.state
	if uc.state.Location != nil {
		loc := *uc.state.Location
		snap.Location = &loc
	}
	if uc.state.Days != nil {
		snap.Days = make([]weather.Day, len(uc.state.Days))
		copy(snap.Days, uc.state.Days)
	}
	return snap
}

// resolve runs the two-stage pipeline: geocode the raw text, then fetch the
// daily forecast for the first candidate.
func (uc *implUseCase) resolve(ctx context.Context, city string, gen uint64) {
	loc, err := uc.locate(ctx, city)
	if err != nil {
		uc.apply(ctx, gen, func(s *weather.Snapshot) {
			s.Location = nil
			s.Days = nil
			s.Err = err.Error()
			s.Status = weather.StatusFailed
		})
		return
	}

	resolved := &weather.ResolvedLocation{
		Name:      loc.Name,
		Flag:      weather.CountryFlag(loc.CountryCode),
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timezone:  loc.Timezone,
	}

	daily, err := uc.forecaster.DailyForecast(ctx, loc.Latitude, loc.Longitude, loc.Timezone)
	if err != nil {
		uc.l.Errorf(ctx, "weather: forecast for %q failed: %v", city, err)
		// The resolved place name may stay visible, the forecast must not.
		uc.apply(ctx, gen, func(s *weather.Snapshot) {
			s.Location = resolved
			s.Days = nil
			s.Err = weather.ErrLookupFailed.Error()
			s.Status = weather.StatusFailed
		})
		return
	}

	days := buildDays(daily)
	if uc.apply(ctx, gen, func(s *weather.Snapshot) {
		s.Location = resolved
		s.Days = days
		s.Err = ""
		s.Status = weather.StatusResolved
	}) {
		uc.l.Infof(ctx, "weather: resolved %q to %s (%d days)", city, loc.Name, len(days))
	}
}

// locate returns the first geocoding candidate for the city text, going
// through the LRU cache first. Transport failures and empty candidate
// lists both read as "not found" class errors for the caller.
func (uc *implUseCase) locate(ctx context.Context, city string) (openmeteo.Location, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if loc, ok := uc.geoCache.Get(key); ok {
		return loc, nil
	}

	candidates, err := uc.geocoder.Search(ctx, city)
	if err != nil {
		uc.l.Errorf(ctx, "weather: geocoding %q failed: %v", city, err)
		return openmeteo.Location{}, weather.ErrLookupFailed
	}
	if len(candidates) == 0 {
		return openmeteo.Location{}, weather.ErrCityNotFound
	}

	// First candidate only, no ranking or disambiguation.
	loc := candidates[0]
	uc.geoCache.Add(key, loc)
	return loc, nil
}

// apply mutates the state only when gen is still the current generation.
// Responses from superseded triggers are dropped silently.
func (uc *implUseCase) apply(ctx context.Context, gen uint64, mutate func(*weather.Snapshot)) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.gen {
		uc.l.Debugf(ctx, "weather: dropped stale response (trigger %d, current %d)", gen, uc.gen)
		return false
	}
	mutate(&uc.state)
	return true
}

func buildDays(daily openmeteo.Daily) []weather.Day {
	days := make([]weather.Day, daily.Len())
	for i := range days {
		days[i] = weather.Day{
			Date:    daily.Time[i],
			Label:   weather.DayLabel(i, daily.Time[i]),
			Code:    daily.WeatherCode[i],
			Icon:    weather.Icon(daily.WeatherCode[i]),
			TempMin: daily.TemperatureMin[i],
			TempMax: daily.TemperatureMax[i],
		}
	}
	return days
}
