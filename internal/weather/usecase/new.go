package usecase

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"travel-planner/internal/weather"
	pkgLog "travel-planner/pkg/log"
	"travel-planner/pkg/openmeteo"
)

// geoCacheSize bounds the geocode result cache. City queries repeat a lot
// while the user types, and the first candidate for a name never changes
// within a session.
const geoCacheSize = 128

type implUseCase struct {
	l          pkgLog.Logger
	geocoder   openmeteo.Geocoder
	forecaster openmeteo.Forecaster
	geoCache   *lru.Cache[string, openmeteo.Location]

	mu    sync.Mutex
	gen   uint64
	state weather.Snapshot
}

var _ weather.UseCase = (*implUseCase)(nil)

// New creates the weather lookup use case.
func New(l pkgLog.Logger, geocoder openmeteo.Geocoder, forecaster openmeteo.Forecaster) *implUseCase {
	cache, _ := lru.New[string, openmeteo.Location](geoCacheSize)
	return &implUseCase{
		l:          l,
		geocoder:   geocoder,
		forecaster: forecaster,
		geoCache:   cache,
		state:      weather.Snapshot{Status: weather.StatusIdle},
	}
}
