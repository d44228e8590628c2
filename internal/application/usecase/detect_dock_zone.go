package usecase

import (
	"context"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// ZoneResult is the drop target under a pointer position.
// HotZone takes precedence over Area when both are set.
type ZoneResult struct {
	Area    *entity.DockArea
	HotZone *entity.HotZone
}

// IsEmpty reports whether nothing was found (no areas exist).
func (r ZoneResult) IsEmpty() bool {
	return r.Area == nil && r.HotZone == nil
}

// DetectDockZoneUseCase resolves pointer positions to dock areas and hot-zones.
type DetectDockZoneUseCase struct{}

// NewDetectDockZoneUseCase creates a new zone detector.
func NewDetectDockZoneUseCase() *DetectDockZoneUseCase {
	return &DetectDockZoneUseCase{}
}

// Detect returns the hot-zone under pos, if any, plus the landing area.
// origin maps layout coordinates into surface coordinates.
func (uc *DetectDockZoneUseCase) Detect(
	ctx context.Context,
	ws *entity.DockWorkspace,
	origin entity.Point,
	pos entity.Point,
) ZoneResult {
	if ws == nil {
		return ZoneResult{}
	}

	result := ZoneResult{
		Area:    uc.FindLandingArea(ws.Areas(), origin, pos),
		HotZone: uc.FindHotZone(ws.HotZones(), origin, pos),
	}

	log := logging.FromContext(ctx)
	if log.Trace().Enabled() {
		ev := log.Trace().Float64("x", pos.X).Float64("y", pos.Y)
		if result.Area != nil {
			ev = ev.Str("area_id", string(result.Area.ID))
		}
		if result.HotZone != nil {
			ev = ev.Str("hot_zone_edge", result.HotZone.Edge.String())
		}
		ev.Msg("dock zone detected")
	}

	return result
}

// FindLandingArea returns the area containing pos, or else the area whose
// centre is nearest to pos. The first containing area wins; on equal
// distances the first area in order wins. Returns nil when areas is empty.
func (*DetectDockZoneUseCase) FindLandingArea(
	areas []*entity.DockArea,
	origin entity.Point,
	pos entity.Point,
) *entity.DockArea {
	var closest *entity.DockArea
	closestDistance := math.MaxFloat64

	for _, area := range areas {
		bounds := area.Bounds.Offset(origin)
		if bounds.Contains(pos) {
			return area
		}

		distance := bounds.Center().DistanceTo(pos)
		if distance < closestDistance {
			closestDistance = distance
			closest = area
		}
	}

	return closest
}

// FindHotZone returns a copy of the first registered zone containing pos.
func (*DetectDockZoneUseCase) FindHotZone(
	zones []entity.HotZone,
	origin entity.Point,
	pos entity.Point,
) *entity.HotZone {
	for i := range zones {
		if zones[i].Bounds.Offset(origin).Contains(pos) {
			zone := zones[i]
			return &zone
		}
	}
	return nil
}
