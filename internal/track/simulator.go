// Package track simulates driver movement for the tracked order: a ticker
// jitters the driver coordinate, refreshes the ETA from remaining distance,
// and mirrors the position into Redis for external consumers.
package track

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"

	"quickeats/internal/domain"
	"quickeats/internal/order"
)

// jitterDegrees bounds the per-tick random walk on each axis: a step is
// uniform in (-jitterDegrees/2, +jitterDegrees/2).
const jitterDegrees = 0.001

// courierSpeedKmh is the assumed average speed for ETA estimates.
const courierSpeedKmh = 25.0

type Simulator struct {
	book     *order.Book
	rdb      *redis.Client
	logger   *log.Logger
	interval time.Duration
	rng      *rand.Rand
	now      func() time.Time
}

// New returns a simulator driving the book's tracking projection. rdb may be
// nil, in which case positions are not mirrored.
func New(book *order.Book, rdb *redis.Client, logger *log.Logger, interval time.Duration) *Simulator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Simulator{
		book:     book,
		rdb:      rdb,
		logger:   logger,
		interval: interval,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Run ticks until the context is cancelled. Each tick does O(1) work and
// never advances order status.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step(ctx)
		}
	}
}

// Step advances the simulation by one tick. A no-op unless an order is being
// tracked and has a driver assigned.
func (s *Simulator) Step(ctx context.Context) {
	o, ok := s.book.TrackedOrder()
	if !ok || o.Driver == nil {
		return
	}

	current := o.Driver.Location
	if tr := s.book.TrackingState(); tr.DriverLocation != nil {
		current = *tr.DriverLocation
	}

	next := domain.Coordinate{
		Lat: current.Lat + (s.rng.Float64()-0.5)*jitterDegrees,
		Lng: current.Lng + (s.rng.Float64()-0.5)*jitterDegrees,
	}
	s.book.UpdateDriverLocation(next)
	s.book.UpdateETA(etaText(haversineKm(next, o.DeliveryLocation)))

	if s.rdb != nil {
		key := "driver:" + o.Driver.ID
		err := s.rdb.HSet(ctx, key, map[string]interface{}{
			"lat":         next.Lat,
			"lng":         next.Lng,
			"last_update": s.now().Unix(),
		}).Err()
		if err != nil {
			s.logger.Printf("mirror %s to redis: %v", key, err)
		}
	}
}

func etaText(distanceKm float64) string {
	mins := int(math.Ceil(distanceKm / courierSpeedKmh * 60))
	if mins < 1 {
		mins = 1
	}
	return fmt.Sprintf("%d mins", mins)
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(a, b domain.Coordinate) float64 {
	const earthRadiusKm = 6371

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
