package directions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campusnav/campusnav/pkg/cdm"
)

type countingProvider struct {
	calls int
	fail  bool
}

func (p *countingProvider) GetLeg(ctx context.Context, origin cdm.Coordinate, destination cdm.Coordinate, mode Mode) (*cdm.RouteLeg, error) {
	p.calls++

	if p.fail {
		return nil, errors.New("upstream down")
	}

	return &cdm.RouteLeg{
		Path:           []cdm.Coordinate{origin, destination},
		DistanceMeters: 250,
		DistanceText:   "0.3 km",
	}, nil
}

var (
	cacheTestOrigin      = cdm.Coordinate{Latitude: 45.4971, Longitude: -73.5788}
	cacheTestDestination = cdm.Coordinate{Latitude: 45.4591, Longitude: -73.6413}
)

func TestCachedProviderMemoises(t *testing.T) {
	upstream := &countingProvider{}
	cached := NewCachedProvider(upstream, time.Minute)

	first, err := cached.GetLeg(context.Background(), cacheTestOrigin, cacheTestDestination, ModeWalking)
	if err != nil {
		t.Fatalf("GetLeg: %v", err)
	}

	second, err := cached.GetLeg(context.Background(), cacheTestOrigin, cacheTestDestination, ModeWalking)
	if err != nil {
		t.Fatalf("GetLeg (cached): %v", err)
	}

	if upstream.calls != 1 {
		t.Errorf("upstream called %d times, want 1", upstream.calls)
	}
	if first.DistanceMeters != second.DistanceMeters || len(first.Path) != len(second.Path) {
		t.Errorf("cached leg differs from original: %+v vs %+v", first, second)
	}
}

func TestCachedProviderKeysByModeAndEndpoints(t *testing.T) {
	upstream := &countingProvider{}
	cached := NewCachedProvider(upstream, time.Minute)

	cached.GetLeg(context.Background(), cacheTestOrigin, cacheTestDestination, ModeWalking)
	cached.GetLeg(context.Background(), cacheTestOrigin, cacheTestDestination, ModeDriving)
	cached.GetLeg(context.Background(), cacheTestDestination, cacheTestOrigin, ModeWalking)

	if upstream.calls != 3 {
		t.Errorf("upstream called %d times, want 3 distinct fetches", upstream.calls)
	}
}

func TestCachedProviderDoesNotCacheFailures(t *testing.T) {
	upstream := &countingProvider{fail: true}
	cached := NewCachedProvider(upstream, time.Minute)

	if _, err := cached.GetLeg(context.Background(), cacheTestOrigin, cacheTestDestination, ModeWalking); err == nil {
		t.Fatal("expected upstream failure to propagate")
	}

	upstream.fail = false
	leg, err := cached.GetLeg(context.Background(), cacheTestOrigin, cacheTestDestination, ModeWalking)
	if err != nil || leg == nil {
		t.Fatalf("recovered upstream should serve the leg, got %v", err)
	}

	if upstream.calls != 2 {
		t.Errorf("upstream called %d times, want 2 (failure must not be cached)", upstream.calls)
	}
}
