package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds recognised in floor-plan files
const (
	kindCorridor = "corridor"
	kindObstacle = "obstacle"
)

// FloorPlan is the walkable skeleton and the obstacles of one floor
type FloorPlan struct {
	Name      string    `json:"name"`
	Corridors []Point   `json:"corridors"`
	Obstacles [][]Point `json:"obstacles"`
}

// Bound covers every corridor point and obstacle corner.
func (fp *FloorPlan) Bound() orb.Bound {
	mp := make(orb.MultiPoint, 0, len(fp.Corridors)+4*len(fp.Obstacles))
	for _, p := range fp.Corridors {
		mp = append(mp, orb.Point{p.X, p.Y})
	}
	for _, obstacle := range fp.Obstacles {
		for _, p := range obstacle {
			mp = append(mp, orb.Point{p.X, p.Y})
		}
	}
	return mp.Bound()
}

// loadFloorPlansFromDir loads every GeoJSON file in dir, keyed by file name
// without extension.
func loadFloorPlansFromDir(dir string) (map[string]*FloorPlan, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	log.Printf("Loading floor plans from %d GeoJSON files...\n", len(files))

	plans := make(map[string]*FloorPlan, len(files))
	for _, file := range files {
		plan, err := LoadFloorPlan(file)
		if err != nil {
			log.Printf("⚠️  Failed to load %s: %v\n", file, err)
			continue
		}
		plans[plan.Name] = plan
		log.Printf("   ✅ Loaded floor %q: %d corridor points, %d obstacles\n",
			plan.Name, len(plan.Corridors), len(plan.Obstacles))
	}

	log.Printf("Total floor plans loaded: %d\n", len(plans))
	return plans, nil
}

// LoadFloorPlan reads one floor-plan FeatureCollection.
func LoadFloorPlan(file string) (*FloorPlan, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return parseFloorPlan(name, data)
}

func parseFloorPlan(name string, data []byte) (*FloorPlan, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GeoJSON: %w", err)
	}

	plan := &FloorPlan{Name: name, Corridors: []Point{}, Obstacles: [][]Point{}}
	for i, feature := range fc.Features {
		kind, _ := feature.Properties["kind"].(string)
		switch kind {
		case kindCorridor:
			points, err := geometryPoints(feature.Geometry)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			plan.Corridors = append(plan.Corridors, points...)
		case kindObstacle:
			points, err := geometryPoints(feature.Geometry)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			plan.Obstacles = append(plan.Obstacles, points)
		default:
			log.Printf("⚠️  Skipping feature %d of %s with kind %q\n", i, name, kind)
		}
	}

	if len(plan.Corridors) < 2 {
		return nil, fmt.Errorf("floor %q: %w", name, ErrInvalidSkeleton)
	}
	return plan, nil
}

// geometryPoints flattens a feature geometry into ordered points. A closed
// polygon ring loses its repeated closing point.
func geometryPoints(geometry orb.Geometry) ([]Point, error) {
	switch g := geometry.(type) {
	case orb.Point:
		return []Point{fromOrb(g)}, nil
	case orb.MultiPoint:
		return fromOrbPoints(g), nil
	case orb.LineString:
		return fromOrbPoints(g), nil
	case orb.Polygon:
		if len(g) == 0 {
			return nil, fmt.Errorf("empty polygon")
		}
		// First ring is the outer boundary
		ring := g[0]
		if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
			ring = ring[:len(ring)-1]
		}
		return fromOrbPoints(ring), nil
	case nil:
		return nil, fmt.Errorf("missing geometry")
	}
	return nil, fmt.Errorf("unsupported geometry %s", geometry.GeoJSONType())
}

func fromOrb(p orb.Point) Point {
	return Point{X: p.X(), Y: p.Y()}
}

func fromOrbPoints(points []orb.Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		out = append(out, fromOrb(p))
	}
	return out
}
