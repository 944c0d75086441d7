package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouteRequest struct {
	Floor     string    `json:"floor,omitempty"`     // Name of a loaded floor plan
	Start     Point     `json:"start"`
	End       Point     `json:"end"`
	Corridors []Point   `json:"corridors,omitempty"` // Inline skeleton, used when floor is empty
	Obstacles [][]Point `json:"obstacles,omitempty"` // Inline obstacles, used when floor is empty
}

type RouteResponse struct {
	Path      []Point `json:"path"`
	Success   bool    `json:"success"`
	Message   string  `json:"message,omitempty"`
	ErrorKind string  `json:"errorKind,omitempty"`
	Length    float64 `json:"length,omitempty"`
}

var (
	addr         = flag.String("addr", ":8080", "HTTP network address")
	floorPlanDir = flag.String("floorplans", "floorplans", "directory of <floor>.geojson floor plans")
)

var (
	floorPlans     = map[string]*FloorPlan{}
	floorPlanMutex sync.RWMutex
)

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func lookupFloorPlan(name string) (*FloorPlan, bool) {
	floorPlanMutex.RLock()
	defer floorPlanMutex.RUnlock()
	plan, ok := floorPlans[name]
	return plan, ok
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// POST /route - Compute a route on a loaded or inline floor plan
func routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   Start: (%.2f, %.2f)\n", req.Start.X, req.Start.Y)
	log.Printf("   End:   (%.2f, %.2f)\n", req.End.X, req.End.Y)

	var plan *FloorPlan
	switch {
	case req.Floor != "":
		var ok bool
		if plan, ok = lookupFloorPlan(req.Floor); !ok {
			log.Printf("❌ Unknown floor %q\n", req.Floor)
			http.Error(w, "Unknown floor", http.StatusNotFound)
			return
		}
		log.Printf("   Floor: %s\n", plan.Name)
	case len(req.Corridors) > 0:
		plan = &FloorPlan{Name: "inline", Corridors: req.Corridors, Obstacles: req.Obstacles}
		log.Printf("   Inline plan: %d corridor points, %d obstacles\n", len(req.Corridors), len(req.Obstacles))
	default:
		log.Println("❌ Neither floor nor corridors given")
		http.Error(w, "Request needs a floor or corridors", http.StatusBadRequest)
		return
	}

	started := time.Now()
	path, err := ComputeRoute(req.Start, req.End, plan.Corridors, plan.Obstacles)
	observeRoute(started, err)

	if err != nil {
		log.Printf("❌ No route: %v\n", err)
		writeJSON(w, http.StatusOK, RouteResponse{
			Path:      []Point{},
			Success:   false,
			Message:   err.Error(),
			ErrorKind: ErrorKind(err),
		})
		return
	}

	length := RouteLength(path)
	log.Printf("✅ Path found with %d waypoints, length %.2f\n", len(path), length)
	writeJSON(w, http.StatusOK, RouteResponse{
		Path:    path,
		Success: true,
		Length:  length,
	})
}

// GET /floorplan?floor=NAME - Corridor graph edges as line segments for visualization
func floorPlanHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	plan, ok := lookupFloorPlan(r.URL.Query().Get("floor"))
	if !ok {
		http.Error(w, "Unknown floor", http.StatusNotFound)
		return
	}

	obstacles, err := NewObstacles(plan.Obstacles)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"success":   false,
			"message":   err.Error(),
			"errorKind": ErrorKind(err),
		})
		return
	}

	graph, err := BuildCorridorGraph(plan.Corridors, NewObstacleIndex(obstacles))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"success":   false,
			"message":   err.Error(),
			"errorKind": ErrorKind(err),
		})
		return
	}

	lines := make([][]Point, 0, graph.EdgeCount())
	for _, edge := range graph.Edges() {
		lines = append(lines, []Point{edge.P1, edge.P2})
	}

	bound := plan.Bound()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"floor":     plan.Name,
		"lines":     lines,
		"obstacles": plan.Obstacles,
		"numNodes":  graph.VertexCount(),
		"numEdges":  len(lines),
		"boundingBox": map[string]float64{
			"minX": bound.Min.X(),
			"minY": bound.Min.Y(),
			"maxX": bound.Max.X(),
			"maxY": bound.Max.Y(),
		},
	})
}

// POST /reloadFloorPlans - Reread the floor-plan directory
func reloadFloorPlansHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("🔄 Reload floor plans request received")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	plans, err := loadFloorPlansFromDir(*floorPlanDir)
	if err != nil {
		log.Printf("❌ Reload failed: %v\n", err)
		http.Error(w, "Could not read floor plan directory", http.StatusInternalServerError)
		return
	}

	floorPlanMutex.Lock()
	floorPlans = plans
	floorPlanMutex.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"floors":  floorNames(),
	})
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	floors := floorNames()

	status := "ready"
	if len(floors) == 0 {
		status = "no floor plans loaded"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": status,
		"floors": floors,
	})
}

func floorNames() []string {
	floorPlanMutex.RLock()
	defer floorPlanMutex.RUnlock()

	names := make([]string, 0, len(floorPlans))
	for name := range floorPlans {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func main() {
	flag.Parse()

	log.Println("========================================")
	log.Println("🚀 Corridor Route Planner Server")
	log.Println("========================================")

	if plans, err := loadFloorPlansFromDir(*floorPlanDir); err == nil {
		floorPlanMutex.Lock()
		floorPlans = plans
		floorPlanMutex.Unlock()
	} else {
		log.Printf("⚠️  Could not load floor plans from %s: %v\n", *floorPlanDir, err)
	}
	if len(floorNames()) == 0 {
		log.Println("ℹ️  No floor plans loaded, only inline routes will work")
	}
	log.Println("")

	http.HandleFunc("/route", corsMiddleware(routeHandler))
	http.HandleFunc("/floorplan", corsMiddleware(floorPlanHandler))
	http.HandleFunc("/reloadFloorPlans", corsMiddleware(reloadFloorPlansHandler))
	http.HandleFunc("/health", corsMiddleware(healthHandler))
	http.Handle("/metrics", promhttp.Handler())

	log.Printf("Server starting on %s\n", *addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /route              - Compute route with start and end points")
	log.Println("  GET  /floorplan          - Get corridor graph edges for visualization")
	log.Println("  POST /reloadFloorPlans   - Reload floor plans from disk")
	log.Println("  GET  /health             - Check server status")
	log.Println("  GET  /metrics            - Prometheus metrics")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}
