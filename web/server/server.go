package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Canvas size limits accepted by the API
const (
	minCanvasSize = 16
	maxCanvasSize = 2000
)

// Server handles web requests for the Phong raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server. JSON scenes are looked up in scenesDir.
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the HTTP handler serving the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and JSON scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	mat := sceneObj.Sphere.Material
	response := map[string]interface{}{
		"scene": sceneObj.Name,
		"defaults": map[string]interface{}{
			"width":  sceneObj.CameraConfig.Width,
			"height": sceneObj.CameraConfig.Height,
		},
		"sphere": map[string]interface{}{
			"origin": sceneObj.Sphere.Origin,
			"radius": sceneObj.Sphere.Radius,
			"material": map[string]interface{}{
				"color":     [3]float64{mat.Color.R, mat.Color.G, mat.Color.B},
				"ambient":   mat.Ambient,
				"diffuse":   mat.Diffuse,
				"specular":  mat.Specular,
				"shininess": mat.Shininess,
			},
		},
		"light": map[string]interface{}{
			"position": sceneObj.Light.Position,
			"color":    [3]float64{sceneObj.Light.Color.R, sceneObj.Light.Color.G, sceneObj.Light.Color.B},
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minCanvasSize, "max": maxCanvasSize},
			"height": map[string]int{"min": minCanvasSize, "max": maxCanvasSize},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// createScene resolves a scene name against the built-ins and the scenes directory.
// Paths are not accepted from clients.
func (s *Server) createScene(sceneName string) (*scene.Scene, error) {
	for _, info := range listScenes(s.scenesDir) {
		if info.ID == sceneName {
			return scene.Resolve(sceneName, s.scenesDir)
		}
	}
	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, sceneName)
}

func listScenes(dir string) []scene.SceneInfo {
	scenes, err := scene.ListAllScenes(dir)
	if err != nil {
		log.Printf("Failed to list scenes in %s: %v", dir, err)
	}
	return scenes
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
