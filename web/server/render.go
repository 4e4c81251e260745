package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string // Scene name (e.g., "default")
	Width  int    // Image width (0 = scene default)
	Height int    // Image height (0 = scene default)
	Format string // "ppm", "png" or "json"
}

// RenderResponse is the body of a render request with format=json
type RenderResponse struct {
	RenderID  string           `json:"renderId"`
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
	ElapsedMs int64            `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels       int `json:"totalPixels"`
	ShadedPixels      int `json:"shadedPixels"`
	MissedPixels      int `json:"missedPixels"`
	DegeneratePixels  int `json:"degeneratePixels"`
	AmbientOnlyPixels int `json:"ambientOnlyPixels"`
	DiffusePixels     int `json:"diffusePixels"`
	FullPhongPixels   int `json:"fullPhongPixels"`
}

// handleRender renders a scene and returns it as PPM, PNG or JSON
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sceneObj = sceneObj.WithSize(req.Width, req.Height)

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 50)
	logger := NewWebLogger(renderID, consoleChan)
	logger.Printf("Rendering scene %s at %dx%d\n", sceneObj.Name, sceneObj.CameraConfig.Width, sceneObj.CameraConfig.Height)

	// Use request context to stop rendering when the client disconnects
	startTime := time.Now()
	img, stats, err := renderer.NewRaytracer(sceneObj, logger).Render(r.Context())
	if err != nil {
		log.Printf("[%s] Render aborted: %v", renderID, err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": fmt.Sprintf("Render error: %v", err)})
		return
	}

	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch req.Format {
	case "ppm":
		w.Header().Set("Content-Type", "image/x-portable-pixmap")
		w.WriteHeader(http.StatusOK)
		if _, err := img.WriteTo(w); err != nil {
			log.Printf("[%s] Failed to write PPM: %v", renderID, err)
		}
	case "png":
		var buf bytes.Buffer
		if err := img.EncodePNG(&buf); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	case "json":
		imageData, err := s.canvasToBase64PNG(img)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			RenderID:  renderID,
			Scene:     sceneObj.Name,
			Width:     img.Width(),
			Height:    img.Height(),
			ImageData: imageData,
			Stats: Stats{
				TotalPixels:       stats.TotalPixels,
				ShadedPixels:      stats.ShadedPixels(),
				MissedPixels:      stats.MissedPixels,
				DegeneratePixels:  stats.DegeneratePixels,
				AmbientOnlyPixels: stats.AmbientOnlyPixels,
				DiffusePixels:     stats.DiffusePixels,
				FullPhongPixels:   stats.FullPhongPixels,
			},
			Console:   drainConsole(consoleChan),
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: "png"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}
	if format := query.Get("format"); format != "" {
		if format != "ppm" && format != "png" && format != "json" {
			return nil, fmt.Errorf("format must be ppm, png or json, got: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minCanvasSize, maxCanvasSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minCanvasSize, maxCanvasSize); err != nil {
		return nil, err
	}

	return req, nil
}

// canvasToBase64PNG converts a canvas to base64-encoded PNG
func (s *Server) canvasToBase64PNG(img *canvas.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
