package server

import (
	"net/http"
	"strconv"

	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/material"
	"github.com/df07/diorama-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	ShapeIndex   int                    `json:"shapeIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Shadow       float64                `json:"shadow"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo describes a material for the inspector
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"diffuse":         mat.Diffuse.String(),
		"specular":        mat.Specular,
		"albedo":          mat.Albedo,
		"refractiveIndex": mat.RefractiveIndex,
		"emissive":        mat.Emissive.String(),
		"textured":        mat.Texture != nil,
	}
	if texture, ok := mat.Texture.(*material.ImageTexture); ok {
		properties["textureSize"] = [2]int{texture.Width, texture.Height}
	}
	return properties
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Cube:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["size"] = geom.Size
		return "cube", properties

	case *geometry.GroundPlane:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["size"] = geom.Size
		return "ground", properties

	default:
		return "unknown", properties
	}
}

// handleInspect reports what the primary ray through one pixel of a frame hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseFrameRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.loadScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	view, err := newView(sceneObj, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := renderer.Inspect(sceneObj, view.Camera, view.Light, pixelX, pixelY, req.Width, req.Height)
	if !result.Hit.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, ShapeIndex: -1})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(result.Shape)
	hit := result.Hit
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		ShapeIndex:   result.ShapeIndex,
		Point:        [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z},
		Normal:       [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z},
		Distance:     hit.Distance,
		Shadow:       result.ShadowFactor,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(hit.Material),
			"geometry": geometryProps,
		},
	})
}
