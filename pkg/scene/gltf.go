package scene

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/orb/pkg/math3d"
)

// Node names used in exported documents.
const (
	NodeOrb    = "orb"
	NodeLight  = "light"
	NodeFloor  = "floor"
	NodeCamera = "camera"
)

var (
	identityRotation = [4]float64{0, 0, 0, 1}
	unitScale        = [3]float64{1, 1, 1}
)

// Placement is a node read back from an exported document.
type Placement struct {
	Name     string
	Position math3d.Vec3
	Scale    float32
}

// Document builds a glTF document holding the scene primitives as named
// nodes and a perspective camera at eye looking at the origin.
// Spheres are uniformly scaled by their radius; the floor carries its
// normal and tile pattern in extras.
func (s Scene) Document(eye math3d.Vec3, aspect float32) *gltf.Document {
	sphereNode := func(name string, center math3d.Vec3, radius float32, color uint8) *gltf.Node {
		r := float64(radius)
		return &gltf.Node{
			Name:        name,
			Translation: vec3ToArray(center),
			Rotation:    identityRotation,
			Scale:       [3]float64{r, r, r},
			Extras: map[string]any{
				"shape": "sphere",
				"color": color,
			},
		}
	}

	yfov := 2 * math.Atan(1/float64(aspect))
	ratio := float64(aspect)
	zfar := 1000.0

	doc := &gltf.Document{
		Asset: gltf.Asset{
			Generator: "orb",
			Version:   "2.0",
		},
		Cameras: []*gltf.Camera{{
			Name: NodeCamera,
			Perspective: &gltf.Perspective{
				AspectRatio: &ratio,
				Yfov:        yfov,
				Znear:       0.001,
				Zfar:        &zfar,
			},
		}},
		Nodes: []*gltf.Node{
			sphereNode(NodeOrb, s.Orb.Center, s.Orb.Radius, ColorOrb),
			sphereNode(NodeLight, s.Light.Center, s.Light.Radius, ColorLight),
			{
				Name:        NodeFloor,
				Translation: vec3ToArray(s.Floor.Point),
				Rotation:    identityRotation,
				Scale:       unitScale,
				Extras: map[string]any{
					"shape":   "plane",
					"normal":  vec3ToArray(s.Floor.Normal),
					"checker": s.Checker.String(),
				},
			},
			{
				Name:        NodeCamera,
				Camera:      gltf.Index(0),
				Translation: vec3ToArray(eye),
				Rotation:    identityRotation,
				Scale:       unitScale,
				Extras: map[string]any{
					"lookAt": [3]float64{0, 0, 0},
				},
			},
		},
		Scene: gltf.Index(0),
		Scenes: []*gltf.Scene{{
			Name:  "orb",
			Nodes: []int{0, 1, 2, 3},
		}},
	}
	return doc
}

// ExportGLTF writes the scene to path. A .glb extension selects the
// binary container; anything else is written as JSON.
func (s Scene) ExportGLTF(path string, eye math3d.Vec3, aspect float32) error {
	doc := s.Document(eye, aspect)

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("save gltf: %w", err)
	}
	return nil
}

// ReadPlacements opens an exported document and returns its nodes.
func ReadPlacements(path string) ([]Placement, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	placements := make([]Placement, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		placements = append(placements, Placement{
			Name: n.Name,
			Position: math3d.V3(
				float32(n.Translation[0]),
				float32(n.Translation[1]),
				float32(n.Translation[2]),
			),
			Scale: float32(n.Scale[0]),
		})
	}
	return placements, nil
}

func vec3ToArray(v math3d.Vec3) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}
