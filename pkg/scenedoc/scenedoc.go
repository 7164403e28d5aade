// Package scenedoc loads the external scene description spec.md §6
// defines: a document with four top-level collections (lights, materials,
// geometry, cameras), each a mapping from name to a typed record. Decoding
// uses gopkg.in/yaml.v3, matching the scene-document format the original
// engine's Node-based config loader consumes
// (original_source/path-tracer/core/camera.cc's Camera(const Node&)).
package scenedoc

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/quietarc/tracepath/pkg/arealight"
	"github.com/quietarc/tracepath/pkg/camera"
	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/geom"
	"github.com/quietarc/tracepath/pkg/material"
)

// ConfigError wraps a document failure: a missing field, unknown type tag,
// or malformed value. It is always fatal and always surfaced before
// rendering begins, matching spec.md §7's ConfigError taxonomy entry.
type ConfigError struct {
	Context string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scenedoc: %s: %v", e.Context, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrf(context, format string, args ...interface{}) error {
	return &ConfigError{Context: context, Err: fmt.Errorf(format, args...)}
}

// document is the raw YAML shape, decoded before any record is validated
// or resolved against the others.
type document struct {
	Materials map[string]materialRecord `yaml:"materials"`
	Lights    map[string]lightRecord    `yaml:"lights"`
	Geometry  map[string]geometryRecord `yaml:"geometry"`
	Cameras   map[string]cameraRecord   `yaml:"cameras"`
}

type materialRecord struct {
	Type   string    `yaml:"type"`
	Albedo []float64 `yaml:"albedo"`
	Tint   []float64 `yaml:"tint"`
}

type lightRecord struct {
	Type     string    `yaml:"type"`
	Radiance []float64 `yaml:"radiance"`
}

type geometryRecord struct {
	Type     string    `yaml:"type"`
	Center   []float64 `yaml:"center"`
	Normal   []float64 `yaml:"normal"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
	Light    string    `yaml:"light"`
}

type cameraRecord struct {
	Type        string    `yaml:"type"`
	Translate   []float64 `yaml:"translate"`
	RotateAngle float64   `yaml:"rotateAngle"`
	RotateAxis  []float64 `yaml:"rotateAxis"`
	Objects     []string  `yaml:"objects"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FOV         float64   `yaml:"fov"`
	FocalLength float64   `yaml:"focalLength"`
	FStop       float64   `yaml:"fStop"`

	SamplesPerPixel int     `yaml:"samplesPerPixel"`
	FilterWidth     float64 `yaml:"filterWidth"`
	MasterSeed      uint32  `yaml:"masterSeed"`
	MaxThreads      int     `yaml:"maxThreads"`
}

// ResolvedCamera is one cameras-collection entry, fully resolved: a
// ready-to-use camera.Config and the Geoms its `objects` list names.
type ResolvedCamera struct {
	Config  camera.Config
	Objects []core.Geom
}

// Scene is a fully-resolved scene document: every geometry record built
// into a concrete core.Geom (keyed by name, materials and lights already
// attached), and every camera record resolved into a ResolvedCamera.
type Scene struct {
	Geometry map[string]core.Geom
	Cameras  map[string]ResolvedCamera
}

// Load decodes and resolves a scene document. Any missing required field,
// unknown type tag, or malformed record returns a *ConfigError; the
// renderer must not start if Load fails.
func Load(data []byte) (*Scene, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, configErrf("document", "invalid YAML: %w", err)
	}

	materials, err := buildMaterials(doc.Materials)
	if err != nil {
		return nil, err
	}

	geometry, err := buildGeometry(doc.Geometry, materials)
	if err != nil {
		return nil, err
	}

	if err := attachLights(doc.Lights, doc.Geometry, geometry); err != nil {
		return nil, err
	}

	cameras, err := buildCameras(doc.Cameras, geometry)
	if err != nil {
		return nil, err
	}

	return &Scene{Geometry: geometry, Cameras: cameras}, nil
}

func buildMaterials(records map[string]materialRecord) (map[string]core.Material, error) {
	out := make(map[string]core.Material, len(records))
	for name, rec := range records {
		switch rec.Type {
		case "lambertian":
			albedo, err := toVec(rec.Albedo)
			if err != nil {
				return nil, configErrf("materials."+name, "albedo: %w", err)
			}
			out[name] = material.NewLambertian(albedo)
		case "mirror":
			tint, err := toVec(rec.Tint)
			if err != nil {
				return nil, configErrf("materials."+name, "tint: %w", err)
			}
			out[name] = material.NewMirror(tint)
		case "":
			return nil, configErrf("materials."+name, "missing required field \"type\"")
		default:
			return nil, configErrf("materials."+name, "unknown material type %q", rec.Type)
		}
	}
	return out, nil
}

func buildGeometry(records map[string]geometryRecord, materials map[string]core.Material) (map[string]core.Geom, error) {
	out := make(map[string]core.Geom, len(records))
	for name, rec := range records {
		var mat core.Material
		if rec.Material != "" {
			var ok bool
			mat, ok = materials[rec.Material]
			if !ok {
				return nil, configErrf("geometry."+name, "unknown material %q", rec.Material)
			}
		}

		switch rec.Type {
		case "sphere":
			center, err := toVec(rec.Center)
			if err != nil {
				return nil, configErrf("geometry."+name, "center: %w", err)
			}
			if rec.Radius <= 0 {
				return nil, configErrf("geometry."+name, "radius must be positive, got %g", rec.Radius)
			}
			out[name] = geom.NewSphere(center, rec.Radius, mat, nil)
		case "disc":
			center, err := toVec(rec.Center)
			if err != nil {
				return nil, configErrf("geometry."+name, "center: %w", err)
			}
			normal, err := toVec(rec.Normal)
			if err != nil {
				return nil, configErrf("geometry."+name, "normal: %w", err)
			}
			if rec.Radius <= 0 {
				return nil, configErrf("geometry."+name, "radius must be positive, got %g", rec.Radius)
			}
			out[name] = geom.NewDisc(center, normal, rec.Radius, mat, nil)
		case "":
			return nil, configErrf("geometry."+name, "missing required field \"type\"")
		default:
			return nil, configErrf("geometry."+name, "unknown geometry type %q", rec.Type)
		}
	}
	return out, nil
}

// attachLights builds each light record and assigns it onto the geometry
// record(s) whose "light" field names it. This runs after buildGeometry
// since an AreaLight's shape is the already-constructed concrete Geom.
func attachLights(lightRecords map[string]lightRecord, geomRecords map[string]geometryRecord, geometry map[string]core.Geom) error {
	lights := make(map[string]*arealight.DiffuseAreaLight, len(lightRecords))
	for name, rec := range lightRecords {
		switch rec.Type {
		case "diffuse", "":
			radiance, err := toVec(rec.Radiance)
			if err != nil {
				return configErrf("lights."+name, "radiance: %w", err)
			}
			lights[name] = &arealight.DiffuseAreaLight{Radiance: radiance}
		default:
			return configErrf("lights."+name, "unknown light type %q", rec.Type)
		}
	}

	for name, rec := range geomRecords {
		if rec.Light == "" {
			continue
		}
		light, ok := lights[rec.Light]
		if !ok {
			return configErrf("geometry."+name, "unknown light %q", rec.Light)
		}
		g := geometry[name]
		switch shape := g.(type) {
		case *geom.Sphere:
			light.Shape = shape
			shape.Light = light
		case *geom.Disc:
			light.Shape = shape
			shape.Light = light
		default:
			return configErrf("geometry."+name, "geometry type does not support area lights")
		}
	}
	return nil
}

func buildCameras(records map[string]cameraRecord, geometry map[string]core.Geom) (map[string]ResolvedCamera, error) {
	out := make(map[string]ResolvedCamera, len(records))
	for name, rec := range records {
		if rec.Type != "" && rec.Type != "persp" {
			return nil, configErrf("cameras."+name, "unknown camera type %q", rec.Type)
		}
		if rec.Width <= 0 || rec.Height <= 0 {
			return nil, configErrf("cameras."+name, "width and height must be positive")
		}

		translate, err := toVecOrZero(rec.Translate)
		if err != nil {
			return nil, configErrf("cameras."+name, "translate: %w", err)
		}
		rotateAxis, err := toVecOrZero(rec.RotateAxis)
		if err != nil {
			return nil, configErrf("cameras."+name, "rotateAxis: %w", err)
		}

		objects := make([]core.Geom, 0, len(rec.Objects))
		for _, objName := range rec.Objects {
			g, ok := geometry[objName]
			if !ok {
				return nil, configErrf("cameras."+name, "unknown geometry %q in objects", objName)
			}
			objects = append(objects, g)
		}

		focalLength := rec.FocalLength
		if focalLength <= 0 {
			focalLength = 1.0
		}
		fStop := rec.FStop
		if fStop <= 0 {
			fStop = 1e9 // effectively pinhole: lensRadius collapses to ~0
		}
		spp := rec.SamplesPerPixel
		if spp <= 0 {
			spp = 1
		}
		fw := rec.FilterWidth
		if fw <= 0 {
			fw = 2.0
		}

		out[name] = ResolvedCamera{
			Config: camera.Config{
				Width:           rec.Width,
				Height:          rec.Height,
				FOV:             rec.FOV,
				FocalLength:     focalLength,
				FStop:           fStop,
				SamplesPerPixel: spp,
				FilterWidth:     fw,
				MasterSeed:      rec.MasterSeed,
				MaxThreads:      rec.MaxThreads,
				Translate:       translate,
				RotateAxis:      rotateAxis,
				RotateAngle:     rec.RotateAngle,
			},
			Objects: objects,
		}
	}
	return out, nil
}

func toVec(xyz []float64) (core.Vec, error) {
	if len(xyz) != 3 {
		return core.Vec{}, fmt.Errorf("expected 3 components, got %d", len(xyz))
	}
	return core.NewVec(xyz[0], xyz[1], xyz[2]), nil
}

func toVecOrZero(xyz []float64) (core.Vec, error) {
	if len(xyz) == 0 {
		return core.Vec{}, nil
	}
	return toVec(xyz)
}
