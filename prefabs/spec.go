package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/rotate/anim"
	"github.com/milk9111/rotate/logger"
)

// DemoFile is the scene spec shipped with the binary.
const DemoFile = "demo.yaml"

const (
	TimestepFixed = "fixed"
	TimestepWall  = "wall"
)

type DemoSpec struct {
	Name       string        `yaml:"name"`
	Window     WindowSpec    `yaml:"window"`
	Background YAMLColor     `yaml:"background"`
	Timestep   string        `yaml:"timestep"`
	Camera     CameraSpec    `yaml:"camera"`
	Grid       GridSpec      `yaml:"grid"`
	Axes       AxesSpec      `yaml:"axes"`
	Professor  ProfessorSpec `yaml:"professor"`
	Fish       FishSpec      `yaml:"fish"`
	Animation  anim.Tuning   `yaml:"animation"`
	Log        logger.Config `yaml:"log"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type CameraSpec struct {
	Position YAMLVec3 `yaml:"position"`
	LookAt   YAMLVec3 `yaml:"look_at"`
	NearClip float64  `yaml:"near_clip"`
	FarClip  float64  `yaml:"far_clip"`
	FovY     float64  `yaml:"fov_y"`
}

type GridSpec struct {
	HalfExtent float64   `yaml:"half_extent"`
	Spacing    float64   `yaml:"spacing"`
	Color      YAMLColor `yaml:"color"`
}

type AxesSpec struct {
	Length float64 `yaml:"length"`
}

type ProfessorSpec struct {
	Position YAMLVec3  `yaml:"position"`
	Size     YAMLVec3  `yaml:"size"`
	Color    YAMLColor `yaml:"color"`
}

type FishSpec struct {
	Scale float64   `yaml:"scale"`
	Size  YAMLVec3  `yaml:"size"`
	Color YAMLColor `yaml:"color"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadDemoSpec loads path, or the embedded demo.yaml when path is empty, and
// validates it.
func LoadDemoSpec(path string) (*DemoSpec, error) {
	var (
		spec DemoSpec
		err  error
	)
	if path == "" {
		spec, err = LoadSpec[DemoSpec](DemoFile)
	} else {
		spec, err = LoadSpecFile[DemoSpec](path)
	}
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", specName(path), err)
	}
	return &spec, nil
}

func specName(path string) string {
	if path == "" {
		return DemoFile
	}
	return path
}

// Validate rejects specs the demo cannot run with.
func (s *DemoSpec) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	switch s.Timestep {
	case TimestepFixed, TimestepWall:
	default:
		return fmt.Errorf("timestep must be %q or %q, got %q", TimestepFixed, TimestepWall, s.Timestep)
	}
	if s.Camera.NearClip <= 0 || s.Camera.FarClip <= s.Camera.NearClip {
		return fmt.Errorf("camera clip range invalid: near=%v far=%v", s.Camera.NearClip, s.Camera.FarClip)
	}
	if s.Grid.Spacing <= 0 || s.Grid.HalfExtent <= 0 {
		return fmt.Errorf("grid spacing and half_extent must be positive")
	}
	if s.Fish.Scale <= 0 {
		return fmt.Errorf("fish scale must be positive, got %v", s.Fish.Scale)
	}
	return s.Animation.Validate()
}

type YAMLVec3 struct {
	mgl64.Vec3
}

func (v *YAMLVec3) UnmarshalYAML(value *yaml.Node) error {
	var xs []float64
	if err := value.Decode(&xs); err != nil {
		return fmt.Errorf("vector must be a sequence of numbers: %w", err)
	}
	if len(xs) != 3 {
		return fmt.Errorf("vector needs 3 components, got %d", len(xs))
	}
	v.Vec3 = mgl64.Vec3{xs[0], xs[1], xs[2]}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c's colour, or fallback when none was configured.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
