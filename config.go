package cairn

import (
	"errors"
	"fmt"
	"os"

	"cogentcore.org/core/math32"
	"github.com/go-playground/validator/v10"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure from LoadConfig.
var ErrInvalidConfig = errors.New("cairn: invalid config")

// easings maps config names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":        ease.Linear,
	"in_quad":       ease.InQuad,
	"out_quad":      ease.OutQuad,
	"in_out_quad":   ease.InOutQuad,
	"in_cubic":      ease.InCubic,
	"out_cubic":     ease.OutCubic,
	"in_out_cubic":  ease.InOutCubic,
	"in_quart":      ease.InQuart,
	"out_quart":     ease.OutQuart,
	"in_out_quart":  ease.InOutQuart,
	"in_sine":       ease.InSine,
	"out_sine":      ease.OutSine,
	"in_out_sine":   ease.InOutSine,
	"in_expo":       ease.InExpo,
	"out_expo":      ease.OutExpo,
	"in_out_expo":   ease.InOutExpo,
	"in_bounce":     ease.InBounce,
	"out_bounce":    ease.OutBounce,
	"in_out_bounce": ease.InOutBounce,
}

// validate is the shared validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
	err := validate.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
		_, ok := easings[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("cairn: register easing validation: %v", err))
	}
}

// Config describes a scene: debug switch, units, camera framing and the
// initial marker and annotation trees.
type Config struct {
	Debug             bool            `yaml:"debug"`
	LengthUnit        LengthUnit      `yaml:"length_unit" validate:"omitempty,oneof=m ft in"`
	LengthUnitDisplay LengthUnit      `yaml:"length_unit_display" validate:"omitempty,oneof=m ft in"`
	CollapseThreshold float32         `yaml:"collapse_threshold" validate:"gte=0"`
	Animation         AnimationConfig `yaml:"animation"`
	Markers           []MarkerSpec    `yaml:"markers" validate:"dive"`
	Annotations       []MarkerSpec    `yaml:"annotations" validate:"dive"`
}

// AnimationConfig configures camera framing moves.
type AnimationConfig struct {
	Duration float32 `yaml:"duration" validate:"gt=0"`
	Easing   string  `yaml:"easing" validate:"omitempty,easing"`
}

// MarkerSpec is the serialized form of a marker and its children. Vectors
// are [x, y, z] triples.
type MarkerSpec struct {
	Description       string       `yaml:"description"`
	Position          []float32    `yaml:"position" validate:"omitempty,len=3"`
	Offset            []float32    `yaml:"offset" validate:"omitempty,len=3"`
	CameraPosition    []float32    `yaml:"camera_position" validate:"omitempty,len=3"`
	CameraTarget      []float32    `yaml:"camera_target" validate:"omitempty,len=3"`
	Radius            *float32     `yaml:"radius" validate:"omitempty,gt=0"`
	CollapseThreshold *float32     `yaml:"collapse_threshold" validate:"omitempty,gte=0"`
	Visible           *bool        `yaml:"visible"`
	Children          []MarkerSpec `yaml:"children" validate:"dive"`
}

// DefaultConfig returns the configuration used for keys a document omits.
func DefaultConfig() *Config {
	return &Config{
		LengthUnit:        LengthUnitMeter,
		LengthUnitDisplay: LengthUnitMeter,
		CollapseThreshold: DefaultCollapseThreshold,
		Animation: AnimationConfig{
			Duration: DefaultFrameDuration,
			Easing:   "out_quart",
		},
	}
}

// LoadConfig parses a YAML document over DefaultConfig and validates it.
func LoadConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate checks the configuration. Failures wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationError(err))
	}
	return nil
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "len":
			return fmt.Errorf("%s: must have %s components", field, e.Param())
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, e.Param())
		case "gt", "gte":
			return fmt.Errorf("%s: must be %s %s", field, e.Tag(), e.Param())
		case "easing":
			return fmt.Errorf("%s: unknown easing %q", field, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}

// Easing returns the configured easing function.
func (c *Config) Easing() ease.TweenFunc {
	if fn, ok := easings[c.Animation.Easing]; ok {
		return fn
	}
	return DefaultFrameEasing
}

// NewViewAnimator returns an animator for view using the configured
// duration and easing.
func (c *Config) NewViewAnimator(view *View) *ViewAnimator {
	a := NewViewAnimator(view)
	a.Duration = c.Animation.Duration
	a.Easing = c.Easing()
	return a
}

// Apply configures s and attaches the configured marker and annotation
// trees under its roots.
func (c *Config) Apply(s *Scene) {
	s.SetDebugMode(c.Debug)
	s.SetLengthUnit(c.LengthUnit, c.LengthUnitDisplay)
	for i := range c.Markers {
		s.Markers().Add(c.Markers[i].Build(c.CollapseThreshold))
	}
	for i := range c.Annotations {
		s.Annotations().Add(c.Annotations[i].Build(c.CollapseThreshold))
	}
}

// Build creates the marker tree described by ms. collapseThreshold is used
// where ms leaves it unset.
func (ms *MarkerSpec) Build(collapseThreshold float32) *Marker {
	args := MarkerArgs{
		Description:       ms.Description,
		Position:          vec3FromSlice(ms.Position),
		CameraPosition:    vec3FromSlice(ms.CameraPosition),
		CameraTarget:      vec3FromSlice(ms.CameraTarget),
		Radius:            ms.Radius,
		CollapseThreshold: ms.CollapseThreshold,
	}
	if args.CollapseThreshold == nil {
		args.CollapseThreshold = &collapseThreshold
	}
	if o := vec3FromSlice(ms.Offset); o != nil {
		args.Offset = *o
	}
	m := NewMarker(args)
	if ms.Visible != nil {
		m.SetVisible(*ms.Visible)
	}
	for i := range ms.Children {
		m.Add(ms.Children[i].Build(collapseThreshold))
	}
	return m
}

// vec3FromSlice converts an [x, y, z] triple; anything else yields nil.
func vec3FromSlice(v []float32) *math32.Vector3 {
	if len(v) != 3 {
		return nil
	}
	p := math32.Vec3(v[0], v[1], v[2])
	return &p
}
