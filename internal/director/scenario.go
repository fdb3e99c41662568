package director

// Scenario is a declarative animation timeline for a video.
type Scenario struct {
	Version        string  `yaml:"version"`
	FPS            int     `yaml:"fps,omitempty"`
	TimeResolution float64 `yaml:"time_resolution,omitempty"`
	TotalDuration  float64 `yaml:"total_duration,omitempty"`
	Output         string  `yaml:"output,omitempty"`

	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Background string `yaml:"background,omitempty"`

	Backdrop *Backdrop `yaml:"backdrop,omitempty"`
	QRLink   string    `yaml:"qr_link,omitempty"`

	Objects []ObjectSpec `yaml:"objects"`
	Steps   []Step       `yaml:"steps"`
}

// Backdrop references a PDF page or an image drawn behind the scene.
type Backdrop struct {
	Input string `yaml:"input"`
	Page  int    `yaml:"page"` // zero-based
	DPI   int    `yaml:"dpi,omitempty"`
}

// ObjectSpec declares a primitive object and its initial properties.
type ObjectSpec struct {
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"` // cube, sphere, grid, line

	Size       float64   `yaml:"size,omitempty"`
	Resolution int       `yaml:"resolution,omitempty"` // sphere parallels / grid cells
	From       []float64 `yaml:"from,omitempty"`       // line start
	To         []float64 `yaml:"to,omitempty"`         // line end

	Pos       []float64 `yaml:"pos,omitempty"`
	Color     string    `yaml:"color,omitempty"`
	BackColor string    `yaml:"back_color,omitempty"`
	LineColor string    `yaml:"line_color,omitempty"`
	LineWidth *float64  `yaml:"line_width,omitempty"`
	Alpha     *float64  `yaml:"alpha,omitempty"`
	Wireframe bool      `yaml:"wireframe,omitempty"`
}

// Step is one transition declaration. Omitted targets/start/duration mean
// continuation from the previous step.
type Step struct {
	Action   string    `yaml:"action"`
	Targets  []string  `yaml:"targets,omitempty"`
	Start    *float64  `yaml:"start,omitempty"`
	Duration *float64  `yaml:"duration,omitempty"`

	Color  string    `yaml:"color,omitempty"`  // color transitions
	Alpha1 float64   `yaml:"alpha1,omitempty"` // change_alpha
	Alpha2 float64   `yaml:"alpha2,omitempty"`
	Width  float64   `yaml:"width,omitempty"` // change_line_width
	Style  string    `yaml:"style,omitempty"` // lighting style or move curve
	To     []float64 `yaml:"to,omitempty"`    // move destination
	Axis   string    `yaml:"axis,omitempty"`  // rotate
	Angle  float64   `yaml:"angle,omitempty"`
	Factor float64   `yaml:"factor,omitempty"` // scale
	Corner int       `yaml:"corner,omitempty"` // mesh_erode
}
