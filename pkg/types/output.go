package types

// Mode is a display mode. Refresh is in millihertz.
type Mode struct {
	Width   int `json:"width" yaml:"width"`
	Height  int `json:"height" yaml:"height"`
	Refresh int `json:"refresh" yaml:"refresh"`
}

// Rect is the output rectangle in the global layout.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Output describes one physical display output. Make, Model and Serial are
// stable per device; everything else reflects the current layout.
type Output struct {
	Name        string   `json:"name" yaml:"name"`
	Make        string   `json:"make" yaml:"make"`
	Model       string   `json:"model" yaml:"model"`
	Serial      string   `json:"serial" yaml:"serial"`
	Active      bool     `json:"active" yaml:"active"`
	CurrentMode *Mode    `json:"current_mode,omitempty" yaml:"current_mode,omitempty"`
	Rect        Rect     `json:"rect" yaml:"rect"`
	Scale       *float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Transform   *string  `json:"transform,omitempty" yaml:"transform,omitempty"`
}
