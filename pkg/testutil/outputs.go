package testutil

import (
	"github.com/arthur-debert/autokanshi/pkg/types"
)

// NewOutput returns an active output without a mode, placed at 0,0.
func NewOutput(vendor, model, serial string) types.Output {
	return types.Output{
		Name:   vendor + "-" + model,
		Make:   vendor,
		Model:  model,
		Serial: serial,
		Active: true,
	}
}

// WithMode sets the current mode; refresh is in mHz.
func WithMode(o types.Output, width, height, refresh int) types.Output {
	o.CurrentMode = &types.Mode{Width: width, Height: height, Refresh: refresh}
	return o
}

// At places the output.
func At(o types.Output, x, y int) types.Output {
	o.Rect.X = x
	o.Rect.Y = y
	return o
}

// Common outputs used across tests.
var (
	Laptop  = At(WithMode(NewOutput("BOE", "0x08DF", ""), 2256, 1504, 59999), 0, 0)
	Monitor = At(WithMode(NewOutput("Dell", "U2415", "ABC123"), 1920, 1080, 60000), 2256, 0)
)
