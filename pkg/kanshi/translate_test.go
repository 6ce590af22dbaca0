package kanshi

import (
	"testing"
	"time"

	"github.com/arthur-debert/autokanshi/pkg/types"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func dell() types.Output {
	return types.Output{
		Name:        "DP-1",
		Make:        "Dell",
		Model:       "U2415",
		Serial:      "ABC123",
		Active:      true,
		CurrentMode: &types.Mode{Width: 1920, Height: 1080, Refresh: 60000},
		Rect:        types.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
	}
}

func TestOutputID(t *testing.T) {
	assert.Equal(t, `"Dell U2415 ABC123"`, OutputID(dell()))

	unknown := types.Output{Make: "Unknown", Model: "", Serial: ""}
	assert.Equal(t, `"Unknown  "`, OutputID(unknown))
}

func TestDirectivesFromOutput(t *testing.T) {
	tests := []struct {
		name   string
		output func() types.Output
		want   []string
	}{
		{
			name:   "active output with mode",
			output: dell,
			want: []string{
				`output "Dell U2415 ABC123" enable`,
				"mode 1920x1080@60Hz",
				"position 0,0",
			},
		},
		{
			name: "inactive output without mode",
			output: func() types.Output {
				o := dell()
				o.Active = false
				o.CurrentMode = nil
				o.Rect = types.Rect{X: 1920, Y: -200}
				return o
			},
			want: []string{
				`output "Dell U2415 ABC123" disable`,
				"position 1920,-200",
			},
		},
		{
			name: "refresh is truncated",
			output: func() types.Output {
				o := dell()
				o.CurrentMode = &types.Mode{Width: 2560, Height: 1440, Refresh: 59995}
				return o
			},
			want: []string{
				`output "Dell U2415 ABC123" enable`,
				"mode 2560x1440@59Hz",
				"position 0,0",
			},
		},
		{
			name: "scale and transform",
			output: func() types.Output {
				o := dell()
				o.Scale = ptr(1.5)
				o.Transform = ptr("90")
				return o
			},
			want: []string{
				`output "Dell U2415 ABC123" enable`,
				"mode 1920x1080@60Hz",
				"position 0,0",
				"scale 1.5",
				"transform 90",
			},
		},
		{
			name: "integral scale has no decimals",
			output: func() types.Output {
				o := dell()
				o.CurrentMode = nil
				o.Scale = ptr(2.0)
				return o
			},
			want: []string{
				`output "Dell U2415 ABC123" enable`,
				"position 0,0",
				"scale 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives := DirectivesFromOutput(tt.output())
			got := make([]string, len(directives))
			for i, d := range directives {
				got[i] = d.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectivesFromOutputOmitsAbsentFields(t *testing.T) {
	o := dell()
	o.CurrentMode = nil

	for _, d := range DirectivesFromOutput(o) {
		assert.NotEqual(t, "mode", d.Keyword())
		assert.NotEqual(t, "scale", d.Keyword())
		assert.NotEqual(t, "transform", d.Keyword())
	}
}

func TestGeneratedName(t *testing.T) {
	at := time.Date(2024, time.March, 7, 9, 5, 2, 999, time.UTC)
	assert.Equal(t, "autokanshi_7_3_2024__9_5_2", GeneratedName(at))

	// converted to UTC first
	paris := time.FixedZone("CET", 3600)
	local := time.Date(2024, time.January, 1, 0, 30, 0, 0, paris)
	assert.Equal(t, "autokanshi_31_12_2023__23_30_0", GeneratedName(local))
}

func TestProfileFromLayout(t *testing.T) {
	second := types.Output{
		Make: "LG", Model: "27UL850", Serial: "XYZ",
		Active: true,
		Rect:   types.Rect{X: 1920, Y: 0},
	}
	at := time.Date(2024, time.March, 7, 9, 5, 2, 0, time.UTC)

	profile := ProfileFromLayout([]types.Output{dell(), second}, at)

	assert.Equal(t, "autokanshi_7_3_2024__9_5_2", profile.Name)
	assert.Len(t, profile.Directives, 5)
	assert.Equal(t, `output "LG 27UL850 XYZ" enable`, profile.Directives[3].String())
	assert.Equal(t, "position 1920,0", profile.Directives[4].String())
	assert.Equal(t, map[string]struct{}{
		`"Dell U2415 ABC123"`: {},
		`"LG 27UL850 XYZ"`:    {},
	}, profile.Outputs())
}
