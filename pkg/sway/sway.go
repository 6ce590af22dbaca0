// Package sway reads the connected display outputs from a running sway
// compositor through swaymsg.
package sway

import (
	"context"
	"encoding/json"

	"github.com/arthur-debert/autokanshi/pkg/errors"
	"github.com/arthur-debert/autokanshi/pkg/executor"
	"github.com/arthur-debert/autokanshi/pkg/logging"
	"github.com/arthur-debert/autokanshi/pkg/types"
)

// DefaultSwaymsg is the swaymsg binary looked up in PATH.
const DefaultSwaymsg = "swaymsg"

// Client queries sway through swaymsg.
type Client struct {
	runner  executor.Runner
	swaymsg string
}

// NewClient returns a client running swaymsg through runner.
func NewClient(runner executor.Runner, swaymsg string) *Client {
	if swaymsg == "" {
		swaymsg = DefaultSwaymsg
	}
	return &Client{runner: runner, swaymsg: swaymsg}
}

// Outputs returns the outputs in the order sway reports them.
func (c *Client) Outputs(ctx context.Context) ([]types.Output, error) {
	logger := logging.GetLogger("sway")

	raw, err := c.runner.Output(ctx, c.swaymsg, "-t", "get_outputs", "--raw")
	if err != nil {
		return nil, err
	}
	outputs, err := DecodeOutputs(raw)
	if err != nil {
		return nil, err
	}

	for _, o := range outputs {
		logger.Debug().
			Str("name", o.Name).
			Str("make", o.Make).
			Str("model", o.Model).
			Str("serial", o.Serial).
			Bool("active", o.Active).
			Msg("Found output")
	}
	return outputs, nil
}

// DecodeOutputs decodes the reply of a get_outputs request. Sway reports a
// negative scale for disabled outputs, it is dropped like a missing one.
func DecodeOutputs(raw []byte) ([]types.Output, error) {
	var outputs []types.Output
	if err := json.Unmarshal(raw, &outputs); err != nil {
		return nil, errors.Wrap(err, errors.ErrOutputsDecode, "cannot decode sway outputs")
	}
	for i := range outputs {
		if s := outputs[i].Scale; s != nil && *s <= 0 {
			outputs[i].Scale = nil
		}
	}
	return outputs, nil
}
