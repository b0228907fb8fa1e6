// Copyright 2025 CardinalHQ, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chart

const (
	statusEnabled  = "enabled"
	statusDisabled = "disabled"
)

// ZoomOptions mirrors the chartjs-plugin-zoom options object.
type ZoomOptions struct {
	Pan  PanOptions     `json:"pan"`
	Zoom ZoomModeOption `json:"zoom"`
}

type PanOptions struct {
	Enabled     bool   `json:"enabled"`
	ModifierKey string `json:"modifierKey,omitempty"`
}

type ZoomModeOption struct {
	Drag DragOptions `json:"drag"`
	Mode string      `json:"mode"`
}

type DragOptions struct {
	Enabled bool `json:"enabled"`
}

// DefaultZoomOptions pans with ctrl held and zooms by dragging a box on
// both axes.
func DefaultZoomOptions() ZoomOptions {
	return ZoomOptions{
		Pan: PanOptions{
			Enabled:     true,
			ModifierKey: "ctrl",
		},
		Zoom: ZoomModeOption{
			Drag: DragOptions{Enabled: true},
			Mode: "xy",
		},
	}
}

func (z ZoomOptions) PanStatus() string {
	return status(z.Pan.Enabled)
}

func (z ZoomOptions) ZoomStatus() string {
	return status(z.Zoom.Drag.Enabled)
}

func status(on bool) string {
	if on {
		return statusEnabled
	}
	return statusDisabled
}

// Action is a toolbar button. The page binds each ID to a click handler
// that changes the chart and redraws it.
type Action struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

const (
	ActionLocalTZ   = "tz-local"
	ActionUTC       = "tz-utc"
	ActionResetZoom = "reset-zoom"
)

func DefaultActions() []Action {
	return []Action{
		{ID: ActionLocalTZ, Label: "Set TZ to local timezone"},
		{ID: ActionUTC, Label: "Set TZ to UTC"},
		{ID: ActionResetZoom, Label: "Reset zoom"},
	}
}
