// Package assets holds the embedded default configuration and the glyphs
// used to draw a map.
package assets

import _ "embed"

// ConfigYAML is the stock configuration shipped with the game.
//
//go:embed config.yaml
var ConfigYAML []byte
