// Package assets embeds the static game data.
package assets

import _ "embed"

// Scenes is the scene and planet catalog (see world.LoadCatalog).
//
//go:embed scenes.yaml
var Scenes []byte
