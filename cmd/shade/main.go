// shade - colour conversion and theme palettes
//
// shade converts colours between hex, RGB and HSL and renders named theme
// palettes, with derived lightened/darkened variants, as CSS custom properties.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/shade/internal/cli"
)

func main() {
	cli.Execute()
}
