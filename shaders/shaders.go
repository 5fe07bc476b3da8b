// Package shaders embeds the WGSL programs used by the splat renderer.
package shaders

import (
	_ "embed"
)

//go:embed splat.wgsl
var SplatWGSL string
