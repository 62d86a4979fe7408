package shaders

import (
	_ "embed"
)

//go:embed light.wgsl
var LightWGSL string
