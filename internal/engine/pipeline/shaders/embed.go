// Package shaders provides embedded GLSL shader sources.
package shaders

import (
	_ "embed"
	"strings"
)

// ShadowVertexShader writes light-space depth.
//
//go:embed shadow.vert
var ShadowVertexShader string

// ShadowFragmentShader is the empty depth-only fragment stage.
//
//go:embed shadow.frag
var ShadowFragmentShader string

// OcclusionVertexShader transforms the sun billboard and occluders.
//
//go:embed occlusion.vert
var OcclusionVertexShader string

// OcclusionFragmentShader paints the sun in its tint and occluders black.
//
//go:embed occlusion.frag
var OcclusionFragmentShader string

// LitVertexShader is shared by the model and terrain programs.
//
//go:embed lit.vert
var LitVertexShader string

//go:embed lit.frag
var litFragment string

//go:embed terrain.frag
var terrainFragment string

//go:embed lighting.glsl
var lightingChunk string

// SkyboxVertexShader draws the cube at the far plane.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader blends the night and day cubemaps.
//
//go:embed skybox.frag
var SkyboxFragmentShader string

// ScreenVertexShader passes the full-screen quad through.
//
//go:embed screen.vert
var ScreenVertexShader string

// GodRaysFragmentShader is the radial light shaft blur.
//
//go:embed godrays.frag
var GodRaysFragmentShader string

// CompositeFragmentShader adds shafts to the scene and gamma encodes.
//
//go:embed composite.frag
var CompositeFragmentShader string

const includeLighting = "//#include lighting"

// LitFragmentShader returns the model fragment stage with the shared
// lighting functions inlined.
func LitFragmentShader() string {
	return strings.Replace(litFragment, includeLighting, lightingChunk, 1)
}

// TerrainFragmentShader returns the terrain fragment stage with the shared
// lighting functions inlined.
func TerrainFragmentShader() string {
	return strings.Replace(terrainFragment, includeLighting, lightingChunk, 1)
}
