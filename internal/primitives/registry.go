package primitives

import (
	"scene-editor/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// defaultPrimitiveColor is the tint for objects drawn without a texture.
var defaultPrimitiveColor = rl.NewColor(170, 170, 170, 255)

// cached is the mesh and material for one kind. blank is the material's own 1x1 white
// albedo, restored when an object has no texture.
type cached struct {
	mesh  rl.Mesh
	mtl   rl.Material
	blank rl.Texture2D
	tint  rl.Color
}

// Registry owns one mesh per object kind and the lit shader they share. Meshes are
// generated on first use so GPU resources are created after the window exists.
type Registry struct {
	cache    map[scene.Kind]*cached
	shader   rl.Shader
	locs     map[string]int32
	viewPos  [3]float32
	lightDir [3]float32
}

// NewRegistry returns an empty registry lit from above, behind the camera.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[scene.Kind]*cached),
		lightDir: [3]float32{0.45, 0.75, 0.5},
	}
}

// SetView sets the camera position and light direction for this frame.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

func (r *Registry) ensureShader() {
	if r.locs != nil {
		return
	}
	r.locs = make(map[string]int32)
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(r.shader) {
		return
	}
	for _, name := range []string{"viewPos", "lightDir", "ambient", "lightColor", "lightIntensity", "specularPower", "specularStrength"} {
		r.locs[name] = rl.GetShaderLocation(r.shader, name)
	}
}

func (r *Registry) ensure(kind scene.Kind) *cached {
	if c, ok := r.cache[kind]; ok {
		return c
	}
	shape, ok := Shapes[kind]
	if !ok {
		return nil
	}
	r.ensureShader()
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := &cached{mesh: shape.mesh(kind), mtl: mtl, tint: shape.Color}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		c.blank = albedo.Texture
	}
	r.cache[kind] = c
	return c
}

// Draw draws one mesh of kind with the given model matrix. A nil or invalid texture
// draws the mesh untextured in the kind's tint. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(kind scene.Kind, model rl.Matrix, tex *rl.Texture2D) {
	c := r.ensure(kind)
	if c == nil {
		return
	}
	albedo := c.mtl.GetMap(rl.MapAlbedo)
	if tex != nil && rl.IsTextureValid(*tex) {
		albedo.Texture = *tex
		albedo.Color = rl.White
	} else {
		albedo.Texture = c.blank
		albedo.Color = c.tint
	}
	r.setUniforms()
	rl.DrawMesh(c.mesh, c.mtl, model)
}

// Unload frees every mesh and the shared shader.
func (r *Registry) Unload() {
	for kind, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, kind)
	}
	if rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.locs = nil
}

var (
	defaultAmbient    = [4]float32{0.18, 0.18, 0.22, 1}
	defaultLightColor = [3]float32{1, 0.97, 0.92}
)

const (
	defaultLightIntensity   = float32(0.8)
	defaultSpecularPower    = float32(32)
	defaultSpecularStrength = float32(0.4)
)

// setUniforms uploads the per-frame light state. Values are copied into locals before
// the cgo call.
func (r *Registry) setUniforms() {
	if !rl.IsShaderValid(r.shader) {
		return
	}
	vec3 := func(name string, v [3]float32) {
		if loc := r.locs[name]; loc >= 0 {
			rl.SetShaderValueV(r.shader, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	float := func(name string, f float32) {
		if loc := r.locs[name]; loc >= 0 {
			rl.SetShaderValue(r.shader, loc, []float32{f}, rl.ShaderUniformFloat)
		}
	}
	vec3("viewPos", r.viewPos)
	vec3("lightDir", r.lightDir)
	vec3("lightColor", defaultLightColor)
	if loc := r.locs["ambient"]; loc >= 0 {
		amb := defaultAmbient
		rl.SetShaderValueV(r.shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	float("lightIntensity", defaultLightIntensity)
	float("specularPower", defaultSpecularPower)
	float("specularStrength", defaultSpecularStrength)
}

// The fragment shader always samples albedoMap; untextured draws bind the material's
// white default texture so colDiffuse alone sets the color.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 base = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 n = normalize(fragNormal);
  vec3 l = normalize(lightDir);
  vec3 v = normalize(viewPos - fragPosition);
  float lambert = max(dot(n, l), 0.0);
  vec3 diffuse = base.rgb * lambert * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * base.rgb;
  float spec = 0.0;
  if (lambert > 0.0) {
    spec = pow(max(dot(n, normalize(l + v)), 0.0), specularPower) * specularStrength;
  }
  finalColor = vec4(amb + diffuse + lightColor * spec, base.a);
}
`
)
