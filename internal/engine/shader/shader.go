// Package shader compiles GLSL programs and sets uniforms by name.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/logger"
	"github.com/Faultbox/godrays/pkg/math"
)

// Program is a linked GL program with a cache of uniform locations.
type Program struct {
	name     string
	id       uint32
	linked   bool
	uniforms map[string]int32
}

// Compile builds a program from vertex and fragment source. Compile and link
// errors are logged with their stage; the program is returned regardless so
// rendering continues with whatever the driver produced.
func Compile(name, vertexSrc, fragmentSrc string) *Program {
	p := &Program{name: name, uniforms: make(map[string]int32)}
	log := logger.Named("shader")

	p.id = gl.CreateProgram()
	for _, stage := range []struct {
		kind  uint32
		label string
		src   string
	}{
		{gl.VERTEX_SHADER, "vertex", vertexSrc},
		{gl.FRAGMENT_SHADER, "fragment", fragmentSrc},
	} {
		sh, err := compileShader(stage.src, stage.kind, stage.label)
		if err != nil {
			log.Error("shader compile failed", zap.String("program", name), zap.Error(err))
		}
		gl.AttachShader(p.id, sh)
		defer gl.DeleteShader(sh)
	}

	gl.LinkProgram(p.id)
	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	p.linked = status == gl.TRUE
	if !p.linked {
		log.Error("shader link failed",
			zap.String("program", name),
			zap.String("stage", "link"),
			zap.String("info", programLog(p.id)))
	} else {
		log.Debug("shader linked", zap.String("program", name), zap.Uint32("id", p.id))
	}
	return p
}

// compileShader compiles one stage. The shader object is returned even on
// failure so it can still be attached.
func compileShader(source string, kind uint32, label string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		info := make([]byte, max(logLen, 1))
		gl.GetShaderInfoLog(sh, logLen, nil, &info[0])
		return sh, fmt.Errorf("%s stage: %s", label, strings.TrimRight(string(info), "\x00\n"))
	}
	return sh, nil
}

func programLog(id uint32) string {
	var logLen int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
	info := make([]byte, max(logLen, 1))
	gl.GetProgramInfoLog(id, logLen, nil, &info[0])
	return strings.TrimRight(string(info), "\x00\n")
}

// Name returns the program's label.
func (p *Program) Name() string { return p.name }

// ID returns the GL handle.
func (p *Program) ID() uint32 { return p.id }

// Linked reports whether the driver linked the program.
func (p *Program) Linked() bool { return p.linked }

// Use makes the program current.
func (p *Program) Use() { gl.UseProgram(p.id) }

// Location returns the cached uniform location, or -1 when inactive.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) { gl.Uniform1i(p.Location(name), v) }

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.Location(name), i)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) { gl.Uniform1f(p.Location(name), v) }

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, x, y float32) { gl.Uniform2f(p.Location(name), x, y) }

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) { gl.Uniform3f(p.Location(name), v.X, v.Y, v.Z) }

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, m.Ptr())
}

// Destroy deletes the program.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
