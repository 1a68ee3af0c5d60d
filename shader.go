package glboot

import (
	"io/fs"
	"path"
	"strings"
)

// Stage is a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// ShaderPath returns the conventional location of a stage's source:
// <root>/shaders/<stage>.glsl.
func ShaderPath(root string, stage Stage) string {
	return path.Join(root, "shaders", stage.String()+".glsl")
}

// ReadShaderSource reads a stage's source from fsys, which is rooted at the
// resource root.
func ReadShaderSource(fsys fs.FS, stage Stage) (string, error) {
	name := ShaderPath(".", stage)
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &SourceError{Stage: stage, Path: name, Err: err}
	}
	return string(data), nil
}

// Shader owns a compiled shader object. It is transient: once linked into a
// Program it is deleted.
type Shader struct {
	d     Device
	id    uint32
	stage Stage
}

// ID returns the driver identifier (0 once deleted).
func (s Shader) ID() uint32 { return s.id }

// Stage returns the pipeline stage the shader was compiled for.
func (s Shader) Stage() Stage { return s.stage }

// Delete releases the shader object. Deleting a zero handle is a no-op.
func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	s.d.DeleteShader(s.id)
	s.id = 0
}

// CompileShader creates a shader object for stage and compiles source into it.
// On failure the object is deleted and a *CompileError holding the full
// driver log is returned.
func CompileShader(d Device, stage Stage, source string) (Shader, error) {
	id := d.CreateShader(stage)
	if id == 0 {
		return Shader{}, ErrHandleUnavailable
	}
	d.ShaderSource(id, source)
	d.CompileShader(id)

	if d.ShaderParam(id, CompileStatus) == 0 {
		n := d.ShaderParam(id, ShaderInfoLogLength)
		log := trimLog(d.ShaderInfoLog(id, n))
		d.DeleteShader(id)
		return Shader{}, &CompileError{Stage: stage, Log: log}
	}

	Logger().Debug("shader compiled", "stage", stage, "id", id)
	return Shader{d: d, id: id, stage: stage}, nil
}

// LoadShader reads a stage's source from fsys and compiles it.
func LoadShader(d Device, fsys fs.FS, stage Stage) (Shader, error) {
	src, err := ReadShaderSource(fsys, stage)
	if err != nil {
		return Shader{}, err
	}
	return CompileShader(d, stage, src)
}

func trimLog(log string) string {
	log = strings.TrimRight(log, "\x00 \t\r\n")
	if log == "" {
		return emptyLog
	}
	return log
}
