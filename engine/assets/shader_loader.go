package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed shaders
var shaderFS embed.FS

// LoadShader returns an embedded GLSL file as a null-terminated string for OpenGL.
func LoadShader(name string) (string, error) {
	b, err := shaderFS.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadProgramSources loads the vertex and fragment stage of a program that
// follows the <name>.vert / <name>.frag convention.
func LoadProgramSources(name string) (vs, fs string, err error) {
	if vs, err = LoadShader(name + ".vert"); err != nil {
		return "", "", err
	}
	if fs, err = LoadShader(name + ".frag"); err != nil {
		return "", "", err
	}
	return vs, fs, nil
}
