package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// LockedShader greys out and darkens a sprite by its Dim uniform; the
// overworld draws locked level nodes with it. Nil until LoadShaders.
var LockedShader *ebiten.Shader

// LoadShaders compiles the embedded shaders. It needs a graphics device.
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/locked.kage")
	if err != nil {
		return err
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile locked shader: %w", err)
	}
	LockedShader = shader
	return nil
}
