package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"tanks/internal/game"
	"tanks/internal/scene"
)

// MaxSprites caps a single draw call; larger buffers are truncated.
const MaxSprites = 8192

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type programUniforms struct {
	camera     int32
	scale      int32
	sizeMul    int32
	resolution int32
}

type Renderer struct {
	spriteProg uint32
	glowProg   uint32
	boxProg    uint32

	sprite programUniforms
	glow   programUniforms
	box    programUniforms

	// Shared streaming buffer, 8 floats per sprite.
	vao uint32
	vbo uint32

	fbW, fbH int
	scale    float32
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}
	boxProg, err := linkProgram(spriteVertSrc, boxFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(glowProg)
		return nil, fmt.Errorf("box program: %w", err)
	}

	r := &Renderer{
		spriteProg: spriteProg,
		glowProg:   glowProg,
		boxProg:    boxProg,
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(scene.Stride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.vao = vao
	r.vbo = vbo

	r.sprite = lookupUniforms(spriteProg, 1)
	r.glow = lookupUniforms(glowProg, 1)
	r.box = lookupUniforms(boxProg, boxSizeMul)

	gl.BindVertexArray(0)
	return r, nil
}

func lookupUniforms(prog uint32, sizeMul float32) programUniforms {
	gl.UseProgram(prog)
	u := programUniforms{
		camera:     gl.GetUniformLocation(prog, gl.Str("uCamera\x00")),
		scale:      gl.GetUniformLocation(prog, gl.Str("uScale\x00")),
		sizeMul:    gl.GetUniformLocation(prog, gl.Str("uSizeMul\x00")),
		resolution: gl.GetUniformLocation(prog, gl.Str("uResolution\x00")),
	}
	gl.Uniform1f(u.sizeMul, sizeMul)
	return u
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	for _, id := range []uint32{r.spriteProg, r.glowProg, r.boxProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears to the desert colour and records the framebuffer size.
// The camera view is stretched to the framebuffer (HiDPI).
func (r *Renderer) BeginFrame(fbW, fbH int, cam game.Camera) {
	r.fbW, r.fbH = fbW, fbH
	r.scale = float32(float64(fbW) / cam.W)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	c := game.Palette.Desert
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) draw(prog uint32, u programUniforms, buf []float32, camX, camY float64, additive bool) {
	if len(buf) == 0 {
		return
	}
	count := min(len(buf)/scene.Stride, MaxSprites)

	gl.UseProgram(prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(u.camera, float32(camX), float32(camY))
	gl.Uniform1f(u.scale, r.scale)
	gl.Uniform2f(u.resolution, float32(r.fbW), float32(r.fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*scene.Stride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawFrame renders every layer of f. World layers go through cam; the
// overlay is drawn in viewport pixels.
func (r *Renderer) DrawFrame(f *scene.Frame, cam game.Camera) {
	r.draw(r.spriteProg, r.sprite, f.Tiles, cam.X, cam.Y, false)
	r.draw(r.boxProg, r.box, f.Boxes, cam.X, cam.Y, false)
	r.draw(r.spriteProg, r.sprite, f.Sprites, cam.X, cam.Y, false)
	r.draw(r.spriteProg, r.sprite, f.Particles, cam.X, cam.Y, false)
	r.draw(r.glowProg, r.glow, f.Glow, cam.X, cam.Y, true)
	r.draw(r.spriteProg, r.sprite, f.Overlay, 0, 0, false)
	r.draw(r.spriteProg, r.sprite, f.Text, 0, 0, false)
}
