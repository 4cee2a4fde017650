package sandbox

import (
	"github.com/gpietz/go-gl-forge/engine/core"
	"github.com/gpietz/go-gl-forge/engine/math"
	"github.com/gpietz/go-gl-forge/engine/renderer"
	"github.com/gpietz/go-gl-forge/engine/renderer/vertex"
)

// Projection renders a floor of textured tiles under perspective. Arrow keys
// move the camera, W/S adjust the field of view.
type Projection struct {
	vbo *renderer.Buffer
	ibo *renderer.Buffer

	cameraPos math.Vec3
	fov       float32
	spin      float32
}

func NewProjection() *Projection {
	return &Projection{
		cameraPos: math.NewVec3(0, 1.5, 4),
		fov:       45,
	}
}

func (s *Projection) Name() string { return "projection" }

func (s *Projection) Activate(ctx *RenderContext) error {
	if s.vbo != nil {
		return nil
	}

	// x, y, z, u, v: a unit quad lying in the xz plane.
	vertices := []float32{
		-0.5, 0.0, -0.5, 0.0, 1.0,
		0.5, 0.0, -0.5, 1.0, 1.0,
		0.5, 0.0, 0.5, 1.0, 0.0,
		-0.5, 0.0, 0.5, 0.0, 0.0,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	// The projection shader samples a texture directly, so slot 1 carries
	// the texture coordinate here.
	layout := positionLayout()
	layout.AddAttribute(1, 2, vertex.Float32, false)

	vbo, err := renderer.NewBuffer(ctx.Backend, renderer.Float32Bytes(vertices), layout, renderer.UsageStatic)
	if err != nil {
		return err
	}
	ibo, err := renderer.NewIndexBuffer(ctx.Backend, indices, renderer.UsageStatic)
	if err != nil {
		vbo.Release()
		return err
	}
	s.vbo, s.ibo = vbo, ibo

	ctx.Backend.EnableDepthTest()
	core.LogInfo("arrow keys move the camera, W/S change the field of view")
	return nil
}

func (s *Projection) Update(ctx *RenderContext, deltaTime float64) error {
	speed := float32(2.0 * deltaTime)

	if core.InputIsKeyDown(core.KEY_LEFT) {
		s.cameraPos.X -= speed
	}
	if core.InputIsKeyDown(core.KEY_RIGHT) {
		s.cameraPos.X += speed
	}
	if core.InputIsKeyDown(core.KEY_UP) {
		s.cameraPos.Z -= speed
	}
	if core.InputIsKeyDown(core.KEY_DOWN) {
		s.cameraPos.Z += speed
	}
	if core.InputIsKeyDown(core.KEY_W) {
		s.fov = math.Clamp(s.fov-float32(30.0*deltaTime), 20, 90)
	}
	if core.InputIsKeyDown(core.KEY_S) {
		s.fov = math.Clamp(s.fov+float32(30.0*deltaTime), 20, 90)
	}

	s.spin += float32(0.5 * deltaTime)
	return nil
}

func (s *Projection) Draw(ctx *RenderContext) error {
	shader, err := ctx.Shaders.Get(SHADER_PROJECTION)
	if err != nil {
		return err
	}
	shader.Use()
	shader.SetUniform1i("texture1", 0)

	view := math.NewMat4LookAt(s.cameraPos, math.NewVec3(0, 0, 0), math.NewVec3(0, 1, 0))
	projection := math.NewMat4Perspective(math.DegToRad(s.fov), ctx.Aspect(), 0.1, 100)
	shader.SetUniformMatrix4("view", &view)
	shader.SetUniformMatrix4("projection", &projection)

	texture, err := ctx.Textures.Get(TEXTURE_CHECKERBOARD)
	if err != nil {
		return err
	}
	texture.Bind(0)

	if err := s.vbo.Bind(); err != nil {
		return err
	}
	if err := s.ibo.Bind(); err != nil {
		return err
	}

	// A small grid of tiles so the perspective is visible.
	for x := -2; x <= 2; x++ {
		for z := -2; z <= 2; z++ {
			tile := math.NewTransform()
			tile.Position = math.NewVec3(float32(x)*1.1, 0, float32(z)*1.1)
			tile.Rotation = math.NewVec3(0, s.spin, 0)
			model := tile.Matrix()
			shader.SetUniformMatrix4("model", &model)
			if err := ctx.Backend.DrawIndexed(renderer.ModeTriangles, s.ibo.IndexCount()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Projection) Deactivate(ctx *RenderContext) error {
	releaseBuffers(s.vbo, s.ibo)
	s.vbo, s.ibo = nil, nil
	return nil
}
