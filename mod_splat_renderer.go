package pcview

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"

	"github.com/pcview3d/pcview/shaders"
)

// RenderParams mirrors the shader-side uniform at group 0 binding 1.
// Padded to 16 bytes for uniform buffer alignment.
type RenderParams struct {
	Viewport [2]float32
	Pad      [2]float32
}

type cloudGpuBuffer struct {
	buffer     *wgpu.Buffer
	pointCount uint32
}

type splatRenderState struct {
	pipeline *wgpu.RenderPipeline

	depthTexture *wgpu.Texture
	depthView    *wgpu.TextureView
	depthWidth   uint32
	depthHeight  uint32

	cameraBuffer *wgpu.Buffer
	paramsBuffer *wgpu.Buffer
	bindGroup    *wgpu.BindGroup

	cameraUniform CameraUniform
	renderParams  RenderParams

	background wgpu.Color

	// Per-cloud vertex buffers, keyed by the cloud's asset id.
	cloudBuffers map[uuid.UUID]cloudGpuBuffer

	statsLastFrame uint64
}

// SplatRendererModule owns the wgpu device and the point-splat pipeline.
// Per frame it uploads the camera uniform, mirrors cloud entities into
// vertex buffers, and draws each cloud instanced with six vertices per
// point.
type SplatRendererModule struct {
	Background wgpu.Color
}

func (m SplatRendererModule) Install(app *App, cmd *Commands) {
	ws := resourceOf[WindowState](app)
	gpuState := createGpuState(ws)

	rState := &splatRenderState{
		pipeline:     createSplatPipeline("Splat Pipeline", shaders.SplatWGSL, PointVertex{}, gpuState),
		background:   m.Background,
		cloudBuffers: make(map[uuid.UUID]cloudGpuBuffer),
	}
	rState.depthTexture, rState.depthView = createDepthTexture(
		gpuState, gpuState.surfaceConfig.Width, gpuState.surfaceConfig.Height)
	rState.depthWidth = gpuState.surfaceConfig.Width
	rState.depthHeight = gpuState.surfaceConfig.Height

	rState.renderParams = RenderParams{
		Viewport: [2]float32{float32(ws.WindowWidth), float32(ws.WindowHeight)},
	}
	rState.cameraBuffer = createBuffer("Camera Uniform", rState.cameraUniform, gpuState,
		wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	rState.paramsBuffer = createBuffer("Render Params", rState.renderParams, gpuState,
		wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)

	layout := rState.pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := gpuState.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Splat Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: rState.cameraBuffer, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: rState.paramsBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	rState.bindGroup = bindGroup

	app.addResources(gpuState, rState)

	app.UseSystem(System(surfaceResizeSystem).InStage(PreRender))
	app.UseSystem(System(cameraUniformSystem).InStage(PreRender))
	app.UseSystem(System(syncCloudBuffersSystem).InStage(PreRender))
	app.UseSystem(System(splatRenderSystem).InStage(Render))
	app.UseSystem(System(frameStatsSystem).InStage(PostRender))
}

const statsLogInterval = 120

// frameStatsSystem logs render throughput every statsLogInterval frames when
// debug logging is on.
func frameStatsSystem(t *Time, rState *splatRenderState, logger *DefaultLogger) {
	if !logger.DebugEnabled() {
		return
	}
	if t.FrameCount == 0 || t.FrameCount-rState.statsLastFrame < statsLogInterval {
		return
	}
	rState.statsLastFrame = t.FrameCount

	var points uint32
	for _, buf := range rState.cloudBuffers {
		points += buf.pointCount
	}
	fps := float32(0)
	if t.DeltaSeconds > 0 {
		fps = 1.0 / t.DeltaSeconds
	}
	logger.Debugf("frame %d: %.1f fps, %d points in %d clouds",
		t.FrameCount, fps, points, len(rState.cloudBuffers))
}

// surfaceResizeSystem keeps the swapchain and depth texture matched to the
// window size.
func surfaceResizeSystem(ws *WindowState, gpuState *GpuState, rState *splatRenderState) {
	w, h := uint32(ws.WindowWidth), uint32(ws.WindowHeight)
	if w == 0 || h == 0 {
		return
	}
	if w == rState.depthWidth && h == rState.depthHeight {
		return
	}

	gpuState.reconfigureSurface(ws.WindowWidth, ws.WindowHeight)

	rState.depthView.Release()
	rState.depthTexture.Release()
	rState.depthTexture, rState.depthView = createDepthTexture(gpuState, w, h)
	rState.depthWidth, rState.depthHeight = w, h

	rState.renderParams.Viewport = [2]float32{float32(w), float32(h)}
}

func cameraUniformSystem(cmd *Commands, rState *splatRenderState) {
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
		rState.cameraUniform = BuildCameraUniform(cam)
		return false
	})
}

// syncCloudBuffersSystem mirrors the cloud entities into GPU vertex buffers.
// Clouds are immutable once loaded, so a buffer is uploaded once per asset id
// and released when its cloud despawns.
func syncCloudBuffersSystem(cmd *Commands, gpuState *GpuState, rState *splatRenderState) {
	alive := make(map[uuid.UUID]bool, len(rState.cloudBuffers))

	MakeQuery1[CloudComponent](cmd).Map(func(eid EntityId, c *CloudComponent) bool {
		alive[c.Cloud.ID] = true
		if _, ok := rState.cloudBuffers[c.Cloud.ID]; ok {
			return true
		}
		if len(c.Cloud.Vertices) == 0 {
			return true
		}
		rState.cloudBuffers[c.Cloud.ID] = cloudGpuBuffer{
			buffer:     createVertexBuffer(c.Cloud.Name, c.Cloud.Vertices, gpuState),
			pointCount: uint32(len(c.Cloud.Vertices)),
		}
		return true
	})

	for id, buf := range rState.cloudBuffers {
		if !alive[id] {
			buf.buffer.Release()
			delete(rState.cloudBuffers, id)
		}
	}
}

// splatRenderSystem renders one frame.
func splatRenderSystem(gpuState *GpuState, rState *splatRenderState, logger *DefaultLogger) {
	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		// Transient surface loss (resize, minimize); skip the frame.
		logger.Warnf("surface texture unavailable: %v", err)
		return
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	if err := gpuState.queue.WriteBuffer(rState.cameraBuffer, 0, toBufferBytes(rState.cameraUniform)); err != nil {
		panic(err)
	}
	if err := gpuState.queue.WriteBuffer(rState.paramsBuffer, 0, toBufferBytes(rState.renderParams)); err != nil {
		panic(err)
	}

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: rState.background,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            rState.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})
	defer renderPass.Release()

	renderPass.SetPipeline(rState.pipeline)
	renderPass.SetBindGroup(0, rState.bindGroup, nil)
	for _, buf := range rState.cloudBuffers {
		renderPass.SetVertexBuffer(0, buf.buffer, 0, wgpu.WholeSize)
		renderPass.Draw(6, buf.pointCount, 0, 0)
	}

	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}
