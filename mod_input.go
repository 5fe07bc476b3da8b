package pcview

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	MouseButtonLeft int = iota
	MouseButtonRight
	MouseButtonMiddle
	KeyShift
	KeyEscape
	KeyC
	buttonCount
)

type InputModule struct{}

type Input struct {
	Pressed [buttonCount]bool

	JustPressed  [buttonCount]bool
	JustReleased [buttonCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	// Accumulated scroll wheel deltas for this frame.
	ScrollX, ScrollY float64

	// Paths dropped onto the window this frame.
	DroppedFiles []string

	WindowWidth, WindowHeight int
}

// inputCallbackState collects GLFW callback events between frames; the input
// system drains it once per frame into the Input resource.
type inputCallbackState struct {
	scrollX, scrollY float64
	droppedFiles     []string
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cbState := &inputCallbackState{}
	cmd.AddResources(&Input{}, cbState)

	ws := resourceOf[WindowState](app)
	ws.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cbState.scrollX += xoff
		cbState.scrollY += yoff
	})
	ws.windowGlfw.SetDropCallback(func(w *glfw.Window, paths []string) {
		cbState.droppedFiles = append(cbState.droppedFiles, paths...)
	})

	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(quitOnEscapeSystem).
			InStage(Update),
	)
}

// quitOnEscapeSystem closes the viewer on Escape.
func quitOnEscapeSystem(input *Input, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
	}
}

func inputSystem(s *WindowState, input *Input, cbState *inputCallbackState) {
	// Drain callback accumulators
	input.ScrollX, input.ScrollY = cbState.scrollX, cbState.scrollY
	cbState.scrollX, cbState.scrollY = 0, 0
	input.DroppedFiles = cbState.droppedFiles
	cbState.droppedFiles = nil

	// Update Keyboard
	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)
		updateButton(input, key, action)
	}

	// Update Mouse
	mx, my := s.windowGlfw.GetCursorPos()
	input.MouseDeltaX = mx - input.MouseX
	input.MouseDeltaY = my - input.MouseY
	input.MouseX = mx
	input.MouseY = my

	// Update window dimensions
	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()

	// Update mouse buttons
	for btn, glfwBtn := range mouseToGlfw {
		action := s.windowGlfw.GetMouseButton(glfwBtn)
		updateButton(input, btn, action)
	}
}

func updateButton(input *Input, key int, action glfw.Action) {
	input.JustPressed[key] = false
	input.JustReleased[key] = false

	if glfw.Press == action {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	} else if glfw.Release == action {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyShift:  glfw.KeyLeftShift,
	KeyEscape: glfw.KeyEscape,
	KeyC:      glfw.KeyC,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}
