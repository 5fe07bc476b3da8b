package pcview

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := &MockResource1{name: "Resource1"}
	app.addResources(resource1)

	stored, ok := app.resources[reflect.TypeOf(MockResource1{})]
	require.True(t, ok, "resource should be registered under its element type")
	assert.Same(t, resource1, stored)

	// Registering a second resource of the same type panics.
	assert.Panics(t, func() {
		app.addResources(&MockResource1{name: "Duplicate"})
	})
}

func TestApp_callSystemInjectsResources(t *testing.T) {
	app := NewAppBuilder().Build()
	app.addResources(&MockResource1{name: "hello"}, &MockResource2{name: "world"})

	var got1, got2 string
	app.callSystem(func(r1 *MockResource1, r2 *MockResource2) {
		got1, got2 = r1.name, r2.name
	})

	assert.Equal(t, "hello", got1)
	assert.Equal(t, "world", got2)
}

func TestApp_callSystemInjectsCommands(t *testing.T) {
	app := NewAppBuilder().Build()

	var cmdApp *App
	app.callSystem(func(cmd *Commands) {
		cmdApp = cmd.app
	})

	assert.Same(t, app, cmdApp)
}

func TestApp_callSystemUnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()

	assert.Panics(t, func() {
		app.callSystem(func(r *MockResource1) {})
	})
}

type countingModule struct {
	installed *int
}

func (m countingModule) Install(app *App, cmd *Commands) {
	*m.installed++
}

func TestAppBuilder_InstallsModules(t *testing.T) {
	installed := 0

	NewAppBuilder().
		UseModule(countingModule{installed: &installed}, countingModule{installed: &installed}).
		Build()

	assert.Equal(t, 2, installed)
}

func TestApp_RunFrameFlushesCommands(t *testing.T) {
	type marker struct{ v int }

	app := NewAppBuilder().Build()

	spawned := false
	seen := 0
	app.UseSystem(System(func(cmd *Commands) {
		if !spawned {
			cmd.AddEntity(&marker{v: 1})
			spawned = true
		}
		MakeQuery1[marker](cmd).Map(func(eid EntityId, m *marker) bool {
			seen++
			return true
		})
	}).InStage(Update))

	// Additions are buffered; the entity is not visible within the frame
	// that spawned it.
	app.RunFrame()
	assert.Equal(t, 0, seen)

	app.RunFrame()
	assert.Equal(t, 1, seen)
}

func TestApp_QuitStopsRun(t *testing.T) {
	app := NewAppBuilder().Build()

	frames := 0
	app.UseSystem(System(func(cmd *Commands) {
		frames++
		if frames >= 3 {
			cmd.Quit()
		}
	}).InStage(Update))

	app.Run()
	assert.Equal(t, 3, frames)
}

func TestApp_UseStageOrdering(t *testing.T) {
	app := NewAppBuilder().Build()
	custom := Stage{Name: "Custom"}
	app.UseStage(custom, AfterStage(Update))

	var order []string
	app.UseSystem(System(func(cmd *Commands) {
		order = append(order, "custom")
	}).InStage(custom))
	app.UseSystem(System(func(cmd *Commands) {
		order = append(order, "update")
	}).InStage(Update))

	app.RunFrame()
	require.Equal(t, []string{"update", "custom"}, order)
}

func TestApp_LoggerFallback(t *testing.T) {
	app := NewAppBuilder().Build()

	// No logging module installed: the nop logger keeps callers safe.
	logger := app.Logger()
	require.NotNil(t, logger)
	logger.Infof("should not panic")

	app.addResources(NewDefaultLogger("test", false))
	assert.Implements(t, (*Logger)(nil), app.Logger())
}
