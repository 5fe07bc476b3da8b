package pcview

import "time"

// Time is a per-frame clock resource.
type Time struct {
	DeltaSeconds float32
	Elapsed      time.Duration
	FrameCount   uint64

	lastTick time.Time
}

type TimeModule struct{}

func (m TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{lastTick: time.Now()})

	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(t *Time) {
	now := time.Now()
	delta := now.Sub(t.lastTick)
	t.lastTick = now

	t.DeltaSeconds = float32(delta.Seconds())
	t.Elapsed += delta
	t.FrameCount++
}
