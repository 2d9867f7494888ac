package runner

import (
	"context"
	"sync"
	"time"

	"lifegame/src/universe"
)

//Options represents the runner's configurable options
type Options struct {
	Width    int
	Height   int
	Interval time.Duration
	MaxSteps int
	Advanced map[string]interface{} //advanced options (host specific)
}

//Status represents the status of the simulation at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the runner
type Viewer interface {
	Refresh()
	Register(r *Runner)
	Start() error
}

//The simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 30
	DefMaxSteps           = 1000
	DefWidth              = 40
	DefHeight             = 15
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

//Runner is the host loop around a universe.Universe
//the universe itself has no notion of time, Runner paces the ticks,
//serializes all commands on its own goroutine and guards the universe for the viewers
type Runner struct {
	options Options
	mu      sync.Mutex //guards u and status
	u       *universe.Universe
	status  Status

	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	//owned by the main loop
	runID     int
	cancelRun context.CancelFunc
}

//New creates the Runner for u and starts its main loop
//Width and Height of o are replaced by the universe's dimensions
//stateCh can be nil, otherwise it receives every status change and must be drained
func New(o *Options, u *universe.Universe, stateCh chan Status) *Runner {
	if o == nil {
		o = &DefaultOptions
	}
	r := Runner{
		options:   *o,
		u:         u,
		stateCh:   stateCh,
		controlCh: make(chan func()),
		closeCh:   make(chan struct{}),
		done:      make(chan struct{}),
	}
	r.options.Width = u.Width()
	r.options.Height = u.Height()
	r.options.Advanced = make(map[string]interface{})
	for k, v := range o.Advanced {
		r.options.Advanced[k] = v
	}
	r.status.LiveCells = u.LiveCells()
	go r.mainLoop()
	return &r
}

//View calls fn with the current universe while no tick can happen
//fn must not keep the universe or its Cells slice after it returns
func (r *Runner) View(fn func(u *universe.Universe)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.u)
}

//RegisterViewer registers the viewer - the runner will call the viewer when the state is changed
func (r *Runner) RegisterViewer(v Viewer) {
	r.views = append(r.views, v)
	v.Register(r)
}

//StateCh returns the channel with the status updates
func (r *Runner) StateCh() chan Status {
	return r.stateCh
}

//Status returns current status represented by Status struct
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

//Options returns current configuration represented by Options struct
func (r *Runner) Options() Options {
	return r.options
}

//Run starts the simulation, returns immediately
//simulation will stop on Stop() calling, on ctx cancellation or when the boundary conditions are reached
func (r *Runner) Run(ctx context.Context) {
	r.exec(func() { r.run(ctx) })
}

//Stop stops the simulation, returns immediately
func (r *Runner) Stop() {
	r.exec(r.stop)
}

//Step does one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (r *Runner) Step() {
	r.exec(r.step)
}

//Reset replaces the universe with a new one of the same dimensions created with opts
//a running simulation is stopped
func (r *Runner) Reset(opts ...universe.Option) error {
	u, err := universe.New(r.options.Height, r.options.Width, opts...)
	if err != nil {
		return err
	}
	r.exec(func() { r.reset(u) })
	return nil
}

//Clear kills all cells and resets the counters
func (r *Runner) Clear() error {
	return r.Reset(universe.WithSeed(universe.EmptySeed))
}

//InverseCell inverses the cell state at row, col, returns immediately
//the universe is rebuilt from the current generation with this cell flipped
func (r *Runner) InverseCell(row int, col int) {
	if row < 0 || col < 0 || row >= r.options.Height || col >= r.options.Width {
		return
	}
	r.exec(func() {
		r.mu.Lock()
		cells := append([]byte(nil), r.u.Cells()...)
		r.mu.Unlock()
		cells[row*r.options.Width+col] ^= 1
		u, err := universe.New(r.options.Height, r.options.Width, universe.WithCells(cells))
		if err != nil {
			return
		}
		r.reset(u)
	})
}

//Close stops the main loop, returns immediately
func (r *Runner) Close() {
	r.closeOnce.Do(func() { close(r.closeCh) })
}

//Done is closed when the main loop has exited
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

//exec hands cmd to the main loop
//returns false when the runner is closed and cmd will never run
func (r *Runner) exec(cmd func()) bool {
	select {
	case r.controlCh <- cmd:
		return true
	case <-r.done:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (r *Runner) mainLoop() {
	defer close(r.done)
	for {
		select {
		case cmd := <-r.controlCh:
			cmd()
		case <-r.closeCh:
			return
		}
	}
}

//switchRunningState switch the state of the simulation to RunningState
//also writes the new state to the stateCh to signal upper control software
func (r *Runner) switchRunningState(to RunningState) {
	r.mu.Lock()
	r.status.RunningMode = to
	st := r.status
	r.mu.Unlock()
	if r.stateCh != nil {
		r.stateCh <- st
	}
}

//run starts the ticking goroutine
//every run gets its own id, a goroutine whose id is no longer current exits instead of stepping
func (r *Runner) run(ctx context.Context) {
	if r.Status().RunningMode == RunningStateRun {
		return
	}
	r.endRun()
	id := r.runID
	runCtx, cancel := context.WithCancel(ctx)
	r.cancelRun = cancel
	r.switchRunningState(RunningStateRun)
	go func() {
		for {
			stepped := make(chan bool, 1)
			if !r.exec(func() {
				if id != r.runID {
					stepped <- false
					return
				}
				if r.Status().RunningMode != RunningStateRun {
					r.endRun()
					stepped <- false
					return
				}
				r.step()
				stepped <- true
			}) {
				return
			}
			if !<-stepped {
				return
			}
			var wait <-chan time.Time
			if r.options.Interval > 0 {
				wait = time.After(r.options.Interval)
			} else {
				ch := make(chan time.Time)
				close(ch)
				wait = ch
			}
			select {
			case <-runCtx.Done():
				if ctx.Err() != nil {
					r.exec(func() {
						if id == r.runID {
							r.stop()
						}
					})
				}
				return
			case <-wait:
			}
		}
	}()
}

//endRun invalidates the current run and wakes its goroutine
func (r *Runner) endRun() {
	if r.cancelRun != nil {
		r.cancelRun()
		r.cancelRun = nil
	}
	r.runID++
}

//stop stops the running cycle
func (r *Runner) stop() {
	r.endRun()
	if r.Status().RunningMode == RunningStateRun {
		r.switchRunningState(RunningStateManual)
	}
}

//step does one tick of the universe
//the simulation is finished when MaxSteps is reached, nothing is alive or nothing has changed
func (r *Runner) step() {
	finished := false
	rm := r.Status().RunningMode
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	defer func() {
		if finished {
			r.switchRunningState(RunningStateFinished)
		} else {
			r.switchRunningState(rm)
		}
		r.refreshView()
	}()

	r.mu.Lock()
	maxIter := r.options.MaxSteps
	if maxIter != 0 && r.u.Generation() >= maxIter {
		finished = true
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.switchRunningState(RunningStateStep)

	r.mu.Lock()
	start := time.Now()
	r.u.Tick()
	r.status.IterationTime = time.Since(start)
	r.status.IterationNum = r.u.Generation()
	r.status.LiveCells = r.u.LiveCells()
	if r.u.LiveCells() == 0 || !r.u.Changed() || (maxIter != 0 && r.u.Generation() >= maxIter) {
		finished = true
	}
	r.mu.Unlock()
}

//reset swaps in the new universe and resets all counters
func (r *Runner) reset(u *universe.Universe) {
	r.endRun()
	r.mu.Lock()
	r.u = u
	r.status = Status{LiveCells: u.LiveCells()}
	r.mu.Unlock()
	r.switchRunningState(RunningStateManual)
	r.refreshView()
}

//refreshView calls Refresh event for all registered views
func (r *Runner) refreshView() {
	for _, v := range r.views {
		v.Refresh()
	}
}
