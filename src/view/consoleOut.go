package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"lifegame/src/runner"
)

//ConsoleOut prints the progress of a non-interactive simulation
type ConsoleOut struct {
	r         *runner.Runner
	w         io.Writer
	startTime time.Time
	lastIter  int
}

func NewConsoleOut(w io.Writer) *ConsoleOut {
	return &ConsoleOut{w: w, lastIter: -1}
}

func (c *ConsoleOut) Refresh() {
	st := c.r.Status()
	if st.RunningMode == runner.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		fmt.Fprintln(c.w, aurora.Red("\nFinished:"))
		c.printHashData(resultData)
	} else if st.RunningMode == runner.RunningStateRun {
		//the same iteration is reported on every refresh until the next step
		if st.IterationNum%10 == 0 && st.IterationNum != c.lastIter {
			c.lastIter = st.IterationNum
			fmt.Fprintf(c.w, "  Iterations done: %v\n", st.IterationNum)
		}
	}
}

func (c *ConsoleOut) Register(r *runner.Runner) {
	c.r = r
	o := r.Options()
	fmt.Fprintln(c.w, "Running configuration:")
	fmt.Fprintf(c.w, "  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Fprintf(c.w, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.w, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() error {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
	return nil
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
