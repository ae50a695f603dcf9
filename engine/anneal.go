// anneal.go - simulated-annealing place-and-route loop.
//
// PlaceAndRoute runs the following procedure:
//  1. Initial placement via policy.InitialPlacement.
//  2. Evaluate cost; if zero, done.
//  3. Select bad nodes via policy.FindSubOptimalPlacements.
//  4. Pick a pivot, propose a move or swap via policy.GetNewPlacementForNode.
//  5. Check legality via policy.CanMoveNode.
//  6. Apply tentatively, re-evaluate cost.
//  7. Accept unconditionally if cost improved; otherwise accept with
//     Metropolis probability exp((C-C')/T).
//  8. On rejection, undo the tentative move.
//  9. Cool the temperature geometrically.
//  10. Track the best-seen mate snapshot; restore it on give-up.
//  11. Stop on convergence, stall exhaustion, cancellation, or deadline.
package engine

import (
	"math"
	"time"

	"github.com/parforge/parforge/pargraph"
)

// PlaceAndRoute runs the annealing search to completion and returns the
// terminal Status. Engine accessors (BestCost, Iterations, UnroutableEdges)
// reflect the best-seen placement once this returns, except when a Policy
// hook returns an error or ErrEmptyBadNodes is returned: those paths return
// at once and leave the current placement in place.
//
// A run that ends unrouted after GetNewPlacementForNode has returned nil
// for a whole stall window (MaxStalledIterations consecutive iterations)
// returns StatusUnrouted together with ErrNoCandidate.
func (e *Engine) PlaceAndRoute() (Status, error) {
	ok, err := e.policy.InitialPlacement(e)
	if err != nil {
		return StatusUnrouted, err
	}
	e.logger.Debug("initial placement complete", "fully_placed", ok)

	e.cost = e.evaluateCost()
	e.bestCost = e.cost
	e.snapshotBest()
	e.metrics.SetBestCost(e.bestCost)
	e.metrics.SetUnroutableEdges(len(e.unroutable))
	e.metrics.SetTemperature(e.temp)

	if e.cost == 0 {
		e.status = StatusSolved
		return e.status, nil
	}

	noCandidate := 0 // consecutive iterations with no candidate from the hook
	for e.iteration < e.opts.MaxIterations {
		if e.cancelled() {
			e.restoreBest()
			e.status = StatusCancelled
			return e.status, nil
		}
		if e.deadlineExceeded() {
			e.restoreBest()
			e.status = StatusTimedOut
			return e.status, nil
		}
		if e.stalled >= e.opts.MaxStalledIterations {
			break
		}

		e.iteration++
		e.metrics.IncIterations()

		bad, err := e.policy.FindSubOptimalPlacements(e)
		if err != nil {
			return StatusUnrouted, err
		}
		if len(bad) == 0 {
			if e.cost != 0 {
				return StatusUnrouted, ErrEmptyBadNodes
			}
			break
		}

		pivot := bad[e.rand.Intn(len(bad))]
		oldMate := pivot.Mate()

		newMate, err := e.policy.GetNewPlacementForNode(e, pivot)
		if err != nil {
			return StatusUnrouted, err
		}
		if newMate == nil {
			e.stalled++
			noCandidate++
			continue
		}
		noCandidate = 0
		if !e.policy.CanMoveNode(e, pivot, oldMate, newMate) {
			e.stalled++
			continue
		}

		displaced := newMate.Mate()
		if displaced != nil && oldMate != nil && !oldMate.HasLabel(displaced.Label()) {
			e.stalled++
			continue
		}
		e.applyMove(pivot, oldMate, newMate, displaced)

		newCost := e.evaluateCost()
		accept := newCost <= e.cost
		if !accept {
			delta := float64(e.cost) - float64(newCost)
			accept = e.rand.Float64() < math.Exp(delta/e.temp)
		}

		if accept {
			e.cost = newCost
			if newCost < e.bestCost {
				e.bestCost = newCost
				e.snapshotBest()
				e.stalled = 0
			} else {
				e.stalled++
			}
		} else {
			e.undoMove(pivot, oldMate, newMate, displaced)
			e.unroutable = findUnroutableEdges(e.netlist)
			e.stalled++
		}

		e.cool()
		e.metrics.SetBestCost(e.bestCost)
		e.metrics.SetUnroutableEdges(len(e.unroutable))
		e.metrics.SetTemperature(e.temp)
		e.policy.PrintUnroutes(e, e.unroutable)

		if e.cost == 0 {
			break
		}
	}

	e.restoreBest()
	if e.bestCost == 0 {
		e.status = StatusSolved
	} else {
		e.status = StatusUnrouted
		e.policy.PrintUnroutes(e, e.unroutable)
		if noCandidate >= e.opts.MaxStalledIterations {
			return e.status, ErrNoCandidate
		}
	}
	return e.status, nil
}

// applyMove reassigns pivot to newMate. Whatever newMate previously held
// (displaced) moves to oldMate; with nothing displaced, oldMate is freed.
func (e *Engine) applyMove(pivot, oldMate, newMate, displaced *pargraph.Node) {
	if oldMate != nil {
		oldMate.SetMate(displaced)
	}
	if displaced != nil {
		displaced.SetMate(oldMate)
	}
	pivot.SetMate(newMate)
	newMate.SetMate(pivot)
}

// undoMove reverses applyMove exactly.
func (e *Engine) undoMove(pivot, oldMate, newMate, displaced *pargraph.Node) {
	pivot.SetMate(oldMate)
	if oldMate != nil {
		oldMate.SetMate(pivot)
	}
	newMate.SetMate(displaced)
	if displaced != nil {
		displaced.SetMate(newMate)
	}
}

// cool applies the geometric cooling schedule, floored at TemperatureFinal.
func (e *Engine) cool() {
	e.temp *= e.opts.CoolingRatio
	if e.temp < e.opts.TemperatureFinal {
		e.temp = e.opts.TemperatureFinal
	}
}

// snapshotBest records the current netlist->device mate assignment as the
// best seen so far.
func (e *Engine) snapshotBest() {
	if e.bestMates == nil {
		e.bestMates = make(map[*pargraph.Node]*pargraph.Node, len(e.netlist.Nodes()))
	}
	for _, n := range e.netlist.Nodes() {
		e.bestMates[n] = n.Mate()
	}
}

// restoreBest reinstates the best-seen mate snapshot, including clearing
// device-side mates that no longer correspond to a netlist node in the
// snapshot.
func (e *Engine) restoreBest() {
	if e.bestMates == nil {
		return
	}
	for _, d := range e.device.Nodes() {
		d.SetMate(nil)
	}
	for n, mate := range e.bestMates {
		n.SetMate(mate)
		if mate != nil {
			mate.SetMate(n)
		}
	}
	e.unroutable = findUnroutableEdges(e.netlist)
	e.cost = e.bestCost
}

func (e *Engine) cancelled() bool {
	if e.opts.Cancel == nil {
		return false
	}
	select {
	case <-e.opts.Cancel:
		return true
	default:
		return false
	}
}

func (e *Engine) deadlineExceeded() bool {
	if e.opts.Deadline.IsZero() {
		return false
	}
	return time.Now().After(e.opts.Deadline)
}
