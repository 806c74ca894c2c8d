package engine

import (
	"fmt"

	"equity-desk/internal/interfaces"
	"equity-desk/internal/types"
)

// algoBoard tracks the Idle -> Running -> Stopped lifecycle of each mode.
// Stopped modes may be started again.
type algoBoard struct {
	states map[interfaces.AlgoMode]interfaces.AlgoState
}

func newAlgoBoard() *algoBoard {
	return &algoBoard{states: map[interfaces.AlgoMode]interfaces.AlgoState{
		interfaces.AlgoEquity:    interfaces.AlgoIdle,
		interfaces.AlgoOptions:   interfaces.AlgoIdle,
		interfaces.AlgoCommodity: interfaces.AlgoIdle,
		interfaces.AlgoSell:      interfaces.AlgoIdle,
	}}
}

// start reports false without error when mode is already running.
func (a *algoBoard) start(mode interfaces.AlgoMode) (bool, error) {
	st, err := a.state(mode)
	if err != nil {
		return false, err
	}
	if st == interfaces.AlgoRunning {
		return false, nil
	}
	a.states[mode] = interfaces.AlgoRunning
	return true, nil
}

func (a *algoBoard) stop(mode interfaces.AlgoMode) error {
	st, err := a.state(mode)
	if err != nil {
		return err
	}
	if st != interfaces.AlgoRunning {
		return fmt.Errorf("%w: %s is %s", types.ErrAlgoNotRunning, mode, st)
	}
	a.states[mode] = interfaces.AlgoStopped
	return nil
}

func (a *algoBoard) state(mode interfaces.AlgoMode) (interfaces.AlgoState, error) {
	st, ok := a.states[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownAlgo, mode)
	}
	return st, nil
}
