// Package tabs holds the step selection of an item page.
package tabs

import (
	"errors"
	"fmt"
	"strings"
)

// Step names one tab of an item page.
type Step string

const (
	Overview Step = "OVERVIEW"
	Settings Step = "SETTINGS"
)

// ErrUnknownStep is returned when selecting a step the machine was not built with.
var ErrUnknownStep = errors.New("unknown step")

// Machine tracks the selected step for one mounted entity. Transitions happen
// only through Select; there are no automatic transitions or guards.
type Machine struct {
	steps    []Step
	current  Step
	entityID string
}

// New returns a machine on Overview that also accepts the extra steps.
func New(extra ...Step) *Machine {
	steps := append([]Step{Overview, Settings}, extra...)
	return &Machine{steps: steps, current: Overview}
}

// Current returns the selected step.
func (m *Machine) Current() Step {
	return m.current
}

// Steps returns the selectable steps in display order.
func (m *Machine) Steps() []Step {
	return append([]Step(nil), m.steps...)
}

// Select moves to step.
func (m *Machine) Select(step Step) error {
	if !m.has(step) {
		return fmt.Errorf("%w: %s", ErrUnknownStep, step)
	}
	m.current = step
	return nil
}

// Mount binds the machine to an entity. Mounting a different entity resets
// the selection to Overview; remounting the same entity keeps it.
func (m *Machine) Mount(entityID string) {
	if m.entityID != entityID {
		m.current = Overview
	}
	m.entityID = entityID
}

// Parse resolves a case-insensitive step name against the machine's steps.
// An empty name resolves to Overview.
func (m *Machine) Parse(name string) (Step, error) {
	if name == "" {
		return Overview, nil
	}
	step := Step(strings.ToUpper(name))
	if !m.has(step) {
		return "", fmt.Errorf("%w: %s", ErrUnknownStep, name)
	}
	return step, nil
}

func (m *Machine) has(step Step) bool {
	for _, s := range m.steps {
		if s == step {
			return true
		}
	}
	return false
}
