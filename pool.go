package postfix

import (
	"context"

	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
)

// machine holds the two stacks used while evaluating one expression: the
// float64 values and the infix nodes of every subexpression not yet consumed
// by an operator. The stacks always have the same size.
type machine struct {
	vals  *arraystack.Stack
	nodes *arraystack.Stack
}

func newMachine() *machine {
	return &machine{
		vals:  arraystack.New(),
		nodes: arraystack.New(),
	}
}

func (m *machine) push(v float64, n *node) {
	m.vals.Push(v)
	m.nodes.Push(n)
}

// pop removes the top value and node. ok is false if the stacks are empty.
func (m *machine) pop() (v float64, n *node, ok bool) {
	x, ok := m.vals.Pop()
	if !ok {
		return 0, nil, false
	}
	y, _ := m.nodes.Pop()
	return x.(float64), y.(*node), true
}

func (m *machine) size() int {
	return m.vals.Size()
}

// Machines are short-lived and ReadAll may need one per line, so they are
// pooled.
type machinePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalMachinePool *machinePool

func init() {
	globalMachinePool = &machinePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newMachine(), nil
		})
	globalMachinePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalMachinePool.opool = pool.NewObjectPool(globalMachinePool.ctx, factory, config)
}

// borrowMachine returns an empty machine from the pool.
func borrowMachine() *machine {
	o, err := globalMachinePool.opool.BorrowObject(globalMachinePool.ctx)
	if err != nil {
		tracer().Errorf("borrowing evaluation machine: %v", err)
		return newMachine()
	}
	return o.(*machine)
}

// release clears the machine and puts it back into the pool.
func (m *machine) release() {
	m.vals.Clear()
	m.nodes.Clear()
	if err := globalMachinePool.opool.ReturnObject(globalMachinePool.ctx, m); err != nil {
		tracer().Errorf("returning evaluation machine: %v", err)
	}
}
