package rtlfix

import (
	"context"
	"fmt"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
)

// A UnitBuffer records the boundaries of character units within a span of
// text. A unit is a whole code-point, or a single byte within an ill-formed
// UTF-8 sequence. Concatenating the units in order reconstructs the span
// byte for byte, so no amount of splitting and re-assembling ever loses or
// repairs bytes.
//
// Unit buffers are the scratch memory of the run reverser: reversing a run
// means emitting its units in reverse order.
type UnitBuffer struct {
	ends []int // exclusive end offset of every unit, ascending
}

// NewUnitBuffer creates a new UnitBuffer.
// This is rarely used, as clients rather should call BorrowUnitBuffer().
//
// see BorrowUnitBuffer.
func NewUnitBuffer() *UnitBuffer {
	return &UnitBuffer{}
}

// Unit buffers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type unitBufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalUnitBufferPool *unitBufferPool

func init() {
	globalUnitBufferPool = &unitBufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			ub := &UnitBuffer{}
			return ub, nil
		})
	globalUnitBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalUnitBufferPool.opool = pool.NewObjectPool(globalUnitBufferPool.ctx, factory, config)
}

// BorrowUnitBuffer returns a UnitBuffer from the pool, ready for a call to
// Split. Callers hand it back with Release.
func BorrowUnitBuffer() *UnitBuffer {
	o, _ := globalUnitBufferPool.opool.BorrowObject(globalUnitBufferPool.ctx)
	ub := o.(*UnitBuffer)
	return ub
}

// Release clears the buffer and puts it back into the pool.
func (ub *UnitBuffer) Release() {
	ub.ends = ub.ends[:0]
	_ = globalUnitBufferPool.opool.ReturnObject(globalUnitBufferPool.ctx, ub)
}

// Split records the character units of text. Previous content is discarded.
// Every well-formed code-point is one unit. Every byte of an ill-formed
// sequence is a unit of its own.
func (ub *UnitBuffer) Split(text string) {
	ub.ends = ub.ends[:0]
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		ub.ends = append(ub.ends, i)
	}
}

// Units returns the number of units recorded by the last Split.
func (ub *UnitBuffer) Units() int {
	return len(ub.ends)
}

// Unit returns the byte span of unit i, relative to the text given to
// Split. End offset is exclusive.
func (ub *UnitBuffer) Unit(i int) (start int, end int) {
	if i > 0 {
		start = ub.ends[i-1]
	}
	return start, ub.ends[i]
}

// Simple stringer for debugging purposes.
func (ub *UnitBuffer) String() string {
	if ub == nil {
		return "[nil buffer]"
	}
	return fmt.Sprintf("[%d units]", len(ub.ends))
}
