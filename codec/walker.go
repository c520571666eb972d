package codec

import (
	"context"
	"fmt"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/swiftmt"
	"github.com/npillmayer/swiftmt/tokenize"
)

// A walker steps through the segments of a delimited grammar, cutting tokens
// from the front (or the back) of the input and storing them into successive
// components.
//
// Walkers are short-lived objects, created for every value to parse. To avoid
// multiple allocation of small objects we pool them.
type walker struct {
	input string              // the unconsumed rest of the value
	comps *swiftmt.Components // where to store tokens
	at    int                 // next component to fill
}

type walkerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalWalkerPool *walkerPool

func init() {
	globalWalkerPool = &walkerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			w := &walker{}
			return w, nil
		})
	globalWalkerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalWalkerPool.opool = pool.NewObjectPool(globalWalkerPool.ctx, factory, config)
}

// borrowWalker returns a walker from the pool, positioned at component #1.
func borrowWalker(input string, c *swiftmt.Components) *walker {
	o, err := globalWalkerPool.opool.BorrowObject(globalWalkerPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow walker from pool: %v", err)
		o = &walker{}
	}
	w := o.(*walker)
	w.input = input
	w.comps = c
	w.at = 1
	return w
}

// release clears the walker and puts it back into the pool.
func (w *walker) release() {
	w.input = ""
	w.comps = nil
	w.at = 0
	_ = globalWalkerPool.opool.ReturnObject(globalWalkerPool.ctx, w)
}

// Simple stringer for debugging purposes.
func (w *walker) String() string {
	if w == nil {
		return "[nil walker]"
	}
	return fmt.Sprintf("[walker @%d %q]", w.at, w.input)
}

// segments walks a list of segments. Segments anchored to the end of the
// input are peeled from the back first, then the remaining segments are cut
// from the front of what is left.
func (w *walker) segments(segs []swiftmt.Segment) {
	front, tail := splitTail(segs)
	tailAt := w.at + arity(front)
	w.tail(tail, tailAt)
	for i, seg := range front {
		if !w.segment(seg, i == 0, front[i+1:]) {
			break
		}
	}
	w.at = tailAt + arity(tail)
}

// segment cuts a single segment from the front of the input. It returns false
// if walking should stop, leaving all further front components null.
func (w *walker) segment(seg swiftmt.Segment, first bool, following []swiftmt.Segment) bool {
	n := seg.Arity()
	if w.input == "" {
		return false
	}
	if seg.Sep != "" {
		switch {
		case strings.HasPrefix(w.input, seg.Sep) && fits(seg, w.input[len(seg.Sep):], following):
			w.input = w.input[len(seg.Sep):]
		case seg.Bracketed:
			w.at += n // optional group is absent
			return true
		case first:
			// leading marker may be omitted
		default:
			CT().Debugf("expected marker %q in %q", seg.Sep, w.input)
			return false
		}
	}
	var token string
	if seg.Width > 0 {
		if len(w.input) < seg.Width {
			CT().Debugf("input %q too short for width %d", w.input, seg.Width)
			return false
		}
		token, w.input = w.input[:seg.Width], w.input[seg.Width:]
	} else {
		end := nextMarker(w.input, following)
		token, w.input = w.input[:end], w.input[end:]
	}
	if n > 1 {
		splitSpan(token, n, w.comps, w.at)
	} else {
		w.comps.Set(w.at, token)
	}
	w.at += n
	return true
}

// tail peels segments anchored to the end of the input from the back, last
// segment first. Components are stored starting at index at.
func (w *walker) tail(segs []swiftmt.Segment, at int) {
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		k := at + arity(segs[:i])
		token, ok := tokenize.Last(w.input, seg.Sep)
		if !ok {
			continue
		}
		if len(token) == len(w.input) { // no marker
			if seg.Bracketed {
				continue
			}
			w.input = ""
		} else {
			w.input = w.input[:len(w.input)-len(token)-len(seg.Sep)]
		}
		if seg.Arity() > 1 {
			splitSpan(token, seg.Arity(), w.comps, k)
		} else {
			w.comps.Set(k, token)
		}
	}
}

// fits tells if an optional segment of fixed width is present in s, the
// input following the segment's marker. The token must be followed directly
// by the marker of the next segment, e.g. a D/C mark in "/D/ACCOUNT", but
// not in "/ACCOUNT".
func fits(seg swiftmt.Segment, s string, following []swiftmt.Segment) bool {
	if !seg.Bracketed || seg.Width == 0 {
		return true
	}
	if len(s) < seg.Width {
		return false
	}
	if len(following) == 0 || following[0].Sep == "" {
		return true
	}
	return strings.HasPrefix(s[seg.Width:], following[0].Sep)
}

// nextMarker finds the end of a variable-width token: the position of the
// nearest marker of the following segments which is present in s, or the
// end of s. Absent markers are skipped, as they may belong to optional parts.
func nextMarker(s string, following []swiftmt.Segment) int {
	for _, seg := range following {
		if seg.Sep == "" {
			continue
		}
		if before, _, found := tokenize.Cut(s, seg.Sep); found {
			return len(before)
		}
	}
	return len(s)
}

func splitTail(segs []swiftmt.Segment) (front, tail []swiftmt.Segment) {
	for i, seg := range segs {
		if seg.FromEnd {
			return segs[:i], segs[i:]
		}
	}
	return segs, nil
}

func arity(segs []swiftmt.Segment) int {
	n := 0
	for _, seg := range segs {
		n += seg.Arity()
	}
	return n
}

// --- Serializing -----------------------------------------------------------

// serializeSegments writes components #from…to according to a list of
// segments. A marker is written if any component at or after it is set.
// Markers of bracketed segments are written only together with their own
// components.
func serializeSegments(b *strings.Builder, segs []swiftmt.Segment, c *swiftmt.Components, from, to int) {
	at := from
	for _, seg := range segs {
		n := seg.Arity()
		if !anySet(c, at, to) {
			return
		}
		if seg.Bracketed && !anySet(c, at, at+n-1) {
			at += n
			continue
		}
		b.WriteString(seg.Sep)
		for i := at; i < at+n; i++ {
			b.WriteString(c.Value(i))
		}
		at += n
	}
}

func anySet(c *swiftmt.Components, from, to int) bool {
	for i := from; i <= to; i++ {
		if c.IsSet(i) {
			return true
		}
	}
	return false
}
