package hull

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/giftwrap/dbg"
)

// This is for debugging purposes only. A tracer narrates the wrap, one line
// per event, with points labeled by readable names instead of pointer
// strings. All methods are safe on a nil tracer so call sites don't have to
// guard.

type tracer struct {
	w io.Writer
}

func (tr *tracer) seeded(b *builder, anchor, candidate int) {
	if tr == nil {
		return
	}
	fmt.Fprintf(tr.w, "wrap from %s: seed %s, hull %s\n",
		aurora.Red(b.label(anchor)),
		aurora.Cyan(b.label(candidate)),
		tr.hullString(b),
	)
}

func (tr *tracer) swapped(b *builder, candidate int, o Orientation) {
	if tr == nil {
		return
	}
	reason := "right turn"
	if o.Collinear {
		if o.RightTurn {
			reason = "collinear, straight through"
		} else {
			reason = "collinear, fold-back"
		}
	}
	fmt.Fprintf(tr.w, "  %s takes over the candidate (%s)\n",
		aurora.Cyan(b.label(candidate)), reason)
}

func (tr *tracer) appended(b *builder, candidate int) {
	if tr == nil {
		return
	}
	fmt.Fprintf(tr.w, "  fixed %s on the hull\n", aurora.Green(b.label(candidate)))
}

func (tr *tracer) hullString(b *builder) string {
	var parts []string
	for _, idx := range b.hull {
		parts = append(parts, aurora.Green(b.label(idx)).String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func (b *builder) label(idx int) string {
	p := b.points[idx]
	return fmt.Sprintf("%s(%v, %v)", dbg.Name(p), p.X, p.Y)
}
