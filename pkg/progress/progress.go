// Package progress renders the in-place textual progress indicator the
// converter reports into during conversion.
package progress

import (
	"io"
	"strconv"

	"mdfconv/pkg/options"
)

// barWidth is the fixed column width of the indicator.
const barWidth = 80

// Reporter writes a proportional progress bar that overwrites itself in
// place. It shares the CommonOptions the resolver fills, so it honors the
// non-interactive flag without being reconfigured after resolution.
type Reporter struct {
	out    io.Writer
	common *options.CommonOptions
	buf    []byte
}

// NewReporter builds a reporter writing to out.
func NewReporter(out io.Writer, common *options.CommonOptions) *Reporter {
	return &Reporter{
		out:    out,
		common: common,
		buf:    make([]byte, 0, barWidth+32),
	}
}

// Report renders the bar for current out of total. It is a no-op in
// non-interactive mode. Each call rewrites the same line; the line is
// terminated only when current equals total. The render buffer is reused
// between calls, so repeated invocation does not grow memory.
func (r *Reporter) Report(current, total int) {
	if r.common != nil && r.common.NonInteractive {
		return
	}

	fill := 0
	if total > 0 {
		fill = int(float64(current) / float64(total) * barWidth)
	}

	b := append(r.buf[:0], '\r')
	for i := 0; i < fill-1; i++ {
		b = append(b, '=')
	}
	if current != total {
		b = append(b, '>')
	}
	for i := fill; i < barWidth; i++ {
		b = append(b, ' ')
	}
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(current), 10)
	b = append(b, " / "...)
	b = strconv.AppendInt(b, int64(total), 10)
	if current == total {
		b = append(b, '\n')
	}
	r.buf = b

	_, _ = r.out.Write(b)
}
