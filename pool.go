package jvx

import (
	"sync"

	"pkt.systems/jvx/internal/ansi"
)

const maxScratchCap = 64 * 1024

var printerPool = sync.Pool{
	New: func() any {
		return &printer{}
	},
}

func acquirePrinter(opts *Options) *printer {
	p := printerPool.Get().(*printer)
	p.opts = opts.normalized()
	p.pal = resolvePalette(&p.opts)
	return p
}

func releasePrinter(p *printer) {
	if p == nil {
		return
	}
	p.opts = Options{}
	p.pal = ansi.Palette{}
	p.dtoa.release()
	if cap(p.scratch) > maxScratchCap {
		p.scratch = nil
	} else {
		p.scratch = p.scratch[:0]
	}
	printerPool.Put(p)
}
