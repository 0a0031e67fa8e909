package warp

import (
	"image/draw"

	"github.com/gogpu/geom"
	xdraw "golang.org/x/image/draw"
)

// Option configures a Draw call.
//
// Example:
//
//	warp.Draw(dst, ctm, img, img.Bounds(),
//	    warp.WithInterpolator(xdraw.CatmullRom),
//	    warp.WithClip(dirty))
type Option func(*options)

type options struct {
	interp xdraw.Interpolator
	op     draw.Op
	clip   geom.IRect
}

func defaultOptions() options {
	return options{
		interp: xdraw.ApproxBiLinear,
		op:     draw.Over,
		clip:   geom.InfiniteIRect,
	}
}

// WithInterpolator sets the resampling kernel. The default is
// xdraw.ApproxBiLinear. A nil interpolator keeps the default.
func WithInterpolator(i xdraw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interp = i
		}
	}
}

// WithOp sets the compositing operator. The default is draw.Over.
func WithOp(op draw.Op) Option {
	return func(o *options) {
		o.op = op
	}
}

// WithClip restricts drawing to r in destination space, on top of the
// destination bounds. geom.InfiniteIRect (the default) means no extra clip.
func WithClip(r geom.IRect) Option {
	return func(o *options) {
		o.clip = r
	}
}
