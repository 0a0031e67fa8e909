// Package damage tracks which parts of a device surface need repainting.
//
// A Region divides a bounded geom.IRect into fixed-size tiles and keeps
// one bit per tile. Callers mark rectangles in device space (or float
// rectangles under a transform) and later walk the dirty tiles or ask for
// their bounding box.
package damage

import (
	"math/bits"
	"sync/atomic"

	"github.com/gogpu/geom"
)

// MaxTiles bounds the number of tiles in a Region, keeping the bitmap
// at or below 8 MiB.
const MaxTiles = 1 << 26

// Region tracks dirty tiles using an atomic bitmap.
// All methods are safe for concurrent use without external synchronization.
type Region struct {
	// words is the bitmap, one bit per tile.
	// Bit index = ty * tilesX + tx.
	words []atomic.Uint64

	bounds       geom.IRect
	tileW, tileH int64
	tilesX       int
	tilesY       int
}

// New creates a dirty region covering bounds, split into tileW x tileH
// tiles. Tiles on the right and bottom edges may be smaller.
// All tiles start clean.
//
// Returns nil if bounds is a sentinel, inverted or has no area, if a tile
// dimension is not positive, or if the region would need more than
// MaxTiles tiles.
func New(bounds geom.IRect, tileW, tileH int) *Region {
	if tileW <= 0 || tileH <= 0 {
		return nil
	}
	if bounds.IsInfinite() || bounds.IsInverted() {
		return nil
	}
	w, h := bounds.Width(), bounds.Height()
	if w == 0 || h == 0 {
		return nil
	}

	tw, th := int64(tileW), int64(tileH)
	// Per-axis checks first, so the product cannot overflow.
	tx, ty := (w+tw-1)/tw, (h+th-1)/th
	if tx > MaxTiles || ty > MaxTiles || tx*ty > MaxTiles {
		return nil
	}
	tilesX, tilesY := int(tx), int(ty)
	totalTiles := tilesX * tilesY

	return &Region{
		words:  make([]atomic.Uint64, (totalTiles+63)/64),
		bounds: bounds,
		tileW:  tw,
		tileH:  th,
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

// Area returns the device rectangle the region was created for.
func (d *Region) Area() geom.IRect {
	return d.bounds
}

// markTile marks a single tile. Coordinates must be in range.
func (d *Region) markTile(tx, ty int) {
	idx := ty*d.tilesX + tx
	d.words[idx/64].Or(1 << (idx & 63))
}

// Mark marks every tile that r touches. r is clipped to the region first;
// geom.InfiniteIRect marks everything and geom.EmptyIRect nothing.
func (d *Region) Mark(r geom.IRect) {
	clip := r.Intersect(d.bounds)
	if clip.Width() == 0 || clip.Height() == 0 {
		return
	}

	// Tile range, inclusive, relative to the region origin.
	tx1 := int((int64(clip.X0) - int64(d.bounds.X0)) / d.tileW)
	ty1 := int((int64(clip.Y0) - int64(d.bounds.Y0)) / d.tileH)
	tx2 := int((int64(clip.X1) - 1 - int64(d.bounds.X0)) / d.tileW)
	ty2 := int((int64(clip.Y1) - 1 - int64(d.bounds.Y0)) / d.tileH)

	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.markTile(tx, ty)
		}
	}
}

// MarkTransformed marks the device pixels covered by r mapped through m.
func (d *Region) MarkTransformed(r geom.Rect, m geom.Matrix) {
	if r.IsEmpty() {
		return
	}
	d.Mark(r.Transform(m).Cover())
}

// MarkAll marks all tiles as dirty.
func (d *Region) MarkAll() {
	totalTiles := d.tilesX * d.tilesY
	fullWords := totalTiles / 64
	remainder := totalTiles % 64

	for i := 0; i < fullWords; i++ {
		d.words[i].Store(^uint64(0))
	}
	if remainder > 0 {
		d.words[fullWords].Store((uint64(1) << remainder) - 1)
	}
}

// Clear marks all tiles clean.
func (d *Region) Clear() {
	for i := range d.words {
		d.words[i].Store(0)
	}
}

// IsDirty reports whether the tile at (tx, ty) is dirty.
// Returns false for out-of-range coordinates.
func (d *Region) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// IsEmpty reports whether no tile is dirty.
func (d *Region) IsEmpty() bool {
	for i := range d.words {
		if d.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of dirty tiles.
func (d *Region) Count() int {
	count := 0
	for i := range d.words {
		count += bits.OnesCount64(d.words[i].Load())
	}
	return count
}

// TileRect returns the device rectangle of tile (tx, ty), clipped to the
// region. Out-of-range coordinates give geom.EmptyIRect.
func (d *Region) TileRect(tx, ty int) geom.IRect {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return geom.EmptyIRect
	}
	x0 := int64(d.bounds.X0) + int64(tx)*d.tileW
	y0 := int64(d.bounds.Y0) + int64(ty)*d.tileH
	return geom.IRect{
		X0: int32(x0),
		Y0: int32(y0),
		X1: int32(min(x0+d.tileW, int64(d.bounds.X1))),
		Y1: int32(min(y0+d.tileH, int64(d.bounds.Y1))),
	}
}

// Tiles calls fn with the device rectangle of each dirty tile, in
// row-major order, without clearing anything.
func (d *Region) Tiles(fn func(r geom.IRect)) {
	d.visit(false, fn)
}

// Drain is like Tiles but atomically clears each word as it is read, so
// marks made concurrently are either reported now or left for the next
// call, never lost.
func (d *Region) Drain(fn func(r geom.IRect)) {
	d.visit(true, fn)
}

func (d *Region) visit(clear bool, fn func(r geom.IRect)) {
	if fn == nil {
		return
	}
	for wordIdx := range d.words {
		var word uint64
		if clear {
			word = d.words[wordIdx].Swap(0)
		} else {
			word = d.words[wordIdx].Load()
		}
		for word != 0 {
			bitIdx := bits.TrailingZeros64(word)
			tileIdx := wordIdx*64 + bitIdx
			fn(d.TileRect(tileIdx%d.tilesX, tileIdx/d.tilesX))
			word &^= 1 << bitIdx
		}
	}
}

// Bounds returns the union of all dirty tile rectangles, or
// geom.EmptyIRect if the region is clean.
func (d *Region) Bounds() geom.IRect {
	u := geom.EmptyIRect
	d.Tiles(func(r geom.IRect) {
		u = u.Union(r)
	})
	return u
}

// TilesX returns the number of tiles horizontally.
func (d *Region) TilesX() int {
	return d.tilesX
}

// TilesY returns the number of tiles vertically.
func (d *Region) TilesY() int {
	return d.tilesY
}
