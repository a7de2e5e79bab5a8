// Package panel translates logical simulation pixels into writes on a physical
// HUB75 frame sink.
//
// A 128x128 display is usually assembled from 32-row modules chained into one
// long strip, so the driver sees a 512x32 buffer. The Remapper implementations
// here encode that wiring; Display applies it, drops out-of-range writes and
// skips writes that would not change the panel.
package panel

import (
	"errors"
	"fmt"

	"hub75-ca/internal/core"
)

// ErrUnknownLayout is returned by Layout for unregistered layout names.
var ErrUnknownLayout = errors.New("unknown panel layout")

// Remapper translates logical cell coordinates into physical panel addresses.
// Remap must be pure and is only defined for coordinates inside Logical().
type Remapper interface {
	Logical() core.Size
	Physical() core.Size
	Remap(x, y int) (int, int)
}

// Chain maps a logical image onto a strip of chained modules.
//
// The image is cut into horizontal bands of Band rows and each band into
// quadrants of Quadrant columns. Every quadrant is rotated by 90 degrees into
// its own Band-wide, Quadrant-tall segment of the strip. Order[b][q] names the
// segment that receives quadrant q of band b. Even quadrants are written
// directly, odd quadrants mirrored, following the serpentine wiring.
type Chain struct {
	W, H     int
	Band     int
	Quadrant int
	Order    [][]int
}

// Chain128 returns the wiring of the 128x128 display built from four 32-row
// modules addressed as one 512x32 buffer.
func Chain128() *Chain {
	return &Chain{
		W:        128,
		H:        128,
		Band:     64,
		Quadrant: 32,
		Order: [][]int{
			{3, 2, 1, 0},
			{4, 5, 6, 7},
		},
	}
}

// Validate checks that the order table covers the logical image and that no
// segment is used twice.
func (c *Chain) Validate() error {
	if c.Band <= 0 || c.Quadrant <= 0 {
		return fmt.Errorf("panel: band %d and quadrant %d must be positive", c.Band, c.Quadrant)
	}
	if c.H%c.Band != 0 || c.W%c.Quadrant != 0 {
		return fmt.Errorf("panel: %dx%d is not a multiple of %dx%d", c.W, c.H, c.Quadrant, c.Band)
	}
	bands, quads := c.H/c.Band, c.W/c.Quadrant
	if len(c.Order) != bands {
		return fmt.Errorf("panel: order has %d bands, want %d", len(c.Order), bands)
	}
	seen := make(map[int]bool, bands*quads)
	for b, row := range c.Order {
		if len(row) != quads {
			return fmt.Errorf("panel: band %d has %d quadrants, want %d", b, len(row), quads)
		}
		for _, seg := range row {
			if seg < 0 || seg >= bands*quads {
				return fmt.Errorf("panel: segment %d out of range", seg)
			}
			if seen[seg] {
				return fmt.Errorf("panel: segment %d used twice", seg)
			}
			seen[seg] = true
		}
	}
	return nil
}

// Logical returns the logical image size.
func (c *Chain) Logical() core.Size { return core.Size{W: c.W, H: c.H} }

// Physical returns the size of the chained buffer.
func (c *Chain) Physical() core.Size {
	segments := (c.W / c.Quadrant) * (c.H / c.Band)
	return core.Size{W: segments * c.Band, H: c.Quadrant}
}

// Remap returns the physical address of logical cell (x, y).
func (c *Chain) Remap(x, y int) (int, int) {
	band, yh := y/c.Band, y%c.Band
	quad, xh := x/c.Quadrant, x%c.Quadrant
	base := c.Order[band][quad] * c.Band
	if quad%2 == 0 {
		return base + yh, c.Quadrant - 1 - xh
	}
	return base + c.Band - 1 - yh, xh
}

// Identity is a directly wired panel where logical and physical addresses match.
type Identity struct {
	W, H int
}

// Logical returns the panel size.
func (i Identity) Logical() core.Size { return core.Size{W: i.W, H: i.H} }

// Physical returns the panel size.
func (i Identity) Physical() core.Size { return core.Size{W: i.W, H: i.H} }

// Remap returns (x, y) unchanged.
func (i Identity) Remap(x, y int) (int, int) { return x, y }

// Layout returns a named panel layout: "chain128", "direct64" or "direct128".
func Layout(name string) (Remapper, error) {
	switch name {
	case "chain128", "":
		return Chain128(), nil
	case "direct64":
		return Identity{W: 64, H: 64}, nil
	case "direct128":
		return Identity{W: 128, H: 128}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownLayout, name)
}
