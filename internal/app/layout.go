package app

import (
	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// stripLayout sizes cells relative to the strip on every layout pass. A
// configured item width or height pins that dimension.
type stripLayout struct {
	cfg     config.CarouselConfig
	perPage int
}

var _ carousel.LayoutDelegate = stripLayout{}

// ItemSize implements carousel.LayoutDelegate.
func (d stripLayout) ItemSize(viewport carousel.Size) carousel.Size {
	width := d.cfg.ItemWidth
	if width == 0 {
		width = layout.ItemWidth(viewport.Width, d.perPage, d.ItemSpacing(viewport))
	}
	height := layout.ItemHeight(viewport.Height, d.cfg.ItemHeight, d.cfg.Insets.Top, d.cfg.Insets.Bottom)
	return carousel.Size{Width: width, Height: height}
}

// ItemSpacing implements carousel.LayoutDelegate.
func (d stripLayout) ItemSpacing(carousel.Size) int {
	return *d.cfg.ItemSpacing
}

// SectionInsets implements carousel.LayoutDelegate. Cells are centred
// vertically in the strip.
func (d stripLayout) SectionInsets(viewport carousel.Size) carousel.Insets {
	size := d.ItemSize(viewport)
	top, bottom := layout.VerticalInsets(viewport.Height, size.Height, d.cfg.Insets.Top, d.cfg.Insets.Bottom)
	return carousel.Insets{
		Top:    top,
		Left:   d.cfg.Insets.Left,
		Bottom: bottom,
		Right:  d.cfg.Insets.Right,
	}
}
