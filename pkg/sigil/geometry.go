package sigil

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// draw dispatches to the category's shape grammar. Categories without a
// dedicated grammar fall back to a concentric-ring mandala.
func (g *Generator) draw(dc *gg.Context, cx, cy, base float64) {
	switch g.category {
	case Root:
		g.drawRoot(dc, cx, cy, base)
	case Sacral:
		g.drawSacral(dc, cx, cy, base)
	case SolarPlexus:
		g.drawSolarPlexus(dc, cx, cy, base)
	default:
		g.drawMandala(dc, cx, cy, base)
	}
}

// layerColor cycles primary, secondary, accent over concentric layers: the
// innermost layer is primary, then even layers secondary, odd layers accent.
func (g *Generator) layerColor(i int) color.RGBA {
	switch {
	case i == 0:
		return g.palette.Primary
	case i%2 == 0:
		return g.palette.Secondary
	default:
		return g.palette.Accent
	}
}

// polygonPath traces a closed n-gon whose corners lie on a circle of radius
// r, the first corner at startDeg.
func polygonPath(dc *gg.Context, cx, cy, r float64, n int, startDeg float64) {
	for j := 0; j < n; j++ {
		a := gg.Radians(startDeg + float64(j)*360/float64(n))
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if j == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// drawRoot renders concentric rotated squares with grounding rays.
func (g *Generator) drawRoot(dc *gg.Context, cx, cy, base float64) {
	p := g.params
	scale := base * p.ScaleFactor
	dc.SetLineWidth(float64(p.LineWeight))

	for i := 0; i < p.LayerCount; i++ {
		polygonPath(dc, cx, cy, scale*(1-float64(i)*0.2), 4, p.RotationOffset+float64(i)*15)
		dc.SetColor(g.layerColor(i))
		dc.Stroke()
	}

	for i := 0; i < p.RayCount; i++ {
		a := gg.Radians(p.RotationOffset + 360/float64(p.RayCount)*float64(i))
		dc.DrawLine(cx, cy, cx+scale*1.3*math.Cos(a), cy+scale*1.3*math.Sin(a))
		dc.SetColor(g.palette.Accent)
		dc.Stroke()
	}
}

// drawSacral renders concentric circles ringed by half-circle arcs.
func (g *Generator) drawSacral(dc *gg.Context, cx, cy, base float64) {
	p := g.params
	scale := base * p.ScaleFactor
	dc.SetLineWidth(float64(p.LineWeight))

	for i := 0; i < p.LayerCount; i++ {
		dc.DrawCircle(cx, cy, scale*(1-float64(i)*0.18))
		dc.SetColor(g.layerColor(i))
		dc.Stroke()
	}

	for i := 0; i < p.RayCount; i++ {
		a := gg.Radians(p.RotationOffset + 360/float64(p.RayCount)*float64(i))
		ox := cx + scale*0.8*math.Cos(a)
		oy := cy + scale*0.8*math.Sin(a)
		dc.DrawArc(ox, oy, scale*0.3, a, a+math.Pi)
		dc.SetColor(g.palette.Accent)
		dc.Stroke()
	}
}

// drawSolarPlexus renders concentric triangles inside a sunburst of
// alternating long and short rays.
func (g *Generator) drawSolarPlexus(dc *gg.Context, cx, cy, base float64) {
	p := g.params
	scale := base * p.ScaleFactor
	dc.SetLineWidth(float64(p.LineWeight))

	for i := 0; i < p.LayerCount; i++ {
		polygonPath(dc, cx, cy, scale*(1-float64(i)*0.2), 3, p.RotationOffset+float64(i)*20)
		dc.SetColor(g.layerColor(i))
		dc.Stroke()
	}

	rays := p.RayCount * 2
	for i := 0; i < rays; i++ {
		a := gg.Radians(p.RotationOffset + 360/float64(rays)*float64(i))
		length := scale * 1.4
		col := g.palette.Primary
		if i%2 == 1 {
			length = scale * 1.1
			col = g.palette.Accent
		}
		dc.DrawLine(cx, cy, cx+length*math.Cos(a), cy+length*math.Sin(a))
		dc.SetColor(col)
		dc.Stroke()
	}
}

// drawMandala renders the generic fallback: concentric circles at the base
// figure size, alternating primary and secondary. The seed scale factor is
// deliberately not applied here.
func (g *Generator) drawMandala(dc *gg.Context, cx, cy, base float64) {
	p := g.params
	dc.SetLineWidth(float64(p.LineWeight))

	for i := 0; i < p.LayerCount; i++ {
		dc.DrawCircle(cx, cy, base*(1-float64(i)*0.2))
		if i%2 == 0 {
			dc.SetColor(g.palette.Primary)
		} else {
			dc.SetColor(g.palette.Secondary)
		}
		dc.Stroke()
	}
}
