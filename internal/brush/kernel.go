package brush

import "math"

// Kernel is a precomputed cone falloff used to weight brush strength by
// distance from the brush centre. The table is sized once for the largest
// reachable radius; only the effective radius changes on Rebuild.
type Kernel struct {
	tile      float64
	minRadius float64
	maxRadius float64

	radius  float64
	reach   int
	half    int
	side    int
	weights []float64
}

// NewKernel allocates a kernel for the given tile side and radius band and
// builds it at maxRadius.
func NewKernel(tile, minRadius, maxRadius float64) *Kernel {
	if tile <= 0 {
		tile = 1
	}
	if minRadius <= 0 {
		minRadius = tile
	}
	if maxRadius < minRadius {
		maxRadius = minRadius
	}
	half := int(math.Ceil(maxRadius / tile))
	side := 2*half + 1
	k := &Kernel{
		tile:      tile,
		minRadius: minRadius,
		maxRadius: maxRadius,
		half:      half,
		side:      side,
		weights:   make([]float64, side*side),
	}
	k.Rebuild(maxRadius)
	return k
}

// Rebuild refills the table for radius, clamped to the configured band, and
// returns the radius actually used.
func (k *Kernel) Rebuild(radius float64) float64 {
	radius = clamp(radius, k.minRadius, k.maxRadius)
	k.radius = radius
	k.reach = int(math.Ceil(radius / k.tile))
	if k.reach > k.half {
		k.reach = k.half
	}
	for i := 0; i < k.side; i++ {
		di := float64(i - k.half)
		for j := 0; j < k.side; j++ {
			dj := float64(j - k.half)
			dist := math.Hypot(dj, di) * k.tile
			k.weights[i*k.side+j] = clamp(1-dist/radius, 0, 1)
		}
	}
	return radius
}

// Radius returns the effective radius in pixels.
func (k *Kernel) Radius() float64 { return k.radius }

// Bounds returns the configured radius band.
func (k *Kernel) Bounds() (min, max float64) { return k.minRadius, k.maxRadius }

// Reach is ceil(radius/tile), the neighbourhood half-width in samples.
func (k *Kernel) Reach() int { return k.reach }

// Side is the fixed table side length, 2*ceil(maxRadius/tile)+1.
func (k *Kernel) Side() int { return k.side }

// At returns the weight at offset (di, dj) rows and columns from the centre.
// Offsets outside the table weigh zero.
func (k *Kernel) At(di, dj int) float64 {
	if di < -k.half || di > k.half || dj < -k.half || dj > k.half {
		return 0
	}
	return k.weights[(di+k.half)*k.side+dj+k.half]
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
