package game

import "math"

// Particle is cosmetic only; Life counts down in ticks.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64
	Col    RGB
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Burst emits count particles radiating from (x, y) at random headings.
func (ps *ParticleSystem) Burst(src Source, x, y float64, count int, col RGB) {
	for range count {
		ang := src.Float64() * math.Pi * 2
		spd := src.Float64()*2 + 1
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: src.Float64()*5 + 2,
			Life: src.Float64()*20 + 10,
			Col:  col,
		})
	}
}

// Update advances every particle one tick and drops the expired ones.
func (ps *ParticleSystem) Update() {
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData packs live particles as [x, y, size, r, g, b, a, rotation] * N.
// Alpha fades over the last ten ticks.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range ps.P {
		a := clampF(p.Life/10, 0, 1)
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255,
			float32(a), 0)
	}
	return buf
}
