package game

import "testing"

func TestParticleBurstAndDecay(t *testing.T) {
	ps := NewParticleSystem(100)
	ps.Burst(constSource(0.5), 10, 20, 8, Palette.Blast)
	if len(ps.P) != 8 {
		t.Fatalf("particles = %d, want 8", len(ps.P))
	}
	// Life is 0.5*20+10 = 20 ticks.
	for range 19 {
		ps.Update()
	}
	if len(ps.P) != 8 {
		t.Fatalf("particles = %d after 19 ticks, want 8", len(ps.P))
	}
	ps.Update()
	if len(ps.P) != 0 {
		t.Fatalf("particles = %d after 20 ticks, want 0", len(ps.P))
	}
}

func TestParticlePoolOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(3)
	for i := range 5 {
		ps.Add(Particle{X: float64(i), Life: 10})
	}
	if len(ps.P) != 3 {
		t.Fatalf("pool grew past max: %d", len(ps.P))
	}
	if ps.P[0].X != 3 || ps.P[1].X != 4 || ps.P[2].X != 2 {
		t.Fatalf("unexpected overwrite order %+v", ps.P)
	}
}

func TestParticleRenderData(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.Add(Particle{X: 1, Y: 2, Size: 3, Life: 5, Col: RGB{R: 255}})
	buf := ps.RenderData(nil)
	if len(buf) != 8 {
		t.Fatalf("len = %d, want 8", len(buf))
	}
	if buf[0] != 1 || buf[1] != 2 || buf[2] != 3 || buf[3] != 1 || buf[6] != 0.5 {
		t.Fatalf("render data %v", buf)
	}
}
