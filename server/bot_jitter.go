package server

import "github.com/lab1702/arena-ctf/game"

// Aim skew: bots are made beatable by deliberately mis-aiming. The skew
// is re-rolled on a one second timer rather than every frame, so bad aim
// reads as drift instead of jitter.

// rerollAimSkew refreshes the cached pitch/yaw/projectile skew for the
// bot's accuracy tier if the reroll interval has elapsed.
func (b *Bot) rerollAimSkew(now float64) {
	if now-b.lastAimpointChange <= AimpointRerollInterval {
		return
	}
	b.lastAimpointChange = now

	pitchSign := 1.0
	if b.rng.Intn(2) == 0 {
		pitchSign = -1.0
	}
	yawSign := 1.0
	if b.rng.Intn(2) == 0 {
		yawSign = -1.0
	}
	b.pitchSkew = 0
	b.yawSkew = 0
	b.projectileSkew = 1.0

	switch b.Config.Accuracy {
	case AccuracyHorrible:
		// Terrible bots aim actively badly almost all the time.
		b.projectileSkew = b.randRange(0.5, 1.5)
		if b.rng.Intn(6) != 0 {
			// Always off by 15-30 degrees: can't hit unless super close.
			b.pitchSkew += b.randRange(15, 30) * pitchSign
			b.yawSkew += b.randRange(15, 30) * yawSign
		} else {
			// Still skewed, but a roll near zero can actually hit.
			b.pitchSkew += b.randRange(-25, 25)
			b.yawSkew += b.randRange(-15, 15)
		}
	case AccuracyDecent:
		// At least a little bad all the time, more bad much of the time.
		if b.rng.Intn(2) == 0 {
			b.projectileSkew = b.randRange(0.2, 1.5)
		}
		if b.rng.Intn(2) != 0 {
			b.pitchSkew += b.randRange(15, 25) * pitchSign
			b.yawSkew += b.randRange(15, 25) * yawSign
		} else {
			b.pitchSkew += b.randRange(-20, 20)
			b.yawSkew += b.randRange(-20, 20)
		}
	case AccuracyGood:
		// Off half the time but by less, pretty close a quarter of the
		// time, and occasionally dead on.
		if b.rng.Intn(2) == 0 {
			b.projectileSkew = b.randRange(0.5, 1.5)
		}
		if b.rng.Intn(2) == 0 {
			b.pitchSkew += b.randRange(15, 35) * pitchSign
			b.yawSkew += b.randRange(10, 30) * yawSign
		} else if b.rng.Intn(2) == 0 {
			b.pitchSkew += b.randRange(-15, 15)
			b.yawSkew += b.randRange(-15, 15)
		}
	case AccuracyPerfect:
		// No skew at all.
	}
}

// clampAimSkew keeps accumulated skew within the hard limits.
func (b *Bot) clampAimSkew() {
	b.yawSkew = game.Clamp(b.yawSkew, -MaxAimSkewDeg, MaxAimSkewDeg)
	b.pitchSkew = game.Clamp(b.pitchSkew, -MaxAimSkewDeg, MaxAimSkewDeg)
}

// randRange returns a uniform random float in [lo, hi).
func (b *Bot) randRange(lo, hi float64) float64 {
	return lo + b.rng.Float64()*(hi-lo)
}
