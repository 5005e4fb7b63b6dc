package reverie

// dreamShaderSrc is the Kage source for the GPU path. It mirrors the CPU
// evaluator constant for constant — hash scramble pairs, grid placement,
// activation ramps, pattern shading — so the two paths place features
// identically for the same intensity and time.
const dreamShaderSrc = `//kage:unit pixels

package main

// Settings is (intensity, time, reserved, reserved); the two trailing floats
// keep the uniform block at a 16-byte layout.
var Settings vec4

var IrisA vec3
var IrisB vec3
var Pupil vec3
var Sclera vec3
var Accent vec3
var Warm vec3

func hash21(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453)
}

func hash22(p vec2) vec2 {
	return fract(sin(vec2(dot(p, vec2(127.1, 311.7)), dot(p, vec2(269.5, 183.3)))) * 43758.5453)
}

// descriptorAt packs a feature placement as (center.x, center.y, radius, 0).
func descriptorAt(cell vec2, t float) vec4 {
	jitter := hash22(cell)
	radius := (0.12 + 0.10*hash21(cell)) / 7.0
	phase := hash21(cell+vec2(7.7, 3.1)) * 6.2831853
	drift := vec2(sin(0.60*t+phase), cos(0.83*t+phase)) * (0.70 * radius)
	center := (cell+vec2(0.3, 0.3)+jitter*0.4)/7.0 + drift
	return vec4(center, radius, 0.0)
}

// sampleSrc samples the source with clamp-to-edge addressing and
// un-premultiplied output.
func sampleSrc(uv vec2) vec4 {
	size := imageSrc0Size()
	p := clamp(uv*size, vec2(0.5), size-vec2(0.5))
	c := imageSrc0At(p + imageSrc0Origin())
	if c.a > 0 {
		c.rgb /= c.a
	}
	return c
}

func sampleAberrated(uv vec2, intensity float) vec3 {
	dir := (uv - vec2(0.5, 0.5)) * (intensity * 0.008)
	r := sampleSrc(uv + dir).r
	g := sampleSrc(uv).g
	b := sampleSrc(uv - dir).b
	return vec3(r, g, b)
}

func applyTint(c vec3, intensity float) vec3 {
	warmed := mix(c, c*vec3(1.10, 1.04, 0.92), intensity)
	return mix(warmed, Warm, 0.35*intensity)
}

// eyeAt returns (rgb, alpha) for the winning eye candidate in the 3x3 cell
// neighborhood. Candidates compete on alpha; ties keep the earlier one.
func eyeAt(uv vec2, aspect float, t float, intensity float) vec4 {
	base := floor(uv * 7.0)
	best := vec4(0.0)

	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			cell := base + vec2(float(ox), float(oy))
			d := descriptorAt(cell, t)
			dist := length(vec2((uv.x-d.x)*aspect, uv.y-d.y))
			outer := d.z
			if dist < outer {
				alpha := 1.0 - smoothstep(outer-0.004, outer, dist)
				if alpha > best.a {
					inner := 0.5 * outer
					iris := mix(IrisA, IrisB, hash21(cell+vec2(5.2, 1.3)))
					ring := smoothstep(inner-0.004, inner+0.004, dist)
					c := mix(Sclera, iris, ring)
					phase := hash21(cell+vec2(3.3, 9.1)) * 6.2831853
					pupilRadius := inner * (0.55 + 0.25*sin(2.0*t+phase))
					pupil := 1.0 - smoothstep(pupilRadius-0.004, pupilRadius+0.004, dist)
					c = mix(c, Pupil, pupil)
					best = vec4(c, alpha)
				}
			}
		}
	}

	return vec4(best.rgb, best.a*intensity * 0.2)
}

// swirlAt returns the tendril magnitude. Each qualifying neighbor folds in
// via max and the running value is rescaled by the dampening factor on every
// qualifying iteration, identical to the CPU SwirlAt accumulator.
func swirlAt(uv vec2, aspect float, t float) float {
	base := floor(uv * 7.0)
	mag := 0.0

	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			cell := base + vec2(float(ox), float(oy))
			d := descriptorAt(cell, t)
			delta := vec2((uv.x-d.x)*aspect, uv.y-d.y)
			dist := length(delta)
			radius := d.z
			reach := 3.0 * radius
			if dist > radius && dist < reach {
				angle := atan2(delta.y, delta.x)
				curl := 2.0 + 3.0*hash21(cell+vec2(1.7, 9.3))
				arms := 24.0 + floor(8.0*hash21(cell+vec2(4.4, 2.8)))
				warped := angle + curl*(dist/radius) + 0.4*t
				line := pow(abs(sin(arms*warped)), 8.0)
				line *= smoothstep(radius, 1.2*radius, dist)
				line *= 1.0 - smoothstep(2.6*radius, reach, dist)
				innerRing := 1.0 - smoothstep(0.0, 0.0035, abs(dist-radius))
				outerRing := (1.0 - smoothstep(0.0, 0.0035, abs(dist-reach))) * 0.5
				mag = max(mag, max(line, max(innerRing, outerRing)))
				mag *= 0.2
			}
		}
	}

	return mag
}

func Fragment(dst vec4, srcPos vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (srcPos - origin) / size
	aspect := size.x / size.y

	intensity := Settings.x
	if intensity < 0.001 {
		return imageSrc0At(srcPos)
	}
	t := Settings.y

	aberrationI := smoothstep(0.0, 0.4, intensity)
	tintI := smoothstep(0.1, 0.6, intensity)
	swirlI := smoothstep(0.3, 0.8, intensity) * 0.7
	eyeI := smoothstep(0.5, 1.0, intensity) * 0.7

	col := sampleAberrated(uv, aberrationI)
	col = applyTint(col, tintI)
	col += Accent * (swirlAt(uv, aspect, t) * swirlI)

	eye := eyeAt(uv, aspect, t, eyeI)
	col = mix(col, eye.rgb, eye.a)

	return vec4(clamp(col, vec3(0.0), vec3(1.0)), 1.0)
}
`
