package locus

import "seehuhn.de/go/geom/vec"

// Planck is one sample of the Planckian locus.
type Planck struct {
	Kelvin int
	XY     vec.Vec2
}

// BlackBody is the Planckian locus from 2600 K to 40000 K, ordered by
// increasing temperature.
var BlackBody = []Planck{
	{Kelvin: 2600, XY: vec.Vec2{X: 0.4677, Y: 0.4123}},
	{Kelvin: 2800, XY: vec.Vec2{X: 0.4514, Y: 0.4087}},
	{Kelvin: 3000, XY: vec.Vec2{X: 0.4366, Y: 0.4042}},
	{Kelvin: 3250, XY: vec.Vec2{X: 0.4200, Y: 0.3977}},
	{Kelvin: 3500, XY: vec.Vec2{X: 0.4053, Y: 0.3909}},
	{Kelvin: 3750, XY: vec.Vec2{X: 0.3923, Y: 0.3838}},
	{Kelvin: 4000, XY: vec.Vec2{X: 0.3805, Y: 0.3767}},
	{Kelvin: 4500, XY: vec.Vec2{X: 0.3607, Y: 0.3635}},
	{Kelvin: 5000, XY: vec.Vec2{X: 0.3450, Y: 0.3516}},
	{Kelvin: 5500, XY: vec.Vec2{X: 0.3323, Y: 0.3410}},
	{Kelvin: 6000, XY: vec.Vec2{X: 0.3220, Y: 0.3318}},
	{Kelvin: 6500, XY: vec.Vec2{X: 0.3135, Y: 0.3237}},
	{Kelvin: 7000, XY: vec.Vec2{X: 0.3064, Y: 0.3166}},
	{Kelvin: 7500, XY: vec.Vec2{X: 0.3004, Y: 0.3103}},
	{Kelvin: 8000, XY: vec.Vec2{X: 0.2952, Y: 0.3048}},
	{Kelvin: 9000, XY: vec.Vec2{X: 0.2870, Y: 0.2956}},
	{Kelvin: 10000, XY: vec.Vec2{X: 0.2807, Y: 0.2883}},
	{Kelvin: 11000, XY: vec.Vec2{X: 0.2758, Y: 0.2824}},
	{Kelvin: 12000, XY: vec.Vec2{X: 0.2718, Y: 0.2776}},
	{Kelvin: 14000, XY: vec.Vec2{X: 0.2659, Y: 0.2701}},
	{Kelvin: 16000, XY: vec.Vec2{X: 0.2618, Y: 0.2648}},
	{Kelvin: 18000, XY: vec.Vec2{X: 0.2587, Y: 0.2607}},
	{Kelvin: 20000, XY: vec.Vec2{X: 0.2564, Y: 0.2576}},
	{Kelvin: 25000, XY: vec.Vec2{X: 0.2525, Y: 0.2523}},
	{Kelvin: 30000, XY: vec.Vec2{X: 0.2500, Y: 0.2489}},
	{Kelvin: 40000, XY: vec.Vec2{X: 0.2472, Y: 0.2449}},
}
