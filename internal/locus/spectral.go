// Package locus holds the constant boundary data of the chromaticity
// diagram: the spectral locus sampled every 5 nm, the left and right
// boundary curves derived from it for each chromaticity plane, and the
// Planckian (black-body) locus.
package locus

import "seehuhn.de/go/geom/vec"

// Sample is one point of the spectral locus.
type Sample struct {
	Wavelength int // nm
	XY         vec.Vec2
}

// Spectral is the CIE 1931 2° spectral locus from 380 to 700 nm.
var Spectral = []Sample{
	{Wavelength: 380, XY: vec.Vec2{X: 0.1741, Y: 0.0050}},
	{Wavelength: 385, XY: vec.Vec2{X: 0.1740, Y: 0.0050}},
	{Wavelength: 390, XY: vec.Vec2{X: 0.1738, Y: 0.0049}},
	{Wavelength: 395, XY: vec.Vec2{X: 0.1736, Y: 0.0049}},
	{Wavelength: 400, XY: vec.Vec2{X: 0.1733, Y: 0.0048}},
	{Wavelength: 405, XY: vec.Vec2{X: 0.1730, Y: 0.0048}},
	{Wavelength: 410, XY: vec.Vec2{X: 0.1726, Y: 0.0048}},
	{Wavelength: 415, XY: vec.Vec2{X: 0.1721, Y: 0.0048}},
	{Wavelength: 420, XY: vec.Vec2{X: 0.1714, Y: 0.0051}},
	{Wavelength: 425, XY: vec.Vec2{X: 0.1703, Y: 0.0058}},
	{Wavelength: 430, XY: vec.Vec2{X: 0.1689, Y: 0.0069}},
	{Wavelength: 435, XY: vec.Vec2{X: 0.1669, Y: 0.0086}},
	{Wavelength: 440, XY: vec.Vec2{X: 0.1644, Y: 0.0109}},
	{Wavelength: 445, XY: vec.Vec2{X: 0.1611, Y: 0.0138}},
	{Wavelength: 450, XY: vec.Vec2{X: 0.1566, Y: 0.0177}},
	{Wavelength: 455, XY: vec.Vec2{X: 0.1510, Y: 0.0227}},
	{Wavelength: 460, XY: vec.Vec2{X: 0.1440, Y: 0.0297}},
	{Wavelength: 465, XY: vec.Vec2{X: 0.1355, Y: 0.0399}},
	{Wavelength: 470, XY: vec.Vec2{X: 0.1241, Y: 0.0578}},
	{Wavelength: 475, XY: vec.Vec2{X: 0.1096, Y: 0.0868}},
	{Wavelength: 480, XY: vec.Vec2{X: 0.0913, Y: 0.1327}},
	{Wavelength: 485, XY: vec.Vec2{X: 0.0687, Y: 0.2007}},
	{Wavelength: 490, XY: vec.Vec2{X: 0.0454, Y: 0.2950}},
	{Wavelength: 495, XY: vec.Vec2{X: 0.0235, Y: 0.4127}},
	{Wavelength: 500, XY: vec.Vec2{X: 0.0082, Y: 0.5384}},
	{Wavelength: 505, XY: vec.Vec2{X: 0.0039, Y: 0.6548}},
	{Wavelength: 510, XY: vec.Vec2{X: 0.0139, Y: 0.7502}},
	{Wavelength: 515, XY: vec.Vec2{X: 0.0389, Y: 0.8120}},
	{Wavelength: 520, XY: vec.Vec2{X: 0.0743, Y: 0.8338}},
	{Wavelength: 525, XY: vec.Vec2{X: 0.1142, Y: 0.8262}},
	{Wavelength: 530, XY: vec.Vec2{X: 0.1547, Y: 0.8059}},
	{Wavelength: 535, XY: vec.Vec2{X: 0.1929, Y: 0.7816}},
	{Wavelength: 540, XY: vec.Vec2{X: 0.2296, Y: 0.7543}},
	{Wavelength: 545, XY: vec.Vec2{X: 0.2658, Y: 0.7243}},
	{Wavelength: 550, XY: vec.Vec2{X: 0.3016, Y: 0.6923}},
	{Wavelength: 555, XY: vec.Vec2{X: 0.3373, Y: 0.6589}},
	{Wavelength: 560, XY: vec.Vec2{X: 0.3731, Y: 0.6245}},
	{Wavelength: 565, XY: vec.Vec2{X: 0.4087, Y: 0.5896}},
	{Wavelength: 570, XY: vec.Vec2{X: 0.4441, Y: 0.5547}},
	{Wavelength: 575, XY: vec.Vec2{X: 0.4788, Y: 0.5202}},
	{Wavelength: 580, XY: vec.Vec2{X: 0.5125, Y: 0.4866}},
	{Wavelength: 585, XY: vec.Vec2{X: 0.5448, Y: 0.4544}},
	{Wavelength: 590, XY: vec.Vec2{X: 0.5752, Y: 0.4242}},
	{Wavelength: 595, XY: vec.Vec2{X: 0.6029, Y: 0.3965}},
	{Wavelength: 600, XY: vec.Vec2{X: 0.6270, Y: 0.3725}},
	{Wavelength: 605, XY: vec.Vec2{X: 0.6482, Y: 0.3514}},
	{Wavelength: 610, XY: vec.Vec2{X: 0.6658, Y: 0.3340}},
	{Wavelength: 615, XY: vec.Vec2{X: 0.6801, Y: 0.3197}},
	{Wavelength: 620, XY: vec.Vec2{X: 0.6915, Y: 0.3083}},
	{Wavelength: 625, XY: vec.Vec2{X: 0.7006, Y: 0.2993}},
	{Wavelength: 630, XY: vec.Vec2{X: 0.7079, Y: 0.2920}},
	{Wavelength: 635, XY: vec.Vec2{X: 0.7140, Y: 0.2859}},
	{Wavelength: 640, XY: vec.Vec2{X: 0.7190, Y: 0.2809}},
	{Wavelength: 645, XY: vec.Vec2{X: 0.7230, Y: 0.2770}},
	{Wavelength: 650, XY: vec.Vec2{X: 0.7260, Y: 0.2740}},
	{Wavelength: 655, XY: vec.Vec2{X: 0.7283, Y: 0.2717}},
	{Wavelength: 660, XY: vec.Vec2{X: 0.7300, Y: 0.2700}},
	{Wavelength: 665, XY: vec.Vec2{X: 0.7311, Y: 0.2689}},
	{Wavelength: 670, XY: vec.Vec2{X: 0.7320, Y: 0.2680}},
	{Wavelength: 675, XY: vec.Vec2{X: 0.7327, Y: 0.2673}},
	{Wavelength: 680, XY: vec.Vec2{X: 0.7334, Y: 0.2666}},
	{Wavelength: 685, XY: vec.Vec2{X: 0.7340, Y: 0.2660}},
	{Wavelength: 690, XY: vec.Vec2{X: 0.7344, Y: 0.2656}},
	{Wavelength: 695, XY: vec.Vec2{X: 0.7346, Y: 0.2654}},
	{Wavelength: 700, XY: vec.Vec2{X: 0.7347, Y: 0.2653}},
}
