// generated code - do not change

package pitch

// stored multipliers for the equal temperament tuning. each entry is a
// byte pair with the fraction byte first
var stored = [...][2]uint8{
	{0x40, 0x00}, // 0 0.2500x
	{0x44, 0x00}, // 1 0.2656x
	{0x48, 0x00}, // 2 0.2812x
	{0x4c, 0x00}, // 3 0.2969x
	{0x51, 0x00}, // 4 0.3164x
	{0x55, 0x00}, // 5 0.3320x
	{0x5b, 0x00}, // 6 0.3555x
	{0x60, 0x00}, // 7 0.3750x
	{0x66, 0x00}, // 8 0.3984x
	{0x6c, 0x00}, // 9 0.4219x
	{0x72, 0x00}, // 10 0.4453x
	{0x79, 0x00}, // 11 0.4727x
	{0x80, 0x00}, // 12 0.5000x
	{0x88, 0x00}, // 13 0.5312x
	{0x90, 0x00}, // 14 0.5625x
	{0x98, 0x00}, // 15 0.5938x
	{0xa1, 0x00}, // 16 0.6289x
	{0xab, 0x00}, // 17 0.6680x
	{0xb5, 0x00}, // 18 0.7070x
	{0xc0, 0x00}, // 19 0.7500x
	{0xcb, 0x00}, // 20 0.7930x
	{0xd7, 0x00}, // 21 0.8398x
	{0xe4, 0x00}, // 22 0.8906x
	{0xf2, 0x00}, // 23 0.9453x
	{0x00, 0x01}, // 24 1.0000x
	{0x0f, 0x01}, // 25 1.0586x
	{0x1f, 0x01}, // 26 1.1211x
	{0x30, 0x01}, // 27 1.1875x
	{0x43, 0x01}, // 28 1.2617x
	{0x56, 0x01}, // 29 1.3359x
	{0x6a, 0x01}, // 30 1.4141x
	{0x80, 0x01}, // 31 1.5000x
	{0x96, 0x01}, // 32 1.5859x
	{0xaf, 0x01}, // 33 1.6836x
	{0xc8, 0x01}, // 34 1.7812x
	{0xe3, 0x01}, // 35 1.8867x
	{0x00, 0x02}, // 36 2.0000x
	{0x1e, 0x02}, // 37 2.1172x
	{0x3f, 0x02}, // 38 2.2461x
	{0x61, 0x02}, // 39 2.3789x
	{0x85, 0x02}, // 40 2.5195x
	{0xab, 0x02}, // 41 2.6680x
	{0xd4, 0x02}, // 42 2.8281x
	{0xff, 0x02}, // 43 2.9961x
	{0x2d, 0x03}, // 44 3.1758x
	{0x5d, 0x03}, // 45 3.3633x
	{0x90, 0x03}, // 46 3.5625x
	{0xc7, 0x03}, // 47 3.7773x
	{0x00, 0x04}, // 48 4.0000x
	{0x3d, 0x04}, // 49 4.2383x
	{0x7d, 0x04}, // 50 4.4883x
	{0xc2, 0x04}, // 51 4.7578x
	{0x0a, 0x05}, // 52 5.0391x
	{0x57, 0x05}, // 53 5.3398x
	{0xa8, 0x05}, // 54 5.6562x
	{0xfe, 0x05}, // 55 5.9922x
	{0x59, 0x06}, // 56 6.3477x
	{0xba, 0x06}, // 57 6.7266x
	{0x21, 0x07}, // 58 7.1289x
	{0x8d, 0x07}, // 59 7.5508x
	{0x00, 0x08}, // 60 8.0000x
	{0x7a, 0x08}, // 61 8.4766x
}
