package host

// Premultiply writes src (straight-alpha RGBA) into dst as premultiplied
// RGBA, growing dst when it is too short, and returns dst.
func Premultiply(dst, src []byte) []byte {
	if cap(dst) < len(src) {
		dst = make([]byte, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		a := uint16(src[i+3])
		if a == 255 {
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		dst[i+0] = uint8(uint16(src[i+0]) * a / 255)
		dst[i+1] = uint8(uint16(src[i+1]) * a / 255)
		dst[i+2] = uint8(uint16(src[i+2]) * a / 255)
		dst[i+3] = uint8(a)
	}
	return dst
}
