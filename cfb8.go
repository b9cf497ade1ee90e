package mcwire

import (
	"crypto/aes"
	"crypto/cipher"
)

// cfb8 is AES in 8-bit cipher feedback mode. Each output byte costs one block
// encryption of the shift register, into which the ciphertext byte is fed.
type cfb8 struct {
	block    cipher.Block
	register [aes.BlockSize]byte
	out      [aes.BlockSize]byte
	decrypt  bool
}

func newCFB8(block cipher.Block, iv []byte, decrypt bool) *cfb8 {
	s := &cfb8{block: block, decrypt: decrypt}
	copy(s.register[:], iv)
	return s
}

// newCFB8Pair returns the encrypting and decrypting streams for a shared
// secret, which is both the AES key and the initial register.
func newCFB8Pair(secret []byte) (enc, dec cipher.Stream, err error) {
	block, err := aes.NewCipher(secret)
	if err != nil {
		return nil, nil, err
	}
	return newCFB8(block, secret, false), newCFB8(block, secret, true), nil
}

// XORKeyStream allows dst and src to overlap exactly.
func (s *cfb8) XORKeyStream(dst, src []byte) {
	for i, in := range src {
		s.block.Encrypt(s.out[:], s.register[:])
		out := in ^ s.out[0]
		dst[i] = out

		// the register always takes the ciphertext side
		if s.decrypt {
			s.feed(in)
		} else {
			s.feed(out)
		}
	}
}

func (s *cfb8) feed(c byte) {
	copy(s.register[:], s.register[1:])
	s.register[aes.BlockSize-1] = c
}
