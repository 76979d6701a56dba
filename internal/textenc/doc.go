// Package textenc provides forgiving text decoding for alignment files.
//
// Alignment collections routinely mix files saved by different editors and
// operating systems, so decoding must never fail on invalid bytes: valid
// UTF-8 passes through unchanged, anything else is decoded as ISO-8859-1,
// which maps every byte to a character.
package textenc
