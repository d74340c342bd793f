// Package compress provides the byte-buffer compression codecs used for
// NRRD payload encodings.
//
// The payload transcoder treats compression as an opaque transform behind
// the Codec interface: raw binary bytes go in, compressed bytes come out,
// and vice versa. The format's "gzip" encoding is backed by
// github.com/klauspost/compress/gzip; the "raw" and "ascii" encodings use
// the pass-through codec.
package compress
