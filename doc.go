// Package msgbuf supplies raw bytes to streaming decoders in chunks. A decoder pulls
// chunks from a [Source] until it reports [io.EOF], without knowing whether the bytes
// come from a byte slice held in memory ([ArraySource]) or from a blocking stream
// such as a file, pipe or socket ([ChannelSource]).
//
// The package does not interpret the bytes it hands out. Use [NewReader] to consume
// a [Source] through the standard [io.Reader] interface, or [Chunks] to range over
// the chunks directly.
package msgbuf
